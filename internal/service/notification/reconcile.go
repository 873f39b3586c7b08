package notification

import (
	"context"
	"slices"

	"github.com/heartmarshall/meetup-client/internal/dataloader"
	"github.com/heartmarshall/meetup-client/internal/domain"
)

// Inbox is one reconciled poll result. Both lists are newest first.
type Inbox struct {
	JoinRequests []domain.Notification
	Others       []domain.Notification
}

// Unread counts unread notifications across both lists.
func (i Inbox) Unread() int {
	n := 0
	for _, list := range [][]domain.Notification{i.JoinRequests, i.Others} {
		for _, item := range list {
			if !item.Read {
				n++
			}
		}
	}
	return n
}

// Find looks a notification up by id in either list.
func (i Inbox) Find(id domain.ID) (domain.Notification, bool) {
	for _, list := range [][]domain.Notification{i.JoinRequests, i.Others} {
		for _, item := range list {
			if item.ID == id {
				return item, true
			}
		}
	}
	return domain.Notification{}, false
}

func (i Inbox) clone() Inbox {
	return Inbox{
		JoinRequests: slices.Clone(i.JoinRequests),
		Others:       slices.Clone(i.Others),
	}
}

// Reconcile sorts ns by creation time, newest first, and splits join
// requests from everything else. Ties keep server order. ns is not modified.
func Reconcile(ns []domain.Notification) Inbox {
	sorted := slices.Clone(ns)
	slices.SortStableFunc(sorted, func(a, b domain.Notification) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})

	inbox := Inbox{
		JoinRequests: make([]domain.Notification, 0, len(sorted)),
		Others:       make([]domain.Notification, 0, len(sorted)),
	}
	for _, n := range sorted {
		if n.IsJoinRequest() {
			inbox.JoinRequests = append(inbox.JoinRequests, n)
		} else {
			inbox.Others = append(inbox.Others, n)
		}
	}
	return inbox
}

// Denormalize fills in missing actor and event names in place. Lookups that
// fail degrade to domain.UnknownUser and domain.UnknownGame.
func Denormalize(ctx context.Context, loaders *dataloader.Loaders, ns []domain.Notification) {
	var userIDs, eventIDs []domain.ID
	for _, n := range ns {
		if n.ActorName == "" {
			userIDs = append(userIDs, n.ActorID)
		}
		if n.EventName == "" {
			eventIDs = append(eventIDs, n.EventID)
		}
	}
	loaders.Prefetch(ctx, userIDs, eventIDs)

	for i := range ns {
		if ns[i].ActorName == "" {
			ns[i].ActorName = loaders.UserName(ctx, ns[i].ActorID)
		}
		if ns[i].EventName == "" {
			ns[i].EventName = loaders.EventName(ctx, ns[i].EventID)
		}
	}
}
