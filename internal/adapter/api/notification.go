package api

import (
	"context"
	"net/http"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// ListNotifications returns every notification of the session user.
func (c *Client) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	var list domain.NotificationList
	if err := c.do(ctx, "list notifications", http.MethodGet, "/notification/user", nil, &list); err != nil {
		return nil, err
	}
	if list.Messages == nil {
		list.Messages = []domain.Notification{}
	}
	return list.Messages, nil
}

// MarkNotificationsRead flips the read flag of the given notifications.
func (c *Client) MarkNotificationsRead(ctx context.Context, ids []domain.ID) error {
	if len(ids) == 0 {
		return nil
	}
	return c.do(ctx, "mark notifications read", http.MethodPut, "/notification", domain.MarkReadInput{NotificationIDs: ids}, nil)
}
