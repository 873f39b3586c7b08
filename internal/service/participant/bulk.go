package participant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

// BulkOutcome summarizes a bulk operation.
type BulkOutcome string

const (
	OutcomeSuccess BulkOutcome = "success"
	OutcomePartial BulkOutcome = "partial"
	OutcomeFailure BulkOutcome = "failure"
)

// ItemError is one failed item of a bulk operation.
type ItemError struct {
	Participant domain.Participant
	Err         error
}

func (e ItemError) Error() string { return e.Err.Error() }
func (e ItemError) Unwrap() error { return e.Err }

// BulkResult collects per-item results in input order.
type BulkResult struct {
	Succeeded []domain.Participant
	Failed    []ItemError
}

// Total is the number of items attempted.
func (r BulkResult) Total() int { return len(r.Succeeded) + len(r.Failed) }

// Outcome is success when nothing failed, failure when nothing succeeded,
// and partial otherwise. An empty batch is a success.
func (r BulkResult) Outcome() BulkOutcome {
	switch {
	case len(r.Failed) == 0:
		return OutcomeSuccess
	case len(r.Succeeded) == 0:
		return OutcomeFailure
	default:
		return OutcomePartial
	}
}

// Err joins every item error, or returns nil.
func (r BulkResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// ApproveAll approves every participant in ps. Each item is attempted even
// when others fail.
func (s *Service) ApproveAll(ctx context.Context, ps []domain.Participant) BulkResult {
	res := s.runBulk(ctx, ps, func(ctx context.Context, p domain.Participant) (domain.Participant, error) {
		return s.Approve(ctx, p)
	})
	s.logBulk(ctx, "approve", res)
	return res
}

// RemoveAll asks once, then removes every participant in ps.
func (s *Service) RemoveAll(ctx context.Context, ps []domain.Participant) (BulkResult, error) {
	if len(ps) == 0 {
		return BulkResult{}, nil
	}
	if err := s.ask(ctx, fmt.Sprintf("Remove all %d participants from the event?", len(ps))); err != nil {
		return BulkResult{}, err
	}

	res := s.runBulk(ctx, ps, func(ctx context.Context, p domain.Participant) (domain.Participant, error) {
		if err := checkTransition(p, domain.ParticipantStatusRemoved); err != nil {
			return domain.Participant{}, err
		}
		if err := s.delete(ctx, p, domain.ParticipantStatusRemoved, kindRemove); err != nil {
			return domain.Participant{}, err
		}
		p.Status = domain.ParticipantStatusRemoved
		return p, nil
	})
	s.logBulk(ctx, "remove", res)
	return res, nil
}

func (s *Service) runBulk(
	ctx context.Context,
	ps []domain.Participant,
	fn func(context.Context, domain.Participant) (domain.Participant, error),
) BulkResult {
	type item struct {
		p   domain.Participant
		err error
	}
	items := make([]item, len(ps))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, p := range ps {
		i, p := i, p
		g.Go(func() error {
			out, err := fn(ctx, p)
			if err != nil {
				items[i] = item{p: p, err: err}
				return nil
			}
			items[i] = item{p: out}
			return nil
		})
	}
	_ = g.Wait()

	var res BulkResult
	for _, it := range items {
		if it.err != nil {
			res.Failed = append(res.Failed, ItemError{Participant: it.p, Err: it.err})
			continue
		}
		res.Succeeded = append(res.Succeeded, it.p)
	}
	return res
}

func (s *Service) logBulk(ctx context.Context, action string, res BulkResult) {
	s.log.InfoContext(ctx, "bulk "+action+" finished",
		slog.String("outcome", string(res.Outcome())),
		slog.Int("succeeded", len(res.Succeeded)),
		slog.Int("failed", len(res.Failed)),
	)
}
