package request

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
)

var ErrNotFound = errors.New("request not found")

type (
	Repository interface {
		CreateRequest(ctx context.Context, req Request) (Request, error)
		QueryAllRequests(ctx context.Context) ([]Request, error)
		GetRequestByID(ctx context.Context, id string) (Request, error)
		UpdateRequestStatus(ctx context.Context, id string, status Status) (Request, error)
	}

	// Service is the request ledger: it lists pending requests and
	// applies the approve/deny transitions. Decisions on terminal or
	// unknown requests are silent no-ops.
	Service struct {
		repo     Repository
		notifier core.Notifier
		logger   core.Logger
	}
)

func NewService(repo Repository, notifier core.Notifier, logger core.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit records a new pending request.
func (svc *Service) Submit(ctx context.Context, nr NewRequest) (Request, error) {
	req := Request{
		StudentName: nr.StudentName,
		Description: nr.Description,
		Status:      StatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	return svc.repo.CreateRequest(ctx, req)
}

// Query returns all requests in submission order.
func (svc *Service) Query(ctx context.Context) ([]Request, error) {
	reqs, err := svc.repo.QueryAllRequests(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying requests")
	}
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].SubmittedAt.Before(reqs[j].SubmittedAt) })
	return reqs, nil
}

func (svc *Service) Approve(ctx context.Context, id string) (Request, error) {
	return svc.decide(ctx, id, StatusApproved)
}

func (svc *Service) Deny(ctx context.Context, id string) (Request, error) {
	return svc.decide(ctx, id, StatusDenied)
}

// decide applies a transition out of pending. Terminal requests are
// returned unchanged; unknown ids yield a zero Request, no error.
func (svc *Service) decide(ctx context.Context, id string, target Status) (Request, error) {
	req, err := svc.repo.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return Request{}, nil
		}
		return Request{}, errors.Wrap(err, "finding request")
	}
	if req.Status.Terminal() {
		return req, nil
	}

	req, err = svc.repo.UpdateRequestStatus(ctx, id, target)
	if err != nil {
		return Request{}, errors.Wrap(err, "updating request status")
	}

	svc.notifyDecision(ctx, req)
	return req, nil
}

// notifyDecision pushes the decision out, best-effort.
func (svc *Service) notifyDecision(ctx context.Context, req Request) {
	if svc.notifier == nil {
		return
	}
	n := core.Notification{
		Title: fmt.Sprintf("Request %s", req.Status),
		Body:  fmt.Sprintf("%s: %s", req.StudentName, req.Description),
		Topic: "requests",
	}
	if err := svc.notifier.Send(ctx, n); err != nil {
		svc.logger.Warn(fmt.Sprintf("notifying decision on request %s: %v", req.ID, err))
	}
}
