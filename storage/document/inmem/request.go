package inmemdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dikshant1602/wandwrite/core/request"
)

type requestRepository struct {
	db         *requestTable
	fetchDelay time.Duration
}

type RequestOption func(*requestRepository)

// WithFetchDelay simulates backend latency on QueryAllRequests, like
// the asynchronous fetch the mobile client fakes. Tests leave it zero.
func WithFetchDelay(d time.Duration) RequestOption {
	return func(repo *requestRepository) { repo.fetchDelay = d }
}

func NewRequestRepository(db *DB, opts ...RequestOption) request.Repository {
	repo := &requestRepository{db: db.request}
	for _, opt := range opts {
		opt(repo)
	}
	return repo
}

func (repo *requestRepository) CreateRequest(_ context.Context, req request.Request) (request.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	repo.db.table[req.ID] = &req
	repo.db.order = append(repo.db.order, req.ID)
	return req, nil
}

func (repo *requestRepository) QueryAllRequests(ctx context.Context) ([]request.Request, error) {
	if repo.fetchDelay > 0 {
		select {
		case <-time.After(repo.fetchDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	repo.db.RLock()
	defer repo.db.RUnlock()

	reqs := make([]request.Request, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		reqs = append(reqs, *repo.db.table[id])
	}
	return reqs, nil
}

func (repo *requestRepository) GetRequestByID(_ context.Context, id string) (request.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if req, ok := repo.db.table[id]; ok {
		return *req, nil
	}
	return request.Request{}, request.ErrNotFound
}

func (repo *requestRepository) UpdateRequestStatus(_ context.Context, id string, status request.Status) (request.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	req, ok := repo.db.table[id]
	if !ok {
		return request.Request{}, request.ErrNotFound
	}
	req.Status = status
	return *req, nil
}

// SeedRequests loads the demo request list the mobile client ships
// with: three pending requests, in submission order. Seeds are stamped
// in the past so anything submitted afterwards sorts after them.
func SeedRequests(ctx context.Context, repo request.Repository) error {
	seed := []request.NewRequest{
		{StudentName: "John Doe", Description: "Request to join the class"},
		{StudentName: "Jane Smith", Description: "Request to change section"},
		{StudentName: "Sam Brown", Description: "Request for a late submission"},
	}
	base := time.Now().UTC().Add(-time.Second)
	for i, nr := range seed {
		req := request.Request{
			StudentName: nr.StudentName,
			Description: nr.Description,
			Status:      request.StatusPending,
			SubmittedAt: base.Add(time.Duration(i) * time.Millisecond),
		}
		if _, err := repo.CreateRequest(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
