package inmemdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dikshant1602/wandwrite/core/request"
)

func Test_requestRepository_fetchDelay(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewRequestRepository(db, WithFetchDelay(20*time.Millisecond))
	if err = SeedRequests(context.Background(), repo); err != nil {
		t.Fatalf("SeedRequests() failed: %v", err)
	}

	start := time.Now()
	reqs, err := repo.QueryAllRequests(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reqs, 3)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	// a cancelled context aborts the simulated wait
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = repo.QueryAllRequests(ctx)
	assert.Equal(t, context.Canceled, err)
}

func Test_SeedRequests_order(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewRequestRepository(db)
	if err = SeedRequests(context.Background(), repo); err != nil {
		t.Fatalf("SeedRequests() failed: %v", err)
	}

	reqs, err := repo.QueryAllRequests(context.Background())
	assert.NoError(t, err)
	assert.Len(t, reqs, 3)

	// timestamps strictly increase and all lie in the past, so a
	// request submitted right after seeding keeps sorting last
	now := time.Now().UTC()
	for i, req := range reqs {
		assert.True(t, req.SubmittedAt.Before(now), "seed %d stamped in the future", i)
		if i > 0 {
			assert.True(t, reqs[i-1].SubmittedAt.Before(req.SubmittedAt))
		}
	}
}

func Test_requestRepository_UpdateRequestStatus(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewRequestRepository(db)
	ctx := context.Background()

	req, err := repo.CreateRequest(ctx, request.Request{
		StudentName: "John Doe",
		Description: "Request to join the class",
		Status:      request.StatusPending,
		SubmittedAt: time.Now().UTC(),
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, req.ID)

	updated, err := repo.UpdateRequestStatus(ctx, req.ID, request.StatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, updated.Status)

	got, err := repo.GetRequestByID(ctx, req.ID)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, got.Status)

	_, err = repo.UpdateRequestStatus(ctx, "no-such-id", request.StatusDenied)
	assert.Equal(t, request.ErrNotFound, err)
}
