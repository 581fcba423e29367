package request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dikshant1602/wandwrite/core/request"
	dummypush "github.com/dikshant1602/wandwrite/services/push/dummy"
	inmemdb "github.com/dikshant1602/wandwrite/storage/document/inmem"
)

type testLogger struct{}

func (testLogger) Enable(bool)                  {}
func (testLogger) Debug(string, ...interface{}) {}
func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}
func (testLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*request.Service, *dummypush.Notifier) {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	repo := inmemdb.NewRequestRepository(db)
	if err = inmemdb.SeedRequests(context.Background(), repo); err != nil {
		t.Fatalf("SeedRequests() failed: %v", err)
	}
	notifier := dummypush.NewNotifier()
	return request.NewService(repo, notifier, testLogger{}), notifier
}

func Test_Service_Query(t *testing.T) {
	svc, _ := setup(t)

	reqs, err := svc.Query(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, reqs, 3) {
		// submission order, all pending
		assert.Equal(t, "John Doe", reqs[0].StudentName)
		assert.Equal(t, "Jane Smith", reqs[1].StudentName)
		assert.Equal(t, "Sam Brown", reqs[2].StudentName)
		for _, req := range reqs {
			assert.Equal(t, request.StatusPending, req.Status)
		}
	}
}

func Test_Service_Approve(t *testing.T) {
	svc, notifier := setup(t)
	ctx := context.Background()

	reqs, err := svc.Query(ctx)
	assert.NoError(t, err)
	id := reqs[0].ID

	req, err := svc.Approve(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	// approve is idempotent on a terminal request
	req, err = svc.Approve(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	// deny on a terminal request is a no-op
	req, err = svc.Deny(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusApproved, req.Status)

	// only the first transition notified
	assert.Len(t, notifier.Sent(), 1)
}

func Test_Service_Deny(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	reqs, err := svc.Query(ctx)
	assert.NoError(t, err)
	id := reqs[1].ID

	req, err := svc.Deny(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusDenied, req.Status)

	req, err = svc.Approve(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, request.StatusDenied, req.Status)
}

func Test_Service_decide_unknownID(t *testing.T) {
	svc, notifier := setup(t)
	ctx := context.Background()

	// unknown ids fail silently
	req, err := svc.Approve(ctx, "no-such-request")
	assert.NoError(t, err)
	assert.Empty(t, req.ID)

	req, err = svc.Deny(ctx, "no-such-request")
	assert.NoError(t, err)
	assert.Empty(t, req.ID)

	assert.Empty(t, notifier.Sent())

	// the ledger is untouched
	reqs, err := svc.Query(ctx)
	assert.NoError(t, err)
	for _, r := range reqs {
		assert.Equal(t, request.StatusPending, r.Status)
	}
}

func Test_Service_Submit(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	nr := request.NewRequest{StudentName: "Neville Longbottom", Description: "Request to retake a test"}
	req, err := svc.Submit(ctx, nr)
	assert.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, request.StatusPending, req.Status)
	assert.False(t, req.SubmittedAt.IsZero())

	reqs, err := svc.Query(ctx)
	assert.NoError(t, err)
	if assert.Len(t, reqs, 4) {
		assert.Equal(t, "Neville Longbottom", reqs[3].StudentName)
	}
}
