package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dikshant1602/wandwrite/core/request"
)

type requestRepository struct {
	client *firestore.Client
}

func NewRequestRepository(client *firestore.Client) request.Repository {
	return &requestRepository{client: client}
}

func (repo *requestRepository) CreateRequest(ctx context.Context, req request.Request) (request.Request, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if _, err := repo.client.Collection(requestsCollection).Doc(req.ID).Create(ctx, req); err != nil {
		return request.Request{}, wrapErr(err, "creating request document")
	}
	return req, nil
}

func (repo *requestRepository) QueryAllRequests(ctx context.Context) ([]request.Request, error) {
	iter := repo.client.Collection(requestsCollection).OrderBy("submittedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var reqs []request.Request
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapErr(err, "iterating request documents")
		}
		var req request.Request
		if err = snap.DataTo(&req); err != nil {
			return nil, errors.Wrap(err, "decoding request document")
		}
		req.ID = snap.Ref.ID
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func (repo *requestRepository) GetRequestByID(ctx context.Context, id string) (request.Request, error) {
	snap, err := repo.client.Collection(requestsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return request.Request{}, request.ErrNotFound
		}
		return request.Request{}, wrapErr(err, "reading request document")
	}

	var req request.Request
	if err = snap.DataTo(&req); err != nil {
		return request.Request{}, errors.Wrap(err, "decoding request document")
	}
	req.ID = snap.Ref.ID
	return req, nil
}

func (repo *requestRepository) UpdateRequestStatus(ctx context.Context, id string, st request.Status) (request.Request, error) {
	doc := repo.client.Collection(requestsCollection).Doc(id)
	if _, err := doc.Update(ctx, []firestore.Update{{Path: "status", Value: string(st)}}); err != nil {
		if status.Code(err) == codes.NotFound {
			return request.Request{}, request.ErrNotFound
		}
		return request.Request{}, wrapErr(err, "updating request document")
	}
	return repo.GetRequestByID(ctx, id)
}
