package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frbarbre/contacts-api/internal/model"
)

type tokenStore struct {
	coll *mongo.Collection
}

func newTokenStore(coll *mongo.Collection) TokenStore {
	return &tokenStore{coll: coll}
}

func (s *tokenStore) Create(ctx context.Context, token *model.AuthToken) error {
	res, err := s.coll.InsertOne(ctx, token)
	if err != nil {
		return err
	}
	return s.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(token)
}

func (s *tokenStore) GetValid(ctx context.Context, token string, now time.Time) (*model.AuthToken, error) {
	var authToken model.AuthToken
	err := s.coll.FindOne(ctx, bson.M{
		"token":      token,
		"expires_at": bson.M{"$gt": now},
	}).Decode(&authToken)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &authToken, nil
}

func (s *tokenStore) Delete(ctx context.Context, token string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"token": token})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
