package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/frbarbre/contacts-api/internal/model"
)

type userStore struct {
	coll *mongo.Collection
}

func newUserStore(coll *mongo.Collection) UserStore {
	return &userStore{coll: coll}
}

func (s *userStore) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	return s.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(user)
}
