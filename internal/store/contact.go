package store

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frbarbre/contacts-api/internal/model"
)

type contactStore struct {
	coll *mongo.Collection
}

func newContactStore(coll *mongo.Collection) ContactStore {
	return &contactStore{coll: coll}
}

func (s *contactStore) List(ctx context.Context) ([]model.Contact, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetSort(listSort()))
	if err != nil {
		return nil, err
	}
	return decodeContacts(ctx, cursor)
}

func (s *contactStore) Get(ctx context.Context, id model.ContactID) (*model.Contact, error) {
	var contact model.Contact
	err := s.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&contact)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (s *contactStore) Create(ctx context.Context, contact *model.Contact) error {
	res, err := s.coll.InsertOne(ctx, contact)
	if err != nil {
		return err
	}

	// Re-read the persisted document to pick up the assigned _id. The id is
	// fresh, so nothing else can have mutated the document in between.
	return s.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(contact)
}

func (s *contactStore) Update(ctx context.Context, id model.ContactID, upd model.ContactUpdate) (*model.Contact, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id.ObjectID()},
		bson.M{"$set": bson.M{
			"avatar":   upd.Avatar,
			"first":    upd.First,
			"last":     upd.Last,
			"twitter":  upd.Twitter,
			"favorite": upd.Favorite,
		}},
	)
	if err != nil {
		return nil, err
	}
	// A no-op update on an existing document is indistinguishable from a
	// missing one here; both report ErrNotFound.
	if res.ModifiedCount == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, id)
}

func (s *contactStore) Delete(ctx context.Context, id model.ContactID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.ObjectID()})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *contactStore) Search(ctx context.Context, query string) ([]model.Contact, error) {
	cursor, err := s.coll.Find(ctx, searchFilter(query))
	if err != nil {
		return nil, err
	}
	return decodeContacts(ctx, cursor)
}

func (s *contactStore) SetFavorite(ctx context.Context, id model.ContactID, favorite bool) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id.ObjectID()},
		bson.M{"$set": bson.M{"favorite": favorite}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// listSort orders contacts newest first, ties broken by last name.
func listSort() bson.D {
	return bson.D{
		{Key: "created_at", Value: -1},
		{Key: "last", Value: 1},
	}
}

// searchFilter builds a case-insensitive substring match on first, last and
// twitter. The query is quoted so regex metacharacters match literally; an
// empty query degenerates to a match-all filter.
func searchFilter(query string) bson.M {
	pattern := regexp.QuoteMeta(query)
	return bson.M{
		"$or": []bson.M{
			{"first": bson.M{"$regex": pattern, "$options": "i"}},
			{"last": bson.M{"$regex": pattern, "$options": "i"}},
			{"twitter": bson.M{"$regex": pattern, "$options": "i"}},
		},
	}
}

func decodeContacts(ctx context.Context, cursor *mongo.Cursor) ([]model.Contact, error) {
	defer cursor.Close(ctx)

	var contacts []model.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}
