package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContactID is the identifier of a contact as it travels on the wire: a hex
// rendering of the underlying ObjectID. Keeping the two forms behind one type
// means handlers never touch raw ObjectIDs and stores never touch hex strings.
type ContactID struct {
	oid primitive.ObjectID
}

// ParseContactID converts the wire form back into an identifier. A malformed
// string returns an error; callers treat that the same as "not found" rather
// than a distinct error class.
func ParseContactID(s string) (ContactID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ContactID{}, err
	}
	return ContactID{oid: oid}, nil
}

// ContactIDFromObjectID wraps a store-assigned ObjectID.
func ContactIDFromObjectID(oid primitive.ObjectID) ContactID {
	return ContactID{oid: oid}
}

func (id ContactID) Hex() string {
	return id.oid.Hex()
}

func (id ContactID) ObjectID() primitive.ObjectID {
	return id.oid
}
