package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new time-ordered unique ID, used to tag requests in logs.
// Contact and user identifiers are ObjectIDs assigned by the store, not these.
func New() string {
	return node.Generate().Base58()
}
