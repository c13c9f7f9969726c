package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathfinder/indexstore"
)

// openStore opens the store named by --store.
func (c *cli) openStore() (indexstore.Store, error) {
	switch {
	case strings.HasPrefix(c.storeURL, "redis://"), strings.HasPrefix(c.storeURL, "rediss://"):
		return indexstore.OpenRedis(c.storeURL)
	case strings.HasPrefix(c.storeURL, "sqlite:"):
		return indexstore.OpenSQLite(strings.TrimPrefix(c.storeURL, "sqlite:"))
	default:
		return nil, fmt.Errorf("unsupported store %q: want sqlite:<path> or redis://", c.storeURL)
	}
}
