package indexstore

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfinder/floydwarshall"
)

// ErrNotFound indicates that no index is stored under the requested name.
var ErrNotFound = errors.New("indexstore: index not found")

// Store persists indexes by name.
type Store interface {
	// Save stores idx under name, replacing any previous index.
	Save(ctx context.Context, name string, idx *floydwarshall.Index) error

	// Load returns the index stored under name, or ErrNotFound.
	Load(ctx context.Context, name string) (*floydwarshall.Index, error)

	// Delete removes the index stored under name, or returns ErrNotFound.
	Delete(ctx context.Context, name string) error

	// Close releases the store's connections.
	Close() error
}

// Encode renders idx as a YAML snapshot.
func Encode(idx *floydwarshall.Index) ([]byte, error) {
	data, err := yaml.Marshal(idx.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("indexstore: encode: %w", err)
	}

	return data, nil
}

// Decode parses a YAML snapshot. Malformed input fails with
// floydwarshall.ErrCorruptSnapshot.
func Decode(data []byte) (*floydwarshall.Index, error) {
	var s floydwarshall.Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", floydwarshall.ErrCorruptSnapshot, err)
	}

	return floydwarshall.Restore(s)
}
