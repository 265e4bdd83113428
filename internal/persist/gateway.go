// Package persist serializes the task collection to an opaque blob store.
// The encoding is a versioned JSON envelope that round-trips every task
// field exactly; unknown fields on load are ignored so newer writers do not
// break older readers.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pacerlabs/pacer/internal/domain"
)

// blobName is the single blob holding the whole collection.
const blobName = "tasks"

// envelopeVersion guards against future format changes.
const envelopeVersion = 1

type envelope struct {
	Version int           `json:"version"`
	Tasks   []domain.Task `json:"tasks"`
}

// Gateway writes and reads the full task collection.
type Gateway struct {
	blobs domain.BlobStore
	log   *zap.Logger
}

// NewGateway creates a gateway over the given blob store.
func NewGateway(blobs domain.BlobStore, log *zap.Logger) *Gateway {
	return &Gateway{blobs: blobs, log: log}
}

// Save rewrites the persisted collection. Order is preserved exactly.
func (g *Gateway) Save(tasks []domain.Task) error {
	data, err := json.Marshal(envelope{Version: envelopeVersion, Tasks: tasks})
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := g.blobs.WriteBlob(blobName, data); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}

// Load reads the persisted collection. A missing blob and an undecodable
// blob both degrade to an empty collection — availability over strict
// integrity, since the timer is a non-critical personal utility.
func (g *Gateway) Load() []domain.Task {
	data, err := g.blobs.ReadBlob(blobName)
	if errors.Is(err, domain.ErrBlobNotFound) {
		return nil
	}
	if err != nil {
		g.log.Warn("read persisted tasks failed, starting empty", zap.Error(err))
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		g.log.Warn("persisted tasks undecodable, starting empty", zap.Error(err))
		return nil
	}
	return env.Tasks
}
