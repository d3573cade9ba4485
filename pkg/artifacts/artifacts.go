// Package artifacts provides versioned blob storage keyed by (name, version),
// with in-memory and Azure Blob Storage implementations.
//
// Versions for a given name are monotonically increasing integers starting at 0.
// A saved version is immutable; saving under an existing name assigns the next
// version. Version assignment under the same name is serialized; saves under
// different names never interfere.
package artifacts

import (
	"context"

	"github.com/JaimeStill/courier/pkg/lifecycle"
)

// Artifact is a single stored version of a named blob.
type Artifact struct {
	Name        string `json:"name"`
	Version     int    `json:"version"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Ref identifies an artifact version without carrying its bytes.
// Workflow state holds refs, never raw blob data.
type Ref struct {
	Name    string `json:"artifact_name"`
	Version int    `json:"artifact_version"`
}

// Store manages versioned artifact persistence and lifecycle coordination.
type Store interface {
	// Start registers startup hooks (e.g. backing container initialization).
	Start(lc *lifecycle.Coordinator) error
	// Save stores data as the next version of name and returns the assigned version.
	Save(ctx context.Context, name string, data []byte, contentType string) (int, error)
	// Load returns the artifact at (name, version).
	// Returns ErrNotFound if no such version exists.
	Load(ctx context.Context, name string, version int) (*Artifact, error)
}
