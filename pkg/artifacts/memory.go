package artifacts

import (
	"context"
	"sync"

	"github.com/JaimeStill/courier/pkg/lifecycle"
)

type memory struct {
	mu    sync.Mutex
	blobs map[string][]*Artifact
}

// NewMemory creates an in-process Store. Used for local runs and tests;
// contents are discarded when the process exits.
func NewMemory() Store {
	return &memory{
		blobs: make(map[string][]*Artifact),
	}
}

func (m *memory) Start(lc *lifecycle.Coordinator) error {
	return nil
}

func (m *memory) Save(ctx context.Context, name string, data []byte, contentType string) (int, error) {
	if err := validateName(name); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	version := len(m.blobs[name])

	stored := make([]byte, len(data))
	copy(stored, data)

	m.blobs[name] = append(m.blobs[name], &Artifact{
		Name:        name,
		Version:     version,
		ContentType: contentType,
		Data:        stored,
	})

	return version, nil
}

func (m *memory) Load(ctx context.Context, name string, version int) (*Artifact, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	versions := m.blobs[name]
	if version < 0 || version >= len(versions) {
		return nil, ErrNotFound
	}

	a := versions[version]
	data := make([]byte, len(a.Data))
	copy(data, a.Data)

	return &Artifact{
		Name:        a.Name,
		Version:     a.Version,
		ContentType: a.ContentType,
		Data:        data,
	}, nil
}
