package artifacts

import "errors"

var (
	// ErrNotFound indicates the requested artifact version does not exist.
	ErrNotFound = errors.New("artifact not found")
	// ErrEmptyName indicates an empty artifact name was provided.
	ErrEmptyName = errors.New("artifact name must not be empty")
	// ErrInvalidName indicates the artifact name contains a path traversal segment.
	ErrInvalidName = errors.New("artifact name contains invalid path segment")
)

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	for i := 0; i+1 < len(name); i++ {
		if name[i] == '.' && name[i+1] == '.' {
			return ErrInvalidName
		}
	}
	return nil
}
