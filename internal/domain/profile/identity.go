// Package profile maps browser identities to their storage locations.
package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrUnknownIdentity is returned when a name is not part of the configured set.
	ErrUnknownIdentity = errors.New("unknown identity")
	// ErrInvalidIdentity is returned for names that are not a single path element.
	ErrInvalidIdentity = errors.New("invalid identity name")
	// ErrProfileInUse is returned when another process holds the profile lock.
	ErrProfileInUse = errors.New("profile is already in use")
)

// Identity is a named browsing identity. Ephemeral identities never touch the disk.
type Identity struct {
	Name      string
	Ephemeral bool
}

// Set is the ordered, immutable list of identities offered to the user.
type Set struct {
	identities []Identity
}

// NewSet builds the identity set from ordered names and the ephemeral subset.
func NewSet(names, ephemeral []string) (*Set, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty identity list", ErrInvalidIdentity)
	}

	ids := make([]Identity, 0, len(names))
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		if slices.ContainsFunc(ids, func(id Identity) bool { return id.Name == name }) {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidIdentity, name)
		}
		ids = append(ids, Identity{
			Name:      name,
			Ephemeral: slices.Contains(ephemeral, name),
		})
	}
	return &Set{identities: ids}, nil
}

// ValidateName checks that name can be used as a storage directory.
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidIdentity, name)
	}
	return nil
}

// All returns the identities in display order.
func (s *Set) All() []Identity {
	return slices.Clone(s.identities)
}

// Names returns the identity names in display order.
func (s *Set) Names() []string {
	names := make([]string, len(s.identities))
	for i, id := range s.identities {
		names[i] = id.Name
	}
	return names
}

// Lookup returns the identity with the given name.
func (s *Set) Lookup(name string) (Identity, error) {
	for _, id := range s.identities {
		if id.Name == name {
			return id, nil
		}
	}
	return Identity{}, fmt.Errorf("%w: %q", ErrUnknownIdentity, name)
}
