// Package catalog holds the identity catalog: every known player from the
// league-management service, keyed by identifier.
package catalog

import (
	"fmt"
	"sort"

	"github.com/okian/lineup/internal/domain/model"
)

// Catalog is an immutable directory of player identities. It is safe for
// concurrent reads once built.
type Catalog struct {
	byID     map[string]model.PlayerIdentity
	ids      []string // ascending
	excluded map[string]struct{}
	dropped  int
}

// New builds a Catalog from a snapshot. Identities whose ID is in the
// exclusion set are dropped and counted. Empty or repeated identifiers are
// rejected.
func New(identities []model.PlayerIdentity, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[string]model.PlayerIdentity, len(identities)),
		excluded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, id := range identities {
		if id.ID == "" {
			return nil, ErrEmptyID
		}
		if _, skip := c.excluded[id.ID]; skip {
			c.dropped++
			continue
		}
		if _, dup := c.byID[id.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id.ID)
		}
		c.byID[id.ID] = id
		c.ids = append(c.ids, id.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

// Lookup returns the identity for id, or ErrMissingIdentity.
func (c *Catalog) Lookup(id string) (model.PlayerIdentity, error) {
	p, ok := c.byID[id]
	if !ok {
		return model.PlayerIdentity{}, fmt.Errorf("%w: %s", ErrMissingIdentity, id)
	}
	return p, nil
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// IDs returns every identifier in ascending order. The returned slice is a
// copy.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Len returns the number of identities in the catalog.
func (c *Catalog) Len() int { return len(c.ids) }

// Dropped returns how many identities were removed by the exclusion set.
func (c *Catalog) Dropped() int { return c.dropped }
