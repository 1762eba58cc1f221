// Package ranking holds the per-position expert-consensus ranking index.
package ranking

import (
	"fmt"

	"github.com/okian/lineup/internal/domain/model"
)

// Index maps a position to its ordered ranking list. Source order is
// preserved; it is the match-priority order. An Index is read-only once
// built.
type Index struct {
	lists map[model.Position][]model.RankingEntry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{lists: make(map[model.Position][]model.RankingEntry)}
}

// Set installs the ranking list for a position. Entries are copied; an entry
// with an empty position inherits pos, any other position is rejected.
// Setting an empty list still marks the position as supported.
func (ix *Index) Set(pos model.Position, entries []model.RankingEntry) error {
	if !pos.IsSupported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedPosition, pos)
	}
	list := make([]model.RankingEntry, len(entries))
	for i, e := range entries {
		switch e.Position {
		case pos:
		case model.Unsupported:
			e.Position = pos
		default:
			return fmt.Errorf("%w: %s entry in %s list", ErrPositionMismatch, e.Position, pos)
		}
		list[i] = e
	}
	ix.lists[pos] = list
	return nil
}

// List returns the ranking list for pos, or ErrUnsupportedPosition when the
// index has none. The returned slice must not be modified.
func (ix *Index) List(pos model.Position) ([]model.RankingEntry, error) {
	list, ok := ix.lists[pos]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPosition, pos)
	}
	return list, nil
}

// Has reports whether pos has a ranking list.
func (ix *Index) Has(pos model.Position) bool {
	_, ok := ix.lists[pos]
	return ok
}

// Positions returns the positions present in the index, in lineup order.
func (ix *Index) Positions() []model.Position {
	out := make([]model.Position, 0, len(ix.lists))
	for _, p := range model.SupportedPositions() {
		if ix.Has(p) {
			out = append(out, p)
		}
	}
	return out
}
