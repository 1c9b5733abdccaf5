// Package passage provides the passage sets a typing session draws from.
package passage

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// ErrEmptySet is returned when a passage set has no usable passages.
var ErrEmptySet = errors.New("passage set is empty")

// Set is an ordered, non-empty collection of passages.
type Set struct {
	passages []string
	rnd      *rand.Rand
}

// NewSet returns a set of the non-blank passages, trimmed of surrounding
// whitespace.
func NewSet(passages []string) (*Set, error) {
	kept := make([]string, 0, len(passages))
	for _, p := range passages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, ErrEmptySet
	}
	return &Set{
		passages: kept,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed makes draws reproducible.
func (s *Set) Seed(seed int64) {
	s.rnd = rand.New(rand.NewSource(seed))
}

// Pick draws one passage uniformly at random.
func (s *Set) Pick() (string, error) {
	if s == nil || len(s.passages) == 0 {
		return "", ErrEmptySet
	}
	return s.passages[s.rnd.Intn(len(s.passages))], nil
}

// Len returns the number of passages.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.passages)
}

// All returns a copy of the passages in order.
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.passages...)
}
