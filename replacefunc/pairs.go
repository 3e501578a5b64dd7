package replacefunc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKey        = errors.New("replacement key is empty")
	ErrEmptyValue      = errors.New("replacement value is empty")
	ErrIndexOutOfRange = errors.New("pair index out of range")
)

// Pair is a single bulk replace entry: occurrences of Key are replaced by Value.
type Pair struct {
	Key   string
	Value string
}

// NewPair trims both sides and rejects empty ones.
func NewPair(key, value string) (Pair, error) {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return Pair{}, ErrEmptyKey
	}
	if value == "" {
		return Pair{}, ErrEmptyValue
	}
	return Pair{Key: key, Value: value}, nil
}

// String formats the pair the way the bulk replace list shows it.
func (p Pair) String() string {
	return p.Key + ": " + p.Value
}

// PairList is an ordered, read-only snapshot of pairs.
// Duplicates are allowed and order is insertion order.
type PairList struct {
	pairs []Pair
}

// NewPairList copies pairs into a new list.
func NewPairList(pairs ...Pair) PairList {
	if len(pairs) == 0 {
		return PairList{}
	}
	cp := make([]Pair, len(pairs))
	copy(cp, pairs)
	return PairList{pairs: cp}
}

func (l PairList) Len() int { return len(l.pairs) }

func (l PairList) At(i int) Pair { return l.pairs[i] }

// Pairs returns a copy of the pairs.
func (l PairList) Pairs() []Pair {
	cp := make([]Pair, len(l.pairs))
	copy(cp, l.pairs)
	return cp
}

// Builder returns a builder seeded with a copy of the list.
func (l PairList) Builder() *PairListBuilder {
	return &PairListBuilder{pairs: l.Pairs()}
}

// PairListBuilder is the mutable working copy edited by the bulk replace dialog.
// Nothing it does is visible outside until Build is called.
type PairListBuilder struct {
	pairs []Pair
}

func NewPairListBuilder() *PairListBuilder {
	return &PairListBuilder{}
}

// Add appends a pair after trimming. Empty keys or values are rejected.
func (b *PairListBuilder) Add(key, value string) (Pair, error) {
	p, err := NewPair(key, value)
	if err != nil {
		return Pair{}, err
	}
	b.pairs = append(b.pairs, p)
	return p, nil
}

// Remove deletes the pair at index.
func (b *PairListBuilder) Remove(index int) error {
	if index < 0 || index >= len(b.pairs) {
		return fmt.Errorf("remove %d of %d: %w", index, len(b.pairs), ErrIndexOutOfRange)
	}
	b.pairs = append(b.pairs[:index], b.pairs[index+1:]...)
	return nil
}

func (b *PairListBuilder) Len() int { return len(b.pairs) }

// Pairs returns a copy of the current working pairs.
func (b *PairListBuilder) Pairs() []Pair {
	cp := make([]Pair, len(b.pairs))
	copy(cp, b.pairs)
	return cp
}

// Build returns an immutable snapshot of the builder.
func (b *PairListBuilder) Build() PairList {
	return NewPairList(b.pairs...)
}
