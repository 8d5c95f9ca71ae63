// Package intset provides IntSet, a fixed-capacity set of distinct ints that
// remembers the order in which its current members were added.
package intset

import (
	"errors"
	"fmt"
)

// MaxSize is the number of distinct values an IntSet can hold.
const MaxSize = 10

var ErrCapacityExceeded = errors.New("intset capacity exceeded")

// IntSet is a set of at most MaxSize distinct ints stored in a fixed array.
//
// data[0:used] holds the current members ordered by when they became members;
// a value that is removed and added again goes to the end. Nothing past used
// is meaningful. The zero value is an empty set, and copying an IntSet copies
// its contents.
//
// An IntSet is not safe for concurrent use.
type IntSet struct {
	data [MaxSize]int
	used int
}

// Ensure IntSet satisfies intset.Interface at compile-time.
var _ Interface = (*IntSet)(nil)

// New returns a set built by adding the provided values in order. Duplicates
// collapse and values that don't fit are dropped, just like Add.
func New(values ...int) *IntSet {
	s := &IntSet{}

	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Size returns the number of values in the set.
func (s *IntSet) Size() int {
	if s == nil {
		return 0
	}

	return s.used
}

// IsEmpty returns whether the set has no values.
func (s *IntSet) IsEmpty() bool {
	return s.Size() == 0
}

// Contains returns whether v is in the set.
func (s *IntSet) Contains(v int) bool {
	return s.indexOf(v) >= 0
}

// Add appends v to the set. It returns false, leaving the set untouched, if v
// is already present or the set is full.
func (s *IntSet) Add(v int) bool {
	if s.Contains(v) || s.used >= MaxSize {
		return false
	}

	s.data[s.used] = v
	s.used++

	return true
}

// Remove deletes v from the set, shifting the values after it one slot left
// so their relative order is kept. It returns false if v isn't present.
func (s *IntSet) Remove(v int) bool {
	i := s.indexOf(v)
	if i < 0 {
		return false
	}

	copy(s.data[i:s.used], s.data[i+1:s.used])
	s.used--

	return true
}

// Reset empties the set.
func (s *IntSet) Reset() {
	s.used = 0
}

// UnionSize returns the size UnionWith would produce for other.
func (s *IntSet) UnionSize(other *IntSet) int {
	n := s.Size()

	for _, v := range other.Values() {
		if !s.Contains(v) {
			n++
		}
	}

	return n
}

// UnionWith returns a new set holding the values of s in order followed by the
// values of other that are not in s, in other's order.
//
// The union must fit in MaxSize values. UnionWith panics with an error
// wrapping ErrCapacityExceeded otherwise; use UnionSize to check first.
func (s *IntSet) UnionWith(other *IntSet) *IntSet {
	if n := s.UnionSize(other); n > MaxSize {
		panic(fmt.Errorf("union of %d values: %w", n, ErrCapacityExceeded))
	}

	result := s.clone()

	for _, v := range other.Values() {
		result.Add(v)
	}

	return result
}

// Intersect returns a new set with the values of s that are also in other,
// in the order they have in s.
func (s *IntSet) Intersect(other *IntSet) *IntSet {
	result := &IntSet{}

	for _, v := range s.Values() {
		if other.Contains(v) {
			result.Add(v)
		}
	}

	return result
}

// Subtract returns a new set with the values of s that are not in other, in
// the order they have in s.
func (s *IntSet) Subtract(other *IntSet) *IntSet {
	result := s.clone()

	for _, v := range other.Values() {
		result.Remove(v)
	}

	return result
}

// IsSubsetOf determines if every value in s is in other. The empty set is a
// subset of every set.
func (s *IntSet) IsSubsetOf(other *IntSet) bool {
	for _, v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// Values returns a copy of the values in stored order.
func (s *IntSet) Values() []int {
	if s == nil {
		return nil
	}

	values := make([]int, s.used)
	copy(values, s.data[:s.used])

	return values
}

// Equal determines if a and b hold the same values.
//
// Note: Order is irrelevant.
func Equal(a, b *IntSet) bool {
	return a.Size() == b.Size() && a.IsSubsetOf(b) && b.IsSubsetOf(a)
}

func (s *IntSet) clone() *IntSet {
	if s == nil {
		return &IntSet{}
	}

	c := *s
	return &c
}

func (s *IntSet) indexOf(v int) int {
	for i := 0; i < s.Size(); i++ {
		if s.data[i] == v {
			return i
		}
	}

	return -1
}
