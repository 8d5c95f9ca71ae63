package intset

import "io"

type Interface interface {
	// Returns the number of values in the set.
	Size() int

	// Returns whether the set has no values.
	IsEmpty() bool

	// Returns whether the provided value is in the set.
	Contains(int) bool

	// Adds a value to the end of the set. Returns false if the value is
	// already present or the set is full.
	Add(int) bool

	// Removes a value from the set, keeping the order of the values after it.
	Remove(int) bool

	// Removes all values from the set.
	Reset()

	// Returns a new set with the values of this set followed by the values of
	// the provided set that are not in this set.
	UnionWith(*IntSet) *IntSet

	// Returns a new set containing only the values that exist in both sets,
	// in this set's order.
	Intersect(*IntSet) *IntSet

	// Returns a new set with values contained in this set that are not present
	// in the provided set.
	Subtract(*IntSet) *IntSet

	// Determines if every value in this set is in the provided set.
	IsSubsetOf(*IntSet) bool

	// Writes the values in stored order separated by two spaces.
	Dump(io.Writer) error

	// Returns the set as a slice.
	Values() []int

	// Provides a string representation of the set.
	String() string
}
