// Package ziplist provides an immutable ordered sequence with a distinguished current element.
//
// A ZipList splits its elements into the part before the cursor, the current
// element and the part after the cursor, which makes bidirectional stepping,
// absolute jumps and cursor relative editing cheap to express.
// Every operation is a pure function: it takes a ZipList value and returns a
// new one, the input is never modified.
package ziplist

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

const (
	// ErrEmptyInput is returned when a ZipList is being made from an empty sequence.
	ErrEmptyInput errorkit.Error = "ziplist: empty input sequence"
	// ErrNoMatch is returned when no element of the input sequence satisfies the predicate.
	ErrNoMatch errorkit.Error = "ziplist: no element matches the predicate"
	// ErrAtBoundary is returned when a step has no element left in the stepping direction.
	ErrAtBoundary errorkit.Error = "ziplist: cursor is at the boundary"
	// ErrLastElement is returned when removing the current element would leave the ZipList empty.
	ErrLastElement errorkit.Error = "ziplist: cannot remove the last element"
	// ErrEmptyResult is returned when filtering would leave the ZipList empty.
	ErrEmptyResult errorkit.Error = "ziplist: every element is filtered out"
)

// ZipList is an ordered sequence of T values with a cursor on one of them.
// The current element is always present, a ZipList is never empty.
// The zero value of ZipList[T] is a valid single element list,
// holding the zero value of T as its current element.
//
// ZipList values are immutable, operations return a new derived value.
// Because of that, a ZipList can be shared between goroutines without synchronisation.
type ZipList[T any] struct {
	before  []T
	current T
	after   []T
}

// New makes a ZipList from its three parts, with the cursor on current.
// The element right before the cursor is the last element of before,
// the element right after the cursor is the first element of after.
// The input slices are copied, the caller remains free to modify them.
func New[T any](before []T, current T, after []T) ZipList[T] {
	return ZipList[T]{
		before:  slicekit.Clone(before),
		current: current,
		after:   slicekit.Clone(after),
	}
}

// Singleton makes a single element ZipList with the cursor on v.
func Singleton[T any](v T) ZipList[T] {
	return ZipList[T]{current: v}
}

// FromSlice makes a ZipList from vs with the cursor on the first element.
// It returns ErrEmptyInput when vs is empty.
func FromSlice[T any](vs []T) (ZipList[T], error) {
	if len(vs) == 0 {
		return ZipList[T]{}, ErrEmptyInput
	}
	return ZipList[T]{
		current: vs[0],
		after:   slicekit.Clone(vs[1:]),
	}, nil
}

// FromSliceBy makes a ZipList from vs with the cursor on the first element
// that satisfies the by predicate.
// It returns ErrNoMatch when no element satisfies it, including when vs is empty.
func FromSliceBy[T any](vs []T, by func(v T) bool) (ZipList[T], error) {
	for i, v := range vs {
		if by(v) {
			return ZipList[T]{
				before:  slicekit.Clone(vs[:i]),
				current: v,
				after:   slicekit.Clone(vs[i+1:]),
			}, nil
		}
	}
	return ZipList[T]{}, ErrNoMatch
}

// Value returns the current element.
func (zl ZipList[T]) Value() T {
	return zl.current
}

// LookupPrev returns the element right before the cursor.
// The returned bool is false when the cursor is on the first element.
func (zl ZipList[T]) LookupPrev() (T, bool) {
	return slicekit.Last(zl.before)
}

// LookupNext returns the element right after the cursor.
// The returned bool is false when the cursor is on the last element.
func (zl ZipList[T]) LookupNext() (T, bool) {
	return slicekit.First(zl.after)
}

// Lookup returns the element at the given zero based absolute index,
// without moving the cursor.
// A negative index reports not found,
// it is not resolved backwards from the end.
func (zl ZipList[T]) Lookup(index int) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}
	if index < len(zl.before) {
		return slicekit.Lookup(zl.before, index)
	}
	if index == len(zl.before) {
		return zl.current, true
	}
	return slicekit.Lookup(zl.after, index-len(zl.before)-1)
}

// Index returns the zero based absolute position of the cursor.
func (zl ZipList[T]) Index() int {
	return len(zl.before)
}

// IsFirst reports whether the cursor is on the first element.
func (zl ZipList[T]) IsFirst() bool {
	return len(zl.before) == 0
}

// IsLast reports whether the cursor is on the last element.
func (zl ZipList[T]) IsLast() bool {
	return len(zl.after) == 0
}

// Len returns the total number of elements, which is always at least one.
func (zl ZipList[T]) Len() int {
	return len(zl.before) + 1 + len(zl.after)
}

// Before returns a copy of the elements preceding the cursor, in natural order.
func (zl ZipList[T]) Before() []T {
	return slicekit.Clone(zl.before)
}

// After returns a copy of the elements following the cursor, in natural order.
func (zl ZipList[T]) After() []T {
	return slicekit.Clone(zl.after)
}

// ToSlice returns the whole sequence as a freshly allocated slice,
// before elements first, then the current element, then the after elements.
func (zl ZipList[T]) ToSlice() []T {
	out := make([]T, 0, zl.Len())
	out = append(out, zl.before...)
	out = append(out, zl.current)
	return append(out, zl.after...)
}

// Iter iterates over the whole sequence in order,
// yielding each element together with its absolute index.
func (zl ZipList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range zl.before {
			if !yield(i, v) {
				return
			}
		}
		if !yield(len(zl.before), zl.current) {
			return
		}
		for i, v := range zl.after {
			if !yield(len(zl.before)+1+i, v) {
				return
			}
		}
	}
}
