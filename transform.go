package ziplist

import "go.llib.dev/frameless/pkg/slicekit"

// Map makes a new ZipList by applying fn to every element.
// The cursor stays on the mapped current element.
func Map[O, I any](zl ZipList[I], fn func(v I) O) ZipList[O] {
	return ZipList[O]{
		before:  slicekit.Map(zl.before, fn),
		current: fn(zl.current),
		after:   slicekit.Map(zl.after, fn),
	}
}

// CursorMap makes a new ZipList by applying fn to every element.
// The isCurrent argument of fn is true for the current element only.
func CursorMap[O, I any](zl ZipList[I], fn func(v I, isCurrent bool) O) ZipList[O] {
	other := func(v I) O { return fn(v, false) }
	return ZipList[O]{
		before:  slicekit.Map(zl.before, other),
		current: fn(zl.current, true),
		after:   slicekit.Map(zl.after, other),
	}
}

// IndexMap makes a new ZipList by applying fn to every element
// together with its zero based absolute position.
func IndexMap[O, I any](zl ZipList[I], fn func(v I, index int) O) ZipList[O] {
	var out ZipList[O]
	out.before = make([]O, len(zl.before))
	for i, v := range zl.before {
		out.before[i] = fn(v, i)
	}
	out.current = fn(zl.current, len(zl.before))
	out.after = make([]O, len(zl.after))
	for i, v := range zl.after {
		out.after[i] = fn(v, len(zl.before)+1+i)
	}
	return out
}

// Filter makes a new ZipList that keeps only the elements which satisfy the fn predicate.
// When the current element is dropped, the cursor relocates to the first surviving
// element after it, or failing that, to the last surviving element before it.
// It returns ErrEmptyResult when no element survives.
func (zl ZipList[T]) Filter(fn func(v T) bool) (ZipList[T], error) {
	var (
		before = slicekit.Filter(zl.before, fn)
		after  = slicekit.Filter(zl.after, fn)
	)
	if fn(zl.current) {
		return ZipList[T]{before: before, current: zl.current, after: after}, nil
	}
	if next, ok := slicekit.First(after); ok {
		return ZipList[T]{before: before, current: next, after: after[1:]}, nil
	}
	if prev, ok := slicekit.Last(before); ok {
		return ZipList[T]{before: before[:len(before)-1], current: prev}, nil
	}
	return ZipList[T]{}, ErrEmptyResult
}
