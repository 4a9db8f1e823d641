package ziplist

import "go.llib.dev/frameless/pkg/slicekit"

// Replace swaps the current element for v, everything else stays in place.
func (zl ZipList[T]) Replace(v T) ZipList[T] {
	zl.current = v
	return zl
}

// AppendAfter adds the given values at the very end of the sequence.
func (zl ZipList[T]) AppendAfter(vs ...T) ZipList[T] {
	if len(vs) == 0 {
		return zl
	}
	zl.after = slicekit.Merge(zl.after, vs)
	return zl
}

// PrependAfter adds the given values right after the cursor.
func (zl ZipList[T]) PrependAfter(vs ...T) ZipList[T] {
	if len(vs) == 0 {
		return zl
	}
	zl.after = slicekit.Merge(vs, zl.after)
	return zl
}

// AppendBefore adds the given values right before the cursor.
func (zl ZipList[T]) AppendBefore(vs ...T) ZipList[T] {
	if len(vs) == 0 {
		return zl
	}
	zl.before = slicekit.Merge(zl.before, vs)
	return zl
}

// PrependBefore adds the given values at the very start of the sequence.
func (zl ZipList[T]) PrependBefore(vs ...T) ZipList[T] {
	if len(vs) == 0 {
		return zl
	}
	zl.before = slicekit.Merge(vs, zl.before)
	return zl
}

// TryRemove removes the current element.
// The cursor moves to the next element when there is one,
// otherwise it moves to the previous element.
// It returns ErrLastElement when the current element is the only one,
// since a ZipList can never become empty.
func (zl ZipList[T]) TryRemove() (ZipList[T], error) {
	if next, ok := slicekit.First(zl.after); ok {
		return ZipList[T]{
			before:  zl.before,
			current: next,
			after:   zl.after[1:],
		}, nil
	}
	if prev, ok := slicekit.Last(zl.before); ok {
		return ZipList[T]{
			before:  zl.before[:len(zl.before)-1],
			current: prev,
		}, nil
	}
	return zl, ErrLastElement
}

// Remove removes the current element like TryRemove does,
// but returns the ZipList unchanged when the current element is the only one.
func (zl ZipList[T]) Remove() ZipList[T] {
	out, err := zl.TryRemove()
	if err != nil {
		return zl
	}
	return out
}

// RemoveRetreating removes the current element, then steps the cursor backward,
// landing on the element that preceded the removed one when there is one.
// It returns the ZipList unchanged when the current element is the only one.
func (zl ZipList[T]) RemoveRetreating() ZipList[T] {
	out, err := zl.TryRemove()
	if err != nil {
		return zl
	}
	return out.StepBackward()
}
