package ziplist

import "go.llib.dev/frameless/pkg/slicekit"

// TryStepForward moves the cursor one position towards the end.
// It returns ErrAtBoundary when the cursor is already on the last element.
func (zl ZipList[T]) TryStepForward() (ZipList[T], error) {
	if zl.IsLast() {
		return zl, ErrAtBoundary
	}
	return ZipList[T]{
		before:  slicekit.Merge(zl.before, []T{zl.current}),
		current: zl.after[0],
		after:   zl.after[1:],
	}, nil
}

// TryStepBackward moves the cursor one position towards the start.
// It returns ErrAtBoundary when the cursor is already on the first element.
func (zl ZipList[T]) TryStepBackward() (ZipList[T], error) {
	if zl.IsFirst() {
		return zl, ErrAtBoundary
	}
	return ZipList[T]{
		before:  zl.before[:len(zl.before)-1],
		current: zl.before[len(zl.before)-1],
		after:   slicekit.Merge([]T{zl.current}, zl.after),
	}, nil
}

// StepForward moves the cursor one position towards the end,
// or returns the ZipList unchanged when the cursor is already on the last element.
func (zl ZipList[T]) StepForward() ZipList[T] {
	out, err := zl.TryStepForward()
	if err != nil {
		return zl
	}
	return out
}

// StepBackward moves the cursor one position towards the start,
// or returns the ZipList unchanged when the cursor is already on the first element.
func (zl ZipList[T]) StepBackward() ZipList[T] {
	out, err := zl.TryStepBackward()
	if err != nil {
		return zl
	}
	return out
}

// StepForwardWrap moves the cursor one position towards the end,
// wrapping around to the first element when the cursor is already on the last one.
func (zl ZipList[T]) StepForwardWrap() ZipList[T] {
	if zl.IsLast() {
		return zl.ToFirst()
	}
	return zl.StepForward()
}

// StepBackwardWrap moves the cursor one position towards the start,
// wrapping around to the last element when the cursor is already on the first one.
func (zl ZipList[T]) StepBackwardWrap() ZipList[T] {
	if zl.IsFirst() {
		return zl.ToLast()
	}
	return zl.StepBackward()
}

// Advance moves the cursor up to n positions towards the end,
// stopping silently when the last element is reached.
//
// Stepping stops on reaching the boundary, not when the counter runs out,
// so a negative n moves the cursor all the way to the last element.
func (zl ZipList[T]) Advance(n int) ZipList[T] {
	for i := 0; i != n; i++ {
		if zl.IsLast() {
			break
		}
		zl = zl.StepForward()
	}
	return zl
}

// Retreat moves the cursor up to n positions towards the start,
// stopping silently when the first element is reached.
//
// Stepping stops on reaching the boundary, not when the counter runs out,
// so a negative n moves the cursor all the way to the first element.
func (zl ZipList[T]) Retreat(n int) ZipList[T] {
	for i := 0; i != n; i++ {
		if zl.IsFirst() {
			break
		}
		zl = zl.StepBackward()
	}
	return zl
}

// ToFirst moves the cursor to the first element in a single pass.
func (zl ZipList[T]) ToFirst() ZipList[T] {
	if zl.IsFirst() {
		return zl
	}
	return ZipList[T]{
		current: zl.before[0],
		after:   slicekit.Merge(zl.before[1:], []T{zl.current}, zl.after),
	}
}

// ToLast moves the cursor to the last element in a single pass.
func (zl ZipList[T]) ToLast() ZipList[T] {
	if zl.IsLast() {
		return zl
	}
	return ZipList[T]{
		before:  slicekit.Merge(zl.before, []T{zl.current}, zl.after[:len(zl.after)-1]),
		current: zl.after[len(zl.after)-1],
	}
}

// JumpTo moves the cursor to the given zero based absolute index.
// An index below zero selects the first element,
// an index at or beyond Len selects the last element.
// JumpTo always succeeds.
func (zl ZipList[T]) JumpTo(index int) ZipList[T] {
	if index < 0 {
		index = 0
	}
	if last := zl.Len() - 1; last < index {
		index = last
	}
	if index == zl.Index() {
		return zl
	}
	flat := zl.ToSlice()
	return ZipList[T]{
		before:  flat[:index],
		current: flat[index],
		after:   flat[index+1:],
	}
}
