package ziplist_test

import (
	"fmt"
	"strconv"

	"go.llib.dev/ziplist"
)

func ExampleNew() {
	zl := ziplist.New([]string{"home", "news"}, "profile", []string{"settings", "logout"})

	fmt.Println(zl.Value())
	fmt.Println(zl.Index())
	// Output:
	// profile
	// 2
}

func ExampleFromSlice() {
	zl, err := ziplist.FromSlice([]int{1, 2, 3})
	if err != nil {
		panic(err)
	}

	fmt.Println(zl.Value())
	// Output: 1
}

func ExampleFromSliceBy() {
	zl, err := ziplist.FromSliceBy([]int{1, 2, 3, 4}, func(v int) bool {
		return v%2 == 0
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(zl.Value())
	// Output: 2
}

func ExampleZipList_StepForward() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})
	zl = zl.StepForward()

	fmt.Println(zl.Value())
	// Output: 4
}

func ExampleZipList_StepForwardWrap() {
	zl := ziplist.New([]int{1, 2}, 3, nil) // cursor on the last element

	zl = zl.StepForwardWrap() // wraps around to the first

	fmt.Println(zl.Value())
	// Output: 1
}

func ExampleZipList_JumpTo() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})

	fmt.Println(zl.JumpTo(0).Value())
	fmt.Println(zl.JumpTo(42).Value()) // clamps to the last element
	// Output:
	// 1
	// 5
}

func ExampleZipList_TryRemove() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})

	zl, err := zl.TryRemove()
	if err != nil {
		panic(err)
	}

	fmt.Println(zl.Value())
	// Output: 4
}

func ExampleZipList_Filter() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})

	zl, err := zl.Filter(func(v int) bool { return v%2 == 1 })
	if err != nil {
		panic(err)
	}

	fmt.Println(zl.ToSlice())
	// Output: [1 3 5]
}

func ExampleMap() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})

	got := ziplist.Map(zl, strconv.Itoa)

	fmt.Println(got.Value())
	// Output: 3
}

func ExampleCursorMap() {
	zl := ziplist.New([]string{"home", "news"}, "profile", []string{"logout"})

	rendered := ziplist.CursorMap(zl, func(v string, isCurrent bool) string {
		if isCurrent {
			return "[" + v + "]"
		}
		return v
	})

	fmt.Println(rendered.ToSlice())
	// Output: [home news [profile] logout]
}

func ExampleZipList_Iter() {
	zl := ziplist.New([]int{1, 2}, 3, []int{4, 5})

	for i, v := range zl.Iter() {
		_, _ = i, v
	}
}
