package multicolor_test

import (
	"fmt"

	"github.com/aganezov/bg-sub000/multicolor"
)

// ExampleSplit partitions a three-genome multicolor with two guidance
// templates: one full match, one repeated peel, one partial overlap.
func ExampleSplit() {
	target := multicolor.New("red", "red", "blue", "green")
	parts := multicolor.Split(target,
		multicolor.WithGuidance(
			multicolor.New("red", "blue"),
			multicolor.New("green"),
		),
	)
	for _, p := range parts {
		fmt.Println(p)
	}
	// Output:
	// {blue, red}
	// {green}
	// {red}
}
