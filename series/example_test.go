package series_test

import (
	"fmt"

	"github.com/katalvlaran/profitscan/series"
)

// ExampleRamp builds an exact falling fixture: handy as a guaranteed
// zero-profit input for the scan.
func ExampleRamp() {
	fmt.Println(series.Ramp(5, 9, -2))
	// Output:
	// [9 7 5 3 1]
}
