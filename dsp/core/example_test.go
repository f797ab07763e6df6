package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
)

func ExampleLinearToDB() {
	fmt.Printf("%.2f\n", core.LinearToDB(0.5))
	fmt.Printf("%.2f\n", core.DBToLinear(-6.02))
	// Output:
	// -6.02
	// 0.50
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	buf[2], buf[3] = 3, 4
	fmt.Println(buf)

	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// [1 2 3 4]
	// [0 0 3 4]
}
