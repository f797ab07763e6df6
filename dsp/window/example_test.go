package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApply() {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleAnalyze() {
	a := Analyze(Generate(TypeHann, 256, WithPeriodic()))
	fmt.Printf("coherent gain: %.2f\n", a.CoherentGain)
	fmt.Printf("enbw: %.2f bins\n", a.ENBW)
	fmt.Printf("first null: %.2f bins\n", a.FirstMinimumBins)
	// Output:
	// coherent gain: 0.50
	// enbw: 1.50 bins
	// first null: 2.00 bins
}
