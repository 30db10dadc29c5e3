package scale_test

import (
	"fmt"

	"github.com/ryadav96/react-charts/scale"
)

// ExampleContinuous demonstrates nice rounding, projection and tick
// formatting on a linear scale.
func ExampleContinuous() {
	s := scale.NewLinear().SetDomain(0.13, 9.87).SetRange(0, 100).Nice(10)

	d0, d1 := s.Domain()
	format := s.TickFormat(10)
	fmt.Println("domain:", d0, "→", d1)
	fmt.Println("px(5):", s.Scale(5))
	fmt.Println("label:", format(5))

	// Output:
	// domain: 0 → 10
	// px(5): 50
	// label: 5
}

// ExampleBand demonstrates banding categories into padded pixel slots
// and snapping a pixel back to its category.
func ExampleBand() {
	b := scale.NewBand[string]().
		SetDomain([]string{"mon", "tue", "wed", "thu"}).
		SetRange(0, 400)

	px, _ := b.Scale("wed")
	fmt.Println("wed starts at:", px)
	fmt.Println("bandwidth:", b.Bandwidth())

	day, _ := b.Invert(130)
	fmt.Println("pixel 130 is:", day)

	// Output:
	// wed starts at: 200
	// bandwidth: 100
	// pixel 130 is: tue
}
