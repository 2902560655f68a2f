package geom_test

import (
	"fmt"

	"github.com/pentagongym/gymdiag/pkg/geom"
)

func ExampleEdgePoint() {
	box := geom.Rect{X: 0, Y: 0, W: 10, H: 10}

	fmt.Println(geom.EdgePoint(box, geom.Point{X: 20, Y: 5}))
	fmt.Println(geom.EdgePoint(box, geom.Point{X: 5, Y: 20}))
	// Output:
	// {10 5}
	// {5 10}
}

func ExampleConnect() {
	user := geom.Rect{X: 10, Y: 85, W: 25, H: 20}
	admin := geom.Rect{X: 75, Y: 85, W: 25, H: 20}

	from, to := geom.Connect(user, admin)
	fmt.Println(from, to)
	// Output: {35 95} {75 95}
}
