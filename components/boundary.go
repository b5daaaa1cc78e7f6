package components

import "github.com/yohamta/donburi"

// BoundaryData marks a map-defined rectangle. Empty Name is an anonymous wall.
type BoundaryData struct {
	Name string
}

var Boundary = donburi.NewComponentType[BoundaryData]()
