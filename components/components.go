// Package components holds the built-in component records. They are plain
// data and know nothing about the registry that stores them.
package components

import "image"

// Transform places an entity in 2D space.
type Transform struct {
	X, Y       float64
	RotX, RotY float64
}

// Render attaches a drawable sprite to an entity.
type Render struct {
	Sprite image.Image
}
