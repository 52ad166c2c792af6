package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the hitbox overlaps the top or bottom segment of any pipe.
// inset narrows each pipe's collision rectangles horizontally.
func Collides(hitbox core.Rect, pipes []Pipe, inset float64) bool {
	for _, p := range pipes {
		if hitbox.Intersects(p.TopRect(inset)) || hitbox.Intersects(p.BottomRect(inset)) {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether a bird at y has left the playfield through
// the ceiling or into the ground.
func OutOfBounds(y float64, screenH, groundHeight int) bool {
	return y < 0 || y > float64(screenH-groundHeight)
}
