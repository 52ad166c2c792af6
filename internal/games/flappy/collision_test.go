package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestCollides(t *testing.T) {
	pipe := Pipe{X: 140, TopHeight: 200, Gap: 160, Width: 70} // gap spans y 200..360

	tests := []struct {
		name     string
		hitbox   core.Rect
		inset    float64
		expected bool
	}{
		{"inside the gap", core.NewRect(155, 250, 25, 25), 0, false},
		{"clipping the top segment", core.NewRect(155, 190, 25, 25), 0, true},
		{"clipping the bottom segment", core.NewRect(155, 340, 25, 25), 0, true},
		{"far below the bottom segment", core.NewRect(155, 5000, 25, 25), 0, true},
		{"left of the pipe", core.NewRect(100, 100, 25, 25), 0, false},
		{"touching the top edge", core.NewRect(155, 200, 25, 25), 0, false},
		{"grazing the left edge", core.NewRect(117, 100, 25, 25), 0, true},
		{"grazing the left edge with inset", core.NewRect(117, 100, 25, 25), 5, false},
		{"hitbox collapsed to nothing", core.NewRect(155, 190, 25, 25).Inset(13), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.hitbox, []Pipe{pipe}, tc.inset); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesAnyPipe(t *testing.T) {
	hitbox := core.NewRect(155, 250, 25, 25)
	pipes := []Pipe{
		{X: 500, TopHeight: 400, Gap: 160, Width: 70},
		{X: 140, TopHeight: 300, Gap: 160, Width: 70}, // top segment covers the hitbox
	}

	if !Collides(hitbox, pipes, 0) {
		t.Error("a hit on any pipe should count")
	}
	if Collides(hitbox, nil, 0) {
		t.Error("no pipes means no collision")
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{-0.5, true},
		{0, false},
		{300, false},
		{620, false},
		{620.1, true},
	}

	for _, tc := range tests {
		if got := OutOfBounds(tc.y, 700, 80); got != tc.expected {
			t.Errorf("OutOfBounds(%v) = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}
