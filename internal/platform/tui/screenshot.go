package tui

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	skyColor     = color.RGBA{112, 197, 206, 255}
	pipeColor    = color.RGBA{83, 180, 60, 255}
	pipeCapColor = color.RGBA{60, 140, 40, 255}
	groundColor  = color.RGBA{222, 216, 149, 255}
	grassColor   = color.RGBA{92, 190, 70, 255}
	hudTextColor = color.RGBA{255, 255, 255, 255}
	hudShadow    = color.RGBA{0, 0, 0, 160}
)

const pipeCapHeight = 20.0

// RenderImage draws a snapshot at world resolution: one pixel per world unit.
func RenderImage(snap flappy.Snapshot) *gg.Context {
	w, h := float64(snap.WorldW), float64(snap.WorldH)
	dc := gg.NewContext(snap.WorldW, snap.WorldH)

	dc.SetColor(skyColor)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.Push()
	dc.Translate(snap.ShakeX, snap.ShakeY)

	groundY := h - float64(snap.GroundHeight)
	for _, p := range snap.Pipes {
		dc.SetColor(pipeColor)
		dc.DrawRectangle(p.X, 0, p.Width, p.TopHeight)
		dc.DrawRectangle(p.X, p.BottomY(), p.Width, math.Max(0, groundY-p.BottomY()))
		dc.Fill()

		dc.SetColor(pipeCapColor)
		dc.DrawRectangle(p.X-4, p.TopHeight-pipeCapHeight, p.Width+8, pipeCapHeight)
		dc.DrawRectangle(p.X-4, p.BottomY(), p.Width+8, pipeCapHeight)
		dc.Fill()
	}

	dc.SetColor(groundColor)
	dc.DrawRectangle(0, groundY, w, float64(snap.GroundHeight))
	dc.Fill()
	dc.SetColor(grassColor)
	dc.DrawRectangle(0, groundY, w, 12)
	dc.Fill()

	drawBirdImage(dc, snap.Bird)

	for _, p := range snap.Particles {
		dc.SetColor(color.NRGBA{p.Color.R, p.Color.G, p.Color.B, uint8(255 * p.Alpha())})
		dc.DrawCircle(p.X, p.Y, 3)
		dc.Fill()
	}
	dc.Pop()

	score := fmt.Sprintf("%d", snap.Score)
	dc.SetColor(hudShadow)
	dc.DrawStringAnchored(score, w/2+2, 42, 0.5, 0.5)
	dc.SetColor(hudTextColor)
	dc.DrawStringAnchored(score, w/2, 40, 0.5, 0.5)

	return dc
}

func drawBirdImage(dc *gg.Context, b flappy.BirdView) {
	pal := b.Costume.Palette()
	r := b.Size / 2
	cx, cy := b.X+r, b.Y+r

	dc.Push()
	dc.RotateAbout(gg.Radians(b.Rotation), cx, cy)

	if pal.Glow {
		dc.SetColor(rgba(pal.GlowFrom, 255))
		dc.DrawCircle(cx, cy, r+4)
		dc.Fill()
		dc.SetColor(rgba(pal.GlowTo, 255))
		dc.DrawCircle(cx, cy, r+2)
		dc.Fill()
	}

	dc.SetColor(rgba(pal.Body, 255))
	dc.DrawCircle(cx, cy, r)
	dc.Fill()

	// Wing flaps with the wing phase.
	dc.SetColor(rgba(pal.Wing, 255))
	dc.DrawEllipse(cx-r/3, cy+math.Sin(b.WingPhase)*r/3, r/2, r/4)
	dc.Fill()

	dc.SetColor(rgba(pal.Beak, 255))
	dc.MoveTo(cx+r-2, cy-4)
	dc.LineTo(cx+r+10, cy)
	dc.LineTo(cx+r-2, cy+4)
	dc.ClosePath()
	dc.Fill()

	dc.SetColor(color.Black)
	dc.DrawCircle(cx+r/3, cy-r/3, 3)
	dc.Fill()

	dc.Pop()
}

func rgba(c core.RGB, a uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, a}
}

// SaveScreenshot writes a PNG of snap into dir and returns its path.
func SaveScreenshot(dir string, snap flappy.Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("flappy_%s.png", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := RenderImage(snap).SavePNG(path); err != nil {
		return "", fmt.Errorf("screenshot: cannot save %s: %w", path, err)
	}
	return path, nil
}
