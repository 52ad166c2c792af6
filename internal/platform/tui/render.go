package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Glyphs used by the terminal renderer.
const (
	pipeChar     = '█'
	groundTop    = '▀'
	groundFill   = '░'
	groundStripe = '▒'
	birdChar     = '█'
	beakChar     = '▶'
	wingUp       = '▀'
	wingDown     = '▄'
	starChar     = '·'
	sparkBright  = '*'
	sparkDim     = '·'
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPurple:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64 // Cells per world unit
	dx, dy float64 // Shake offset in world units
}

func newViewport(dst *core.Screen, snap flappy.Snapshot) viewport {
	if snap.WorldW <= 0 || snap.WorldH <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(dst.Width()) / float64(snap.WorldW),
		sy: float64(dst.Height()) / float64(snap.WorldH),
		dx: snap.ShakeX,
		dy: snap.ShakeY,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.dx) * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((y + v.dy) * v.sy))
}

// DrawSnapshot renders a full frame: world, HUD, and the overlay for the
// current state.
func DrawSnapshot(dst *core.Screen, snap flappy.Snapshot) {
	dst.Clear()
	v := newViewport(dst, snap)

	groundRow := v.row(float64(snap.WorldH - snap.GroundHeight))
	drawSky(dst, v, snap, groundRow)
	for _, p := range snap.Pipes {
		drawPipe(dst, v, p, groundRow)
	}
	drawGround(dst, v, snap, groundRow)
	drawBird(dst, v, snap.Bird)
	drawParticles(dst, v, snap.Particles)

	switch snap.State {
	case flappy.StateMainMenu:
		drawMainMenu(dst, snap)
	case flappy.StateDifficultySelection:
		drawTierMenu(dst, snap)
	case flappy.StateCostumeSelection:
		drawCostumeMenu(dst, snap)
	case flappy.StatePlaying:
		drawHUD(dst, snap)
	case flappy.StatePaused:
		drawHUD(dst, snap)
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"Esc resume   R restart   M menu", core.ColorWhite},
		})
	case flappy.StateGameOver:
		drawHUD(dst, snap)
		drawGameOver(dst, snap)
	}
}

// drawSky scatters two parallax layers of stars that follow the background offset.
func drawSky(dst *core.Screen, v viewport, snap flappy.Snapshot, groundRow int) {
	offset := int(snap.Background * v.sx)
	for y := 1; y < groundRow; y += 3 {
		period := 11 + (y % 7)
		shift := offset / (1 + y%2)
		for x := 0; x < dst.Width(); x++ {
			if (x+shift+y*5)%period == 0 {
				dst.Set(x, y, starChar, core.ColorGray)
			}
		}
	}
}

func drawPipe(dst *core.Screen, v viewport, p flappy.Pipe, groundRow int) {
	x0 := v.col(p.X)
	x1 := max(v.col(p.TrailingEdge()), x0+1)
	topEnd := v.row(p.TopHeight)
	bottomStart := v.row(p.BottomY())

	for x := x0; x < x1; x++ {
		for y := 0; y < topEnd; y++ {
			dst.Set(x, y, pipeChar, core.ColorGreen)
		}
		dst.Set(x, topEnd-1, pipeChar, core.ColorBrightGreen)

		for y := bottomStart; y < groundRow; y++ {
			dst.Set(x, y, pipeChar, core.ColorGreen)
		}
		if bottomStart < groundRow {
			dst.Set(x, bottomStart, pipeChar, core.ColorBrightGreen)
		}
	}
}

func drawGround(dst *core.Screen, v viewport, snap flappy.Snapshot, groundRow int) {
	offset := int(snap.Background * v.sx * 2)
	dst.DrawHLine(0, groundRow, dst.Width(), groundTop, core.ColorGreen)
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			r := groundFill
			if (x+offset+y)%6 == 0 {
				r = groundStripe
			}
			dst.Set(x, y, r, core.ColorYellow)
		}
	}
}

func drawBird(dst *core.Screen, v viewport, b flappy.BirdView) {
	pal := b.Costume.Palette()
	body := core.Nearest(pal.Body)
	if pal.Glow && math.Sin(b.WingPhase) < 0 {
		body = core.Nearest(pal.GlowTo)
	}

	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := max(v.col(b.X+b.Size), x0+2)
	y1 := max(v.row(b.Y+b.Size), y0+1)
	dst.FillRect(x0, y0, x1-x0, y1-y0, birdChar, body)

	wing := wingDown
	if math.Sin(b.WingPhase*4) >= 0 {
		wing = wingUp
	}
	dst.Set(x0, y0+(y1-y0)/2, wing, core.Nearest(pal.Wing))

	// Beak tilts with the bird: high when climbing, low when diving.
	beakRow := y0 + (y1-y0)/2
	switch {
	case b.Rotation < 0:
		beakRow = y0
	case b.Rotation > 45:
		beakRow = y1 - 1
	}
	dst.Set(x1, beakRow, beakChar, core.Nearest(pal.Beak))
}

func drawParticles(dst *core.Screen, v viewport, particles []flappy.Particle) {
	for _, p := range particles {
		r := sparkDim
		if p.Alpha() >= 0.5 {
			r = sparkBright
		}
		dst.Set(v.col(p.X), v.row(p.Y), r, core.Nearest(p.Color))
	}
}

func drawHUD(dst *core.Screen, snap flappy.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", max(snap.Best, snap.Score))
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorGold)
}

func drawMainMenu(dst *core.Screen, snap flappy.Snapshot) {
	lines := []panelLine{
		{"F L A P P Y", core.ColorBrightYellow},
		{"", core.ColorDefault},
		{"Press Enter to start", core.ColorWhite},
		{"", core.ColorDefault},
		{fmt.Sprintf("Best: %d", snap.Best), core.ColorGold},
	}
	lines = append(lines, rankedLines(snap.Ranked)...)
	drawPanel(dst, lines)
}

func drawTierMenu(dst *core.Screen, snap flappy.Snapshot) {
	lines := []panelLine{
		{"Choose difficulty", core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	tierColors := []core.Color{core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightRed}
	for i, tier := range config.Tiers() {
		lines = append(lines, panelLine{marker(tier == snap.Tier) + fmt.Sprintf("%d  %-6s", int(tier), tierName(tier)), tierColors[i]})
	}
	drawPanel(dst, lines)
}

func drawCostumeMenu(dst *core.Screen, snap flappy.Snapshot) {
	lines := []panelLine{
		{"Choose costume", core.ColorBrightYellow},
		{"", core.ColorDefault},
	}
	for _, c := range flappy.Costumes() {
		pal := c.Palette()
		text := marker(c == snap.Costume) + fmt.Sprintf("%d  %-7s", int(c), pal.Name)
		if pal.Glow {
			text += " *"
		} else {
			text += "  "
		}
		lines = append(lines, panelLine{text, core.Nearest(pal.Body)})
	}
	drawPanel(dst, lines)
}

func drawGameOver(dst *core.Screen, snap flappy.Snapshot) {
	lines := []panelLine{
		{"GAME OVER", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Best: %d", snap.Best), core.ColorGold},
	}
	lines = append(lines, rankedLines(snap.Ranked)...)
	lines = append(lines,
		panelLine{"", core.ColorDefault},
		panelLine{"Enter retry   Esc menu", core.ColorWhite},
	)
	drawPanel(dst, lines)
}

// marker flags the previous selection so retries are easy to spot.
func marker(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func tierName(t config.Tier) string {
	name := t.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

func rankedLines(ranked []int) []panelLine {
	if len(ranked) == 0 {
		return nil
	}
	lines := []panelLine{{"", core.ColorDefault}, {"Top scores", core.ColorCyan}}
	for i, score := range ranked {
		lines = append(lines, panelLine{fmt.Sprintf("%d. %4d", i+1, score), core.ColorWhite})
	}
	return lines
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered box in the center of the screen holding lines.
func drawPanel(dst *core.Screen, lines []panelLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l.text)))/2
		dst.DrawText(x, boxY+1+i, l.text, l.color)
	}
}
