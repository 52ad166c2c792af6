package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Costume is a purely cosmetic bird variant.
type Costume int

const (
	CostumeClassic Costume = iota + 1
	CostumeRed
	CostumeBlue
	CostumeRainbow
	CostumeGolden
	CostumeGreen
	CostumePurple
)

// Palette is the color set a costume is drawn with.
// Glow costumes get a gradient outline from GlowFrom to GlowTo.
type Palette struct {
	Name     string
	Body     core.RGB
	Wing     core.RGB
	Beak     core.RGB
	Glow     bool
	GlowFrom core.RGB
	GlowTo   core.RGB
}

var (
	orange = core.RGB{R: 255, G: 165, B: 0}
	yellow = core.RGB{R: 255, G: 255, B: 0}
)

var palettes = [...]Palette{
	CostumeClassic: {Name: "Classic", Body: yellow, Wing: orange, Beak: orange},
	CostumeRed:     {Name: "Red", Body: core.RGB{R: 255}, Wing: core.RGB{R: 139}, Beak: orange},
	CostumeBlue:    {Name: "Blue", Body: core.RGB{B: 255}, Wing: core.RGB{B: 139}, Beak: orange},
	CostumeRainbow: {
		Name: "Rainbow", Body: core.RGB{R: 255, G: 255, B: 255}, Wing: core.RGB{R: 255, G: 255, B: 255}, Beak: orange,
		Glow: true, GlowFrom: core.RGB{R: 255}, GlowTo: core.RGB{R: 128, B: 128},
	},
	CostumeGolden: {
		Name: "Golden", Body: core.RGB{R: 255, G: 215}, Wing: orange, Beak: yellow,
		Glow: true, GlowFrom: yellow, GlowTo: orange,
	},
	CostumeGreen:  {Name: "Green", Body: core.RGB{G: 128}, Wing: core.RGB{G: 100}, Beak: orange},
	CostumePurple: {Name: "Purple", Body: core.RGB{R: 147, G: 112, B: 219}, Wing: core.RGB{R: 128, B: 128}, Beak: orange},
}

// Costumes returns all costumes in selection order.
func Costumes() []Costume {
	return []Costume{
		CostumeClassic, CostumeRed, CostumeBlue, CostumeRainbow,
		CostumeGolden, CostumeGreen, CostumePurple,
	}
}

// Valid reports whether c is a known costume.
func (c Costume) Valid() bool {
	return c >= CostumeClassic && c <= CostumePurple
}

// Palette returns the colors for c. Unknown costumes look Classic.
func (c Costume) Palette() Palette {
	if !c.Valid() {
		return palettes[CostumeClassic]
	}
	return palettes[c]
}

func (c Costume) String() string {
	return c.Palette().Name
}
