package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	WhiteKey rune // ▔ keyboard key without accidental
	BlackKey rune // ▀ keyboard key with accidental
	Root     rune // ◉ current tonic
	Scale    rune // ● scale member
	Chord    rune // ◆ chord tone
	Off      rune // · outside the selection
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			WhiteKey: '▔',
			BlackKey: '▀',
			Root:     '◉',
			Scale:    '●',
			Chord:    '◆',
			Off:      '·',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG       = 0.0
	RoleSurface  = 0.1
	RoleMuted    = 0.2
	RoleFG       = 0.4
	RoleBlackKey = 0.3
	RoleWhiteKey = 0.5
	RoleChord    = 0.7
	RoleScale    = 0.8
	RoleRoot     = 1.0
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) WhiteKey() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleWhiteKey))
}

func (t *Theme) BlackKey() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleBlackKey))
}

func (t *Theme) Root() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleRoot))
}

func (t *Theme) Scale() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleScale))
}

func (t *Theme) Chord() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleChord))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
