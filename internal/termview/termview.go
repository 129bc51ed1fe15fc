// Package termview draws a board view as colored text.
package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hailam/chessboard/internal/board"
)

// Theme holds the terminal attributes for each kind of square.
type Theme struct {
	Light    *color.Color
	Dark     *color.Color
	Selected *color.Color
	Legal    *color.Color
	Label    *color.Color
	Banner   *color.Color
}

// DefaultTheme returns the default terminal colors.
func DefaultTheme() *Theme {
	return &Theme{
		Light:    color.New(color.BgHiWhite, color.FgBlack),
		Dark:     color.New(color.BgYellow, color.FgBlack),
		Selected: color.New(color.BgHiYellow, color.FgBlack, color.Bold),
		Legal:    color.New(color.BgGreen, color.FgBlack),
		Label:    color.New(color.FgHiBlack),
		Banner:   color.New(color.FgRed, color.Bold),
	}
}

// Renderer writes frames of a board view.
type Renderer struct {
	theme  *Theme
	glyphs bool
}

// NewRenderer creates a renderer. With glyphs set, pieces are drawn as
// Unicode chess symbols instead of letters.
func NewRenderer(theme *Theme, glyphs bool) *Renderer {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{theme: theme, glyphs: glyphs}
}

// Render writes one frame: row 8 at the top, rank labels beside column 1
// squares and file labels under row 1 squares, then the status line.
func (r *Renderer) Render(w io.Writer, v board.View) error {
	var sb strings.Builder

	byRow := make(map[int][]board.Square, board.Rows)
	for _, sq := range v.Squares() {
		byRow[sq.Row()] = append(byRow[sq.Row()], sq)
	}

	legal := v.LegalMoves()
	for row := board.Rows; row >= 1; row-- {
		for _, sq := range byRow[row] {
			if sq.Column() == 1 {
				sb.WriteString(r.theme.Label.Sprintf("%d ", sq.Row()))
			}
			cell := r.theme.Light
			switch {
			case sq == v.Selected():
				cell = r.theme.Selected
			case legal.Has(sq):
				cell = r.theme.Legal
			case sq.Shade() == board.Dark:
				cell = r.theme.Dark
			}
			sb.WriteString(cell.Sprintf(" %s ", r.symbol(v.PieceAt(sq), legal.Has(sq))))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for _, sq := range byRow[1] {
		sb.WriteString(r.theme.Label.Sprintf(" %c ", 'a'+sq.Column()-1))
	}
	sb.WriteByte('\n')

	if winner := v.Winner(); winner != board.NoSide {
		sb.WriteString(r.theme.Banner.Sprint(board.Banner(winner)))
	} else {
		fmt.Fprintf(&sb, "%s to move", v.SideToMove())
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) symbol(p board.Piece, legal bool) string {
	switch {
	case p != board.NoPiece && r.glyphs:
		return p.Glyph()
	case p != board.NoPiece:
		return p.String()
	case legal:
		return "·"
	default:
		return " "
	}
}
