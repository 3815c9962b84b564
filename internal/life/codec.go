package life

import (
	"fmt"
	"strings"
)

// Cell markers accepted by Decode. Both '0' and space mean dead.
const (
	markAlive = '1'
	markDead  = '0'
	markBlank = ' '
)

// Box-drawing runes used by bordered renderings.
const (
	borderTopLeft     = '╔'
	borderTopRight    = '╗'
	borderBottomLeft  = '╚'
	borderBottomRight = '╝'
	borderHorizontal  = '═'
	borderVertical    = '║'
)

// Style selects how Encode draws a grid.
type Style struct {
	Border bool
	Alive  rune
	Dead   rune
}

var (
	// Bordered draws live cells as full blocks inside a double-line box.
	Bordered = Style{Border: true, Alive: '█', Dead: ' '}
	// Shaded draws live cells as light shade on a solid background, unboxed.
	Shaded = Style{Border: false, Alive: '░', Dead: '█'}
)

var styles = map[string]Style{
	"bordered": Bordered,
	"shaded":   Shaded,
}

// ParseStyle resolves a style preset by name.
func ParseStyle(name string) (Style, error) {
	s, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (want bordered or shaded)", name)
	}
	return s, nil
}

func (s Style) orDefault() Style {
	if s.Alive == 0 {
		s.Alive = Bordered.Alive
	}
	if s.Dead == 0 {
		s.Dead = Bordered.Dead
	}
	return s
}

type marker int

const (
	markerInvalid marker = iota
	markerAlive
	markerDead
	markerSkip
)

// Decode parses the 0/1 text format: one line per row, '1' alive, '0' or
// space dead. Rows and columns that are never reached stay dead.
func Decode(text string) (Grid, error) {
	return decode(text, func(ch rune) marker {
		switch ch {
		case markAlive:
			return markerAlive
		case markDead, markBlank:
			return markerDead
		}
		return markerInvalid
	})
}

// DecodeStyled parses a rendering produced by Encode with the same style.
func DecodeStyled(text string, style Style) (Grid, error) {
	style = style.orDefault()
	if style.Border {
		text = stripBorderLines(text)
	}
	return decode(text, func(ch rune) marker {
		switch {
		case ch == style.Alive:
			return markerAlive
		case ch == style.Dead:
			return markerDead
		case style.Border && ch == borderVertical:
			return markerSkip
		}
		return markerInvalid
	})
}

func stripBorderLines(text string) string {
	if _, rest, ok := strings.Cut(text, "\n"); ok {
		text = rest
	}
	if i := strings.LastIndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return text
}

func decode(text string, classify func(rune) marker) (Grid, error) {
	var g Grid
	row, col := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			row++
			col = 0
			continue
		}
		switch classify(ch) {
		case markerSkip:
		case markerDead:
			col++
		case markerAlive:
			if row >= Rows {
				return Grid{}, &ParseError{Kind: TooManyRows, Row: row, Col: col}
			}
			if col >= Cols {
				return Grid{}, &ParseError{Kind: TooManyCols, Row: row, Col: col}
			}
			g[row][col] = true
			col++
		default:
			return Grid{}, &ParseError{Kind: UnexpectedChar, Row: row, Col: col, Char: ch}
		}
	}
	return g, nil
}

// Marshal writes the grid in the format Decode reads, one newline-terminated
// line per row.
func Marshal(g *Grid) string {
	var b strings.Builder
	b.Grow(Rows * (Cols + 1))
	for r := range g {
		for _, alive := range g[r] {
			if alive {
				b.WriteByte(markAlive)
			} else {
				b.WriteByte(markDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Encode renders the grid for display. It only reads g.
func Encode(g *Grid, style Style) string {
	style = style.orDefault()
	var b strings.Builder
	b.Grow((Rows + 2) * (Cols + 3) * 3)

	if style.Border {
		writeRule(&b, borderTopLeft, borderTopRight)
		b.WriteByte('\n')
	}
	for r := range g {
		if style.Border {
			b.WriteRune(borderVertical)
		}
		for _, alive := range g[r] {
			if alive {
				b.WriteRune(style.Alive)
			} else {
				b.WriteRune(style.Dead)
			}
		}
		if style.Border {
			b.WriteRune(borderVertical)
		}
		if r < Rows-1 || style.Border {
			b.WriteByte('\n')
		}
	}
	if style.Border {
		writeRule(&b, borderBottomLeft, borderBottomRight)
	}
	return b.String()
}

func writeRule(b *strings.Builder, left, right rune) {
	b.WriteRune(left)
	for range Cols {
		b.WriteRune(borderHorizontal)
	}
	b.WriteRune(right)
}
