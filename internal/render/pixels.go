package render

import "image/color"

// Palette holds the colors used for live and dead cells.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette paints live cells white on black.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Dead:  color.RGBA{A: 255},
}

// FillRGBA converts 0/1 cell data into RGBA pixels in buf. buf must hold at
// least 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		px := buf[i*4 : i*4+4]
		px[0] = col.R
		px[1] = col.G
		px[2] = col.B
		px[3] = col.A
	}
}
