package tui

// Braille cells pack a 2x4 grid of micro-pixels. Dot assignment per the
// U+2800 block, indexed [row][column].
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell dot mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	rows := make([][]uint8, h)
	for i := range rows {
		rows[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: rows}
}

// setPixel sets the micro-pixel at micro coordinates. Out-of-range
// pixels are dropped, which is how drawing clips to the viewport.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.m[cy][cx] |= brailleDots[my%4][mx%2]
}

// mask returns the dot mask of a cell, zero when empty or out of range.
func (b *brailleBuf) mask(cx, cy int) uint8 {
	if cx < 0 || cy < 0 || cx >= b.w || cy >= b.h {
		return 0
	}
	return b.m[cy][cx]
}

// drawLineMicro rasterizes a segment on the micro-pixel grid with
// Bresenham's algorithm. Segments entirely on one side of the viewport
// are skipped without stepping.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	wMic, hMic := b.w*2, b.h*4
	if (x0 < 0 && x1 < 0) || (x0 >= wMic && x1 >= wMic) {
		return
	}
	if (y0 < 0 && y1 < 0) || (y0 >= hMic && y1 >= hMic) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
