package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"isogrid/internal/geom"
)

// sceneToMicro projects scene coordinates onto the braille micro-pixel
// grid (2x4 per terminal cell) for the current viewport.
func (m Model) sceneToMicro(x, y float64, w, h int) (int, int) {
	wMic, hMic := w*2, h*4
	sx := wMic/2 + int(math.Round((x-m.centerX)*m.scale))
	sy := hMic/2 - int(math.Round((y-m.centerY)*m.scale))
	return sx, sy
}

// cellToScene inverts the projection for a terminal cell, using the
// cell's center micro-pixel.
func (m Model) cellToScene(cx, cy, w, h int) (float64, float64) {
	wMic, hMic := w*2, h*4
	mx := float64(cx*2+1) - float64(wMic)/2
	my := float64(cy*4+2) - float64(hMic)/2
	return m.centerX + mx/m.scale, m.centerY - my/m.scale
}

func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}

// sceneBounds returns the scene rectangle currently visible.
func (m Model) sceneBounds(w, h int) (minX, minY, maxX, maxY float64) {
	halfW := float64(w) / m.scale
	halfH := float64(h*2) / m.scale
	return m.centerX - halfW, m.centerY - halfH, m.centerX + halfW, m.centerY + halfH
}

func (m Model) renderCanvas(w, h int) string {
	grid := newBrailleBuf(w, h)
	polys := newBrailleBuf(w, h)
	draft := newBrailleBuf(w, h)
	results := newBrailleBuf(w, h)

	m.drawGrid(grid, w, h)
	if m.showResults {
		for _, r := range m.results {
			m.drawRing(results, r, w, h, true)
		}
	}
	if m.showPolys {
		for _, r := range m.polygons {
			m.drawRing(polys, r, w, h, false)
		}
	}
	if m.showDraft {
		m.drawDraft(draft, w, h)
	}

	// Topmost layer first; a cell shows the highest layer with ink.
	layers := []struct {
		buf   *brailleBuf
		style lipgloss.Style
	}{
		{draft, draftStyle},
		{results, resultStyle},
		{polys, polyStyle},
		{grid, gridStyle},
	}

	curX, curY := m.sceneToMicro(m.cursorX, m.cursorY, w, h)
	curX, curY = curX/2, curY/4
	hovX, hovY := -1, -1
	if m.hovering {
		hovX, hovY = m.sceneToMicro(m.hoverX, m.hoverY, w, h)
		hovX, hovY = hovX/2, hovY/4
	}

	out := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		chunk := make([]rune, 0, w)
		cur := -1
		flush := func() {
			if len(chunk) == 0 {
				return
			}
			s := string(chunk)
			if cur >= 0 {
				s = layers[cur].style.Render(s)
			}
			sb.WriteString(s)
			chunk = chunk[:0]
		}
		for x := 0; x < w; x++ {
			if x == curX && y == curY {
				flush()
				sb.WriteString(cursorStyle.Render("╋"))
				cur = -1
				continue
			}
			if x == hovX && y == hovY {
				flush()
				sb.WriteString(cursorStyle.Render("◌"))
				cur = -1
				continue
			}
			li := -1
			var mask uint8
			for i := range layers {
				if mk := layers[i].buf.mask(x, y); mk != 0 {
					li, mask = i, mk
					break
				}
			}
			if li != cur {
				flush()
				cur = li
			}
			if li < 0 {
				chunk = append(chunk, ' ')
			} else {
				chunk = append(chunk, rune(0x2800+int(mask)))
			}
		}
		flush()
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// drawGrid draws dotted grid lines at gridStep multiples and solid axes.
func (m Model) drawGrid(br *brailleBuf, w, h int) {
	wMic, hMic := w*2, h*4
	step := m.gridStep()
	minX, minY, maxX, maxY := m.sceneBounds(w, h)
	for gx := math.Floor(minX/step) * step; gx <= maxX+step/2; gx += step {
		sx, _ := m.sceneToMicro(gx, m.centerY, w, h)
		if sx < 0 || sx >= wMic {
			continue
		}
		for my := 0; my < hMic; my += 4 {
			br.setPixel(sx, my)
		}
	}
	for gy := math.Floor(minY/step) * step; gy <= maxY+step/2; gy += step {
		_, sy := m.sceneToMicro(m.centerX, gy, w, h)
		if sy < 0 || sy >= hMic {
			continue
		}
		for mx := 0; mx < wMic; mx += 4 {
			br.setPixel(mx, sy)
		}
	}
	// axes
	ax, ay := m.sceneToMicro(0, 0, w, h)
	if ax >= 0 && ax < wMic {
		for my := 0; my < hMic; my++ {
			br.setPixel(ax, my)
		}
	}
	if ay >= 0 && ay < hMic {
		for mx := 0; mx < wMic; mx++ {
			br.setPixel(mx, ay)
		}
	}
}

// drawRing draws a closed ring with vertex markers, optionally filled.
func (m Model) drawRing(br *brailleBuf, r geom.Ring, w, h int, fill bool) {
	if len(r) == 0 {
		return
	}
	mic := make([][2]int, len(r))
	for i, p := range r {
		mx, my := m.sceneToMicro(p.X, p.Y, w, h)
		mic[i] = [2]int{mx, my}
	}
	if fill && len(mic) >= 3 {
		fillRingMicro(br, mic)
	}
	for i := range mic {
		a := mic[i]
		b := mic[(i+1)%len(mic)]
		br.drawLineMicro(a[0], a[1], b[0], b[1])
	}
	for _, p := range mic {
		drawMarker(br, p[0], p[1])
	}
}

// drawDraft draws the ring under construction: committed vertices, the
// edges between them, and a rubber band from the last vertex to the
// cursor. The rubber band is drawn even when the step would be
// rejected, so an invalid diagonal is visible before the click.
func (m Model) drawDraft(br *brailleBuf, w, h int) {
	vs := m.builder.Vertices()
	if len(vs) == 0 {
		return
	}
	mic := make([][2]int, len(vs))
	for i, p := range vs {
		mx, my := m.sceneToMicro(p.X, p.Y, w, h)
		mic[i] = [2]int{mx, my}
	}
	for i := 0; i+1 < len(mic); i++ {
		br.drawLineMicro(mic[i][0], mic[i][1], mic[i+1][0], mic[i+1][1])
	}
	cx, cy := m.sceneToMicro(m.cursorX, m.cursorY, w, h)
	last := mic[len(mic)-1]
	br.drawLineMicro(last[0], last[1], cx, cy)
	for _, p := range mic {
		drawMarker(br, p[0], p[1])
	}
}

// drawMarker puts a small plus at a micro coordinate.
func drawMarker(br *brailleBuf, mx, my int) {
	br.setPixel(mx, my)
	br.setPixel(mx-1, my)
	br.setPixel(mx+1, my)
	br.setPixel(mx, my-1)
	br.setPixel(mx, my+1)
}

// fillRingMicro fills a ring on the micro grid with even-odd scanlines.
// Horizontal edges never produce a crossing.
func fillRingMicro(br *brailleBuf, ring [][2]int) {
	hMic := br.h * 4
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := range ring {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] {
				continue
			}
			if (yMic >= a[1] && yMic < b[1]) || (yMic >= b[1] && yMic < a[1]) {
				t := float64(yMic-a[1]) / float64(b[1]-a[1])
				xs = append(xs, a[0]+int(t*float64(b[0]-a[0])))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xstart, xend := xs[i], xs[i+1]
			if xstart > xend {
				xstart, xend = xend, xstart
			}
			for x := max(0, xstart); x <= xend; x++ {
				br.setPixel(x, yMic)
			}
		}
	}
}
