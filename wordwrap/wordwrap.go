// Package wordwrap lays text out on a fixed-size character display,
// wrapping at word boundaries and paging when the grid fills up.
//
// A word is a maximal run of non-space bytes. Words are never split: a
// word that does not fit in the remaining columns moves whole to the next
// row, and a word wider than the display overflows past the right edge
// rather than being truncated. When layout runs past the last row the
// display pages: a pause (so a human can read the screen), a clear, and a
// restart at row 0.
package wordwrap

import "time"

// DefaultPagePause is how long a full page stays on screen before it is
// cleared for the next one.
const DefaultPagePause = 3 * time.Second

// Surface is the write side of a character-matrix display. The renderer
// assumes every call succeeds; hardware errors are the adapter's problem.
type Surface interface {
	Clear()
	SetCursor(col, row uint8)
	Write(p []byte)
}

// Grid describes the display dimensions in characters. Both fields must
// be at least 1.
type Grid struct {
	Columns int
	Rows    int
}

// Placement is one word positioned on the grid. Text aliases the buffer
// passed to Layout.
type Placement struct {
	Text []byte
	Row  int
	Col  int
}

// Layout computes where each word of buf lands on g without touching any
// hardware. Rows restart from 0 after each page turn, so placements are
// in write order but row numbers alone do not identify a page.
func Layout(buf []byte, g Grid) []Placement {
	var out []Placement
	scan(buf, g, func(word []byte, row, col int) {
		out = append(out, Placement{Text: word, Row: row, Col: col})
	}, nil)
	return out
}

// Renderer draws word-wrapped text onto a Surface. Configure the exported
// fields before the first Render call.
type Renderer struct {
	Surface Surface
	Grid    Grid

	// PagePause is the delay before a full display is cleared for the
	// next page. Zero means DefaultPagePause.
	PagePause time.Duration

	// Sleep is called to implement the page pause. Nil means time.Sleep.
	// The pause blocks the whole render pass; callers polling input will
	// not see new data until it ends.
	Sleep func(time.Duration)
}

// Render clears the surface and draws buf word-wrapped, paging as needed.
// The pass always runs to completion; cursor state is not kept between
// calls.
func (r *Renderer) Render(buf []byte) {
	r.Surface.Clear()
	scan(buf, r.Grid, func(word []byte, row, col int) {
		r.Surface.SetCursor(uint8(col), uint8(row))
		r.Surface.Write(word)
	}, func() {
		pause := r.PagePause
		if pause == 0 {
			pause = DefaultPagePause
		}
		if r.Sleep != nil {
			r.Sleep(pause)
		} else {
			time.Sleep(pause)
		}
		r.Surface.Clear()
	})
}

// scan is the single pass shared by Layout and Render. It walks buf once,
// calling place for every word and page each time layout wraps past the
// last row (before placing the word that caused the turn).
//
// The fit test is inclusive: a word fits when col+len(word) <= Columns,
// so a word ending flush with the right edge stays on its row. A word
// wider than the whole row never fits anywhere, so it is placed at the
// start of a row without advancing first when the cursor is already at
// column 0.
func scan(buf []byte, g Grid, place func(word []byte, row, col int), page func()) {
	row, col := 0, 0
	start := 0 // first byte of the word being accumulated
	for i := 0; i <= len(buf); i++ {
		if i < len(buf) && buf[i] != ' ' {
			continue
		}
		// Space or end of buffer: flush [start, i). Zero-length
		// flushes come from runs of spaces and place nothing.
		if n := i - start; n > 0 {
			if col > 0 && col+n > g.Columns {
				row++
				col = 0
				if row >= g.Rows {
					row = 0
					if page != nil {
						page()
					}
				}
			}
			place(buf[start:i], row, col)
			col += n
		}
		start = i + 1
	}
}
