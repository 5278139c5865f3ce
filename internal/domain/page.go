package domain

// PageSize is the number of rows the paginator shows per "yes" answer.
const PageSize = 5

// Cursor is the paginator position over a view of limit rows.
// Pos starts at 0 and always satisfies 0 <= Pos < limit, or Pos == 0 for an
// empty view.
type Cursor struct {
	Pos  int
	Size int
}

// NewCursor returns a cursor at the first row with the default page size.
func NewCursor() Cursor {
	return Cursor{Size: PageSize}
}

// Next advances the cursor by one window over a view of limit rows and
// returns the half-open row range [lo, hi) to show.
// When the window reaches the end of the view, wrapped is true and the
// cursor is reset to the first row.
func (c *Cursor) Next(limit int) (lo, hi int, wrapped bool) {
	lo = c.Pos
	if lo > limit {
		lo = limit
	}
	if c.Pos+c.Size < limit {
		c.Pos += c.Size
		return lo, c.Pos, false
	}
	c.Pos = 0
	return lo, limit, true
}
