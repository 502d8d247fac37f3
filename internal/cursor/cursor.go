package cursor

// Cursor tracks a position in a decoded rune sequence.
type Cursor struct {
	input  []rune
	offset int
}

// New creates and returns a new Cursor positioned at the first rune.
func New(input []rune) *Cursor {
	return &Cursor{input: input}
}

// Peek returns the rune at the current position without consuming it.
// The second result is false at end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.offset < len(c.input) {
		return c.input[c.offset], true
	}
	return 0, false
}

// AtEnd reports whether every rune has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.input)
}

// Advance moves past the current rune. It does nothing at end of input.
func (c *Cursor) Advance() {
	if c.offset < len(c.input) {
		c.offset++
	}
}

// Offset returns the number of runes consumed so far.
func (c *Cursor) Offset() int {
	return c.offset
}
