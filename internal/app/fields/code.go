package fields

import "strings"

// CodeLength is the number of cells in the one-time-code input.
const CodeLength = 6

// CodeInput models the segmented one-time-code widget: one digit per cell,
// focus advancing forward on entry and backward on backspace-when-empty.
type CodeInput struct {
	cells [CodeLength]byte // 0 means empty
	focus int
}

func NewCodeInput() *CodeInput {
	return &CodeInput{}
}

// Focus returns the index of the focused cell.
func (c *CodeInput) Focus() int { return c.focus }

// Type handles raw input into the focused cell. Only the first digit of the
// input is kept; non-digits are discarded. A filled cell advances focus.
func (c *CodeInput) Type(input string) {
	digits := digitsOnly(input)
	if digits == "" {
		c.cells[c.focus] = 0
		return
	}
	c.cells[c.focus] = digits[0]
	if c.focus < CodeLength-1 {
		c.focus++
	}
}

// Backspace clears the focused cell, or moves focus back when the cell is
// already empty.
func (c *CodeInput) Backspace() {
	if c.cells[c.focus] == 0 && c.focus > 0 {
		c.focus--
		return
	}
	c.cells[c.focus] = 0
}

// Paste distributes up to CodeLength digits across the cells starting at the
// focused cell, then places focus just past the last filled cell.
func (c *CodeInput) Paste(input string) {
	digits := digitsOnly(input)
	if len(digits) > CodeLength {
		digits = digits[:CodeLength]
	}
	for i := 0; i < len(digits) && c.focus+i < CodeLength; i++ {
		c.cells[c.focus+i] = digits[i]
	}
	next := c.focus + len(digits)
	if next > CodeLength-1 {
		next = CodeLength - 1
	}
	c.focus = next
}

// Code returns the concatenated digits of all filled cells.
func (c *CodeInput) Code() string {
	var b strings.Builder
	for _, cell := range c.cells {
		if cell != 0 {
			b.WriteByte(cell)
		}
	}
	return b.String()
}

// Complete reports whether every cell holds a digit.
func (c *CodeInput) Complete() bool {
	for _, cell := range c.cells {
		if cell == 0 {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
