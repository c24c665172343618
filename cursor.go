package iso8583

import (
	"encoding/hex"
	"fmt"
)

// Cursor is a read position over a hex-encoded wire message. Positions and
// counts are in hex characters; two characters make one wire byte.
type Cursor struct {
	buf string
	pos int
}

// NewCursor returns a cursor at the start of buf.
func NewCursor(buf string) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the number of hex characters consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread hex characters.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Rest returns the unread part of the buffer without advancing.
func (c *Cursor) Rest() string { return c.buf[c.pos:] }

// Next returns the next n hex characters and advances past them.
func (c *Cursor) Next(n int) (string, error) {
	if n < 0 || c.Remaining() < n {
		return "", fmt.Errorf("%w: need %d hex chars at offset %d, have %d",
			ErrInsufficientData, n, c.pos, c.Remaining())
	}
	s := c.buf[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// NextBytes reads n wire bytes (2n hex characters) and decodes them.
// The cursor does not move on error.
func (c *Cursor) NextBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n*2 {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrInsufficientData, n, c.pos/2, c.Remaining()/2)
	}
	out, err := hex.DecodeString(c.buf[c.pos : c.pos+n*2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	c.pos += n * 2
	return out, nil
}
