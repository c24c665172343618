package iso8583

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Framing is the optional message length prefix: the body length in bytes
// as a zero padded decimal of Digits digits, ASCII, hex encoded. Digits 0
// disables framing.
type Framing struct {
	Digits int
}

// Enabled reports whether a prefix is written and expected.
func (f Framing) Enabled() bool { return f.Digits > 0 }

// Wrap prepends the length prefix to a hex encoded body.
func (f Framing) Wrap(body string) (string, error) {
	if !f.Enabled() {
		return body, nil
	}
	n := len(body) / 2
	s := fmt.Sprintf("%0*d", f.Digits, n)
	if len(s) != f.Digits {
		return "", fmt.Errorf("%w: %d bytes with %d digits", ErrFrameOverflow, n, f.Digits)
	}
	return hex.EncodeToString([]byte(s)) + body, nil
}

// Unwrap strips and checks the length prefix and returns the body.
func (f Framing) Unwrap(msg string) (string, error) {
	if !f.Enabled() {
		return msg, nil
	}
	c := NewCursor(msg)
	raw, err := c.NextBytes(f.Digits)
	if err != nil {
		return "", err
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return "", fmt.Errorf("%w: length prefix %q is not decimal", ErrInvalidLength, raw)
		}
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLength, err)
	}
	if c.Remaining() != n*2 {
		return "", fmt.Errorf("%w: message length is %d and should be %d", ErrFrameLength, c.Remaining()/2, n)
	}
	return c.Rest(), nil
}
