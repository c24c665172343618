package iso8583

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramingWrap(t *testing.T) {
	body := strings.Repeat("ab", 20)

	out, err := Framing{Digits: 2}.Wrap(body)
	require.NoError(t, err)
	assert.Equal(t, "3230"+body, out)

	out, err = Framing{Digits: 4}.Wrap(body)
	require.NoError(t, err)
	assert.Equal(t, "30303230"+body, out)

	out, err = Framing{}.Wrap(body)
	require.NoError(t, err)
	assert.Equal(t, body, out)
}

func TestFramingWrapOverflow(t *testing.T) {
	_, err := Framing{Digits: 1}.Wrap(strings.Repeat("ab", 10))
	assert.ErrorIs(t, err, ErrFrameOverflow)
}

func TestFramingUnwrap(t *testing.T) {
	body := strings.Repeat("ab", 20)

	got, err := Framing{Digits: 2}.Unwrap("3230" + body)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	_, err = Framing{Digits: 2}.Unwrap("3231" + body)
	require.ErrorIs(t, err, ErrFrameLength)
	assert.Contains(t, err.Error(), "message length is 20 and should be 21")

	_, err = Framing{Digits: 2}.Unwrap("3241" + body)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = Framing{Digits: 4}.Unwrap("3030")
	assert.ErrorIs(t, err, ErrInsufficientData)
}
