package iso8583

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var iccData = []byte{
	0x9F, 0x26, 0x08, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // application cryptogram
	0x82, 0x02, 0x39, 0x00, // AIP
	0x95, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, // TVR
}

func TestParseEMV(t *testing.T) {
	tlvs, err := ParseEMV(iccData)
	require.NoError(t, err)
	require.Len(t, tlvs, 3)

	assert.Equal(t, "9F26", tlvs[0].TagHex())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, tlvs[0].Value)
	assert.Equal(t, "82", tlvs[1].TagHex())

	tvr, ok := FindTLV(tlvs, []byte{0x95})
	require.True(t, ok)
	assert.Len(t, tvr.Value, 5)

	_, ok = FindTLV(tlvs, []byte{0x9F, 0x27})
	assert.False(t, ok)

	m := TLVToMap(tlvs)
	assert.Equal(t, []byte{0x39, 0x00}, m["82"])
}

func TestParseEMVErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated tag", []byte{0x9F}},
		{"missing length", []byte{0x82}},
		{"truncated value", []byte{0x82, 0x05, 0x01}},
		{"bad long length", []byte{0x82, 0x85, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEMV(tt.data)
			assert.ErrorIs(t, err, ErrInvalidTLV)
		})
	}
}

func TestPackEMVLongForm(t *testing.T) {
	long := bytes.Repeat([]byte{0xAB}, 200)
	data, err := PackEMV([]TLV{{Tag: []byte{0x9F, 0x10}, Value: long}})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x9F, 0x10, 0x81, 200}, data[:4])

	tlvs, err := ParseEMV(data)
	require.NoError(t, err)
	require.Len(t, tlvs, 1)
	assert.Equal(t, long, tlvs[0].Value)

	_, err = PackEMV([]TLV{{Value: []byte{1}}})
	assert.ErrorIs(t, err, ErrInvalidTLV)
}

func TestMessageFieldTLV(t *testing.T) {
	tlvs, err := ParseEMV(iccData)
	require.NoError(t, err)

	m := newTestMessage(t)
	_, err = m.FieldTLV(55)
	assert.ErrorIs(t, err, ErrFieldNotFound)

	require.NoError(t, m.SetFieldTLV(55, tlvs))
	out, err := m.Pack()
	require.NoError(t, err)

	back := NewMessage(DefaultProtocol())
	require.NoError(t, back.Unpack(out))
	raw, ok := back.Field(55)
	require.True(t, ok)
	assert.Equal(t, iccData, raw)

	got, err := back.FieldTLV(55)
	require.NoError(t, err)
	assert.Equal(t, tlvs, got)
}
