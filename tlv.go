package iso8583

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// TLV is one BER-TLV element as used in ICC data (field 55).
type TLV struct {
	Tag   []byte
	Value []byte
}

// TagHex returns the tag in upper case hex, e.g. "9F26".
func (t TLV) TagHex() string {
	return strings.ToUpper(hex.EncodeToString(t.Tag))
}

// ParseEMV splits ICC data into its TLV elements. Tags with low bits 11111
// continue while the next byte has its high bit set; lengths use the BER
// short or long form. Values reference data.
func ParseEMV(data []byte) ([]TLV, error) {
	out := make([]TLV, 0, 16)
	offset := 0
	for offset < len(data) {
		tagStart := offset
		first := data[offset]
		offset++
		if first&0x1F == 0x1F {
			for offset < len(data) && data[offset]&0x80 != 0 {
				offset++
			}
			if offset >= len(data) {
				return nil, fmt.Errorf("%w: truncated tag at %d", ErrInvalidTLV, tagStart)
			}
			offset++
		}
		tag := data[tagStart:offset]

		if offset >= len(data) {
			return nil, fmt.Errorf("%w: missing length for tag %X", ErrInvalidTLV, tag)
		}
		lb := data[offset]
		offset++
		length := int(lb)
		if lb&0x80 != 0 {
			n := int(lb & 0x7F)
			if n == 0 || n > 4 || offset+n > len(data) {
				return nil, fmt.Errorf("%w: bad length for tag %X", ErrInvalidTLV, tag)
			}
			length = 0
			for i := 0; i < n; i++ {
				length = length<<8 | int(data[offset])
				offset++
			}
		}

		if length < 0 || offset+length > len(data) {
			return nil, fmt.Errorf("%w: truncated value for tag %X", ErrInvalidTLV, tag)
		}
		out = append(out, TLV{Tag: tag, Value: data[offset : offset+length]})
		offset += length
	}
	return out, nil
}

// PackEMV encodes elements back to BER-TLV, using the short length form up
// to 127 bytes.
func PackEMV(tlvs []TLV) ([]byte, error) {
	var buf bytes.Buffer
	for _, t := range tlvs {
		if len(t.Tag) == 0 {
			return nil, fmt.Errorf("%w: empty tag", ErrInvalidTLV)
		}
		buf.Write(t.Tag)
		n := len(t.Value)
		switch {
		case n < 0x80:
			buf.WriteByte(byte(n))
		case n <= 0xFF:
			buf.WriteByte(0x81)
			buf.WriteByte(byte(n))
		case n <= 0xFFFF:
			buf.WriteByte(0x82)
			buf.WriteByte(byte(n >> 8))
			buf.WriteByte(byte(n))
		default:
			return nil, fmt.Errorf("%w: value of %d bytes for tag %X", ErrInvalidTLV, n, t.Tag)
		}
		buf.Write(t.Value)
	}
	return buf.Bytes(), nil
}

// FindTLV searches for a TLV by its tag bytes.
func FindTLV(tlvs []TLV, tag []byte) (TLV, bool) {
	for _, t := range tlvs {
		if bytes.Equal(t.Tag, tag) {
			return t, true
		}
	}
	return TLV{}, false
}

// TLVToMap keys element values by upper case hex tag.
func TLVToMap(tlvs []TLV) map[string][]byte {
	m := make(map[string][]byte, len(tlvs))
	for _, t := range tlvs {
		m[t.TagHex()] = t.Value
	}
	return m
}

// FieldTLV parses the value of fieldNum (normally 55) as ICC data.
func (m *Message) FieldTLV(fieldNum int) ([]TLV, error) {
	v, ok := m.fields[fieldNum]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrFieldNotFound, fieldNum)
	}
	return ParseEMV(v)
}

// SetFieldTLV packs tlvs and stores them as the value of fieldNum.
func (m *Message) SetFieldTLV(fieldNum int, tlvs []TLV) error {
	data, err := PackEMV(tlvs)
	if err != nil {
		return err
	}
	return m.SetField(fieldNum, data)
}
