package iso8583

import (
	"fmt"
	"strings"
)

const hexTableLower = "0123456789abcdef"

// BitmapLength returns the number of bitmap bits needed for the given
// fields: the smallest multiple of 64 covering the highest field number,
// and 64 when there are none. Continuation markers are ignored.
func BitmapLength(fieldIDs []int) int {
	highest := 0
	for _, id := range fieldIDs {
		if IsReservedField(id) {
			continue
		}
		if id > highest {
			highest = id
		}
	}
	if highest <= SegmentBits {
		return SegmentBits
	}
	return ((highest + SegmentBits - 1) / SegmentBits) * SegmentBits
}

// EncodeBitmap computes the presence bitmap for fieldIDs. It returns the
// bit-string ('0'/'1', field 1 first) and its hex rendering, 16 hex digits
// per 64-bit segment. Bit 1 is set when a secondary segment follows and
// bit 65 when a tertiary one does; entries for fields 1 and 65 are dropped.
func EncodeBitmap(fieldIDs []int) (bits string, hexBitmap string, err error) {
	present := make(map[int]bool, len(fieldIDs))
	for _, id := range fieldIDs {
		if id < 1 || id > MaxBitmapBits {
			return "", "", fmt.Errorf("%w: field number %d out of range", ErrInvalidField, id)
		}
		if IsReservedField(id) {
			continue
		}
		present[id] = true
	}

	length := BitmapLength(fieldIDs)
	var bb, hb strings.Builder
	bb.Grow(length)
	hb.Grow(length / 4)

	nibble := byte(0)
	for i := 1; i <= length; i++ {
		set := present[i] ||
			(i == secondaryMarker && length > SegmentBits) ||
			(i == tertiaryMarker && length > 2*SegmentBits)

		nibble <<= 1
		if set {
			nibble |= 1
			bb.WriteByte('1')
		} else {
			bb.WriteByte('0')
		}
		if i%4 == 0 {
			hb.WriteByte(hexTableLower[nibble])
			nibble = 0
		}
	}
	return bb.String(), hb.String(), nil
}

// DecodeBitmap reads chained 64-bit segments from c. Another segment is
// read only while the last one starts with a 1 bit and at most 128 bits
// have been gathered, which caps the bitmap at three segments.
func DecodeBitmap(c *Cursor) (string, error) {
	var bits strings.Builder
	for {
		seg, err := c.Next(SegmentHexLen)
		if err != nil {
			return "", err
		}
		first := bits.Len()
		for i := 0; i < len(seg); i++ {
			v, ok := hexNibble(seg[i])
			if !ok {
				return "", fmt.Errorf("%w: bitmap digit %q", ErrInvalidHex, seg[i])
			}
			for shift := 3; shift >= 0; shift-- {
				if v&(1<<shift) != 0 {
					bits.WriteByte('1')
				} else {
					bits.WriteByte('0')
				}
			}
		}
		if bits.String()[first] != '1' || bits.Len() > 2*SegmentBits {
			break
		}
	}
	return bits.String(), nil
}

func hexNibble(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

// BitmapFields lists the data fields marked present in a bit-string,
// skipping the continuation markers.
func BitmapFields(bits string) []int {
	fields := make([]int, 0, 16)
	for i := 0; i < len(bits); i++ {
		num := i + 1
		if bits[i] == '1' && !IsReservedField(num) {
			fields = append(fields, num)
		}
	}
	return fields
}

// BitmapHex renders a bit-string back to hex. The length must be a
// multiple of 4.
func BitmapHex(bits string) (string, error) {
	if len(bits)%4 != 0 {
		return "", fmt.Errorf("%w: bitmap of %d bits", ErrInvalidField, len(bits))
	}
	var hb strings.Builder
	hb.Grow(len(bits) / 4)
	for i := 0; i < len(bits); i += 4 {
		nibble := byte(0)
		for j := 0; j < 4; j++ {
			nibble <<= 1
			switch bits[i+j] {
			case '1':
				nibble |= 1
			case '0':
			default:
				return "", fmt.Errorf("%w: bitmap char %q", ErrInvalidField, bits[i+j])
			}
		}
		hb.WriteByte(hexTableLower[nibble])
	}
	return hb.String(), nil
}
