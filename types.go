package iso8583

import (
	"fmt"
	"strconv"
	"strings"
)

// EncodingType is the dictionary tag naming how a field's value is coded.
type EncodingType string

const (
	TypeA   EncodingType = "a"   // Alpha
	TypeN   EncodingType = "n"   // Numeric
	TypeS   EncodingType = "s"   // Special characters
	TypeAN  EncodingType = "an"  // Alphanumeric
	TypeAS  EncodingType = "as"  // Alpha and special
	TypeNS  EncodingType = "ns"  // Numeric and special
	TypeANS EncodingType = "ans" // Alphanumeric and special
	TypeB   EncodingType = "b"   // Binary
	TypeZ   EncodingType = "z"   // Tracks 2 and 3 code set
)

// FieldMetadata describes one data element as resolved from a FieldDictionary.
type FieldMetadata struct {
	Type      EncodingType
	MaxLength int
	// LengthDigits is the number of decimal digits of the variable length
	// prefix (2 for LLVAR, 3 for LLLVAR). Zero means fixed length.
	LengthDigits int
	Name         string
}

// Variable reports whether the field carries a length prefix.
func (fm FieldMetadata) Variable() bool {
	return fm.LengthDigits > 0
}

// LengthSpec renders the length the way dictionaries write it, e.g. "..19".
func (fm FieldMetadata) LengthSpec() string {
	return strings.Repeat(".", fm.LengthDigits) + strconv.Itoa(fm.MaxLength)
}

// ParseLengthSpec parses "19", "..19" or "...999". Each leading dot is one
// digit of the variable length prefix.
func ParseLengthSpec(spec string) (maxLength, lengthDigits int, err error) {
	spec = strings.TrimSpace(spec)
	digits := len(spec) - len(strings.TrimLeft(spec, "."))
	n, err := strconv.Atoi(spec[digits:])
	if err != nil || n <= 0 {
		return 0, 0, fmt.Errorf("%w: length spec %q", ErrInvalidLength, spec)
	}
	if digits > 0 && n >= pow10(digits) {
		return 0, 0, fmt.Errorf("%w: length spec %q does not fit %d prefix digits", ErrInvalidLength, spec, digits)
	}
	return n, digits, nil
}

func pow10(n int) int {
	res := 1
	for i := 0; i < n; i++ {
		res *= 10
	}
	return res
}

const (
	MaxFieldNumber = 128
	SegmentBits    = 64
	SegmentHexLen  = SegmentBits / 4
	MaxBitmapBits  = 3 * SegmentBits
	MTIHexLen      = 8

	secondaryMarker = 1
	tertiaryMarker  = 65
)

// IsReservedField reports whether fieldNum is a bitmap continuation marker.
func IsReservedField(fieldNum int) bool {
	return fieldNum == secondaryMarker || fieldNum == tertiaryMarker
}

// Message type indicators used by the helpers in message.go.
const (
	MTIAuthorizationRequest  = "0100"
	MTIAuthorizationResponse = "0110"
	MTIFinancialRequest      = "0200"
	MTIFinancialResponse     = "0210"
	MTIReversalRequest       = "0400"
	MTIReversalResponse      = "0410"
	MTINetworkRequest        = "0800"
	MTINetworkResponse       = "0810"
)
