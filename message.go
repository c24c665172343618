package iso8583

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

// Message is a single ISO8583 message in hex wire form. It holds the MTI,
// the bitmap computed by the last Pack or read by the last Unpack, and the
// field values keyed by field number.
//
// A Message is bound to one FieldDictionary, which it only reads. It is not
// safe for concurrent mutation; distinct messages share no mutable state.
type Message struct {
	mti           string
	bitmap        string
	fields        map[int][]byte
	dict          FieldDictionary
	codecs        *CodecRegistry
	framing       Framing
	strictTrailer bool   // reject hex left over after the last field
	fullMessage   string // last packed or unpacked wire message
}

// NewMessage creates an empty message bound to dict.
func NewMessage(dict FieldDictionary, opts ...MessageOption) *Message {
	if dict == nil {
		panic("dictionary cannot be nil")
	}
	m := &Message{
		fields: make(map[int][]byte),
		dict:   dict,
		codecs: DefaultCodecRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func validMTI(mti string) bool {
	if len(mti) != 4 {
		return false
	}
	for i := 0; i < len(mti); i++ {
		if mti[i] < '0' || mti[i] > '9' {
			return false
		}
	}
	return true
}

func checkFieldNumber(fieldNum int) error {
	if fieldNum < 1 || fieldNum > MaxFieldNumber {
		return fmt.Errorf("%w: field number %d out of range (2-%d)", ErrInvalidField, fieldNum, MaxFieldNumber)
	}
	if IsReservedField(fieldNum) {
		return fmt.Errorf("%w: field %d", ErrReservedField, fieldNum)
	}
	return nil
}

// MTI returns the Message Type Indicator, empty if none was set.
func (m *Message) MTI() string {
	return m.mti
}

// SetMTI sets the Message Type Indicator. It must be four decimal digits.
func (m *Message) SetMTI(mti string) error {
	if !validMTI(mti) {
		return fmt.Errorf("%w: %q should be a 4 digit string", ErrInvalidMTI, mti)
	}
	m.mti = mti
	return nil
}

// Set replaces all field values. Entries for the bitmap markers 1 and 65
// are dropped; any other number outside 2-128 is rejected and leaves the
// message unchanged.
func (m *Message) Set(fields map[int][]byte) error {
	next := make(map[int][]byte, len(fields))
	for num, value := range fields {
		if IsReservedField(num) {
			continue
		}
		if err := checkFieldNumber(num); err != nil {
			return err
		}
		next[num] = cloneBytes(value)
	}
	m.fields = next
	return nil
}

// SetField stores a copy of value for fieldNum.
func (m *Message) SetField(fieldNum int, value []byte) error {
	if err := checkFieldNumber(fieldNum); err != nil {
		return err
	}
	m.fields[fieldNum] = cloneBytes(value)
	return nil
}

// SetFieldString is SetField for character data.
func (m *Message) SetFieldString(fieldNum int, value string) error {
	return m.SetField(fieldNum, []byte(value))
}

// UnsetField removes fieldNum if present.
func (m *Message) UnsetField(fieldNum int) {
	delete(m.fields, fieldNum)
}

// Field returns the value stored for fieldNum. The slice is owned by the
// message and must not be modified.
func (m *Message) Field(fieldNum int) ([]byte, bool) {
	v, ok := m.fields[fieldNum]
	return v, ok
}

// FieldString returns the value of fieldNum as a string, "" if absent.
func (m *Message) FieldString(fieldNum int) string {
	return string(m.fields[fieldNum])
}

// HasField reports whether fieldNum has a value.
func (m *Message) HasField(fieldNum int) bool {
	_, ok := m.fields[fieldNum]
	return ok
}

// FieldIDs returns the present field numbers in ascending order.
func (m *Message) FieldIDs() []int {
	ids := make([]int, 0, len(m.fields))
	for id := range m.fields {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Fields returns a shallow copy of the field map.
func (m *Message) Fields() map[int][]byte {
	out := make(map[int][]byte, len(m.fields))
	for id, v := range m.fields {
		out[id] = v
	}
	return out
}

// Bitmap returns the bitmap bit-string, field 1 first. It is empty until
// Pack or Unpack has run.
func (m *Message) Bitmap() string {
	return m.bitmap
}

// FullMessage returns the hex message produced by the last Pack or consumed
// by the last successful Unpack.
func (m *Message) FullMessage() string {
	return m.fullMessage
}

// Pack encodes the message: hex MTI, bitmap, then every field in ascending
// order, wrapped in the length prefix when framing is enabled.
func (m *Message) Pack() (string, error) {
	if !validMTI(m.mti) {
		return "", &PackError{Err: fmt.Errorf("%w: %q", ErrInvalidMTI, m.mti)}
	}
	for id := range m.fields {
		if IsReservedField(id) {
			delete(m.fields, id)
		}
	}

	ids := m.FieldIDs()
	bits, bitmapHex, err := EncodeBitmap(ids)
	if err != nil {
		return "", &PackError{Err: err}
	}

	var sb strings.Builder
	sb.WriteString(hex.EncodeToString([]byte(m.mti)))
	sb.WriteString(bitmapHex)

	for _, id := range ids {
		packed, err := m.packField(id, m.fields[id])
		if err != nil {
			return "", err
		}
		sb.WriteString(packed)
	}

	out, err := m.framing.Wrap(sb.String())
	if err != nil {
		return "", &PackError{Err: err}
	}

	m.bitmap = bits
	m.fullMessage = out
	return out, nil
}

// packField checks the value length against the field's codec and packs it.
func (m *Message) packField(fieldNum int, value []byte) (string, error) {
	meta, err := m.dict.Lookup(fieldNum)
	if err != nil {
		return "", &PackError{Field: fieldNum, Err: err}
	}
	codec, err := m.codecs.Codec(fieldNum, meta)
	if err != nil {
		return "", err
	}

	declared := codec.DeclaredLength()
	if (!codec.IsVariableLength() && len(value) != declared) || len(value) > declared {
		return "", &PackError{
			Field:    fieldNum,
			Expected: declared,
			Actual:   len(value),
			Value:    cloneBytes(value),
			Variable: codec.IsVariableLength(),
			Err:      ErrInvalidLength,
		}
	}

	packed, err := codec.Pack(value)
	if err != nil {
		return "", &PackError{Field: fieldNum, Err: err}
	}
	return packed, nil
}

// Unpack decodes a hex wire message into m. Decoding runs framing, MTI,
// bitmap and then the fields in bitmap order; the first failure aborts it
// and m keeps its previous contents. Data after the last field is ignored
// unless the message was created WithStrictTrailer.
func (m *Message) Unpack(msg string) error {
	body, err := m.framing.Unwrap(msg)
	if err != nil {
		return &UnpackError{Stage: "framing", Err: err}
	}
	c := NewCursor(body)

	raw, err := c.NextBytes(MTIHexLen / 2)
	if err != nil {
		return &UnpackError{Stage: "mti", Err: err}
	}
	mti := string(raw)
	if !validMTI(mti) {
		return &UnpackError{Stage: "mti", Err: fmt.Errorf("%w: %q should be a 4 digit string", ErrInvalidMTI, mti)}
	}

	bits, err := DecodeBitmap(c)
	if err != nil {
		return &UnpackError{Stage: "bitmap", Err: err}
	}

	fields := make(map[int][]byte)
	for _, id := range BitmapFields(bits) {
		meta, err := m.dict.Lookup(id)
		if err != nil {
			return &UnpackError{Stage: "field", Field: id, Err: err}
		}
		codec, err := m.codecs.Codec(id, meta)
		if err != nil {
			return err
		}
		value, _, err := codec.Unpack(c)
		if err != nil {
			return &UnpackError{Stage: "field", Field: id, Err: err}
		}
		fields[id] = value
	}

	if m.strictTrailer && c.Remaining() > 0 {
		return &UnpackError{Stage: "trailer", Err: fmt.Errorf("%w: %d hex chars", ErrTrailingData, c.Remaining())}
	}

	m.mti = mti
	m.bitmap = bits
	m.fields = fields
	m.fullMessage = msg
	return nil
}

// Clone returns a deep copy bound to the same dictionary and codecs.
func (m *Message) Clone() *Message {
	clone := &Message{
		mti:           m.mti,
		bitmap:        m.bitmap,
		fields:        make(map[int][]byte, len(m.fields)),
		dict:          m.dict,
		codecs:        m.codecs,
		framing:       m.framing,
		strictTrailer: m.strictTrailer,
		fullMessage:   m.fullMessage,
	}
	for id, v := range m.fields {
		clone.fields[id] = cloneBytes(v)
	}
	return clone
}

// CreateResponse clones the message, turns the MTI into its response
// (0200 -> 0210, 0420 -> 0430) and sets the response code in field 39.
func (m *Message) CreateResponse(responseCode string) (*Message, error) {
	if !validMTI(m.mti) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMTI, m.mti)
	}
	function := m.mti[2] - '0'
	if function%2 != 0 {
		return nil, fmt.Errorf("cannot create response from MTI: %s", m.mti)
	}

	res := m.Clone()
	res.bitmap = ""
	res.fullMessage = ""
	res.mti = m.mti[:2] + strconv.Itoa(int(function+1)) + m.mti[3:]
	if err := res.SetFieldString(39, responseCode); err != nil {
		return nil, err
	}
	return res, nil
}

// IsNetworkManagement reports whether the MTI is of class 8 (0800, 0810...).
func (m *Message) IsNetworkManagement() bool {
	return validMTI(m.mti) && m.mti[1] == '8'
}

// sensitiveFields are masked in log output.
var sensitiveFields = map[int]bool{
	35: true, // Track 2
	36: true, // Track 3
	45: true, // Track 1
	52: true, // PIN data
}

// LogValue implements slog.LogValuer. The PAN keeps its first six and last
// four digits; track and PIN data are fully masked.
func (m *Message) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.String("MTI", m.mti))
	if m.bitmap != "" {
		if h, err := BitmapHex(m.bitmap); err == nil {
			attrs = append(attrs, slog.String("bitmap", h))
		}
	}

	ids := m.FieldIDs()
	fieldArgs := make([]any, 0, len(ids))
	for _, id := range ids {
		fieldArgs = append(fieldArgs, slog.String(strconv.Itoa(id), m.displayValue(id)))
	}
	attrs = append(attrs, slog.Group("fields", fieldArgs...))
	return slog.GroupValue(attrs...)
}

func (m *Message) displayValue(fieldNum int) string {
	v := m.fields[fieldNum]
	switch {
	case sensitiveFields[fieldNum]:
		return strings.Repeat("*", len(v))
	case fieldNum == 2:
		return MaskPAN(string(v))
	}
	if meta, err := m.dict.Lookup(fieldNum); err == nil && meta.Type == TypeB {
		return hex.EncodeToString(v)
	}
	return string(v)
}

// MaskPAN keeps the first six and last four characters of a card number.
func MaskPAN(pan string) string {
	if len(pan) <= 10 {
		return strings.Repeat("*", len(pan))
	}
	return pan[:6] + strings.Repeat("*", len(pan)-10) + pan[len(pan)-4:]
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
