package iso8583

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// FieldCodec packs one data element to hex and reads it back from a Cursor.
// Implementations are stateless after construction and safe to share.
type FieldCodec interface {
	// DeclaredLength is the exact (fixed) or maximum (variable) length.
	DeclaredLength() int
	IsVariableLength() bool
	// Pack returns the hex encoding of value, length prefix included.
	Pack(value []byte) (string, error)
	// Unpack reads one value and returns it with the number of hex
	// characters consumed from c.
	Unpack(c *Cursor) ([]byte, int, error)
}

// AlphaNumeric codes character data (a, n, s, an, as, ns, ans, z). Lengths
// are counted in characters.
type AlphaNumeric struct {
	length       int
	lengthDigits int
}

func NewAlphaNumeric(meta FieldMetadata) *AlphaNumeric {
	return &AlphaNumeric{length: meta.MaxLength, lengthDigits: meta.LengthDigits}
}

func (a *AlphaNumeric) DeclaredLength() int    { return a.length }
func (a *AlphaNumeric) IsVariableLength() bool { return a.lengthDigits > 0 }

func (a *AlphaNumeric) Pack(value []byte) (string, error) {
	return packValue(value, a.lengthDigits)
}

func (a *AlphaNumeric) Unpack(c *Cursor) ([]byte, int, error) {
	return unpackValue(c, a.length, a.lengthDigits)
}

// Binary codes raw bytes. Lengths are counted in bytes and the value is
// hex encoded on the wire as is.
type Binary struct {
	length       int
	lengthDigits int
}

func NewBinary(meta FieldMetadata) *Binary {
	return &Binary{length: meta.MaxLength, lengthDigits: meta.LengthDigits}
}

func (b *Binary) DeclaredLength() int    { return b.length }
func (b *Binary) IsVariableLength() bool { return b.lengthDigits > 0 }

func (b *Binary) Pack(value []byte) (string, error) {
	return packValue(value, b.lengthDigits)
}

func (b *Binary) Unpack(c *Cursor) ([]byte, int, error) {
	return unpackValue(c, b.length, b.lengthDigits)
}

func packValue(value []byte, lengthDigits int) (string, error) {
	body := hex.EncodeToString(value)
	if lengthDigits == 0 {
		return body, nil
	}
	prefix, err := encodeLengthPrefix(len(value), lengthDigits)
	if err != nil {
		return "", err
	}
	return prefix + body, nil
}

func unpackValue(c *Cursor, maxLength, lengthDigits int) ([]byte, int, error) {
	start := c.Pos()
	n := maxLength
	if lengthDigits > 0 {
		l, err := decodeLengthPrefix(c, lengthDigits)
		if err != nil {
			c.pos = start
			return nil, 0, err
		}
		if l > maxLength {
			c.pos = start
			return nil, 0, fmt.Errorf("%w: length %d exceeds maximum %d", ErrInvalidLength, l, maxLength)
		}
		n = l
	}
	value, err := c.NextBytes(n)
	if err != nil {
		c.pos = start
		return nil, 0, err
	}
	return value, c.Pos() - start, nil
}

// encodeLengthPrefix renders n as a zero padded decimal of the given width
// and hex encodes its ASCII bytes.
func encodeLengthPrefix(n, digits int) (string, error) {
	s := fmt.Sprintf("%0*d", digits, n)
	if len(s) != digits {
		return "", fmt.Errorf("%w: length %d does not fit %d digits", ErrInvalidLength, n, digits)
	}
	return hex.EncodeToString([]byte(s)), nil
}

// decodeLengthPrefix reads a hex encoded ASCII decimal of the given width.
func decodeLengthPrefix(c *Cursor, digits int) (int, error) {
	raw, err := c.NextBytes(digits)
	if err != nil {
		return 0, err
	}
	for _, ch := range raw {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: length prefix %q is not decimal", ErrInvalidLength, raw)
		}
	}
	return strconv.Atoi(string(raw))
}

// CodecFactory builds a codec for one field's metadata.
type CodecFactory func(meta FieldMetadata) FieldCodec

var defaultFactories = map[EncodingType]CodecFactory{
	TypeA:   func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeN:   func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeS:   func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeAN:  func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeAS:  func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeNS:  func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeANS: func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeZ:   func(m FieldMetadata) FieldCodec { return NewAlphaNumeric(m) },
	TypeB:   func(m FieldMetadata) FieldCodec { return NewBinary(m) },
}

// CodecRegistry maps encoding types to codec constructors and caches the
// constructed codecs per metadata value. It is safe for concurrent use,
// registration included; a Register invalidates every cached codec.
type CodecRegistry struct {
	factories *xsync.MapOf[EncodingType, CodecFactory]
	cache     *xsync.MapOf[FieldMetadata, cachedCodec]
	gen       atomic.Uint64
}

type cachedCodec struct {
	gen   uint64
	codec FieldCodec
}

// NewCodecRegistry returns a registry holding the built-in encoding types.
func NewCodecRegistry() *CodecRegistry {
	r := &CodecRegistry{
		factories: xsync.NewMapOf[EncodingType, CodecFactory](),
		cache:     xsync.NewMapOf[FieldMetadata, cachedCodec](),
	}
	for t, f := range defaultFactories {
		r.factories.Store(t, f)
	}
	return r
}

var defaultRegistry = NewCodecRegistry()

// DefaultCodecRegistry returns the shared registry used when a Message is
// created without WithCodecRegistry. Types registered on it are visible to
// every such message.
func DefaultCodecRegistry() *CodecRegistry {
	return defaultRegistry
}

// Register adds or replaces the factory for an encoding type.
func (r *CodecRegistry) Register(t EncodingType, f CodecFactory) {
	r.factories.Store(t, f)
	r.gen.Add(1)
	r.cache.Clear()
}

// Supports reports whether t has a registered factory.
func (r *CodecRegistry) Supports(t EncodingType) bool {
	_, ok := r.factories.Load(t)
	return ok
}

// Codec resolves the codec for a field. fieldNum is only used for error
// context.
func (r *CodecRegistry) Codec(fieldNum int, meta FieldMetadata) (FieldCodec, error) {
	gen := r.gen.Load()
	if c, ok := r.cache.Load(meta); ok && c.gen == gen {
		return c.codec, nil
	}
	f, ok := r.factories.Load(meta.Type)
	if !ok {
		return nil, &UnknownEncodingError{Field: fieldNum, Type: meta.Type}
	}
	codec := f(meta)
	r.cache.Store(meta, cachedCodec{gen: gen, codec: codec})
	return codec, nil
}
