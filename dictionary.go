package iso8583

import (
	"fmt"
	"sort"
)

// FieldDictionary resolves a field number to its encoding metadata.
type FieldDictionary interface {
	Lookup(fieldNum int) (FieldMetadata, error)
}

// Protocol is a map backed FieldDictionary. It is immutable after
// construction and safe for concurrent use.
type Protocol struct {
	name   string
	fields map[int]FieldMetadata
}

// NewProtocol copies fields into a new Protocol. Entries for the bitmap
// continuation markers or out of range numbers are rejected.
func NewProtocol(name string, fields map[int]FieldMetadata) (*Protocol, error) {
	p := &Protocol{name: name, fields: make(map[int]FieldMetadata, len(fields))}
	for num, meta := range fields {
		if num < 2 || num > MaxFieldNumber {
			return nil, fmt.Errorf("%w: field number %d out of range (2-%d)", ErrInvalidField, num, MaxFieldNumber)
		}
		if IsReservedField(num) {
			return nil, fmt.Errorf("%w: field %d", ErrReservedField, num)
		}
		if meta.MaxLength <= 0 {
			return nil, fmt.Errorf("%w: field %d has no length", ErrInvalidLength, num)
		}
		p.fields[num] = meta
	}
	return p, nil
}

// Name returns the protocol label, e.g. "ISO8583:1987".
func (p *Protocol) Name() string { return p.name }

// Lookup implements FieldDictionary.
func (p *Protocol) Lookup(fieldNum int) (FieldMetadata, error) {
	meta, ok := p.fields[fieldNum]
	if !ok {
		return FieldMetadata{}, fmt.Errorf("%w: %d", ErrFieldNotConfigured, fieldNum)
	}
	return meta, nil
}

// Fields returns the configured field numbers in ascending order.
func (p *Protocol) Fields() []int {
	ids := make([]int, 0, len(p.fields))
	for id := range p.fields {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Validate checks that every field uses an encoding type known to r.
func (p *Protocol) Validate(r *CodecRegistry) error {
	for _, id := range p.Fields() {
		meta := p.fields[id]
		if !r.Supports(meta.Type) {
			return &UnknownEncodingError{Field: id, Type: meta.Type}
		}
	}
	return nil
}
