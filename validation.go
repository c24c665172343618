package iso8583

import (
	"fmt"
	"regexp"
	"strconv"
)

// ValidationRule defines the interface for a single validation rule.
type ValidationRule interface {
	Validate(value []byte) error
	Name() string // Returns the name of the rule (e.g., "length")
}

// Validator checks field contents beyond what Pack enforces: character sets
// per encoding type, mandatory fields and any extra rules. It is built once
// and only read afterwards, so it may be shared between goroutines.
type Validator struct {
	mandatory  map[int]bool
	fieldRules map[int][]ValidationRule
	global     []ValidationRule
}

// NewValidator compiles length and charset rules for every field of p.
func NewValidator(p *Protocol) *Validator {
	v := &Validator{
		mandatory:  make(map[int]bool),
		fieldRules: make(map[int][]ValidationRule),
	}
	for _, id := range p.Fields() {
		meta, _ := p.Lookup(id)
		rules := []ValidationRule{&LengthRule{MaxLength: meta.MaxLength, Exact: !meta.Variable()}}
		if cs := charsetFor(meta.Type); cs != nil {
			rules = append(rules, cs)
		}
		v.fieldRules[id] = rules
	}
	return v
}

// Require marks fields that must be present.
func (v *Validator) Require(fieldNums ...int) *Validator {
	for _, n := range fieldNums {
		v.mandatory[n] = true
	}
	return v
}

// AddRule appends a rule for one field.
func (v *Validator) AddRule(fieldNum int, rule ValidationRule) *Validator {
	v.fieldRules[fieldNum] = append(v.fieldRules[fieldNum], rule)
	return v
}

// AddGlobalRule adds a rule that will be applied to all present fields.
func (v *Validator) AddGlobalRule(rule ValidationRule) *Validator {
	v.global = append(v.global, rule)
	return v
}

// ValidateMessage returns the first violation found, checking mandatory
// fields first and then present fields in ascending order.
func (v *Validator) ValidateMessage(m *Message) error {
	for n := 2; n <= MaxFieldNumber; n++ {
		if v.mandatory[n] && !m.HasField(n) {
			return &ValidationError{Field: n, Rule: "mandatory", Message: "mandatory field missing"}
		}
	}
	for _, id := range m.FieldIDs() {
		value, _ := m.Field(id)
		if err := v.ValidateField(id, value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateField validates a single value against all applicable rules.
func (v *Validator) ValidateField(fieldNum int, value []byte) error {
	for _, rule := range v.fieldRules[fieldNum] {
		if err := rule.Validate(value); err != nil {
			return &ValidationError{Field: fieldNum, Rule: rule.Name(), Message: err.Error()}
		}
	}
	for _, rule := range v.global {
		if err := rule.Validate(value); err != nil {
			return &ValidationError{Field: fieldNum, Rule: rule.Name(), Message: err.Error()}
		}
	}
	return nil
}

// Validate runs v against the message.
func (m *Message) Validate(v *Validator) error {
	if v == nil {
		return nil
	}
	return v.ValidateMessage(m)
}

// LengthRule validates the value length.
type LengthRule struct {
	MinLength int
	MaxLength int
	Exact     bool // MaxLength is the only accepted length
}

func (r *LengthRule) Name() string { return "length" }

func (r *LengthRule) Validate(value []byte) error {
	n := len(value)
	if r.Exact && n != r.MaxLength {
		return fmt.Errorf("expected length %d, got %d", r.MaxLength, n)
	}
	if r.MinLength > 0 && n < r.MinLength {
		return fmt.Errorf("length %d below minimum %d", n, r.MinLength)
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return fmt.Errorf("length %d exceeds maximum %d", n, r.MaxLength)
	}
	return nil
}

// CharsetRule accepts only letters, digits and/or special characters.
type CharsetRule struct {
	Type    EncodingType
	Alpha   bool
	Digits  bool
	Special bool // printable ASCII other than letters and digits, space included
	Track   bool // track 2/3 code set: digits, '=', 'D' and the sentinels
}

func (r *CharsetRule) Name() string { return "charset_" + string(r.Type) }

func (r *CharsetRule) Validate(value []byte) error {
	for i, b := range value {
		if !r.allowed(b) {
			return fmt.Errorf("invalid character %q at position %d", b, i)
		}
	}
	return nil
}

func (r *CharsetRule) allowed(b byte) bool {
	isDigit := b >= '0' && b <= '9'
	isAlpha := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
	switch {
	case r.Track:
		return isDigit || b == '=' || b == 'D' || b == 'd' || b == ';' || b == '?'
	case isDigit:
		return r.Digits
	case isAlpha:
		return r.Alpha
	case b >= 32 && b <= 126:
		return r.Special
	}
	return false
}

func charsetFor(t EncodingType) *CharsetRule {
	switch t {
	case TypeA:
		return &CharsetRule{Type: t, Alpha: true}
	case TypeN:
		return &CharsetRule{Type: t, Digits: true}
	case TypeS:
		return &CharsetRule{Type: t, Special: true}
	case TypeAN:
		return &CharsetRule{Type: t, Alpha: true, Digits: true}
	case TypeAS:
		return &CharsetRule{Type: t, Alpha: true, Special: true}
	case TypeNS:
		return &CharsetRule{Type: t, Digits: true, Special: true}
	case TypeANS:
		return &CharsetRule{Type: t, Alpha: true, Digits: true, Special: true}
	case TypeZ:
		return &CharsetRule{Type: t, Track: true}
	}
	return nil
}

// RegexRule validates the value against a regular expression.
type RegexRule struct {
	Description string // User-friendly error message
	regex       *regexp.Regexp
}

// NewRegexRule compiles pattern up front so the rule can be shared.
func NewRegexRule(pattern, description string) (*RegexRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexRule{Description: description, regex: re}, nil
}

func (r *RegexRule) Name() string { return "regex" }

func (r *RegexRule) Validate(value []byte) error {
	if !r.regex.Match(value) {
		if r.Description != "" {
			return fmt.Errorf("%s", r.Description)
		}
		return fmt.Errorf("does not match pattern %s", r.regex.String())
	}
	return nil
}

// RangeRule validates that a numeric value is within a given range.
type RangeRule struct {
	Min int64
	Max int64
}

func (r *RangeRule) Name() string { return "range" }

func (r *RangeRule) Validate(value []byte) error {
	val, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return fmt.Errorf("cannot parse as integer: %v", err)
	}
	if val < r.Min {
		return fmt.Errorf("value %d below minimum %d", val, r.Min)
	}
	if val > r.Max {
		return fmt.Errorf("value %d exceeds maximum %d", val, r.Max)
	}
	return nil
}

// CustomRule allows defining an arbitrary validation function.
type CustomRule struct {
	ValidateFunc func([]byte) error
	RuleName     string
}

func (r *CustomRule) Name() string { return r.RuleName }

func (r *CustomRule) Validate(value []byte) error {
	return r.ValidateFunc(value)
}
