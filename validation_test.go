package iso8583

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorCharsets(t *testing.T) {
	v := NewValidator(DefaultProtocol())

	tests := []struct {
		name  string
		field int
		value string
		rule  string
	}{
		{"numeric ok", 3, "000000", ""},
		{"numeric letter", 3, "00000A", "charset_n"},
		{"fixed length", 3, "0000", "length"},
		{"ans accepts specials", 41, "T-01 #/*", ""},
		{"track 2", 35, "4111111111111111=2512", ""},
		{"track 2 bad char", 35, "4111111111111111X2512", "charset_z"},
		{"variable too long", 2, "41111111111111111111", "length"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateField(tt.field, []byte(tt.value))
			if tt.rule == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.rule, ve.Rule)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestValidatorMandatory(t *testing.T) {
	v := NewValidator(DefaultProtocol()).Require(2, 3, 11)

	m := newTestMessage(t)
	err := m.Validate(v)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 11, ve.Field)
	assert.Equal(t, "mandatory", ve.Rule)

	require.NoError(t, m.SetFieldString(11, "000001"))
	assert.NoError(t, m.Validate(v))
	assert.NoError(t, m.Validate(nil))
}

func TestValidatorExtraRules(t *testing.T) {
	currency, err := NewRegexRule(`^[0-9]{3}$`, "currency must be 3 digits")
	require.NoError(t, err)

	v := NewValidator(DefaultProtocol()).
		AddRule(4, &RangeRule{Min: 1, Max: 100000}).
		AddRule(49, currency).
		AddGlobalRule(&CustomRule{
			RuleName: "no_nul",
			ValidateFunc: func(b []byte) error {
				for _, c := range b {
					if c == 0 {
						return errors.New("NUL byte")
					}
				}
				return nil
			},
		})

	assert.NoError(t, v.ValidateField(4, []byte("000000010000")))

	err = v.ValidateField(4, []byte("000000000000"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "range", ve.Rule)

	assert.NoError(t, v.ValidateField(49, []byte("840")))

	err = v.ValidateField(48, []byte{'a', 0})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "charset_ans", ve.Rule)

	err = v.ValidateField(130, []byte{0})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "no_nul", ve.Rule)
}

func TestRegexRule(t *testing.T) {
	r, err := NewRegexRule(`^[0-9]{3}$`, "currency must be 3 digits")
	require.NoError(t, err)
	assert.EqualError(t, r.Validate([]byte("84")), "currency must be 3 digits")

	_, err = NewRegexRule(`(`, "")
	assert.Error(t, err)
}

func TestLengthRule(t *testing.T) {
	r := &LengthRule{MinLength: 2, MaxLength: 4}
	assert.NoError(t, r.Validate([]byte("abc")))
	assert.Error(t, r.Validate([]byte("a")))
	assert.Error(t, r.Validate([]byte("abcde")))

	exact := &LengthRule{MaxLength: 3, Exact: true}
	assert.NoError(t, exact.Validate([]byte("abc")))
	assert.Error(t, exact.Validate([]byte("ab")))
}
