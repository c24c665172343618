package iso8583

// MessageOption represents a functional option for message configuration
type MessageOption func(*Message)

// WithLengthPrefix enables framing with a decimal length prefix of the
// given number of digits. Zero disables framing.
func WithLengthPrefix(digits int) MessageOption {
	return func(m *Message) {
		if digits < 0 {
			digits = 0
		}
		m.framing = Framing{Digits: digits}
	}
}

// WithStrictTrailer makes Unpack fail with ErrTrailingData when hex is
// left over after the last field.
func WithStrictTrailer() MessageOption {
	return func(m *Message) {
		m.strictTrailer = true
	}
}

// WithCodecRegistry replaces the shared default codec registry
func WithCodecRegistry(r *CodecRegistry) MessageOption {
	return func(m *Message) {
		if r != nil {
			m.codecs = r
		}
	}
}

// WithMTI sets the Message Type Indicator. Invalid values are ignored and
// caught by Pack.
func WithMTI(mti string) MessageOption {
	return func(m *Message) {
		_ = m.SetMTI(mti)
	}
}

// WithField sets a field value during message creation
func WithField(fieldNum int, value []byte) MessageOption {
	return func(m *Message) {
		_ = m.SetField(fieldNum, value)
	}
}

// WithFields sets multiple character fields during message creation
func WithFields(fields map[int]string) MessageOption {
	return func(m *Message) {
		for fieldNum, value := range fields {
			_ = m.SetFieldString(fieldNum, value)
		}
	}
}
