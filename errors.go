package iso8583

import "fmt"

var (
	ErrInvalidMTI         = fmt.Errorf("invalid MTI")
	ErrInvalidField       = fmt.Errorf("invalid field")
	ErrReservedField      = fmt.Errorf("reserved bitmap field")
	ErrFieldNotFound      = fmt.Errorf("field not found")
	ErrFieldNotConfigured = fmt.Errorf("field not configured")
	ErrUnknownEncoding    = fmt.Errorf("unknown encoding type")
	ErrInvalidLength      = fmt.Errorf("invalid field length")
	ErrInsufficientData   = fmt.Errorf("insufficient data")
	ErrInvalidHex         = fmt.Errorf("invalid hex data")
	ErrFrameLength        = fmt.Errorf("message length mismatch")
	ErrFrameOverflow      = fmt.Errorf("message length exceeds prefix")
	ErrTrailingData       = fmt.Errorf("trailing data after last field")
	ErrValidationFailed   = fmt.Errorf("validation failed")
	ErrInvalidTLV         = fmt.Errorf("invalid TLV data")

	// ErrPack and ErrUnpack classify PackError and UnpackError for errors.Is.
	ErrPack   = fmt.Errorf("pack failed")
	ErrUnpack = fmt.Errorf("unpack failed")
)

// PackError reports a failure while building the wire message. Field is 0
// for failures that are not tied to a data element (MTI, framing).
type PackError struct {
	Field    int
	Expected int
	Actual   int
	Value    []byte
	Variable bool
	Err      error
}

func (pe *PackError) Error() string {
	if pe.Field == 0 {
		return fmt.Sprintf("pack: %v", pe.Err)
	}
	if pe.Expected == 0 && pe.Actual == 0 {
		return fmt.Sprintf("pack field %d: %v", pe.Field, pe.Err)
	}
	rule := "exactly"
	if pe.Variable {
		rule = "at most"
	}
	return fmt.Sprintf("pack field %d: should have length %s %d, value %q is %d",
		pe.Field, rule, pe.Expected, pe.Value, pe.Actual)
}

func (pe *PackError) Unwrap() error { return pe.Err }

func (pe *PackError) Is(target error) bool { return target == ErrPack }

// UnpackError reports where in the wire message decoding stopped.
type UnpackError struct {
	Stage string
	Field int
	Err   error
}

func (ue *UnpackError) Error() string {
	if ue.Field > 0 {
		return fmt.Sprintf("unpack %s %d: %v", ue.Stage, ue.Field, ue.Err)
	}
	return fmt.Sprintf("unpack %s: %v", ue.Stage, ue.Err)
}

func (ue *UnpackError) Unwrap() error { return ue.Err }

func (ue *UnpackError) Is(target error) bool { return target == ErrUnpack }

// UnknownEncodingError is returned when the dictionary names an encoding
// type that has no registered codec.
type UnknownEncodingError struct {
	Field int
	Type  EncodingType
}

func (ee *UnknownEncodingError) Error() string {
	return fmt.Sprintf("field %d: unknown field mapper for %q type", ee.Field, string(ee.Type))
}

func (ee *UnknownEncodingError) Is(target error) bool { return target == ErrUnknownEncoding }

type ValidationError struct {
	Field   int
	Rule    string
	Message string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %d (%s): %s", ve.Field, ve.Rule, ve.Message)
}

func (ve *ValidationError) Unwrap() error { return ErrValidationFailed }
