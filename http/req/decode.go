package req

import (
	"errors"
	"fmt"
	"strings"

	"github.com/approute/approute"
	"github.com/gorilla/schema"
)

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	return dec
}

// translateDecoderError converts an error returned by *schema.Decoder into standardized errors.
// Some *schema.Decoder errors are issues with calling code;
// some errors are unexpected issues;
// still some are issues with mismatches between a request's values and the expected shape.
func translateDecoderError(err error) error {
	var pkgErrs schema.MultiError
	// NOTE: outside other errors handled below,
	// the schema package appears to always use MultiError to wrap errors up.
	if !errors.As(err, &pkgErrs) {
		return fmt.Errorf("%w: %s", approute.ErrBadFormat, err)
	}

	var validErrs ValidationErrors
	for _, pkgErr := range pkgErrs {
		switch err := pkgErr.(type) {
		case schema.ConversionError:
			idx := err.Index
			// NOTE: for non-slice values, the index is -1.
			if idx < 0 {
				idx = 0
			}

			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   fmt.Sprintf("bad value at index %d", idx),
				Rule:  "must be " + err.Type.String(),
			})

		case schema.EmptyFieldError:
			return fmt.Errorf(`%w: use validate pkg to set "required" fields, not schema`, approute.ErrNotImplemented)

		case schema.UnknownKeyError:
			// NOTE: unknown keys are accepted by the default decoder configuration,
			// so hitting this indicates that configuration changed.
			validErrs = append(validErrs, ValidationError{
				Field: err.Key,
				Got:   "value is set",
				Rule:  "unexpected key should not be set",
			})

		default:
			// A field of a type without a registered schema.Converter only errors
			// once a value actually arrives for it.
			if strings.Contains(err.Error(), "schema: converter not found for") {
				return fmt.Errorf("%w: cannot convert values into unsupported type", approute.ErrNotImplemented)
			}

			// The above covers all the known struct-back errors schema returns.
			// Anything else is likely a programming error, so surface it immediately.
			return fmt.Errorf("%w: %s", approute.ErrUnexpected, err)
		}
	}

	return validErrs
}
