package dataset

import "fmt"

// MalformedMetadataError reports a record whose "original dialog info" value
// is not parseable as the expected JSON structure. Corrupt metadata must not
// be silently treated as "no summary", so this aborts the containing split.
type MalformedMetadataError struct {
	Err error
}

func (e *MalformedMetadataError) Error() string {
	return fmt.Sprintf("malformed dialog info: %v", e.Err)
}

func (e *MalformedMetadataError) Unwrap() error { return e.Err }

// MissingFieldError reports a record that lacks a required raw field
// entirely. Distinct from MalformedMetadataError: a missing field signals a
// schema mismatch rather than a corrupt value.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record missing required field %q", e.Field)
}
