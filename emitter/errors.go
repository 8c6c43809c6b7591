package emitter

import (
	"errors"
	"fmt"
)

// Errors returned by emitter operations.
var (
	// ErrLineOverflow is returned by AddText and AddQuotable when the text
	// does not fit on the current line and folding cannot free enough room.
	// This is recoverable: nothing has been placed and the caller may retry
	// with smaller tokens.
	ErrLineOverflow = errors.New("text does not fit within the line length")

	// ErrUnencodable is the terminal failure wrapped by UnencodableError.
	// Once an operation fails with it, the header under construction must
	// be discarded; the emitter state is no longer usable.
	ErrUnencodable = errors.New("text cannot be encoded within the line length")

	// ErrGroupNesting is returned by AddAddresses when address groups are
	// nested deeper than the emitter is willing to recurse.
	ErrGroupNesting = errors.New("address group nesting too deep")

	// ErrInvalidDate is returned by AddDate for dates that cannot be
	// represented in an RFC 5322 date-time.
	ErrInvalidDate = errors.New("date outside the representable range")
)

// UnencodableError is the terminal error returned by the phrase, address,
// and parameter operations when even word-level splitting cannot make the
// text fit the configured line length. It wraps ErrUnencodable and carries
// the word that could not be placed.
type UnencodableError struct {
	// Word is the token that could not be placed.
	Word string
}

// Error returns a message naming the offending word.
func (e *UnencodableError) Error() string {
	return fmt.Sprintf("cannot encode %q within the line length", e.Word)
}

// Unwrap returns ErrUnencodable so callers can test for this failure with
// errors.Is.
func (e *UnencodableError) Unwrap() error {
	return ErrUnencodable
}
