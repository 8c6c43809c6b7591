package emitter

import (
	"strings"
)

// Limits applied to emitter options. Values outside these ranges are clamped
// rather than rejected, so a caller can always get a working emitter.
const (
	DefaultMaxLineLength = 78  // the RFC 5322 recommended limit
	MinMaxLineLength     = 30  // anything shorter cannot hold an encoded word
	MaxMaxLineLength     = 900 // just under the RFC 5322 hard limit of 998 octets

	MinFirstLineLength = 10
)

// Option is a setting that changes the behavior of an Emitter created by
// New().
type Option func(*Emitter)

// WithMaxLineLength sets the maximum number of visible characters permitted
// on each emitted line, excluding the CRLF terminator. Values are clamped to
// the range MinMaxLineLength through MaxMaxLineLength.
func WithMaxLineLength(n int) Option {
	return func(e *Emitter) {
		e.maxLineLength = n
	}
}

// WithFirstLineLength sets the budget for the first line only. This allows
// the caller to reserve room for the header name and colon it will write in
// front of the emitted value. Values are clamped to the range
// MinFirstLineLength through the maximum line length.
func WithFirstLineLength(n int) Option {
	return func(e *Emitter) {
		e.firstLineLength = n
	}
}

// WithEncodedWords enables RFC 2047 encoded words. When enabled, phrases
// containing non-ASCII characters are rendered as encoded words. When
// disabled (the default), such text is placed on the line as raw UTF-8.
func WithEncodedWords() Option {
	return func(e *Emitter) {
		e.useEncodedWords = true
	}
}

// WithCharset sets the character set used for encoded words and extended
// parameter values. The default is UTF-8. Using any other charset requires a
// CharsetEncoder that understands it, such as the one installed by importing
// the emitter/encoding package.
func WithCharset(charset string) Option {
	return func(e *Emitter) {
		e.charset = charset
	}
}

// Emitter assembles a single header field body into folded, length
// constrained wire format text. Create one with New() for each header value
// to be emitted, make one or more Add* calls, then read the result off once
// with String().
//
// An Emitter is not safe for concurrent use. Use one emitter per in-flight
// header.
type Emitter struct {
	maxLineLength   int
	firstLineLength int
	useEncodedWords bool
	charset         string

	// output holds committed, CRLF-terminated lines. current is the
	// uncommitted tail of the value. remaining is the number of character
	// units still available on the current line, one short of the true
	// room so there is always space for the continuation indent on the
	// next line. splitPoint is the index into current of the best place
	// to insert a fold, 0 when there is none.
	output     strings.Builder
	current    string
	remaining  int
	splitPoint int
}

// New creates an Emitter ready to assemble one header field body. Options
// with out-of-range values are clamped into range rather than rejected.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		maxLineLength: DefaultMaxLineLength,
		charset:       "UTF-8",
	}
	for _, opt := range opts {
		opt(e)
	}

	e.maxLineLength = clamp(e.maxLineLength, MinMaxLineLength, MaxMaxLineLength)
	if e.firstLineLength == 0 {
		e.firstLineLength = e.maxLineLength
	}
	e.firstLineLength = clamp(e.firstLineLength, MinFirstLineLength, e.maxLineLength)

	e.remaining = e.firstLineLength - 1

	return e
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// lineWidth returns the width of s in UTF-16 code units, so characters
// outside the basic multilingual plane count as two. This is the accounting
// unit used for line lengths, which matters only for unencoded non-ASCII
// text. Note that RFC 5322's true limit is in octets; the difference is
// covered by the margin between MaxMaxLineLength and the RFC hard limit.
func lineWidth(s string) int {
	w := 0
	for _, r := range s {
		if r > 0xFFFF {
			w += 2
		} else {
			w++
		}
	}
	return w
}

// commitLine folds the current line at the given index. Everything before it
// is committed to the output, right-trimmed and terminated with a CRLF and
// the continuation indent of the next line. The rest, left-trimmed, becomes
// the new current line. Any recorded split point is consumed.
func (e *Emitter) commitLine(at int) {
	e.output.WriteString(strings.TrimRight(e.current[:at], " \t"))
	e.output.WriteString("\r\n ")

	e.current = strings.TrimLeft(e.current[at:], " \t")
	e.remaining = e.maxLineLength - 1 - lineWidth(e.current)
	e.splitPoint = 0
}

// reserveSpace makes sure there is room on the current line for that many
// more character units, folding the line if there is not. It prefers to fold
// at the recorded split point, which sits at a syntactic boundary such as
// the comma between two mailboxes. Failing that it falls back to the last
// plain space on the line. Returns false when no fold can free enough room,
// in which case the caller must split the token up or give up.
func (e *Emitter) reserveSpace(width int) bool {
	if width <= e.remaining {
		return true
	}

	if e.splitPoint > 0 {
		e.commitLine(e.splitPoint)
		if width <= e.remaining {
			return true
		}
	}

	if at := strings.LastIndexByte(e.current, ' '); at > 0 {
		e.commitLine(at)
	}

	return width <= e.remaining
}

// AddText places text on the current line exactly as given, folding the line
// beforehand if it does not fit. When mayBreakAfter is set, the end of the
// text is recorded as the preferred place for a later fold and, unless the
// text already ends with one, a space is added to mark the boundary.
//
// It fails with ErrLineOverflow when the text cannot be made to fit, in
// which case nothing is placed and the caller may retry with smaller
// tokens.
func (e *Emitter) AddText(text string, mayBreakAfter bool) error {
	width := lineWidth(text)
	if !e.reserveSpace(width) {
		return ErrLineOverflow
	}

	e.current += text
	e.remaining -= width

	if mayBreakAfter {
		e.splitPoint = len(e.current)
		if !strings.HasSuffix(text, " ") {
			e.current += " "
			e.remaining--
		}
	}

	return nil
}

// AddQuotable places text on the current line, wrapping it in a quoted
// string first if it contains any character of specials. Text that already
// starts with a double quote is assumed to be quoted and is passed through
// untouched.
//
// It fails with ErrLineOverflow under the same conditions as AddText.
func (e *Emitter) AddQuotable(text, specials string, mayBreakAfter bool) error {
	return e.AddText(quoteIfNeeded(text, specials), mayBreakAfter)
}

// addLiteral places text that is not splittable and not retryable, such as
// the angle bracket and domain of an address. A failure to place it is
// terminal for the header under construction.
func (e *Emitter) addLiteral(text string, mayBreakAfter bool) error {
	if err := e.AddText(text, mayBreakAfter); err != nil {
		return &UnencodableError{Word: text}
	}
	return nil
}

// String returns the assembled header field body: every committed line plus
// the current line with trailing whitespace removed. Lines are CRLF
// separated and every continuation line begins with a single space. This is
// a pure read; calling it repeatedly yields the same value. After reading
// the result the emitter should be discarded.
func (e *Emitter) String() string {
	return e.output.String() + strings.TrimRight(e.current, " \t")
}
