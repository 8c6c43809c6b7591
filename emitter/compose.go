package emitter

import (
	"regexp"
	"strings"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// AddPhrase places an RFC 5322 phrase, such as a display name or a list of
// keywords. Runs of whitespace are collapsed to a single space first. When
// encoded words are enabled and the text contains non-ASCII characters, the
// whole phrase is rendered as encoded words. Otherwise the phrase is quoted
// against specials and placed whole if it fits, or split at spaces and
// placed word by word if it does not.
//
// It fails with an UnencodableError naming the offending word when even a
// single word cannot be made to fit.
func (e *Emitter) AddPhrase(text, specials string, mayBreakAfter bool) error {
	text = whitespaceRun.ReplaceAllString(text, " ")

	if e.useEncodedWords && !isASCII(text) {
		return e.encodePhrase(text, mayBreakAfter)
	}

	if err := e.AddQuotable(text, specials, mayBreakAfter); err == nil {
		return nil
	}

	// The whole phrase did not fit. Place it word by word instead, with a
	// permitted break after each word but the last.
	words := strings.Split(text, " ")
	for i, word := range words {
		brk := mayBreakAfter || i < len(words)-1
		if err := e.AddQuotable(word, specials, brk); err != nil {
			return &UnencodableError{Word: word}
		}
	}

	return nil
}

// AddUnstructured places free-form text, such as a Subject body. It behaves
// like AddPhrase with no special characters, so the text is never quoted.
func (e *Emitter) AddUnstructured(text string) error {
	return e.AddPhrase(text, "", false)
}

// AddDate places an RFC 5322 date-time for the given moment, rendered in
// the zone carried by t. Years outside 1900 through 9999 cannot be
// represented and fail with ErrInvalidDate.
func (e *Emitter) AddDate(t time.Time) error {
	if t.Year() < 1900 || t.Year() > 9999 {
		return ErrInvalidDate
	}
	return e.addLiteral(t.Format(time.RFC1123Z), false)
}
