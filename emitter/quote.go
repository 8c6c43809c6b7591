package emitter

import (
	"strings"
)

// Special character sets for the quotable productions of RFC 5322. Each call
// site supplies the set that applies to its grammar position.
const (
	// displayNameSpecials are the characters that force quoting of a
	// display name or group name phrase.
	displayNameSpecials = `,()<>:;."`

	// localPartSpecials are the characters that force quoting of the
	// local-part of an address, including the space.
	localPartSpecials = `()<>[]:;@\," `

	// paramSpecials are the tspecials of RFC 2045 plus the space, which
	// force quoting of a MIME parameter value.
	paramSpecials = `()<>@,;:\"/[]?= `
)

// quoteIfNeeded wraps text in a quoted string when it contains any character
// of specials, escaping embedded backslashes and double quotes. Text that
// already starts with a double quote is assumed to be quoted and is returned
// unchanged, so quoting is idempotent.
func quoteIfNeeded(text, specials string) string {
	if strings.HasPrefix(text, `"`) {
		return text
	}
	if !strings.ContainsAny(text, specials) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(text); i++ {
		if text[i] == '"' || text[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(text[i])
	}
	sb.WriteByte('"')
	return sb.String()
}
