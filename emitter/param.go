package emitter

import (
	"strconv"
	"strings"
)

// isAttributeChar reports whether a byte may appear literally in an RFC 2231
// extended parameter value: any printable ASCII character except the
// tspecials, space, "*", "'", and "%".
func isAttributeChar(b byte) bool {
	if b <= 0x20 || b >= 0x7F {
		return false
	}
	return strings.IndexByte(`*'%()<>@,;:\"/[]?=`, b) < 0
}

// percentUnits splits raw into indivisible percent-encoded units, one per
// character. A unit is either a single literal attribute byte or the full
// %HH escape run for one character, so a section boundary placed between
// units can never split an escape or a multi-byte character.
func percentUnits(raw []byte) []string {
	const hex = "0123456789ABCDEF"

	units := make([]string, 0, len(raw))
	for i := 0; i < len(raw); {
		if isAttributeChar(raw[i]) {
			units = append(units, string(raw[i]))
			i++
			continue
		}

		// encode this byte plus any UTF-8 continuation bytes as one unit
		j := i + 1
		for j < len(raw) && raw[j]&0xC0 == 0x80 {
			j++
		}
		var sb strings.Builder
		for ; i < j; i++ {
			sb.WriteByte('%')
			sb.WriteByte(hex[raw[i]>>4])
			sb.WriteByte(hex[raw[i]&0xF])
		}
		units = append(units, sb.String())
	}
	return units
}

// sectionOverhead is the width of everything but the value in one extended
// parameter section: the name, the "*N" section marker, and "*=".
func sectionOverhead(name string, section int) int {
	return len(name) + 3 + len(strconv.Itoa(section))
}

// AddParameter places one MIME parameter, preceded by a breakable ";"
// separator, as used in Content-Type and Content-Disposition bodies. Plain
// ASCII values that fit on a line are emitted as name=value with quoting as
// needed. Values containing non-ASCII or control characters, and values too
// long for a single line, use the RFC 2231 extended syntax with the value
// charset-tagged, percent-encoded, and split into numbered sections sized
// to the line length.
func (e *Emitter) AddParameter(name, value string) error {
	plain := name + "=" + quoteIfNeeded(value, paramSpecials)
	if isASCII(value) && !containsControl(value) && lineWidth(plain) <= e.maxLineLength-1 {
		if err := e.addLiteral(";", true); err != nil {
			return err
		}
		return e.addLiteral(plain, false)
	}
	return e.addExtendedParameter(name, value)
}

func containsControl(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return true
		}
	}
	return false
}

func (e *Emitter) addExtendedParameter(name, value string) error {
	raw, err := CharsetEncoder(e.charset, value)
	if err != nil {
		return err
	}

	// Greedily pack encoded units into sections, each sized to fit on a
	// continuation line of its own. The first section also carries the
	// charset tag.
	var sections []string
	cur := e.charset + "''"
	for _, unit := range percentUnits(raw) {
		// leave room for the indent before and the separator after
		limit := e.maxLineLength - 2 - sectionOverhead(name, len(sections))
		if len(cur)+len(unit) > limit && cur != "" {
			sections = append(sections, cur)
			cur = ""
		}
		cur += unit
	}
	sections = append(sections, cur)

	if len(sections) == 1 {
		if err := e.addLiteral(";", true); err != nil {
			return err
		}
		return e.addLiteral(name+"*="+sections[0], false)
	}

	for i, s := range sections {
		if err := e.addLiteral(";", true); err != nil {
			return err
		}
		if err := e.addLiteral(name+"*"+strconv.Itoa(i)+"*="+s, false); err != nil {
			return err
		}
	}
	return nil
}
