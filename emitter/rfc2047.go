package emitter

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// CharsetEncoder converts text into bytes of the named character set for use
// in encoded words and extended parameter values. The default implementation
// only understands UTF-8. Importing the emitter/encoding package replaces it
// with one backed by golang.org/x/text, which can produce pretty much any
// charset registered with IANA.
var CharsetEncoder func(charset, text string) ([]byte, error) = defaultCharsetEncoder

func defaultCharsetEncoder(charset, text string) ([]byte, error) {
	if !strings.EqualFold(charset, "UTF-8") {
		return nil, fmt.Errorf("no encoding available for charset %q (import the emitter/encoding package)", charset)
	}
	return []byte(text), nil
}

// minPayload is the smallest encoded word payload worth emitting. If the
// current line cannot hold a word with this much payload, we fold first.
const minPayload = 10

// qRequiresEscape reports whether a byte must be rendered as =HH in the Q
// encoding: control characters, non-ASCII bytes, and the characters that
// are significant inside an encoded word or the surrounding grammar.
func qRequiresEscape(b byte) bool {
	if b < 0x20 || b >= 0x7F {
		return true
	}
	return strings.IndexByte("=?_()\"", b) >= 0
}

// qEncode renders payload in the Q encoding: spaces become underscores,
// bytes requiring escape become =HH, everything else is literal.
func qEncode(payload []byte) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(payload))
	for _, b := range payload {
		switch {
		case b == ' ':
			sb.WriteByte('_')
		case qRequiresEscape(b):
			sb.WriteByte('=')
			sb.WriteByte(hex[b>>4])
			sb.WriteByte(hex[b&0xF])
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// addEncodedWord emits one complete encoded word token holding payload,
// using base64 when useBase64 is set and the Q encoding otherwise.
func (e *Emitter) addEncodedWord(payload []byte, useBase64, mayBreakAfter bool) error {
	if len(payload) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("=?")
	sb.WriteString(e.charset)
	if useBase64 {
		sb.WriteString("?B?")
		sb.WriteString(base64.StdEncoding.EncodeToString(payload))
	} else {
		sb.WriteString("?Q?")
		sb.WriteString(qEncode(payload))
	}
	sb.WriteString("?=")

	return e.addLiteral(sb.String(), mayBreakAfter)
}

// encodePhrase renders text as a sequence of RFC 2047 encoded words, each
// fitting the line length, choosing per segment whichever of base64 and Q
// encoding projects shorter. A multi-byte character is never split across
// two words: when a segment fills up mid-character, the boundary backs up
// over the UTF-8 continuation bytes before the word is emitted.
func (e *Emitter) encodePhrase(text string, mayBreakAfter bool) error {
	payload, err := CharsetEncoder(e.charset, text)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}

	// "=?" + charset + "?B?" ... "?=" around the payload
	overhead := len(e.charset) + 5 + 2

	// Make room for at least a minimal token before starting the phrase,
	// folding the whole line if reservation fails. An already empty line
	// gains nothing from a fold and would commit an empty segment.
	if !e.reserveSpace(overhead+minPayload) && e.current != "" {
		e.commitLine(len(e.current))
	}

	// Capacity of a fresh continuation line, with a floor so that a single
	// escaped byte always fits no matter how long the charset name is.
	full := e.maxLineLength - 1 - overhead
	if full < minPayload {
		full = minPayload
	}

	capacity := e.remaining - overhead
	b64Len, qLen, start := 0, 0, 0
	for i := 0; i < len(payload); i++ {
		b64Inc := 0
		if (i-start)%3 == 0 {
			b64Inc = 4
		}
		qInc := 1
		if qRequiresEscape(payload[i]) {
			qInc = 3
		}

		if b64Len+b64Inc > capacity && qLen+qInc > capacity {
			// This byte does not fit in either encoding. Back up onto a
			// character boundary, flush the segment, and reprocess the
			// byte for the next word.
			for i > start && payload[i]&0xC0 == 0x80 {
				i--
			}
			if i > start {
				if err := e.addEncodedWord(payload[start:i], b64Len <= qLen, true); err != nil {
					return err
				}
				start = i
				b64Len, qLen = 0, 0
			}
			capacity = full
			i--
			continue
		}

		b64Len += b64Inc
		qLen += qInc
	}

	return e.addEncodedWord(payload[start:], b64Len <= qLen, mayBreakAfter)
}
