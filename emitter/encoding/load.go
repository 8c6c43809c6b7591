// Package encoding provides a replacement for emitter.CharsetEncoder backed
// by:
//
// * golang.org/x/text/encoding/ianaindex
//
// Importing this package will make the size of your compiled binaries
// considerably larger. But it will also let the emitter produce encoded
// words and extended parameter values in pretty much any character set,
// rather than UTF-8 only.
package encoding

import (
	"fmt"

	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/pombredanne/jsmime/emitter"
)

func init() {
	emitter.CharsetEncoder = CharsetEncoder
}

// CharsetEncoder converts text into bytes of the named character set, for
// any charset known to the IANA index.
func CharsetEncoder(charset, text string) ([]byte, error) {
	e, err := ianaindex.MIME.Encoding(charset)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", charset)
	}

	es, err := e.NewEncoder().String(text)
	if err != nil {
		return nil, err
	}

	return []byte(es), nil
}
