// Package emitter assembles structured header values into folded,
// length-constrained, encoding-safe wire format text per RFC 5322, with
// RFC 2047 encoded words and RFC 2231 extended parameters as needed.
//
// Create one Emitter per header field body, call the Add* operations that
// match the grammar of the field, then read the result once with String():
//
//	e := emitter.New(emitter.WithEncodedWords())
//	err := e.AddAddresses([]emitter.Address{
//		emitter.Mailbox{Name: "John Doe", Email: "john@example.com"},
//	})
//	if err != nil {
//		// the header cannot be emitted within the line length
//	}
//	fmt.Print("To: " + e.String() + "\r\n")
//
// The emitter tracks the remaining room on the current line and the best
// place to fold, and inserts folding whitespace (CRLF plus a single space)
// so that no emitted line exceeds the configured length. It never splits an
// encoded word or a multi-byte UTF-8 character across a fold.
//
// This package emits headers; it does not parse them. Structured values are
// supplied by the caller, or converted from github.com/zostay/go-addr parse
// results with FromAddrList.
package emitter
