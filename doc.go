// Package jsmime renders structured Internet message header values into
// wire format. It began life as a port of the header emitter from a
// JavaScript MIME library, reworked into what I hope is a very go-ish
// shape: explicit option clamping instead of silent defaults, a closed sum
// type for mailboxes and groups instead of duck typing, and errors instead
// of exceptions for text that cannot be encoded within the line length.
//
// The work happens in the emitter package. A caller that has already built
// a structured value - an address list, a display-name phrase, a free-text
// subject - hands it to an emitter.Emitter, which produces correctly
// folded, length-constrained header bytes: RFC 5322 folding whitespace at
// syntactically sensible boundaries, RFC 2047 encoded words for non-ASCII
// phrases, and RFC 2231 extended syntax for non-ASCII or over-long MIME
// parameters.
//
// Parsing existing headers is deliberately out of scope. If you need to
// re-emit addresses from incoming mail, parse them with
// github.com/zostay/go-addr and convert the result with
// emitter.FromAddrList.
//
// The emitter/encoding package can be imported for its side effect of
// enabling character sets other than UTF-8 in encoded words, at some cost
// in binary size.
package jsmime
