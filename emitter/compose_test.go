package emitter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/jsmime/emitter"
)

func TestAddAddress(t *testing.T) {
	t.Parallel()

	t.Run("plain name", func(t *testing.T) {
		e := emitter.New()
		require.NoError(t, e.AddAddress(emitter.Mailbox{Name: "John Doe", Email: "john@example.com"}))
		assert.Equal(t, "John Doe <john@example.com>", e.String())
	})

	t.Run("name forcing quotes", func(t *testing.T) {
		e := emitter.New()
		require.NoError(t, e.AddAddress(emitter.Mailbox{Name: "Doe, John", Email: "john@example.com"}))
		assert.Equal(t, `"Doe, John" <john@example.com>`, e.String())
	})

	t.Run("bare address", func(t *testing.T) {
		e := emitter.New()
		require.NoError(t, e.AddAddress(emitter.Mailbox{Email: "john@example.com"}))
		assert.Equal(t, "john@example.com", e.String())
	})

	t.Run("quoted local part", func(t *testing.T) {
		e := emitter.New()
		require.NoError(t, e.AddAddress(emitter.Mailbox{Email: "john doe@example.com"}))
		assert.Equal(t, `"john doe"@example.com`, e.String())
	})

	t.Run("split at last at-sign", func(t *testing.T) {
		e := emitter.New()
		require.NoError(t, e.AddAddress(emitter.Mailbox{Email: "john@odd@example.com"}))
		assert.Equal(t, `"john@odd"@example.com`, e.String())
	})
}

func TestAddAddressesSkipsEmpty(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	err := e.AddAddresses([]emitter.Address{
		emitter.Mailbox{},
		emitter.Mailbox{Name: "A", Email: "a@x.com"},
	})
	require.NoError(t, err)

	// no separator for the skipped entry, no leading comma
	assert.Equal(t, "A <a@x.com>", e.String())
}

func TestAddAddressesSeparators(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	err := e.AddAddresses([]emitter.Address{
		emitter.Mailbox{Email: "a@x.com"},
		emitter.Mailbox{},
		nil,
		emitter.Mailbox{Email: "b@y.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com, b@y.com", e.String())
}

func TestAddAddressesFoldsBetweenMailboxes(t *testing.T) {
	t.Parallel()

	e := emitter.New(emitter.WithMaxLineLength(30))
	err := e.AddAddresses([]emitter.Address{
		emitter.Mailbox{Email: "aaaa@bb.com"},
		emitter.Mailbox{Email: "cccc@dd.com"},
		emitter.Mailbox{Email: "eeee@ff.com"},
	})
	require.NoError(t, err)

	assertEmitted(t, "aaaa@bb.com, cccc@dd.com,\r\n eeee@ff.com", e.String())
	assertLineWidths(t, e.String(), 30)
}

func TestAddAddressesGroup(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	err := e.AddAddresses([]emitter.Address{
		emitter.Mailbox{Email: "c@z.com"},
		emitter.Group{Name: "Team", Members: []emitter.Address{
			emitter.Mailbox{Email: "a@x.com"},
			emitter.Mailbox{Name: "Bob", Email: "b@y.com"},
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "c@z.com, Team: a@x.com, Bob <b@y.com>;", e.String())
}

func TestAddAddressesNestedGroup(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	err := e.AddAddresses([]emitter.Address{
		emitter.Group{Name: "Outer", Members: []emitter.Address{
			emitter.Group{Name: "Inner", Members: []emitter.Address{
				emitter.Mailbox{Email: "a@x.com"},
			}},
		}},
	})
	require.NoError(t, err)

	out := e.String()
	assert.Contains(t, out, "Outer: ")
	assert.Contains(t, out, "Inner: a@x.com;")
	assert.True(t, strings.HasSuffix(out, ";"))
}

func TestAddAddressesNestingBound(t *testing.T) {
	t.Parallel()

	inner := []emitter.Address{emitter.Mailbox{Email: "a@x.com"}}
	for i := 0; i < 70; i++ {
		inner = []emitter.Address{emitter.Group{Name: "g", Members: inner}}
	}

	e := emitter.New(emitter.WithMaxLineLength(900))
	err := e.AddAddresses(inner)
	assert.ErrorIs(t, err, emitter.ErrGroupNesting)
}

func TestUnencodableAddress(t *testing.T) {
	t.Parallel()

	email := strings.Repeat("x", 40) + "@example.com"

	e := emitter.New(emitter.WithMaxLineLength(30))
	err := e.AddAddress(emitter.Mailbox{Email: email})
	assert.ErrorIs(t, err, emitter.ErrUnencodable)

	var uerr *emitter.UnencodableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, email, uerr.Word)
}

func TestUnencodableWord(t *testing.T) {
	t.Parallel()

	word := strings.Repeat("z", 40)

	e := emitter.New(emitter.WithMaxLineLength(30))
	err := e.AddUnstructured("fits " + word)
	assert.ErrorIs(t, err, emitter.ErrUnencodable)

	var uerr *emitter.UnencodableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, word, uerr.Word)
}

func TestPhraseCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	require.NoError(t, e.AddUnstructured("too  many\t\twords\n here"))
	assert.Equal(t, "too many words here", e.String())
}

func TestAddDate(t *testing.T) {
	t.Parallel()

	when := time.Date(1997, time.November, 21, 9, 55, 6, 0, time.FixedZone("CST", -6*60*60))

	e := emitter.New()
	require.NoError(t, e.AddDate(when))
	assert.Equal(t, "Fri, 21 Nov 1997 09:55:06 -0600", e.String())
}

func TestAddDateOutOfRange(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	err := e.AddDate(time.Date(1812, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, emitter.ErrInvalidDate)
	assert.Equal(t, "", e.String())
}
