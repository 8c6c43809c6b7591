package emitter_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pombredanne/jsmime/emitter"
)

func TestAddParameterPlain(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	require.NoError(t, e.AddText("multipart/mixed", false))
	require.NoError(t, e.AddParameter("boundary", "abc123"))
	assert.Equal(t, "multipart/mixed; boundary=abc123", e.String())
}

func TestAddParameterQuoted(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	require.NoError(t, e.AddText("text/plain", false))
	require.NoError(t, e.AddParameter("name", "two words.txt"))
	assert.Equal(t, `text/plain; name="two words.txt"`, e.String())
}

func TestAddParameterExtended(t *testing.T) {
	t.Parallel()

	e := emitter.New()
	require.NoError(t, e.AddText("text/plain", false))
	require.NoError(t, e.AddParameter("title", "café"))
	assert.Equal(t, "text/plain; title*=UTF-8''caf%C3%A9", e.String())
}

var paramSection = regexp.MustCompile(`^t\*\d+\*=(UTF-8'')?(%[0-9A-F]{2}|[0-9A-Za-z.!#$&+\-^_|~])*;?$`)

func TestAddParameterContinuations(t *testing.T) {
	t.Parallel()

	e := emitter.New(emitter.WithMaxLineLength(30))
	require.NoError(t, e.AddParameter("t", strings.Repeat("é", 15)))

	out := e.String()
	assertLineWidths(t, out, 30)

	// every escape and every character survives intact, in order
	assert.Equal(t, 15, strings.Count(out, "%C3%A9"))
	assert.Contains(t, out, "t*0*=UTF-8''")

	// each section is complete on its own line
	lines := strings.Split(out, "\r\n")
	require.Greater(t, len(lines), 2)
	for i, line := range lines {
		line = strings.TrimPrefix(line, " ")
		if i == 0 {
			line = strings.TrimPrefix(line, "; ")
		}
		assert.Regexp(t, paramSection, line, "line %d", i)
	}
}
