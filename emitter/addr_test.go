package emitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zostay/go-addr/pkg/addr"

	"github.com/pombredanne/jsmime/emitter"
)

func TestFromAddrList(t *testing.T) {
	t.Parallel()

	al, err := addr.ParseEmailAddressList("John Smith <j@x.com>, solo@y.com")
	require.NoError(t, err)

	list := emitter.FromAddrList(al)
	require.Len(t, list, 2)
	assert.Equal(t, emitter.Mailbox{Name: "John Smith", Email: "j@x.com"}, list[0])
	assert.Equal(t, emitter.Mailbox{Email: "solo@y.com"}, list[1])

	e := emitter.New()
	require.NoError(t, e.AddAddresses(list))
	assert.Equal(t, "John Smith <j@x.com>, solo@y.com", e.String())
}

func TestFromAddrListGroup(t *testing.T) {
	t.Parallel()

	al, err := addr.ParseEmailAddressList("Team: a@x.com, Bob <b@y.com>;")
	require.NoError(t, err)

	list := emitter.FromAddrList(al)
	require.Len(t, list, 1)
	group, ok := list[0].(emitter.Group)
	require.True(t, ok)
	assert.Equal(t, "Team", group.Name)
	require.Len(t, group.Members, 2)

	e := emitter.New()
	require.NoError(t, e.AddAddresses(list))
	assert.Equal(t, "Team: a@x.com, Bob <b@y.com>;", e.String())
}
