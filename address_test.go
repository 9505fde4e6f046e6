package multisig

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"
)

func newContext() Context {
	return context.Background()
}

func TestNewAddress(t *testing.T) {
	a := NewAddress([]byte("some participant identity"))
	assert.NoError(t, a.Validate())
	assert.Equal(t, AddressLength, len(a))

	// Derivation is deterministic.
	b := NewAddress([]byte("some participant identity"))
	assert.True(t, a.Equals(b))

	assert.Nil(t, NewAddress(nil))
}

func TestNewAddressFromPubKey(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	a := NewAddressFromPubKey(pub)
	assert.NoError(t, a.Validate())

	other, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	assert.False(t, a.Equals(NewAddressFromPubKey(other)))
}

func TestAddressValidate(t *testing.T) {
	assert.Error(t, Address(nil).Validate())
	assert.Error(t, Address("too short").Validate())
	assert.NoError(t, NewAddress([]byte{1}).Validate())
}

func TestAddressBech32RoundTrip(t *testing.T) {
	a := NewAddress([]byte("board member one"))
	enc, err := a.Bech32("msig")
	require.NoError(t, err)

	got, err := ParseBech32(enc)
	require.NoError(t, err)
	assert.True(t, a.Equals(got))
}

func TestAddressJSON(t *testing.T) {
	a := NewAddress([]byte("proposer"))

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var hexed Address
	require.NoError(t, json.Unmarshal(raw, &hexed))
	assert.True(t, a.Equals(hexed))

	enc, err := a.Bech32("msig")
	require.NoError(t, err)
	var becher Address
	require.NoError(t, json.Unmarshal([]byte(`"bech32:`+enc+`"`), &becher))
	assert.True(t, a.Equals(becher))

	var empty Address
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.Nil(t, empty)
}

func TestContextHeight(t *testing.T) {
	ctx := WithHeight(newContext(), 1234)

	height, ok := GetHeight(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(1234), height)

	assert.Panics(t, func() { WithHeight(ctx, 5678) })

	_, err := MustHeight(newContext())
	assert.Error(t, err)
}
