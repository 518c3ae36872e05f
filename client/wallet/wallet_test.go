package wallet

import (
	"encoding/hex"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	chainclient "github.com/QuVaultLabs/deployer-go/client/chain"
)

func newMnemonic(t *testing.T) (string, sdk.AccAddress) {
	kr := keyring.NewInMemory(chainclient.GetCryptoCodec())
	hdPath := hd.CreateHDPath(chaintypes.CosmosCoinType, 0, 0).String()
	record, mnemonic, err := kr.NewMnemonic("fixture", keyring.English, hdPath, "", hd.Secp256k1)
	require.NoError(t, err)
	addr, err := record.GetAddress()
	require.NoError(t, err)
	return mnemonic, addr
}

func TestNewWithoutCredentials(t *testing.T) {
	_, err := New(Credentials{}, "mantra")
	assert.ErrorIs(t, err, chaintypes.ErrConfig)

	_, err = New(Credentials{Mnemonic: "  ", PrivateKey: "\n"}, "mantra")
	assert.ErrorIs(t, err, chaintypes.ErrConfig)
}

func TestNewFromPrivateKey(t *testing.T) {
	privKey := secp256k1.GenPrivKey()
	expected, err := sdk.Bech32ifyAddressBytes("mantra", privKey.PubKey().Address())
	require.NoError(t, err)

	w, err := New(Credentials{PrivateKey: hex.EncodeToString(privKey.Bytes())}, "mantra")
	require.NoError(t, err)
	assert.Equal(t, SourcePrivateKey, w.Source)
	assert.Equal(t, expected, w.Address())

	w, err = New(Credentials{PrivateKey: "0x" + hex.EncodeToString(privKey.Bytes())}, "mantra")
	require.NoError(t, err)
	assert.Equal(t, expected, w.Address())
}

func TestNewFromMnemonicIsDeterministic(t *testing.T) {
	mnemonic, addr := newMnemonic(t)

	first, err := New(Credentials{Mnemonic: mnemonic}, "mantra")
	require.NoError(t, err)
	second, err := New(Credentials{Mnemonic: mnemonic}, "mantra")
	require.NoError(t, err)

	assert.Equal(t, SourceMnemonic, first.Source)
	assert.Equal(t, addr, first.AccAddress())
	assert.Equal(t, first.Address(), second.Address())
}

func TestPrivateKeyWinsOverMnemonic(t *testing.T) {
	mnemonic, mnemonicAddr := newMnemonic(t)
	privKey := secp256k1.GenPrivKey()

	w, err := New(Credentials{
		Mnemonic:   mnemonic,
		PrivateKey: hex.EncodeToString(privKey.Bytes()),
	}, "mantra")
	require.NoError(t, err)

	assert.Equal(t, SourcePrivateKey, w.Source)
	assert.Equal(t, sdk.AccAddress(privKey.PubKey().Address()), w.AccAddress())
	assert.NotEqual(t, mnemonicAddr, w.AccAddress())
}

func TestNewRejectsBadKeyMaterial(t *testing.T) {
	_, err := New(Credentials{PrivateKey: "abcd"}, "mantra")
	assert.ErrorIs(t, err, chaintypes.ErrConfig)

	_, err = New(Credentials{Mnemonic: "not a real mnemonic"}, "mantra")
	assert.ErrorIs(t, err, chaintypes.ErrConfig)
}
