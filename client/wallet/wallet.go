// Package wallet derives the single signing identity used by the deployer.
package wallet

import (
	"encoding/hex"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	chainclient "github.com/QuVaultLabs/deployer-go/client/chain"
)

// DefaultKeyName is the keyring uid the wallet key is stored under.
const DefaultKeyName = "deployer"

type Source string

const (
	SourceMnemonic   Source = "mnemonic"
	SourcePrivateKey Source = "private_key"
)

// Credentials carries the key material for one wallet. When both fields are set
// the private key is used.
type Credentials struct {
	Mnemonic   string
	PrivateKey string
}

func (c Credentials) IsEmpty() bool {
	return strings.TrimSpace(c.Mnemonic) == "" && strings.TrimSpace(c.PrivateKey) == ""
}

type Wallet struct {
	Keyring keyring.Keyring
	KeyName string
	Prefix  string
	Source  Source

	address sdk.AccAddress
}

// New derives a wallet from creds inside a fresh in-memory keyring.
func New(creds Credentials, prefix string) (*Wallet, error) {
	if creds.IsEmpty() {
		return nil, errorsmod.Wrap(chaintypes.ErrConfig, "please provide either mnemonic or private key")
	}

	kr := keyring.NewInMemory(chainclient.GetCryptoCodec())
	w := &Wallet{
		Keyring: kr,
		KeyName: DefaultKeyName,
		Prefix:  prefix,
	}

	var (
		record *keyring.Record
		err    error
	)
	if pk := strings.TrimSpace(creds.PrivateKey); pk != "" {
		keyHex, err := normalizePrivateKey(pk)
		if err != nil {
			return nil, err
		}
		if err := kr.ImportPrivKeyHex(w.KeyName, keyHex, string(hd.Secp256k1Type)); err != nil {
			return nil, errors.Wrap(err, "failed to import private key")
		}
		record, err = kr.Key(w.KeyName)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load imported key")
		}
		w.Source = SourcePrivateKey
	} else {
		hdPath := hd.CreateHDPath(chaintypes.CosmosCoinType, 0, 0).String()
		record, err = kr.NewAccount(w.KeyName, strings.TrimSpace(creds.Mnemonic), "", hdPath, hd.Secp256k1)
		if err != nil {
			return nil, errorsmod.Wrapf(chaintypes.ErrConfig, "invalid mnemonic: %s", err)
		}
		w.Source = SourceMnemonic
	}

	w.address, err = record.GetAddress()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get key address")
	}

	return w, nil
}

// AccAddress returns the raw account address.
func (w *Wallet) AccAddress() sdk.AccAddress {
	return w.address
}

// Address returns the bech32 account address under the wallet prefix, independent
// of the process-wide sdk config.
func (w *Wallet) Address() string {
	addr, err := sdk.Bech32ifyAddressBytes(w.Prefix, w.address)
	if err != nil {
		panic(err)
	}
	return addr
}

func normalizePrivateKey(pk string) (string, error) {
	raw := ethcommon.FromHex(pk)
	if len(raw) != secp256k1.PrivKeySize {
		return "", errorsmod.Wrapf(chaintypes.ErrConfig, "private key must be %d hex-encoded bytes, got %d", secp256k1.PrivKeySize, len(raw))
	}
	return hex.EncodeToString(raw), nil
}
