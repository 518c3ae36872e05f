// Package terraswap holds the JSON message shapes of the terraswap factory,
// pair and router contracts.
package terraswap

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
)

// AssetInfo references either a native denom or a cw20 contract. Exactly one
// of the two fields is set.
type AssetInfo struct {
	Token       *TokenInfo       `json:"token,omitempty"`
	NativeToken *NativeTokenInfo `json:"native_token,omitempty"`
}

type TokenInfo struct {
	ContractAddr string `json:"contract_addr"`
}

type NativeTokenInfo struct {
	Denom string `json:"denom"`
}

func NativeAssetInfo(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeTokenInfo{Denom: denom}}
}

func TokenAssetInfo(contractAddr string) AssetInfo {
	return AssetInfo{Token: &TokenInfo{ContractAddr: contractAddr}}
}

func (a AssetInfo) IsNative() bool {
	return a.NativeToken != nil
}

// Key returns the denom or the contract address.
func (a AssetInfo) Key() string {
	switch {
	case a.NativeToken != nil:
		return a.NativeToken.Denom
	case a.Token != nil:
		return a.Token.ContractAddr
	default:
		return ""
	}
}

func (a AssetInfo) String() string {
	if a.IsNative() {
		return "native:" + a.Key()
	}
	return "token:" + a.Key()
}

// Validate checks the union has one arm set and that a token arm carries an
// address with the given bech32 prefix.
func (a AssetInfo) Validate(prefix string) error {
	switch {
	case a.NativeToken != nil && a.Token != nil:
		return errors.Wrap(chaintypes.ErrConfig, "asset info has both native and token set")
	case a.NativeToken != nil:
		if a.NativeToken.Denom == "" {
			return errors.Wrap(chaintypes.ErrConfig, "empty native denom")
		}
		return nil
	case a.Token != nil:
		return chaintypes.ValidateAddress(a.Token.ContractAddr, prefix)
	default:
		return errors.Wrap(chaintypes.ErrConfig, "asset info has no variant set")
	}
}

type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount string    `json:"amount"`
}

func NativeAsset(denom, amount string) Asset {
	return Asset{Info: NativeAssetInfo(denom), Amount: amount}
}

func TokenAsset(contractAddr, amount string) Asset {
	return Asset{Info: TokenAssetInfo(contractAddr), Amount: amount}
}

// Int parses the amount as an unsigned integer.
func (a Asset) Int() (math.Int, error) {
	return ParseAmount(a.Amount)
}

// ParseAmount parses a decimal string integer amount. Negative values and
// fractional values are rejected.
func ParseAmount(amount string) (math.Int, error) {
	v, ok := math.NewIntFromString(amount)
	if !ok {
		return math.Int{}, errors.Wrapf(chaintypes.ErrInvalidAmount, "not an integer: %q", amount)
	}
	if v.IsNegative() {
		return math.Int{}, errors.Wrapf(chaintypes.ErrInvalidAmount, "negative amount: %s", amount)
	}
	return v, nil
}

func (a Asset) String() string {
	return fmt.Sprintf("%s %s", a.Amount, a.Info)
}
