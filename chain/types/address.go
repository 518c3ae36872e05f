package types

import (
	"strings"

	"github.com/cosmos/btcutil/bech32"
	"github.com/pkg/errors"
)

// bech32 strings used by cosmos chains may be longer than the 90 chars of BIP-173
const maxBech32Length = 1023

// ValidateAddress checks that addr is a bech32 string carrying the given human
// readable prefix. Contract addresses are 32 bytes and accounts 20, both are accepted.
func ValidateAddress(addr, prefix string) error {
	hrp, data, err := bech32.Decode(addr, maxBech32Length)
	if err != nil {
		return errors.Wrapf(err, "decode bech32 address %q", addr)
	}
	if hrp != prefix {
		return errors.Errorf("address %s has prefix %q, expected %q", addr, hrp, prefix)
	}

	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return errors.Wrapf(err, "convert bech32 data of %s", addr)
	}
	if len(raw) != 20 && len(raw) != 32 {
		return errors.Errorf("address %s has unexpected length %d", addr, len(raw))
	}
	return nil
}

// IsAddress reports whether s looks like an address for prefix rather than a denom.
func IsAddress(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix+"1") {
		return false
	}
	return ValidateAddress(s, prefix) == nil
}
