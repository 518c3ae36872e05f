package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultAddressPrefix is the bech32 account prefix of the chains we deploy to.
	DefaultAddressPrefix = "mantra"

	// CosmosCoinType is the BIP-44 coin type used for HD derivation.
	CosmosCoinType = 118
)

// SetBech32Prefixes points the process-wide sdk config at the given account prefix.
// Message validation parses sender addresses against this config, so it must run
// before any message is built.
func SetBech32Prefixes(config *sdk.Config, prefix string) {
	config.SetBech32PrefixForAccount(prefix, prefix+sdk.PrefixPublic)
	config.SetBech32PrefixForValidator(prefix+sdk.PrefixValidator+sdk.PrefixOperator, prefix+sdk.PrefixValidator+sdk.PrefixOperator+sdk.PrefixPublic)
	config.SetBech32PrefixForConsensusNode(prefix+sdk.PrefixValidator+sdk.PrefixConsensus, prefix+sdk.PrefixValidator+sdk.PrefixConsensus+sdk.PrefixPublic)
}

func SetBip44CoinType(config *sdk.Config) {
	config.SetCoinType(CosmosCoinType)
}
