package terraswap

import "github.com/goccy/go-json"

func (r *FactoryExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *FactoryQueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

type FactoryInstantiateMsg struct {
	PairCodeID  uint64 `json:"pair_code_id"`
	TokenCodeID uint64 `json:"token_code_id"`
}

type FactoryExecuteMsg struct {
	CreatePair             *CreatePair             `json:"create_pair,omitempty"`
	AddNativeTokenDecimals *AddNativeTokenDecimals `json:"add_native_token_decimals,omitempty"`
}

type CreatePair struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

// AddNativeTokenDecimals registers a native denom with the factory. The
// factory must hold a balance of the denom for the call to succeed.
type AddNativeTokenDecimals struct {
	Denom    string `json:"denom"`
	Decimals uint8  `json:"decimals"`
}

type FactoryQueryMsg struct {
	Config *FactoryConfigQuery `json:"config,omitempty"`
	Pair   *FactoryPairQuery   `json:"pair,omitempty"`
	Pairs  *FactoryPairsQuery  `json:"pairs,omitempty"`
}

type FactoryConfigQuery struct{}

type FactoryPairQuery struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

type FactoryPairsQuery struct {
	StartAfter *[2]AssetInfo `json:"start_after,omitempty"`
	Limit      *uint32       `json:"limit,omitempty"`
}

type FactoryConfigResponse struct {
	Owner       string `json:"owner"`
	PairCodeID  uint64 `json:"pair_code_id"`
	TokenCodeID uint64 `json:"token_code_id"`
}

type PairsResponse struct {
	Pairs []PairInfo `json:"pairs"`
}
