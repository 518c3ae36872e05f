package terraswap

import (
	"encoding/base64"

	"github.com/goccy/go-json"
)

func (r *PairExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *PairQueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Cw20HookMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// Base64 returns the hook message in the form expected by cw20 send and by
// the pair receive entrypoint.
func (r *Cw20HookMsg) Base64() (string, error) {
	bz, err := r.Marshal()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bz), nil
}

type PairInstantiateMsg struct {
	AssetInfos    [2]AssetInfo `json:"asset_infos"`
	TokenCodeID   uint64       `json:"token_code_id"`
	AssetDecimals [2]uint8     `json:"asset_decimals"`
}

type PairExecuteMsg struct {
	ProvideLiquidity *ProvideLiquidity `json:"provide_liquidity,omitempty"`
	Swap             *Swap             `json:"swap,omitempty"`
	Receive          *Receive          `json:"receive,omitempty"`
}

type ProvideLiquidity struct {
	Assets            [2]Asset `json:"assets"`
	SlippageTolerance *string  `json:"slippage_tolerance,omitempty"`
	Receiver          *string  `json:"receiver,omitempty"`
	Deadline          *uint64  `json:"deadline,omitempty"`
}

type Swap struct {
	OfferAsset  Asset   `json:"offer_asset"`
	BeliefPrice *string `json:"belief_price,omitempty"`
	MaxSpread   *string `json:"max_spread,omitempty"`
	To          *string `json:"to,omitempty"`
	Deadline    *uint64 `json:"deadline,omitempty"`
}

type Receive struct {
	Sender string `json:"sender"`
	Amount string `json:"amount"`
	Msg    string `json:"msg"`
}

// Cw20HookMsg is carried base64-encoded inside cw20 send and pair receive.
type Cw20HookMsg struct {
	Swap              *HookSwap          `json:"swap,omitempty"`
	WithdrawLiquidity *WithdrawLiquidity `json:"withdraw_liquidity,omitempty"`
}

type HookSwap struct {
	OfferAsset  *Asset  `json:"offer_asset,omitempty"`
	BeliefPrice *string `json:"belief_price,omitempty"`
	MaxSpread   *string `json:"max_spread,omitempty"`
	To          *string `json:"to,omitempty"`
	Deadline    *uint64 `json:"deadline,omitempty"`
}

type WithdrawLiquidity struct{}

func NewSwapHook(offer Asset) *Cw20HookMsg {
	return &Cw20HookMsg{Swap: &HookSwap{OfferAsset: &offer}}
}

func NewWithdrawHook() *Cw20HookMsg {
	return &Cw20HookMsg{WithdrawLiquidity: &WithdrawLiquidity{}}
}

type PairQueryMsg struct {
	Pair              *PairQuery         `json:"pair,omitempty"`
	Pool              *PoolQuery         `json:"pool,omitempty"`
	Simulation        *SimulationQuery   `json:"simulation,omitempty"`
	ReverseSimulation *ReverseSimulation `json:"reverse_simulation,omitempty"`
}

type PairQuery struct{}

type PoolQuery struct{}

type SimulationQuery struct {
	OfferAsset Asset `json:"offer_asset"`
}

type ReverseSimulation struct {
	AskAsset Asset `json:"ask_asset"`
}

type PairInfo struct {
	AssetInfos     [2]AssetInfo `json:"asset_infos"`
	ContractAddr   string       `json:"contract_addr"`
	LiquidityToken string       `json:"liquidity_token"`
	AssetDecimals  [2]uint8     `json:"asset_decimals"`
}

type PoolResponse struct {
	Assets     [2]Asset `json:"assets"`
	TotalShare string   `json:"total_share"`
}

// Find returns the pool reserve of the given asset.
func (p *PoolResponse) Find(info AssetInfo) (Asset, bool) {
	for _, asset := range p.Assets {
		if asset.Info.IsNative() == info.IsNative() && asset.Info.Key() == info.Key() {
			return asset, true
		}
	}
	return Asset{}, false
}

type SimulationResponse struct {
	ReturnAmount     string `json:"return_amount"`
	SpreadAmount     string `json:"spread_amount"`
	CommissionAmount string `json:"commission_amount"`
}

type ReverseSimulationResponse struct {
	OfferAmount      string `json:"offer_amount"`
	SpreadAmount     string `json:"spread_amount"`
	CommissionAmount string `json:"commission_amount"`
}
