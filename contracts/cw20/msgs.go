// Package cw20 holds the JSON message shapes of the cw20-base token contract.
package cw20

import (
	"encoding/base64"

	"github.com/goccy/go-json"
)

func (r *InstantiateMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *ExecuteMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *QueryMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

type InstantiateMsg struct {
	Name            string                    `json:"name"`
	Symbol          string                    `json:"symbol"`
	Decimals        uint8                     `json:"decimals"`
	InitialBalances []Cw20Coin                `json:"initial_balances"`
	Mint            *MinterResponse           `json:"mint,omitempty"`
	Marketing       *InstantiateMarketingInfo `json:"marketing,omitempty"`
}

type Cw20Coin struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type InstantiateMarketingInfo struct {
	Project     *string `json:"project,omitempty"`
	Description *string `json:"description,omitempty"`
	Marketing   *string `json:"marketing,omitempty"`
}

type ExecuteMsg struct {
	Transfer          *Transfer          `json:"transfer,omitempty"`
	Send              *Send              `json:"send,omitempty"`
	IncreaseAllowance *IncreaseAllowance `json:"increase_allowance,omitempty"`
	DecreaseAllowance *DecreaseAllowance `json:"decrease_allowance,omitempty"`
	Burn              *Burn              `json:"burn,omitempty"`
}

type Transfer struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// Send moves tokens to a contract and invokes its receive hook with Msg, which
// is the base64 encoding of a JSON message understood by that contract.
type Send struct {
	Contract string `json:"contract"`
	Amount   string `json:"amount"`
	Msg      string `json:"msg"`
}

type IncreaseAllowance struct {
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type DecreaseAllowance struct {
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type Burn struct {
	Amount string `json:"amount"`
}

// NewSend encodes hook as JSON, base64s it and wraps it into a send message.
func NewSend(contract, amount string, hook interface{}) (*ExecuteMsg, error) {
	bz, err := json.Marshal(hook)
	if err != nil {
		return nil, err
	}

	return &ExecuteMsg{
		Send: &Send{
			Contract: contract,
			Amount:   amount,
			Msg:      base64.StdEncoding.EncodeToString(bz),
		},
	}, nil
}

type QueryMsg struct {
	TokenInfo     *TokenInfo     `json:"token_info,omitempty"`
	Balance       *Balance       `json:"balance,omitempty"`
	Allowance     *Allowance     `json:"allowance,omitempty"`
	MarketingInfo *MarketingInfo `json:"marketing_info,omitempty"`
	Minter        *Minter        `json:"minter,omitempty"`
}

type TokenInfo struct{}

type Balance struct {
	Address string `json:"address"`
}

type Allowance struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
}

type MarketingInfo struct{}

type Minter struct{}

type TokenInfoResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

type AllowanceResponse struct {
	Allowance string          `json:"allowance"`
	Expires   json.RawMessage `json:"expires"`
}

type MarketingInfoResponse struct {
	Project     *string         `json:"project"`
	Description *string         `json:"description"`
	Marketing   *string         `json:"marketing"`
	Logo        json.RawMessage `json:"logo"`
}

type MinterResponse struct {
	Minter string `json:"minter"`
	// cap is a hard cap on total supply that can be achieved by minting. Note that this refers
	// to total_supply. If None, there is unlimited cap.
	Cap *string `json:"cap,omitempty"`
}
