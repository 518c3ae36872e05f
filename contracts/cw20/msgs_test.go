package cw20

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMsgs(t *testing.T) {
	cases := map[string]QueryMsg{
		`{"token_info":{}}`:                         {TokenInfo: &TokenInfo{}},
		`{"balance":{"address":"mantra1owner"}}`:    {Balance: &Balance{Address: "mantra1owner"}},
		`{"marketing_info":{}}`:                     {MarketingInfo: &MarketingInfo{}},
		`{"allowance":{"owner":"o","spender":"s"}}`: {Allowance: &Allowance{Owner: "o", Spender: "s"}},
		`{"minter":{}}`:                             {Minter: &Minter{}},
	}

	for expected, msg := range cases {
		bz, err := msg.Marshal()
		require.NoError(t, err)
		assert.Equal(t, expected, string(bz))
	}
}

func TestInstantiateMsg(t *testing.T) {
	msg := InstantiateMsg{
		Name:     "ABCX Alphabet",
		Symbol:   "ABCX",
		Decimals: 6,
		InitialBalances: []Cw20Coin{
			{Address: "mantra1holder", Amount: "100000000000"},
		},
	}

	bz, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"name":"ABCX Alphabet","symbol":"ABCX","decimals":6,"initial_balances":[{"address":"mantra1holder","amount":"100000000000"}]}`, string(bz))
}

func TestNewSend(t *testing.T) {
	msg, err := NewSend("mantra1pair", "1000", map[string]interface{}{"withdraw_liquidity": struct{}{}})
	require.NoError(t, err)

	bz, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"send":{"contract":"mantra1pair","amount":"1000","msg":"eyJ3aXRoZHJhd19saXF1aWRpdHkiOnt9fQ=="}}`, string(bz))

	hook, err := base64.StdEncoding.DecodeString(msg.Send.Msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"withdraw_liquidity":{}}`, string(hook))
}
