package scenarios

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
	"github.com/QuVaultLabs/deployer-go/contracts/cw20"
	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
)

const (
	sender = "mantra1sender"
	pair   = "mantra1pair"
	token  = "mantra1token"
)

type query struct {
	Contract string
	Msg      string
}

type execution struct {
	Contract string
	Msg      string
	Funds    sdk.Coins
}

// fakeChain answers smart queries from replies keyed by the top-level query
// name, and records every query and execution.
type fakeChain struct {
	replies    map[string][]string
	queries    []query
	executions []execution
	native     []sdk.Coin
	contracts  map[string]*wasmtypes.ContractInfo
}

func newFakeChain() *fakeChain {
	return &fakeChain{replies: map[string][]string{}}
}

func (f *fakeChain) reply(name string, replies ...string) {
	f.replies[name] = append(f.replies[name], replies...)
}

func (f *fakeChain) Sender() string {
	return sender
}

func (f *fakeChain) QuerySmart(_ context.Context, contract string, q, out interface{}) error {
	bz, err := json.Marshal(q)
	if err != nil {
		return err
	}
	f.queries = append(f.queries, query{Contract: contract, Msg: string(bz)})

	var top map[string]json.RawMessage
	if err := json.Unmarshal(bz, &top); err != nil {
		return err
	}
	for name := range top {
		replies := f.replies[name]
		if len(replies) == 0 {
			return chaintypes.ErrQuery
		}
		reply := replies[0]
		if len(replies) > 1 {
			f.replies[name] = replies[1:]
		}
		return json.Unmarshal([]byte(reply), out)
	}
	return chaintypes.ErrQuery
}

func (f *fakeChain) NativeBalance(_ context.Context, _, denom string) (sdk.Coin, error) {
	if len(f.native) == 0 {
		return sdk.NewInt64Coin(denom, 0), nil
	}
	coin := f.native[0]
	f.native = f.native[1:]
	return coin, nil
}

func (f *fakeChain) Execute(_ context.Context, contract string, msg interface{}, funds sdk.Coins) (*wasm.TxResult, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	f.executions = append(f.executions, execution{Contract: contract, Msg: string(bz), Funds: funds})
	return &wasm.TxResult{TxHash: "HASH", GasUsed: 100, GasWanted: 140}, nil
}

func (f *fakeChain) ContractInfo(_ context.Context, contract string) (*wasmtypes.ContractInfo, error) {
	info, ok := f.contracts[contract]
	if !ok {
		return nil, chaintypes.ErrQuery
	}
	return info, nil
}

func newTestRunner(chain Chain) (*Runner, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return NewRunner(chain, "uom", WithOutput(out)), out
}

func TestInspectTokensSkipsEmptyAndQueriesInOrder(t *testing.T) {
	chain := newFakeChain()
	chain.reply("token_info", `{"name":"A","symbol":"AAA","decimals":6,"total_supply":"10"}`)
	chain.reply("balance", `{"balance":"5"}`)
	chain.reply("marketing_info", `{"project":null,"description":null,"marketing":null,"logo":null}`)

	r, out := newTestRunner(chain)
	err := r.InspectTokens(context.Background(), []string{"", "mantra1a", "", "mantra1b"})
	require.NoError(t, err)

	expected := []query{
		{Contract: "mantra1a", Msg: `{"token_info":{}}`},
		{Contract: "mantra1a", Msg: `{"balance":{"address":"mantra1sender"}}`},
		{Contract: "mantra1a", Msg: `{"marketing_info":{}}`},
		{Contract: "mantra1b", Msg: `{"token_info":{}}`},
		{Contract: "mantra1b", Msg: `{"balance":{"address":"mantra1sender"}}`},
		{Contract: "mantra1b", Msg: `{"marketing_info":{}}`},
	}
	assert.Equal(t, expected, chain.queries)
	assert.Contains(t, out.String(), "Balance: 5")
	assert.NotContains(t, out.String(), "Token 1:")
}

func TestInspectTokensAllEmpty(t *testing.T) {
	chain := newFakeChain()
	r, _ := newTestRunner(chain)

	require.NoError(t, r.InspectTokens(context.Background(), make([]string, 4)))
	assert.Empty(t, chain.queries)
}

func TestSwapTokenEmbedsHook(t *testing.T) {
	chain := newFakeChain()
	r, out := newTestRunner(chain)

	res, err := r.SwapToken(context.Background(), TokenSwapParams{Pair: pair, Token: token, Amount: "1000"})
	require.NoError(t, err)
	assert.Equal(t, "HASH", res.TxHash)

	require.Len(t, chain.executions, 1)
	exec := chain.executions[0]
	assert.Equal(t, token, exec.Contract)
	assert.Empty(t, exec.Funds)

	var msg cw20.ExecuteMsg
	require.NoError(t, json.Unmarshal([]byte(exec.Msg), &msg))
	require.NotNil(t, msg.Send)
	assert.Equal(t, pair, msg.Send.Contract)
	assert.Equal(t, "1000", msg.Send.Amount)

	hook, err := base64.StdEncoding.DecodeString(msg.Send.Msg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"swap":{"offer_asset":{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"1000"}}}`, string(hook))

	assert.Contains(t, out.String(), "Transaction hash: HASH")
	assert.Contains(t, out.String(), "Gas used: 100")
	assert.Contains(t, out.String(), "Gas wanted: 140")
}

func TestSwapNativeAttachesFunds(t *testing.T) {
	chain := newFakeChain()
	r, _ := newTestRunner(chain)

	_, err := r.SwapNative(context.Background(), SwapParams{Pair: pair, Denom: "uom", Amount: "250", MaxSpread: "0.05"})
	require.NoError(t, err)

	require.Len(t, chain.executions, 1)
	exec := chain.executions[0]
	assert.Equal(t, pair, exec.Contract)
	assert.Equal(t, `{"swap":{"offer_asset":{"info":{"native_token":{"denom":"uom"}},"amount":"250"},"max_spread":"0.05"}}`, exec.Msg)
	assert.Equal(t, sdk.NewCoins(sdk.NewInt64Coin("uom", 250)), exec.Funds)
}

func TestSwapRejectsBadAmounts(t *testing.T) {
	chain := newFakeChain()
	r, _ := newTestRunner(chain)

	_, err := r.SwapNative(context.Background(), SwapParams{Pair: pair, Denom: "uom", Amount: "1.5"})
	assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount)

	_, err = r.SwapToken(context.Background(), TokenSwapParams{Pair: pair, Token: token, Amount: "-1"})
	assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount)

	_, err = r.SwapNative(context.Background(), SwapParams{Pair: pair, Denom: "", Amount: "1"})
	assert.ErrorIs(t, err, chaintypes.ErrConfig)

	assert.Empty(t, chain.executions)
}

const (
	poolBefore = `{"assets":[{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"1000"},{"info":{"native_token":{"denom":"uom"}},"amount":"500"}],"total_share":"700"}`
	poolAfter  = `{"assets":[{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"1200"},{"info":{"native_token":{"denom":"uom"}},"amount":"600"}],"total_share":"840"}`
)

func TestProvideLiquidityDryRun(t *testing.T) {
	chain := newFakeChain()
	chain.reply("pool", poolBefore)
	r, out := newTestRunner(chain)

	report, err := r.ProvideLiquidity(context.Background(), ProvideParams{
		Pair: pair, Token: token, TokenAmount: "200", NativeDenom: "uom", NativeAmount: "100",
	})
	require.NoError(t, err)
	assert.Empty(t, chain.executions)
	assert.Len(t, chain.queries, 1)
	for _, d := range report.Deltas {
		assert.True(t, d.Delta().IsZero())
	}
	assert.Contains(t, out.String(), "Dry run")
}

func TestProvideLiquidityExecute(t *testing.T) {
	chain := newFakeChain()
	chain.reply("pool", poolBefore, poolAfter)
	r, _ := newTestRunner(chain)

	report, err := r.ProvideLiquidity(context.Background(), ProvideParams{
		Pair: pair, Token: token, TokenAmount: "200", NativeDenom: "uom", NativeAmount: "100", Execute: true,
	})
	require.NoError(t, err)

	require.Len(t, chain.executions, 1)
	exec := chain.executions[0]
	assert.Equal(t, pair, exec.Contract)
	assert.Equal(t, `{"provide_liquidity":{"assets":[{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"200"},{"info":{"native_token":{"denom":"uom"}},"amount":"100"}]}}`, exec.Msg)
	assert.Equal(t, sdk.NewCoins(sdk.NewInt64Coin("uom", 100)), exec.Funds)

	require.Len(t, report.Deltas, 2)
	assert.Equal(t, "200", report.Deltas[0].Delta().String())
	assert.Equal(t, "100", report.Deltas[1].Delta().String())
	assert.Len(t, chain.queries, 2)
}

func TestWithdrawLiquidity(t *testing.T) {
	chain := newFakeChain()
	chain.reply("balance", `{"balance":"10"}`, `{"balance":"0"}`)
	chain.native = []sdk.Coin{sdk.NewInt64Coin("uom", 1), sdk.NewInt64Coin("uom", 9)}
	r, _ := newTestRunner(chain)

	report, err := r.WithdrawLiquidity(context.Background(), WithdrawParams{Pair: pair, Token: token, Amount: "10"})
	require.NoError(t, err)

	require.Len(t, chain.executions, 1)
	exec := chain.executions[0]
	assert.Equal(t, pair, exec.Contract)
	assert.Equal(t, `{"receive":{"sender":"mantra1sender","amount":"10","msg":"eyJ3aXRoZHJhd19saXF1aWRpdHkiOnt9fQ=="}}`, exec.Msg)

	assert.Equal(t, "10", report.Before.Token)
	assert.Equal(t, "0", report.After.Token)
	assert.Equal(t, int64(9), report.After.Native.Amount.Int64())
}

func TestFactoryScenarios(t *testing.T) {
	chain := newFakeChain()
	chain.reply("pairs", `{"pairs":[{"asset_infos":[{"token":{"contract_addr":"mantra1token"}},{"native_token":{"denom":"uom"}}],"contract_addr":"mantra1pair","liquidity_token":"mantra1lp","asset_decimals":[6,6]}]}`)
	r, out := newTestRunner(chain)

	pairs, err := r.FactoryPairs(context.Background(), "mantra1factory", 10)
	require.NoError(t, err)
	require.Len(t, pairs.Pairs, 1)
	assert.Equal(t, `{"pairs":{"limit":10}}`, chain.queries[0].Msg)
	assert.Contains(t, out.String(), "mantra1pair: token:mantra1token / native:uom (lp mantra1lp)")

	infos := [2]terraswap.AssetInfo{terraswap.TokenAssetInfo(token), terraswap.NativeAssetInfo("uom")}
	_, err = r.CreatePair(context.Background(), "mantra1factory", infos)
	require.NoError(t, err)
	assert.Equal(t, `{"create_pair":{"asset_infos":[{"token":{"contract_addr":"mantra1token"}},{"native_token":{"denom":"uom"}}]}}`, chain.executions[0].Msg)
}

func TestInspectTokensSkipsBlankEntries(t *testing.T) {
	chain := newFakeChain()
	chain.reply("token_info", `{"name":"A","symbol":"AAA","decimals":6,"total_supply":"10"}`)
	chain.reply("balance", `{"balance":"5"}`)
	chain.reply("marketing_info", `{}`)
	r, _ := newTestRunner(chain)

	require.NoError(t, r.InspectTokens(context.Background(), []string{" ", "\t", " mantra1a ", ""}))
	require.Len(t, chain.queries, 3)
	for _, q := range chain.queries {
		assert.Equal(t, "mantra1a", q.Contract)
	}
}

func TestProvideLiquidityRejectsBadReserve(t *testing.T) {
	chain := newFakeChain()
	chain.reply("pool", `{"assets":[{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"lots"},{"info":{"native_token":{"denom":"uom"}},"amount":"500"}],"total_share":"700"}`)
	r, _ := newTestRunner(chain)

	_, err := r.ProvideLiquidity(context.Background(), ProvideParams{
		Pair: pair, Token: token, TokenAmount: "200", NativeDenom: "uom", NativeAmount: "100",
	})
	assert.ErrorIs(t, err, chaintypes.ErrResponse)
	assert.Empty(t, chain.executions)
}

func TestReverseSimulateSwap(t *testing.T) {
	chain := newFakeChain()
	chain.reply("reverse_simulation", `{"offer_amount":"105","spread_amount":"2","commission_amount":"3"}`)
	r, out := newTestRunner(chain)

	res, err := r.ReverseSimulateSwap(context.Background(), pair, terraswap.NativeAsset("uom", "100"))
	require.NoError(t, err)
	assert.Equal(t, "105", res.OfferAmount)
	assert.Equal(t, `{"reverse_simulation":{"ask_asset":{"info":{"native_token":{"denom":"uom"}},"amount":"100"}}}`, chain.queries[0].Msg)
	assert.Contains(t, out.String(), "needs an offer of 105")

	_, err = r.ReverseSimulateSwap(context.Background(), pair, terraswap.NativeAsset("uom", "-1"))
	assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount)
	assert.Len(t, chain.queries, 1)
}

func TestFactoryConfig(t *testing.T) {
	chain := newFakeChain()
	chain.reply("config", `{"owner":"mantra1owner","pair_code_id":2,"token_code_id":1}`)
	r, _ := newTestRunner(chain)

	cfg, err := r.FactoryConfig(context.Background(), "mantra1factory")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), cfg.PairCodeID)
	assert.Equal(t, `{"config":{}}`, chain.queries[0].Msg)
}

func TestAddNativeTokenDecimals(t *testing.T) {
	chain := newFakeChain()
	r, _ := newTestRunner(chain)

	_, err := r.AddNativeTokenDecimals(context.Background(), "mantra1factory", "uom", 6, "1")
	require.NoError(t, err)
	require.Len(t, chain.executions, 1)
	assert.Equal(t, `{"add_native_token_decimals":{"denom":"uom","decimals":6}}`, chain.executions[0].Msg)
	assert.Equal(t, sdk.NewCoins(sdk.NewInt64Coin("uom", 1)), chain.executions[0].Funds)

	_, err = r.AddNativeTokenDecimals(context.Background(), "mantra1factory", "uom", 6, "0")
	assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount)
	_, err = r.AddNativeTokenDecimals(context.Background(), "mantra1factory", "1bad", 6, "1")
	assert.ErrorIs(t, err, chaintypes.ErrConfig)
	assert.Len(t, chain.executions, 1)
}

func TestTokenAllowanceAndBurn(t *testing.T) {
	chain := newFakeChain()
	r, _ := newTestRunner(chain)

	_, err := r.IncreaseAllowance(context.Background(), token, pair, "50")
	require.NoError(t, err)
	_, err = r.DecreaseAllowance(context.Background(), token, pair, "20")
	require.NoError(t, err)
	_, err = r.Burn(context.Background(), token, "5")
	require.NoError(t, err)

	_, err = r.Burn(context.Background(), token, "five")
	assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount)

	require.Len(t, chain.executions, 3)
	assert.Equal(t, `{"increase_allowance":{"spender":"mantra1pair","amount":"50"}}`, chain.executions[0].Msg)
	assert.Equal(t, `{"decrease_allowance":{"spender":"mantra1pair","amount":"20"}}`, chain.executions[1].Msg)
	assert.Equal(t, `{"burn":{"amount":"5"}}`, chain.executions[2].Msg)
	for _, e := range chain.executions {
		assert.Equal(t, token, e.Contract)
		assert.Empty(t, e.Funds)
	}
}

func TestContractInfo(t *testing.T) {
	chain := newFakeChain()
	chain.contracts = map[string]*wasmtypes.ContractInfo{
		pair: {CodeID: 3, Creator: sender, Admin: "mantra1admin", Label: "QuVault Pair Contract"},
	}
	r, out := newTestRunner(chain)

	info, err := r.ContractInfo(context.Background(), pair)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), info.CodeID)
	assert.Contains(t, out.String(), "code id: 3")
	assert.Contains(t, out.String(), "label: QuVault Pair Contract")

	_, err = r.ContractInfo(context.Background(), "mantra1missing")
	assert.ErrorIs(t, err, chaintypes.ErrQuery)
}

type fakeAccount struct {
	addr     sdk.AccAddress
	balances sdk.Coins
	err      error
}

func (a *fakeAccount) FromAddress() sdk.AccAddress { return a.addr }

func (a *fakeAccount) GetAccNonce() (uint64, uint64) { return 7, 42 }

func (a *fakeAccount) GetBankBalances(context.Context, string) (*banktypes.QueryAllBalancesResponse, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &banktypes.QueryAllBalancesResponse{Balances: a.balances}, nil
}

func TestWalletInfo(t *testing.T) {
	account := &fakeAccount{
		addr:     sdk.AccAddress(make([]byte, 20)),
		balances: sdk.NewCoins(sdk.NewInt64Coin("uom", 9), sdk.NewInt64Coin("uusdc", 3)),
	}
	r, out := newTestRunner(newFakeChain())

	coins, err := r.WalletInfo(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, account.balances, coins)
	assert.Contains(t, out.String(), "Account number: 7 sequence: 42")
	assert.Contains(t, out.String(), "9uom,3uusdc")

	account.err = chaintypes.ErrQuery
	_, err = r.WalletInfo(context.Background(), account)
	assert.ErrorIs(t, err, chaintypes.ErrQuery)
}
