package terraswap

import (
	"encoding/base64"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
)

const testToken = "mantra1token"

func TestAssetInfoJSON(t *testing.T) {
	bz, err := json.Marshal(NativeAssetInfo("uom"))
	require.NoError(t, err)
	assert.Equal(t, `{"native_token":{"denom":"uom"}}`, string(bz))

	bz, err = json.Marshal(TokenAssetInfo(testToken))
	require.NoError(t, err)
	assert.Equal(t, `{"token":{"contract_addr":"mantra1token"}}`, string(bz))

	var info AssetInfo
	require.NoError(t, json.Unmarshal([]byte(`{"native_token":{"denom":"uusdc"}}`), &info))
	assert.True(t, info.IsNative())
	assert.Equal(t, "uusdc", info.Key())
}

func TestAssetInfoValidate(t *testing.T) {
	assert.NoError(t, NativeAssetInfo("uom").Validate("mantra"))
	assert.ErrorIs(t, NativeAssetInfo("").Validate("mantra"), chaintypes.ErrConfig)
	assert.ErrorIs(t, AssetInfo{}.Validate("mantra"), chaintypes.ErrConfig)
	assert.Error(t, TokenAssetInfo("cosmos1notmantra").Validate("mantra"))
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("100000000000")
	require.NoError(t, err)
	assert.Equal(t, "100000000000", v.String())

	for _, bad := range []string{"", "1.5", "-3", "abc"} {
		_, err := ParseAmount(bad)
		assert.ErrorIs(t, err, chaintypes.ErrInvalidAmount, bad)
	}
}

func TestSwapHookEncoding(t *testing.T) {
	hook := NewSwapHook(TokenAsset(testToken, "1000"))

	encoded, err := hook.Base64()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, `{"swap":{"offer_asset":{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"1000"}}}`, string(decoded))
}

func TestWithdrawHookEncoding(t *testing.T) {
	encoded, err := NewWithdrawHook().Base64()
	require.NoError(t, err)
	assert.Equal(t, "eyJ3aXRoZHJhd19saXF1aWRpdHkiOnt9fQ==", encoded)
}

func TestPairExecuteMsgs(t *testing.T) {
	provide := PairExecuteMsg{
		ProvideLiquidity: &ProvideLiquidity{
			Assets: [2]Asset{
				TokenAsset(testToken, "500"),
				NativeAsset("uom", "250"),
			},
		},
	}
	bz, err := provide.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"provide_liquidity":{"assets":[{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"500"},{"info":{"native_token":{"denom":"uom"}},"amount":"250"}]}}`, string(bz))

	swap := PairExecuteMsg{Swap: &Swap{OfferAsset: NativeAsset("uom", "10")}}
	bz, err = swap.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"swap":{"offer_asset":{"info":{"native_token":{"denom":"uom"}},"amount":"10"}}}`, string(bz))

	receive := PairExecuteMsg{Receive: &Receive{Sender: "mantra1me", Amount: "7", Msg: "e30="}}
	bz, err = receive.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"receive":{"sender":"mantra1me","amount":"7","msg":"e30="}}`, string(bz))
}

func TestPairQueryMsgs(t *testing.T) {
	cases := map[string]PairQueryMsg{
		`{"pool":{}}`: {Pool: &PoolQuery{}},
		`{"pair":{}}`: {Pair: &PairQuery{}},
		`{"simulation":{"offer_asset":{"info":{"native_token":{"denom":"uom"}},"amount":"1"}}}`: {
			Simulation: &SimulationQuery{OfferAsset: NativeAsset("uom", "1")},
		},
	}

	for expected, msg := range cases {
		bz, err := msg.Marshal()
		require.NoError(t, err)
		assert.Equal(t, expected, string(bz))
	}
}

func TestFactoryMsgs(t *testing.T) {
	infos := [2]AssetInfo{TokenAssetInfo(testToken), NativeAssetInfo("uom")}

	create := FactoryExecuteMsg{CreatePair: &CreatePair{AssetInfos: infos}}
	bz, err := create.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"create_pair":{"asset_infos":[{"token":{"contract_addr":"mantra1token"}},{"native_token":{"denom":"uom"}}]}}`, string(bz))

	limit := uint32(5)
	pairs := FactoryQueryMsg{Pairs: &FactoryPairsQuery{Limit: &limit}}
	bz, err = pairs.Marshal()
	require.NoError(t, err)
	assert.Equal(t, `{"pairs":{"limit":5}}`, string(bz))
}

func TestPoolResponseFind(t *testing.T) {
	var pool PoolResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"assets": [
			{"info":{"token":{"contract_addr":"mantra1token"}},"amount":"100"},
			{"info":{"native_token":{"denom":"uom"}},"amount":"42"}
		],
		"total_share": "64"
	}`), &pool))

	native, ok := pool.Find(NativeAssetInfo("uom"))
	require.True(t, ok)
	assert.Equal(t, "42", native.Amount)

	token, ok := pool.Find(TokenAssetInfo(testToken))
	require.True(t, ok)
	assert.Equal(t, "100", token.Amount)

	_, ok = pool.Find(NativeAssetInfo("uusdc"))
	assert.False(t, ok)
}
