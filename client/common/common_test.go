package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadNetwork(t *testing.T) {
	network := LoadNetwork("dukong")
	assert.Equal(t, "https://rpc.dukong.mantrachain.io", network.TmEndpoint)
	assert.Equal(t, "mantra", network.AddressPrefix)
	assert.Equal(t, "0.01uom", network.GasPrices)

	local := LoadNetwork("LOCAL")
	assert.Equal(t, "http://localhost:26657", local.TmEndpoint)
	assert.Empty(t, local.ChainId, "read from node status on connect")

	assert.Equal(t, Network{}, LoadNetwork("unknown"))
}

func TestClientOptions(t *testing.T) {
	opts := DefaultClientOptions()
	require.NoError(t, OptionGasPrices("0.01uom")(opts))
	require.NoError(t, OptionGasAdjustment(2)(opts))
	assert.Equal(t, "0.01uom", opts.GasPrices)
	assert.Equal(t, 2.0, opts.GasAdjustment)

	assert.Error(t, OptionGasPrices("not a coin")(opts))
	assert.Error(t, OptionGasAdjustment(0)(opts))
}

func TestProtocolAndAddress(t *testing.T) {
	proto, addr := ProtocolAndAddress("tcp://127.0.0.1:9090")
	assert.Equal(t, "tcp", proto)
	assert.Equal(t, "127.0.0.1:9090", addr)

	proto, addr = ProtocolAndAddress("localhost:9090")
	assert.Equal(t, "tcp", proto)
	assert.Equal(t, "localhost:9090", addr)
}
