package provider

import (
	"context"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	chainclient "github.com/QuVaultLabs/deployer-go/client/chain"
	"github.com/QuVaultLabs/deployer-go/client/common"
	"github.com/QuVaultLabs/deployer-go/client/wallet"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
)

// Handles is the pair of connections held by a Provider.
type Handles struct {
	ChainID string
	Signing chainclient.ChainClient
	Query   *wasm.QueryClient

	closers []func() error
}

func (h *Handles) Close() {
	if h.Signing != nil {
		h.Signing.Close()
	}
	for _, closeFn := range h.closers {
		_ = closeFn()
	}
}

// Dialer opens the signing and read-only handles for w on network.
type Dialer func(ctx context.Context, network common.Network, w *wallet.Wallet) (*Handles, error)

// DialNetwork connects over Tendermint RPC, and additionally over gRPC when
// the network has a gRPC endpoint. An empty chain id is read from the node.
func DialNetwork(ctx context.Context, network common.Network, w *wallet.Wallet) (*Handles, error) {
	if network.TmEndpoint == "" {
		return nil, errors.New("network has no RPC endpoint")
	}

	handles := &Handles{ChainID: network.ChainId}

	signCtx, err := dialContext(ctx, network, handles, w)
	if err != nil {
		handles.Close()
		return nil, err
	}

	var options []common.ClientOption
	if network.GasAdjustment > 0 {
		options = append(options, common.OptionGasAdjustment(network.GasAdjustment))
	}
	if network.GasPrices != "" {
		options = append(options, common.OptionGasPrices(network.GasPrices))
	}

	handles.Signing, err = newSigningClient(signCtx, options...)
	if err != nil {
		handles.Close()
		return nil, err
	}

	queryCtx, err := dialContext(ctx, network, handles, nil)
	if err != nil {
		handles.Close()
		return nil, err
	}
	handles.Query = wasm.NewQueryClient(queryCtx)

	return handles, nil
}

// newSigningClient owns the gRPC connection of signCtx: the chain client closes
// it once built, and it is closed here when the client cannot be built.
func newSigningClient(signCtx client.Context, options ...common.ClientOption) (chainclient.ChainClient, error) {
	signing, err := chainclient.NewChainClient(signCtx, options...)
	if err != nil {
		if signCtx.GRPCClient != nil {
			_ = signCtx.GRPCClient.Close()
		}
		return nil, errors.Wrap(err, "failed to init signing client")
	}
	return signing, nil
}

// dialContext builds one client context with its own transports. A nil w
// gives a keyless context.
func dialContext(ctx context.Context, network common.Network, handles *Handles, w *wallet.Wallet) (client.Context, error) {
	tmClient, err := rpchttp.New(network.TmEndpoint, "/websocket")
	if err != nil {
		return client.Context{}, errors.Wrapf(err, "failed to dial %s", network.TmEndpoint)
	}

	if handles.ChainID == "" {
		status, err := tmClient.Status(ctx)
		if err != nil {
			return client.Context{}, errors.Wrapf(err, "failed to get status of %s", network.TmEndpoint)
		}
		handles.ChainID = status.NodeInfo.Network
	}

	var clientCtx client.Context
	if w != nil {
		clientCtx, err = chainclient.NewClientContext(handles.ChainID, w.KeyName, w.Keyring)
	} else {
		clientCtx, err = chainclient.NewClientContext(handles.ChainID, "", nil)
	}
	if err != nil {
		return client.Context{}, err
	}

	clientCtx = clientCtx.WithNodeURI(network.TmEndpoint).WithClient(tmClient)

	if network.ChainGrpcEndpoint != "" {
		_, addr := common.ProtocolAndAddress(network.ChainGrpcEndpoint)
		conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return client.Context{}, errors.Wrapf(err, "failed to dial gRPC %s", network.ChainGrpcEndpoint)
		}
		if w == nil {
			handles.closers = append(handles.closers, conn.Close)
		}
		clientCtx = clientCtx.WithGRPCClient(conn)
	}

	return clientCtx, nil
}
