// Package provider owns the wallet and the client handles shared by the
// deployer and the interaction scenarios.
package provider

import (
	"context"

	log "github.com/InjectiveLabs/suplog"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	chainclient "github.com/QuVaultLabs/deployer-go/client/chain"
	"github.com/QuVaultLabs/deployer-go/client/common"
	"github.com/QuVaultLabs/deployer-go/client/wallet"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
)

type Provider struct {
	network common.Network
	dial    Dialer
	logger  log.Logger

	wallet  *wallet.Wallet
	handles *Handles
	wasm    *wasm.Client
}

type Option func(p *Provider)

// WithDialer replaces the network dialer.
func WithDialer(d Dialer) Option {
	return func(p *Provider) {
		p.dial = d
	}
}

func New(network common.Network, options ...Option) *Provider {
	p := &Provider{
		network: network,
		dial:    DialNetwork,
		logger: log.WithFields(log.Fields{
			"module": "deployer-go",
			"svc":    "provider",
		}),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *Provider) Network() common.Network {
	return p.network
}

// Initialize derives the wallet from creds and opens both handles. Calling it
// again closes and replaces whatever was held before.
func (p *Provider) Initialize(ctx context.Context, creds wallet.Credentials) error {
	prefix := p.network.AddressPrefix
	if prefix == "" {
		prefix = chaintypes.DefaultAddressPrefix
	}

	w, err := wallet.New(creds, prefix)
	if err != nil {
		return err
	}

	config := sdk.GetConfig()
	chaintypes.SetBech32Prefixes(config, prefix)
	chaintypes.SetBip44CoinType(config)

	handles, err := p.dial(ctx, p.network, w)
	if err != nil {
		p.logger.WithError(err).Errorln("failed to connect to", p.network.TmEndpoint)
		return err
	}

	if p.handles != nil {
		p.handles.Close()
	}

	p.wallet = w
	p.handles = handles
	p.wasm = wasm.NewClient(handles.Signing, handles.Query)

	p.logger.WithFields(log.Fields{
		"chain_id": handles.ChainID,
		"address":  w.Address(),
		"source":   w.Source,
	}).Debugln("provider initialized")

	return nil
}

func (p *Provider) SigningClient() (chainclient.ChainClient, error) {
	if p.handles == nil {
		return nil, errors.Wrap(chaintypes.ErrUninitialized, "signing client not initialized")
	}
	return p.handles.Signing, nil
}

func (p *Provider) QueryClient() (*wasm.QueryClient, error) {
	if p.handles == nil {
		return nil, errors.Wrap(chaintypes.ErrUninitialized, "query client not initialized")
	}
	return p.handles.Query, nil
}

func (p *Provider) Wasm() (*wasm.Client, error) {
	if p.wasm == nil {
		return nil, errors.Wrap(chaintypes.ErrUninitialized, "wasm client not initialized")
	}
	return p.wasm, nil
}

func (p *Provider) Wallet() (*wallet.Wallet, error) {
	if p.wallet == nil {
		return nil, errors.Wrap(chaintypes.ErrUninitialized, "wallet not initialized")
	}
	return p.wallet, nil
}

func (p *Provider) WalletAddress() (string, error) {
	w, err := p.Wallet()
	if err != nil {
		return "", err
	}
	return w.Address(), nil
}

// Close releases the handles and forgets the wallet. Initialize must run
// again before any accessor succeeds.
func (p *Provider) Close() {
	if p.handles != nil {
		p.handles.Close()
		p.handles = nil
	}
	p.wasm = nil
	p.wallet = nil
}
