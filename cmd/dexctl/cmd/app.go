package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/common"
	"github.com/QuVaultLabs/deployer-go/client/provider"
	"github.com/QuVaultLabs/deployer-go/client/wallet"
	"github.com/QuVaultLabs/deployer-go/config"
	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
	"github.com/QuVaultLabs/deployer-go/scenarios"
)

// app is what every command builds before touching the chain.
type app struct {
	cfg      *config.Config
	env      *config.Env
	network  common.Network
	provider *provider.Provider
}

func loadApp() (*app, error) {
	env := config.LoadEnv()

	path := viper.GetString(flagConfig)
	if path == "" {
		path = env.ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	network := cfg.Network.ToNetwork()
	return &app{
		cfg:      cfg,
		env:      env,
		network:  network,
		provider: provider.New(network),
	}, nil
}

func (a *app) credentials() (wallet.Credentials, error) {
	switch strings.ToLower(viper.GetString(flagAs)) {
	case "", identityDeployer:
		return a.env.Credentials(), nil
	case identityUser:
		return a.env.UserCredentials(), nil
	default:
		return wallet.Credentials{}, errors.Wrapf(chaintypes.ErrConfig, "unknown identity %q, use deployer or user", viper.GetString(flagAs))
	}
}

func (a *app) connect(ctx context.Context) error {
	creds, err := a.credentials()
	if err != nil {
		return err
	}
	return a.provider.Initialize(ctx, creds)
}

func (a *app) close() {
	a.provider.Close()
}

func (a *app) runner(out io.Writer) (*scenarios.Runner, error) {
	client, err := a.provider.Wasm()
	if err != nil {
		return nil, err
	}

	return scenarios.NewRunner(
		client,
		a.network.FeeDenom,
		scenarios.WithOutput(out),
		scenarios.WithVerbose(viper.GetBool(flagVerbose)),
	), nil
}

// withRunner connects, runs fn and closes the connections.
func withRunner(ctx context.Context, out io.Writer, fn func(a *app, r *scenarios.Runner) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if err := a.connect(ctx); err != nil {
		return err
	}
	defer a.close()

	r, err := a.runner(out)
	if err != nil {
		return err
	}
	return fn(a, r)
}

// parseAssetInfo reads a bech32 address with the network prefix as a token
// and anything else as a native denom.
func parseAssetInfo(s, prefix string) terraswap.AssetInfo {
	if chaintypes.IsAddress(s, prefix) {
		return terraswap.TokenAssetInfo(s)
	}
	return terraswap.NativeAssetInfo(s)
}

func parseAssetInfos(a, b, prefix string) ([2]terraswap.AssetInfo, error) {
	infos := [2]terraswap.AssetInfo{parseAssetInfo(a, prefix), parseAssetInfo(b, prefix)}
	for _, info := range infos {
		if err := info.Validate(prefix); err != nil {
			return infos, err
		}
	}
	return infos, nil
}
