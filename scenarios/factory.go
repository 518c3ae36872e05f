package scenarios

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
)

func (r *Runner) FactoryConfig(ctx context.Context, factory string) (*terraswap.FactoryConfigResponse, error) {
	res, err := wasm.Query[terraswap.FactoryConfigResponse](ctx, r.chain, factory, &terraswap.FactoryQueryMsg{
		Config: &terraswap.FactoryConfigQuery{},
	})
	if err != nil {
		return nil, err
	}

	r.printJSON("Factory config", res)
	return res, nil
}

func (r *Runner) FactoryPair(ctx context.Context, factory string, infos [2]terraswap.AssetInfo) (*terraswap.PairInfo, error) {
	res, err := wasm.Query[terraswap.PairInfo](ctx, r.chain, factory, &terraswap.FactoryQueryMsg{
		Pair: &terraswap.FactoryPairQuery{AssetInfos: infos},
	})
	if err != nil {
		return nil, err
	}

	r.printJSON("Pair", res)
	return res, nil
}

// FactoryPairs lists pairs registered in the factory. A zero limit leaves the
// contract default.
func (r *Runner) FactoryPairs(ctx context.Context, factory string, limit uint32) (*terraswap.PairsResponse, error) {
	query := &terraswap.FactoryPairsQuery{}
	if limit > 0 {
		query.Limit = &limit
	}

	res, err := wasm.Query[terraswap.PairsResponse](ctx, r.chain, factory, &terraswap.FactoryQueryMsg{Pairs: query})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "%d pairs\n", len(res.Pairs))
	for _, p := range res.Pairs {
		fmt.Fprintf(r.out, "  %s: %s / %s (lp %s)\n", p.ContractAddr, p.AssetInfos[0], p.AssetInfos[1], p.LiquidityToken)
	}
	return res, nil
}

func (r *Runner) CreatePair(ctx context.Context, factory string, infos [2]terraswap.AssetInfo) (*wasm.TxResult, error) {
	res, err := r.chain.Execute(ctx, factory, &terraswap.FactoryExecuteMsg{
		CreatePair: &terraswap.CreatePair{AssetInfos: infos},
	}, nil)
	if err != nil {
		return nil, err
	}

	r.printReceipt(res)
	return res, nil
}

// AddNativeTokenDecimals registers denom with the factory so pairs can be
// created against it. The factory rejects denoms it holds no balance of, so a
// non-zero deposit of denom is sent along.
func (r *Runner) AddNativeTokenDecimals(ctx context.Context, factory, denom string, decimals uint8, deposit string) (*wasm.TxResult, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return nil, errors.Wrap(chaintypes.ErrConfig, err.Error())
	}
	amount, err := terraswap.ParseAmount(deposit)
	if err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, errors.Wrap(chaintypes.ErrInvalidAmount, "deposit must be positive")
	}

	res, err := r.chain.Execute(ctx, factory, &terraswap.FactoryExecuteMsg{
		AddNativeTokenDecimals: &terraswap.AddNativeTokenDecimals{Denom: denom, Decimals: decimals},
	}, sdk.NewCoins(sdk.NewCoin(denom, amount)))
	if err != nil {
		return nil, err
	}

	r.printReceipt(res)
	return res, nil
}
