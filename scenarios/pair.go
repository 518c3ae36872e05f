package scenarios

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
	"github.com/QuVaultLabs/deployer-go/contracts/cw20"
	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
)

func (r *Runner) Pool(ctx context.Context, pair string) (*terraswap.PoolResponse, error) {
	res, err := wasm.Query[terraswap.PoolResponse](ctx, r.chain, pair, &terraswap.PairQueryMsg{Pool: &terraswap.PoolQuery{}})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "Pool of %s: %s, %s (total share %s)\n", pair, res.Assets[0], res.Assets[1], res.TotalShare)
	return res, nil
}

func (r *Runner) Pair(ctx context.Context, pair string) (*terraswap.PairInfo, error) {
	res, err := wasm.Query[terraswap.PairInfo](ctx, r.chain, pair, &terraswap.PairQueryMsg{Pair: &terraswap.PairQuery{}})
	if err != nil {
		return nil, err
	}

	r.printJSON("Pair info", res)
	return res, nil
}

func (r *Runner) SimulateSwap(ctx context.Context, pair string, offer terraswap.Asset) (*terraswap.SimulationResponse, error) {
	if _, err := offer.Int(); err != nil {
		return nil, err
	}

	res, err := wasm.Query[terraswap.SimulationResponse](ctx, r.chain, pair, &terraswap.PairQueryMsg{
		Simulation: &terraswap.SimulationQuery{OfferAsset: offer},
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "Offer %s returns %s (spread %s, commission %s)\n", offer, res.ReturnAmount, res.SpreadAmount, res.CommissionAmount)
	return res, nil
}

// ReverseSimulateSwap asks the pair how much must be offered to receive ask.
func (r *Runner) ReverseSimulateSwap(ctx context.Context, pair string, ask terraswap.Asset) (*terraswap.ReverseSimulationResponse, error) {
	if _, err := ask.Int(); err != nil {
		return nil, err
	}

	res, err := wasm.Query[terraswap.ReverseSimulationResponse](ctx, r.chain, pair, &terraswap.PairQueryMsg{
		ReverseSimulation: &terraswap.ReverseSimulation{AskAsset: ask},
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "Asking %s needs an offer of %s (spread %s, commission %s)\n", ask, res.OfferAmount, res.SpreadAmount, res.CommissionAmount)
	return res, nil
}

type ProvideParams struct {
	Pair         string
	Token        string
	TokenAmount  string
	NativeDenom  string
	NativeAmount string

	// SlippageTolerance is a decimal string such as "0.01"; empty leaves it unset.
	SlippageTolerance string

	// Execute submits the provide_liquidity tx. When false only the pool is
	// queried.
	Execute bool
}

// PoolDelta is the change of one reserve across a liquidity operation.
type PoolDelta struct {
	Info   terraswap.AssetInfo
	Before math.Int
	After  math.Int
}

func (d PoolDelta) Delta() math.Int {
	return d.After.Sub(d.Before)
}

type LiquidityReport struct {
	Before *terraswap.PoolResponse
	After  *terraswap.PoolResponse
	Tx     *wasm.TxResult
	Deltas []PoolDelta
}

// ProvideLiquidity queries the pool, optionally provides the token and native
// amounts, then queries the pool again and reports per-asset deltas.
func (r *Runner) ProvideLiquidity(ctx context.Context, p ProvideParams) (*LiquidityReport, error) {
	if _, err := terraswap.ParseAmount(p.TokenAmount); err != nil {
		return nil, err
	}
	nativeAmount, err := terraswap.ParseAmount(p.NativeAmount)
	if err != nil {
		return nil, err
	}
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return nil, errors.Wrap(chaintypes.ErrConfig, err.Error())
	}

	report := new(LiquidityReport)
	if report.Before, err = r.Pool(ctx, p.Pair); err != nil {
		return nil, err
	}

	if !p.Execute {
		fmt.Fprintln(r.out, "Dry run, provide_liquidity not submitted")
		report.After = report.Before
		if report.Deltas, err = poolDeltas(report.Before, report.After); err != nil {
			return nil, err
		}
		return report, nil
	}

	msg := &terraswap.PairExecuteMsg{
		ProvideLiquidity: &terraswap.ProvideLiquidity{
			Assets: [2]terraswap.Asset{
				terraswap.TokenAsset(p.Token, p.TokenAmount),
				terraswap.NativeAsset(p.NativeDenom, p.NativeAmount),
			},
		},
	}
	if p.SlippageTolerance != "" {
		if _, err := math.LegacyNewDecFromStr(p.SlippageTolerance); err != nil {
			return nil, errors.Wrapf(chaintypes.ErrInvalidAmount, "slippage tolerance %q: %v", p.SlippageTolerance, err)
		}
		msg.ProvideLiquidity.SlippageTolerance = &p.SlippageTolerance
	}

	funds := sdk.NewCoins(sdk.NewCoin(p.NativeDenom, nativeAmount))
	if report.Tx, err = r.chain.Execute(ctx, p.Pair, msg, funds); err != nil {
		return nil, err
	}
	r.printReceipt(report.Tx)

	if report.After, err = r.Pool(ctx, p.Pair); err != nil {
		return nil, err
	}

	if report.Deltas, err = poolDeltas(report.Before, report.After); err != nil {
		return report, err
	}
	for _, d := range report.Deltas {
		fmt.Fprintf(r.out, "Pool delta %s: %s\n", d.Info, d.Delta())
	}

	return report, nil
}

func poolDeltas(before, after *terraswap.PoolResponse) ([]PoolDelta, error) {
	deltas := make([]PoolDelta, 0, len(before.Assets))
	for _, asset := range before.Assets {
		d := PoolDelta{
			Info:  asset.Info,
			After: math.ZeroInt(),
		}

		var err error
		if d.Before, err = poolAmount(asset); err != nil {
			return nil, err
		}
		if next, ok := after.Find(asset.Info); ok {
			if d.After, err = poolAmount(next); err != nil {
				return nil, err
			}
		}
		deltas = append(deltas, d)
	}
	return deltas, nil
}

func poolAmount(asset terraswap.Asset) (math.Int, error) {
	v, err := terraswap.ParseAmount(asset.Amount)
	if err != nil {
		return math.Int{}, errors.Wrapf(chaintypes.ErrResponse, "pool reserve of %s: %v", asset.Info, err)
	}
	return v, nil
}

type SwapParams struct {
	Pair        string
	Denom       string
	Amount      string
	BeliefPrice string
	MaxSpread   string
}

// SwapNative offers a native amount to the pair, attaching it as funds.
func (r *Runner) SwapNative(ctx context.Context, p SwapParams) (*wasm.TxResult, error) {
	amount, err := terraswap.ParseAmount(p.Amount)
	if err != nil {
		return nil, err
	}
	if err := sdk.ValidateDenom(p.Denom); err != nil {
		return nil, errors.Wrap(chaintypes.ErrConfig, err.Error())
	}

	swap := &terraswap.Swap{OfferAsset: terraswap.NativeAsset(p.Denom, p.Amount)}
	if p.BeliefPrice != "" {
		swap.BeliefPrice = &p.BeliefPrice
	}
	if p.MaxSpread != "" {
		swap.MaxSpread = &p.MaxSpread
	}

	funds := sdk.NewCoins(sdk.NewCoin(p.Denom, amount))
	res, err := r.chain.Execute(ctx, p.Pair, &terraswap.PairExecuteMsg{Swap: swap}, funds)
	if err != nil {
		return nil, err
	}

	r.printReceipt(res)
	return res, nil
}

type TokenSwapParams struct {
	Pair   string
	Token  string
	Amount string
}

// SwapToken sends tokens to the pair through cw20 send with an embedded swap
// hook.
func (r *Runner) SwapToken(ctx context.Context, p TokenSwapParams) (*wasm.TxResult, error) {
	if _, err := terraswap.ParseAmount(p.Amount); err != nil {
		return nil, err
	}

	hook := terraswap.NewSwapHook(terraswap.TokenAsset(p.Token, p.Amount))
	msg, err := cw20.NewSend(p.Pair, p.Amount, hook)
	if err != nil {
		return nil, err
	}

	res, err := r.chain.Execute(ctx, p.Token, msg, nil)
	if err != nil {
		return nil, err
	}

	r.printReceipt(res)
	return res, nil
}

type WithdrawParams struct {
	Pair        string
	Token       string
	NativeDenom string
	Amount      string
}

type BalanceReport struct {
	Token  string
	Native sdk.Coin
}

type WithdrawReport struct {
	Before BalanceReport
	After  BalanceReport
	Tx     *wasm.TxResult
}

// WithdrawLiquidity calls receive on the pair with a withdraw_liquidity hook
// and reports token and native balances around it.
func (r *Runner) WithdrawLiquidity(ctx context.Context, p WithdrawParams) (*WithdrawReport, error) {
	if _, err := terraswap.ParseAmount(p.Amount); err != nil {
		return nil, err
	}

	hook, err := terraswap.NewWithdrawHook().Base64()
	if err != nil {
		return nil, err
	}

	sender := r.chain.Sender()
	report := new(WithdrawReport)
	if report.Before, err = r.balances(ctx, sender, p.Token, p.NativeDenom); err != nil {
		return nil, err
	}
	r.printBalances("Before", report.Before)

	msg := &terraswap.PairExecuteMsg{
		Receive: &terraswap.Receive{
			Sender: sender,
			Amount: p.Amount,
			Msg:    hook,
		},
	}
	if report.Tx, err = r.chain.Execute(ctx, p.Pair, msg, nil); err != nil {
		return nil, err
	}
	r.printReceipt(report.Tx)

	if report.After, err = r.balances(ctx, sender, p.Token, p.NativeDenom); err != nil {
		return nil, err
	}
	r.printBalances("After", report.After)

	return report, nil
}

func (r *Runner) balances(ctx context.Context, owner, token, denom string) (BalanceReport, error) {
	if denom == "" {
		denom = r.feeDenom
	}

	tokenBalance, err := r.tokenBalance(ctx, token, owner)
	if err != nil {
		return BalanceReport{}, err
	}
	native, err := r.chain.NativeBalance(ctx, owner, denom)
	if err != nil {
		return BalanceReport{}, err
	}

	return BalanceReport{Token: tokenBalance, Native: native}, nil
}

func (r *Runner) printBalances(title string, b BalanceReport) {
	fmt.Fprintf(r.out, "%s: token %s, native %s\n", title, b.Token, b.Native)
}
