package scenarios

import (
	"context"
	"fmt"
	"strings"

	"github.com/QuVaultLabs/deployer-go/client/wasm"
	"github.com/QuVaultLabs/deployer-go/contracts/cw20"
	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
)

// InspectTokens prints token info, the sender balance and marketing info of
// every non-empty token address, in that order.
func (r *Runner) InspectTokens(ctx context.Context, tokens []string) error {
	sender := r.chain.Sender()
	fmt.Fprintln(r.out, "Wallet address: ", sender)

	for i, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			r.logger.Warningln("token address", i+1, "is not set, skipping")
			continue
		}

		fmt.Fprintf(r.out, "\n=== Token %d: %s ===\n", i+1, token)

		info, err := wasm.Query[cw20.TokenInfoResponse](ctx, r.chain, token, &cw20.QueryMsg{TokenInfo: &cw20.TokenInfo{}})
		if err != nil {
			return err
		}
		r.printJSON("Token info", info)

		balance, err := r.tokenBalance(ctx, token, sender)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "Balance: %s\n", balance)

		marketing, err := wasm.Query[cw20.MarketingInfoResponse](ctx, r.chain, token, &cw20.QueryMsg{MarketingInfo: &cw20.MarketingInfo{}})
		if err != nil {
			return err
		}
		r.printJSON("Marketing info", marketing)
	}

	return nil
}

func (r *Runner) Allowance(ctx context.Context, token, owner, spender string) (*cw20.AllowanceResponse, error) {
	res, err := wasm.Query[cw20.AllowanceResponse](ctx, r.chain, token, &cw20.QueryMsg{
		Allowance: &cw20.Allowance{Owner: owner, Spender: spender},
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "Allowance of %s from %s on %s: %s\n", spender, owner, token, res.Allowance)
	return res, nil
}

func (r *Runner) IncreaseAllowance(ctx context.Context, token, spender, amount string) (*wasm.TxResult, error) {
	return r.executeToken(ctx, token, amount, &cw20.ExecuteMsg{
		IncreaseAllowance: &cw20.IncreaseAllowance{Spender: spender, Amount: amount},
	})
}

func (r *Runner) DecreaseAllowance(ctx context.Context, token, spender, amount string) (*wasm.TxResult, error) {
	return r.executeToken(ctx, token, amount, &cw20.ExecuteMsg{
		DecreaseAllowance: &cw20.DecreaseAllowance{Spender: spender, Amount: amount},
	})
}

// Burn destroys amount of the sender's tokens.
func (r *Runner) Burn(ctx context.Context, token, amount string) (*wasm.TxResult, error) {
	return r.executeToken(ctx, token, amount, &cw20.ExecuteMsg{
		Burn: &cw20.Burn{Amount: amount},
	})
}

func (r *Runner) executeToken(ctx context.Context, token, amount string, msg *cw20.ExecuteMsg) (*wasm.TxResult, error) {
	if _, err := terraswap.ParseAmount(amount); err != nil {
		return nil, err
	}

	res, err := r.chain.Execute(ctx, token, msg, nil)
	if err != nil {
		return nil, err
	}

	r.printReceipt(res)
	return res, nil
}

func (r *Runner) tokenBalance(ctx context.Context, token, owner string) (string, error) {
	res, err := wasm.Query[cw20.BalanceResponse](ctx, r.chain, token, &cw20.QueryMsg{Balance: &cw20.Balance{Address: owner}})
	if err != nil {
		return "", err
	}
	return res.Balance, nil
}
