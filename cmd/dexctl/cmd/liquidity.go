package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func LiquidityCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "liquidity",
	}

	provide := &cobra.Command{
		Use:   "provide <pair> <token> <token-amount> <native-amount>",
		Short: "Show the pool, and with --execute provide liquidity and show the reserve deltas.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom, _ := cmd.Flags().GetString("denom")
			execute, _ := cmd.Flags().GetBool("execute")
			slippage, _ := cmd.Flags().GetString("slippage")

			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				if denom == "" {
					denom = a.network.FeeDenom
				}
				_, err := r.ProvideLiquidity(cmd.Context(), scenarios.ProvideParams{
					Pair:              args[0],
					Token:             args[1],
					TokenAmount:       args[2],
					NativeDenom:       denom,
					NativeAmount:      args[3],
					SlippageTolerance: slippage,
					Execute:           execute,
				})
				return err
			})
		},
	}
	provide.Flags().String("denom", "", "Native denom of the pair, defaults to the network fee denom")
	provide.Flags().Bool("execute", false, "Submit the provide_liquidity tx instead of a dry run")
	provide.Flags().String("slippage", "", "Slippage tolerance as a decimal, e.g. 0.01")
	command.AddCommand(provide)

	withdraw := &cobra.Command{
		Use:   "withdraw <pair> <token> <amount>",
		Short: "Withdraw liquidity and show token and native balances before and after.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom, _ := cmd.Flags().GetString("denom")

			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.WithdrawLiquidity(cmd.Context(), scenarios.WithdrawParams{
					Pair:        args[0],
					Token:       args[1],
					NativeDenom: denom,
					Amount:      args[2],
				})
				return err
			})
		},
	}
	withdraw.Flags().String("denom", "", "Native denom to report, defaults to the network fee denom")
	command.AddCommand(withdraw)

	return command
}
