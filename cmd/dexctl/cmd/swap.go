package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func SwapCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "swap",
	}

	native := &cobra.Command{
		Use:   "native <pair> <amount>",
		Short: "Offer a native amount to the pair.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom, _ := cmd.Flags().GetString("denom")
			beliefPrice, _ := cmd.Flags().GetString("belief-price")
			maxSpread, _ := cmd.Flags().GetString("max-spread")

			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				if denom == "" {
					denom = a.network.FeeDenom
				}
				_, err := r.SwapNative(cmd.Context(), scenarios.SwapParams{
					Pair:        args[0],
					Denom:       denom,
					Amount:      args[1],
					BeliefPrice: beliefPrice,
					MaxSpread:   maxSpread,
				})
				return err
			})
		},
	}
	native.Flags().String("denom", "", "Offered denom, defaults to the network fee denom")
	native.Flags().String("belief-price", "", "Belief price as a decimal")
	native.Flags().String("max-spread", "", "Max spread as a decimal")
	command.AddCommand(native)

	command.AddCommand(&cobra.Command{
		Use:   "token <pair> <token> <amount>",
		Short: "Offer a cw20 amount to the pair through cw20 send.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.SwapToken(cmd.Context(), scenarios.TokenSwapParams{
					Pair:   args[0],
					Token:  args[1],
					Amount: args[2],
				})
				return err
			})
		},
	})

	return command
}
