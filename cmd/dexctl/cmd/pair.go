package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/contracts/terraswap"
	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func PairCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "pair",
	}

	command.AddCommand(&cobra.Command{
		Use:   "info <pair>",
		Short: "Query the pair assets and liquidity token.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.Pair(cmd.Context(), args[0])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "pool <pair>",
		Short: "Query the pair reserves.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.Pool(cmd.Context(), args[0])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "simulate <pair> <offer-asset> <amount>",
		Short: "Simulate a swap. offer-asset is a token address or a native denom.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				offer := terraswap.Asset{
					Info:   parseAssetInfo(args[1], a.network.AddressPrefix),
					Amount: args[2],
				}
				_, err := r.SimulateSwap(cmd.Context(), args[0], offer)
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "reverse-simulate <pair> <ask-asset> <amount>",
		Short: "Simulate the offer needed to receive amount of ask-asset.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				ask := terraswap.Asset{
					Info:   parseAssetInfo(args[1], a.network.AddressPrefix),
					Amount: args[2],
				}
				_, err := r.ReverseSimulateSwap(cmd.Context(), args[0], ask)
				return err
			})
		},
	})

	return command
}
