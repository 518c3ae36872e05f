package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func FactoryCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "factory",
		Short: "Assets are given as a token address or a native denom.",
	}

	command.AddCommand(&cobra.Command{
		Use:   "config <factory>",
		Short: "Query the factory owner and code ids.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.FactoryConfig(cmd.Context(), args[0])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "pair <factory> <asset> <asset>",
		Short: "Look up the pair of two assets.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				infos, err := parseAssetInfos(args[1], args[2], a.network.AddressPrefix)
				if err != nil {
					return err
				}
				_, err = r.FactoryPair(cmd.Context(), args[0], infos)
				return err
			})
		},
	})

	pairs := &cobra.Command{
		Use:   "pairs <factory>",
		Short: "List registered pairs.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetUint32("limit")

			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.FactoryPairs(cmd.Context(), args[0], limit)
				return err
			})
		},
	}
	pairs.Flags().Uint32("limit", 0, "Max pairs to return")
	command.AddCommand(pairs)

	command.AddCommand(&cobra.Command{
		Use:   "create-pair <factory> <asset> <asset>",
		Short: "Create a pair for two assets.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				infos, err := parseAssetInfos(args[1], args[2], a.network.AddressPrefix)
				if err != nil {
					return err
				}
				_, err = r.CreatePair(cmd.Context(), args[0], infos)
				return err
			})
		},
	})

	addDecimals := &cobra.Command{
		Use:   "add-native-decimals <factory> <denom> <decimals>",
		Short: "Register the decimals of a native denom, sending a deposit of it.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			decimals, err := strconv.ParseUint(args[2], 10, 8)
			if err != nil {
				return errors.Wrapf(chaintypes.ErrConfig, "decimals %q: %v", args[2], err)
			}
			deposit, _ := cmd.Flags().GetString("deposit")

			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.AddNativeTokenDecimals(cmd.Context(), args[0], args[1], uint8(decimals), deposit)
				return err
			})
		},
	}
	addDecimals.Flags().String("deposit", "1", "Amount of the denom sent to the factory")
	command.AddCommand(addDecimals)

	return command
}
