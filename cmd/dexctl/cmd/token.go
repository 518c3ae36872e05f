package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func TokenCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "token",
	}

	command.AddCommand(&cobra.Command{
		Use:   "inspect [token...]",
		Short: "Print token info, wallet balance and marketing info. Defaults to TOKEN_ADDRESS_1..4.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				tokens := args
				if len(tokens) == 0 {
					tokens = a.env.TokenAddresses
				}
				return r.InspectTokens(cmd.Context(), tokens)
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "allowance <token> <owner> <spender>",
		Short: "Query a cw20 allowance.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.Allowance(cmd.Context(), args[0], args[1], args[2])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "increase-allowance <token> <spender> <amount>",
		Short: "Allow spender to move amount of token from the wallet.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.IncreaseAllowance(cmd.Context(), args[0], args[1], args[2])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "decrease-allowance <token> <spender> <amount>",
		Short: "Lower the allowance of spender on token.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.DecreaseAllowance(cmd.Context(), args[0], args[1], args[2])
				return err
			})
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "burn <token> <amount>",
		Short: "Burn amount of token from the wallet.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.Burn(cmd.Context(), args[0], args[1])
				return err
			})
		},
	})

	return command
}
