package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/scenarios"
)

func WalletCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "wallet",
		Short: "Print the wallet address, account sequence and balances.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(a *app, r *scenarios.Runner) error {
				signing, err := a.provider.SigningClient()
				if err != nil {
					return err
				}
				_, err = r.WalletInfo(cmd.Context(), signing)
				return err
			})
		},
	}
}

func ContractCommand() *cobra.Command {
	command := &cobra.Command{
		Use: "contract",
	}

	command.AddCommand(&cobra.Command{
		Use:   "info <contract>",
		Short: "Query the code id, creator, admin and label of a contract.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(cmd.Context(), cmd.OutOrStdout(), func(_ *app, r *scenarios.Runner) error {
				_, err := r.ContractInfo(cmd.Context(), args[0])
				return err
			})
		},
	})

	return command
}
