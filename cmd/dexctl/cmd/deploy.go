package cmd

import (
	"github.com/spf13/cobra"

	"github.com/QuVaultLabs/deployer-go/deployer"
)

func DeployCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "deploy <cw20|factory|pair|router|all>",
		Short: "Upload and instantiate one contract, or the linked suite.",
		Long: `Upload and instantiate one contract from its configured init_msg.

With "all" the contracts are deployed as one suite in the order cw20, pair,
factory, router. token_code_id of the pair and the factory is set to the cw20
code id, pair_code_id of the factory to the pair code id, and
terraswap_factory of the router to the factory address. Other init_msg fields
are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := deployer.ParseTarget(args[0]); err != nil {
				return err
			}

			a, err := loadApp()
			if err != nil {
				return err
			}
			if err := a.env.RequireDeployer(); err != nil {
				return err
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			defer a.close()

			client, err := a.provider.Wasm()
			if err != nil {
				return err
			}
			address, err := a.provider.WalletAddress()
			if err != nil {
				return err
			}

			resume, _ := cmd.Flags().GetBool("resume")
			options := []deployer.Option{
				deployer.WithOutput(cmd.OutOrStdout()),
				deployer.WithResume(resume),
			}
			if a.cfg.Journal != "" {
				journal, err := deployer.OpenJournal(a.cfg.Journal)
				if err != nil {
					return err
				}
				options = append(options, deployer.WithJournal(journal))
			}

			driver := deployer.NewDriver(deployer.New(client, options...), client, a.cfg.Contracts, address, a.network.FeeDenom)
			_, err = driver.Run(cmd.Context(), args[0])
			return err
		},
	}

	command.Flags().Bool("resume", false, "Instantiate journaled uploads of identical bytecode instead of uploading again")
	return command
}
