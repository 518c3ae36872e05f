package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig  = "config"
	flagAs      = "as"
	flagVerbose = "verbose"

	identityDeployer = "deployer"
	identityUser     = "user"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dexctl",
		Short:         "Deploy and drive the terraswap contract suite",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a YAML config applied over the bundled one, e.g. ./local.yaml")
	rootCmd.PersistentFlags().String(flagAs, identityDeployer, "Signing identity: deployer (MNEMONIC/PRIVATE_KEY) or user (USER_MNEMONIC/USER_PRIVATE_KEY)")
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "Dump full tx responses")

	_ = viper.BindPFlag(flagConfig, rootCmd.PersistentFlags().Lookup(flagConfig))
	_ = viper.BindPFlag(flagAs, rootCmd.PersistentFlags().Lookup(flagAs))
	_ = viper.BindPFlag(flagVerbose, rootCmd.PersistentFlags().Lookup(flagVerbose))

	rootCmd.AddCommand(DeployCommand())
	rootCmd.AddCommand(TokenCommand())
	rootCmd.AddCommand(PairCommand())
	rootCmd.AddCommand(LiquidityCommand())
	rootCmd.AddCommand(SwapCommand())
	rootCmd.AddCommand(FactoryCommand())
	rootCmd.AddCommand(ContractCommand())
	rootCmd.AddCommand(WalletCommand())
	return rootCmd
}
