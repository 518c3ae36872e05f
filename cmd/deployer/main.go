package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	log "github.com/InjectiveLabs/suplog"

	"github.com/QuVaultLabs/deployer-go/client/provider"
	"github.com/QuVaultLabs/deployer-go/config"
	"github.com/QuVaultLabs/deployer-go/deployer"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var selector string
	if len(args) > 0 {
		selector = args[0]
	}

	if _, err := deployer.ParseTarget(selector); err != nil {
		fmt.Fprintf(stderr, "Invalid deployment target. Use one of: %s\n", strings.Join(deployer.ValidTargets(), ", "))
		return 1
	}

	env := config.LoadEnv()
	if err := env.RequireDeployer(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	network := cfg.Network.ToNetwork()
	p := provider.New(network)
	if err := p.Initialize(ctx, env.Credentials()); err != nil {
		log.WithError(err).Errorln("failed to initialize clients")
		fmt.Fprintln(stderr, "Deployment failed:", err)
		return 1
	}
	defer p.Close()

	client, err := p.Wasm()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	address, err := p.WalletAddress()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	options := []deployer.Option{deployer.WithOutput(stdout)}
	if cfg.Journal != "" {
		journal, err := deployer.OpenJournal(cfg.Journal)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		options = append(options, deployer.WithJournal(journal))
	}

	driver := deployer.NewDriver(deployer.New(client, options...), client, cfg.Contracts, address, network.FeeDenom)
	if _, err := driver.Run(ctx, selector); err != nil {
		log.WithError(err).Errorln("deployment failed")
		fmt.Fprintln(stderr, "Deployment failed:", err)
		return 1
	}

	return 0
}
