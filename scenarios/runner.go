// Package scenarios holds the scripted interactions with a deployed pair,
// factory and cw20 tokens.
package scenarios

import (
	"context"
	"fmt"
	"io"
	"os"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	log "github.com/InjectiveLabs/suplog"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"

	"github.com/QuVaultLabs/deployer-go/client/wasm"
)

// Chain is the client surface the scenarios run against.
type Chain interface {
	Sender() string
	QuerySmart(ctx context.Context, contract string, query, out interface{}) error
	NativeBalance(ctx context.Context, address, denom string) (sdk.Coin, error)
	Execute(ctx context.Context, contract string, msg interface{}, funds sdk.Coins) (*wasm.TxResult, error)
	ContractInfo(ctx context.Context, contract string) (*wasmtypes.ContractInfo, error)
}

type Runner struct {
	chain    Chain
	feeDenom string
	out      io.Writer
	verbose  bool
	logger   log.Logger
}

type Option func(r *Runner)

func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithVerbose dumps full tx responses after each receipt.
func WithVerbose(verbose bool) Option {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

func NewRunner(chain Chain, feeDenom string, options ...Option) *Runner {
	r := &Runner{
		chain:    chain,
		feeDenom: feeDenom,
		out:      os.Stdout,
		logger: log.WithFields(log.Fields{
			"module": "deployer-go",
			"svc":    "scenarios",
		}),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *Runner) printReceipt(res *wasm.TxResult) {
	fmt.Fprintf(r.out, "Transaction hash: %s\n", res.TxHash)
	fmt.Fprintf(r.out, "Gas used: %d\n", res.GasUsed)
	fmt.Fprintf(r.out, "Gas wanted: %d\n", res.GasWanted)

	if r.verbose && res.Response != nil {
		spew.Fdump(r.out, res.Response)
	}
}

func (r *Runner) printJSON(title string, v interface{}) {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(r.out, "%s: %+v\n", title, v)
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", title, bz)
}
