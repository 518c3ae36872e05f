package deployer

import (
	"context"
	"fmt"
	"io"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/config"
)

type Target string

const (
	TargetCW20    Target = "cw20"
	TargetFactory Target = "factory"
	TargetPair    Target = "pair"
	TargetRouter  Target = "router"
	TargetAll     Target = "all"
)

// DeployOrder is the order used by TargetAll. The pair takes the token code
// id for its LP token, the factory takes the token and pair code ids and the
// router takes the factory address, so each one follows what it refers to.
var DeployOrder = []Target{TargetCW20, TargetPair, TargetFactory, TargetRouter}

var targetTitles = map[Target]string{
	TargetCW20:    "CW20",
	TargetFactory: "Factory",
	TargetPair:    "Pair",
	TargetRouter:  "Router",
}

// ValidTargets lists the selectors in the order shown to users.
func ValidTargets() []string {
	return []string{
		string(TargetCW20),
		string(TargetFactory),
		string(TargetPair),
		string(TargetRouter),
		string(TargetAll),
	}
}

// ParseTarget matches selector case-insensitively against the known targets.
func ParseTarget(selector string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(selector)))
	if t == TargetAll {
		return t, nil
	}
	if _, ok := targetTitles[t]; ok {
		return t, nil
	}
	return "", errors.Wrapf(
		chaintypes.ErrInvalidTarget,
		"invalid deployment target %q, use one of: %s",
		selector, strings.Join(ValidTargets(), ", "),
	)
}

// BalanceQuerier reads native balances.
type BalanceQuerier interface {
	NativeBalance(ctx context.Context, address, denom string) (sdk.Coin, error)
}

// Driver maps a target selector to configured deployments.
type Driver struct {
	deployer  *Deployer
	bank      BalanceQuerier
	contracts map[string]config.Contract
	address   string
	feeDenom  string
	out       io.Writer
}

func NewDriver(
	d *Deployer,
	bank BalanceQuerier,
	contracts map[string]config.Contract,
	address, feeDenom string,
) *Driver {
	return &Driver{
		deployer:  d,
		bank:      bank,
		contracts: contracts,
		address:   address,
		feeDenom:  feeDenom,
		out:       d.out,
	}
}

// Run deploys the selected target, or every target in DeployOrder for "all",
// stopping at the first failure.
func (d *Driver) Run(ctx context.Context, selector string) ([]*Record, error) {
	target, err := ParseTarget(selector)
	if err != nil {
		return nil, err
	}

	targets := []Target{target}
	if target == TargetAll {
		targets = DeployOrder
	}

	for _, t := range targets {
		if _, ok := d.contracts[string(t)]; !ok {
			return nil, errors.Wrapf(chaintypes.ErrConfig, "no contract configured for target %s", t)
		}
	}

	balance, err := d.bank.NativeBalance(ctx, d.address, d.feeDenom)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(d.out, "Wallet address: ", d.address)
	fmt.Fprintln(d.out, "Wallet balance: ", balance.String())

	records := make([]*Record, 0, len(targets))
	deployed := make(map[Target]*Record, len(targets))
	for _, t := range targets {
		contract := d.contracts[string(t)]
		initMsg := contract.InitMsg

		if target == TargetAll {
			fmt.Fprintf(d.out, "\n=== Deploying %s Contract ===\n", targetTitles[t])
			if initMsg, err = linkInitMsg(t, initMsg, deployed); err != nil {
				d.printSummary(records)
				return records, err
			}
		} else {
			fmt.Fprintf(d.out, "\n=== Deploying %s Contract Only ===\n", targetTitles[t])
		}

		record, err := d.deployer.Deploy(ctx, Deployment{
			Target:   string(t),
			WasmPath: contract.WasmPath,
			InitMsg:  initMsg,
			Label:    contract.Label,
			Admin:    contract.Admin,
		})
		if err != nil {
			d.printSummary(records)
			return records, errors.Wrapf(err, "deploy %s", t)
		}
		records = append(records, record)
		deployed[t] = record
	}

	d.printSummary(records)
	return records, nil
}

// linkInitMsg overwrites the fields of a configured init message that refer
// to contracts deployed earlier in the same run. Other fields are kept.
func linkInitMsg(t Target, initMsg string, deployed map[Target]*Record) (string, error) {
	links := map[string]interface{}{}
	switch t {
	case TargetPair:
		links["token_code_id"] = deployed[TargetCW20].CodeID
	case TargetFactory:
		links["token_code_id"] = deployed[TargetCW20].CodeID
		links["pair_code_id"] = deployed[TargetPair].CodeID
	case TargetRouter:
		links["terraswap_factory"] = deployed[TargetFactory].ContractAddress
	default:
		return initMsg, nil
	}

	var msg map[string]json.RawMessage
	if err := json.Unmarshal([]byte(initMsg), &msg); err != nil {
		return "", errors.Wrapf(chaintypes.ErrConfig, "%s init_msg is not a JSON object: %v", t, err)
	}
	if msg == nil {
		msg = make(map[string]json.RawMessage, len(links))
	}
	for field, value := range links {
		raw, err := json.Marshal(value)
		if err != nil {
			return "", errors.Wrapf(err, "encode %s.%s", t, field)
		}
		msg[field] = raw
	}

	linked, err := json.Marshal(msg)
	if err != nil {
		return "", errors.Wrapf(err, "encode %s init_msg", t)
	}
	return string(linked), nil
}

func (d *Driver) printSummary(records []*Record) {
	if len(records) == 0 {
		return
	}

	fmt.Fprintln(d.out, "\n=== Deployment Summary ===")
	for _, r := range records {
		fmt.Fprintf(d.out, "%s Contract: %s\n", targetTitles[Target(r.Target)], r)
	}
}
