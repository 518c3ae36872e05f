package scenarios

import (
	"context"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
)

// Account is the signing side of the provider: the key address, its cached
// account number and sequence, and its balances.
type Account interface {
	FromAddress() sdk.AccAddress
	GetAccNonce() (accNum uint64, accSeq uint64)
	GetBankBalances(ctx context.Context, address string) (*banktypes.QueryAllBalancesResponse, error)
}

// WalletInfo prints the signing account and every balance it holds.
func (r *Runner) WalletInfo(ctx context.Context, account Account) (sdk.Coins, error) {
	address := account.FromAddress().String()
	accNum, accSeq := account.GetAccNonce()

	res, err := account.GetBankBalances(ctx, address)
	if err != nil {
		return nil, errors.Wrapf(chaintypes.ErrQuery, "balances of %s: %v", address, err)
	}

	fmt.Fprintln(r.out, "Wallet address: ", address)
	fmt.Fprintf(r.out, "Account number: %d sequence: %d\n", accNum, accSeq)
	fmt.Fprintln(r.out, "Balances: ", res.Balances.String())
	return res.Balances, nil
}

// ContractInfo prints the code id, creator, admin and label of contract.
func (r *Runner) ContractInfo(ctx context.Context, contract string) (*wasmtypes.ContractInfo, error) {
	info, err := r.chain.ContractInfo(ctx, contract)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "Contract %s\n", contract)
	fmt.Fprintf(r.out, "  code id: %d\n", info.CodeID)
	fmt.Fprintf(r.out, "  creator: %s\n", info.Creator)
	fmt.Fprintf(r.out, "  admin: %s\n", info.Admin)
	fmt.Fprintf(r.out, "  label: %s\n", info.Label)
	return info, nil
}
