package wasm

import (
	"context"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
)

// QueryClient is the read-only channel: contract smart queries and bank
// balances. It never holds key material.
type QueryClient struct {
	wasmQuery wasmtypes.QueryClient
	bankQuery banktypes.QueryClient
}

// NewQueryClient wraps conn, usually a keyless client.Context.
func NewQueryClient(conn gogogrpc.ClientConn) *QueryClient {
	return &QueryClient{
		wasmQuery: wasmtypes.NewQueryClient(conn),
		bankQuery: banktypes.NewQueryClient(conn),
	}
}

// QuerySmart sends query as JSON to the contract and decodes the reply into
// out. A nil out discards the reply.
func (q *QueryClient) QuerySmart(ctx context.Context, contract string, query, out interface{}) error {
	bz, err := encodeMsg(query)
	if err != nil {
		return err
	}

	res, err := q.wasmQuery.SmartContractState(ctx, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contract,
		QueryData: bz,
	})
	if err != nil {
		return errors.Wrapf(chaintypes.ErrQuery, "smart query %s on %s: %v", bz, contract, err)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(res.Data, out); err != nil {
		return errors.Wrapf(chaintypes.ErrResponse, "decode smart query reply from %s: %v", contract, err)
	}

	return nil
}

// SmartQuerier runs contract smart queries. *QueryClient and *Client both
// implement it.
type SmartQuerier interface {
	QuerySmart(ctx context.Context, contract string, query, out interface{}) error
}

// Query is QuerySmart with the reply type as a type parameter.
func Query[T any](ctx context.Context, q SmartQuerier, contract string, query interface{}) (*T, error) {
	out := new(T)
	if err := q.QuerySmart(ctx, contract, query, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (q *QueryClient) ContractInfo(ctx context.Context, contract string) (*wasmtypes.ContractInfo, error) {
	res, err := q.wasmQuery.ContractInfo(ctx, &wasmtypes.QueryContractInfoRequest{Address: contract})
	if err != nil {
		return nil, errors.Wrapf(chaintypes.ErrQuery, "contract info of %s: %v", contract, err)
	}
	return &res.ContractInfo, nil
}

func (q *QueryClient) NativeBalance(ctx context.Context, address, denom string) (sdk.Coin, error) {
	res, err := q.bankQuery.Balance(ctx, &banktypes.QueryBalanceRequest{
		Address: address,
		Denom:   denom,
	})
	if err != nil {
		return sdk.Coin{}, errors.Wrapf(chaintypes.ErrQuery, "balance of %s in %s: %v", address, denom, err)
	}
	if res.Balance == nil {
		return sdk.NewInt64Coin(denom, 0), nil
	}
	return *res.Balance, nil
}

// encodeMsg passes raw JSON through and marshals everything else.
func encodeMsg(msg interface{}) ([]byte, error) {
	switch m := msg.(type) {
	case []byte:
		return m, nil
	case json.RawMessage:
		return m, nil
	case string:
		return []byte(m), nil
	case interface{ Marshal() ([]byte, error) }:
		return m.Marshal()
	}

	bz, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode contract message")
	}
	return bz, nil
}
