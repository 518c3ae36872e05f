// Package wasm drives the CosmWasm module: store code, instantiate, execute
// and smart queries.
package wasm

import (
	"context"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	log "github.com/InjectiveLabs/suplog"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	chainclient "github.com/QuVaultLabs/deployer-go/client/chain"
)

const UploadMemo = "Upload CosmWasm contract"

// Client pairs the signing channel with the read-only QueryClient.
type Client struct {
	*QueryClient

	chain  chainclient.ChainClient
	logger log.Logger
}

func NewClient(cc chainclient.ChainClient, q *QueryClient) *Client {
	return &Client{
		QueryClient: q,
		chain:       cc,
		logger: log.WithFields(log.Fields{
			"module": "deployer-go",
			"svc":    "wasmClient",
		}),
	}
}

// Sender is the bech32 address that signs every tx of this client.
func (c *Client) Sender() string {
	return c.chain.FromAddress().String()
}

func (c *Client) ChainClient() chainclient.ChainClient {
	return c.chain
}

type TxResult struct {
	TxHash    string
	Height    int64
	GasWanted int64
	GasUsed   int64
	Response  *sdk.TxResponse
}

type StoreCodeResult struct {
	TxResult
	CodeID   uint64
	Checksum []byte
}

type InstantiateResult struct {
	TxResult
	ContractAddress string
}

// StoreCode uploads wasm bytecode and returns the code id assigned by the chain.
func (c *Client) StoreCode(ctx context.Context, code []byte) (*StoreCodeResult, error) {
	msg := &wasmtypes.MsgStoreCode{
		Sender:       c.Sender(),
		WASMByteCode: code,
	}

	res, err := c.broadcast(ctx, UploadMemo, msg)
	if err != nil {
		return nil, err
	}

	codeID, checksum, err := ParseStoreCode(res)
	if err != nil {
		return nil, err
	}

	return &StoreCodeResult{
		TxResult: newTxResult(res),
		CodeID:   codeID,
		Checksum: checksum,
	}, nil
}

// Instantiate creates a contract from codeID. initMsg is passed to the
// contract as is, or JSON encoded when it is not raw JSON already.
func (c *Client) Instantiate(
	ctx context.Context,
	codeID uint64,
	initMsg interface{},
	label, admin string,
	funds sdk.Coins,
) (*InstantiateResult, error) {
	bz, err := encodeMsg(initMsg)
	if err != nil {
		return nil, err
	}

	msg := &wasmtypes.MsgInstantiateContract{
		Sender: c.Sender(),
		Admin:  admin,
		CodeID: codeID,
		Label:  label,
		Msg:    bz,
		Funds:  funds,
	}
	if err := msg.Msg.ValidateBasic(); err != nil {
		return nil, errors.Wrapf(chaintypes.ErrConfig, "init msg for %q: %v", label, err)
	}

	res, err := c.broadcast(ctx, "", msg)
	if err != nil {
		return nil, err
	}

	addr, err := ParseContractAddress(res)
	if err != nil {
		return nil, err
	}

	return &InstantiateResult{
		TxResult:        newTxResult(res),
		ContractAddress: addr,
	}, nil
}

// Execute calls contract with msg, attaching funds.
func (c *Client) Execute(ctx context.Context, contract string, msg interface{}, funds sdk.Coins) (*TxResult, error) {
	bz, err := encodeMsg(msg)
	if err != nil {
		return nil, err
	}

	execMsg := &wasmtypes.MsgExecuteContract{
		Sender:   c.Sender(),
		Contract: contract,
		Msg:      bz,
		Funds:    funds,
	}

	res, err := c.broadcast(ctx, "", execMsg)
	if err != nil {
		return nil, err
	}

	result := newTxResult(res)
	return &result, nil
}

func (c *Client) broadcast(ctx context.Context, memo string, msg sdk.Msg) (*sdk.TxResponse, error) {
	res, err := c.chain.SyncBroadcastMsgWithMemo(ctx, memo, msg)
	if err != nil {
		c.logger.WithError(err).Errorln("failed to broadcast", sdk.MsgTypeURL(msg))
		return nil, errors.Wrapf(chaintypes.ErrBroadcast, "%s: %v", sdk.MsgTypeURL(msg), err)
	}
	if res == nil || res.TxResponse == nil {
		return nil, errors.Wrap(chaintypes.ErrResponse, "empty broadcast response")
	}

	if err := CheckTx(res.TxResponse); err != nil {
		c.logger.WithError(err).Errorln("tx failed", res.TxResponse.TxHash)
		return nil, err
	}

	c.logger.Debugln("tx", res.TxResponse.TxHash, "gas used", res.TxResponse.GasUsed, "gas wanted", res.TxResponse.GasWanted)
	return res.TxResponse, nil
}

func newTxResult(res *sdk.TxResponse) TxResult {
	return TxResult{
		TxHash:    res.TxHash,
		Height:    res.Height,
		GasWanted: res.GasWanted,
		GasUsed:   res.GasUsed,
		Response:  res,
	}
}
