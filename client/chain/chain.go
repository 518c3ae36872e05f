package chain

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	log "github.com/InjectiveLabs/suplog"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtx "github.com/cosmos/cosmos-sdk/x/auth/tx"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/QuVaultLabs/deployer-go/client/common"
)

const (
	defaultBroadcastStatusPoll = 100 * time.Millisecond
	defaultBroadcastTimeout    = 40 * time.Second
)

var (
	ErrTimedOut = errors.New("tx timed out")
	ErrReadOnly = errors.New("client is in read-only mode")
)

type ChainClient interface {
	CanSignTransactions() bool
	FromAddress() sdk.AccAddress
	ClientContext() client.Context
	GetAccNonce() (accNum uint64, accSeq uint64)

	SyncBroadcastMsg(ctx context.Context, msgs ...sdk.Msg) (*txtypes.BroadcastTxResponse, error)
	SyncBroadcastMsgWithMemo(ctx context.Context, memo string, msgs ...sdk.Msg) (*txtypes.BroadcastTxResponse, error)

	GetBankBalances(ctx context.Context, address string) (*banktypes.QueryAllBalancesResponse, error)

	Close()
}

type chainClient struct {
	ctx       client.Context
	opts      *common.ClientOptions
	logger    log.Logger
	conn      *grpc.ClientConn
	txFactory tx.Factory

	syncMux *sync.Mutex

	accNum    uint64
	accSeq    uint64
	gasWanted uint64

	txClient        txtypes.ServiceClient
	bankQueryClient banktypes.QueryClient

	canSign bool
}

// NewChainClient builds the signing channel on top of ctx. Queries and broadcasts go
// through ctx itself, which routes them to the gRPC connection when one is set and to
// the Tendermint RPC client otherwise.
func NewChainClient(
	ctx client.Context,
	options ...common.ClientOption,
) (ChainClient, error) {
	// process options
	opts := common.DefaultClientOptions()
	for _, opt := range options {
		if err := opt(opts); err != nil {
			err = errors.Wrap(err, "error in client option")
			return nil, err
		}
	}

	// init tx factory
	txFactory := NewTxFactory(ctx, opts.GasAdjustment)
	if len(opts.GasPrices) > 0 {
		txFactory = txFactory.WithGasPrices(opts.GasPrices)
	}

	// build client
	cc := &chainClient{
		ctx:  ctx,
		opts: opts,
		conn: ctx.GRPCClient,

		logger: log.WithFields(log.Fields{
			"module": "deployer-go",
			"svc":    "chainClient",
		}),
		txFactory: txFactory,
		canSign:   ctx.Keyring != nil,
		syncMux:   new(sync.Mutex),

		txClient:        txtypes.NewServiceClient(ctx),
		bankQueryClient: banktypes.NewQueryClient(ctx),
	}

	if cc.canSign {
		var err error
		cc.accNum, cc.accSeq, err = cc.txFactory.AccountRetriever().GetAccountNumberSequence(ctx, ctx.GetFromAddress())
		if err != nil {
			err = errors.Wrap(err, "failed to get initial account num and seq")
			return nil, err
		}
	}

	return cc, nil
}

func (c *chainClient) syncNonce() {
	num, seq, err := c.txFactory.AccountRetriever().GetAccountNumberSequence(c.ctx, c.ctx.GetFromAddress())
	if err != nil {
		c.logger.WithError(err).Errorln("failed to get account seq")
		return
	} else if num != c.accNum {
		c.logger.WithFields(log.Fields{
			"expected": c.accNum,
			"actual":   num,
		}).Panic("account number changed during nonce sync")
	}

	c.accSeq = seq
}

// prepareFactory ensures the account defined by ctx.GetFromAddress() exists and
// if the account number and/or the account sequence number are zero (not set),
// they will be queried for and set on the provided Factory. A new Factory with
// the updated fields will be returned.
func (c *chainClient) prepareFactory(clientCtx client.Context, txf tx.Factory) (tx.Factory, error) {
	from := clientCtx.GetFromAddress()

	if err := txf.AccountRetriever().EnsureExists(clientCtx, from); err != nil {
		return txf, err
	}

	initNum, initSeq := txf.AccountNumber(), txf.Sequence()
	if initNum == 0 || initSeq == 0 {
		num, seq, err := txf.AccountRetriever().GetAccountNumberSequence(clientCtx, from)
		if err != nil {
			return txf, err
		}

		if initNum == 0 {
			txf = txf.WithAccountNumber(num)
		}

		if initSeq == 0 {
			txf = txf.WithSequence(seq)
		}
	}

	return txf, nil
}

func (c *chainClient) GetAccNonce() (accNum uint64, accSeq uint64) {
	return c.accNum, c.accSeq
}

func (c *chainClient) ClientContext() client.Context {
	return c.ctx
}

func (c *chainClient) CanSignTransactions() bool {
	return c.canSign
}

func (c *chainClient) FromAddress() sdk.AccAddress {
	if !c.canSign {
		return sdk.AccAddress{}
	}

	return c.ctx.FromAddress
}

func (c *chainClient) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

func (c *chainClient) GetBankBalances(ctx context.Context, address string) (*banktypes.QueryAllBalancesResponse, error) {
	req := &banktypes.QueryAllBalancesRequest{
		Address: address,
	}
	return c.bankQueryClient.AllBalances(ctx, req)
}

// SyncBroadcastMsg sends Tx to chain and waits until Tx is included in block.
func (c *chainClient) SyncBroadcastMsg(ctx context.Context, msgs ...sdk.Msg) (*txtypes.BroadcastTxResponse, error) {
	return c.SyncBroadcastMsgWithMemo(ctx, "", msgs...)
}

// SyncBroadcastMsgWithMemo is SyncBroadcastMsg with a tx memo.
func (c *chainClient) SyncBroadcastMsgWithMemo(ctx context.Context, memo string, msgs ...sdk.Msg) (*txtypes.BroadcastTxResponse, error) {
	if !c.canSign {
		return nil, ErrReadOnly
	}

	c.syncMux.Lock()
	defer c.syncMux.Unlock()

	txf := c.txFactory.WithMemo(memo)
	txf = txf.WithSequence(c.accSeq)
	txf = txf.WithAccountNumber(c.accNum)
	res, err := c.broadcastTx(ctx, txf, true, msgs...)

	if err != nil {
		if strings.Contains(err.Error(), "account sequence mismatch") {
			c.syncNonce()
			txf = txf.WithSequence(c.accSeq)
			txf = txf.WithAccountNumber(c.accNum)
			log.Debugln("retrying broadcastTx with nonce", c.accSeq)
			res, err = c.broadcastTx(ctx, txf, true, msgs...)
		}
		if err != nil {
			resJSON, _ := json.MarshalIndent(res, "", "\t")
			c.logger.WithField("size", len(msgs)).WithError(err).Errorln("failed to commit msg batch:", string(resJSON))
			return nil, err
		}
	}

	c.accSeq++
	log.Debugln("nonce incremented to", c.accSeq)
	log.Debugln("gas wanted: ", c.gasWanted)
	log.Debugln("gas used: ", res.TxResponse.GasUsed)

	return res, nil
}

func (c *chainClient) broadcastTx(
	ctx context.Context,
	txf tx.Factory,
	await bool,
	msgs ...sdk.Msg,
) (*txtypes.BroadcastTxResponse, error) {
	clientCtx := c.ctx
	txf, err := c.prepareFactory(clientCtx, txf)
	if err != nil {
		err = errors.Wrap(err, "failed to prepareFactory")
		return nil, err
	}

	if clientCtx.Simulate {
		simTxBytes, err := txf.BuildSimTx(msgs...)
		if err != nil {
			err = errors.Wrap(err, "failed to build sim tx bytes")
			return nil, err
		}
		simRes, err := c.txClient.Simulate(ctx, &txtypes.SimulateRequest{TxBytes: simTxBytes})
		if err != nil {
			err = errors.Wrap(err, "failed to CalculateGas")
			return nil, err
		}

		adjustedGas := uint64(txf.GasAdjustment() * float64(simRes.GasInfo.GasUsed))
		txf = txf.WithGas(adjustedGas)

		c.gasWanted = adjustedGas
	}

	txn, err := txf.BuildUnsignedTx(msgs...)
	if err != nil {
		err = errors.Wrap(err, "failed to BuildUnsignedTx")
		return nil, err
	}

	txn.SetFeeGranter(clientCtx.GetFeeGranterAddress())
	err = tx.Sign(ctx, txf, clientCtx.GetFromName(), txn, true)
	if err != nil {
		err = errors.Wrap(err, "failed to Sign Tx")
		return nil, err
	}

	txBytes, err := clientCtx.TxConfig.TxEncoder()(txn.GetTx())
	if err != nil {
		err = errors.Wrap(err, "failed TxEncoder to encode Tx")
		return nil, err
	}

	req := txtypes.BroadcastTxRequest{
		TxBytes: txBytes,
		Mode:    txtypes.BroadcastMode_BROADCAST_MODE_SYNC,
	}
	res, err := c.txClient.BroadcastTx(ctx, &req)
	if err != nil || res.TxResponse.Code != 0 || !await {
		return res, err
	}

	return c.awaitTx(ctx, res)
}

// awaitTx polls the node until the broadcast tx lands in a block or the broadcast
// timeout expires.
func (c *chainClient) awaitTx(ctx context.Context, res *txtypes.BroadcastTxResponse) (*txtypes.BroadcastTxResponse, error) {
	awaitCtx, cancelFn := context.WithTimeout(ctx, defaultBroadcastTimeout)
	defer cancelFn()

	t := time.NewTimer(defaultBroadcastStatusPoll)

	for {
		select {
		case <-awaitCtx.Done():
			err := errors.Wrapf(ErrTimedOut, "%s", res.TxResponse.TxHash)
			t.Stop()
			return nil, err
		case <-t.C:
			resultTx, err := authtx.QueryTx(c.ctx.WithCmdContext(awaitCtx), res.TxResponse.TxHash)
			if err != nil {
				t.Reset(defaultBroadcastStatusPoll)
				continue
			} else if resultTx.Height > 0 {
				t.Stop()
				return &txtypes.BroadcastTxResponse{TxResponse: resultTx}, nil
			}

			t.Reset(defaultBroadcastStatusPoll)
		}
	}
}
