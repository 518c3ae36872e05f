package types

import (
	"cosmossdk.io/errors"
)

const (
	// RootCodespace is the codespace for all errors defined in this package
	RootCodespace = "deployer"
)

// NOTE: We can't use 1 since that error code is reserved for internal errors.

var (
	// ErrConfig covers missing credentials, missing environment values and bad config files.
	ErrConfig = errors.Register(RootCodespace, 2, "configuration error")
	// ErrUninitialized is returned when a client handle is requested before Initialize.
	ErrUninitialized = errors.Register(RootCodespace, 3, "client not initialized")
	// ErrInvalidTarget is returned for an unknown deployment target selector.
	ErrInvalidTarget = errors.Register(RootCodespace, 4, "invalid deployment target")
	// ErrReadWasm is returned when contract bytecode cannot be read.
	ErrReadWasm = errors.Register(RootCodespace, 5, "cannot read wasm bytecode")
	// ErrBroadcast wraps transport failures while simulating or broadcasting a tx.
	ErrBroadcast = errors.Register(RootCodespace, 6, "broadcast failed")
	// ErrQuery wraps smart query and bank query failures.
	ErrQuery = errors.Register(RootCodespace, 7, "query failed")
	// ErrTxFailed is returned when the chain includes a tx with a non-zero code.
	ErrTxFailed = errors.Register(RootCodespace, 8, "transaction failed")
	// ErrResponse is returned when a tx or query response cannot be decoded.
	ErrResponse = errors.Register(RootCodespace, 9, "unexpected response")
	// ErrInvalidAmount is returned for amounts that are not non-negative decimal integers.
	ErrInvalidAmount = errors.Register(RootCodespace, 10, "invalid amount")
)
