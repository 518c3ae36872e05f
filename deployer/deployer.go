// Package deployer uploads and instantiates the contract suite.
package deployer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	log "github.com/InjectiveLabs/suplog"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/wasm"
)

// Uploader is the part of the wasm client the deployer needs.
type Uploader interface {
	StoreCode(ctx context.Context, code []byte) (*wasm.StoreCodeResult, error)
	Instantiate(
		ctx context.Context,
		codeID uint64,
		initMsg interface{},
		label, admin string,
		funds sdk.Coins,
	) (*wasm.InstantiateResult, error)
}

// Record is the outcome of one successful deployment.
type Record struct {
	Target            string
	Label             string
	CodeID            uint64
	ContractAddress   string
	UploadTxHash      string
	InstantiateTxHash string
}

func (r Record) String() string {
	return fmt.Sprintf("{codeId: %d, contractAddress: %s}", r.CodeID, r.ContractAddress)
}

// Deployment describes one contract to upload and instantiate.
type Deployment struct {
	Target   string
	WasmPath string
	InitMsg  string
	Label    string
	Admin    string
}

type Deployer struct {
	chain    Uploader
	journal  *Journal
	resume   bool
	readFile func(path string) ([]byte, error)
	out      io.Writer
	logger   log.Logger
}

type Option func(d *Deployer)

// WithJournal records every upload and instantiation in j.
func WithJournal(j *Journal) Option {
	return func(d *Deployer) {
		d.journal = j
	}
}

// WithResume reuses code ids of journaled uploads that were never
// instantiated instead of uploading the same bytecode again.
func WithResume(resume bool) Option {
	return func(d *Deployer) {
		d.resume = resume
	}
}

func WithOutput(w io.Writer) Option {
	return func(d *Deployer) {
		d.out = w
	}
}

func WithReadFile(fn func(path string) ([]byte, error)) Option {
	return func(d *Deployer) {
		d.readFile = fn
	}
}

func New(chain Uploader, options ...Option) *Deployer {
	d := &Deployer{
		chain:    chain,
		readFile: os.ReadFile,
		out:      os.Stdout,
		logger: log.WithFields(log.Fields{
			"module": "deployer-go",
			"svc":    "deployer",
		}),
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// UploadContract stores the bytecode at path and returns the new code id.
// Identical bytecode is uploaded again on every call.
func (d *Deployer) UploadContract(ctx context.Context, path string) (uint64, error) {
	code, err := d.read(path)
	if err != nil {
		return 0, err
	}

	res, err := d.upload(ctx, code)
	if err != nil {
		return 0, err
	}
	return res.CodeID, nil
}

// InstantiateContract creates a contract from codeID and returns its address.
func (d *Deployer) InstantiateContract(ctx context.Context, codeID uint64, initMsg, label string) (string, error) {
	res, err := d.instantiate(ctx, codeID, initMsg, label, "")
	if err != nil {
		return "", err
	}
	return res.ContractAddress, nil
}

// UploadAndInstantiate uploads then instantiates. It is not transactional: when
// instantiation fails the uploaded code stays on chain and the error is
// returned without a retry.
func (d *Deployer) UploadAndInstantiate(ctx context.Context, path, initMsg, label string) (*Record, error) {
	return d.Deploy(ctx, Deployment{
		WasmPath: path,
		InitMsg:  initMsg,
		Label:    label,
	})
}

// Deploy is UploadAndInstantiate for a full deployment description.
func (d *Deployer) Deploy(ctx context.Context, dep Deployment) (*Record, error) {
	code, err := d.read(dep.WasmPath)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(code)
	wasmHash := hex.EncodeToString(sum[:])

	record := &Record{
		Target: dep.Target,
		Label:  dep.Label,
	}

	entryIdx := -1
	if d.journal != nil && d.resume {
		if idx, ok := d.journal.Resumable(dep.Label, wasmHash); ok {
			entry := d.journal.Entry(idx)
			entryIdx = idx
			record.CodeID = entry.CodeID
			record.UploadTxHash = entry.UploadTx
			fmt.Fprintf(d.out, "Reusing uploaded Code ID: %d\n", entry.CodeID)
		}
	}

	if entryIdx < 0 {
		res, err := d.upload(ctx, code)
		if err != nil {
			return nil, err
		}
		record.CodeID = res.CodeID
		record.UploadTxHash = res.TxHash

		if d.journal != nil {
			entryIdx, err = d.journal.Append(Entry{
				Target:     dep.Target,
				Label:      dep.Label,
				WasmPath:   dep.WasmPath,
				WasmSHA256: wasmHash,
				CodeID:     res.CodeID,
				Status:     StatusUploaded,
				UploadTx:   res.TxHash,
			})
			if err != nil {
				d.logger.WithError(err).Warningln("failed to journal upload of code", res.CodeID)
			}
		}
	}

	res, err := d.instantiate(ctx, record.CodeID, dep.InitMsg, dep.Label, dep.Admin)
	if err != nil {
		d.journalUpdate(entryIdx, func(e *Entry) {
			e.Status = StatusFailed
			e.Error = err.Error()
		})
		return nil, err
	}

	record.ContractAddress = res.ContractAddress
	record.InstantiateTxHash = res.TxHash

	d.journalUpdate(entryIdx, func(e *Entry) {
		e.Status = StatusInstantiated
		e.ContractAddress = res.ContractAddress
		e.InstantiateTx = res.TxHash
		e.Error = ""
	})

	return record, nil
}

func (d *Deployer) read(path string) ([]byte, error) {
	code, err := d.readFile(path)
	if err != nil {
		return nil, errors.Wrapf(chaintypes.ErrReadWasm, "%s: %v", path, err)
	}
	return code, nil
}

func (d *Deployer) upload(ctx context.Context, code []byte) (*wasm.StoreCodeResult, error) {
	fmt.Fprintln(d.out, "Uploading contract...")

	res, err := d.chain.StoreCode(ctx, code)
	if err != nil {
		d.logger.WithError(err).Errorln("failed to upload contract")
		return nil, err
	}

	fmt.Fprintf(d.out, "Contract uploaded with Code ID: %d\n", res.CodeID)
	printReceipt(d.out, res.TxResult)
	return res, nil
}

func (d *Deployer) instantiate(ctx context.Context, codeID uint64, initMsg, label, admin string) (*wasm.InstantiateResult, error) {
	fmt.Fprintln(d.out, "Instantiating contract...")

	res, err := d.chain.Instantiate(ctx, codeID, initMsg, label, admin, nil)
	if err != nil {
		d.logger.WithError(err).Errorln("failed to instantiate code", codeID)
		return nil, err
	}

	fmt.Fprintf(d.out, "Contract instantiated at address: %s\n", res.ContractAddress)
	printReceipt(d.out, res.TxResult)
	return res, nil
}

func (d *Deployer) journalUpdate(idx int, fn func(e *Entry)) {
	if d.journal == nil || idx < 0 {
		return
	}
	if err := d.journal.Update(idx, fn); err != nil {
		d.logger.WithError(err).Warningln("failed to update journal", d.journal.Path())
	}
}

func printReceipt(w io.Writer, res wasm.TxResult) {
	fmt.Fprintf(w, "  tx: %s gas used: %d gas wanted: %d\n", res.TxHash, res.GasUsed, res.GasWanted)
}
