package deployer

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Status string

const (
	StatusUploaded     Status = "uploaded"
	StatusInstantiated Status = "instantiated"
	StatusFailed       Status = "failed"
)

// Entry is one deployment attempt. An entry left in uploaded or failed state
// names a code id that exists on chain without a contract instance.
type Entry struct {
	Target          string `yaml:"target,omitempty"`
	Label           string `yaml:"label"`
	WasmPath        string `yaml:"wasm_path"`
	WasmSHA256      string `yaml:"wasm_sha256"`
	CodeID          uint64 `yaml:"code_id"`
	ContractAddress string `yaml:"contract_address,omitempty"`
	Status          Status `yaml:"status"`
	UploadTx        string `yaml:"upload_tx,omitempty"`
	InstantiateTx   string `yaml:"instantiate_tx,omitempty"`
	Error           string `yaml:"error,omitempty"`
	Time            string `yaml:"time"`
}

// Journal persists deployment attempts as YAML, rewriting the whole file on
// every change.
type Journal struct {
	path string
	mux  sync.Mutex

	Entries []Entry `yaml:"deployments"`
}

// OpenJournal loads the journal at path. A missing file is an empty journal.
func OpenJournal(path string) (*Journal, error) {
	j := &Journal{path: path}

	bz, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return j, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read journal %s", path)
	}

	if err := yaml.Unmarshal(bz, j); err != nil {
		return nil, errors.Wrapf(err, "failed to parse journal %s", path)
	}
	return j, nil
}

func (j *Journal) Path() string {
	return j.path
}

// Append stores e and returns its index.
func (j *Journal) Append(e Entry) (int, error) {
	j.mux.Lock()
	defer j.mux.Unlock()

	e.Time = now()
	j.Entries = append(j.Entries, e)
	return len(j.Entries) - 1, j.save()
}

// Update applies fn to the entry at idx and stores the journal.
func (j *Journal) Update(idx int, fn func(e *Entry)) error {
	j.mux.Lock()
	defer j.mux.Unlock()

	if idx < 0 || idx >= len(j.Entries) {
		return errors.Errorf("journal entry %d out of range", idx)
	}

	fn(&j.Entries[idx])
	j.Entries[idx].Time = now()
	return j.save()
}

// Resumable returns the index of the newest entry for label whose bytecode hash
// matches and which was uploaded but never instantiated.
func (j *Journal) Resumable(label, wasmSHA256 string) (int, bool) {
	j.mux.Lock()
	defer j.mux.Unlock()

	for i := len(j.Entries) - 1; i >= 0; i-- {
		e := j.Entries[i]
		if e.Label != label || e.WasmSHA256 != wasmSHA256 || e.CodeID == 0 {
			continue
		}
		if e.Status == StatusUploaded || e.Status == StatusFailed {
			return i, true
		}
	}
	return -1, false
}

func (j *Journal) Entry(idx int) Entry {
	j.mux.Lock()
	defer j.mux.Unlock()

	return j.Entries[idx]
}

func (j *Journal) save() error {
	bz, err := yaml.Marshal(j)
	if err != nil {
		return errors.Wrap(err, "failed to encode journal")
	}

	if dir := filepath.Dir(j.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create journal dir %s", dir)
		}
	}

	tmp := j.path + ".tmp"
	if err := os.WriteFile(tmp, bz, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write journal %s", tmp)
	}
	return os.Rename(tmp, j.path)
}

var now = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}
