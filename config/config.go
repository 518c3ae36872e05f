// Package config loads the bundled deployment configuration and the
// credentials taken from the environment.
package config

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/common"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Network   NetworkConfig       `yaml:"network"`
	Journal   string              `yaml:"journal"`
	Contracts map[string]Contract `yaml:"contracts"`
}

// NetworkConfig starts from a named preset; every non-empty field overrides
// the preset value.
type NetworkConfig struct {
	Preset        string  `yaml:"preset"`
	RPC           string  `yaml:"rpc"`
	GRPC          string  `yaml:"grpc"`
	ChainID       string  `yaml:"chain_id"`
	AddressPrefix string  `yaml:"address_prefix"`
	GasPrices     string  `yaml:"gas_prices"`
	FeeDenom      string  `yaml:"fee_denom"`
	GasAdjustment float64 `yaml:"gas_adjustment"`
}

type Contract struct {
	WasmPath string `yaml:"wasm_path"`
	InitMsg  string `yaml:"init_msg"`
	Label    string `yaml:"label"`
	Admin    string `yaml:"admin"`
}

// Default returns the bundled configuration.
func Default() (*Config, error) {
	cfg := new(Config)
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, errors.Wrap(chaintypes.ErrConfig, err.Error())
	}
	return cfg, nil
}

// Load reads path on top of the bundled configuration. An empty path yields
// the bundled configuration unchanged. Contract entries are merged field by
// field, so an override may set only the fields it changes.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		bz, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(chaintypes.ErrConfig, "read config %s: %v", path, err)
		}

		defaults := cfg.Contracts
		cfg.Contracts = nil
		if err := yaml.Unmarshal(bz, cfg); err != nil {
			return nil, errors.Wrapf(chaintypes.ErrConfig, "parse config %s: %v", path, err)
		}
		cfg.Contracts = mergeContracts(defaults, cfg.Contracts)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeContracts(base, overrides map[string]Contract) map[string]Contract {
	merged := make(map[string]Contract, len(base)+len(overrides))
	for name, contract := range base {
		merged[name] = contract
	}

	for name, override := range overrides {
		contract := merged[name]
		if override.WasmPath != "" {
			contract.WasmPath = override.WasmPath
		}
		if override.InitMsg != "" {
			contract.InitMsg = override.InitMsg
		}
		if override.Label != "" {
			contract.Label = override.Label
		}
		if override.Admin != "" {
			contract.Admin = override.Admin
		}
		merged[name] = contract
	}

	return merged
}

func (c *Config) Validate() error {
	if c.Network.RPC == "" && common.LoadNetwork(c.Network.Preset).TmEndpoint == "" {
		return errors.Wrap(chaintypes.ErrConfig, "network rpc endpoint is empty")
	}

	for name, contract := range c.Contracts {
		if contract.WasmPath == "" {
			return errors.Wrapf(chaintypes.ErrConfig, "contract %s: wasm_path is empty", name)
		}
		if contract.Label == "" {
			return errors.Wrapf(chaintypes.ErrConfig, "contract %s: label is empty", name)
		}
		if !json.Valid([]byte(contract.InitMsg)) {
			return errors.Wrapf(chaintypes.ErrConfig, "contract %s: init_msg is not valid JSON", name)
		}
	}

	return nil
}

// Contract looks a target up by case-insensitive name.
func (c *Config) Contract(name string) (Contract, bool) {
	contract, ok := c.Contracts[strings.ToLower(name)]
	return contract, ok
}

func (c *Config) ContractNames() []string {
	names := make([]string, 0, len(c.Contracts))
	for name := range c.Contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToNetwork resolves the preset and applies the overrides.
func (n NetworkConfig) ToNetwork() common.Network {
	network := common.LoadNetwork(n.Preset)
	if network.Name == "" {
		network.Name = n.Preset
	}

	if n.RPC != "" {
		network.TmEndpoint = n.RPC
	}
	if n.GRPC != "" {
		network.ChainGrpcEndpoint = n.GRPC
	}
	if n.ChainID != "" {
		network.ChainId = n.ChainID
	}
	if n.AddressPrefix != "" {
		network.AddressPrefix = n.AddressPrefix
	}
	if n.GasPrices != "" {
		network.GasPrices = n.GasPrices
	}
	if n.FeeDenom != "" {
		network.FeeDenom = n.FeeDenom
	}
	if n.GasAdjustment > 0 {
		network.GasAdjustment = n.GasAdjustment
	}
	if network.AddressPrefix == "" {
		network.AddressPrefix = chaintypes.DefaultAddressPrefix
	}

	return network
}
