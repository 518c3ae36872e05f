package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	chaintypes "github.com/QuVaultLabs/deployer-go/chain/types"
	"github.com/QuVaultLabs/deployer-go/client/wallet"
)

const (
	EnvMnemonic        = "MNEMONIC"
	EnvPrivateKey      = "PRIVATE_KEY"
	EnvAdminAddress    = "ADMIN_ADDRESS"
	EnvMerchantAddress = "MERCHANT_ADDRESS"
	EnvUserMnemonic    = "USER_MNEMONIC"
	EnvUserPrivateKey  = "USER_PRIVATE_KEY"
	EnvConfigPath      = "DEPLOYER_CONFIG"

	// MaxTokenAddresses is the number of TOKEN_ADDRESS_<n> variables read.
	MaxTokenAddresses = 4
)

type Env struct {
	Mnemonic        string
	PrivateKey      string
	AdminAddress    string
	MerchantAddress string
	UserMnemonic    string
	UserPrivateKey  string
	ConfigPath      string

	// TokenAddresses keeps the TOKEN_ADDRESS_1..4 order; unset entries are empty.
	TokenAddresses []string
}

// LoadEnv reads the process environment after loading files (".env" when
// none are given) without overriding variables that are already set.
func LoadEnv(files ...string) *Env {
	_ = godotenv.Load(files...) // best-effort

	v := viper.New()
	v.AutomaticEnv()

	env := &Env{
		Mnemonic:        v.GetString(EnvMnemonic),
		PrivateKey:      v.GetString(EnvPrivateKey),
		AdminAddress:    v.GetString(EnvAdminAddress),
		MerchantAddress: v.GetString(EnvMerchantAddress),
		UserMnemonic:    v.GetString(EnvUserMnemonic),
		UserPrivateKey:  v.GetString(EnvUserPrivateKey),
		ConfigPath:      v.GetString(EnvConfigPath),
		TokenAddresses:  make([]string, MaxTokenAddresses),
	}
	for i := range env.TokenAddresses {
		env.TokenAddresses[i] = v.GetString(fmt.Sprintf("TOKEN_ADDRESS_%d", i+1))
	}

	return env
}

// Credentials are the deployer credentials. The wallet prefers the private key.
func (e *Env) Credentials() wallet.Credentials {
	return wallet.Credentials{
		Mnemonic:   e.Mnemonic,
		PrivateKey: e.PrivateKey,
	}
}

// UserCredentials are the secondary account credentials used by scenarios.
func (e *Env) UserCredentials() wallet.Credentials {
	return wallet.Credentials{
		Mnemonic:   e.UserMnemonic,
		PrivateKey: e.UserPrivateKey,
	}
}

// RequireDeployer checks the variables the deploy flow needs are present.
func (e *Env) RequireDeployer() error {
	if e.Credentials().IsEmpty() {
		return errors.Wrapf(chaintypes.ErrConfig, "%s or %s environment variable is required", EnvMnemonic, EnvPrivateKey)
	}
	if e.AdminAddress == "" || e.MerchantAddress == "" {
		return errors.Wrapf(chaintypes.ErrConfig, "%s && %s are required in .env", EnvAdminAddress, EnvMerchantAddress)
	}
	return nil
}
