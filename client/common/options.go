package common

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
)

type ClientOptions struct {
	GasPrices     string
	GasAdjustment float64
}

type ClientOption func(opts *ClientOptions) error

func DefaultClientOptions() *ClientOptions {
	return &ClientOptions{
		GasAdjustment: 1.4,
	}
}

func OptionGasPrices(gasPrices string) ClientOption {
	return func(opts *ClientOptions) error {
		if _, err := sdk.ParseDecCoins(gasPrices); err != nil {
			err = errors.Wrapf(err, "failed to ParseDecCoins %s", gasPrices)
			return err
		}

		opts.GasPrices = gasPrices
		return nil
	}
}

func OptionGasAdjustment(adjustment float64) ClientOption {
	return func(opts *ClientOptions) error {
		if adjustment <= 0 {
			return errors.Errorf("gas adjustment must be positive, got %v", adjustment)
		}

		opts.GasAdjustment = adjustment
		return nil
	}
}
