package common

import (
	"strings"
)

type Network struct {
	TmEndpoint        string
	ChainGrpcEndpoint string
	ChainId           string
	Name              string
	AddressPrefix     string
	GasPrices         string
	FeeDenom          string
	GasAdjustment     float64
}

// LoadNetwork returns a known network preset. ChainId may be left empty, in which
// case it is read from the node status when connecting.
func LoadNetwork(name string) Network {
	switch strings.ToLower(name) {
	case "local":
		return Network{
			TmEndpoint:    "http://localhost:26657",
			Name:          "local",
			AddressPrefix: "mantra",
			GasPrices:     "0.01uom",
			FeeDenom:      "uom",
			GasAdjustment: 1.4,
		}

	case "dukong":
		return Network{
			TmEndpoint:    "https://rpc.dukong.mantrachain.io",
			Name:          "dukong",
			AddressPrefix: "mantra",
			GasPrices:     "0.01uom",
			FeeDenom:      "uom",
			GasAdjustment: 1.4,
		}
	}

	return Network{}
}

// ProtocolAndAddress splits an address into the protocol and address components.
// For instance, "tcp://127.0.0.1:8080" will be split into "tcp" and "127.0.0.1:8080".
// If the address has no protocol prefix, the default is "tcp".
func ProtocolAndAddress(listenAddr string) (string, string) {
	protocol, address := "tcp", listenAddr
	parts := strings.SplitN(address, "://", 2)
	if len(parts) == 2 {
		protocol, address = parts[0], parts[1]
	}
	return protocol, address
}
