package config

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgNetwork contains the name of the parameter that selects the network prefix of printed addresses.
	CfgNetwork = "address.network"
)

func init() {
	flag.String(CfgNetwork, "testnet", "the network of printed addresses (mainnet or testnet)")
}
