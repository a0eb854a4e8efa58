package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/ledgeraddr/packages/address"
	"github.com/iotaledger/ledgeraddr/plugins/config"
	"github.com/iotaledger/ledgeraddr/plugins/logger"
)

var networkFlag = flag.StringP("network", "n", "", "the network of printed addresses (mainnet or testnet), overrides "+config.CfgNetwork)

// errUsage is returned when the command line does not match any command.
var errUsage = errors.New("invalid usage")

func main() {
	flag.Usage = func() {
		printUsage(os.Stderr)
	}

	// check if parameter counts is large enough
	if len(os.Args) < 2 {
		printUsage(os.Stderr, "missing [COMMAND]")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		printUsage(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(command string, arguments []string, out io.Writer) error {
	if err := config.Fetch(arguments, true); err != nil {
		return err
	}
	if err := logger.InitGlobalLogger(config.Node); err != nil {
		return err
	}

	network, err := selectedNetwork()
	if err != nil {
		return err
	}
	args := flag.Args()

	// switch logic according to provided sub command
	switch command {
	case "new-id":
		return execNewIDCommand(args, network, out)
	case "new-secp256k1":
		return execNewSecp256k1Command(args, network, out)
	case "new-actor":
		return execNewActorCommand(args, network, out)
	case "new-bls":
		return execNewBLSCommand(args, network, out)
	case "decode":
		return execDecodeCommand(args, out)
	case "from-bytes":
		return execFromBytesCommand(args, network, out)
	case "cbor":
		return execCBORCommand(args, out)
	case "builtin":
		return execBuiltinCommand(network, out)
	case "register":
		return execRegisterCommand(args, network, out)
	case "resolve":
		return execResolveCommand(args, network, out)
	case "p2p-config":
		return execP2PConfigCommand(out)
	case "help":
		printUsage(out)
		return nil
	default:
		return errors.Wrapf(errUsage, "unknown [COMMAND]: %s", command)
	}
}

func selectedNetwork() (address.Network, error) {
	if *networkFlag != "" {
		return address.NetworkFromName(*networkFlag)
	}

	return address.NetworkFromName(config.Node.GetString(config.CfgNetwork))
}

func printUsage(out io.Writer, optionalErrorMessage ...string) {
	if len(optionalErrorMessage) >= 1 {
		_, _ = fmt.Fprintf(out, "\n")
		_, _ = fmt.Fprintf(out, "ERROR:\n  %s\n", optionalErrorMessage[0])
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "USAGE:")
	_, _ = fmt.Fprintln(out, "  "+filepath.Base(os.Args[0])+" [COMMAND] [ARGUMENTS] [OPTIONS]")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "COMMANDS:")
	_, _ = fmt.Fprintln(out, "  new-id <id>")
	_, _ = fmt.Fprintln(out, "        print the ID address of an actor ID")
	_, _ = fmt.Fprintln(out, "  new-secp256k1 <hex public key>")
	_, _ = fmt.Fprintln(out, "        print the address of a secp256k1 public key")
	_, _ = fmt.Fprintln(out, "  new-actor <hex seed>")
	_, _ = fmt.Fprintln(out, "        print the actor address derived from a seed")
	_, _ = fmt.Fprintln(out, "  new-bls <hex public key>")
	_, _ = fmt.Fprintln(out, "        print the address of a 48 byte BLS public key")
	_, _ = fmt.Fprintln(out, "  decode <address>")
	_, _ = fmt.Fprintln(out, "        validate an address and print its parts")
	_, _ = fmt.Fprintln(out, "  from-bytes <hex>")
	_, _ = fmt.Fprintln(out, "        print the address of a binary representation")
	_, _ = fmt.Fprintln(out, "  cbor <address>")
	_, _ = fmt.Fprintln(out, "        print the CBOR encoding of an address")
	_, _ = fmt.Fprintln(out, "  builtin")
	_, _ = fmt.Fprintln(out, "        list the well-known singleton addresses")
	_, _ = fmt.Fprintln(out, "  register <address>")
	_, _ = fmt.Fprintln(out, "        assign a new ID address to a robust address in the local state")
	_, _ = fmt.Fprintln(out, "  resolve <address>")
	_, _ = fmt.Fprintln(out, "        print the ID address assigned to an address in the local state")
	_, _ = fmt.Fprintln(out, "  p2p-config")
	_, _ = fmt.Fprintln(out, "        print the effective peer discovery configuration")
	_, _ = fmt.Fprintln(out, "  help")
	_, _ = fmt.Fprintln(out, "        display this help screen")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "OPTIONS:")
	_, _ = fmt.Fprintln(out, flag.CommandLine.FlagUsages())
}
