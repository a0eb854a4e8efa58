package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/ledgeraddr/packages/address"
	"github.com/iotaledger/ledgeraddr/packages/builtin"
	"github.com/iotaledger/ledgeraddr/packages/ipld"
	"github.com/iotaledger/ledgeraddr/packages/p2p"
	"github.com/iotaledger/ledgeraddr/plugins/config"
)

func execNewIDCommand(args []string, network address.Network, out io.Writer) error {
	if err := requireArguments(args, 1); err != nil {
		return err
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return errors.Errorf("invalid ID %q: %w", args[0], err)
	}

	_, err = fmt.Fprintln(out, address.NewIDAddress(id).Format(network))

	return err
}

func execNewSecp256k1Command(args []string, network address.Network, out io.Writer) error {
	publicKey, err := hexArgument(args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, address.NewSecp256k1Address(publicKey).Format(network))

	return err
}

func execNewActorCommand(args []string, network address.Network, out io.Writer) error {
	seed, err := hexArgument(args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, address.NewActorAddress(seed).Format(network))

	return err
}

func execNewBLSCommand(args []string, network address.Network, out io.Writer) error {
	publicKey, err := hexArgument(args)
	if err != nil {
		return err
	}

	blsAddress, err := address.NewBLSAddress(publicKey)
	if err != nil {
		return errors.Errorf("invalid BLS public key: %w", err)
	}

	_, err = fmt.Fprintln(out, blsAddress.Format(network))

	return err
}

func execDecodeCommand(args []string, out io.Writer) error {
	if err := requireArguments(args, 1); err != nil {
		return err
	}

	decoded, err := address.NewFromString(args[0])
	if err != nil {
		return errors.Errorf("invalid address %q: %w", args[0], err)
	}
	network, err := address.NetworkFromString(args[0])
	if err != nil {
		return err
	}

	return printAddress(out, decoded, network)
}

func execFromBytesCommand(args []string, network address.Network, out io.Writer) error {
	raw, err := hexArgument(args)
	if err != nil {
		return err
	}

	decoded, err := address.NewFromBytes(raw)
	if err != nil {
		return errors.Errorf("invalid address bytes %x: %w", raw, err)
	}

	return printAddress(out, decoded, network)
}

func execCBORCommand(args []string, out io.Writer) error {
	if err := requireArguments(args, 1); err != nil {
		return err
	}

	decoded, err := address.NewFromString(args[0])
	if err != nil {
		return errors.Errorf("invalid address %q: %w", args[0], err)
	}

	encoded, err := decoded.MarshalCBOR()
	if err != nil {
		return err
	}
	contentID, err := ipld.Sum(ipld.FromAddress(decoded))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "cbor:\t%s\n", hex.EncodeToString(encoded))
	_, _ = fmt.Fprintf(w, "cid:\t%s\n", contentID)

	return w.Flush()
}

func execBuiltinCommand(network address.Network, out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "%s\t%s\n", "ADDRESS", "NAME")
	for _, singleton := range builtin.All() {
		name, _ := builtin.Name(singleton)
		_, _ = fmt.Fprintf(w, "%s\t%s\n", singleton.Format(network), name)
	}

	return w.Flush()
}

func execP2PConfigCommand(out io.Writer) error {
	libp2pConfig, err := p2p.NewLibp2pConfig(config.Node)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, libp2pConfig)

	return err
}

func printAddress(out io.Writer, decoded address.Address, network address.Network) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "address:\t%s\n", decoded.Format(network))
	_, _ = fmt.Fprintf(w, "network:\t%s\n", network)
	_, _ = fmt.Fprintf(w, "protocol:\t%s\n", decoded.Protocol())
	_, _ = fmt.Fprintf(w, "payload:\t%s\n", hex.EncodeToString(decoded.Payload()))
	_, _ = fmt.Fprintf(w, "bytes:\t%s\n", hex.EncodeToString(decoded.Bytes()))
	if id, err := address.IDFromAddress(decoded); err == nil {
		_, _ = fmt.Fprintf(w, "id:\t%d\n", id)
	}
	if name, exists := builtin.Name(decoded); exists {
		_, _ = fmt.Fprintf(w, "builtin:\t%s\n", name)
	}

	return w.Flush()
}

func requireArguments(args []string, count int) error {
	if len(args) != count {
		return errors.Wrapf(errUsage, "expected %d argument(s) but got %d", count, len(args))
	}

	return nil
}

func hexArgument(args []string) ([]byte, error) {
	if err := requireArguments(args, 1); err != nil {
		return nil, err
	}

	data, err := hex.DecodeString(args[0])
	if err != nil {
		return nil, errors.Errorf("invalid hex argument %q: %w", args[0], err)
	}

	return data, nil
}
