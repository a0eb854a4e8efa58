package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/ledgeraddr/packages/address"
	"github.com/iotaledger/ledgeraddr/packages/database"
	"github.com/iotaledger/ledgeraddr/packages/state"
	"github.com/iotaledger/ledgeraddr/plugins/config"
	"github.com/iotaledger/ledgeraddr/plugins/logger"
)

func execRegisterCommand(args []string, network address.Network, out io.Writer) error {
	return withInitState(args, func(robust address.Address, initState *state.InitState) error {
		idAddress, err := initState.MapAddressToNewID(robust)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(out, "%s -> %s\n", robust.Format(network), idAddress.Format(network))

		return err
	})
}

func execResolveCommand(args []string, network address.Network, out io.Writer) error {
	return withInitState(args, func(addr address.Address, initState *state.InitState) error {
		idAddress, found, err := initState.ResolveAddress(addr)
		if err != nil {
			return err
		}
		if !found {
			return errors.Errorf("%s is not registered", addr.Format(network))
		}

		_, err = fmt.Fprintf(out, "%s -> %s\n", addr.Format(network), idAddress.Format(network))

		return err
	})
}

func withInitState(args []string, callback func(addr address.Address, initState *state.InitState) error) error {
	if err := requireArguments(args, 1); err != nil {
		return err
	}

	addr, err := address.NewFromString(args[0])
	if err != nil {
		return errors.Errorf("invalid address %q: %w", args[0], err)
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err = database.CheckDatabaseVersion(db); err != nil {
		return err
	}

	initState, err := state.NewInitState(db, logger.NewLogger("State"))
	if err != nil {
		return err
	}

	return callback(addr, initState)
}

func openDatabase() (*database.DB, error) {
	if config.Node.GetBool(database.CfgInMemory) {
		return database.NewMemDB()
	}

	return database.NewDB(config.Node.GetString(database.CfgDirectory))
}
