package database

import (
	flag "github.com/spf13/pflag"
)

const (
	// CfgDirectory is the config key of the directory of the persisted state.
	CfgDirectory = "state.directory"
	// CfgInMemory is the config key that keeps the state in memory only.
	CfgInMemory = "state.inMemory"
)

func init() {
	flag.String(CfgDirectory, "statedb", "path to the database folder")
	flag.Bool(CfgInMemory, false, "keep the state in memory")
}
