package database

const (
	// PrefixDatabaseVersion defines the prefix of the schema version entry.
	PrefixDatabaseVersion byte = iota
	// PrefixActors defines the storage prefix of the actor state tree.
	PrefixActors
	// PrefixAddressMap defines the storage prefix of the robust address to ID address mapping.
	PrefixAddressMap
	// PrefixInitState defines the storage prefix of the init actor bookkeeping.
	PrefixInitState
)
