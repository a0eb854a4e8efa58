package builtin

import (
	"github.com/iotaledger/ledgeraddr/packages/address"
)

// region Singleton addresses //////////////////////////////////////////////////////////////////////////////////////////

// FirstNonSingletonActorID is the first ID handed out by the init actor. All IDs below it are reserved for
// singleton actors.
const FirstNonSingletonActorID uint64 = 100

var (
	// SystemActorAddress is the address of the system actor.
	SystemActorAddress = address.NewIDAddress(0)

	// InitActorAddress is the address of the init actor that assigns ID addresses.
	InitActorAddress = address.NewIDAddress(1)

	// RewardActorAddress is the address of the block reward actor.
	RewardActorAddress = address.NewIDAddress(2)

	// CronActorAddress is the address of the cron actor.
	CronActorAddress = address.NewIDAddress(3)

	// StoragePowerActorAddress is the address of the storage power actor.
	StoragePowerActorAddress = address.NewIDAddress(4)

	// StorageMarketActorAddress is the address of the storage market actor.
	StorageMarketActorAddress = address.NewIDAddress(5)

	// VerifiedRegistryActorAddress is the address of the verified registry actor.
	VerifiedRegistryActorAddress = address.NewIDAddress(6)

	// ReserveAddress holds the funds that are not yet in circulation.
	ReserveAddress = address.NewIDAddress(90)

	// ChaosActorAddress is the address of the chaos actor used by conformance tests.
	ChaosActorAddress = address.NewIDAddress(98)

	// BurntFundsActorAddress is the sink of burnt funds.
	BurntFundsActorAddress = address.NewIDAddress(99)
)

var singletonNames = map[address.Address]string{
	SystemActorAddress:           "system",
	InitActorAddress:             "init",
	RewardActorAddress:           "reward",
	CronActorAddress:             "cron",
	StoragePowerActorAddress:     "storagepower",
	StorageMarketActorAddress:    "storagemarket",
	VerifiedRegistryActorAddress: "verifiedregistry",
	ReserveAddress:               "reserve",
	ChaosActorAddress:            "chaos",
	BurntFundsActorAddress:       "burntfunds",
}

// IsSingletonAddress returns true if the address is one of the well-known singleton addresses.
func IsSingletonAddress(a address.Address) bool {
	_, exists := singletonNames[a]

	return exists
}

// Name returns the name of a well-known singleton address.
func Name(a address.Address) (name string, exists bool) {
	name, exists = singletonNames[a]

	return
}

// All returns the well-known singleton addresses in ascending order.
func All() []address.Address {
	addresses := make([]address.Address, 0, len(singletonNames))
	for a := range singletonNames {
		addresses = append(addresses, a)
	}
	address.Sort(addresses)

	return addresses
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
