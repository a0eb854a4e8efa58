package builtin

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// region ActorVersion /////////////////////////////////////////////////////////////////////////////////////////////////

// ActorVersion is the version of the builtin actor code.
type ActorVersion int

const (
	// Version0 is the genesis actor version. Its code identifiers use the "fil/1" namespace.
	Version0 ActorVersion = 0
	Version2 ActorVersion = 2
	Version3 ActorVersion = 3
	Version4 ActorVersion = 4
	Version5 ActorVersion = 5
	Version6 ActorVersion = 6
)

// Versions contains all known actor versions from oldest to newest.
var Versions = []ActorVersion{Version0, Version2, Version3, Version4, Version5, Version6}

// namespace returns the prefix of the code identifiers of the version.
func (v ActorVersion) namespace() string {
	if v == Version0 {
		return "fil/1/"
	}

	return fmt.Sprintf("fil/%d/", int(v))
}

// String returns a human-readable version of the ActorVersion.
func (v ActorVersion) String() string {
	return fmt.Sprintf("ActorVersion(%d)", int(v))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Actor code identifiers ///////////////////////////////////////////////////////////////////////////////////////

const (
	SystemActorName           = "system"
	InitActorName             = "init"
	CronActorName             = "cron"
	AccountActorName          = "account"
	StoragePowerActorName     = "storagepower"
	StorageMinerActorName     = "storageminer"
	StorageMarketActorName    = "storagemarket"
	PaymentChannelActorName   = "paymentchannel"
	MultisigActorName         = "multisig"
	RewardActorName           = "reward"
	VerifiedRegistryActorName = "verifiedregistry"
)

// ActorNames contains the names of all builtin actors.
var ActorNames = []string{
	SystemActorName,
	InitActorName,
	CronActorName,
	AccountActorName,
	StoragePowerActorName,
	StorageMinerActorName,
	StorageMarketActorName,
	PaymentChannelActorName,
	MultisigActorName,
	RewardActorName,
	VerifiedRegistryActorName,
}

var singletonActorNames = map[string]bool{
	SystemActorName:           true,
	InitActorName:             true,
	RewardActorName:           true,
	CronActorName:             true,
	StoragePowerActorName:     true,
	StorageMarketActorName:    true,
	VerifiedRegistryActorName: true,
}

// ErrUnknownActor is returned when a code identifier is requested for an actor that does not exist.
var ErrUnknownActor = errors.New("unknown builtin actor")

type actorCode struct {
	version ActorVersion
	name    string
}

var codes = make(map[cid.Cid]actorCode)

func init() {
	for _, version := range Versions {
		for _, name := range ActorNames {
			code, err := makeCode(version, name)
			if err != nil {
				panic(err)
			}
			codes[code] = actorCode{version: version, name: name}
		}
	}
}

// CodeID returns the code identifier of the named builtin actor in the given version.
func CodeID(version ActorVersion, name string) (cid.Cid, error) {
	code, err := makeCode(version, name)
	if err != nil {
		return cid.Undef, err
	}
	if actor, exists := codes[code]; !exists || actor.version != version {
		return cid.Undef, errors.Wrapf(ErrUnknownActor, "%s in %s", name, version)
	}

	return code, nil
}

// makeCode builds the raw identity CID of the code namespace.
func makeCode(version ActorVersion, name string) (cid.Cid, error) {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: multihash.IDENTITY}
	code, err := builder.Sum([]byte(version.namespace() + name))
	if err != nil {
		return cid.Undef, errors.Errorf("failed to build code identifier of %s: %w", name, err)
	}

	return code, nil
}

// IsBuiltinActor returns true if the code belongs to a builtin actor.
func IsBuiltinActor(code cid.Cid) bool {
	_, exists := codes[code]

	return exists
}

// IsAccountActor returns true if the code belongs to an account actor.
func IsAccountActor(code cid.Cid) bool {
	return codes[code].name == AccountActorName
}

// IsSingletonActor returns true if the code belongs to an actor that only exists once.
func IsSingletonActor(code cid.Cid) bool {
	return singletonActorNames[codes[code].name]
}

// IsMinerActor returns true if the code belongs to a storage miner actor.
func IsMinerActor(code cid.Cid) bool {
	return codes[code].name == StorageMinerActorName
}

// ActorName returns the name of the builtin actor that the code belongs to.
func ActorName(code cid.Cid) (name string, exists bool) {
	actor, exists := codes[code]

	return actor.name, exists
}

// GetActorVersion returns the version of a builtin actor code, or false if the code does not belong to a builtin
// actor.
func GetActorVersion(code cid.Cid) (version ActorVersion, exists bool) {
	actor, exists := codes[code]

	return actor.version, exists
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
