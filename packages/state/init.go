package state

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v2"
	"github.com/iotaledger/hive.go/marshalutil"
	"go.uber.org/zap"

	"github.com/iotaledger/ledgeraddr/packages/address"
	"github.com/iotaledger/ledgeraddr/packages/builtin"
	"github.com/iotaledger/ledgeraddr/packages/database"
)

var nextIDKey = []byte{database.PrefixInitState, 'n'}

// InitState is the bookkeeping of the init actor: it hands out ID addresses and remembers which robust address each
// of them was assigned to.
type InitState struct {
	db     *database.DB
	log    *zap.SugaredLogger
	nextID uint64
	mutex  sync.Mutex
}

// NewInitState loads the InitState from the DB. A fresh DB starts handing out IDs at
// builtin.FirstNonSingletonActorID.
func NewInitState(db *database.DB, log *zap.SugaredLogger) (*InitState, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	initState := &InitState{
		db:     db,
		log:    log,
		nextID: builtin.FirstNonSingletonActorID,
	}

	stored, err := db.Get(nextIDKey)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return initState, nil
		}

		return nil, errors.Errorf("failed to load next ID: %w", err)
	}
	if initState.nextID, err = marshalutil.New(stored).ReadUint64(); err != nil {
		return nil, errors.Errorf("failed to parse next ID: %w", err)
	}

	return initState, nil
}

// NextID returns the ID that the next call to MapAddressToNewID assigns.
func (i *InitState) NextID() uint64 {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	return i.nextID
}

// MapAddressToNewID allocates a new ID address and assigns it to the given robust address.
func (i *InitState) MapAddressToNewID(robust address.Address) (address.Address, error) {
	if !isRobust(robust) {
		return address.Undef, errors.Wrapf(ErrNotRobustAddress, "%s", robust)
	}

	i.mutex.Lock()
	defer i.mutex.Unlock()

	id := i.nextID
	idAddress := address.NewIDAddress(id)

	nextID := marshalutil.New(marshalutil.Uint64Size).WriteUint64(id + 1).Bytes()

	err := i.db.Update(func(txn *badger.Txn) error {
		mappingKey := addressMapKey(robust)
		if _, err := txn.Get(mappingKey); err == nil {
			return errors.Wrapf(ErrAddressAlreadyMapped, "%s", robust)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(mappingKey, idAddress.Bytes()); err != nil {
			return err
		}

		return txn.Set(nextIDKey, nextID)
	})
	if err != nil {
		return address.Undef, errors.Errorf("failed to map %s to a new ID: %w", robust, err)
	}
	i.nextID = id + 1

	i.log.Debugw("allocated ID address", "robust", robust, "id", idAddress)

	return idAddress, nil
}

// ResolveAddress returns the ID address of the given address. ID addresses resolve to themselves, robust addresses
// to the ID they were mapped to. The returned bool is false if a robust address was never mapped.
func (i *InitState) ResolveAddress(addr address.Address) (address.Address, bool, error) {
	if addr.Protocol() == address.ID {
		return addr, true, nil
	}
	if !isRobust(addr) {
		return address.Undef, false, errors.Wrapf(ErrNotRobustAddress, "%s", addr)
	}

	stored, err := i.db.Get(addressMapKey(addr))
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return address.Undef, false, nil
		}

		return address.Undef, false, errors.Errorf("failed to resolve %s: %w", addr, err)
	}

	idAddress, err := address.NewFromBytes(stored)
	if err != nil {
		return address.Undef, false, errors.Errorf("failed to parse stored ID address of %s: %w", addr, err)
	}

	return idAddress, true, nil
}

// ForEachMapping calls consumer for every robust address and its ID address in ascending order of the robust
// address until it returns false.
func (i *InitState) ForEachMapping(consumer func(robust, id address.Address) bool) (err error) {
	iterationErr := i.db.Iterate([]byte{database.PrefixAddressMap}, func(key, value []byte) bool {
		var robust, id address.Address
		if robust, err = address.NewFromBytes(key); err != nil {
			return false
		}
		if id, err = address.NewFromBytes(value); err != nil {
			return false
		}

		return consumer(robust, id)
	})
	if iterationErr != nil {
		return iterationErr
	}

	return err
}

func addressMapKey(robust address.Address) []byte {
	return append([]byte{database.PrefixAddressMap}, robust.Bytes()...)
}

func isRobust(addr address.Address) bool {
	switch addr.Protocol() {
	case address.SECP256K1, address.Actor, address.BLS:
		return true
	default:
		return false
	}
}
