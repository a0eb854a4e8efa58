package state

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/iotaledger/ledgeraddr/packages/address"
	"github.com/iotaledger/ledgeraddr/packages/database"
)

// Tree stores the Actor of every address. Addresses are opaque keys: the tree stores and iterates them by their
// binary representation and never interprets the payload.
type Tree struct {
	db  *database.DB
	log *zap.SugaredLogger
}

// NewTree creates a Tree on top of the given DB. A nil logger disables logging.
func NewTree(db *database.DB, log *zap.SugaredLogger) *Tree {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Tree{
		db:  db,
		log: log,
	}
}

// GetActor returns the Actor stored under the given address.
func (t *Tree) GetActor(addr address.Address) (*Actor, error) {
	key, err := actorKey(addr)
	if err != nil {
		return nil, err
	}

	data, err := t.db.Get(key)
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return nil, errors.Wrapf(ErrActorNotFound, "%s", addr)
		}

		return nil, errors.Errorf("failed to load actor %s: %w", addr, err)
	}

	return ActorFromBytes(data)
}

// SetActor stores the Actor under the given address, replacing any previous one.
func (t *Tree) SetActor(addr address.Address, actor *Actor) error {
	key, err := actorKey(addr)
	if err != nil {
		return err
	}

	data, err := actor.Bytes()
	if err != nil {
		return errors.Errorf("failed to marshal actor %s: %w", addr, err)
	}
	if err = t.db.Set(key, data); err != nil {
		return errors.Errorf("failed to store actor %s: %w", addr, err)
	}
	t.log.Debugw("stored actor", "address", addr, "nonce", actor.Nonce)

	return nil
}

// DeleteActor removes the Actor stored under the given address.
func (t *Tree) DeleteActor(addr address.Address) error {
	key, err := actorKey(addr)
	if err != nil {
		return err
	}

	if _, err = t.GetActor(addr); err != nil {
		return err
	}
	if err = t.db.Delete(key); err != nil {
		return errors.Errorf("failed to delete actor %s: %w", addr, err)
	}
	t.log.Debugw("deleted actor", "address", addr)

	return nil
}

// ForEach calls consumer for every stored Actor in ascending address order until it returns false.
func (t *Tree) ForEach(consumer func(addr address.Address, actor *Actor) bool) (err error) {
	iterationErr := t.db.Iterate([]byte{database.PrefixActors}, func(key, value []byte) bool {
		var addr address.Address
		if addr, err = address.NewFromBytes(key); err != nil {
			err = errors.Errorf("failed to parse stored address: %w", err)
			return false
		}

		var actor *Actor
		if actor, err = ActorFromBytes(value); err != nil {
			return false
		}

		return consumer(addr, actor)
	})
	if iterationErr != nil {
		return iterationErr
	}

	return err
}

func actorKey(addr address.Address) ([]byte, error) {
	if addr.Empty() {
		return nil, ErrUndefAddress
	}

	return append([]byte{database.PrefixActors}, addr.Bytes()...), nil
}
