package state

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/ipfs/go-cid"
)

// Actor is the on-chain state of a single actor.
type Actor struct {
	// Code identifies the type of the actor.
	Code cid.Cid
	// Head is the root of the actor's own state.
	Head    cid.Cid
	Nonce   uint64
	Balance big.Int
}

// actorRecord is the storage representation of an Actor.
type actorRecord struct {
	_       struct{} `cbor:",toarray"`
	Code    []byte
	Head    []byte
	Nonce   uint64
	Balance *big.Int
}

// ActorFromBytes unmarshals an Actor from a sequence of bytes.
func ActorFromBytes(data []byte) (*Actor, error) {
	var record actorRecord
	if err := cbor.Unmarshal(data, &record); err != nil {
		return nil, errors.Errorf("failed to parse Actor: %w", err)
	}

	code, err := castCid(record.Code)
	if err != nil {
		return nil, errors.Errorf("failed to parse code of Actor: %w", err)
	}
	head, err := castCid(record.Head)
	if err != nil {
		return nil, errors.Errorf("failed to parse head of Actor: %w", err)
	}

	actor := &Actor{Code: code, Head: head, Nonce: record.Nonce}
	if record.Balance != nil {
		actor.Balance.Set(record.Balance)
	}

	return actor, nil
}

// Bytes returns a marshaled version of the Actor.
func (a *Actor) Bytes() ([]byte, error) {
	return cbor.Marshal(&actorRecord{
		Code:    a.Code.Bytes(),
		Head:    a.Head.Bytes(),
		Nonce:   a.Nonce,
		Balance: &a.Balance,
	})
}

// String returns a human-readable version of the Actor.
func (a *Actor) String() string {
	return stringify.Struct("Actor",
		stringify.StructField("code", a.Code.String()),
		stringify.StructField("head", a.Head.String()),
		stringify.StructField("nonce", a.Nonce),
		stringify.StructField("balance", a.Balance.String()),
	)
}

func castCid(data []byte) (cid.Cid, error) {
	if len(data) == 0 {
		return cid.Undef, nil
	}

	return cid.Cast(data)
}
