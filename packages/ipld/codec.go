package ipld

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// linkTag is the CBOR tag of content links.
const linkTag = 42

var (
	// ErrUnsupportedValue is returned when decoding data that has no representation as a Node.
	ErrUnsupportedValue = errors.New("unsupported value")

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	if encMode, err = (cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		ShortestFloat: cbor.ShortestFloatNone,
		IndefLength:   cbor.IndefLengthForbidden,
	}).EncMode(); err != nil {
		panic(err)
	}

	if decMode, err = (cbor.DecOptions{
		DupMapKey:      cbor.DupMapKeyEnforcedAPF,
		IndefLength:    cbor.IndefLengthForbidden,
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}).DecMode(); err != nil {
		panic(err)
	}
}

// Encode returns the deterministic CBOR encoding of the Node: map keys are sorted length first, links are tagged
// with tag 42 and no indefinite length items are used.
func Encode(node Node) ([]byte, error) {
	data, err := encMode.Marshal(toValue(node))
	if err != nil {
		return nil, errors.Errorf("failed to encode %s node: %w", node.Kind(), err)
	}

	return data, nil
}

// Decode parses a Node from its CBOR encoding.
func Decode(data []byte) (Node, error) {
	var value interface{}
	if err := decMode.Unmarshal(data, &value); err != nil {
		return Null(), errors.Errorf("failed to decode node: %w", err)
	}

	return fromValue(value)
}

// Sum returns the content identifier of the encoded Node.
func Sum(node Node) (cid.Cid, error) {
	data, err := Encode(node)
	if err != nil {
		return cid.Undef, err
	}

	hash, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, errors.Errorf("failed to hash node: %w", err)
	}

	return cid.NewCidV1(cid.DagCBOR, hash), nil
}

func toValue(node Node) interface{} {
	switch node.kind {
	case NullKind:
		return nil
	case BoolKind:
		return node.boolean
	case IntKind:
		return node.integer
	case FloatKind:
		return node.float
	case StringKind:
		return node.text
	case BytesKind:
		return node.bytes
	case LinkKind:
		// links are prefixed with the multibase identity prefix
		return cbor.Tag{Number: linkTag, Content: append([]byte{0}, node.link.Bytes()...)}
	case ListKind:
		elements := make([]interface{}, len(node.list))
		for i, element := range node.list {
			elements[i] = toValue(element)
		}

		return elements
	default:
		entries := make(map[string]interface{}, len(node.entries))
		for key, value := range node.entries {
			entries[key] = toValue(value)
		}

		return entries
	}
}

func fromValue(value interface{}) (Node, error) {
	switch typedValue := value.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(typedValue), nil
	case uint64:
		if typedValue > math.MaxInt64 {
			return Null(), errors.Wrapf(ErrUnsupportedValue, "integer %d overflows int64", typedValue)
		}

		return Int(int64(typedValue)), nil
	case int64:
		return Int(typedValue), nil
	case float64:
		return Float(typedValue), nil
	case string:
		return String(typedValue), nil
	case []byte:
		return Bytes(typedValue), nil
	case cbor.Tag:
		return linkFromTag(typedValue)
	case []interface{}:
		elements := make([]Node, len(typedValue))
		for i, element := range typedValue {
			node, err := fromValue(element)
			if err != nil {
				return Null(), err
			}
			elements[i] = node
		}

		return List(elements...), nil
	case map[string]interface{}:
		entries := make([]Entry, 0, len(typedValue))
		for key, element := range typedValue {
			node, err := fromValue(element)
			if err != nil {
				return Null(), err
			}
			entries = append(entries, Entry{Key: key, Value: node})
		}

		return Map(entries...), nil
	default:
		return Null(), errors.Wrapf(ErrUnsupportedValue, "%T", value)
	}
}

func linkFromTag(tag cbor.Tag) (Node, error) {
	if tag.Number != linkTag {
		return Null(), errors.Wrapf(ErrUnsupportedValue, "tag %d", tag.Number)
	}

	content, ok := tag.Content.([]byte)
	if !ok || len(content) == 0 || content[0] != 0 {
		return Null(), errors.Wrap(ErrUnsupportedValue, "malformed link")
	}

	target, err := cid.Cast(content[1:])
	if err != nil {
		return Null(), errors.Errorf("failed to parse link (%v): %w", err, ErrUnsupportedValue)
	}

	return Link(target), nil
}
