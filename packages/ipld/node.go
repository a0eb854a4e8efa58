package ipld

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ipfs/go-cid"
)

// region Kind /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Kind is the type of value held by a Node.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
	BytesKind
	ListKind
	MapKind
	LinkKind
)

var kindNames = [...]string{"Null", "Bool", "Int", "Float", "String", "Bytes", "List", "Map", "Link"}

// String returns a human-readable version of the Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Node /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Node is an immutable value of the IPLD data model. The zero value is Null.
type Node struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	text    string
	bytes   []byte
	list    []Node
	entries map[string]Node
	link    cid.Cid
}

// Null returns the null Node.
func Null() Node {
	return Node{}
}

// Bool returns a boolean Node.
func Bool(value bool) Node {
	return Node{kind: BoolKind, boolean: value}
}

// Int returns an integer Node.
func Int(value int64) Node {
	return Node{kind: IntKind, integer: value}
}

// Float returns a floating point Node.
func Float(value float64) Node {
	return Node{kind: FloatKind, float: value}
}

// String returns a text Node.
func String(value string) Node {
	return Node{kind: StringKind, text: value}
}

// Bytes returns a byte string Node. The value is copied.
func Bytes(value []byte) Node {
	return Node{kind: BytesKind, bytes: append([]byte{}, value...)}
}

// List returns a Node holding the given elements in order.
func List(elements ...Node) Node {
	return Node{kind: ListKind, list: append([]Node{}, elements...)}
}

// Entry is a single key-value pair of a map Node.
type Entry struct {
	Key   string
	Value Node
}

// Map returns a Node holding the given entries. Later entries overwrite earlier ones with the same key.
func Map(entries ...Entry) Node {
	node := Node{kind: MapKind, entries: make(map[string]Node, len(entries))}
	for _, entry := range entries {
		node.entries[entry.Key] = entry.Value
	}

	return node
}

// Link returns a Node pointing to other content.
func Link(target cid.Cid) Node {
	return Node{kind: LinkKind, link: target}
}

// Kind returns the type of the Node.
func (n Node) Kind() Kind {
	return n.kind
}

// AsBool returns the value of a Bool node.
func (n Node) AsBool() (bool, bool) {
	return n.boolean, n.kind == BoolKind
}

// AsInt returns the value of an Int node.
func (n Node) AsInt() (int64, bool) {
	return n.integer, n.kind == IntKind
}

// AsFloat returns the value of a Float node.
func (n Node) AsFloat() (float64, bool) {
	return n.float, n.kind == FloatKind
}

// AsString returns the value of a String node.
func (n Node) AsString() (string, bool) {
	return n.text, n.kind == StringKind
}

// AsBytes returns a copy of the value of a Bytes node.
func (n Node) AsBytes() ([]byte, bool) {
	if n.kind != BytesKind {
		return nil, false
	}

	return append([]byte{}, n.bytes...), true
}

// AsLink returns the target of a Link node.
func (n Node) AsLink() (cid.Cid, bool) {
	return n.link, n.kind == LinkKind
}

// Len returns the number of elements of a List or the number of entries of a Map.
func (n Node) Len() int {
	switch n.kind {
	case ListKind:
		return len(n.list)
	case MapKind:
		return len(n.entries)
	default:
		return 0
	}
}

// Index returns the element at position i of a List.
func (n Node) Index(i int) (Node, bool) {
	if n.kind != ListKind || i < 0 || i >= len(n.list) {
		return Null(), false
	}

	return n.list[i], true
}

// Lookup returns the value stored under key in a Map.
func (n Node) Lookup(key string) (Node, bool) {
	value, exists := n.entries[key]

	return value, exists
}

// Keys returns the keys of a Map in lexicographic order.
func (n Node) Keys() []string {
	keys := make([]string, 0, len(n.entries))
	for key := range n.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Equals returns true if both nodes hold the same value.
func (n Node) Equals(other Node) bool {
	if n.kind != other.kind {
		return false
	}

	switch n.kind {
	case NullKind:
		return true
	case BoolKind:
		return n.boolean == other.boolean
	case IntKind:
		return n.integer == other.integer
	case FloatKind:
		return n.float == other.float
	case StringKind:
		return n.text == other.text
	case BytesKind:
		return string(n.bytes) == string(other.bytes)
	case LinkKind:
		return n.link.Equals(other.link)
	case ListKind:
		if len(n.list) != len(other.list) {
			return false
		}
		for i := range n.list {
			if !n.list[i].Equals(other.list[i]) {
				return false
			}
		}

		return true
	default:
		if len(n.entries) != len(other.entries) {
			return false
		}
		for key, value := range n.entries {
			otherValue, exists := other.entries[key]
			if !exists || !value.Equals(otherValue) {
				return false
			}
		}

		return true
	}
}

// String returns a human-readable version of the Node.
func (n Node) String() string {
	switch n.kind {
	case NullKind:
		return "null"
	case BoolKind:
		return fmt.Sprint(n.boolean)
	case IntKind:
		return fmt.Sprint(n.integer)
	case FloatKind:
		return fmt.Sprint(n.float)
	case StringKind:
		return fmt.Sprintf("%q", n.text)
	case BytesKind:
		return fmt.Sprintf("Bytes(%x)", n.bytes)
	case LinkKind:
		return fmt.Sprintf("Link(%s)", n.link)
	case ListKind:
		elements := make([]interface{}, len(n.list))
		for i, element := range n.list {
			elements[i] = element.String()
		}

		return fmt.Sprint(elements)
	default:
		var builder strings.Builder
		builder.WriteString("{")
		for i, key := range n.Keys() {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(fmt.Sprintf("%q: %s", key, n.entries[key]))
		}
		builder.WriteString("}")

		return builder.String()
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
