// Package abisig derives canonical signatures, 4-byte selectors and 32-byte
// event topics from Solidity ABI entries.
package abisig

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EntryKind identifies what an ABI entry describes
type EntryKind string

const (
	KindFunction EntryKind = "function"
	KindEvent    EntryKind = "event"
	KindError    EntryKind = "error"
)

// ParameterType is either a Simple type or a Tuple of component types.
// The set of implementations is closed.
type ParameterType interface {
	isParameterType()
}

// Simple is an elementary ABI type such as "address", "uint256" or "bytes32[]".
// It is used verbatim.
type Simple string

// Tuple is a struct type. Component order determines the encoded signature.
type Tuple struct {
	Components []ParameterType
	// Suffix is the array suffix of the tuple type, e.g. "[]" or "[2]".
	Suffix string
}

func (Simple) isParameterType() {}
func (Tuple) isParameterType()  {}

// InterfaceEntry is a function, event or error description
type InterfaceEntry struct {
	Kind      EntryKind
	Name      string
	Inputs    []ParameterType
	Anonymous bool
}

// Selector is the 4-byte function (or custom error) identifier
type Selector [4]byte

// Hex returns the 0x-prefixed hex encoding of the selector
func (s Selector) Hex() string {
	return hexutil.Encode(s[:])
}

// String implements fmt.Stringer
func (s Selector) String() string {
	return s.Hex()
}

// Bytes returns the selector as a byte slice
func (s Selector) Bytes() []byte {
	return s[:]
}

// Topic is the 32-byte event identifier
type Topic = common.Hash

// Identifier is the result of deriving an entry's identifier. Exactly one of
// Selector or Topic is meaningful, depending on Kind.
type Identifier struct {
	Kind     EntryKind
	Selector Selector
	Topic    Topic
}

// Hex returns the hex form of the meaningful identifier for the entry kind
func (id Identifier) Hex() string {
	if id.Kind == KindEvent {
		return id.Topic.Hex()
	}
	return id.Selector.Hex()
}

// Bytes returns 32 bytes for events and 4 bytes otherwise
func (id Identifier) Bytes() []byte {
	if id.Kind == KindEvent {
		return id.Topic.Bytes()
	}
	return id.Selector.Bytes()
}
