package domain

import (
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// SignatureEntry is an ABI entry together with its derived identifiers
type SignatureEntry struct {
	Contract  string           `json:"contract,omitempty" yaml:"contract,omitempty"`
	Kind      abisig.EntryKind `json:"kind" yaml:"kind"`
	Name      string           `json:"name" yaml:"name"`
	Signature string           `json:"signature" yaml:"signature"`
	Selector  string           `json:"selector" yaml:"selector"`
	Topic     string           `json:"topic" yaml:"topic"`
	Anonymous bool             `json:"anonymous,omitempty" yaml:"anonymous,omitempty"`
}

// Identifier returns the identifier used on-chain for this entry kind:
// the topic for events and the selector otherwise
func (e SignatureEntry) Identifier() string {
	if e.Kind == abisig.KindEvent {
		return e.Topic
	}
	return e.Selector
}

// Mismatch describes a disagreement between abisig and the reference ABI parser
type Mismatch struct {
	Kind      abisig.EntryKind `json:"kind" yaml:"kind"`
	Signature string           `json:"signature" yaml:"signature"`
	Expected  string           `json:"expected" yaml:"expected"`
	Actual    string           `json:"actual" yaml:"actual"`
	Reason    string           `json:"reason" yaml:"reason"`
}

// ReferenceEntry is an identifier computed by an independent ABI implementation
type ReferenceEntry struct {
	Kind       abisig.EntryKind
	Signature  string
	Identifier string
}
