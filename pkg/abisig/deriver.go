package abisig

import (
	"fmt"
	"unicode/utf8"
)

// Deriver turns signatures into selectors and topics using an injected
// Hasher. The zero value uses Keccak256.
type Deriver struct {
	Hasher Hasher
}

// NewDeriver creates a deriver backed by h
func NewDeriver(h Hasher) Deriver {
	return Deriver{Hasher: h}
}

func (d Deriver) hasher() Hasher {
	if d.Hasher == nil {
		return Keccak256{}
	}
	return d.Hasher
}

// Digest returns the full keccak-256 digest of the whitespace-free signature.
// A signature that is not valid UTF-8 fails with a *HashError before the
// hasher runs. Errors from the hasher are returned unchanged.
func (d Deriver) Digest(sig string) ([32]byte, error) {
	// Checked before normalizing: strings.Map would turn invalid bytes into U+FFFD
	if !utf8.ValidString(sig) {
		return [32]byte{}, &HashError{Signature: sig, Err: ErrInvalidEncoding}
	}
	return d.hasher().Digest([]byte(NormalizeSignature(sig)))
}

// Selector returns the first 4 bytes of the signature digest
func (d Deriver) Selector(sig string) (Selector, error) {
	var sel Selector
	digest, err := d.Digest(sig)
	if err != nil {
		return sel, err
	}
	copy(sel[:], digest[:4])
	return sel, nil
}

// Topic returns the full 32-byte signature digest
func (d Deriver) Topic(sig string) (Topic, error) {
	digest, err := d.Digest(sig)
	if err != nil {
		return Topic{}, err
	}
	return Topic(digest), nil
}

// FunctionSelector derives the selector of a function or error entry
func (d Deriver) FunctionSelector(e InterfaceEntry) (Selector, error) {
	return d.Selector(Signature(e))
}

// EventTopic derives the topic of an event entry
func (d Deriver) EventTopic(e InterfaceEntry) (Topic, error) {
	return d.Topic(Signature(e))
}

// Identifier derives the identifier appropriate to the entry kind: a topic
// for events and a selector for functions and errors.
func (d Deriver) Identifier(e InterfaceEntry) (Identifier, error) {
	id := Identifier{Kind: e.Kind}
	switch e.Kind {
	case KindEvent:
		topic, err := d.EventTopic(e)
		if err != nil {
			return id, err
		}
		id.Topic = topic
	case KindFunction, KindError, "":
		sel, err := d.FunctionSelector(e)
		if err != nil {
			return id, err
		}
		id.Kind = kindOrFunction(e.Kind)
		id.Selector = sel
	default:
		return id, fmt.Errorf("unsupported entry kind %q", e.Kind)
	}
	return id, nil
}

func kindOrFunction(k EntryKind) EntryKind {
	if k == "" {
		return KindFunction
	}
	return k
}

// FunctionSelector derives a function selector with the default hasher
func FunctionSelector(e InterfaceEntry) (Selector, error) {
	return Deriver{}.FunctionSelector(e)
}

// FunctionSelectorFromSignature derives a selector from a pre-formed
// signature. Whitespace is stripped before hashing.
func FunctionSelectorFromSignature(sig string) (Selector, error) {
	return Deriver{}.Selector(sig)
}

// EventTopic derives an event topic with the default hasher
func EventTopic(e InterfaceEntry) (Topic, error) {
	return Deriver{}.EventTopic(e)
}

// EventTopicFromSignature derives a topic from a pre-formed signature.
// Whitespace is stripped before hashing.
func EventTopicFromSignature(sig string) (Topic, error) {
	return Deriver{}.Topic(sig)
}
