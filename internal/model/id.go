package model

import (
	"encoding/json"
	"fmt"
)

// Kind names one of the entity kinds a campaign document is built from.
type Kind string

const (
	KindRule      Kind = "rule"
	KindObjective Kind = "objective"
	KindPoint     Kind = "point"
	KindSegment   Kind = "segment"
	KindArc       Kind = "arc"
	KindItem      Kind = "item"
	KindCharacter Kind = "character"
	KindLocation  Kind = "location"
	KindCampaign  Kind = "campaign"
)

// kindPrefixes is the closed prefix enumeration. A prefix univocally
// determines the kind it addresses.
var kindPrefixes = map[Kind]string{
	KindRule:      "RU",
	KindObjective: "OBJ",
	KindPoint:     "PT",
	KindSegment:   "SEG",
	KindArc:       "A",
	KindItem:      "IT",
	KindCharacter: "CH",
	KindLocation:  "LOC",
	KindCampaign:  "CAM",
}

var prefixKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindPrefixes))
	for k, p := range kindPrefixes {
		m[p] = k
	}
	return m
}()

// SentinelPrefix marks an identifier that could not be resolved to any kind.
const SentinelPrefix = "MISC"

// Identifier names an entity within its kind's namespace. Numeric uniqueness
// is the external store's job, not this layer's.
type Identifier struct {
	Prefix  string `json:"prefix"`
	Numeric int    `json:"numeric"`
}

// Sentinel returns the unresolved-identifier marker.
func Sentinel() Identifier {
	return Identifier{Prefix: SentinelPrefix, Numeric: 0}
}

// IsSentinel reports whether id is the unresolved marker.
func (id Identifier) IsSentinel() bool {
	return id.Prefix == SentinelPrefix
}

// Kind returns the entity kind the identifier addresses, or false for the
// sentinel and anything outside the closed prefix enumeration.
func (id Identifier) Kind() (Kind, bool) {
	k, ok := prefixKinds[id.Prefix]
	return k, ok
}

func (id Identifier) String() string {
	return fmt.Sprintf("%s-%d", id.Prefix, id.Numeric)
}

// PrefixFor returns the closed-enumeration prefix for a kind.
func PrefixFor(kind Kind) string {
	p, ok := kindPrefixes[kind]
	if !ok {
		return SentinelPrefix
	}
	return p
}

// NewIdentifier builds a kind-correct identifier. Negative numerics are
// clamped to zero rather than rejected.
func NewIdentifier(kind Kind, numeric int) Identifier {
	if numeric < 0 {
		numeric = 0
	}
	return Identifier{Prefix: PrefixFor(kind), Numeric: numeric}
}

// ParseIdentifier is total: for any input it returns either a well-formed
// identifier whose prefix belongs to the closed enumeration, or the sentinel.
// It never panics and never returns an error; a bad identifier degrades to an
// unambiguous "unresolved" marker instead of crashing the document.
func ParseIdentifier(raw any) Identifier {
	m, ok := rawObject(raw)
	if !ok {
		return Sentinel()
	}

	prefix, ok := m["prefix"].(string)
	if !ok {
		return Sentinel()
	}
	if _, known := prefixKinds[prefix]; !known {
		return Sentinel()
	}

	numeric, ok := rawInt(m["numeric"])
	if !ok || numeric < 0 {
		return Sentinel()
	}

	return Identifier{Prefix: prefix, Numeric: numeric}
}

// KindMismatch reports an identifier whose prefix disagrees with the kind a
// caller required. It signals programming-level misuse, not a user condition.
type KindMismatch struct {
	Want Kind
	Got  Identifier
}

func (e *KindMismatch) Error() string {
	return fmt.Sprintf("identifier %s does not address kind %q (want prefix %s)", e.Got, e.Want, PrefixFor(e.Want))
}

// Narrow asserts that id addresses the given kind. It is the guard that keeps,
// say, a character identifier out of a field that must hold a point.
func Narrow(id Identifier, kind Kind) (Identifier, error) {
	if id.Prefix != PrefixFor(kind) {
		return Identifier{}, &KindMismatch{Want: kind, Got: id}
	}
	return id, nil
}

// rawObject coerces decoded-JSON shapes into a generic object.
func rawObject(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return nil, false
		}
		return m, true
	default:
		return nil, false
	}
}

// rawInt accepts the numeric shapes JSON decoding produces. Fractional values
// are not identifiers.
func rawInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
