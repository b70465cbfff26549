package validate

import (
	"encoding/json"
	"fmt"

	"github.com/chronicler-app/chronicler/internal/model"
)

// The engine turns any JSON-shaped payload into a fully-populated entity of
// the requested kind. Policy: required campaign scalars fail hard with
// SchemaViolation; everything else recovers field-by-field to its documented
// default. One bad array element never invalidates its siblings.

// validators is the per-kind dispatch table. Each entry owns its kind's
// field-default rules; the walkers below are shared.
var validators = map[model.Kind]func(any) (any, error){
	model.KindRule:      func(p any) (any, error) { return Rule(p), nil },
	model.KindObjective: func(p any) (any, error) { return Objective(p), nil },
	model.KindPoint:     func(p any) (any, error) { return Point(p), nil },
	model.KindSegment:   func(p any) (any, error) { return Segment(p), nil },
	model.KindArc:       func(p any) (any, error) { return Arc(p), nil },
	model.KindItem:      func(p any) (any, error) { return Item(p), nil },
	model.KindCharacter: func(p any) (any, error) { return Character(p), nil },
	model.KindLocation:  func(p any) (any, error) { return Location(p), nil },
	model.KindCampaign:  func(p any) (any, error) { return Campaign(p) },
}

// Validate dispatches by kind. Only campaign payloads can fail; every other
// kind is total.
func Validate(kind model.Kind, payload any) (any, error) {
	fn, ok := validators[kind]
	if !ok {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	return fn(payload)
}

// Campaign validates the root aggregate. Its scalar fields have no defaults:
// a campaign without a title is absent, not malformed.
func Campaign(payload any) (*model.Campaign, error) {
	m := asObject(payload)

	c := &model.Campaign{
		ObjID: idField(m, "obj_id", model.KindCampaign),
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"title", &c.Title},
		{"version", &c.Version},
		{"setting", &c.Setting},
		{"summary", &c.Summary},
	} {
		s, ok := m[f.key].(string)
		if !ok || s == "" {
			return nil, &SchemaViolation{Kind: model.KindCampaign, Field: f.key}
		}
		*f.dst = s
	}

	c.Arcs = make([]model.Arc, 0)
	for _, raw := range arrayField(m, "arcs") {
		c.Arcs = append(c.Arcs, Arc(raw))
	}
	c.Characters = make([]model.Character, 0)
	for _, raw := range arrayField(m, "characters") {
		c.Characters = append(c.Characters, Character(raw))
	}
	c.Locations = make([]model.Location, 0)
	for _, raw := range arrayField(m, "locations") {
		c.Locations = append(c.Locations, Location(raw))
	}
	c.Items = make([]model.Item, 0)
	for _, raw := range arrayField(m, "items") {
		c.Items = append(c.Items, Item(raw))
	}
	c.Rules = make([]model.Rule, 0)
	for _, raw := range arrayField(m, "rules") {
		c.Rules = append(c.Rules, Rule(raw))
	}
	c.Objectives = make([]model.Objective, 0)
	for _, raw := range arrayField(m, "objectives") {
		c.Objectives = append(c.Objectives, Objective(raw))
	}

	return c, nil
}

func Rule(payload any) model.Rule {
	m := asObject(payload)
	return model.Rule{
		ObjID:       idField(m, "obj_id", model.KindRule),
		Name:        textField(m, "name", model.DefaultRuleName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
	}
}

func Objective(payload any) model.Objective {
	m := asObject(payload)
	completed, _ := m["completed"].(bool)
	return model.Objective{
		ObjID:       idField(m, "obj_id", model.KindObjective),
		Name:        textField(m, "name", model.DefaultObjectiveName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
		Completed:   completed,
	}
}

func Point(payload any) model.Point {
	m := asObject(payload)
	return model.Point{
		ObjID:       idField(m, "obj_id", model.KindPoint),
		Name:        textField(m, "name", model.DefaultPointName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
		Objective:   optionalIDField(m, "objective", model.KindObjective),
	}
}

func Segment(payload any) model.Segment {
	m := asObject(payload)
	return model.Segment{
		ObjID: idField(m, "obj_id", model.KindSegment),
		Name:  textField(m, "name", model.DefaultSegmentName, 1),
		Start: Point(m["start"]),
		End:   Point(m["end"]),
	}
}

// Arc's own name carries no minimum length: an empty name is accepted as-is,
// unlike a point's.
func Arc(payload any) model.Arc {
	m := asObject(payload)
	a := model.Arc{
		ObjID:       idField(m, "obj_id", model.KindArc),
		Name:        textField(m, "name", "", 0),
		Description: textField(m, "description", model.DefaultDescription, 0),
		Segments:    make([]model.Segment, 0),
	}
	for _, raw := range arrayField(m, "segments") {
		a.Segments = append(a.Segments, Segment(raw))
	}
	return a
}

func Item(payload any) model.Item {
	m := asObject(payload)
	return model.Item{
		ObjID:       idField(m, "obj_id", model.KindItem),
		Name:        textField(m, "name", model.DefaultItemName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
	}
}

func Character(payload any) model.Character {
	m := asObject(payload)
	return model.Character{
		ObjID:       idField(m, "obj_id", model.KindCharacter),
		Name:        textField(m, "name", model.DefaultCharacterName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
		Attributes:  numberMapField(m, "attributes"),
		Skills:      numberMapField(m, "skills"),
		Storyline:   idListField(m, "storyline"),
		Inventory:   idListField(m, "inventory"),
	}
}

func Location(payload any) model.Location {
	m := asObject(payload)
	return model.Location{
		ObjID:       idField(m, "obj_id", model.KindLocation),
		Name:        textField(m, "name", model.DefaultLocationName, 1),
		Description: textField(m, "description", model.DefaultDescription, 0),
		Coordinate:  coordinateField(m, "coordinate"),
		Neighbors:   idListField(m, "neighbors"),
	}
}

// asObject coerces a decoded payload into a generic object. Anything that is
// not an object validates as if every field were absent.
func asObject(payload any) map[string]any {
	switch v := payload.(type) {
	case map[string]any:
		return v
	case json.RawMessage:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return map[string]any{}
		}
		return m
	case []byte:
		var m map[string]any
		if err := json.Unmarshal(v, &m); err != nil {
			return map[string]any{}
		}
		return m
	default:
		// Already-validated structs round-trip through JSON so that
		// re-validating valid data is a no-op.
		data, err := json.Marshal(payload)
		if err != nil {
			return map[string]any{}
		}
		var m map[string]any
		if err := json.Unmarshal(data, &m); err != nil {
			return map[string]any{}
		}
		return m
	}
}

// textField recovers a scalar text field. Absence and type mismatch always
// substitute the fallback; emptiness substitutes only when a minimum length
// is specified.
func textField(m map[string]any, key, fallback string, minLen int) string {
	v, present := m[key]
	if !present {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	if len(s) < minLen {
		return fallback
	}
	return s
}

// idField forces a kind-correct identifier: malformed input recovers to
// numeric zero under the kind's prefix.
func idField(m map[string]any, key string, kind model.Kind) model.Identifier {
	id := model.ParseIdentifier(m[key])
	if narrowed, err := model.Narrow(id, kind); err == nil {
		return narrowed
	}
	return model.NewIdentifier(kind, 0)
}

// optionalIDField reads a weak reference. Absence stays absent; a present but
// malformed or wrong-kind value degrades to the sentinel, which resolution
// later reports as not found.
func optionalIDField(m map[string]any, key string, kind model.Kind) *model.Identifier {
	v, present := m[key]
	if !present || v == nil {
		return nil
	}
	id := model.ParseIdentifier(v)
	if narrowed, err := model.Narrow(id, kind); err == nil {
		return &narrowed
	}
	s := model.Sentinel()
	return &s
}

// idListField reads an array of weak references; each element degrades
// independently.
func idListField(m map[string]any, key string) []model.Identifier {
	raws := arrayField(m, key)
	ids := make([]model.Identifier, 0, len(raws))
	for _, raw := range raws {
		ids = append(ids, model.ParseIdentifier(raw))
	}
	return ids
}

func arrayField(m map[string]any, key string) []any {
	arr, _ := m[key].([]any)
	return arr
}

func numberMapField(m map[string]any, key string) map[string]float64 {
	out := make(map[string]float64)
	raw, _ := m[key].(map[string]any)
	for k, v := range raw {
		if n, ok := asNumber(v); ok {
			out[k] = n
		} else {
			out[k] = 0
		}
	}
	return out
}

// coordinateField reads an optional 2D/3D coordinate. A coordinate missing a
// usable x or y is no coordinate at all.
func coordinateField(m map[string]any, key string) *model.Coordinate {
	raw, ok := m[key].(map[string]any)
	if !ok {
		return nil
	}
	x, okX := asNumber(raw["x"])
	y, okY := asNumber(raw["y"])
	if !okX || !okY {
		return nil
	}
	c := &model.Coordinate{X: x, Y: y}
	if z, okZ := asNumber(raw["z"]); okZ {
		c.Z = &z
	}
	return c
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
