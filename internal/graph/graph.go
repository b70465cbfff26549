// Package graph exposes read access over a validated campaign document: field
// traversal by dotted path and weak-reference resolution. It holds no state of
// its own and never mutates anything except through SetField.
package graph

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/chronicler-app/chronicler/internal/model"
)

// Field reads a scalar text field by path, e.g. "arcs[2].segments[0].name".
// Paths address fields by their JSON names.
func Field(c *model.Campaign, path string) (string, error) {
	v, err := resolve(c, path)
	if err != nil {
		return "", err
	}
	if v.Kind() != reflect.String {
		return "", fmt.Errorf("path %q does not address a text field", path)
	}
	return v.String(), nil
}

// SetField writes a scalar text field by path. It is the single write entry
// point: user edits and accepted suggestions both land here.
func SetField(c *model.Campaign, path, value string) error {
	v, err := resolve(c, path)
	if err != nil {
		return err
	}
	if v.Kind() != reflect.String {
		return fmt.Errorf("path %q does not address a text field", path)
	}
	if !v.CanSet() {
		return fmt.Errorf("path %q is not settable", path)
	}
	v.SetString(value)
	return nil
}

// Lookup resolves a weak reference against the campaign. A missing target
// reports not-found; it never panics and deletion of the target elsewhere
// never cascades back here.
func Lookup(c *model.Campaign, id model.Identifier) (any, bool) {
	kind, ok := id.Kind()
	if !ok {
		return nil, false
	}
	switch kind {
	case model.KindCampaign:
		if c.ObjID == id {
			return c, true
		}
	case model.KindArc:
		for i := range c.Arcs {
			if c.Arcs[i].ObjID == id {
				return &c.Arcs[i], true
			}
		}
	case model.KindSegment:
		for i := range c.Arcs {
			for j := range c.Arcs[i].Segments {
				if c.Arcs[i].Segments[j].ObjID == id {
					return &c.Arcs[i].Segments[j], true
				}
			}
		}
	case model.KindPoint:
		for i := range c.Arcs {
			for j := range c.Arcs[i].Segments {
				seg := &c.Arcs[i].Segments[j]
				if seg.Start.ObjID == id {
					return &seg.Start, true
				}
				if seg.End.ObjID == id {
					return &seg.End, true
				}
			}
		}
	case model.KindCharacter:
		for i := range c.Characters {
			if c.Characters[i].ObjID == id {
				return &c.Characters[i], true
			}
		}
	case model.KindLocation:
		for i := range c.Locations {
			if c.Locations[i].ObjID == id {
				return &c.Locations[i], true
			}
		}
	case model.KindItem:
		for i := range c.Items {
			if c.Items[i].ObjID == id {
				return &c.Items[i], true
			}
		}
	case model.KindRule:
		for i := range c.Rules {
			if c.Rules[i].ObjID == id {
				return &c.Rules[i], true
			}
		}
	case model.KindObjective:
		for i := range c.Objectives {
			if c.Objectives[i].ObjID == id {
				return &c.Objectives[i], true
			}
		}
	}
	return nil, false
}

// Owner resolves the entity that owns the field a path addresses, returning
// its identifier and the bare field name. A root-level path like "title"
// belongs to the campaign itself.
func Owner(c *model.Campaign, path string) (model.Identifier, string, error) {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		if _, err := resolve(c, path); err != nil {
			return model.Identifier{}, "", err
		}
		return c.ObjID, path, nil
	}

	entityPath, field := path[:dot], path[dot+1:]
	v, err := resolve(c, entityPath)
	if err != nil {
		return model.Identifier{}, "", err
	}
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return model.Identifier{}, "", fmt.Errorf("path %q passes through an absent field", path)
		}
		v = v.Elem()
	}
	idField, ok := fieldByJSONName(v, "obj_id")
	if !ok {
		return model.Identifier{}, "", fmt.Errorf("path %q does not address an entity field", path)
	}
	id, ok := idField.Interface().(model.Identifier)
	if !ok {
		return model.Identifier{}, "", fmt.Errorf("path %q does not address an entity field", path)
	}
	return id, field, nil
}

// resolve walks the campaign by json-tag names and slice indices, returning
// an addressable value for the final path step.
func resolve(c *model.Campaign, path string) (reflect.Value, error) {
	if c == nil {
		return reflect.Value{}, fmt.Errorf("nil campaign")
	}
	v := reflect.ValueOf(c).Elem()
	if path == "" {
		return reflect.Value{}, fmt.Errorf("empty path")
	}

	for _, step := range strings.Split(path, ".") {
		name, index, hasIndex, err := splitStep(step)
		if err != nil {
			return reflect.Value{}, err
		}

		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("path %q passes through an absent field", path)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("path %q descends into a non-entity value at %q", path, name)
		}

		field, ok := fieldByJSONName(v, name)
		if !ok {
			return reflect.Value{}, fmt.Errorf("unknown field %q in path %q", name, path)
		}
		v = field

		if hasIndex {
			if v.Kind() != reflect.Slice {
				return reflect.Value{}, fmt.Errorf("field %q in path %q is not indexable", name, path)
			}
			if index < 0 || index >= v.Len() {
				return reflect.Value{}, fmt.Errorf("index %d out of range for %q in path %q", index, name, path)
			}
			v = v.Index(index)
		}
	}
	return v, nil
}

func splitStep(step string) (name string, index int, hasIndex bool, err error) {
	open := strings.IndexByte(step, '[')
	if open < 0 {
		return step, 0, false, nil
	}
	if !strings.HasSuffix(step, "]") {
		return "", 0, false, fmt.Errorf("malformed path step %q", step)
	}
	name = step[:open]
	idx, convErr := strconv.Atoi(step[open+1 : len(step)-1])
	if convErr != nil || name == "" {
		return "", 0, false, fmt.Errorf("malformed path step %q", step)
	}
	return name, idx, true, nil
}

func fieldByJSONName(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if comma := strings.IndexByte(tag, ','); comma >= 0 {
			tag = tag[:comma]
		}
		if tag == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}
