package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronicler-app/chronicler/internal/model"
)

func validCampaignPayload() map[string]any {
	return map[string]any{
		"obj_id":  map[string]any{"prefix": "CAM", "numeric": float64(1)},
		"title":   "The Sundered Vale",
		"version": "1.0",
		"setting": "low fantasy",
		"summary": "A valley torn by an old war.",
	}
}

func TestCampaignRequiresRootScalars(t *testing.T) {
	for _, field := range []string{"title", "version", "setting", "summary"} {
		payload := validCampaignPayload()
		delete(payload, field)

		_, err := Campaign(payload)
		require.Error(t, err, "missing %s", field)
		var violation *SchemaViolation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, field, violation.Field)

		// Empty is as absent as missing at the root.
		payload = validCampaignPayload()
		payload[field] = ""
		_, err = Campaign(payload)
		assert.Error(t, err, "empty %s", field)
	}
}

func TestCampaignRecoversEverythingBelowRoot(t *testing.T) {
	payload := validCampaignPayload()
	payload["arcs"] = []any{
		map[string]any{
			"name": "Act One",
			"segments": []any{
				// Entirely malformed element: degrades to defaults,
				// does not invalidate the sibling after it.
				"not a segment",
				map[string]any{
					"name":  "Into the Vale",
					"start": map[string]any{"name": ""},
					"end":   map[string]any{"name": "The Crossing", "description": 99},
				},
			},
		},
	}
	payload["characters"] = []any{
		map[string]any{
			"name":       "Mirelle",
			"attributes": map[string]any{"strength": float64(12), "wit": "high"},
			"storyline":  []any{map[string]any{"prefix": "A", "numeric": float64(1)}, "junk"},
		},
	}

	c, err := Campaign(payload)
	require.NoError(t, err)

	require.Len(t, c.Arcs, 1)
	arc := c.Arcs[0]
	assert.Equal(t, "Act One", arc.Name)
	assert.Equal(t, model.NewIdentifier(model.KindArc, 0), arc.ObjID)

	require.Len(t, arc.Segments, 2)
	assert.Equal(t, model.DefaultSegmentName, arc.Segments[0].Name)
	assert.Equal(t, model.DefaultPointName, arc.Segments[0].Start.Name)
	assert.Equal(t, "Into the Vale", arc.Segments[1].Name)
	assert.Equal(t, model.DefaultPointName, arc.Segments[1].Start.Name)
	assert.Equal(t, "The Crossing", arc.Segments[1].End.Name)
	assert.Equal(t, model.DefaultDescription, arc.Segments[1].End.Description)

	require.Len(t, c.Characters, 1)
	ch := c.Characters[0]
	assert.Equal(t, "Mirelle", ch.Name)
	assert.Equal(t, float64(12), ch.Attributes["strength"])
	assert.Equal(t, float64(0), ch.Attributes["wit"])
	require.Len(t, ch.Storyline, 2)
	assert.Equal(t, model.NewIdentifier(model.KindArc, 1), ch.Storyline[0])
	assert.True(t, ch.Storyline[1].IsSentinel())
}

func TestArcNameHasNoMinimumLength(t *testing.T) {
	// An arc may legitimately be unnamed; a point may not.
	arc := Arc(map[string]any{"name": ""})
	assert.Equal(t, "", arc.Name)

	point := Point(map[string]any{"name": ""})
	assert.Equal(t, model.DefaultPointName, point.Name)
}

func TestDefaultValuesTemplateValidates(t *testing.T) {
	// The blank editor template for an arc keeps its empty name.
	tmpl := model.DefaultValues(model.KindArc)
	arc := Arc(tmpl)
	assert.Equal(t, model.NewIdentifier(model.KindArc, 0), arc.ObjID)
	assert.Equal(t, "", arc.Name)
	assert.Empty(t, arc.Segments)
}

func TestPointObjectiveWeakReference(t *testing.T) {
	// Absent stays absent.
	p := Point(map[string]any{"name": "The Gate"})
	assert.Nil(t, p.Objective)

	// Well-formed reference survives.
	p = Point(map[string]any{
		"name":      "The Gate",
		"objective": map[string]any{"prefix": "OBJ", "numeric": float64(4)},
	})
	require.NotNil(t, p.Objective)
	assert.Equal(t, model.NewIdentifier(model.KindObjective, 4), *p.Objective)

	// A reference of the wrong kind degrades to the sentinel, which later
	// resolves to not-found.
	p = Point(map[string]any{
		"name":      "The Gate",
		"objective": map[string]any{"prefix": "CH", "numeric": float64(4)},
	})
	require.NotNil(t, p.Objective)
	assert.True(t, p.Objective.IsSentinel())
}

func TestValidateNeverLeavesFieldsUnset(t *testing.T) {
	ch := Character(nil)
	assert.NotNil(t, ch.Attributes)
	assert.NotNil(t, ch.Skills)
	assert.NotNil(t, ch.Storyline)
	assert.NotNil(t, ch.Inventory)
	assert.Equal(t, model.DefaultCharacterName, ch.Name)
	assert.Equal(t, model.DefaultDescription, ch.Description)

	loc := Location(map[string]any{"coordinate": map[string]any{"x": "east"}})
	assert.Nil(t, loc.Coordinate)
	assert.NotNil(t, loc.Neighbors)

	loc = Location(map[string]any{"coordinate": map[string]any{"x": float64(1), "y": float64(2), "z": float64(3)}})
	require.NotNil(t, loc.Coordinate)
	require.NotNil(t, loc.Coordinate.Z)
	assert.Equal(t, float64(3), *loc.Coordinate.Z)
}

func TestValidationRoundTripIsIdempotent(t *testing.T) {
	payload := validCampaignPayload()
	payload["arcs"] = []any{
		map[string]any{"name": "Act One", "segments": []any{map[string]any{}}},
	}
	payload["objectives"] = []any{map[string]any{"name": "Break the siege", "completed": true}}

	first, err := Campaign(payload)
	require.NoError(t, err)

	// Serialize the healed tree and validate again: already-valid data must
	// pass through untouched.
	data, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := Campaign(json.RawMessage(data))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateDispatch(t *testing.T) {
	v, err := Validate(model.KindRule, map[string]any{"name": "No resurrection"})
	require.NoError(t, err)
	rule, ok := v.(model.Rule)
	require.True(t, ok)
	assert.Equal(t, "No resurrection", rule.Name)

	_, err = Validate(model.Kind("dragon"), nil)
	assert.Error(t, err)
}
