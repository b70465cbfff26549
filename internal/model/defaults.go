package model

// Recovery defaults for non-root text fields. Every one of these guarantees a
// renderable entity out of a partial or corrupted payload.
const (
	DefaultPointName     = "Unnamed Point"
	DefaultSegmentName   = "Unnamed Segment"
	DefaultItemName      = "Unnamed Item"
	DefaultRuleName      = "Unnamed Rule"
	DefaultObjectiveName = "Unnamed Objective"
	DefaultCharacterName = "Unnamed Character"
	DefaultLocationName  = "Unnamed Location"
	DefaultDescription   = "No description"
)

// DefaultValues returns the blank template an editor starts a new entity
// from. Templates carry a kind-correct zero identifier and empty fields; the
// validation engine fills in recovery defaults where a field demands content.
func DefaultValues(kind Kind) any {
	id := NewIdentifier(kind, 0)
	switch kind {
	case KindRule:
		return &Rule{ObjID: id}
	case KindObjective:
		return &Objective{ObjID: id}
	case KindPoint:
		return &Point{ObjID: id}
	case KindSegment:
		return &Segment{
			ObjID: id,
			Start: Point{ObjID: NewIdentifier(KindPoint, 0)},
			End:   Point{ObjID: NewIdentifier(KindPoint, 0)},
		}
	case KindArc:
		return &Arc{ObjID: id, Segments: []Segment{}}
	case KindItem:
		return &Item{ObjID: id}
	case KindCharacter:
		return &Character{
			ObjID:      id,
			Attributes: map[string]float64{},
			Skills:     map[string]float64{},
			Storyline:  []Identifier{},
			Inventory:  []Identifier{},
		}
	case KindLocation:
		return &Location{ObjID: id, Neighbors: []Identifier{}}
	case KindCampaign:
		return &Campaign{
			ObjID:      id,
			Arcs:       []Arc{},
			Characters: []Character{},
			Locations:  []Location{},
			Items:      []Item{},
			Rules:      []Rule{},
			Objectives: []Objective{},
		}
	default:
		return nil
	}
}
