package model

// Entity kinds composing a campaign document. Ownership is by value
// (Segment.Start, Arc.Segments); cross-entity links are weak references held
// as plain identifiers and resolved by lookup, never as owning pointers.

type Rule struct {
	ObjID       Identifier `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

type Objective struct {
	ObjID       Identifier `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
}

type Point struct {
	ObjID       Identifier  `json:"obj_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	// Objective is a lookup key, not ownership. Nil means the point advances
	// no objective.
	Objective *Identifier `json:"objective,omitempty"`
}

type Segment struct {
	ObjID Identifier `json:"obj_id"`
	Name  string     `json:"name"`
	Start Point      `json:"start"`
	End   Point      `json:"end"`
}

type Arc struct {
	ObjID       Identifier `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	// Segment order is narratively meaningful; insertion order is preserved.
	Segments []Segment `json:"segments"`
}

type Item struct {
	ObjID       Identifier `json:"obj_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

type Character struct {
	ObjID       Identifier         `json:"obj_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Attributes  map[string]float64 `json:"attributes"`
	Skills      map[string]float64 `json:"skills"`
	Storyline   []Identifier       `json:"storyline"`
	Inventory   []Identifier       `json:"inventory"`
}

// Coordinate places a location on a 2D or 3D map. Z is nil for flat maps.
type Coordinate struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

type Location struct {
	ObjID       Identifier   `json:"obj_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Coordinate  *Coordinate  `json:"coordinate,omitempty"`
	Neighbors   []Identifier `json:"neighbors"`
}

// Campaign is the root aggregate. Its scalar fields are required and never
// defaulted: a campaign without a title is absent, not malformed.
type Campaign struct {
	ObjID      Identifier  `json:"obj_id"`
	Title      string      `json:"title"`
	Version    string      `json:"version"`
	Setting    string      `json:"setting"`
	Summary    string      `json:"summary"`
	Arcs       []Arc       `json:"arcs"`
	Characters []Character `json:"characters"`
	Locations  []Location  `json:"locations"`
	Items      []Item      `json:"items"`
	Rules      []Rule      `json:"rules"`
	Objectives []Objective `json:"objectives"`
}
