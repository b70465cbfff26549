package completion

import (
	"github.com/chronicler-app/chronicler/internal/graph"
	"github.com/chronicler-app/chronicler/internal/model"
)

// BuildContext projects a validated campaign snapshot into the context a
// completion request carries. It is a pure read: it never validates, never
// defaults, and never blocks. The snapshot is taken at trigger time so the
// prompt reflects exactly what the user had typed when they asked.
func BuildContext(snapshot *model.Campaign, targetPath, currentValue string) (CompletionContext, error) {
	id, field, err := graph.Owner(snapshot, targetPath)
	if err != nil {
		return CompletionContext{}, err
	}

	ctx := CompletionContext{
		Campaign: CampaignContext{
			Title:      snapshot.Title,
			Setting:    snapshot.Setting,
			Summary:    snapshot.Summary,
			Storyline:  arcNames(snapshot.Arcs),
			Characters: characterNames(snapshot.Characters),
			Locations:  locationNames(snapshot.Locations),
			Items:      itemNames(snapshot.Items),
			Rules:      ruleNames(snapshot.Rules),
			Objectives: objectiveNames(snapshot.Objectives),
		},
		Entity: EntityContext{
			ObjID:        id,
			Field:        field,
			CurrentValue: currentValue,
		},
	}
	return ctx, nil
}

// The remote model needs names, not full subtrees; empty slices collapse to
// omitted fields on the wire.

func arcNames(arcs []model.Arc) []string {
	if len(arcs) == 0 {
		return nil
	}
	names := make([]string, 0, len(arcs))
	for _, a := range arcs {
		names = append(names, a.Name)
	}
	return names
}

func characterNames(chars []model.Character) []string {
	if len(chars) == 0 {
		return nil
	}
	names := make([]string, 0, len(chars))
	for _, c := range chars {
		names = append(names, c.Name)
	}
	return names
}

func locationNames(locs []model.Location) []string {
	if len(locs) == 0 {
		return nil
	}
	names := make([]string, 0, len(locs))
	for _, l := range locs {
		names = append(names, l.Name)
	}
	return names
}

func itemNames(items []model.Item) []string {
	if len(items) == 0 {
		return nil
	}
	names := make([]string, 0, len(items))
	for _, i := range items {
		names = append(names, i.Name)
	}
	return names
}

func ruleNames(rules []model.Rule) []string {
	if len(rules) == 0 {
		return nil
	}
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return names
}

func objectiveNames(objs []model.Objective) []string {
	if len(objs) == 0 {
		return nil
	}
	names := make([]string, 0, len(objs))
	for _, o := range objs {
		names = append(names, o.Name)
	}
	return names
}
