package server

import (
	"fmt"
	"strings"

	"github.com/chronicler-app/chronicler/internal/completion"
)

// assemblePrompt folds the request's campaign context around the user prompt.
// Only fields present in the context appear; the builder upstream already
// omitted everything absent.
func assemblePrompt(req completion.CompletionRequest) string {
	var b strings.Builder

	campaign := req.Context.Campaign
	if campaign.Title != "" {
		fmt.Fprintf(&b, "Campaign: %s\n", campaign.Title)
	}
	if campaign.Setting != "" {
		fmt.Fprintf(&b, "Setting: %s\n", campaign.Setting)
	}
	if campaign.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", campaign.Summary)
	}
	writeList(&b, "Story arcs", campaign.Storyline)
	writeList(&b, "Characters", campaign.Characters)
	writeList(&b, "Locations", campaign.Locations)
	writeList(&b, "Items", campaign.Items)
	writeList(&b, "Rules", campaign.Rules)
	writeList(&b, "Objectives", campaign.Objectives)

	entity := req.Context.Entity
	if entity.Field != "" {
		fmt.Fprintf(&b, "\nEditing field %q of %s.\n", entity.Field, entity.ObjID)
	}
	if entity.CurrentValue != "" {
		fmt.Fprintf(&b, "Current text: %s\n", entity.CurrentValue)
	}

	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(req.Prompt)
	return b.String()
}

func writeList(b *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, strings.Join(names, ", "))
}
