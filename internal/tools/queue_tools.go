package tools

import (
	"context"

	"anki-mcp-go/internal/adapt"
	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/schema"
)

// RegisterQueueTools adds the merged due-queue views. Both approximate the
// scheduler: cards come back learning first, then due reviews, then new,
// with no cross-category interleaving.
func RegisterQueueTools(r *Registry, client *anki.Client) {
	src := anki.NewQueueSource(client)

	r.Add(Tool{
		Name: "due_queue",
		Description: "Page through the approximate review queue: learning cards, then due reviews, then new cards. " +
			"The breakdown counts categories within the returned page only; total covers the whole queue.",
		Action: "findCards",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"deck":   schema.String().Optional().Describe("Restrict to one deck"),
			"offset": schema.Number().Optional(),
			"limit":  schema.Number().Optional().Describe("Page size, capped at 1000"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return adapt.MergeDueQueue(ctx, src, argString(args, "deck"), pageRequest(args))
		},
	})

	r.Add(Tool{
		Name: "due_breakdown",
		Description: "Detailed due view over learning and review cards only, sorted by due within each category. " +
			"Per-category totals are global, unlike due_queue's page-local breakdown.",
		Action: "findCards",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"deck":   schema.String().Optional().Describe("Restrict to one deck"),
			"offset": schema.Number().Optional(),
			"limit":  schema.Number().Optional().Describe("Page size, capped at 1000"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			return adapt.DetailBreakdown(ctx, src, argString(args, "deck"), pageRequest(args))
		},
	})
}
