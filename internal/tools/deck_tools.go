package tools

import (
	"context"

	"anki-mcp-go/internal/adapt"
	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/schema"

	"go.uber.org/zap"
)

// deckListLimits caps the deck listing window. Collections rarely exceed a
// few hundred decks, but the cap keeps pathological setups bounded.
var deckListLimits = adapt.Limits{Default: 100, Max: 10000}

// RegisterDeckTools adds deck management tools.
func RegisterDeckTools(r *Registry, client *anki.Client, logger *zap.Logger) {
	r.Add(Tool{
		Name:        "list_decks",
		Description: "List deck names with offset/limit paging. A failed read returns an empty page rather than an error.",
		Action:      "deckNames",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"offset": schema.Number().Optional().Describe("Start position in the full deck list"),
			"limit":  schema.Number().Optional().Describe("Page size, capped at 10000"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			page, err := adapt.FetchPage(ctx, client.DeckNames, pageRequest(args), deckListLimits)
			if err != nil {
				logger.Warn("deck listing degraded to empty page", zap.Error(err))
			}
			return page, nil
		},
	})

	r.Add(Tool{
		Name:        "create_deck",
		Description: "Create a deck. Creating a deck that already exists is a no-op.",
		Action:      "createDeck",
		Mutating:    true,
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"name": schema.String().Describe("Deck name; use :: for nested decks, e.g. Japanese::JLPT N5"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			name := argString(args, "name")
			id, err := client.CreateDeck(ctx, name)
			if err != nil {
				return nil, err
			}
			return map[string]any{"deckId": id, "name": name}, nil
		},
	})

	r.Add(Tool{
		Name:        "delete_deck",
		Description: "Delete a deck and every card in it.",
		Action:      "deleteDecks",
		Mutating:    true,
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"name": schema.String().Describe("Deck to delete"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			if err := client.DeleteDecks(ctx, []string{argString(args, "name")}); err != nil {
				return nil, err
			}
			// deleteDecks answers null on success; normalize for callers.
			return map[string]any{"success": true}, nil
		},
	})
}

// RegisterSyncTool adds the collection sync trigger.
func RegisterSyncTool(r *Registry, client *anki.Client) {
	r.Add(Tool{
		Name:        "sync",
		Description: "Trigger a collection sync with AnkiWeb.",
		Action:      "sync",
		Mutating:    true,
		Schema:      schema.ObjectOf(map[string]*schema.Field{}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			if err := client.Sync(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"success": true}, nil
		},
	})
}

// RegisterModelTools adds note-type inspection tools.
func RegisterModelTools(r *Registry, client *anki.Client, logger *zap.Logger) {
	r.Add(Tool{
		Name:        "list_models",
		Description: "List note type names with offset/limit paging.",
		Action:      "modelNames",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"offset": schema.Number().Optional(),
			"limit":  schema.Number().Optional(),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			page, err := adapt.FetchPage(ctx, client.ModelNames, pageRequest(args), adapt.Limits{Default: 100, Max: 1000})
			if err != nil {
				logger.Warn("model listing degraded to empty page", zap.Error(err))
			}
			return page, nil
		},
	})

	r.Add(Tool{
		Name:        "model_fields",
		Description: "List the field names of a note type, in order.",
		Action:      "modelFieldNames",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"modelName": schema.String().Describe("Note type name, e.g. Basic"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			fields, err := client.ModelFieldNames(ctx, argString(args, "modelName"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"fields": fields}, nil
		},
	})
}
