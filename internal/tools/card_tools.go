package tools

import (
	"context"
	"fmt"

	"anki-mcp-go/internal/adapt"
	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/schema"

	"go.uber.org/zap"
)

var cardSearchLimits = adapt.Limits{Default: 100, Max: 1000}

// RegisterCardTools adds card search, detail and state tools.
func RegisterCardTools(r *Registry, client *anki.Client, logger *zap.Logger) {
	r.Add(Tool{
		Name:        "find_cards",
		Description: "Search cards with Anki query syntax, paged. A failed search returns an empty page rather than an error.",
		Action:      "findCards",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"query":  schema.String().Describe(`Anki search query, e.g. deck:"Japanese" is:due`),
			"offset": schema.Number().Optional(),
			"limit":  schema.Number().Optional().Describe("Page size, capped at 1000"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			query := argString(args, "query")
			page, err := adapt.FetchPage(ctx, func(ctx context.Context) ([]int64, error) {
				return client.FindCards(ctx, query)
			}, pageRequest(args), cardSearchLimits)
			if err != nil {
				logger.Warn("card search degraded to empty page",
					zap.String("query", query), zap.Error(err))
			}
			return page, nil
		},
	})

	r.Add(Tool{
		Name:        "get_cards",
		Description: "Fetch card details by id. Lists above 100 ids are dispatched in sequential batches and wrapped with batch metadata.",
		Action:      "cardsInfo",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"cardIds": schema.ArrayOf(schema.UnionOf(schema.KindString, schema.KindNumber)).Describe("Card ids, numeric or string"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			raw, _ := args["cardIds"].([]any)
			return adapt.Dispatch(ctx, raw, client.CardsInfoRaw)
		},
	})

	r.Add(Tool{
		Name:        "suspend_cards",
		Description: "Suspend cards so they stop appearing in reviews.",
		Action:      "suspend",
		Mutating:    true,
		Schema:      cardIDsSchema(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			ok, err := client.Suspend(ctx, argIDs(args, "cardIds"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"success": ok}, nil
		},
	})

	r.Add(Tool{
		Name:        "unsuspend_cards",
		Description: "Return suspended cards to their queues.",
		Action:      "unsuspend",
		Mutating:    true,
		Schema:      cardIDsSchema(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			ok, err := client.Unsuspend(ctx, argIDs(args, "cardIds"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"success": ok}, nil
		},
	})

	r.Add(Tool{
		Name:        "are_suspended",
		Description: "Report per-card suspension state, in input order.",
		Action:      "areSuspended",
		Schema:      cardIDsSchema(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			states, err := client.AreSuspended(ctx, argIDs(args, "cardIds"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"suspended": states}, nil
		},
	})

	r.Add(Tool{
		Name:        "change_deck",
		Description: "Move cards to another deck.",
		Action:      "changeDeck",
		Mutating:    true,
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"cardIds": schema.ArrayOf(schema.Number()).Describe("Cards to move"),
			"deck":    schema.String().Describe("Destination deck; created if missing"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			ids := argIDs(args, "cardIds")
			deck := argString(args, "deck")
			if err := client.ChangeDeck(ctx, ids, deck); err != nil {
				return nil, err
			}
			return fmt.Sprintf("Moved %d cards to %s", len(ids), deck), nil
		},
	})
}

func cardIDsSchema() *schema.Field {
	return schema.ObjectOf(map[string]*schema.Field{
		"cardIds": schema.ArrayOf(schema.Number()).Describe("Card ids"),
	})
}
