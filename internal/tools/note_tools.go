package tools

import (
	"context"
	"fmt"
	"strings"

	"anki-mcp-go/internal/adapt"
	"anki-mcp-go/internal/anki"
	"anki-mcp-go/internal/schema"

	"go.uber.org/zap"
)

var noteSearchLimits = adapt.Limits{Default: 50, Max: 100}

// RegisterNoteTools adds note creation, editing and search tools.
func RegisterNoteTools(r *Registry, client *anki.Client, logger *zap.Logger) {
	r.Add(Tool{
		Name:        "add_note",
		Description: "Add a note to a deck. Fails on duplicates unless allowDuplicate is set.",
		Action:      "addNote",
		Mutating:    true,
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"deckName":  schema.String().Describe("Target deck"),
			"modelName": schema.String().Default("Basic").Describe("Note type"),
			"fields": schema.ObjectOf(map[string]*schema.Field{
				"Front": schema.String().Optional(),
				"Back":  schema.String().Optional(),
			}).Describe("Field values keyed by field name; keys depend on the note type"),
			"tags":           schema.ArrayOf(schema.String()).Optional().Describe("Tags to attach"),
			"allowDuplicate": schema.Boolean().Optional().Default(false).Describe("Add the note even if an identical one exists"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			note := anki.NoteInput{
				DeckName:  argString(args, "deckName"),
				ModelName: argString(args, "modelName"),
				Fields:    argStringMap(args, "fields"),
				Tags:      argStrings(args, "tags"),
			}
			if argBool(args, "allowDuplicate") {
				note.Options = &anki.NoteOptions{AllowDuplicate: true}
			}
			id, err := client.AddNote(ctx, note)
			if err != nil {
				return nil, err
			}
			return map[string]any{"noteId": id}, nil
		},
	})

	r.Add(Tool{
		Name:        "update_note",
		Description: "Replace field values on an existing note.",
		Action:      "updateNoteFields",
		Mutating:    true,
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"noteId": schema.UnionOf(schema.KindString, schema.KindNumber).Describe("Note id, numeric or as a string"),
			"fields": schema.ObjectOf(map[string]*schema.Field{
				"Front": schema.String().Optional(),
				"Back":  schema.String().Optional(),
			}).Describe("Field values to replace"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			ids := adapt.NormalizeIDs([]any{args["noteId"]})
			id, ok := ids[0].(int64)
			if !ok {
				return nil, fmt.Errorf("update_note: noteId %v is not numeric", args["noteId"])
			}
			if err := client.UpdateNoteFields(ctx, id, argStringMap(args, "fields")); err != nil {
				return nil, err
			}
			return fmt.Sprintf("Updated note %d", id), nil
		},
	})

	r.Add(Tool{
		Name:        "find_notes",
		Description: "Search notes with Anki query syntax, paged. A failed search returns an empty page rather than an error.",
		Action:      "findNotes",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"query":  schema.String().Describe(`Anki search query, e.g. deck:"Japanese" tag:n5`),
			"offset": schema.Number().Optional(),
			"limit":  schema.Number().Optional().Describe("Page size, capped at 100"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			query := argString(args, "query")
			page, err := adapt.FetchPage(ctx, func(ctx context.Context) ([]int64, error) {
				return client.FindNotes(ctx, query)
			}, pageRequest(args), noteSearchLimits)
			if err != nil {
				logger.Warn("note search degraded to empty page",
					zap.String("query", query), zap.Error(err))
			}
			return page, nil
		},
	})

	r.Add(Tool{
		Name:        "get_notes",
		Description: "Fetch note details by id. Lists above 100 ids are dispatched in sequential batches and wrapped with batch metadata.",
		Action:      "notesInfo",
		Schema: schema.ObjectOf(map[string]*schema.Field{
			"noteIds": schema.ArrayOf(schema.UnionOf(schema.KindString, schema.KindNumber)).Describe("Note ids, numeric or string"),
		}),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			raw, _ := args["noteIds"].([]any)
			return adapt.Dispatch(ctx, raw, func(ctx context.Context, chunk []any) ([]any, error) {
				records, err := client.NotesInfoRaw(ctx, chunk)
				if err != nil {
					return nil, err
				}
				for _, rec := range records {
					if m, ok := rec.(map[string]any); ok {
						m["tags"] = anki.NormalizeTags(m["tags"])
					}
				}
				return records, nil
			})
		},
	})

	r.Add(Tool{
		Name:        "add_tags",
		Description: "Attach tags to notes.",
		Action:      "addTags",
		Mutating:    true,
		Schema:      tagArgsSchema(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			if err := client.AddTags(ctx, argIDs(args, "noteIds"), joinTags(args)); err != nil {
				return nil, err
			}
			// addTags answers null on success; normalize for callers.
			return map[string]any{"success": true}, nil
		},
	})

	r.Add(Tool{
		Name:        "remove_tags",
		Description: "Detach tags from notes.",
		Action:      "removeTags",
		Mutating:    true,
		Schema:      tagArgsSchema(),
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			if err := client.RemoveTags(ctx, argIDs(args, "noteIds"), joinTags(args)); err != nil {
				return nil, err
			}
			return map[string]any{"success": true}, nil
		},
	})
}

func tagArgsSchema() *schema.Field {
	return schema.ObjectOf(map[string]*schema.Field{
		"noteIds": schema.ArrayOf(schema.Number()).Describe("Note ids"),
		"tags":    schema.ArrayOf(schema.String()).Describe("Tags"),
	})
}

func joinTags(args map[string]any) string {
	return strings.Join(argStrings(args, "tags"), " ")
}
