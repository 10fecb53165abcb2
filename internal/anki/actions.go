package anki

import (
	"context"
)

// DeckNames lists every deck name in the collection.
func (c *Client) DeckNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invokeInto(ctx, "deckNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateDeck creates a deck and returns its id. Creating an existing deck is
// a no-op on the Anki side.
func (c *Client) CreateDeck(ctx context.Context, name string) (int64, error) {
	var id int64
	if err := c.invokeInto(ctx, "createDeck", map[string]any{"deck": name}, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteDecks removes the named decks together with their cards.
func (c *Client) DeleteDecks(ctx context.Context, names []string) error {
	return c.invokeInto(ctx, "deleteDecks", map[string]any{
		"decks":    names,
		"cardsToo": true,
	}, nil)
}

// FindNotes runs an Anki search query and returns matching note ids.
func (c *Client) FindNotes(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invokeInto(ctx, "findNotes", map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FindCards runs an Anki search query and returns matching card ids.
func (c *Client) FindCards(ctx context.Context, query string) ([]int64, error) {
	var ids []int64
	if err := c.invokeInto(ctx, "findCards", map[string]any{"query": query}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// NotesInfoRaw fetches note details as untyped records, for batched dispatch.
func (c *Client) NotesInfoRaw(ctx context.Context, ids []any) ([]any, error) {
	var out []any
	if err := c.invokeInto(ctx, "notesInfo", map[string]any{"notes": ids}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CardsInfoRaw fetches card details as untyped records, for batched dispatch.
func (c *Client) CardsInfoRaw(ctx context.Context, ids []any) ([]any, error) {
	var out []any
	if err := c.invokeInto(ctx, "cardsInfo", map[string]any{"cards": ids}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CardsInfo fetches typed card details.
func (c *Client) CardsInfo(ctx context.Context, ids []int64) ([]CardDetail, error) {
	var out []CardDetail
	if err := c.invokeInto(ctx, "cardsInfo", map[string]any{"cards": ids}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddNote creates a note and returns the new note id.
func (c *Client) AddNote(ctx context.Context, note NoteInput) (int64, error) {
	var id int64
	if err := c.invokeInto(ctx, "addNote", map[string]any{"note": note}, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateNoteFields replaces field values on an existing note.
func (c *Client) UpdateNoteFields(ctx context.Context, noteID int64, fields map[string]string) error {
	return c.invokeInto(ctx, "updateNoteFields", map[string]any{
		"note": map[string]any{"id": noteID, "fields": fields},
	}, nil)
}

// AddTags attaches space-separated tags to the given notes.
func (c *Client) AddTags(ctx context.Context, noteIDs []int64, tags string) error {
	return c.invokeInto(ctx, "addTags", map[string]any{"notes": noteIDs, "tags": tags}, nil)
}

// RemoveTags detaches space-separated tags from the given notes.
func (c *Client) RemoveTags(ctx context.Context, noteIDs []int64, tags string) error {
	return c.invokeInto(ctx, "removeTags", map[string]any{"notes": noteIDs, "tags": tags}, nil)
}

// Suspend suspends the given cards.
func (c *Client) Suspend(ctx context.Context, cardIDs []int64) (bool, error) {
	var ok bool
	if err := c.invokeInto(ctx, "suspend", map[string]any{"cards": cardIDs}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Unsuspend restores the given cards to their queues.
func (c *Client) Unsuspend(ctx context.Context, cardIDs []int64) (bool, error) {
	var ok bool
	if err := c.invokeInto(ctx, "unsuspend", map[string]any{"cards": cardIDs}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// AreSuspended reports suspension state per card, in input order.
func (c *Client) AreSuspended(ctx context.Context, cardIDs []int64) ([]bool, error) {
	var out []bool
	if err := c.invokeInto(ctx, "areSuspended", map[string]any{"cards": cardIDs}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChangeDeck moves the given cards to another deck.
func (c *Client) ChangeDeck(ctx context.Context, cardIDs []int64, deck string) error {
	return c.invokeInto(ctx, "changeDeck", map[string]any{"cards": cardIDs, "deck": deck}, nil)
}

// ModelNames lists every note type in the collection.
func (c *Client) ModelNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.invokeInto(ctx, "modelNames", nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// ModelFieldNames lists the field names of one note type, in order.
func (c *Client) ModelFieldNames(ctx context.Context, model string) ([]string, error) {
	var names []string
	if err := c.invokeInto(ctx, "modelFieldNames", map[string]any{"modelName": model}, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// Sync triggers a collection sync with AnkiWeb.
func (c *Client) Sync(ctx context.Context) error {
	return c.invokeInto(ctx, "sync", nil, nil)
}
