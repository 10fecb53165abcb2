package anki

import (
	"context"
	"fmt"

	"anki-mcp-go/internal/adapt"
)

// categoryQueries maps each due-queue category to the Anki search that
// selects exactly that disjoint subset.
var categoryQueries = map[adapt.Category]string{
	adapt.CategoryLearning: "is:learning",
	adapt.CategoryReview:   "is:due -is:learning",
	adapt.CategoryNew:      "is:new",
}

// QueueSource adapts the client to the merge engine's fetch interface.
type QueueSource struct {
	client *Client
}

// NewQueueSource wraps a client for due-queue queries.
func NewQueueSource(c *Client) *QueueSource {
	return &QueueSource{client: c}
}

// CategoryIDs fetches the card ids of one category, optionally scoped to a
// deck.
func (s *QueueSource) CategoryIDs(ctx context.Context, cat adapt.Category, deck string) ([]int64, error) {
	query, ok := categoryQueries[cat]
	if !ok {
		return nil, fmt.Errorf("unknown due-queue category %q", cat)
	}
	if deck != "" {
		query = fmt.Sprintf("deck:%q %s", deck, query)
	}
	return s.client.FindCards(ctx, query)
}

// CardDetails fetches card details and classifies each record by its card
// type code. The three categories partition the codes exhaustively: learning
// and relearning cards are both short-interval active recall.
func (s *QueueSource) CardDetails(ctx context.Context, ids []int64) ([]adapt.QueueCard, error) {
	details, err := s.client.CardsInfo(ctx, ids)
	if err != nil {
		return nil, err
	}
	cards := make([]adapt.QueueCard, len(details))
	for i, d := range details {
		cards[i] = adapt.QueueCard{
			ID:       d.CardID,
			Deck:     d.DeckName,
			Question: d.Question,
			Answer:   d.Answer,
			Due:      d.Due,
			Interval: d.Interval,
			Category: classifyCard(d),
		}
	}
	return cards, nil
}

func classifyCard(d CardDetail) adapt.Category {
	switch d.Type {
	case 1, 3: // learning, relearning
		return adapt.CategoryLearning
	case 2:
		return adapt.CategoryReview
	default:
		return adapt.CategoryNew
	}
}
