package adapt

import (
	"context"
	"sort"
)

// Category partitions due-queue cards into three disjoint states.
type Category string

const (
	CategoryLearning Category = "learning" // short-interval active recall
	CategoryReview   Category = "review"   // long-interval, currently due
	CategoryNew      Category = "new"      // never studied
)

// QueueCard is one card in the merged due queue.
type QueueCard struct {
	ID       int64    `json:"cardId"`
	Deck     string   `json:"deckName"`
	Question string   `json:"question,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Due      int64    `json:"due"`
	Interval int64    `json:"interval"`
	Category Category `json:"category"`
}

// QueueSource supplies the per-category id queries and the detail lookup the
// merge engine composes. Nothing is cached: every merge call fetches fresh.
type QueueSource interface {
	CategoryIDs(ctx context.Context, cat Category, deck string) ([]int64, error)
	CardDetails(ctx context.Context, ids []int64) ([]QueueCard, error)
}

// QueueLimits bounds the merged due-queue page window.
var QueueLimits = Limits{Default: 50, Max: 1000}

// Breakdown counts cards per category. In a DueQueuePage it covers only the
// returned page; the global totals live in Total.
type Breakdown struct {
	Learning int `json:"learning"`
	Review   int `json:"review"`
	New      int `json:"new"`
}

// DueQueuePage is one window of the merged queue.
type DueQueuePage struct {
	Cards      []QueueCard `json:"cards"`
	Total      int         `json:"total"`
	HasMore    bool        `json:"hasMore"`
	NextOffset *int        `json:"nextOffset,omitempty"`
	Breakdown  Breakdown   `json:"breakdown"`
}

// MergeDueQueue approximates the scheduler's presentation order from three
// disjoint queries: learning first, then due reviews, then new cards. The
// categories are concatenated in that fixed order with no interleaving; this
// is a deliberate approximation, not the scheduler's true order.
//
// Details are fetched only for the sliced window, split along the batch
// ceiling when the window exceeds it. The breakdown is computed over the
// returned page, not the global totals.
func MergeDueQueue(ctx context.Context, src QueueSource, deck string, req PageRequest) (*DueQueuePage, error) {
	merged, err := fetchMergedIDs(ctx, src, deck, CategoryLearning, CategoryReview, CategoryNew)
	if err != nil {
		return nil, err
	}

	page := Paginate(merged, req, QueueLimits)
	cards, err := fetchWindowDetails(ctx, src, page.Items)
	if err != nil {
		return nil, err
	}

	out := &DueQueuePage{
		Cards:      cards,
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextOffset: page.NextOffset,
	}
	for _, c := range cards {
		switch c.Category {
		case CategoryLearning:
			out.Breakdown.Learning++
		case CategoryReview:
			out.Breakdown.Review++
		case CategoryNew:
			out.Breakdown.New++
		}
	}
	return out, nil
}

// CategoryDetail is one category's slice of the detailed view. Total is the
// category's global count, while Cards holds only the page-window records,
// due ascending.
type CategoryDetail struct {
	Total int         `json:"total"`
	Cards []QueueCard `json:"cards"`
}

// DetailedQueue is the second due-queue view: learning and review only, new
// cards excluded. Unlike DueQueuePage's page-local breakdown, the per-category
// totals here are global.
type DetailedQueue struct {
	Learning   CategoryDetail `json:"learning"`
	Review     CategoryDetail `json:"review"`
	Total      int            `json:"total"`
	HasMore    bool           `json:"hasMore"`
	NextOffset *int           `json:"nextOffset,omitempty"`
}

// DetailBreakdown builds the detailed categorized view over learning and due
// review cards.
func DetailBreakdown(ctx context.Context, src QueueSource, deck string, req PageRequest) (*DetailedQueue, error) {
	learning, err := src.CategoryIDs(ctx, CategoryLearning, deck)
	if err != nil {
		return nil, err
	}
	review, err := src.CategoryIDs(ctx, CategoryReview, deck)
	if err != nil {
		return nil, err
	}

	merged := make([]int64, 0, len(learning)+len(review))
	merged = append(merged, learning...)
	merged = append(merged, review...)

	page := Paginate(merged, req, QueueLimits)
	cards, err := fetchWindowDetails(ctx, src, page.Items)
	if err != nil {
		return nil, err
	}

	out := &DetailedQueue{
		Learning:   CategoryDetail{Total: len(learning), Cards: []QueueCard{}},
		Review:     CategoryDetail{Total: len(review), Cards: []QueueCard{}},
		Total:      page.Total,
		HasMore:    page.HasMore,
		NextOffset: page.NextOffset,
	}
	for _, c := range cards {
		switch c.Category {
		case CategoryLearning:
			out.Learning.Cards = append(out.Learning.Cards, c)
		case CategoryReview:
			out.Review.Cards = append(out.Review.Cards, c)
		}
	}
	sortByDue(out.Learning.Cards)
	sortByDue(out.Review.Cards)
	return out, nil
}

func fetchMergedIDs(ctx context.Context, src QueueSource, deck string, cats ...Category) ([]int64, error) {
	var merged []int64
	for _, cat := range cats {
		ids, err := src.CategoryIDs(ctx, cat, deck)
		if err != nil {
			return nil, err
		}
		merged = append(merged, ids...)
	}
	return merged, nil
}

// fetchWindowDetails looks up card details for a page window, honoring the
// batch ceiling with sequential chunked calls.
func fetchWindowDetails(ctx context.Context, src QueueSource, ids []int64) ([]QueueCard, error) {
	cards := make([]QueueCard, 0, len(ids))
	for _, chunk := range Chunks(ids, BatchSize) {
		part, err := src.CardDetails(ctx, chunk)
		if err != nil {
			return nil, err
		}
		cards = append(cards, part...)
	}
	return cards, nil
}

func sortByDue(cards []QueueCard) {
	sort.Slice(cards, func(i, j int) bool { return cards[i].Due < cards[j].Due })
}
