// Package adapt contains the adapter layer between tool handlers and
// AnkiConnect: virtual pagination over unbounded result sets, batched
// dispatch of oversized id lists, and the merged due-queue view.
package adapt

import "context"

// Limits holds per-operation pagination bounds. Every listing operation
// defines its own cap; requests above it are clamped, a zero limit falls
// back to the default.
type Limits struct {
	Default int
	Max     int
}

func (l Limits) effective(limit int) int {
	if limit <= 0 {
		limit = l.Default
	}
	if l.Max > 0 && limit > l.Max {
		limit = l.Max
	}
	return limit
}

// PageRequest is an offset/limit window. Callers are responsible for
// non-negative values; the adapter does not validate them.
type PageRequest struct {
	Offset int
	Limit  int
}

// PageResult is one window over a full result set.
type PageResult[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	HasMore    bool `json:"hasMore"`
	NextOffset *int `json:"nextOffset,omitempty"`
}

// Paginate slices a fully-materialized result set into the requested window.
// AnkiConnect listing calls always return everything, so windowing happens
// entirely on our side.
func Paginate[T any](full []T, req PageRequest, limits Limits) PageResult[T] {
	eff := limits.effective(req.Limit)
	total := len(full)

	start := req.Offset
	if start > total {
		start = total
	}
	end := start + eff
	if end > total {
		end = total
	}

	res := PageResult[T]{
		Items:   full[start:end],
		Total:   total,
		HasMore: req.Offset+eff < total,
	}
	if res.Items == nil {
		res.Items = []T{}
	}
	if res.HasMore {
		next := req.Offset + eff
		res.NextOffset = &next
	}
	return res
}

// FetchPage runs a listing fetch and windows its result. A fetch failure is
// swallowed into an empty successful page: search-style reads degrade rather
// than propagate, unlike mutating calls. The dropped error is returned
// separately so callers that want to log it can.
func FetchPage[T any](ctx context.Context, fetch func(context.Context) ([]T, error), req PageRequest, limits Limits) (PageResult[T], error) {
	full, err := fetch(ctx)
	if err != nil {
		return PageResult[T]{Items: []T{}}, err
	}
	return Paginate(full, req, limits), nil
}
