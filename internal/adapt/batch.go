package adapt

import (
	"context"
	"strconv"
)

// BatchSize is the largest id list AnkiConnect handles reliably in one call.
// Above it, responses degrade; the empirical ceiling is 100.
const BatchSize = 100

// BatchMeta describes how a wrapped result was assembled.
type BatchMeta struct {
	Total     int `json:"total"`
	Batches   int `json:"batches"`
	BatchSize int `json:"batchSize"`
}

// BatchedResult is the wrapped shape returned when the id list had to be
// split. Callers must branch on bare-vs-wrapped: at or under BatchSize the
// dispatcher hands back the remote call's bare result instead.
type BatchedResult struct {
	Items    []any     `json:"items"`
	Metadata BatchMeta `json:"metadata"`
}

// NormalizeIDs coerces identifiers to canonical numeric form. JSON numbers
// become int64; strings are parsed base-10. A string that fails to parse is
// passed through unchanged rather than rejected, so a bad id surfaces
// downstream as a remote-side lookup miss instead of a local error.
func NormalizeIDs(raw []any) []any {
	out := make([]any, len(raw))
	for i, v := range raw {
		out[i] = normalizeID(v)
	}
	return out
}

func normalizeID(v any) any {
	switch id := v.(type) {
	case float64:
		return int64(id)
	case int:
		return int64(id)
	case int64:
		return id
	case string:
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			return n
		}
		return id
	default:
		return v
	}
}

// Chunks splits ids into consecutive slices of at most size elements. The
// chunks are contiguous, non-overlapping, and concatenate back to the input
// in its original order.
func Chunks[T any](ids []T, size int) [][]T {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// Dispatch runs a detail-lookup call over an id list, splitting it when it
// exceeds BatchSize. Chunks run strictly one after another; concurrency here
// would push AnkiConnect over the same ceiling the split exists to avoid.
//
// At or under BatchSize the remote call's result comes back bare. Above it,
// results concatenate in input order inside a BatchedResult wrapper.
func Dispatch(ctx context.Context, rawIDs []any, call func(context.Context, []any) ([]any, error)) (any, error) {
	ids := NormalizeIDs(rawIDs)

	if len(ids) <= BatchSize {
		items, err := call(ctx, ids)
		if err != nil {
			return nil, err
		}
		return items, nil
	}

	chunks := Chunks(ids, BatchSize)
	items := make([]any, 0, len(ids))
	for _, chunk := range chunks {
		part, err := call(ctx, chunk)
		if err != nil {
			return nil, err
		}
		items = append(items, part...)
	}
	return &BatchedResult{
		Items: items,
		Metadata: BatchMeta{
			Total:     len(ids),
			Batches:   len(chunks),
			BatchSize: BatchSize,
		},
	}, nil
}
