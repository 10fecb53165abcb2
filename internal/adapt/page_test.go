package adapt

import (
	"context"
	"errors"
	"testing"
)

func TestPaginateInvariants(t *testing.T) {
	limits := Limits{Default: 100, Max: 1000}
	cases := []struct {
		name          string
		total, offset int
		limit         int
		wantLen       int
		wantHasMore   bool
		wantNext      int // -1 means nil
	}{
		{"first page", 250, 0, 100, 100, true, 100},
		{"middle page", 250, 100, 100, 100, true, 200},
		{"last partial page", 250, 200, 100, 50, false, -1},
		{"offset past end", 250, 300, 100, 0, false, -1},
		{"offset at end", 250, 250, 100, 0, false, -1},
		{"limit above cap clamps", 5000, 0, 9999, 1000, true, 1000},
		{"zero limit uses default", 250, 0, 0, 100, true, 100},
		{"exact fit", 100, 0, 100, 100, false, -1},
		{"empty set", 0, 0, 100, 0, false, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			full := make([]int, c.total)
			for i := range full {
				full[i] = i
			}
			res := Paginate(full, PageRequest{Offset: c.offset, Limit: c.limit}, limits)

			if len(res.Items) != c.wantLen {
				t.Fatalf("items length = %d, want %d", len(res.Items), c.wantLen)
			}
			if res.Total != c.total {
				t.Fatalf("total = %d, want %d", res.Total, c.total)
			}
			if res.HasMore != c.wantHasMore {
				t.Fatalf("hasMore = %v, want %v", res.HasMore, c.wantHasMore)
			}
			if c.wantNext == -1 {
				if res.NextOffset != nil {
					t.Fatalf("nextOffset = %d, want nil", *res.NextOffset)
				}
			} else {
				if res.NextOffset == nil || *res.NextOffset != c.wantNext {
					t.Fatalf("nextOffset = %v, want %d", res.NextOffset, c.wantNext)
				}
			}
			// Window content must line up with the offset.
			if c.wantLen > 0 && res.Items[0] != c.offset {
				t.Fatalf("first item = %d, want %d", res.Items[0], c.offset)
			}
		})
	}
}

func TestFetchPageSwallowsFetchFailure(t *testing.T) {
	boom := errors.New("collection is not available")
	res, err := FetchPage(context.Background(), func(context.Context) ([]string, error) {
		return nil, boom
	}, PageRequest{Limit: 10}, Limits{Default: 10, Max: 100})

	if !errors.Is(err, boom) {
		t.Fatalf("dropped error should still be reported for logging, got %v", err)
	}
	if res.Total != 0 || res.HasMore || res.NextOffset != nil || len(res.Items) != 0 {
		t.Fatalf("failed read should degrade to an empty page, got %+v", res)
	}
	if res.Items == nil {
		t.Fatalf("items must marshal as [], not null")
	}
}

func TestFetchPageSuccess(t *testing.T) {
	res, err := FetchPage(context.Background(), func(context.Context) ([]string, error) {
		return []string{"Default", "Japanese", "Kanji"}, nil
	}, PageRequest{Offset: 1, Limit: 1}, Limits{Default: 10, Max: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0] != "Japanese" {
		t.Fatalf("items = %v, want [Japanese]", res.Items)
	}
	if !res.HasMore || res.NextOffset == nil || *res.NextOffset != 2 {
		t.Fatalf("hasMore/nextOffset wrong: %+v", res)
	}
}
