package tools

import (
	"anki-mcp-go/internal/adapt"
)

func argString(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

func argBool(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// pageRequest pulls the shared offset/limit window out of tool arguments.
// The adapter requires non-negative values, and the schema only checks that
// these are numbers, so negatives off the wire clamp to zero here.
func pageRequest(args map[string]any) adapt.PageRequest {
	offset := argInt(args, "offset")
	if offset < 0 {
		offset = 0
	}
	limit := argInt(args, "limit")
	if limit < 0 {
		limit = 0
	}
	return adapt.PageRequest{
		Offset: offset,
		Limit:  limit,
	}
}

// argIDs extracts a validated numeric id list.
func argIDs(args map[string]any, key string) []int64 {
	raw, _ := args[key].([]any)
	out := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch id := v.(type) {
		case float64:
			out = append(out, int64(id))
		case int64:
			out = append(out, id)
		case int:
			out = append(out, int64(id))
		}
	}
	return out
}

func argStrings(args map[string]any, key string) []string {
	raw, _ := args[key].([]any)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argStringMap(args map[string]any, key string) map[string]string {
	raw, _ := args[key].(map[string]any)
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
