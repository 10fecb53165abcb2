package anki

import (
	"encoding/json"
	"strings"
)

// NoteInput is the payload for addNote.
type NoteInput struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags,omitempty"`
	Options   *NoteOptions      `json:"options,omitempty"`
}

// NoteOptions carries addNote behavior flags.
type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// NoteField is one field of a stored note.
type NoteField struct {
	Value string `json:"value"`
	Order int    `json:"order"`
}

// NoteDetail is one notesInfo record.
type NoteDetail struct {
	NoteID    int64                `json:"noteId"`
	ModelName string               `json:"modelName"`
	Tags      []string             `json:"tags"`
	Fields    map[string]NoteField `json:"fields"`
}

// CardDetail is one cardsInfo record. Type follows Anki's card type codes:
// 0 new, 1 learning, 2 review, 3 relearning.
type CardDetail struct {
	CardID    int64  `json:"cardId"`
	NoteID    int64  `json:"note"`
	DeckName  string `json:"deckName"`
	ModelName string `json:"modelName"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Due       int64  `json:"due"`
	Interval  int64  `json:"interval"`
	Queue     int    `json:"queue"`
	Type      int    `json:"type"`
}

// NormalizeTags coerces a tag payload into a plain string slice. AnkiConnect
// hands tags back in three shapes depending on the code path: a JSON array,
// a JSON array embedded in a string, or a space-separated string. Everything
// funnels through here before any business logic sees it.
func NormalizeTags(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return []string{}
		}
		if strings.HasPrefix(trimmed, "[") {
			var embedded []string
			if err := json.Unmarshal([]byte(trimmed), &embedded); err == nil {
				return embedded
			}
		}
		return strings.Fields(trimmed)
	default:
		return []string{}
	}
}
