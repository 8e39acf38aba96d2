package sections

import "encoding/json"

// RawForm is the escape hatch for section keys without a dedicated form
// model: the payload is edited as literal JSON text.
type RawForm struct {
	Content json.RawMessage `json:"content"`
}

func parseRaw(raw []byte) *RawForm {
	// Stored payloads are always valid JSON; an empty or corrupt value
	// degrades to an empty object so the editor still opens.
	if len(raw) == 0 || !json.Valid(raw) {
		return &RawForm{Content: json.RawMessage(`{}`)}
	}
	return &RawForm{Content: json.RawMessage(raw)}
}

func (f *RawForm) Kind() Kind { return KindCustom }

// Serialize rejects invalid JSON instead of persisting it.
func (f *RawForm) Serialize() (json.RawMessage, error) {
	if err := ValidateRaw(f.Content); err != nil {
		return nil, err
	}
	return f.Content, nil
}
