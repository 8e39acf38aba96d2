package sections

import (
	"encoding/json"
	"sort"
)

// SpecPair is one editable specification row. The persisted shape is an
// object map; the editable shape is an ordered list of pairs. Row order is
// an editing convenience only and is not persisted.
type SpecPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (p SpecPair) Complete() bool {
	return !isBlank(p.Key)
}

// ParseSpecifications reads a stored specification map into rows sorted by
// key, so the form renders deterministically. Mismatched data yields an
// empty row list.
func ParseSpecifications(raw []byte) []SpecPair {
	var stored map[string]string
	if err := json.Unmarshal(raw, &stored); err != nil || stored == nil {
		return []SpecPair{}
	}

	keys := make([]string, 0, len(stored))
	for k := range stored {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]SpecPair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, SpecPair{Key: k, Value: stored[k]})
	}
	return pairs
}

// SerializeSpecifications rebuilds the object map from the rows. Pairs
// with a blank key are excluded; a duplicated key keeps the last row's
// value.
func SerializeSpecifications(pairs []SpecPair) (json.RawMessage, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range FilterComplete(pairs, SpecPair.Complete) {
		out[p.Key] = p.Value
	}
	return json.Marshal(out)
}
