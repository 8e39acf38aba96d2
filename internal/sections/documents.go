package sections

import "encoding/json"

// Document is one entry of a product or project document list
// (datasheets, certificates, manuals).
type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (d Document) Complete() bool {
	return !isBlank(d.Name) && !isBlank(d.URL)
}

// ParseDocuments reads a stored document list. Anything that is not a
// list of documents yields an empty list.
func ParseDocuments(raw []byte) []Document {
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil || docs == nil {
		return []Document{}
	}
	return docs
}

// SerializeDocuments emits the canonical list with incomplete entries
// dropped.
func SerializeDocuments(docs []Document) (json.RawMessage, error) {
	return json.Marshal(FilterComplete(docs, Document.Complete))
}
