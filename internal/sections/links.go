package sections

import "encoding/json"

// Link is one entry of a quick-links or legal-links section.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Complete reports whether both required sub-fields are filled.
func (l Link) Complete() bool {
	return !isBlank(l.Label) && !isBlank(l.URL)
}

// LinksForm edits a list of links. The persisted shape is
// {"links":[{"label":...,"url":...}]}.
type LinksForm struct {
	kind  Kind
	Links []Link `json:"links"`
}

// NewLinksForm returns an empty links form of the given kind
// (quick_links or legal_links).
func NewLinksForm(kind Kind) *LinksForm {
	return &LinksForm{kind: kind, Links: []Link{}}
}

func parseLinks(kind Kind, raw []byte) *LinksForm {
	form := NewLinksForm(kind)
	var stored struct {
		Links []Link `json:"links"`
	}
	if err := json.Unmarshal(raw, &stored); err == nil && stored.Links != nil {
		form.Links = stored.Links
	}
	return form
}

func (f *LinksForm) Kind() Kind {
	if f.kind == "" {
		return KindQuickLinks
	}
	return f.kind
}

// AddLink appends an empty row and returns its index.
func (f *LinksForm) AddLink() int {
	var idx int
	f.Links, idx = Append(f.Links, Link{})
	return idx
}

func (f *LinksForm) UpdateLink(i int, link Link) error {
	return UpdateAt(f.Links, i, link)
}

func (f *LinksForm) RemoveLink(i int) error {
	links, err := RemoveAt(f.Links, i)
	if err != nil {
		return err
	}
	f.Links = links
	return nil
}

// Serialize emits the canonical payload. Links missing a label or URL are
// dropped.
func (f *LinksForm) Serialize() (json.RawMessage, error) {
	out := struct {
		Links []Link `json:"links"`
	}{
		Links: FilterComplete(f.Links, Link.Complete),
	}
	return json.Marshal(out)
}
