package sections

import "encoding/json"

// SocialLink is one social-media entry of a company-info section.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

func (l SocialLink) Complete() bool {
	return !isBlank(l.Platform) && !isBlank(l.URL)
}

// CompanyInfoForm edits the footer company block: a description plus a
// list of social links. Persisted shape is
// {"description":...,"social_links":[...]}.
type CompanyInfoForm struct {
	Description string       `json:"description"`
	SocialLinks []SocialLink `json:"social_links"`
}

func parseCompanyInfo(raw []byte) *CompanyInfoForm {
	form := &CompanyInfoForm{SocialLinks: []SocialLink{}}
	var stored struct {
		Description string       `json:"description"`
		SocialLinks []SocialLink `json:"social_links"`
	}
	// A payload that is not an object (old data, manual edits) leaves the
	// form empty rather than failing.
	if err := json.Unmarshal(raw, &stored); err == nil {
		form.Description = stored.Description
		if stored.SocialLinks != nil {
			form.SocialLinks = stored.SocialLinks
		}
	}
	return form
}

func (f *CompanyInfoForm) Kind() Kind { return KindCompanyInfo }

// AddSocialLink appends an empty row and returns its index.
func (f *CompanyInfoForm) AddSocialLink() int {
	var idx int
	f.SocialLinks, idx = Append(f.SocialLinks, SocialLink{})
	return idx
}

func (f *CompanyInfoForm) UpdateSocialLink(i int, link SocialLink) error {
	return UpdateAt(f.SocialLinks, i, link)
}

func (f *CompanyInfoForm) RemoveSocialLink(i int) error {
	links, err := RemoveAt(f.SocialLinks, i)
	if err != nil {
		return err
	}
	f.SocialLinks = links
	return nil
}

// Serialize emits the canonical payload with incomplete social links
// filtered out.
func (f *CompanyInfoForm) Serialize() (json.RawMessage, error) {
	out := struct {
		Description string       `json:"description"`
		SocialLinks []SocialLink `json:"social_links"`
	}{
		Description: f.Description,
		SocialLinks: FilterComplete(f.SocialLinks, SocialLink.Complete),
	}
	return json.Marshal(out)
}
