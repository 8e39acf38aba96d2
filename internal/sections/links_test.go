package sections

import (
	"encoding/json"
	"testing"
)

// Saving a links list drops entries with a blank label or URL.
func TestLinksForm_SerializeFiltersIncomplete(t *testing.T) {
	form := NewLinksForm(KindQuickLinks)
	form.Links = []Link{
		{Label: "Home", URL: "/"},
		{Label: "", URL: "/about"},
		{Label: "Careers", URL: ""},
		{Label: "   ", URL: "/x"},
	}

	out, err := form.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var stored struct {
		Links []Link `json:"links"`
	}
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}

	if len(stored.Links) != 1 {
		t.Fatalf("serialized %d links, expected 1: %s", len(stored.Links), out)
	}
	if stored.Links[0].Label != "Home" || stored.Links[0].URL != "/" {
		t.Errorf("surviving link = %+v, expected {Home /}", stored.Links[0])
	}
}

func TestLinksForm_AddUpdateRemove(t *testing.T) {
	form := NewLinksForm(KindLegalLinks)

	idx := form.AddLink()
	if idx != 0 {
		t.Errorf("AddLink() index = %d, expected 0", idx)
	}
	if err := form.UpdateLink(idx, Link{Label: "Privacy", URL: "/privacy"}); err != nil {
		t.Fatalf("UpdateLink() error = %v", err)
	}

	idx2 := form.AddLink()
	if idx2 != 1 {
		t.Errorf("second AddLink() index = %d, expected 1", idx2)
	}

	if err := form.RemoveLink(idx2); err != nil {
		t.Fatalf("RemoveLink() error = %v", err)
	}
	if len(form.Links) != 1 {
		t.Fatalf("after remove, %d links remain, expected 1", len(form.Links))
	}
	if form.Links[0].Label != "Privacy" {
		t.Errorf("remaining link = %+v", form.Links[0])
	}

	if err := form.UpdateLink(5, Link{}); err == nil {
		t.Error("UpdateLink with out-of-range index should error")
	}
	if err := form.RemoveLink(-1); err == nil {
		t.Error("RemoveLink with negative index should error")
	}
}

func TestCompanyInfoForm_SerializeFiltersSocialLinks(t *testing.T) {
	form := &CompanyInfoForm{
		Description: "Fuel storage and distribution.",
		SocialLinks: []SocialLink{
			{Platform: "linkedin", URL: "https://linkedin.com/company/petrobase"},
			{Platform: "", URL: "https://x.com/petrobase"},
			{Platform: "facebook", URL: ""},
		},
	}

	out, err := form.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var stored struct {
		Description string       `json:"description"`
		SocialLinks []SocialLink `json:"social_links"`
	}
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}

	if stored.Description != form.Description {
		t.Errorf("Description = %q", stored.Description)
	}
	if len(stored.SocialLinks) != 1 {
		t.Fatalf("serialized %d social links, expected 1", len(stored.SocialLinks))
	}
	if stored.SocialLinks[0].Platform != "linkedin" {
		t.Errorf("surviving social link = %+v", stored.SocialLinks[0])
	}
}

func TestServicesForm_SerializeFiltersBlanks(t *testing.T) {
	form := &ServicesForm{Services: []string{"Pipeline welding", "", "  ", "Tank inspection"}}

	out, err := form.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var stored struct {
		Services []string `json:"services"`
	}
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}

	if len(stored.Services) != 2 {
		t.Fatalf("serialized %d services, expected 2: %v", len(stored.Services), stored.Services)
	}
	if stored.Services[0] != "Pipeline welding" || stored.Services[1] != "Tank inspection" {
		t.Errorf("services = %v", stored.Services)
	}
}
