package sections

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		key      string
		expected Kind
	}{
		{"company_info", KindCompanyInfo},
		{"quick_links", KindQuickLinks},
		{"legal_links", KindLegalLinks},
		{"services", KindServices},
		{"contact_info", KindContactInfo},
		{"hero_banner", KindCustom},
		{"", KindCustom},
	}

	for _, tt := range tests {
		if got := KindOf(tt.key); got != tt.expected {
			t.Errorf("KindOf(%q) = %q, expected %q", tt.key, got, tt.expected)
		}
	}
}

// Round-trip: parsing a well-formed payload and serializing it back without
// edits must reproduce semantically equal JSON.
func TestRoundTripIdentity(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{
			name: "quick links",
			key:  "quick_links",
			raw:  `{"links":[{"label":"Home","url":"/"},{"label":"Products","url":"/products"}]}`,
		},
		{
			name: "legal links",
			key:  "legal_links",
			raw:  `{"links":[{"label":"Privacy","url":"/privacy"}]}`,
		},
		{
			name: "company info",
			key:  "company_info",
			raw:  `{"description":"Pipelines and terminals since 1987.","social_links":[{"platform":"linkedin","url":"https://linkedin.com/company/petrobase"}]}`,
		},
		{
			name: "services",
			key:  "services",
			raw:  `{"services":["Pipeline construction","Terminal maintenance"]}`,
		},
		{
			name: "contact info",
			key:  "contact_info",
			raw:  `{"address":"12 Refinery Rd","phone":"+31 10 555 0100","email":"info@petrobase.example"}`,
		},
		{
			name: "custom section",
			key:  "hero_banner",
			raw:  `{"heading":"Energy infrastructure","image":"/uploads/hero.jpg"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := ParseForm(tt.key, []byte(tt.raw))
			out, err := form.Serialize()
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}

			var want, got interface{}
			if err := json.Unmarshal([]byte(tt.raw), &want); err != nil {
				t.Fatalf("bad test input: %v", err)
			}
			if err := json.Unmarshal(out, &got); err != nil {
				t.Fatalf("Serialize() produced invalid JSON: %v", err)
			}
			if !reflect.DeepEqual(want, got) {
				t.Errorf("round trip changed payload:\n in: %s\nout: %s", tt.raw, out)
			}
		})
	}
}

// Content that does not match the expected shape degrades to empty
// sub-fields instead of failing.
func TestParseForm_MalformedContent(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"company info given array", "company_info", `["not","an","object"]`},
		{"company info given scalar", "company_info", `42`},
		{"links given object without links", "quick_links", `{"other":"stuff"}`},
		{"links given string list", "quick_links", `{"links":["a","b"]}`},
		{"services given object", "services", `{"services":{"a":1}}`},
		{"contact info given array", "contact_info", `[1,2,3]`},
		{"empty payload", "company_info", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := ParseForm(tt.key, []byte(tt.raw))

			switch f := form.(type) {
			case *CompanyInfoForm:
				if f.Description != "" {
					t.Errorf("Description = %q, expected empty", f.Description)
				}
				if len(f.SocialLinks) != 0 {
					t.Errorf("SocialLinks has %d entries, expected 0", len(f.SocialLinks))
				}
			case *LinksForm:
				if len(f.Links) != 0 {
					t.Errorf("Links has %d entries, expected 0", len(f.Links))
				}
			case *ServicesForm:
				if len(f.Services) != 0 {
					t.Errorf("Services has %d entries, expected 0", len(f.Services))
				}
			case *ContactInfoForm:
				if f.Address != "" || f.Phone != "" || f.Email != "" {
					t.Errorf("contact fields not empty: %+v", f)
				}
			default:
				t.Fatalf("unexpected form type %T", form)
			}

			// Degraded forms must still serialize.
			if _, err := form.Serialize(); err != nil {
				t.Errorf("Serialize() after degraded parse: %v", err)
			}
		})
	}
}

func TestDecodeForm_Strict(t *testing.T) {
	form, err := DecodeForm("quick_links", []byte(`{"links":[{"label":"Home","url":"/"}]}`))
	if err != nil {
		t.Fatalf("DecodeForm() error = %v", err)
	}
	if form.Kind() != KindQuickLinks {
		t.Errorf("Kind() = %q, expected %q", form.Kind(), KindQuickLinks)
	}

	if _, err := DecodeForm("quick_links", []byte(`{"links":`)); err == nil {
		t.Error("DecodeForm should reject truncated JSON")
	}
	if _, err := DecodeForm("company_info", []byte(`[]`)); err == nil {
		t.Error("DecodeForm should reject an array body for company_info")
	}
}

func TestValidateRaw(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid object", `{"a": 1}`, false},
		{"valid array", `[1,2,3]`, false},
		{"valid scalar", `"text"`, false},
		{"missing value", `{"a": }`, true},
		{"trailing comma", `{"a": 1,}`, true},
		{"empty", ``, true},
		{"plain text", `not json`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRaw([]byte(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRaw(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestRawForm_SerializeRejectsInvalid(t *testing.T) {
	form := &RawForm{Content: json.RawMessage(`{"a": }`)}
	if _, err := form.Serialize(); err == nil {
		t.Error("Serialize should reject invalid raw JSON")
	}

	form.Content = json.RawMessage(`{"a": 1}`)
	out, err := form.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if string(out) != `{"a": 1}` {
		t.Errorf("Serialize() = %s, expected passthrough", out)
	}
}
