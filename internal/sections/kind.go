// Package sections implements the bidirectional mapping between the JSON
// payload stored in a content section and its form-friendly editable
// representation. Payloads are dispatched on the section key to a typed form
// model; unknown keys fall through to a raw-JSON form. Parsing is lenient
// (old or malformed data never blocks editing), serialization is canonical
// (incomplete rows are filtered, never persisted as holes).
package sections

// Kind identifies the semantic shape of a section payload.
type Kind string

const (
	KindCompanyInfo Kind = "company_info"
	KindQuickLinks  Kind = "quick_links"
	KindLegalLinks  Kind = "legal_links"
	KindServices    Kind = "services"
	KindContactInfo Kind = "contact_info"
	KindCustom      Kind = "custom"
)

// KindOf maps a section key to its kind. Keys without a dedicated form
// model are KindCustom and edited as raw JSON.
func KindOf(sectionKey string) Kind {
	switch Kind(sectionKey) {
	case KindCompanyInfo, KindQuickLinks, KindLegalLinks, KindServices, KindContactInfo:
		return Kind(sectionKey)
	default:
		return KindCustom
	}
}
