package sections

import (
	"encoding/json"
	"fmt"
)

// FormModel is the in-memory, form-friendly representation of a section
// payload. Serialize returns the canonical JSON for the payload's kind with
// incomplete rows filtered out.
type FormModel interface {
	Kind() Kind
	Serialize() (json.RawMessage, error)
}

// ParseForm maps a stored payload to the form model for its section key.
// It never fails: content that does not match the expected shape degrades
// to empty sub-fields, and unknown keys yield a raw-JSON form carrying the
// original bytes. Editing is never blocked by old data.
func ParseForm(sectionKey string, raw []byte) FormModel {
	switch KindOf(sectionKey) {
	case KindCompanyInfo:
		return parseCompanyInfo(raw)
	case KindQuickLinks:
		return parseLinks(KindQuickLinks, raw)
	case KindLegalLinks:
		return parseLinks(KindLegalLinks, raw)
	case KindServices:
		return parseServices(raw)
	case KindContactInfo:
		return parseContactInfo(raw)
	default:
		return parseRaw(raw)
	}
}

// DecodeForm decodes a submitted form body into the form model for the
// section key. Unlike ParseForm it is strict: a body that does not decode
// into the expected shape is a validation error.
func DecodeForm(sectionKey string, body []byte) (FormModel, error) {
	switch kind := KindOf(sectionKey); kind {
	case KindCompanyInfo:
		var form CompanyInfoForm
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("invalid %s form: %w", kind, err)
		}
		return &form, nil
	case KindQuickLinks, KindLegalLinks:
		var form LinksForm
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("invalid %s form: %w", kind, err)
		}
		form.kind = kind
		return &form, nil
	case KindServices:
		var form ServicesForm
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("invalid %s form: %w", kind, err)
		}
		return &form, nil
	case KindContactInfo:
		var form ContactInfoForm
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("invalid %s form: %w", kind, err)
		}
		return &form, nil
	default:
		var form RawForm
		if err := json.Unmarshal(body, &form); err != nil {
			return nil, fmt.Errorf("invalid raw form: %w", err)
		}
		return &form, nil
	}
}

// ValidateRaw checks a raw-JSON payload submitted through the escape-hatch
// editor. Invalid JSON is a recoverable validation error; nothing is
// persisted.
func ValidateRaw(raw []byte) error {
	if len(raw) == 0 {
		return fmt.Errorf("content must not be empty")
	}
	if !json.Valid(raw) {
		return fmt.Errorf("content is not valid JSON")
	}
	return nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
