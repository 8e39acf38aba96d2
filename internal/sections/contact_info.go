package sections

import "encoding/json"

// ContactInfoForm edits the scalar contact fields of a contact-info
// section. All fields are optional; persisted shape is
// {"address":...,"phone":...,"email":...}.
type ContactInfoForm struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func parseContactInfo(raw []byte) *ContactInfoForm {
	form := &ContactInfoForm{}
	// Non-object payloads leave all fields empty.
	_ = json.Unmarshal(raw, form)
	return form
}

func (f *ContactInfoForm) Kind() Kind { return KindContactInfo }

func (f *ContactInfoForm) Serialize() (json.RawMessage, error) {
	return json.Marshal(f)
}
