package sections

import "encoding/json"

// ServicesForm edits the plain list of service names shown in the footer
// and on the home page. Persisted shape is {"services":["..."]}.
type ServicesForm struct {
	Services []string `json:"services"`
}

func parseServices(raw []byte) *ServicesForm {
	form := &ServicesForm{Services: []string{}}
	var stored struct {
		Services []string `json:"services"`
	}
	if err := json.Unmarshal(raw, &stored); err == nil && stored.Services != nil {
		form.Services = stored.Services
	}
	return form
}

func (f *ServicesForm) Kind() Kind { return KindServices }

// AddService appends an empty row and returns its index.
func (f *ServicesForm) AddService() int {
	var idx int
	f.Services, idx = Append(f.Services, "")
	return idx
}

func (f *ServicesForm) UpdateService(i int, name string) error {
	return UpdateAt(f.Services, i, name)
}

func (f *ServicesForm) RemoveService(i int) error {
	services, err := RemoveAt(f.Services, i)
	if err != nil {
		return err
	}
	f.Services = services
	return nil
}

// Serialize emits the canonical payload with blank entries filtered out.
func (f *ServicesForm) Serialize() (json.RawMessage, error) {
	out := struct {
		Services []string `json:"services"`
	}{
		Services: FilterComplete(f.Services, func(s string) bool { return !isBlank(s) }),
	}
	return json.Marshal(out)
}
