package domain

import "encoding/json"

// RawJob is one posting as the upstream search API returns it, before any
// cleaning. Company and location arrive either as a plain string or as a
// nested object carrying a display name; NameField resolves that variant
// once at decode time so nothing downstream has to re-check the shape.
type RawJob struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     NameField `json:"company"`
	Location    NameField `json:"location"`
	SalaryMin   float64   `json:"salary_min"`
	SalaryMax   float64   `json:"salary_max"`
	Description string    `json:"description"`
	RedirectURL string    `json:"redirect_url"`
}

// NameField holds a name that upstream sends as either `"Acme"` or
// `{"display_name": "Acme"}`.
type NameField struct {
	value string
	set   bool
}

// PlainName builds a NameField from a bare string, mainly for tests.
func PlainName(s string) NameField {
	return NameField{value: s, set: true}
}

func (f *NameField) UnmarshalJSON(b []byte) error {
	f.set = true

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.value = s
		return nil
	}

	var obj struct {
		DisplayName *string `json:"display_name"`
	}
	if err := json.Unmarshal(b, &obj); err == nil && obj.DisplayName != nil {
		f.value = *obj.DisplayName
		return nil
	}

	// Any other shape degrades to Unknown rather than failing the record.
	f.value = "Unknown"
	return nil
}

func (f NameField) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Resolve())
}

// Resolve returns the display name. A field that was absent from the
// payload resolves to "Unknown"; a plain empty string passes through.
func (f NameField) Resolve() string {
	if !f.set {
		return "Unknown"
	}
	return f.value
}
