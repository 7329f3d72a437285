package models

// Faculty is an upstream faculty record.
type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Discipline groups subjects inside a faculty. Read-only for the panel.
type Discipline struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Faculty string `json:"faculty,omitempty"`
}

// Subject is an upstream subject record.
type Subject struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Discipline string `json:"discipline,omitempty"`
}

// EnumOption is a value/label pair served by the upstream enumeration
// endpoints and forwarded to form dropdowns.
type EnumOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
