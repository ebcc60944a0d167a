package model

// Element is a plain-data snapshot of an accessibility element.
// A nil Actions or Children slice means the attribute was absent; an empty
// non-nil slice means it was present but empty.
type Element struct {
	Role        string    `yaml:"role,omitempty"        json:"role,omitempty"`
	Subrole     string    `yaml:"subrole,omitempty"     json:"subrole,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Actions     []string  `yaml:"actions,omitempty"     json:"actions,omitempty"`
	Children    []Element `yaml:"children,omitempty"    json:"children,omitempty"`
}

