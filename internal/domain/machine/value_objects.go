package machine

import "strings"

// Specs is the structured replacement for the free-form attribute bag that
// accompanied listings historically. Absent fields stay nil; callers must not
// sniff shapes at runtime.
type Specs struct {
	Images     []string `json:"images,omitempty"`
	Gallery    []string `json:"gallery,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Location   *string  `json:"location,omitempty"`
}

func (s Specs) IsZero() bool {
	return len(s.Images) == 0 && len(s.Gallery) == 0 && len(s.Highlights) == 0 && s.Location == nil
}

// Normalize drops empty strings and whitespace-only entries so persisted specs
// never carry junk values.
func (s Specs) Normalize() Specs {
	out := Specs{
		Images:     cleanList(s.Images),
		Gallery:    cleanList(s.Gallery),
		Highlights: cleanList(s.Highlights),
	}
	if s.Location != nil {
		if loc := strings.TrimSpace(*s.Location); loc != "" {
			out.Location = &loc
		}
	}
	return out
}

func cleanList(in []string) []string {
	var out []string
	for _, v := range in {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
