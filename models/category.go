package models

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Category is a backend catalog category.
type Category struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
}

var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsObjectID reports whether s looks like a backend document id.
func IsObjectID(s string) bool {
	return hexIDPattern.MatchString(strings.TrimSpace(s))
}

// CategoryRef is the polymorphic category reference the backend emits: either
// a bare string (a 24-hex document id or a plain category name) or an embedded
// category object. All shape sniffing happens here, once, at the ingestion
// boundary; consumers only ever see ID/Name/Subcategories.
type CategoryRef struct {
	ID            string   `json:"_id,omitempty"`
	Name          string   `json:"name,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if IsObjectID(s) {
			r.ID = s
		} else {
			r.Name = s
		}
		return nil
	}

	type plain CategoryRef
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = CategoryRef(obj)
	return nil
}

// IsZero reports whether the reference carries no information at all.
func (r CategoryRef) IsZero() bool {
	return r.ID == "" && r.Name == "" && len(r.Subcategories) == 0
}
