package offers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPluralVariants(t *testing.T) {
	// All three spellings must collapse to the same key.
	assert.Equal(t, "necklace", Canonical("Necklaces"))
	assert.Equal(t, "necklace", Canonical("necklace "))
	assert.Equal(t, "necklace", Canonical("NECKLACE"))
}

func TestCanonical(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Rings ", "ring"},
		{"Anklets", "anklet"},
		{"Categories", "category"},
		{"ACCESSORIES", "accessory"},
		{"Boxes", "box"},
		{"Dresses", "dress"},
		{"charm-bracelets", "charm bracelet"},
		{"charm_bracelets", "charm bracelet"},
		{"Gift   Sets", "gift set"},
		{"glass", "glass"}, // double-s stays put
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Canonical(tc.in), "input %q", tc.in)
	}
}
