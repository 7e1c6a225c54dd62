package cart

import (
	"fmt"
	"strings"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

// MakeCartKey derives the deterministic identity of a cart line. Lines with
// the same product, variant discriminator and (normalized) engraving text
// merge under one key; any difference in engraving text yields a distinct
// line. The variant discriminator is the variant id when present, then the
// variant color, then the literal "default".
func MakeCartKey(line models.CartLine) string {
	v := line.VariantID
	if v == "" {
		v = line.VariantColor
	}
	if v == "" {
		v = "default"
	}
	fn := strings.ToLower(strings.TrimSpace(line.EngravingFirstName))
	ln := strings.ToLower(strings.TrimSpace(line.EngravingLastName))
	return fmt.Sprintf("%s__%s__fn_%s__ln_%s", line.ProductID, v, fn, ln)
}
