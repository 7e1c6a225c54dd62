package offers

import (
	"math"
	"time"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

// DefaultDifficulty is assumed for products that carry no difficulty tag.
const DefaultDifficulty = "easy"

// Discount is the outcome of resolving a product against the active offers.
// Offers never stack: Percent is the single best applicable percentage and
// Offer the offer that provided it (nil when nothing applied).
type Discount struct {
	Percent float64
	Price   float64
	Offer   *models.Offer
}

// FilterActive keeps offers that are flagged active and not expired at now.
func FilterActive(all []models.Offer, now time.Time) []models.Offer {
	valid := make([]models.Offer, 0, len(all))
	for _, o := range all {
		if !o.Active {
			continue
		}
		if o.ExpiresAt != nil && !o.ExpiresAt.After(now) {
			continue
		}
		valid = append(valid, o)
	}
	return valid
}

// RulePercent picks the offer's discount percentage for the given difficulty.
// Returns 0 when no rule matches or the matching rule carries a percentage
// that is not a finite number greater than zero.
func RulePercent(offer models.Offer, difficulty string) float64 {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	want := Canonical(difficulty)
	for _, rule := range offer.DiscountRules {
		if Canonical(rule.Difficulty) != want {
			continue
		}
		pct := rule.DiscountPercentage
		if math.IsNaN(pct) || math.IsInf(pct, 0) || pct <= 0 {
			return 0
		}
		return pct
	}
	return 0
}

// productCategory is the product's category reference flattened to an id,
// a canonical category name and a canonical subcategory.
type productCategory struct {
	id       string
	catCanon string
	subCanon string
}

func resolveProductCategory(p models.Product) productCategory {
	id := p.Category.ID
	name := p.Category.Name
	if id == "" {
		id = p.CategoryID
	}
	if name == "" {
		name = p.CategoryName
	}
	if id == "" && name == "" {
		name = p.Subcategory
	}
	return productCategory{
		id:       id,
		catCanon: Canonical(name),
		subCanon: Canonical(p.Subcategory),
	}
}

// lookupCategory resolves an offer's category reference against the catalog's
// category list, by id first, then by canonical name. When the reference is
// already an embedded object (or nothing matches) the reference itself is
// used.
func lookupCategory(ref models.CategoryRef, categories []models.Category) models.Category {
	if ref.ID != "" {
		for _, c := range categories {
			if c.ID == ref.ID {
				return c
			}
		}
	}
	if ref.Name != "" {
		want := Canonical(ref.Name)
		for _, c := range categories {
			if Canonical(c.Name) == want {
				return c
			}
		}
	}
	return models.Category{ID: ref.ID, Name: ref.Name, Subcategories: ref.Subcategories}
}

// Applies reports whether the offer's category scope covers the product.
// An offer with no categories is global.
func Applies(p models.Product, offer models.Offer, categories []models.Category) bool {
	if len(offer.Categories) == 0 {
		return true
	}

	pc := resolveProductCategory(p)

	for _, ref := range offer.Categories {
		if ref.IsZero() {
			continue
		}
		cat := lookupCategory(ref, categories)
		catCanon := Canonical(cat.Name)

		if pc.id != "" && cat.ID != "" && cat.ID == pc.id {
			return true
		}
		if pc.catCanon != "" && catCanon != "" && pc.catCanon == catCanon {
			return true
		}
		if pc.subCanon != "" && catCanon != "" && pc.subCanon == catCanon {
			return true
		}

		if offer.ApplyToSubcategories {
			for _, sub := range cat.Subcategories {
				subCanon := Canonical(sub)
				if subCanon == "" {
					continue
				}
				if subCanon == pc.catCanon || subCanon == pc.subCanon {
					return true
				}
			}
		}
	}
	return false
}

// Resolve computes the best discount for a product across all offers active
// at now. A product with no usable base price resolves to percent 0, price 0.
func Resolve(p models.Product, all []models.Offer, categories []models.Category, now time.Time) Discount {
	base := p.Price
	if math.IsNaN(base) || math.IsInf(base, 0) || base <= 0 {
		return Discount{}
	}

	difficulty := p.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	var best Discount
	for _, offer := range FilterActive(all, now) {
		if !Applies(p, offer, categories) {
			continue
		}
		pct := RulePercent(offer, difficulty)
		if pct > best.Percent {
			o := offer
			best.Percent = pct
			best.Offer = &o
		}
	}

	if best.Percent == 0 {
		best.Price = base
		return best
	}
	best.Price = math.Round(base * (1 - best.Percent/100))
	return best
}
