package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
	"github.com/a12frin-shagufta/vanshika-pearl/offers"
)

// Store holds the annotated in-memory catalog. Until the first successful
// Load, the catalog is an empty (loading) state that readers must treat as
// valid; product lookups may simply miss.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	offers     []models.Offer
	categories []models.Category
	loaded     bool
}

func NewStore() *Store {
	return &Store{}
}

// Load fetches products, offers and categories, annotates each product with
// its resolved final price, applied offer and normalized media, and swaps the
// catalog in wholesale. A failed fetch leaves the previous catalog untouched.
func (s *Store) Load(ctx context.Context, client *Client) error {
	products, err := client.FetchProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	allOffers, err := client.FetchActiveOffers(ctx)
	if err != nil {
		return fmt.Errorf("load offers: %w", err)
	}
	categories, err := client.FetchCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}

	now := time.Now()
	valid := offers.FilterActive(allOffers, now)

	for i := range products {
		d := offers.Resolve(products[i], valid, categories, now)
		products[i].FinalPrice = d.Price
		products[i].AppliedDiscountPercent = d.Percent
		if d.Offer != nil {
			products[i].AppliedOfferID = d.Offer.ID
		} else {
			products[i].AppliedOfferID = ""
		}
		products[i].Media = NormalizeMedia(products[i])
	}

	s.mu.Lock()
	s.products = products
	s.offers = valid
	s.categories = categories
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether at least one Load has succeeded.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Products returns a copy of the annotated product list.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID looks a product up by its backend id.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Offers returns a copy of the currently valid offers.
func (s *Store) Offers() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Offer, len(s.offers))
	copy(out, s.offers)
	return out
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}
