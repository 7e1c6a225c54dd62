package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/a12frin-shagufta/vanshika-pearl/models"
)

const (
	// SlotKey is the persisted-storage slot holding the current cart schema.
	SlotKey = "guestCart_v2"
	// LegacySlotKey held the previous schema (no cart key, no engraving
	// fields); it is read once, on first load, when SlotKey is empty.
	LegacySlotKey = "guestCart_v1"
)

// Storage is the string-keyed slot store the cart persists into.
type Storage interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Store owns the authoritative set of cart lines. Every mutation rewrites the
// whole line array into the storage slot; a failed write is logged and the
// in-memory state stays authoritative for the rest of the session.
type Store struct {
	mu      sync.Mutex
	lines   []models.CartLine
	storage Storage
}

// NewStore rehydrates the cart from storage, backfilling from the legacy slot
// when the current one is empty. A corrupt or unreadable slot degrades to an
// empty cart.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	var migrated bool
	s.lines, migrated = s.load()
	if migrated {
		s.persist()
	}
	return s
}

func (s *Store) load() (lines []models.CartLine, migrated bool) {
	if s.storage == nil {
		return nil, false
	}

	raw, ok, err := s.storage.GetItem(SlotKey)
	if err != nil {
		log.Printf("❌ Failed to read cart slot: %v", err)
		return nil, false
	}
	if ok {
		return decodeLines(raw), false
	}

	raw, ok, err = s.storage.GetItem(LegacySlotKey)
	if err != nil || !ok {
		return nil, false
	}
	lines = decodeLines(raw)
	if len(lines) > 0 {
		log.Printf("✅ Migrated %d cart line(s) from legacy slot", len(lines))
	}
	return lines, len(lines) > 0
}

// decodeLines sanitizes a persisted line array: entries without a product id
// or positive quantity are dropped and missing cart keys are derived. Invalid
// JSON yields an empty cart.
func decodeLines(raw string) []models.CartLine {
	var parsed []models.CartLine
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("❌ Discarding unreadable cart slot: %v", err)
		return nil
	}

	lines := make([]models.CartLine, 0, len(parsed))
	dropped := 0
	for _, it := range parsed {
		if it.ProductID == "" || it.Quantity <= 0 {
			dropped++
			continue
		}
		if it.CartKey == "" {
			it.CartKey = MakeCartKey(it)
		}
		lines = append(lines, it)
	}
	if dropped > 0 {
		log.Printf("⏳ Dropped %d invalid cart line(s) during load", dropped)
	}
	return lines
}

// persist serializes the full cart into the slot. Callers hold s.mu.
func (s *Store) persist() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("❌ Failed to serialize cart: %v", err)
		return
	}
	if err := s.storage.SetItem(SlotKey, string(data)); err != nil {
		log.Printf("❌ Failed to save cart: %v", err)
	}
}

// AddToCart appends a new line or merges quantities into an existing line
// with the same cart key. An empty product id is a silent no-op; quantities
// below 1 are coerced to 1.
func (s *Store) AddToCart(productID string, quantity int, variantID, variantColor string, p models.Personalization) {
	if productID == "" {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	line := models.CartLine{
		ProductID:          productID,
		VariantID:          variantID,
		VariantColor:       variantColor,
		Quantity:           quantity,
		EngravingFirstName: p.EngravingFirstName,
		EngravingLastName:  p.EngravingLastName,
	}
	line.CartKey = MakeCartKey(line)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartKey == line.CartKey {
			s.lines[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, line)
	s.persist()
}

// UpdateQuantityByKey sets the quantity on the line with the given cart key,
// floored at 1. Unknown keys are a no-op.
func (s *Store) UpdateQuantityByKey(cartKey string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartKey == cartKey {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveFromCartByKey deletes the line with the given cart key. Unknown keys
// are a no-op.
func (s *Store) RemoveFromCartByKey(cartKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartKey == cartKey {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity is the id-based compatibility shim: it updates the FIRST
// line matching (productID, variantID), so it is ambiguous when several
// personalized lines share the same product and variant. A quantity of zero
// or less removes the matched line, matching the historical behavior. Prefer
// UpdateQuantityByKey.
func (s *Store) UpdateQuantity(productID, variantID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID || s.lines[i].VariantID != variantID {
			continue
		}
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		s.persist()
		return
	}
}

// RemoveFromCart is the id-based compatibility shim: it removes the FIRST
// line matching (productID, variantID). Prefer RemoveFromCartByKey.
func (s *Store) RemoveFromCart(productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID && s.lines[i].VariantID == variantID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// ClearCart empties the store and removes the persisted slot.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if s.storage == nil {
		return
	}
	if err := s.storage.RemoveItem(SlotKey); err != nil {
		log.Printf("❌ Failed to remove cart slot: %v", err)
	}
}

// GetCartCount returns the sum of quantities across all lines.
func (s *Store) GetCartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, it := range s.lines {
		total += it.Quantity
	}
	return total
}

// Items returns a copy of the current cart lines.
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}
