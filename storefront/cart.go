package storefront

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lumina-co/jewelry-api/models"
)

// CartLine is one product in the pending order. Name, price and image are
// captured at add time and never re-synced, so the cart reflects the price
// the customer saw.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// CartStorage persists the full line set across restarts, the way the web
// UI keeps the cart in browser local storage.
type CartStorage interface {
	Load() ([]CartLine, error)
	Save(lines []CartLine) error
}

// FileCartStorage keeps the cart as a JSON array in a single file.
type FileCartStorage struct {
	Path string
}

func NewFileCartStorage(path string) *FileCartStorage {
	return &FileCartStorage{Path: path}
}

func (s *FileCartStorage) Load() ([]CartLine, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *FileCartStorage) Save(lines []CartLine) error {
	if lines == nil {
		lines = []CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

// CartStore holds the customer's pending line items. At most one line per
// product; adds merge into quantity increments. Every mutation persists the
// full set. Mutated only from the UI event loop, so no locking.
type CartStore struct {
	storage CartStorage
	lines   []CartLine
}

// NewCartStore hydrates from storage. Missing or corrupt data starts an
// empty cart; it is never fatal.
func NewCartStore(storage CartStorage) *CartStore {
	store := &CartStore{storage: storage}
	lines, err := storage.Load()
	if err != nil {
		log.Printf("❌ Cart storage unreadable, starting empty: %v", err)
		lines = nil
	}
	store.lines = lines
	return store
}

// AddItem merges the product into the cart: an existing line grows by
// quantity, otherwise a new line is inserted capturing the product's name,
// price and first image. Callers pass quantity >= 1.
func (s *CartStore) AddItem(p models.Product, quantity int) {
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.lines = append(s.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.FirstImage(),
		Quantity:  quantity,
	})
	s.persist()
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// RemoveItem deletes the line; a no-op when absent.
func (s *CartStore) RemoveItem(productID string) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Lines returns a copy of the current line set, in insertion order.
func (s *CartStore) Lines() []CartLine {
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is Σ(price × quantity) over all lines.
func (s *CartStore) Total() float64 {
	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount is Σ(quantity) over all lines, shown on the cart badge.
func (s *CartStore) ItemCount() int {
	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Clear empties the cart; called after a successful order submission.
func (s *CartStore) Clear() {
	s.lines = nil
	s.persist()
}

func (s *CartStore) persist() {
	if err := s.storage.Save(s.lines); err != nil {
		log.Printf("❌ Failed to persist cart: %v", err)
	}
}
