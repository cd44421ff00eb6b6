package session

import (
	"strconv"

	"github.com/ekaracan/kitapkurdu/internal/app/model"
)

// Flash is a one-shot message rendered on the next page view
type Flash struct {
	Level   string `json:"level"` // success, warning, error
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Data is the server-side session record. The cart maps book id (string
// keyed, JSON-friendly) to a positive quantity; entries never hold zero or
// negative values.
type Data struct {
	UserID   uint           `json:"user_id,omitempty"`
	UserName string         `json:"user_name,omitempty"`
	UserRole model.UserRole `json:"user_role,omitempty"`
	Cart     map[string]int `json:"cart,omitempty"`
	Flashes  []Flash        `json:"flashes,omitempty"`
}

// Session pairs session data with its id and tracks whether it needs saving
type Session struct {
	ID       string
	Data     Data
	modified bool
	started  bool // a cookie for this session already exists
}

func New(id string, data Data, started bool) *Session {
	return &Session{ID: id, Data: data, started: started}
}

// Modified reports whether the session must be written back to the store
func (s *Session) Modified() bool { return s.modified }

// Started reports whether the browser already holds a cookie for this session
func (s *Session) Started() bool { return s.started }

// MarkModified forces a write-back at the end of the request
func (s *Session) MarkModified() { s.modified = true }

// LoggedIn reports whether the session carries an authenticated user
func (s *Session) LoggedIn() bool { return s.Data.UserID != 0 }

// SetUser records the authenticated identity in the session
func (s *Session) SetUser(id uint, name string, role model.UserRole) {
	s.Data.UserID = id
	s.Data.UserName = name
	s.Data.UserRole = role
	s.modified = true
}

// Reset clears all session state (logout)
func (s *Session) Reset() {
	s.Data = Data{}
	s.modified = true
}

// AddFlash queues a one-shot message
func (s *Session) AddFlash(level, message string) {
	s.Data.Flashes = append(s.Data.Flashes, Flash{Level: level, Message: message})
	s.modified = true
}

// ConsumeFlashes returns queued messages and clears them
func (s *Session) ConsumeFlashes() []Flash {
	if len(s.Data.Flashes) == 0 {
		return nil
	}
	flashes := s.Data.Flashes
	s.Data.Flashes = nil
	s.modified = true
	return flashes
}

func cartKey(bookID uint) string {
	return strconv.FormatUint(uint64(bookID), 10)
}

func (s *Session) cart() map[string]int {
	if s.Data.Cart == nil {
		s.Data.Cart = make(map[string]int)
	}
	return s.Data.Cart
}

// CartAdd puts one more copy of the book into the session cart
func (s *Session) CartAdd(bookID uint) {
	cart := s.cart()
	cart[cartKey(bookID)]++
	s.modified = true
}

// CartIncrease bumps an existing entry by one; absent entries are untouched
func (s *Session) CartIncrease(bookID uint) {
	key := cartKey(bookID)
	cart := s.cart()
	if _, ok := cart[key]; !ok {
		return
	}
	cart[key]++
	s.modified = true
}

// CartDecrease lowers an existing entry by one, removing it when the
// quantity would drop below 1; absent entries are untouched
func (s *Session) CartDecrease(bookID uint) {
	key := cartKey(bookID)
	cart := s.cart()
	qty, ok := cart[key]
	if !ok {
		return
	}
	if qty > 1 {
		cart[key] = qty - 1
	} else {
		delete(cart, key)
	}
	s.modified = true
}

// CartRemove drops the entry unconditionally
func (s *Session) CartRemove(bookID uint) {
	key := cartKey(bookID)
	cart := s.cart()
	if _, ok := cart[key]; !ok {
		return
	}
	delete(cart, key)
	s.modified = true
}

// CartClear empties the session cart
func (s *Session) CartClear() {
	if len(s.Data.Cart) == 0 {
		return
	}
	s.Data.Cart = nil
	s.modified = true
}

// CartCount is the total number of copies across all entries (navbar badge)
func (s *Session) CartCount() int {
	count := 0
	for _, qty := range s.Data.Cart {
		count += qty
	}
	return count
}

// CartItems returns a copy of the cart mapping
func (s *Session) CartItems() map[string]int {
	items := make(map[string]int, len(s.Data.Cart))
	for k, v := range s.Data.Cart {
		items[k] = v
	}
	return items
}
