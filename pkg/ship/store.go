// pkg/ship/store.go
package ship

// Store maps live handles to owned ship data, one entry per live handle.
type Store struct {
	data map[Handle]*Data
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: make(map[Handle]*Data)}
}

// Insert adds or replaces the data for a handle.
func (s *Store) Insert(h Handle, d *Data) {
	s.data[h] = d
}

// Get returns the data for a handle, if present.
func (s *Store) Get(h Handle) (*Data, bool) {
	d, ok := s.data[h]
	return d, ok
}

// Delete removes a handle's data.
func (s *Store) Delete(h Handle) {
	delete(s.data, h)
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.data)
}
