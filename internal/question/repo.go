package question

import "sync"

// Repository is the in-memory ordered question table. It is populated once at
// startup from the external source and only ever grows afterwards.
type Repository interface {
	// Snapshot returns a copy of the records in insertion order.
	Snapshot() []Question
	// Append adds q after checking that no record shares its question text.
	// The check and the append are atomic with respect to other appends; the
	// returned index is the new record's position in the table.
	Append(q Question) (int, error)
	Len() int
}

type memoryRepo struct {
	mu      sync.RWMutex
	records []Question
	byText  map[string]struct{}
}

// NewRepository builds an in-memory repository seeded with the given records.
// Seed duplicates are kept as-is (the source file is trusted); uniqueness is
// only enforced on Append.
func NewRepository(seed []Question) Repository {
	r := &memoryRepo{byText: make(map[string]struct{}, len(seed))}
	r.records = append(r.records, seed...)
	for _, q := range seed {
		r.byText[q.Question] = struct{}{}
	}
	return r
}

func (r *memoryRepo) Snapshot() []Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Question, len(r.records))
	copy(out, r.records)
	return out
}

func (r *memoryRepo) Append(q Question) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byText[q.Question]; ok {
		return 0, ErrAlreadyExists
	}
	r.records = append(r.records, q)
	r.byText[q.Question] = struct{}{}
	return len(r.records) - 1, nil
}

func (r *memoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
