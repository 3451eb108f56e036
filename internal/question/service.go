package question

import (
	"math/rand"
	"strconv"
	"time"
)

// Created describes a successful append.
type Created struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// Service owns question selection and creation on top of a Repository.
type Service struct {
	repo      Repository
	adminUser string
	now       func() time.Time
}

func NewService(repo Repository, adminUser string) *Service {
	return &Service{repo: repo, adminUser: adminUser, now: time.Now}
}

// Select returns a freshly shuffled subset of the records whose subject set
// intersects categories or whose test-type value equals testType. At most
// count records are returned; fewer matches than count is not an error.
func (s *Service) Select(testType string, categories []string, count int) ([]Question, error) {
	if len(categories) == 0 {
		return nil, ErrInvalidCategories
	}
	for _, c := range categories {
		if c == "" {
			return nil, ErrInvalidCategories
		}
	}

	var matched []Question
	for _, q := range s.repo.Snapshot() {
		if q.matches(testType, categories) {
			matched = append(matched, q)
		}
	}

	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if count < len(matched) {
		matched = matched[:count]
	}
	return matched, nil
}

// Create appends q to the repository. Only the admin identity may create;
// the question text must not already exist. The uniqueness check and the
// append happen atomically inside the repository.
func (s *Service) Create(identity string, q Question) (Created, error) {
	if identity != s.adminUser {
		return Created{}, ErrUnauthorized
	}
	idx, err := s.repo.Append(q)
	if err != nil {
		return Created{}, err
	}
	return Created{
		ID:        strconv.Itoa(idx),
		CreatedAt: s.now().Format("2006-01-02T15:04:05"),
	}, nil
}
