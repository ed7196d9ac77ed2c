package repository

//go:generate mockgen -source=digest.go -destination=mocks/digest.go -package=mocks

import (
	"sync"

	"github.com/vfg2006/sdr-metrics-api/internal/domain"
)

// DigestRepository guarda o último resumo gerado pelo agendador
type DigestRepository interface {
	Latest() (*domain.Digest, error)
	Save(digest *domain.Digest) error
}

type memoryDigestRepository struct {
	mu     sync.RWMutex
	latest *domain.Digest
}

func NewMemoryDigestRepository() DigestRepository {
	return &memoryDigestRepository{}
}

func (r *memoryDigestRepository) Latest() (*domain.Digest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.latest == nil {
		return nil, nil
	}
	digest := *r.latest
	return &digest, nil
}

func (r *memoryDigestRepository) Save(digest *domain.Digest) error {
	if digest == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *digest
	r.latest = &stored
	return nil
}
