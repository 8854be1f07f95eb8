package storage

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
)

type Optimizer interface {
	Optimize(file domain.ImageFile) (domain.ImageFile, error)
}

// OptimizingStore re-encodes photos before handing them to the wrapped store.
// Files the optimizer cannot handle are uploaded untouched.
type OptimizingStore struct {
	next      domain.ImageStore
	optimizer Optimizer
	log       *zap.Logger
}

var _ domain.ImageStore = (*OptimizingStore)(nil)

func NewOptimizingStore(next domain.ImageStore, optimizer Optimizer, log *zap.Logger) *OptimizingStore {
	return &OptimizingStore{next: next, optimizer: optimizer, log: log}
}

func (s *OptimizingStore) Upload(ctx context.Context, file domain.ImageFile) (domain.StoredImage, error) {
	optimized, err := s.optimizer.Optimize(file)
	if err != nil {
		s.log.Debug("image left as uploaded", zap.String("name", file.Name), zap.Error(err))
		return s.next.Upload(ctx, file)
	}
	return s.next.Upload(ctx, optimized)
}

func (s *OptimizingStore) Delete(ctx context.Context, key string) error {
	return s.next.Delete(ctx, key)
}
