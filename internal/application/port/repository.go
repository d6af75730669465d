// Package port defines the interfaces the application layer depends on.
// Concrete implementations live in the repository package.
package port

import (
	"context"

	"github.com/garyjia/invoice-validation/internal/domain/entity"
)

// ResultStore persists and retrieves validation run history.
type ResultStore interface {
	Create(ctx context.Context, run *entity.ValidationRun) error
	GetByID(ctx context.Context, id string) (*entity.ValidationRun, error)
	List(ctx context.Context, limit, offset int) ([]*entity.ValidationRun, error)
}
