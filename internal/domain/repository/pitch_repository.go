package repository

import (
	"context"

	"innovest/internal/domain/entity"
)

type PitchRepository interface {
	Create(ctx context.Context, pitch *entity.Pitch) error
	GetByID(ctx context.Context, id string) (*entity.Pitch, error)
	ListByFounder(ctx context.Context, founderID string) ([]*entity.Pitch, error)
	List(ctx context.Context) ([]*entity.Pitch, error)
	Update(ctx context.Context, pitch *entity.Pitch) error
}
