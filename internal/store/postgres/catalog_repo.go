package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"frizer/backend/internal/domain"
	"frizer/backend/internal/store"
)

type CatalogRepo struct {
	db *bun.DB
}

func NewCatalogRepo(db *bun.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) GetSalon(ctx context.Context, id uuid.UUID) (domain.Salon, error) {
	var salon domain.Salon
	err := r.db.NewSelect().
		Model(&salon).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Salon{}, store.ErrSalonNotFound
		}
		return domain.Salon{}, err
	}
	return salon, nil
}

func (r *CatalogRepo) GetTreatment(ctx context.Context, id uuid.UUID) (domain.Treatment, error) {
	var treatment domain.Treatment
	err := r.db.NewSelect().
		Model(&treatment).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Treatment{}, store.ErrTreatmentNotFound
		}
		return domain.Treatment{}, err
	}
	return treatment, nil
}
