package repository

import (
	"Revu/internal/model"
	"context"

	"gorm.io/gorm"
)

type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListEstimations(ctx context.Context) ([]model.Estimation, error)
	ListSymbols(ctx context.Context) ([]model.Symbol, error)
	CategoryExists(ctx context.Context, id uint64) (bool, error)
	EstimationExists(ctx context.Context, id uint64) (bool, error)
	SymbolExists(ctx context.Context, id uint64) (bool, error)
}

type CatalogRepoImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepo {
	return &CatalogRepoImpl{
		db: db,
	}
}

func (s CatalogRepoImpl) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

func (s CatalogRepoImpl) ListEstimations(ctx context.Context) ([]model.Estimation, error) {
	var estimations []model.Estimation
	err := s.db.WithContext(ctx).Find(&estimations).Error
	return estimations, err
}

func (s CatalogRepoImpl) ListSymbols(ctx context.Context) ([]model.Symbol, error) {
	var symbols []model.Symbol
	err := s.db.WithContext(ctx).Find(&symbols).Error
	return symbols, err
}

func (s CatalogRepoImpl) CategoryExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s CatalogRepoImpl) EstimationExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Estimation{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s CatalogRepoImpl) SymbolExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Symbol{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
