package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	warehouseDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/warehouse"
)

// WarehouseModel is the GORM model for the warehouses table.
type WarehouseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null;index"`
	Latitude  float64   `gorm:"type:double precision;not null"`
	Longitude float64   `gorm:"type:double precision;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (WarehouseModel) TableName() string { return "warehouses" }

// GormWarehouseRepository implements WarehouseRepository using GORM.
type GormWarehouseRepository struct {
	db *gorm.DB
}

func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

func (r *GormWarehouseRepository) FindByID(ctx context.Context, id uuid.UUID) (*warehouseDomain.Warehouse, error) {
	var model WarehouseModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Warehouse", id.String())
		}
		return nil, fmt.Errorf("failed to find warehouse by ID: %w", err)
	}
	return toWarehouseDomain(&model), nil
}

func (r *GormWarehouseRepository) List(ctx context.Context, page, limit int) ([]*warehouseDomain.Warehouse, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&WarehouseModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count warehouses: %w", err)
	}

	var models []WarehouseModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list warehouses: %w", err)
	}

	warehouses := make([]*warehouseDomain.Warehouse, len(models))
	for i := range models {
		warehouses[i] = toWarehouseDomain(&models[i])
	}
	return warehouses, total, nil
}

func (r *GormWarehouseRepository) Save(ctx context.Context, w *warehouseDomain.Warehouse) error {
	if err := r.db.WithContext(ctx).Create(toWarehouseModel(w)).Error; err != nil {
		return fmt.Errorf("failed to save warehouse: %w", err)
	}
	return nil
}

// --- Conversions ---

func toWarehouseModel(w *warehouseDomain.Warehouse) *WarehouseModel {
	return &WarehouseModel{
		ID:        w.ID(),
		Name:      w.Name(),
		Latitude:  w.Latitude(),
		Longitude: w.Longitude(),
		CreatedAt: w.CreatedAt(),
		UpdatedAt: w.UpdatedAt(),
	}
}

func toWarehouseDomain(m *WarehouseModel) *warehouseDomain.Warehouse {
	return warehouseDomain.Reconstruct(m.ID, m.Name, m.Latitude, m.Longitude, m.CreatedAt, m.UpdatedAt)
}
