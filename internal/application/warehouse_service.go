package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-quote/internal/domain"
	warehouseDomain "github.com/Kilat-Pet-Delivery/service-quote/internal/domain/warehouse"
)

// CreateWarehouseRequest is the request DTO for registering a warehouse.
type CreateWarehouseRequest struct {
	Name string   `json:"name" binding:"required"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lng  *float64 `json:"lng" binding:"required"`
}

// WarehouseDTO is the API response representation of a warehouse.
type WarehouseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseService manages the warehouse catalog.
type WarehouseService struct {
	repo   warehouseDomain.WarehouseRepository
	logger *zap.Logger
}

// NewWarehouseService creates a new WarehouseService.
func NewWarehouseService(repo warehouseDomain.WarehouseRepository, logger *zap.Logger) *WarehouseService {
	return &WarehouseService{repo: repo, logger: logger}
}

// CreateWarehouse validates and stores a new warehouse.
func (s *WarehouseService) CreateWarehouse(ctx context.Context, req CreateWarehouseRequest) (*WarehouseDTO, error) {
	if req.Lat == nil || req.Lng == nil {
		return nil, domain.NewValidationError("lat and lng are required")
	}

	wh, err := warehouseDomain.NewWarehouse(req.Name, *req.Lat, *req.Lng)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, wh); err != nil {
		return nil, fmt.Errorf("failed to save warehouse: %w", err)
	}

	s.logger.Info("warehouse created",
		zap.String("warehouse_id", wh.ID().String()),
		zap.String("name", wh.Name()),
	)

	result := toWarehouseDTO(wh)
	return &result, nil
}

// GetWarehouse retrieves a single warehouse by ID.
func (s *WarehouseService) GetWarehouse(ctx context.Context, id uuid.UUID) (*WarehouseDTO, error) {
	wh, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toWarehouseDTO(wh)
	return &result, nil
}

// ListWarehouses returns a page of warehouses ordered by name.
func (s *WarehouseService) ListWarehouses(ctx context.Context, page, limit int) (*domain.PaginatedResult[WarehouseDTO], error) {
	warehouses, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]WarehouseDTO, len(warehouses))
	for i, wh := range warehouses {
		dtos[i] = toWarehouseDTO(wh)
	}

	result := domain.NewPaginatedResult(dtos, total, page, limit)
	return &result, nil
}

func toWarehouseDTO(wh *warehouseDomain.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:        wh.ID(),
		Name:      wh.Name(),
		Lat:       wh.Latitude(),
		Lng:       wh.Longitude(),
		CreatedAt: wh.CreatedAt(),
		UpdatedAt: wh.UpdatedAt(),
	}
}
