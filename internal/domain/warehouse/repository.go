package warehouse

import (
	"context"

	"github.com/google/uuid"
)

// WarehouseRepository defines persistence operations for warehouses.
type WarehouseRepository interface {
	// FindByID retrieves a warehouse by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// List retrieves warehouses ordered by name with pagination.
	List(ctx context.Context, page, limit int) ([]*Warehouse, int64, error)

	// Save persists a new warehouse.
	Save(ctx context.Context, w *Warehouse) error
}
