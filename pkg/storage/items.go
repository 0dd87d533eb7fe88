package storage

import (
	"context"

	"github.com/Ian12467/library-circulation/pkg/models"
)

// ItemRegistry owns Item.Status. TryTransition is the single choke point for
// status changes; no other component writes item state directly.
type ItemRegistry interface {
	// CreateItem records a newly acquired copy. The item starts Available.
	CreateItem(ctx context.Context, item *models.Item) (*models.Item, error)

	// GetItem retrieves one item by its ID.
	GetItem(ctx context.Context, itemID string) (*models.Item, error)

	// ListItemsByWork retrieves all copies of a work, ascending by item ID.
	// The deterministic order is what makes reservation claiming fair.
	ListItemsByWork(ctx context.Context, workID string) ([]models.Item, error)

	// TryTransition atomically moves the item to the target status, succeeding
	// only if its current status is in the expected set. Returns ErrConflict
	// when the item was concurrently claimed, ErrNotFound when it does not exist.
	TryTransition(ctx context.Context, itemID string, from []models.ItemStatus, to models.ItemStatus) error
}
