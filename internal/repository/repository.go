package repository

import (
	"context"
	"time"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// CustomerData fetches the inputs of the customer analytics pipeline, scoped
// to one store and a historical window ending at `until`. Implementations
// return fully materialized collections; the analytics core does no I/O.
type CustomerData interface {
	GetCustomers(ctx context.Context, storeID string) ([]domain.Customer, error)
	// GetTransactions returns completed transactions with their line items.
	GetTransactions(ctx context.Context, storeID string, since, until time.Time) ([]domain.Transaction, error)
	GetProducts(ctx context.Context, storeID string) ([]domain.Product, error)
}

// InventoryData fetches the inputs of the inventory analytics pipeline.
type InventoryData interface {
	GetInventory(ctx context.Context, storeID string) ([]domain.InventoryRecord, error)
	// GetSales returns completed line items joined with their transactions.
	GetSales(ctx context.Context, storeID string, since, until time.Time) ([]domain.SaleRecord, error)
}

// AnalyticsData is the full data-access collaborator for the analytics
// service.
type AnalyticsData interface {
	CustomerData
	InventoryData
	ListStoreIDs(ctx context.Context) ([]string, error)
}
