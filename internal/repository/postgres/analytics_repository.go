package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// AnalyticsRepository reads the raw POS records the analytics engine consumes.
// It only ever selects; the engine owns none of the data. Every query runs
// inside one of the pool's bounded slots.
type AnalyticsRepository struct {
	db *DB
}

func NewAnalyticsRepository(db *DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) ListStoreIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &ids, `SELECT id FROM stores ORDER BY id`)
	})
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	return ids, nil
}

func (r *AnalyticsRepository) GetCustomers(ctx context.Context, storeID string) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	query := `
		SELECT id, store_id, name,
		       COALESCE(email, '') AS email,
		       COALESCE(phone, '') AS phone,
		       last_visit
		FROM customers
		WHERE store_id = $1
		ORDER BY id`
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &customers, query, storeID)
	})
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}
	return customers, nil
}

func (r *AnalyticsRepository) GetTransactions(ctx context.Context, storeID string, since, until time.Time) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, store_id,
		       COALESCE(customer_id, '') AS customer_id,
		       created_at, total, status
		FROM transactions
		WHERE store_id = $1
		  AND status = $2
		  AND created_at >= $3
		  AND created_at < $4
		ORDER BY created_at, id`
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &transactions, query, storeID, domain.TransactionCompleted, since, until)
	})
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	if len(transactions) == 0 {
		return transactions, nil
	}

	ids := make([]string, len(transactions))
	index := make(map[string]int, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.ID
		index[tx.ID] = i
	}

	items := []domain.TransactionItem{}
	itemQuery := `
		SELECT transaction_id, product_id, quantity, unit_price, line_total
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, product_id`
	err = r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &items, itemQuery, pq.Array(ids))
	})
	if err != nil {
		return nil, fmt.Errorf("get transaction items: %w", err)
	}
	for _, item := range items {
		if i, ok := index[item.TransactionID]; ok {
			transactions[i].Items = append(transactions[i].Items, item)
		}
	}
	return transactions, nil
}

func (r *AnalyticsRepository) GetProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	products := []domain.Product{}
	query := `
		SELECT id, store_id,
		       COALESCE(category_id, '') AS category_id,
		       name, sku, price, cost
		FROM products
		WHERE store_id = $1 AND active
		ORDER BY id`
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &products, query, storeID)
	})
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	return products, nil
}

func (r *AnalyticsRepository) GetInventory(ctx context.Context, storeID string) ([]domain.InventoryRecord, error) {
	inventory := []domain.InventoryRecord{}
	query := `
		SELECT i.product_id, i.quantity, i.reorder_point
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE p.store_id = $1 AND p.active
		ORDER BY i.product_id`
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &inventory, query, storeID)
	})
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inventory, nil
}

func (r *AnalyticsRepository) GetSales(ctx context.Context, storeID string, since, until time.Time) ([]domain.SaleRecord, error) {
	sales := []domain.SaleRecord{}
	query := `
		SELECT ti.transaction_id, ti.product_id, ti.quantity,
		       ti.unit_price, ti.line_total,
		       t.created_at AS sold_at
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		WHERE t.store_id = $1
		  AND t.status = $2
		  AND t.created_at >= $3
		  AND t.created_at < $4
		ORDER BY t.created_at, ti.transaction_id, ti.product_id`
	err := r.db.withSlot(ctx, func() error {
		return r.db.SelectContext(ctx, &sales, query, storeID, domain.TransactionCompleted, since, until)
	})
	if err != nil {
		return nil, fmt.Errorf("get sales: %w", err)
	}
	return sales, nil
}
