package domain

import "time"

// TransactionCompleted is the only transaction status the analytics engine
// considers. Anything else (pending, refunded, voided) is filtered out by the
// repository layer.
const TransactionCompleted = "completed"

// Customer represents a store customer as read from the POS database.
type Customer struct {
	ID        string     `json:"id" db:"id"`
	StoreID   string     `json:"store_id" db:"store_id"`
	Name      string     `json:"name" db:"name"`
	Email     string     `json:"email" db:"email"`
	Phone     string     `json:"phone" db:"phone"`
	LastVisit *time.Time `json:"last_visit" db:"last_visit"`
}

// Transaction is a POS sale. CustomerID is empty for walk-in sales without a
// customer account.
type Transaction struct {
	ID         string            `json:"id" db:"id"`
	StoreID    string            `json:"store_id" db:"store_id"`
	CustomerID string            `json:"customer_id" db:"customer_id"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	Total      float64           `json:"total" db:"total"`
	Status     string            `json:"status" db:"status"`
	Items      []TransactionItem `json:"items"`
}

// TransactionItem is a single line of a transaction.
type TransactionItem struct {
	TransactionID string  `json:"transaction_id" db:"transaction_id"`
	ProductID     string  `json:"product_id" db:"product_id"`
	Quantity      int     `json:"quantity" db:"quantity"`
	UnitPrice     float64 `json:"unit_price" db:"unit_price"`
	LineTotal     float64 `json:"line_total" db:"line_total"`
}

// Product is an active catalog product.
type Product struct {
	ID         string  `json:"id" db:"id"`
	StoreID    string  `json:"store_id" db:"store_id"`
	CategoryID string  `json:"category_id" db:"category_id"`
	Name       string  `json:"name" db:"name"`
	SKU        string  `json:"sku" db:"sku"`
	Price      float64 `json:"price" db:"price"`
	Cost       float64 `json:"cost" db:"cost"`
}

// InventoryRecord is the current stock snapshot for a product.
type InventoryRecord struct {
	ProductID    string  `json:"product_id" db:"product_id"`
	Quantity     float64 `json:"quantity" db:"quantity"`
	ReorderPoint float64 `json:"reorder_point" db:"reorder_point"`
}

// SaleRecord is a transaction line item joined with its parent transaction,
// scoped to the inventory analysis window. Only completed transactions are
// included.
type SaleRecord struct {
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	ProductID     string    `json:"product_id" db:"product_id"`
	Quantity      int       `json:"quantity" db:"quantity"`
	UnitPrice     float64   `json:"unit_price" db:"unit_price"`
	LineTotal     float64   `json:"line_total" db:"line_total"`
	SoldAt        time.Time `json:"sold_at" db:"sold_at"`
}
