package models

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CategoryID int64     `json:"category_id"`
	SupplierID int64     `json:"supplier_id"`
	Price      float64   `json:"price"`
	Stock      int64     `json:"stock"`
	Barcode    string    `json:"barcode"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Category   *Category `json:"category,omitempty"`
}

type CreateProductRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=200"`
	CategoryID int64   `json:"category_id" validate:"required"`
	SupplierID int64   `json:"supplier_id" validate:"required"`
	Price      float64 `json:"price" validate:"gte=0"`
	Stock      int64   `json:"stock" validate:"gte=0"`
	Barcode    string  `json:"barcode" validate:"omitempty,max=64"`
}

type UpdateProductRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	CategoryID *int64   `json:"category_id,omitempty"`
	SupplierID *int64   `json:"supplier_id,omitempty"`
	Price      *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Barcode    *string  `json:"barcode,omitempty" validate:"omitempty,max=64"`
}

// AdjustStockRequest carries the signed delta applied by the stock ledger.
// A negative quantity debits stock, a positive one credits it.
type AdjustStockRequest struct {
	QuantityToAdd int64 `json:"quantity_to_add" validate:"required"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ParentID *int64  `json:"parent_id,omitempty"`
}
