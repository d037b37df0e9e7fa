package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	apperrors "github.com/storekeeperhq/pos-platform/internal/errors"
	"github.com/storekeeperhq/pos-platform/internal/models"
	"github.com/storekeeperhq/pos-platform/internal/utils"
)

type PurchaseOrderRepository interface {
	CreateOrder(ctx context.Context, order *models.PurchaseOrder) error
	GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error)
	UpdateOrder(ctx context.Context, order *models.PurchaseOrder) error
	ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error)
	DeleteOrder(ctx context.Context, id int64) (models.PurchaseOrderStatus, error)
	CountPendingOrders(ctx context.Context) (int64, error)
}

type purchaseOrderRepository struct {
	DB *sql.DB
}

func NewPurchaseOrderRepo(db *sql.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{DB: db}
}

const orderColumns = `id, supplier_id, date, expected_delivery_date, status, total_cost, remarks, created_at, updated_at`

func scanOrder(row rowScanner, o *models.PurchaseOrder) error {
	return row.Scan(&o.ID, &o.SupplierID, &o.Date, &o.ExpectedDeliveryDate, &o.Status, &o.TotalCost, &o.Remarks, &o.CreatedAt, &o.UpdatedAt)
}

func (r *purchaseOrderRepository) CreateOrder(ctx context.Context, order *models.PurchaseOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning order transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO purchase_orders (supplier_id, date, expected_delivery_date, status, total_cost, remarks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.SupplierID, order.Date, order.ExpectedDeliveryDate, order.Status, order.TotalCost, order.Remarks).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return mapConstraintError(fmt.Errorf("inserting purchase order: %w", err), "Purchase order")
	}

	if err := insertOrderItems(dbCtx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing purchase order: %w", err)
	}

	return nil
}

func insertOrderItems(ctx context.Context, tx *sql.Tx, order *models.PurchaseOrder) error {

	query := `
		INSERT INTO purchase_order_items (purchase_order_id, product_id, quantity, price, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for i := range order.Items {
		item := &order.Items[i]
		item.PurchaseOrderID = order.ID

		err := tx.QueryRowContext(ctx, query, item.PurchaseOrderID, item.ProductID, item.Quantity, item.Price, item.Status).Scan(&item.ID)
		if err != nil {
			return mapConstraintError(fmt.Errorf("inserting purchase order item: %w", err), "Purchase order item")
		}
	}

	return nil
}

func (r *purchaseOrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.PurchaseOrder{}

	query := `SELECT ` + orderColumns + ` FROM purchase_orders WHERE id = $1`

	err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id), order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundError("Purchase order not found")
	}

	if err != nil {
		return nil, fmt.Errorf("querying purchase order: %w", err)
	}

	items, err := r.orderItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *purchaseOrderRepository) orderItems(ctx context.Context, orderID int64) ([]models.PurchaseOrderItem, error) {

	query := `
		SELECT id, product_id, quantity, price, received_quantity, status
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying purchase order items: %w", err)
	}

	defer rows.Close()

	var items []models.PurchaseOrderItem

	for rows.Next() {
		var item models.PurchaseOrderItem

		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Price, &item.ReceivedQuantity, &item.Status); err != nil {
			return nil, err
		}

		item.PurchaseOrderID = orderID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *purchaseOrderRepository) ListOrders(ctx context.Context, page, size int) ([]models.PurchaseOrder, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM purchase_orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + orderColumns + ` FROM purchase_orders ORDER BY date DESC LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var orders []models.PurchaseOrder

	for rows.Next() {
		var order models.PurchaseOrder

		if err := scanOrder(rows, &order); err != nil {
			return nil, 0, err
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.orderItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}

		orders[i].Items = items
	}

	return orders, total, nil
}

// UpdateOrder rewrites the header and, when lines are present on the model,
// replaces them wholesale. The guard on status makes a concurrent receive
// and edit of the same order impossible: only a still-pending row matches.
func (r *purchaseOrderRepository) UpdateOrder(ctx context.Context, order *models.PurchaseOrder) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning update transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		UPDATE purchase_orders
		SET supplier_id = $1, date = $2, expected_delivery_date = $3, total_cost = $4, remarks = $5, updated_at = NOW()
		WHERE id = $6 AND status = 'pending'
		RETURNING updated_at
	`

	err = tx.QueryRowContext(dbCtx, query, order.SupplierID, order.Date, order.ExpectedDeliveryDate, order.TotalCost, order.Remarks, order.ID).Scan(&order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.classifyMissedUpdate(dbCtx, tx, order.ID)
	}

	if err != nil {
		return mapConstraintError(fmt.Errorf("updating purchase order: %w", err), "Purchase order")
	}

	if len(order.Items) > 0 {
		if _, err := tx.ExecContext(dbCtx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, order.ID); err != nil {
			return fmt.Errorf("clearing purchase order items: %w", err)
		}

		if err := insertOrderItems(dbCtx, tx, order); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing order update: %w", err)
	}

	return nil
}

// classifyMissedUpdate decides whether a zero-row conditional update means
// the order is gone or merely no longer pending.
func (r *purchaseOrderRepository) classifyMissedUpdate(ctx context.Context, q queryRower, id int64) error {

	var status models.PurchaseOrderStatus

	err := q.QueryRowContext(ctx, `SELECT status FROM purchase_orders WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundError("Purchase order not found")
	}

	if err != nil {
		return fmt.Errorf("querying purchase order status: %w", err)
	}

	return apperrors.OrderLockedError(fmt.Sprintf("Purchase order is %s and can no longer be edited", status))
}

// ReceiveOrder flips a pending order to completed, marks every line
// received and credits product stock, all inside one transaction. The
// status flip doubles as the state-machine guard: the conditional UPDATE
// matches only a pending row, so receiving a completed or cancelled order
// mutates nothing.
func (r *purchaseOrderRepository) ReceiveOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning receive transaction: %w", err)
	}

	defer tx.Rollback()

	order := &models.PurchaseOrder{}

	query := `
		UPDATE purchase_orders
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + orderColumns

	err = scanOrder(tx.QueryRowContext(dbCtx, query, id), order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.classifyMissedTransition(dbCtx, tx, id)
	}

	if err != nil {
		return nil, fmt.Errorf("completing purchase order: %w", err)
	}

	itemsQuery := `
		SELECT id, product_id, quantity, price
		FROM purchase_order_items
		WHERE purchase_order_id = $1
		ORDER BY id
		FOR UPDATE
	`

	rows, err := tx.QueryContext(dbCtx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("querying purchase order items: %w", err)
	}

	var items []models.PurchaseOrderItem

	for rows.Next() {
		var item models.PurchaseOrderItem

		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			rows.Close()
			return nil, err
		}

		item.PurchaseOrderID = id

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}

	rows.Close()

	itemUpdate := `
		UPDATE purchase_order_items
		SET status = 'received', received_quantity = quantity
		WHERE id = $1
	`

	for i := range items {
		item := &items[i]

		// Credit stock for the line inside the same transaction.
		if _, err := adjustStock(dbCtx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}

		if _, err := tx.ExecContext(dbCtx, itemUpdate, item.ID); err != nil {
			return nil, fmt.Errorf("marking item received: %w", err)
		}

		received := item.Quantity
		item.ReceivedQuantity = &received
		item.Status = models.ItemStatusReceived
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing receive: %w", err)
	}

	order.Items = items

	return order, nil
}

// CancelOrder is the other terminal transition; it has no stock effect.
func (r *purchaseOrderRepository) CancelOrder(ctx context.Context, id int64) (*models.PurchaseOrder, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.PurchaseOrder{}

	query := `
		UPDATE purchase_orders
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + orderColumns

	err := scanOrder(r.DB.QueryRowContext(dbCtx, query, id), order)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, r.classifyMissedTransition(dbCtx, r.DB, id)
	}

	if err != nil {
		return nil, fmt.Errorf("cancelling purchase order: %w", err)
	}

	items, err := r.orderItems(dbCtx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *purchaseOrderRepository) classifyMissedTransition(ctx context.Context, q queryRower, id int64) error {

	var status models.PurchaseOrderStatus

	err := q.QueryRowContext(ctx, `SELECT status FROM purchase_orders WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFoundError("Purchase order not found")
	}

	if err != nil {
		return fmt.Errorf("querying purchase order status: %w", err)
	}

	return apperrors.InvalidStateTransitionError(fmt.Sprintf("Purchase order is already %s", status))
}

// DeleteOrder removes the order and its items together and reports the
// status the order held, so callers can flag deletion of a completed order.
func (r *purchaseOrderRepository) DeleteOrder(ctx context.Context, id int64) (models.PurchaseOrderStatus, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning delete transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, id); err != nil {
		return "", fmt.Errorf("deleting purchase order items: %w", err)
	}

	var status models.PurchaseOrderStatus

	err = tx.QueryRowContext(dbCtx, `DELETE FROM purchase_orders WHERE id = $1 RETURNING status`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.NotFoundError("Purchase order not found")
	}

	if err != nil {
		return "", fmt.Errorf("deleting purchase order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing delete: %w", err)
	}

	return status, nil
}

func (r *purchaseOrderRepository) CountPendingOrders(ctx context.Context) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int64

	err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM purchase_orders WHERE status = 'pending'`).Scan(&count)

	return count, err
}
