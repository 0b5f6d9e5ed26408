// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\orders.go
package database

import (
	"database/sql"
	"fmt"

	"bento/model"

	"github.com/jmoiron/sqlx"
)

// CheckOrderExistsInTx は複合自然キー
// (利用者コード, 配達日, 商品コード, 連携コード) で既存注文の有無を確認します。
func CheckOrderExistsInTx(tx *sqlx.Tx, userCode, deliveryDate, productCode, cooperationCode string) (bool, error) {
	var exists int
	const q = `
		SELECT 1 FROM orders
		WHERE user_code = ? AND delivery_date = ? AND product_code = ? AND cooperation_code = ?
		LIMIT 1`
	err := tx.QueryRow(q, userCode, deliveryDate, productCode, cooperationCode).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("CheckOrderExistsInTx failed: %w", err)
	}
	return true, nil
}

const insertOrderQuery = `
	INSERT INTO orders (
		delivery_date, delivery_time, quantity, unit_price, total_amount,
		company_id, department_id, user_id, supplier_id, product_id,
		corporation_code, corporation_name, company_code, company_name,
		department_code, department_name, user_code, user_name,
		employee_type_code, employee_type_name, supplier_code, supplier_name,
		product_code, product_name, category_code, category_name,
		cooperation_code, notes, import_batch_id
	) VALUES (
		:delivery_date, :delivery_time, :quantity, :unit_price, :total_amount,
		:company_id, :department_id, :user_id, :supplier_id, :product_id,
		:corporation_code, :corporation_name, :company_code, :company_name,
		:department_code, :department_name, :user_code, :user_name,
		:employee_type_code, :employee_type_name, :supplier_code, :supplier_name,
		:product_code, :product_name, :category_code, :category_name,
		:cooperation_code, :notes, :import_batch_id
	)`

func CreateOrderInTx(tx *sqlx.Tx, o *model.Order) (int64, error) {
	res, err := tx.NamedExec(insertOrderQuery, o)
	if err != nil {
		return 0, fmt.Errorf("CreateOrderInTx (UserCode: %s, Date: %s, Product: %s) failed: %w",
			o.UserCode, o.DeliveryDate, o.ProductCode, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateOrderInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}

// CountOrders は注文テーブルの総行数を返します。
func CountOrders(db *sqlx.DB) (int, error) {
	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM orders"); err != nil {
		return 0, fmt.Errorf("CountOrders failed: %w", err)
	}
	return n, nil
}

// GetOrdersByBatchID は指定バッチで取り込まれた注文を返します。
func GetOrdersByBatchID(db *sqlx.DB, batchID string) ([]model.Order, error) {
	var orders []model.Order
	const q = `SELECT * FROM orders WHERE import_batch_id = ? ORDER BY id`
	if err := db.Select(&orders, q, batchID); err != nil {
		return nil, fmt.Errorf("GetOrdersByBatchID (%s) failed: %w", batchID, err)
	}
	return orders, nil
}
