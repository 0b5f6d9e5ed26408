// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\products.go
package database

import (
	"fmt"

	"bento/model"

	"github.com/jmoiron/sqlx"
)

// FindProductIDInTx は商品コード (全社一意) で商品を検索します。
// 見つからない場合は sql.ErrNoRows を返します。
func FindProductIDInTx(tx *sqlx.Tx, productCode string) (int64, error) {
	var id int64
	const q = `SELECT id FROM product_master WHERE product_code = ? LIMIT 1`
	if err := tx.Get(&id, q, productCode); err != nil {
		return 0, err
	}
	return id, nil
}

func CreateProductInTx(tx *sqlx.Tx, p *model.Product) (int64, error) {
	const q = `
		INSERT INTO product_master (
			product_code, product_name, category_code, category_name,
			unit_price, supplier_id, is_active
		) VALUES (
			:product_code, :product_name, :category_code, :category_name,
			:unit_price, :supplier_id, 1
		)`
	res, err := tx.NamedExec(q, p)
	if err != nil {
		return 0, fmt.Errorf("CreateProductInTx (ProductCode: %s) failed: %w", p.ProductCode, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateProductInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}

func GetAllProducts(db *sqlx.DB) ([]model.Product, error) {
	var products []model.Product
	err := db.Select(&products, "SELECT * FROM product_master ORDER BY product_code")
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}
