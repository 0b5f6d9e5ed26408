// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\suppliers.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// FindSupplierIDInTx は自然キー (コード, 名称) で仕入先を検索します。
// 見つからない場合は sql.ErrNoRows を返します。
func FindSupplierIDInTx(tx *sqlx.Tx, code, name string) (int64, error) {
	var id int64
	const q = `SELECT id FROM supplier_master WHERE supplier_code = ? AND supplier_name = ? LIMIT 1`
	if err := tx.Get(&id, q, code, name); err != nil {
		return 0, err
	}
	return id, nil
}

func CreateSupplierInTx(tx *sqlx.Tx, code, name string) (int64, error) {
	const q = `INSERT INTO supplier_master (supplier_code, supplier_name, is_active) VALUES (?, ?, 1)`
	res, err := tx.Exec(q, code, name)
	if err != nil {
		return 0, fmt.Errorf("CreateSupplierInTx (Code: %s, Name: %s) failed: %w", code, name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateSupplierInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}
