// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\departments.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// FindDepartmentIDInTx は (企業ID, 部署コードまたは部署名) で部署を検索します。
// コードがあればコードで、無ければ名称で引きます (CSVはどちらか片方しか
// 入っていないことがあるため)。見つからない場合は sql.ErrNoRows を返します。
func FindDepartmentIDInTx(tx *sqlx.Tx, companyID int64, code, name string) (int64, error) {
	var id int64
	if code != "" {
		const q = `SELECT id FROM department_master WHERE company_id = ? AND department_code = ? LIMIT 1`
		if err := tx.Get(&id, q, companyID, code); err != nil {
			return 0, err
		}
		return id, nil
	}
	const q = `SELECT id FROM department_master WHERE company_id = ? AND department_name = ? LIMIT 1`
	if err := tx.Get(&id, q, companyID, name); err != nil {
		return 0, err
	}
	return id, nil
}

func CreateDepartmentInTx(tx *sqlx.Tx, companyID int64, code, name string) (int64, error) {
	const q = `INSERT INTO department_master (company_id, department_code, department_name, is_active) VALUES (?, ?, ?, 1)`
	res, err := tx.Exec(q, companyID, code, name)
	if err != nil {
		return 0, fmt.Errorf("CreateDepartmentInTx (CompanyID: %d, Code: %s, Name: %s) failed: %w", companyID, code, name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateDepartmentInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}
