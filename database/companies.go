// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\companies.go
package database

import (
	"fmt"

	"bento/model"

	"github.com/jmoiron/sqlx"
)

// FindCompanyIDInTx は自然キー (コード, 名称) で企業を検索します。
// 見つからない場合は sql.ErrNoRows をそのまま返します。
func FindCompanyIDInTx(tx *sqlx.Tx, code, name string) (int64, error) {
	var id int64
	const q = `SELECT id FROM company_master WHERE company_code = ? AND company_name = ? LIMIT 1`
	if err := tx.Get(&id, q, code, name); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateCompanyInTx は企業マスタに新規行を挿入し、採番されたIDを返します。
func CreateCompanyInTx(tx *sqlx.Tx, code, name string) (int64, error) {
	const q = `INSERT INTO company_master (company_code, company_name, is_active) VALUES (?, ?, 1)`
	res, err := tx.Exec(q, code, name)
	if err != nil {
		return 0, fmt.Errorf("CreateCompanyInTx (Code: %s, Name: %s) failed: %w", code, name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateCompanyInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}

func GetAllCompanies(db *sqlx.DB) ([]model.Company, error) {
	var companies []model.Company
	err := db.Select(&companies, "SELECT * FROM company_master ORDER BY company_code")
	if err != nil {
		return nil, fmt.Errorf("failed to get all companies: %w", err)
	}
	return companies, nil
}
