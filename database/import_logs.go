// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\import_logs.go
package database

import (
	"fmt"

	"bento/model"

	"github.com/jmoiron/sqlx"
)

const insertImportLogQuery = `
	INSERT INTO import_logs (
		batch_id, file_name, status, total_rows, processed_rows,
		success_count, error_count, duplicate_count,
		new_company_count, new_department_count, new_user_count,
		new_supplier_count, new_product_count,
		error_detail, processing_seconds
	) VALUES (
		:batch_id, :file_name, :status, :total_rows, :processed_rows,
		:success_count, :error_count, :duplicate_count,
		:new_company_count, :new_department_count, :new_user_count,
		:new_supplier_count, :new_product_count,
		:error_detail, :processing_seconds
	)`

// CreateImportLogInTx は取込結果ログを1行挿入します。
// 取込トランザクションの最後に呼ばれるため、ロールバックされた
// バッチのログ行は残りません。
func CreateImportLogInTx(tx *sqlx.Tx, l *model.ImportLog) error {
	if _, err := tx.NamedExec(insertImportLogQuery, l); err != nil {
		return fmt.Errorf("CreateImportLogInTx (BatchID: %s) failed: %w", l.BatchID, err)
	}
	return nil
}

// GetImportLogs は取込ログを新しい順に返します。
func GetImportLogs(db *sqlx.DB, limit int) ([]model.ImportLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []model.ImportLog
	const q = `SELECT * FROM import_logs ORDER BY id DESC LIMIT ?`
	if err := db.Select(&logs, q, limit); err != nil {
		return nil, fmt.Errorf("failed to get import logs: %w", err)
	}
	return logs, nil
}
