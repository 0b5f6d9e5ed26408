// C:\Users\wasab\OneDrive\デスクトップ\BENTO\model\bento_import_types.go
package model

import "time"

// ImportRowError は取込中に発生した行単位エラーの1件です。
type ImportRowError struct {
	Line      int       `json:"line"`
	Message   string    `json:"message"`
	RawRecord []string  `json:"rawRecord"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportSummary は1回の取込 (バッチ) の結果サマリーです。
type ImportSummary struct {
	BatchID        string           `json:"batchId"`
	FileName       string           `json:"fileName"`
	Success        bool             `json:"success"`
	Status         string           `json:"status"` // "success" / "partial_success" / "aborted" / "failed"
	Message        string           `json:"message,omitempty"`
	TotalRows      int              `json:"totalRows"`
	ProcessedRows  int              `json:"processedRows"`
	SuccessCount   int              `json:"successCount"`
	ErrorCount     int              `json:"errorCount"`
	DuplicateCount int              `json:"duplicateCount"`
	NewCompanies   int              `json:"newCompanies"`
	NewDepartments int              `json:"newDepartments"`
	NewUsers       int              `json:"newUsers"`
	NewSuppliers   int              `json:"newSuppliers"`
	NewProducts    int              `json:"newProducts"`
	Elapsed        time.Duration    `json:"elapsed"`
	Errors         []ImportRowError `json:"errors"`
}

// ImportLog は import_logs テーブルの1行です。
type ImportLog struct {
	ID                 int64   `db:"id" json:"id"`
	BatchID            string  `db:"batch_id" json:"batchId"`
	FileName           string  `db:"file_name" json:"fileName"`
	Status             string  `db:"status" json:"status"`
	TotalRows          int     `db:"total_rows" json:"totalRows"`
	ProcessedRows      int     `db:"processed_rows" json:"processedRows"`
	SuccessCount       int     `db:"success_count" json:"successCount"`
	ErrorCount         int     `db:"error_count" json:"errorCount"`
	DuplicateCount     int     `db:"duplicate_count" json:"duplicateCount"`
	NewCompanyCount    int     `db:"new_company_count" json:"newCompanyCount"`
	NewDepartmentCount int     `db:"new_department_count" json:"newDepartmentCount"`
	NewUserCount       int     `db:"new_user_count" json:"newUserCount"`
	NewSupplierCount   int     `db:"new_supplier_count" json:"newSupplierCount"`
	NewProductCount    int     `db:"new_product_count" json:"newProductCount"`
	ErrorDetail        string  `db:"error_detail" json:"errorDetail"`
	ProcessingSeconds  float64 `db:"processing_seconds" json:"processingSeconds"`
	CreatedAt          string  `db:"created_at" json:"createdAt"`
}
