// C:\Users\wasab\OneDrive\デスクトップ\BENTO\model\bento_order_types.go
package model

import "database/sql"

// Order は取込済み注文 (ファクト行) です。
// (user_code, delivery_date, product_code, cooperation_code) で一意。
// 請求書・帳票はマスタを引き直さずに済むよう、コード・名称の
// 非正規化コピーを行内に持ちます。
type Order struct {
	ID           int64          `db:"id" json:"id"`
	DeliveryDate string         `db:"delivery_date" json:"deliveryDate"`
	DeliveryTime sql.NullString `db:"delivery_time" json:"deliveryTime"`
	Quantity     int            `db:"quantity" json:"quantity"`
	UnitPrice    float64        `db:"unit_price" json:"unitPrice"`
	TotalAmount  float64        `db:"total_amount" json:"totalAmount"`

	CompanyID    int64         `db:"company_id" json:"companyId"`
	DepartmentID sql.NullInt64 `db:"department_id" json:"departmentId"`
	UserID       int64         `db:"user_id" json:"userId"`
	SupplierID   sql.NullInt64 `db:"supplier_id" json:"supplierId"`
	ProductID    int64         `db:"product_id" json:"productId"`

	CorporationCode  string `db:"corporation_code" json:"corporationCode"`
	CorporationName  string `db:"corporation_name" json:"corporationName"`
	CompanyCode      string `db:"company_code" json:"companyCode"`
	CompanyName      string `db:"company_name" json:"companyName"`
	DepartmentCode   string `db:"department_code" json:"departmentCode"`
	DepartmentName   string `db:"department_name" json:"departmentName"`
	UserCode         string `db:"user_code" json:"userCode"`
	UserName         string `db:"user_name" json:"userName"`
	EmployeeTypeCode string `db:"employee_type_code" json:"employeeTypeCode"`
	EmployeeTypeName string `db:"employee_type_name" json:"employeeTypeName"`
	SupplierCode     string `db:"supplier_code" json:"supplierCode"`
	SupplierName     string `db:"supplier_name" json:"supplierName"`
	ProductCode      string `db:"product_code" json:"productCode"`
	ProductName      string `db:"product_name" json:"productName"`
	CategoryCode     string `db:"category_code" json:"categoryCode"`
	CategoryName     string `db:"category_name" json:"categoryName"`

	CooperationCode string `db:"cooperation_code" json:"cooperationCode"`
	Notes           string `db:"notes" json:"notes"`
	ImportBatchID   string `db:"import_batch_id" json:"importBatchId"`
	CreatedAt       string `db:"created_at" json:"createdAt"`
}
