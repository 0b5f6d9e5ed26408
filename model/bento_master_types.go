// C:\Users\wasab\OneDrive\デスクトップ\BENTO\model\bento_master_types.go
package model

import "database/sql"

// Company は配達先企業マスタの1行です。
type Company struct {
	ID          int64  `db:"id" json:"id"`
	CompanyCode string `db:"company_code" json:"companyCode"`
	CompanyName string `db:"company_name" json:"companyName"`
	IsActive    int    `db:"is_active" json:"isActive"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

// Department は企業配下の部署マスタの1行です。
type Department struct {
	ID             int64  `db:"id" json:"id"`
	CompanyID      int64  `db:"company_id" json:"companyId"`
	DepartmentCode string `db:"department_code" json:"departmentCode"`
	DepartmentName string `db:"department_name" json:"departmentName"`
	IsActive       int    `db:"is_active" json:"isActive"`
}

// User は配達対象の利用者マスタの1行です。
// user_code は全社で一意 (企業・部署とは独立したキー)。
type User struct {
	ID               int64         `db:"id" json:"id"`
	UserCode         string        `db:"user_code" json:"userCode"`
	UserName         string        `db:"user_name" json:"userName"`
	EmployeeTypeCode string        `db:"employee_type_code" json:"employeeTypeCode"`
	EmployeeTypeName string        `db:"employee_type_name" json:"employeeTypeName"`
	CompanyID        int64         `db:"company_id" json:"companyId"`
	DepartmentID     sql.NullInt64 `db:"department_id" json:"departmentId"`
	CompanyName      string        `db:"company_name" json:"companyName"`
	DepartmentName   string        `db:"department_name" json:"departmentName"`
	IsActive         int           `db:"is_active" json:"isActive"`
}

type Supplier struct {
	ID           int64  `db:"id" json:"id"`
	SupplierCode string `db:"supplier_code" json:"supplierCode"`
	SupplierName string `db:"supplier_name" json:"supplierName"`
	IsActive     int    `db:"is_active" json:"isActive"`
}

type Product struct {
	ID           int64         `db:"id" json:"id"`
	ProductCode  string        `db:"product_code" json:"productCode"`
	ProductName  string        `db:"product_name" json:"productName"`
	CategoryCode string        `db:"category_code" json:"categoryCode"`
	CategoryName string        `db:"category_name" json:"categoryName"`
	UnitPrice    float64       `db:"unit_price" json:"unitPrice"`
	SupplierID   sql.NullInt64 `db:"supplier_id" json:"supplierId"`
	IsActive     int           `db:"is_active" json:"isActive"`
}
