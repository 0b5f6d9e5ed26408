// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\resolver.go
package importer

import (
	"database/sql"
	"fmt"

	"bento/database"
	"bento/model"

	"github.com/jmoiron/sqlx"
)

// masterResolver は1回の取込の間だけ有効な get-or-create キャッシュです。
// 自然キーごとにDB照会は最大1回。実行をまたいで共有・永続化はしません。
type masterResolver struct {
	tx *sqlx.Tx

	companies   map[string]int64
	departments map[string]int64
	users       map[string]int64
	suppliers   map[string]int64
	products    map[string]int64

	NewCompanies   int
	NewDepartments int
	NewUsers       int
	NewSuppliers   int
	NewProducts    int
}

func newMasterResolver(tx *sqlx.Tx) *masterResolver {
	return &masterResolver{
		tx:          tx,
		companies:   make(map[string]int64),
		departments: make(map[string]int64),
		users:       make(map[string]int64),
		suppliers:   make(map[string]int64),
		products:    make(map[string]int64),
	}
}

// cacheKey は複合自然キーをマップキーに畳み込みます。
func cacheKey(parts ...string) string {
	key := ""
	for i, p := range parts {
		if i > 0 {
			key += "\x00"
		}
		key += p
	}
	return key
}

func (r *masterResolver) resolveCompany(code, name string) (int64, error) {
	key := cacheKey(code, name)
	if id, ok := r.companies[key]; ok {
		return id, nil
	}

	id, err := database.FindCompanyIDInTx(r.tx, code, name)
	if err == sql.ErrNoRows {
		id, err = database.CreateCompanyInTx(r.tx, code, name)
		if err != nil {
			return 0, err
		}
		r.NewCompanies++
	} else if err != nil {
		return 0, fmt.Errorf("failed to resolve company (Code: %s, Name: %s): %w", code, name, err)
	}

	r.companies[key] = id
	return id, nil
}

// resolveDepartment は部署を解決します。コード・名称とも空の行は
// 部署なし (NULL) として扱います。
func (r *masterResolver) resolveDepartment(companyID int64, code, name string) (sql.NullInt64, error) {
	if code == "" && name == "" {
		return sql.NullInt64{}, nil
	}

	key := cacheKey(fmt.Sprintf("%d", companyID), code, name)
	if id, ok := r.departments[key]; ok {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	id, err := database.FindDepartmentIDInTx(r.tx, companyID, code, name)
	if err == sql.ErrNoRows {
		id, err = database.CreateDepartmentInTx(r.tx, companyID, code, name)
		if err != nil {
			return sql.NullInt64{}, err
		}
		r.NewDepartments++
	} else if err != nil {
		return sql.NullInt64{}, fmt.Errorf("failed to resolve department (CompanyID: %d, Code: %s, Name: %s): %w", companyID, code, name, err)
	}

	r.departments[key] = id
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func (r *masterResolver) resolveUser(row *orderRow, companyID int64, departmentID sql.NullInt64) (int64, error) {
	if id, ok := r.users[row.UserCode]; ok {
		return id, nil
	}

	id, err := database.FindUserIDInTx(r.tx, row.UserCode)
	if err == sql.ErrNoRows {
		u := &model.User{
			UserCode:         row.UserCode,
			UserName:         row.UserName,
			EmployeeTypeCode: row.EmployeeTypeCode,
			EmployeeTypeName: row.EmployeeTypeName,
			CompanyID:        companyID,
			DepartmentID:     departmentID,
			CompanyName:      row.CompanyName,
			DepartmentName:   row.DepartmentName,
		}
		id, err = database.CreateUserInTx(r.tx, u)
		if err != nil {
			return 0, err
		}
		r.NewUsers++
	} else if err != nil {
		return 0, fmt.Errorf("failed to resolve user (UserCode: %s): %w", row.UserCode, err)
	}

	r.users[row.UserCode] = id
	return id, nil
}

// resolveSupplier は仕入先を解決します。コード・名称とも空の行は
// 仕入先なし (NULL) として扱います。
func (r *masterResolver) resolveSupplier(code, name string) (sql.NullInt64, error) {
	if code == "" && name == "" {
		return sql.NullInt64{}, nil
	}

	key := cacheKey(code, name)
	if id, ok := r.suppliers[key]; ok {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}

	id, err := database.FindSupplierIDInTx(r.tx, code, name)
	if err == sql.ErrNoRows {
		id, err = database.CreateSupplierInTx(r.tx, code, name)
		if err != nil {
			return sql.NullInt64{}, err
		}
		r.NewSuppliers++
	} else if err != nil {
		return sql.NullInt64{}, fmt.Errorf("failed to resolve supplier (Code: %s, Name: %s): %w", code, name, err)
	}

	r.suppliers[key] = id
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func (r *masterResolver) resolveProduct(row *orderRow, supplierID sql.NullInt64) (int64, error) {
	if id, ok := r.products[row.ProductCode]; ok {
		return id, nil
	}

	id, err := database.FindProductIDInTx(r.tx, row.ProductCode)
	if err == sql.ErrNoRows {
		p := &model.Product{
			ProductCode:  row.ProductCode,
			ProductName:  row.ProductName,
			CategoryCode: row.CategoryCode,
			CategoryName: row.CategoryName,
			UnitPrice:    row.UnitPrice,
			SupplierID:   supplierID,
		}
		id, err = database.CreateProductInTx(r.tx, p)
		if err != nil {
			return 0, err
		}
		r.NewProducts++
	} else if err != nil {
		return 0, fmt.Errorf("failed to resolve product (ProductCode: %s): %w", row.ProductCode, err)
	}

	r.products[row.ProductCode] = id
	return id, nil
}
