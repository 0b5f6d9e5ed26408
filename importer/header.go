// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\header.go
package importer

import (
	"fmt"
	"strings"
)

// Field は注文CSVの正準フィールド名です。
// CSVヘッダーの日本語ラベルとは fieldLabels で対応付けます。
type Field string

const (
	FieldCorporationCode  Field = "corporation_code"
	FieldCorporationName  Field = "corporation_name"
	FieldCompanyCode      Field = "company_code"
	FieldCompanyName      Field = "company_name"
	FieldSupplierCode     Field = "supplier_code"
	FieldSupplierName     Field = "supplier_name"
	FieldCategoryCode     Field = "category_code"
	FieldCategoryName     Field = "category_name"
	FieldDeliveryDate     Field = "delivery_date"
	FieldDepartmentCode   Field = "department_code"
	FieldDepartmentName   Field = "department_name"
	FieldUserCode         Field = "user_code"
	FieldUserName         Field = "user_name"
	FieldEmployeeTypeCode Field = "employee_type_code"
	FieldEmployeeTypeName Field = "employee_type_name"
	FieldProductCode      Field = "product_code"
	FieldProductName      Field = "product_name"
	FieldQuantity         Field = "quantity"
	FieldUnitPrice        Field = "unit_price"
	FieldTotalAmount      Field = "total_amount"
	FieldNotes            Field = "notes"
	FieldDeliveryTime     Field = "delivery_time"
	FieldCooperationCode  Field = "cooperation_code"
)

// fieldLabels は正準フィールドと業者CSVのヘッダーラベルの対応表です。
// ラベルは完全一致で照合します (23列固定の取込契約)。
var fieldLabels = map[Field]string{
	FieldCorporationCode:  "法人コード",
	FieldCorporationName:  "法人名",
	FieldCompanyCode:      "企業コード",
	FieldCompanyName:      "企業名",
	FieldSupplierCode:     "仕入先コード",
	FieldSupplierName:     "仕入先名",
	FieldCategoryCode:     "カテゴリコード",
	FieldCategoryName:     "カテゴリ名",
	FieldDeliveryDate:     "配達日",
	FieldDepartmentCode:   "部署コード",
	FieldDepartmentName:   "部署名",
	FieldUserCode:         "利用者コード",
	FieldUserName:         "利用者名",
	FieldEmployeeTypeCode: "社員区分コード",
	FieldEmployeeTypeName: "社員区分名",
	FieldProductCode:      "商品コード",
	FieldProductName:      "商品名",
	FieldQuantity:         "数量",
	FieldUnitPrice:        "単価",
	FieldTotalAmount:      "金額",
	FieldNotes:            "備考",
	FieldDeliveryTime:     "配達時間",
	FieldCooperationCode:  "連携コード",
}

// ExpectedColumnCount は業者CSVの固定列数です。
const ExpectedColumnCount = 23

// requiredHeaderFields はヘッダーに必ず存在しなければならないフィールドです。
var requiredHeaderFields = []Field{
	FieldCorporationName,
	FieldCompanyName,
	FieldDeliveryDate,
	FieldUserCode,
	FieldUserName,
	FieldProductCode,
}

// headerMap は正準フィールド → 列インデックスの対応です。
type headerMap map[Field]int

// mapHeaders はヘッダー行を正準フィールドに対応付けます。
// 列数不一致・必須フィールド欠落はバッチ全体を中止する致命的エラーです。
func mapHeaders(header []string) (headerMap, error) {
	if len(header) != ExpectedColumnCount {
		return nil, fmt.Errorf("ヘッダーの列数が不正です (expected %d, got %d)", ExpectedColumnCount, len(header))
	}

	labelToField := make(map[string]Field, len(fieldLabels))
	for f, label := range fieldLabels {
		labelToField[label] = f
	}

	hm := make(headerMap, ExpectedColumnCount)
	for i, cell := range header {
		if f, ok := labelToField[strings.TrimSpace(cell)]; ok {
			hm[f] = i
		}
	}

	var missing []string
	for _, f := range requiredHeaderFields {
		if _, ok := hm[f]; !ok {
			missing = append(missing, fmt.Sprintf("%s (%s)", fieldLabels[f], f))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("必須ヘッダーが見つかりません: %s", strings.Join(missing, ", "))
	}

	return hm, nil
}
