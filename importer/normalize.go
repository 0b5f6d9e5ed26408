// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\normalize.go
package importer

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// orderRow は型変換・検証済みの注文CSV1行です。
type orderRow struct {
	CorporationCode  string
	CorporationName  string
	CompanyCode      string
	CompanyName      string
	SupplierCode     string
	SupplierName     string
	CategoryCode     string
	CategoryName     string
	DeliveryDate     string // YYYY-MM-DD に正規化済み
	DepartmentCode   string
	DepartmentName   string
	UserCode         string
	UserName         string
	EmployeeTypeCode string
	EmployeeTypeName string
	ProductCode      string
	ProductName      string
	Quantity         int
	UnitPrice        float64
	TotalAmount      float64
	Notes            string
	DeliveryTime     sql.NullString // HH:MM:00 / 解析不能はNULL
	CooperationCode  string
}

// dateFormats は配達日として受け付ける形式です。先に一致したものが勝ちます。
var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"20060102",
}

// amountTolerance を超えて金額が合わない行は、数量×単価で上書きします。
const amountTolerance = 0.01

// normalizeRow は生レコード1件を orderRow に正規化します。
// エラーはすべて行単位 (取込続行可能) です。
func normalizeRow(hm headerMap, rec []string) (*orderRow, error) {
	if len(rec) != ExpectedColumnCount {
		return nil, fmt.Errorf("列数が不正です (expected %d, got %d)", ExpectedColumnCount, len(rec))
	}

	get := func(f Field) string {
		if idx, ok := hm[f]; ok && idx < len(rec) {
			return strings.TrimSpace(rec[idx])
		}
		return ""
	}

	row := &orderRow{
		CorporationCode:  get(FieldCorporationCode),
		CorporationName:  get(FieldCorporationName),
		CompanyCode:      get(FieldCompanyCode),
		CompanyName:      get(FieldCompanyName),
		SupplierCode:     get(FieldSupplierCode),
		SupplierName:     get(FieldSupplierName),
		CategoryCode:     get(FieldCategoryCode),
		CategoryName:     get(FieldCategoryName),
		DepartmentCode:   get(FieldDepartmentCode),
		DepartmentName:   get(FieldDepartmentName),
		UserCode:         get(FieldUserCode),
		UserName:         get(FieldUserName),
		EmployeeTypeCode: get(FieldEmployeeTypeCode),
		EmployeeTypeName: get(FieldEmployeeTypeName),
		ProductCode:      get(FieldProductCode),
		ProductName:      get(FieldProductName),
		Notes:            get(FieldNotes),
		CooperationCode:  get(FieldCooperationCode),
	}

	// 必須セルのチェック
	rawDate := get(FieldDeliveryDate)
	if rawDate == "" {
		return nil, fmt.Errorf("配達日が空です")
	}
	if row.UserCode == "" {
		return nil, fmt.Errorf("利用者コードが空です")
	}
	if row.CompanyName == "" {
		return nil, fmt.Errorf("企業名が空です")
	}
	if row.ProductCode == "" {
		return nil, fmt.Errorf("商品コードが空です")
	}

	date, err := parseDeliveryDate(rawDate)
	if err != nil {
		return nil, err
	}
	row.DeliveryDate = date

	row.Quantity = parseQuantity(get(FieldQuantity))
	row.UnitPrice = parseMoney(get(FieldUnitPrice))
	row.TotalAmount = parseMoney(get(FieldTotalAmount))

	// 金額突合: 数量×単価と合わない場合は計算値で上書きする
	// (ソースファイルの記載額より内部整合性を優先する)
	computed := float64(row.Quantity) * row.UnitPrice
	if math.Abs(row.TotalAmount-computed) > amountTolerance {
		row.TotalAmount = computed
	}

	row.DeliveryTime = normalizeDeliveryTime(get(FieldDeliveryTime))

	return row, nil
}

// parseDeliveryDate は複数形式を順に試し、YYYY-MM-DD に正規化します。
func parseDeliveryDate(s string) (string, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("配達日の形式を解釈できません: %s", s)
}

// parseQuantity は数量を整数として解釈します。
// 解釈不能・0以下は 1 に切り上げます。
func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseMoney は桁区切りを除去した上で金額を解釈します (エラー時は 0)。
func parseMoney(s string) float64 {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// normalizeDeliveryTime は H:MM / HH:MM を HH:MM:00 に正規化します。
// 解釈できない場合はNULL (行エラーにはしない)。
func normalizeDeliveryTime(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return sql.NullString{}
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return sql.NullString{}
	}
	return sql.NullString{String: fmt.Sprintf("%02d:%02d:00", h, m), Valid: true}
}
