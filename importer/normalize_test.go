// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\normalize_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRecord は23セルのレコードを生成します。overrides で個別のセルを差し替えます。
func testRecord(overrides map[Field]string) []string {
	base := map[Field]string{
		FieldCorporationCode:  "H001",
		FieldCorporationName:  "テスト法人",
		FieldCompanyCode:      "C001",
		FieldCompanyName:      "テスト株式会社",
		FieldSupplierCode:     "S001",
		FieldSupplierName:     "テスト仕入先",
		FieldCategoryCode:     "K01",
		FieldCategoryName:     "日替弁当",
		FieldDeliveryDate:     "2025-04-01",
		FieldDepartmentCode:   "B01",
		FieldDepartmentName:   "総務部",
		FieldUserCode:         "U0001",
		FieldUserName:         "山田太郎",
		FieldEmployeeTypeCode: "1",
		FieldEmployeeTypeName: "正社員",
		FieldProductCode:      "P001",
		FieldProductName:      "幕の内弁当",
		FieldQuantity:         "1",
		FieldUnitPrice:        "500",
		FieldTotalAmount:      "500",
		FieldNotes:            "",
		FieldDeliveryTime:     "11:30",
		FieldCooperationCode:  "R01",
	}
	for f, v := range overrides {
		base[f] = v
	}
	rec := make([]string, len(canonicalHeaderOrder))
	for i, f := range canonicalHeaderOrder {
		rec[i] = base[f]
	}
	return rec
}

func testHeaderMap(t *testing.T) headerMap {
	t.Helper()
	hm, err := mapHeaders(testHeader())
	require.NoError(t, err)
	return hm
}

func TestNormalizeRow(t *testing.T) {
	hm := testHeaderMap(t)

	t.Run("正常な行", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(nil))
		require.NoError(t, err)
		assert.Equal(t, "テスト株式会社", row.CompanyName)
		assert.Equal(t, "2025-04-01", row.DeliveryDate)
		assert.Equal(t, 1, row.Quantity)
		assert.Equal(t, 500.0, row.UnitPrice)
		assert.Equal(t, 500.0, row.TotalAmount)
		require.True(t, row.DeliveryTime.Valid)
		assert.Equal(t, "11:30:00", row.DeliveryTime.String)
	})

	t.Run("セルの前後空白はトリムされる", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(map[Field]string{
			FieldUserCode: "  U0001  ",
			FieldUserName: " 山田太郎 ",
		}))
		require.NoError(t, err)
		assert.Equal(t, "U0001", row.UserCode)
		assert.Equal(t, "山田太郎", row.UserName)
	})

	t.Run("列数不一致は行エラー", func(t *testing.T) {
		_, err := normalizeRow(hm, testRecord(nil)[:20])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "列数")
	})

	t.Run("必須セルの欠落", func(t *testing.T) {
		for _, f := range []Field{FieldDeliveryDate, FieldUserCode, FieldCompanyName, FieldProductCode} {
			_, err := normalizeRow(hm, testRecord(map[Field]string{f: ""}))
			assert.Error(t, err, "field %s", f)
		}
	})

	t.Run("日付の複数形式", func(t *testing.T) {
		for _, in := range []string{"2025-04-01", "2025/04/01", "04/01/2025", "20250401"} {
			row, err := normalizeRow(hm, testRecord(map[Field]string{FieldDeliveryDate: in}))
			require.NoError(t, err, "input %s", in)
			assert.Equal(t, "2025-04-01", row.DeliveryDate, "input %s", in)
		}
	})

	t.Run("DD/MM/YYYY形式 (MM/DD/YYYYで解釈できない日)", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(map[Field]string{FieldDeliveryDate: "25/04/2025"}))
		require.NoError(t, err)
		assert.Equal(t, "2025-04-25", row.DeliveryDate)
	})

	t.Run("解釈できない日付は行エラー", func(t *testing.T) {
		_, err := normalizeRow(hm, testRecord(map[Field]string{FieldDeliveryDate: "令和7年4月1日"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "配達日")
	})

	t.Run("数量は最低1に切り上げ", func(t *testing.T) {
		for in, want := range map[string]int{"0": 1, "-3": 1, "abc": 1, "": 1, "5": 5} {
			row, err := normalizeRow(hm, testRecord(map[Field]string{
				FieldQuantity:    in,
				FieldUnitPrice:   "100",
				FieldTotalAmount: "",
			}))
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, want, row.Quantity, "input %q", in)
		}
	})

	t.Run("桁区切り付き金額", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(map[Field]string{
			FieldQuantity:    "3",
			FieldUnitPrice:   "1,200",
			FieldTotalAmount: "3,600",
		}))
		require.NoError(t, err)
		assert.Equal(t, 1200.0, row.UnitPrice)
		assert.Equal(t, 3600.0, row.TotalAmount)
	})

	t.Run("金額突合: 不一致は計算値で上書き", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(map[Field]string{
			FieldQuantity:    "3",
			FieldUnitPrice:   "500",
			FieldTotalAmount: "9999",
		}))
		require.NoError(t, err)
		assert.Equal(t, 1500.0, row.TotalAmount)
	})

	t.Run("金額突合: 許容誤差内は供給値を維持", func(t *testing.T) {
		row, err := normalizeRow(hm, testRecord(map[Field]string{
			FieldQuantity:    "3",
			FieldUnitPrice:   "500",
			FieldTotalAmount: "1500.005",
		}))
		require.NoError(t, err)
		assert.Equal(t, 1500.005, row.TotalAmount)
	})

	t.Run("配達時間の正規化", func(t *testing.T) {
		cases := map[string]string{
			"9:05":  "09:05:00",
			"11:30": "11:30:00",
		}
		for in, want := range cases {
			row, err := normalizeRow(hm, testRecord(map[Field]string{FieldDeliveryTime: in}))
			require.NoError(t, err)
			require.True(t, row.DeliveryTime.Valid, "input %q", in)
			assert.Equal(t, want, row.DeliveryTime.String, "input %q", in)
		}
	})

	t.Run("解釈できない時刻はNULL (エラーにしない)", func(t *testing.T) {
		for _, in := range []string{"昼頃", "25:00", "11時30分", "11:65"} {
			row, err := normalizeRow(hm, testRecord(map[Field]string{FieldDeliveryTime: in}))
			require.NoError(t, err, "input %q", in)
			assert.False(t, row.DeliveryTime.Valid, "input %q", in)
		}
	})
}
