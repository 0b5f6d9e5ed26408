// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\header_test.go
package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalHeaderOrder はテスト用の標準的な列順です。
var canonicalHeaderOrder = []Field{
	FieldCorporationCode, FieldCorporationName,
	FieldCompanyCode, FieldCompanyName,
	FieldSupplierCode, FieldSupplierName,
	FieldCategoryCode, FieldCategoryName,
	FieldDeliveryDate,
	FieldDepartmentCode, FieldDepartmentName,
	FieldUserCode, FieldUserName,
	FieldEmployeeTypeCode, FieldEmployeeTypeName,
	FieldProductCode, FieldProductName,
	FieldQuantity, FieldUnitPrice, FieldTotalAmount,
	FieldNotes, FieldDeliveryTime, FieldCooperationCode,
}

func testHeader() []string {
	header := make([]string, len(canonicalHeaderOrder))
	for i, f := range canonicalHeaderOrder {
		header[i] = fieldLabels[f]
	}
	return header
}

func TestMapHeaders(t *testing.T) {
	t.Run("正常な23列ヘッダー", func(t *testing.T) {
		hm, err := mapHeaders(testHeader())
		require.NoError(t, err)
		assert.Len(t, hm, ExpectedColumnCount)
		assert.Equal(t, 8, hm[FieldDeliveryDate])
		assert.Equal(t, 11, hm[FieldUserCode])
	})

	t.Run("列順が変わっても対応付けできる", func(t *testing.T) {
		header := testHeader()
		header[0], header[11] = header[11], header[0] // 法人コード ⇔ 利用者コード
		hm, err := mapHeaders(header)
		require.NoError(t, err)
		assert.Equal(t, 0, hm[FieldUserCode])
		assert.Equal(t, 11, hm[FieldCorporationCode])
	})

	t.Run("22列は致命的エラー", func(t *testing.T) {
		_, err := mapHeaders(testHeader()[:22])
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 23, got 22")
	})

	t.Run("24列は致命的エラー", func(t *testing.T) {
		header := append(testHeader(), "余分な列")
		_, err := mapHeaders(header)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 23, got 24")
	})

	t.Run("必須ヘッダー欠落は欠けたラベルを列挙する", func(t *testing.T) {
		header := testHeader()
		header[11] = "知らない列" // 利用者コードを潰す
		_, err := mapHeaders(header)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "利用者コード")
	})

	t.Run("任意フィールドの欠落はエラーにならない", func(t *testing.T) {
		header := testHeader()
		header[20] = "知らない列" // 備考 (任意)
		hm, err := mapHeaders(header)
		require.NoError(t, err)
		_, ok := hm[FieldNotes]
		assert.False(t, ok)
	})
}
