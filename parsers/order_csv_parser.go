// C:\Users\wasab\OneDrive\デスクトップ\BENTO\parsers\order_csv_parser.go
package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
)

// RawOrderRow は注文CSVのデータ1行 (元ファイルの行番号付き) です。
type RawOrderRow struct {
	Line   int
	Record []string
}

// ParseOrderCSV は注文CSVを読み込み、ヘッダー行とデータ行を返します。
// 全セルが空白の行はスキップし、件数にも含めません。
// この段階ではセル内容の検証は行いません。
func ParseOrderCSV(r io.Reader, delimiter rune, hasHeader bool) ([]string, []RawOrderRow, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // 可変長カラムを許容 (後でチェック)
	if delimiter != 0 {
		reader.Comma = delimiter
	}

	line := 0
	var header []string

	if hasHeader {
		line++
		h, err := reader.Read()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("CSVファイルが空です")
		}
		if err != nil {
			return nil, nil, fmt.Errorf("CSVヘッダーの読み取りに失敗: %w", err)
		}
		header = h
	}

	var rows []RawOrderRow
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: 注文CSV %d行目の読み取りエラー (スキップ): %v", line, err)
			continue
		}
		if isBlankRow(rec) {
			continue
		}
		rows = append(rows, RawOrderRow{Line: line, Record: rec})
	}

	return header, rows, nil
}

func isBlankRow(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
