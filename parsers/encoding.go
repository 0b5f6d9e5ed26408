// C:\Users\wasab\OneDrive\デスクトップ\BENTO\parsers\encoding.go
package parsers

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// 検出対象の文字コード
const (
	EncodingUTF8     = "UTF-8"
	EncodingShiftJIS = "SHIFT_JIS"
	EncodingEUCJP    = "EUC-JP"
	EncodingASCII    = "ASCII"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding はバイト列の文字コードを
// UTF-8 / SHIFT_JIS / EUC-JP / ASCII の中から推定します。
// 判定がつかない場合は SHIFT_JIS (業者側の既定コード) とみなします。
func DetectEncoding(data []byte) string {
	if len(data) == 0 {
		return EncodingUTF8
	}
	if bytes.HasPrefix(data, utf8BOM) {
		return EncodingUTF8
	}

	isASCII := true
	for _, b := range data {
		if b >= 0x80 {
			isASCII = false
			break
		}
	}
	if isASCII {
		return EncodingASCII
	}

	if utf8.Valid(data) {
		return EncodingUTF8
	}

	sjisScore := scoreShiftJIS(data)
	eucScore := scoreEUCJP(data)
	if eucScore > sjisScore {
		return EncodingEUCJP
	}
	return EncodingShiftJIS
}

// scoreShiftJIS は Shift-JIS として解釈できた2バイト列の数を返します。
// 不正なリードバイトに出会ったら減点します。
func scoreShiftJIS(data []byte) int {
	score := 0
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b < 0x80: // ASCII
			i++
		case b >= 0xA1 && b <= 0xDF: // 半角カナ
			score++
			i++
		case (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC):
			if i+1 < len(data) {
				t := data[i+1]
				if (t >= 0x40 && t <= 0x7E) || (t >= 0x80 && t <= 0xFC) {
					score += 2
					i += 2
					continue
				}
			}
			score--
			i++
		default:
			score--
			i++
		}
	}
	return score
}

// scoreEUCJP は EUC-JP として解釈できた2バイト列の数を返します。
func scoreEUCJP(data []byte) int {
	score := 0
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b < 0x80: // ASCII
			i++
		case b == 0x8E: // 半角カナ (SS2)
			if i+1 < len(data) && data[i+1] >= 0xA1 && data[i+1] <= 0xDF {
				score += 2
				i += 2
				continue
			}
			score--
			i++
		case b >= 0xA1 && b <= 0xFE:
			if i+1 < len(data) && data[i+1] >= 0xA1 && data[i+1] <= 0xFE {
				score += 2
				i += 2
				continue
			}
			score--
			i++
		default:
			score--
			i++
		}
	}
	return score
}

// ConvertToUTF8 は検出済みの文字コードからUTF-8へ変換し、BOMを除去します。
func ConvertToUTF8(data []byte, encoding string) ([]byte, error) {
	var converted []byte
	switch encoding {
	case EncodingUTF8, EncodingASCII:
		converted = data
	case EncodingShiftJIS:
		out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("Shift-JISからUTF-8への変換に失敗: %w", err)
		}
		converted = out
	case EncodingEUCJP:
		out, _, err := transform.Bytes(japanese.EUCJP.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("EUC-JPからUTF-8への変換に失敗: %w", err)
		}
		converted = out
	default:
		return nil, fmt.Errorf("未対応の文字コードです: %s", encoding)
	}
	return bytes.TrimPrefix(converted, utf8BOM), nil
}

// NormalizeFileToUTF8 はファイルを読み込み、文字コードを検出してUTF-8に
// 正規化したコピーを一時ファイルに書き出します。元ファイルは変更しません。
// 戻り値は (一時ファイルパス, 検出された文字コード, error) で、
// 一時ファイルの削除は呼び出し側の責任です。
func NormalizeFileToUTF8(srcPath string) (string, string, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return "", "", fmt.Errorf("could not read file %s: %w", srcPath, err)
	}

	detected := DetectEncoding(data)
	converted, err := ConvertToUTF8(data, detected)
	if err != nil {
		return "", "", err
	}

	tmp, err := os.CreateTemp("", "bento_import_*.csv")
	if err != nil {
		return "", "", fmt.Errorf("could not create temp file: %w", err)
	}
	if _, err := tmp.Write(converted); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("could not write normalized copy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", "", fmt.Errorf("could not close normalized copy: %w", err)
	}
	return tmp.Name(), detected, nil
}
