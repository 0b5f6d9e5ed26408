// C:\Users\wasab\OneDrive\デスクトップ\BENTO\parsers\encoding_test.go
package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func toShiftJIS(t *testing.T, s string) []byte {
	t.Helper()
	b, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return b
}

func toEUCJP(t *testing.T, s string) []byte {
	t.Helper()
	b, _, err := transform.Bytes(japanese.EUCJP.NewEncoder(), []byte(s))
	require.NoError(t, err)
	return b
}

func TestDetectEncoding(t *testing.T) {
	sample := "企業名,利用者名,日替弁当"

	t.Run("ASCII", func(t *testing.T) {
		assert.Equal(t, EncodingASCII, DetectEncoding([]byte("code,name,amount")))
	})

	t.Run("UTF-8", func(t *testing.T) {
		assert.Equal(t, EncodingUTF8, DetectEncoding([]byte(sample)))
	})

	t.Run("UTF-8 BOM付き", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sample)...)
		assert.Equal(t, EncodingUTF8, DetectEncoding(data))
	})

	t.Run("Shift-JIS", func(t *testing.T) {
		assert.Equal(t, EncodingShiftJIS, DetectEncoding(toShiftJIS(t, sample)))
	})

	t.Run("EUC-JP", func(t *testing.T) {
		assert.Equal(t, EncodingEUCJP, DetectEncoding(toEUCJP(t, sample)))
	})

	t.Run("空データはUTF-8扱い", func(t *testing.T) {
		assert.Equal(t, EncodingUTF8, DetectEncoding(nil))
	})
}

func TestConvertToUTF8(t *testing.T) {
	sample := "株式会社テスト 日本橋支店"

	t.Run("Shift-JISからの変換", func(t *testing.T) {
		out, err := ConvertToUTF8(toShiftJIS(t, sample), EncodingShiftJIS)
		require.NoError(t, err)
		assert.Equal(t, sample, string(out))
	})

	t.Run("EUC-JPからの変換", func(t *testing.T) {
		out, err := ConvertToUTF8(toEUCJP(t, sample), EncodingEUCJP)
		require.NoError(t, err)
		assert.Equal(t, sample, string(out))
	})

	t.Run("UTF-8はBOM除去のみ", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(sample)...)
		out, err := ConvertToUTF8(data, EncodingUTF8)
		require.NoError(t, err)
		assert.Equal(t, sample, string(out))
	})
}

func TestNormalizeFileToUTF8(t *testing.T) {
	sample := "配達日,利用者コード\n2025-04-01,U0001\n"

	t.Run("元ファイルは変更されない", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "orders.csv")
		sjis := toShiftJIS(t, sample)
		require.NoError(t, os.WriteFile(src, sjis, 0644))

		normalized, detected, err := NormalizeFileToUTF8(src)
		require.NoError(t, err)
		defer os.Remove(normalized)

		assert.Equal(t, EncodingShiftJIS, detected)
		assert.NotEqual(t, src, normalized)

		// 正規化コピーはUTF-8
		out, err := os.ReadFile(normalized)
		require.NoError(t, err)
		assert.Equal(t, sample, string(out))

		// 元ファイルはShift-JISのまま
		orig, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, sjis, orig)
	})

	t.Run("Shift-JISとUTF-8で同一内容になる", func(t *testing.T) {
		dir := t.TempDir()
		sjisPath := filepath.Join(dir, "sjis.csv")
		utf8Path := filepath.Join(dir, "utf8.csv")
		require.NoError(t, os.WriteFile(sjisPath, toShiftJIS(t, sample), 0644))
		require.NoError(t, os.WriteFile(utf8Path, []byte(sample), 0644))

		n1, _, err := NormalizeFileToUTF8(sjisPath)
		require.NoError(t, err)
		defer os.Remove(n1)
		n2, _, err := NormalizeFileToUTF8(utf8Path)
		require.NoError(t, err)
		defer os.Remove(n2)

		b1, err := os.ReadFile(n1)
		require.NoError(t, err)
		b2, err := os.ReadFile(n2)
		require.NoError(t, err)
		assert.Equal(t, b1, b2)
	})

	t.Run("存在しないファイル", func(t *testing.T) {
		_, _, err := NormalizeFileToUTF8(filepath.Join(t.TempDir(), "missing.csv"))
		assert.Error(t, err)
	})
}
