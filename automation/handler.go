// C:\Users\wasab\OneDrive\デスクトップ\BENTO\automation\handler.go
package automation

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"bento/config"
	"bento/importer"

	"github.com/jmoiron/sqlx"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// DownloadOrderCSVHandler は受注Webから注文CSVをダウンロードし、
// そのまま取込エンジンに渡します。
func DownloadOrderCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			writeJSONError(w, "設定の読み込みに失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if cfg.VendorUserID == "" || cfg.VendorPassword == "" {
			writeJSONError(w, "受注WebのIDまたはパスワードが設定されていません。設定画面で入力してください。", http.StatusBadRequest)
			return
		}

		saveDir := cfg.CSVFolderPath
		if saveDir == "" {
			saveDir = os.TempDir()
			log.Printf("CSV保存先設定がないため、一時フォルダを使用します: %s", saveDir)
		}

		log.Println("Starting vendor portal automation...")
		filePath, err := DownloadOrderCSV(cfg.VendorUserID, cfg.VendorPassword, saveDir)

		if err != nil {
			log.Printf("Automation Error: %v", err)
			writeJSONError(w, "自動受信エラー: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if filePath == "NO_DATA" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "no_data",
				"message": "未受信のデータはありませんでした。",
			})
			return
		}

		log.Printf("Importing downloaded file: %s", filePath)
		opts := importer.DefaultOptions()
		opts.MaxFileSize = int64(cfg.MaxFileSizeMB) << 20
		opts.ErrorThreshold = cfg.ErrorThreshold
		opts.AbortPolicy = importer.AbortPolicy(cfg.AbortPolicy)

		imp := importer.New(db, opts)
		summary, err := imp.Run(filePath)
		if err != nil {
			log.Printf("Import of downloaded file failed: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":   "import_failed",
				"message":  "取込処理でエラー: " + err.Error(),
				"filePath": filePath,
				"summary":  summary,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "success",
			"message":  "ダウンロード＆取込完了",
			"filePath": filePath,
			"summary":  summary,
		})
	}
}
