// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\handler.go
package importer

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
)

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	log.Println("Error response:", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": message,
	})
}

// UploadOrderCSVHandler はブラウザからの注文CSVアップロードを受け付け、
// 一時ファイルに保存して取込エンジンに渡します。
func UploadOrderCSVHandler(db *sqlx.DB, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		log.Println("Received order CSV upload request...")

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			respondJSONError(w, "File upload error: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		files := r.MultipartForm.File["file"]
		if len(files) == 0 {
			respondJSONError(w, "ファイルが選択されていません。", http.StatusBadRequest)
			return
		}
		fileHeader := files[0]

		file, err := fileHeader.Open()
		if err != nil {
			respondJSONError(w, "Failed to open uploaded file: "+err.Error(), http.StatusInternalServerError)
			return
		}

		tmp, err := os.CreateTemp("", "bento_upload_*.csv")
		if err != nil {
			file.Close()
			respondJSONError(w, "Failed to create temp file: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_, copyErr := io.Copy(tmp, file)
		file.Close()
		tmp.Close()
		defer os.Remove(tmp.Name())
		if copyErr != nil {
			respondJSONError(w, "Failed to save uploaded file: "+copyErr.Error(), http.StatusInternalServerError)
			return
		}

		imp := New(db, opts)
		summary, runErr := imp.RunWithName(tmp.Name(), fileHeader.Filename)
		if runErr != nil {
			log.Printf("Import failed for %s: %v", fileHeader.Filename, runErr)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(summary)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
