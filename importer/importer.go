// C:\Users\wasab\OneDrive\デスクトップ\BENTO\importer\importer.go
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bento/database"
	"bento/model"
	"bento/parsers"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// AbortPolicy は行エラーが閾値を超えたときの挙動です。
type AbortPolicy string

const (
	// AbortAll は閾値超過でバッチ全体をロールバックします (既定)。
	AbortAll AbortPolicy = "abort_all"
	// CommitPartial は閾値超過時点で打ち切り、それまでの成功行をコミットします。
	CommitPartial AbortPolicy = "commit_partial"
)

// 取込結果ステータス
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
	StatusAborted        = "aborted"
	StatusFailed         = "failed"
)

const (
	DefaultMaxFileSize    = 10 << 20 // 10 MB
	DefaultErrorThreshold = 50

	batchIDPrefix     = "IMP"
	maxRecordedErrors = 100
)

// ErrTooManyErrors は閾値超過によるバッチ中止を示します。
var ErrTooManyErrors = errors.New("行エラー件数が閾値を超えました")

// errDuplicateOrder は複合キー重複による行スキップを示します。
var errDuplicateOrder = errors.New("既に取込済みの注文です")

// Options は取込1回分の設定です。
type Options struct {
	MaxFileSize    int64
	Delimiter      rune
	HasHeader      bool
	ErrorThreshold int
	AbortPolicy    AbortPolicy
}

func DefaultOptions() Options {
	return Options{
		MaxFileSize:    DefaultMaxFileSize,
		Delimiter:      ',',
		HasHeader:      true,
		ErrorThreshold: DefaultErrorThreshold,
		AbortPolicy:    AbortAll,
	}
}

// Importer は注文CSV取込エンジンです。1ファイル = 1バッチ = 1トランザクション。
type Importer struct {
	db   *sqlx.DB
	opts Options
}

func New(db *sqlx.DB, opts Options) *Importer {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.ErrorThreshold <= 0 {
		opts.ErrorThreshold = DefaultErrorThreshold
	}
	if opts.AbortPolicy == "" {
		opts.AbortPolicy = AbortAll
	}
	return &Importer{db: db, opts: opts}
}

// newBatchID は "IMP" + タイムスタンプ + ランダムサフィックスを生成します。
func newBatchID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s%s%s", batchIDPrefix, time.Now().Format("20060102150405"), suffix)
}

// Run は注文CSVを1ファイル取り込みます。
// 致命的エラー (ファイル不正・ヘッダー不正・閾値超過・DB障害) のときは
// err を返しつつ、その時点までのカウンターを載せたサマリーも返します。
func (imp *Importer) Run(path string) (*model.ImportSummary, error) {
	return imp.RunWithName(path, filepath.Base(path))
}

// RunWithName は表示用ファイル名を指定して取り込みます
// (アップロード経由では一時ファイル名ではなく元のファイル名をログに残す)。
func (imp *Importer) RunWithName(path, fileName string) (summary *model.ImportSummary, err error) {
	start := time.Now()
	summary = &model.ImportSummary{
		BatchID:  newBatchID(),
		FileName: fileName,
		Status:   StatusFailed,
	}
	log.Printf("INFO: [Import %s] Starting import of %s", summary.BatchID, path)

	// ファイル検査 (トランザクション外の致命的エラー)
	info, statErr := os.Stat(path)
	if statErr != nil {
		err = fmt.Errorf("取込ファイルを開けません: %w", statErr)
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}
	if info.Size() > imp.opts.MaxFileSize {
		err = fmt.Errorf("ファイルサイズが上限を超えています (上限: %d bytes, 実際: %d bytes)", imp.opts.MaxFileSize, info.Size())
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}

	// 文字コード正規化 (元ファイルは変更せず、UTF-8のコピーを作る)
	normalizedPath, detected, normErr := parsers.NormalizeFileToUTF8(path)
	if normErr != nil {
		err = normErr
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}
	defer os.Remove(normalizedPath)
	log.Printf("INFO: [Import %s] Detected encoding: %s", summary.BatchID, detected)

	f, openErr := os.Open(normalizedPath)
	if openErr != nil {
		err = fmt.Errorf("could not open normalized file: %w", openErr)
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}
	header, rows, parseErr := parsers.ParseOrderCSV(f, imp.opts.Delimiter, imp.opts.HasHeader)
	f.Close()
	if parseErr != nil {
		err = parseErr
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}

	// ヘッダー検証はトランザクション開始前 (失敗したらDBには一切触れない)
	hm, mapErr := mapHeaders(header)
	if mapErr != nil {
		err = mapErr
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}

	summary.TotalRows = len(rows)

	tx, txErr := imp.db.Beginx()
	if txErr != nil {
		err = fmt.Errorf("failed to begin transaction: %w", txErr)
		summary.Message = err.Error()
		summary.Elapsed = time.Since(start)
		return summary, err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Printf("Rolling back import %s due to error: %v", summary.BatchID, err)
			tx.Rollback()
			summary.Success = false
		} else {
			err = tx.Commit()
			if err != nil {
				log.Printf("Error committing import %s: %v", summary.BatchID, err)
				summary.Success = false
				summary.Status = StatusFailed
				summary.Message = err.Error()
			}
		}
		summary.Elapsed = time.Since(start)
	}()

	res := newMasterResolver(tx)
	thresholdHit := false

	for _, raw := range rows {
		summary.ProcessedRows++

		procErr := imp.processRow(tx, res, hm, raw, summary.BatchID)
		if procErr == nil {
			summary.SuccessCount++
			continue
		}

		if errors.Is(procErr, errDuplicateOrder) {
			summary.DuplicateCount++
		} else {
			summary.ErrorCount++
		}
		recordRowError(summary, raw, procErr)

		// 重複は閾値に数えない (同一ファイルの再取込を中断させないため)
		if summary.ErrorCount > imp.opts.ErrorThreshold {
			if imp.opts.AbortPolicy == CommitPartial {
				log.Printf("WARN: [Import %s] Error threshold exceeded at line %d. Stopping and committing accepted rows (policy: commit_partial).", summary.BatchID, raw.Line)
				thresholdHit = true
				break
			}
			err = fmt.Errorf("%w (閾値: %d件)", ErrTooManyErrors, imp.opts.ErrorThreshold)
			summary.Status = StatusAborted
			summary.Message = err.Error()
			return summary, err
		}
	}

	summary.NewCompanies = res.NewCompanies
	summary.NewDepartments = res.NewDepartments
	summary.NewUsers = res.NewUsers
	summary.NewSuppliers = res.NewSuppliers
	summary.NewProducts = res.NewProducts

	switch {
	case thresholdHit:
		summary.Status = StatusPartialSuccess
		summary.Message = "行エラー件数が閾値を超えたため途中で打ち切りました"
	case summary.ErrorCount > 0 || summary.DuplicateCount > 0:
		summary.Status = StatusPartialSuccess
	default:
		summary.Status = StatusSuccess
	}
	summary.Success = true

	// 取込ログはトランザクション内の最後の書き込み。
	// ロールバックされたバッチのログ行は残らない。
	if logErr := database.CreateImportLogInTx(tx, buildImportLog(summary, time.Since(start))); logErr != nil {
		err = logErr
		summary.Success = false
		summary.Status = StatusFailed
		summary.Message = logErr.Error()
		return summary, err
	}

	log.Printf("INFO: [Import %s] Finished: total=%d success=%d error=%d duplicate=%d",
		summary.BatchID, summary.TotalRows, summary.SuccessCount, summary.ErrorCount, summary.DuplicateCount)
	return summary, nil
}

// processRow は1行を正規化→マスタ解決→重複確認→INSERTまで処理します。
// 返すエラーはすべて行単位 (バッチは続行)。
func (imp *Importer) processRow(tx *sqlx.Tx, res *masterResolver, hm headerMap, raw parsers.RawOrderRow, batchID string) error {
	row, err := normalizeRow(hm, raw.Record)
	if err != nil {
		return err
	}

	// マスタ解決は依存順: 企業 → 部署 → 利用者 → 仕入先 → 商品
	companyID, err := res.resolveCompany(row.CompanyCode, row.CompanyName)
	if err != nil {
		return err
	}
	departmentID, err := res.resolveDepartment(companyID, row.DepartmentCode, row.DepartmentName)
	if err != nil {
		return err
	}
	userID, err := res.resolveUser(row, companyID, departmentID)
	if err != nil {
		return err
	}
	supplierID, err := res.resolveSupplier(row.SupplierCode, row.SupplierName)
	if err != nil {
		return err
	}
	productID, err := res.resolveProduct(row, supplierID)
	if err != nil {
		return err
	}

	exists, err := database.CheckOrderExistsInTx(tx, row.UserCode, row.DeliveryDate, row.ProductCode, row.CooperationCode)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w (利用者: %s, 配達日: %s, 商品: %s, 連携コード: %s)",
			errDuplicateOrder, row.UserCode, row.DeliveryDate, row.ProductCode, row.CooperationCode)
	}

	order := &model.Order{
		DeliveryDate:     row.DeliveryDate,
		DeliveryTime:     row.DeliveryTime,
		Quantity:         row.Quantity,
		UnitPrice:        row.UnitPrice,
		TotalAmount:      row.TotalAmount,
		CompanyID:        companyID,
		DepartmentID:     departmentID,
		UserID:           userID,
		SupplierID:       supplierID,
		ProductID:        productID,
		CorporationCode:  row.CorporationCode,
		CorporationName:  row.CorporationName,
		CompanyCode:      row.CompanyCode,
		CompanyName:      row.CompanyName,
		DepartmentCode:   row.DepartmentCode,
		DepartmentName:   row.DepartmentName,
		UserCode:         row.UserCode,
		UserName:         row.UserName,
		EmployeeTypeCode: row.EmployeeTypeCode,
		EmployeeTypeName: row.EmployeeTypeName,
		SupplierCode:     row.SupplierCode,
		SupplierName:     row.SupplierName,
		ProductCode:      row.ProductCode,
		ProductName:      row.ProductName,
		CategoryCode:     row.CategoryCode,
		CategoryName:     row.CategoryName,
		CooperationCode:  row.CooperationCode,
		Notes:            row.Notes,
		ImportBatchID:    batchID,
	}
	if _, err := database.CreateOrderInTx(tx, order); err != nil {
		return err
	}
	return nil
}

// recordRowError はエラーリストに1件追加します (上限あり。カウンターは正確なまま)。
func recordRowError(summary *model.ImportSummary, raw parsers.RawOrderRow, procErr error) {
	if len(summary.Errors) >= maxRecordedErrors {
		return
	}
	summary.Errors = append(summary.Errors, model.ImportRowError{
		Line:      raw.Line,
		Message:   procErr.Error(),
		RawRecord: raw.Record,
		Timestamp: time.Now(),
	})
}

func buildImportLog(summary *model.ImportSummary, elapsed time.Duration) *model.ImportLog {
	detail, err := json.Marshal(summary.Errors)
	if err != nil {
		detail = []byte("[]")
	}
	return &model.ImportLog{
		BatchID:            summary.BatchID,
		FileName:           summary.FileName,
		Status:             summary.Status,
		TotalRows:          summary.TotalRows,
		ProcessedRows:      summary.ProcessedRows,
		SuccessCount:       summary.SuccessCount,
		ErrorCount:         summary.ErrorCount,
		DuplicateCount:     summary.DuplicateCount,
		NewCompanyCount:    summary.NewCompanies,
		NewDepartmentCount: summary.NewDepartments,
		NewUserCount:       summary.NewUsers,
		NewSupplierCount:   summary.NewSuppliers,
		NewProductCount:    summary.NewProducts,
		ErrorDetail:        string(detail),
		ProcessingSeconds:  elapsed.Seconds(),
	}
}
