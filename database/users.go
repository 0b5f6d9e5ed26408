// C:\Users\wasab\OneDrive\デスクトップ\BENTO\database\users.go
package database

import (
	"fmt"

	"bento/model"

	"github.com/jmoiron/sqlx"
)

// FindUserIDInTx は利用者コード (全社一意) で利用者を検索します。
// 見つからない場合は sql.ErrNoRows を返します。
func FindUserIDInTx(tx *sqlx.Tx, userCode string) (int64, error) {
	var id int64
	const q = `SELECT id FROM user_master WHERE user_code = ? LIMIT 1`
	if err := tx.Get(&id, q, userCode); err != nil {
		return 0, err
	}
	return id, nil
}

func CreateUserInTx(tx *sqlx.Tx, u *model.User) (int64, error) {
	const q = `
		INSERT INTO user_master (
			user_code, user_name, employee_type_code, employee_type_name,
			company_id, department_id, company_name, department_name, is_active
		) VALUES (
			:user_code, :user_name, :employee_type_code, :employee_type_name,
			:company_id, :department_id, :company_name, :department_name, 1
		)`
	res, err := tx.NamedExec(q, u)
	if err != nil {
		return 0, fmt.Errorf("CreateUserInTx (UserCode: %s) failed: %w", u.UserCode, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("CreateUserInTx: failed to get last insert id: %w", err)
	}
	return id, nil
}

func GetAllUsers(db *sqlx.DB) ([]model.User, error) {
	var users []model.User
	err := db.Select(&users, "SELECT * FROM user_master ORDER BY user_code")
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	return users, nil
}
