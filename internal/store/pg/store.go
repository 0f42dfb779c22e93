package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"account-ledger/internal/auth"
	"account-ledger/internal/config"
	"account-ledger/internal/errs"
	"account-ledger/internal/models/accounts"
	"account-ledger/internal/models/money"
	"account-ledger/internal/models/users"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	conn *sql.DB
}

func NewStore(ctx context.Context, conn *sql.DB) *Store {
	store := &Store{
		conn: conn,
	}

	store.Bootstrap(ctx)

	return store
}

func (s *Store) Bootstrap(ctx context.Context) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	tx.ExecContext(
		ctx,
		`CREATE TABLE IF NOT EXISTS users (
			id varchar(36) PRIMARY KEY,
			login varchar(255),
			first_name varchar(255),
			last_name varchar(255),
			hash_password varchar(255),
			registration_date timestamp
		)`,
	)
	tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS login_idx ON users (login)`)

	tx.ExecContext(
		ctx,
		`CREATE TABLE IF NOT EXISTS accounts (
			id varchar(36) PRIMARY KEY,
			user_id varchar(36),
			balance bigint,
			created_date timestamp
		)`,
	)
	tx.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS account_user_idx ON accounts (user_id)`)

	return tx.Commit()
}

// CreateUser inserts the User and its Account in one transaction. The
// login uniqueness is checked defensively up front and enforced by the
// unique index on insert.
func (s *Store) CreateUser(ctx context.Context, data auth.RegistrationData) (*users.User, error) {
	var existsID string

	row := s.conn.QueryRowContext(
		ctx,
		`SELECT
			id
		FROM
			users
		WHERE
			login = $1`,
		data.Login,
	)

	err := row.Scan(&existsID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("unable query: %w", err)
	}

	if existsID != "" {
		return nil, errs.ErrAlreadyExist
	}

	user, err := data.NewUserFromData()
	if err != nil {
		return nil, fmt.Errorf("unable prepare User record: %w", err)
	}

	account := accounts.New(user.ID, config.Config.StartBalanceCeiling)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO users
			(id, login, first_name, last_name, hash_password, registration_date)
		VALUES
			($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Login, user.FirstName, user.LastName, user.HashPassword, user.RegistrationDate,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, errs.ErrAlreadyExist
		}

		return nil, err
	}

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO accounts
			(id, user_id, balance, created_date)
		VALUES
			($1, $2, $3, $4)`,
		account.ID, account.UserID, account.Balance, account.CreatedDate,
	)

	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Store) GetUserByLogin(ctx context.Context, login string) (*users.User, error) {
	var user users.User

	row := s.conn.QueryRowContext(
		ctx,
		`SELECT
			id,
			login,
			first_name,
			last_name,
			hash_password,
			registration_date
		FROM
			users
		WHERE
			login = $1`,
		login,
	)

	err := row.Scan(&user.ID, &user.Login, &user.FirstName, &user.LastName, &user.HashPassword, &user.RegistrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, fmt.Errorf("unable query: %w", err)
	}

	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, userID string) (*users.User, error) {
	var user users.User

	row := s.conn.QueryRowContext(
		ctx,
		`SELECT
			id,
			login,
			first_name,
			last_name,
			hash_password,
			registration_date
		FROM
			users
		WHERE
			id = $1`,
		userID,
	)

	err := row.Scan(&user.ID, &user.Login, &user.FirstName, &user.LastName, &user.HashPassword, &user.RegistrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, fmt.Errorf("unable query: %w", err)
	}

	return &user, nil
}

func (s *Store) UpdateUser(ctx context.Context, userID string, data users.Update) (bool, error) {
	set := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if data.FirstName != nil {
		args = append(args, *data.FirstName)
		set = append(set, fmt.Sprintf("first_name = $%d", len(args)))
	}

	if data.LastName != nil {
		args = append(args, *data.LastName)
		set = append(set, fmt.Sprintf("last_name = $%d", len(args)))
	}

	if data.HashPassword != nil {
		args = append(args, *data.HashPassword)
		set = append(set, fmt.Sprintf("hash_password = $%d", len(args)))
	}

	if len(set) == 0 {
		return false, nil
	}

	args = append(args, userID)
	query := fmt.Sprintf(
		`UPDATE users
		SET
			%s
		WHERE
			id = $%d`,
		strings.Join(set, ", "), len(args),
	)

	result, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unable query: %w", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SearchUsers never selects the hash_password column, so secrets cannot
// leak into a directory response.
func (s *Store) SearchUsers(ctx context.Context, filter string, excludeID string) ([]users.User, error) {
	result := make([]users.User, 0)

	query := `SELECT
			id,
			login,
			first_name,
			last_name
		FROM
			users
		WHERE
			id <> $1
		ORDER BY
			registration_date ASC`
	args := []interface{}{excludeID}

	if filter != "" {
		query = `SELECT
				id,
				login,
				first_name,
				last_name
			FROM
				users
			WHERE
				id <> $1 AND
				(first_name ILIKE $2 OR last_name ILIKE $2)
			ORDER BY
				registration_date ASC`
		args = append(args, "%"+filter+"%")
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return result, fmt.Errorf("unable query: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var user users.User

		err = rows.Scan(&user.ID, &user.Login, &user.FirstName, &user.LastName)
		if err != nil {
			return result, fmt.Errorf("unable to scan row: %w", err)
		}

		result = append(result, user)
	}

	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("cursor error: %w", err)
	}

	return result, nil
}

func (s *Store) GetAccountByUserID(ctx context.Context, userID string) (*accounts.Account, error) {
	var account accounts.Account

	row := s.conn.QueryRowContext(
		ctx,
		`SELECT
			id,
			user_id,
			balance,
			created_date
		FROM
			accounts
		WHERE
			user_id = $1`,
		userID,
	)

	err := row.Scan(&account.ID, &account.UserID, &account.Balance, &account.CreatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ErrNotFound
		}

		return nil, fmt.Errorf("unable query: %w", err)
	}

	return &account, nil
}

func (s *Store) Transfer(ctx context.Context, fromUserID string, toUserID string, sum money.Money) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var balance money.Money

	row := tx.QueryRowContext(
		ctx,
		`SELECT
			balance
		FROM
			accounts
		WHERE
			user_id = $1
		FOR UPDATE`,
		fromUserID,
	)

	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}

		return fmt.Errorf("unable query: %w", err)
	}

	if balance < sum {
		return errs.ErrInsufficientFunds
	}

	_, err = tx.ExecContext(
		ctx,
		`UPDATE accounts
		SET
			balance = balance - $1
		WHERE
			user_id = $2`,
		sum, fromUserID,
	)

	if err != nil {
		return err
	}

	result, err := tx.ExecContext(
		ctx,
		`UPDATE accounts
		SET
			balance = balance + $1
		WHERE
			user_id = $2`,
		sum, toUserID,
	)

	if err != nil {
		return err
	}

	count, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.ErrNotFound
	}

	return tx.Commit()
}

func (s *Store) Close() error {
	return s.conn.Close()
}
