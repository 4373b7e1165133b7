// Package repository реализует хранилище PostgreSQL для администраторов,
// участников, абонементов и планов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// querier общий интерфейс *sql.DB и *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// New открывает пул соединений с PostgreSQL. Подключение не проверяется:
// для этого есть Ping и WaitReady.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{DB: db}, nil
}

// WaitReady пингует базу до attempts раз с паузой delay, пока она не ответит.
func (s *Storage) WaitReady(ctx context.Context, attempts int, delay time.Duration) error {
	const op = "storage.WaitReady"
	var err error
	for attempt := range max(attempts, 1) {
		if err = s.Ping(ctx); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("%s: database not ready: %w", op, err)
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Ping проверяет доступность базы данных.
func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// withTx выполняет fn в транзакции. Транзакция откатывается при ошибке fn.
func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// checkCtx возвращает ошибку, если контекст уже отменён.
func checkCtx(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

// mapError переводит ошибки драйвера в ошибки предметной области.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			switch pgErr.ConstraintName {
			case "ux_admins_email", "ux_members_email":
				return models.ErrEmailAlreadyInUse
			default:
				return models.ErrAlreadyExists
			}
		case pgerrcode.ForeignKeyViolation:
			return models.ErrNotFound
		case pgerrcode.NumericValueOutOfRange:
			return models.ErrValueOutOfRange
		}
	}
	return err
}

// lockEmail берёт транзакционную advisory-блокировку на email, чтобы
// параллельные регистрации в разных таблицах не получили один адрес.
func lockEmail(ctx context.Context, tx *sql.Tx, email string) error {
	_, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext(lower($1)))`, email)
	return err
}

// ensureEmailFree проверяет, что email не занят ни администратором, ни участником,
// кроме записи с идентификатором except.
func ensureEmailFree(ctx context.Context, q querier, email string, except uuid.UUID) error {
	var taken bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM admins WHERE lower(admin_email) = lower($1) AND admin_id <> $2)
		    OR EXISTS (SELECT 1 FROM members WHERE lower(member_email) = lower($1) AND member_id <> $2)`,
		email, except).Scan(&taken)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrEmailAlreadyInUse
	}
	return nil
}

// affectedOrNotFound возвращает ErrNotFound, если запрос не изменил ни одной строки.
func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
