package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"intouch/internal/domain"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) Create(ctx context.Context, dto domain.CreateUserDTO, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash, role, first_name, last_name, company_name, company_code, phone, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.QueryRow(
		ctx,
		query,
		strings.ToLower(dto.Email),
		passwordHash,
		dto.Role,
		dto.FirstName,
		dto.LastName,
		dto.CompanyName,
		dto.CompanyCode,
		dto.Phone,
		true,
		now,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}

	return id, nil
}

const userColumns = `id, email, password_hash, role, first_name, last_name, company_name, company_code, phone, is_active, created_at, updated_at`

func (r *UserRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.FirstName,
		&user.LastName,
		&user.CompanyName,
		&user.CompanyCode,
		&user.Phone,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

// GetByEmail is case-insensitive; emails are stored lowercased.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, strings.ToLower(email)))
}

func (r *UserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.FirstName != nil {
		setValues = append(setValues, fmt.Sprintf("first_name = $%d", argID))
		args = append(args, *dto.FirstName)
		argID++
	}
	if dto.LastName != nil {
		setValues = append(setValues, fmt.Sprintf("last_name = $%d", argID))
		args = append(args, *dto.LastName)
		argID++
	}
	if dto.CompanyName != nil {
		setValues = append(setValues, fmt.Sprintf("company_name = $%d", argID))
		args = append(args, *dto.CompanyName)
		argID++
	}
	if dto.CompanyCode != nil {
		setValues = append(setValues, fmt.Sprintf("company_code = $%d", argID))
		args = append(args, *dto.CompanyCode)
		argID++
	}
	if dto.Phone != nil {
		setValues = append(setValues, fmt.Sprintf("phone = $%d", argID))
		args = append(args, *dto.Phone)
		argID++
	}
	if dto.IsActive != nil {
		setValues = append(setValues, fmt.Sprintf("is_active = $%d", argID))
		args = append(args, *dto.IsActive)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(setValues, ", "), argID)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	tag, err := r.db.Exec(ctx, query, passwordHash, time.Now(), id)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
