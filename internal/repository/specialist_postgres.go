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

// Categories, services and cities are stored as text arrays; an empty cities
// array is the nationwide-coverage sentinel and must round-trip as empty,
// never null.
type SpecialistRepo struct {
	db *pgxpool.Pool
}

func NewSpecialistRepository(db *pgxpool.Pool) *SpecialistRepo {
	return &SpecialistRepo{
		db: db,
	}
}

func (r *SpecialistRepo) CreateProfile(ctx context.Context, userID int64, profile domain.SpecialistProfile) error {
	query := `
		INSERT INTO specialist_profiles (
			user_id,
			type,
			profession,
			categories,
			services,
			cities,
			phone,
			description,
			hourly_rate,
			experience,
			verified,
			photo_url,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
	`

	cities := profile.Coverage.Cities
	if cities == nil {
		cities = []string{}
	}

	_, err := r.db.Exec(ctx, query,
		userID,
		profile.Type,
		profile.Profession,
		profile.Categories,
		profile.Services,
		cities,
		profile.Phone,
		profile.Description,
		profile.HourlyRate,
		profile.Experience,
		profile.Verified,
		profile.PhotoURL,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("creating specialist profile: %w", err)
	}

	return nil
}

const profileColumns = `user_id, type, profession, categories, services, cities, phone, description, hourly_rate, experience, verified, photo_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.SpecialistProfile, error) {
	var p domain.SpecialistProfile
	var cities []string
	err := row.Scan(
		&p.UserID,
		&p.Type,
		&p.Profession,
		&p.Categories,
		&p.Services,
		&cities,
		&p.Phone,
		&p.Description,
		&p.HourlyRate,
		&p.Experience,
		&p.Verified,
		&p.PhotoURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching specialist profile: %w", err)
	}
	p.Coverage = domain.CitiesCoverage(cities)
	return &p, nil
}

func (r *SpecialistRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SpecialistProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM specialist_profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

func (r *SpecialistRepo) UpdateProfile(ctx context.Context, userID int64, dto domain.UpdateProfileDTO) error {
	setValues := make([]string, 0)
	args := make([]interface{}, 0)
	argID := 1

	if dto.Profession != nil {
		setValues = append(setValues, fmt.Sprintf("profession = $%d", argID))
		args = append(args, *dto.Profession)
		argID++
	}
	if dto.Categories != nil {
		setValues = append(setValues, fmt.Sprintf("categories = $%d", argID))
		args = append(args, dto.Categories)
		argID++
	}
	if dto.Services != nil {
		setValues = append(setValues, fmt.Sprintf("services = $%d", argID))
		args = append(args, dto.Services)
		argID++
	}
	if dto.Cities != nil {
		cities := *dto.Cities
		if cities == nil {
			cities = []string{}
		}
		setValues = append(setValues, fmt.Sprintf("cities = $%d", argID))
		args = append(args, cities)
		argID++
	}
	if dto.Phone != nil {
		setValues = append(setValues, fmt.Sprintf("phone = $%d", argID))
		args = append(args, *dto.Phone)
		argID++
	}
	if dto.Description != nil {
		setValues = append(setValues, fmt.Sprintf("description = $%d", argID))
		args = append(args, *dto.Description)
		argID++
	}
	if dto.HourlyRate != nil {
		setValues = append(setValues, fmt.Sprintf("hourly_rate = $%d", argID))
		args = append(args, *dto.HourlyRate)
		argID++
	}
	if dto.Experience != nil {
		setValues = append(setValues, fmt.Sprintf("experience = $%d", argID))
		args = append(args, *dto.Experience)
		argID++
	}

	if len(setValues) == 0 {
		return nil
	}

	setValues = append(setValues, fmt.Sprintf("updated_at = $%d", argID))
	args = append(args, time.Now())
	argID++

	query := fmt.Sprintf("UPDATE specialist_profiles SET %s WHERE user_id = $%d", strings.Join(setValues, ", "), argID)
	args = append(args, userID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating specialist profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SpecialistRepo) UpdateServices(ctx context.Context, userID int64, services []string) error {
	query := `UPDATE specialist_profiles SET services = $1, updated_at = $2 WHERE user_id = $3`

	tag, err := r.db.Exec(ctx, query, services, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("updating specialist services: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SpecialistRepo) UpdatePhoto(ctx context.Context, userID int64, photoURL string) error {
	query := `UPDATE specialist_profiles SET photo_url = $1, updated_at = $2 WHERE user_id = $3`

	tag, err := r.db.Exec(ctx, query, photoURL, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("updating specialist photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *SpecialistRepo) GetAll(ctx context.Context) ([]domain.Specialist, error) {
	query := `
		SELECT s.user_id, s.type, s.profession, s.categories, s.services, s.cities,
		       s.phone, s.description, s.hourly_rate, s.experience, s.verified, s.photo_url,
		       s.created_at, s.updated_at,
		       u.email, u.first_name, u.last_name, u.company_name, u.company_code
		FROM specialist_profiles s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.created_at, s.user_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing specialists: %w", err)
	}
	defer rows.Close()

	var specialists []domain.Specialist
	for rows.Next() {
		var sp domain.Specialist
		var cities []string
		err := rows.Scan(
			&sp.UserID,
			&sp.Type,
			&sp.Profession,
			&sp.Categories,
			&sp.Services,
			&cities,
			&sp.Phone,
			&sp.Description,
			&sp.HourlyRate,
			&sp.Experience,
			&sp.Verified,
			&sp.PhotoURL,
			&sp.CreatedAt,
			&sp.UpdatedAt,
			&sp.Email,
			&sp.FirstName,
			&sp.LastName,
			&sp.CompanyName,
			&sp.CompanyCode,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning specialist row: %w", err)
		}
		sp.Coverage = domain.CitiesCoverage(cities)
		specialists = append(specialists, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating specialist rows: %w", err)
	}

	return specialists, nil
}
