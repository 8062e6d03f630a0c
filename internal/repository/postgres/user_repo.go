package postgres

import (
	"context"
	"fmt"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const userColumns = `id, email, full_name, role, skills, is_verified, portfolio_links, bio, image_url, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.Role, pq.Array(&u.Skills), &u.IsVerified,
		pq.Array(&u.PortfolioLinks), &u.Bio, &u.ImageURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new account. A taken email is reported as BadRequest.
func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, full_name, role, is_verified, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := r.db.QueryRow(ctx, query,
		user.Email, user.FullName, string(user.Role), user.IsVerified, user.PasswordHash, now,
	).Scan(&user.ID)
	return translateUserInsertError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err, "User not found")
	}
	return user, nil
}

// List returns users matching filter, newest first.
func (r *userRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsVerified != nil {
		args = append(args, *filter.IsVerified)
		conds = append(conds, fmt.Sprintf("is_verified = $%d", len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateError(err, "")
		}
		users = append(users, *u)
	}
	return users, translateError(rows.Err(), "")
}

// UpdateProfile writes the self-editable fields. Role and is_verified are not touched.
func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, bio = $3, skills = $4, portfolio_links = $5, image_url = $6, updated_at = $7
		WHERE id = $1
		RETURNING updated_at`

	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	links := user.PortfolioLinks
	if links == nil {
		links = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		user.ID, user.FullName, user.Bio, pq.Array(skills), pq.Array(links), user.ImageURL, time.Now(),
	).Scan(&user.UpdatedAt)
	return translateError(err, "User not found")
}

func (r *userRepo) SetVerified(ctx context.Context, id int64, verified bool) error {
	query := `UPDATE users SET is_verified = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, verified, time.Now())
	if err != nil {
		return translateError(err, "User not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// Delete removes the user; jobs and applications go with it via ON DELETE CASCADE.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "User not found")
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
