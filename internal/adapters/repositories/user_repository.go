package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"delivery-ops-service/internal/domain"
)

// SQL-backed implementation of the UserRepository port.
type SQLUserRepository struct{ DB *sql.DB }

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{DB: db}
}

func (s *SQLUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var (
		u         domain.User
		createdAt string
	)
	err := s.DB.QueryRowContext(ctx, `
	SELECT id, username, password_hash, created_at
	FROM users
	WHERE username = $1;
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

func (s *SQLUserRepository) CreateUser(ctx context.Context, u *domain.User) (int64, error) {
	createdAt := time.Now().UTC().Format(time.RFC3339)

	var id int64
	err := s.DB.QueryRowContext(ctx, `
	INSERT INTO users (username, password_hash, created_at)
	VALUES ($1, $2, $3)
	RETURNING id;
	`, u.Username, u.PasswordHash, createdAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create user %q: %w", u.Username, err)
	}
	return id, nil
}
