package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/Deepak6204/schedular-server/internal/models"
)

// NewUser carries the validated fields of a signup. Password must already be
// hashed; this layer never sees plaintext credentials.
type NewUser struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	Organization string
	Plan         string
}

// ProfileUpdate is the sparse field set of a profile update.
type ProfileUpdate struct {
	Name         *string
	Phone        *string
	Organization *string
}

const userColumns = `id, name, email, password, phone, organization, plan`

// CreateUser inserts a new account. Email uniqueness is enforced by the
// database and surfaced as ErrEmailTaken.
func (s *Store) CreateUser(ctx context.Context, n NewUser) (models.User, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users(`+userColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(n.Name), n.Email, n.PasswordHash,
		strings.TrimSpace(n.Phone), strings.TrimSpace(n.Organization), n.Plan,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return s.GetUserByID(ctx, id)
}

// GetUserByEmail looks an account up by its normalized address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `email = ?`, email)
}

// GetUserByID looks an account up by id.
func (s *Store) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, `id = ?`, id)
}

func (s *Store) getUser(ctx context.Context, where string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Organization, &u.Plan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// UpdateUserPassword replaces the stored password hash.
func (s *Store) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateUserProfile applies a partial profile update and returns the full
// post-update row.
func (s *Store) UpdateUserProfile(ctx context.Context, id string, u ProfileUpdate) (models.User, error) {
	current, err := s.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	next := current
	if u.Name != nil {
		next.Name = strings.TrimSpace(*u.Name)
	}
	if u.Phone != nil {
		next.Phone = strings.TrimSpace(*u.Phone)
	}
	if u.Organization != nil {
		next.Organization = strings.TrimSpace(*u.Organization)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE users SET name = ?, phone = ?, organization = ? WHERE id = ?`,
		next.Name, next.Phone, next.Organization, id,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return next, nil
}
