// Credential store: looks up an account and verifies the supplied password
// against the stored bcrypt hash.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mesh-intelligence/tix/pkg/types"
)

// Authenticate verifies a username/password pair. An unknown username and a
// wrong password both return ErrInvalidCredentials, so a caller cannot tell
// which of the two failed. On success the returned user carries an empty
// password hash; the stored hash never leaves this package.
func (b *Backend) Authenticate(username, password string) (*types.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	row := b.db.QueryRow(
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?",
		username,
	)
	user, err := hydrateUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !verifyPassword(user.PasswordHash, password) {
		return nil, types.ErrInvalidCredentials
	}

	return user.Public(), nil
}

// hydrateUser converts a single SQLite row into a *types.User.
func hydrateUser(row *sql.Row) (*types.User, error) {
	var u types.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &createdAt); err != nil {
		return nil, err
	}
	var err error
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}

// hashPassword returns the bcrypt hash of the given password.
func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plain matches the stored bcrypt hash.
func verifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
