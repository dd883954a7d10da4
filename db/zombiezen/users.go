package zombiezen

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/reelmark/reelmark/db"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// newUserFromStmt creates a User struct from a SQLite statement
func newUserFromStmt(stmt *sqlite.Stmt) (*db.User, error) {
	created, err := db.TimeParse(stmt.GetText("created"))
	if err != nil {
		return nil, fmt.Errorf("error parsing created time: %w", err)
	}

	updated, err := db.TimeParse(stmt.GetText("updated"))
	if err != nil {
		return nil, fmt.Errorf("error parsing updated time: %w", err)
	}

	return &db.User{
		ID:       stmt.GetText("id"),
		Email:    stmt.GetText("email"),
		Name:     stmt.GetText("name"),
		Password: stmt.GetText("password"),
		Favorite: stmt.GetText("favorite"), // NULL reads as ""
		Created:  created,
		Updated:  updated,
	}, nil
}

// GetUserByEmail retrieves a user by email address.
// Returns:
// - *db.User: user record if found, nil if no matching record exists
// - error: only returned for database errors, nil on successful query
// Note: a nil user with nil error indicates no matching record was found.
func (d *Db) GetUserByEmail(email string) (*db.User, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer d.pool.Put(conn)

	var user *db.User // Will remain nil if no rows found
	err = sqlitex.Execute(conn,
		`SELECT id, email, name, password, favorite, created, updated
		FROM users WHERE email = ? LIMIT 1`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var err error
				user, err = newUserFromStmt(stmt)
				return err
			},
			Args: []any{email},
		})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (d *Db) GetUserById(id string) (*db.User, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer d.pool.Put(conn)

	var user *db.User
	err = sqlitex.Execute(conn,
		`SELECT id, email, name, password, favorite, created, updated
		FROM users WHERE id = ? LIMIT 1`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var err error
				user, err = newUserFromStmt(stmt)
				return err
			},
			Args: []any{id},
		})

	if err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUserWithPassword inserts a local-credential account. The password is
// expected to be hashed already. A duplicate email surfaces as
// db.ErrConstraintUnique so the caller can answer with a clean conflict.
func (d *Db) CreateUserWithPassword(user db.User) (*db.User, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer d.pool.Put(conn)

	var createdUser *db.User
	err = sqlitex.Execute(conn,
		`INSERT INTO users (id, email, name, password)
		VALUES (?, ?, ?, ?)
		RETURNING id, email, name, password, favorite, created, updated`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var err error
				createdUser, err = newUserFromStmt(stmt)
				return err
			},
			Args: []any{
				uuid.NewString(),
				user.Email,
				user.Name,
				user.Password,
			},
		})

	if err != nil {
		if sqlite.ErrCode(err) == sqlite.ResultConstraintUnique {
			return nil, db.ErrConstraintUnique
		}
		return nil, err
	}

	return createdUser, nil
}

// CreateUserWithOauth2 inserts a provider-issued account with the sentinel
// password value. SQLite allows one writer at a time, so two racing
// first-time logins for the same email serialize on the UNIQUE index: the
// loser's INSERT turns into a no-op update and RETURNING hands back the row
// the winner created. Both callers succeed and observe the same record,
// without a transaction.
func (d *Db) CreateUserWithOauth2(user db.User) (*db.User, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer d.pool.Put(conn)

	var createdUser *db.User
	err = sqlitex.Execute(conn,
		`INSERT INTO users (id, email, name, password)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			updated = (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		RETURNING id, email, name, password, favorite, created, updated`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var err error
				createdUser, err = newUserFromStmt(stmt)
				return err
			},
			Args: []any{
				uuid.NewString(),
				user.Email,
				user.Name,
				db.Oauth2PasswordSentinel,
			},
		})

	if err != nil {
		return nil, err
	}

	return createdUser, nil
}

// UpdateFavorite replaces the user's single favorite title. An empty title
// stores NULL.
func (d *Db) UpdateFavorite(email string, title string) error {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	defer d.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`UPDATE users
		SET favorite = ?,
			updated = (strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		WHERE email = ?`,
		&sqlitex.ExecOptions{
			Args: []any{nullable(title), email},
		})
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}

	return nil
}
