package zombiezen

import (
	"context"
	"fmt"
	"time"

	"github.com/reelmark/reelmark/db"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

func newSessionFromStmt(stmt *sqlite.Stmt) (*db.Session, error) {
	created, err := db.TimeParse(stmt.GetText("created"))
	if err != nil {
		return nil, fmt.Errorf("error parsing created time: %w", err)
	}

	expires, err := db.TimeParse(stmt.GetText("expires"))
	if err != nil {
		return nil, fmt.Errorf("error parsing expires time: %w", err)
	}

	return &db.Session{
		ID:       stmt.GetText("id"),
		UserID:   stmt.GetText("user_id"),
		Email:    stmt.GetText("email"),
		Favorite: stmt.GetText("favorite"),
		Created:  created,
		Expires:  expires,
	}, nil
}

func (d *Db) CreateSession(s db.Session) error {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	defer d.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`INSERT INTO sessions (id, user_id, email, favorite, created, expires)
		VALUES (?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{
				s.ID,
				s.UserID,
				s.Email,
				nullable(s.Favorite),
				db.TimeFormat(s.Created),
				db.TimeFormat(s.Expires),
			},
		})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession returns the session with the given id, or (nil, nil) when none
// exists. Expiry is not checked here; that is the caller's concern.
func (d *Db) GetSession(id string) (*db.Session, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer d.pool.Put(conn)

	var session *db.Session
	err = sqlitex.Execute(conn,
		`SELECT id, user_id, email, favorite, created, expires
		FROM sessions WHERE id = ? LIMIT 1`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				var err error
				session, err = newSessionFromStmt(stmt)
				return err
			},
			Args: []any{id},
		})

	if err != nil {
		return nil, err
	}

	return session, nil
}

func (d *Db) DeleteSession(id string) error {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	defer d.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`DELETE FROM sessions WHERE id = ?`,
		&sqlitex.ExecOptions{
			Args: []any{id},
		})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry is before the
// given instant. RFC3339 strings order lexicographically, so the comparison
// runs on the index.
func (d *Db) DeleteExpiredSessions(before time.Time) (int, error) {
	conn, err := d.pool.Take(context.TODO())
	if err != nil {
		return 0, fmt.Errorf("failed to get database connection: %w", err)
	}
	defer d.pool.Put(conn)

	err = sqlitex.Execute(conn,
		`DELETE FROM sessions WHERE expires < ?`,
		&sqlitex.ExecOptions{
			Args: []any{db.TimeFormat(before)},
		})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return conn.Changes(), nil
}
