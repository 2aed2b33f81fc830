// Package sqlite persists the network in an SQLite database. Each profile
// is a users row; friends and posts keep their order in a position column.
// A save replaces the whole snapshot inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophnet/internal/dbx"
	"github.com/dmitrijs2005/gophnet/internal/graph"
	"github.com/dmitrijs2005/gophnet/internal/logging"
	"github.com/dmitrijs2005/gophnet/internal/models"
	"github.com/dmitrijs2005/gophnet/internal/storage/sqlite/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repository is the sqlite backend.
type Repository struct {
	db   *sql.DB
	opts []graph.Option
	log  logging.Logger
}

// RunMigrations brings the schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Open connects to dsn and applies migrations. Stores it loads are built
// with opts.
func Open(ctx context.Context, dsn string, log logging.Logger, opts ...graph.Option) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	// One connection keeps ":memory:" databases coherent and matches the
	// single-user access pattern.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewRepository(db, log, opts...), nil
}

// NewRepository wraps an already migrated database.
func NewRepository(db *sql.DB, log logging.Logger, opts ...graph.Option) *Repository {
	return &Repository{db: db, opts: opts, log: log.With("backend", "sqlite")}
}

// Load rebuilds the store from the three tables.
func (r *Repository) Load(ctx context.Context) (*graph.Store, error) {
	profiles, order, err := r.loadUsers(ctx)
	if err != nil {
		return nil, err
	}

	err = r.eachRow(ctx, `SELECT username, friend FROM friends ORDER BY username, position`,
		func(user, friend string) {
			if p, ok := profiles[user]; ok {
				p.Friends = append(p.Friends, friend)
			}
		})
	if err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}

	err = r.eachRow(ctx, `SELECT username, content FROM posts ORDER BY username, position`,
		func(user, content string) {
			if p, ok := profiles[user]; ok {
				p.Posts = append(p.Posts, models.Post{Content: content})
			}
		})
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	s := graph.New(r.opts...)
	for _, name := range order {
		s.Restore(*profiles[name])
	}
	r.log.Info(ctx, "network loaded", "users", s.Len())
	return s, nil
}

func (r *Repository) loadUsers(ctx context.Context) (map[string]*models.Profile, []string, error) {
	profiles := make(map[string]*models.Profile)
	var order []string

	err := r.eachRow(ctx, `SELECT username, password FROM users ORDER BY username`,
		func(user, password string) {
			profiles[user] = models.NewProfile(user, password)
			order = append(order, user)
		})
	if err != nil {
		return nil, nil, fmt.Errorf("load users: %w", err)
	}
	return profiles, order, nil
}

// eachRow runs a two-column text query and calls fn per row.
func (r *Repository) eachRow(ctx context.Context, query string, fn func(a, b string)) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a, b string
		if err := rows.Scan(&a, &b); err != nil {
			return err
		}
		fn(a, b)
	}
	return rows.Err()
}

// Save replaces every row with the contents of s.
func (r *Repository) Save(ctx context.Context, s *graph.Store) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, table := range []string{"posts", "friends", "users"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return s.Each(func(p models.Profile) error {
			return insertProfile(ctx, tx, p)
		})
	})
	if err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	r.log.Info(ctx, "network saved", "users", s.Len())
	return nil
}

func insertProfile(ctx context.Context, tx dbx.DBTX, p models.Profile) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`, p.Username, p.Password); err != nil {
		return fmt.Errorf("insert user %q: %w", p.Username, err)
	}
	for i, f := range p.Friends {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO friends (username, position, friend) VALUES (?, ?, ?)`, p.Username, i, f); err != nil {
			return fmt.Errorf("insert friend of %q: %w", p.Username, err)
		}
	}
	for i, post := range p.Posts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO posts (username, position, content) VALUES (?, ?, ?)`, p.Username, i, post.Content); err != nil {
			return fmt.Errorf("insert post of %q: %w", p.Username, err)
		}
	}
	return nil
}

// Close closes the database.
func (r *Repository) Close() error {
	return r.db.Close()
}
