// Package store is the development backend's book catalog, kept in SQLite
// with an FTS5 index over the text columns.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	_ "modernc.org/sqlite"

	"github.com/abelbrown/bookfinder/internal/book"
)

// ErrNotFound is returned by Get for unknown books.
var ErrNotFound = errors.New("store: book not found")

// schemaVersion is stored in PRAGMA user_version.
const schemaVersion = 1

// Store is the catalog. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Hit is one full-text match. Rank is FTS5 bm25: negative, lower is better.
type Hit struct {
	Book book.Book
	Rank float64
}

// Open opens (or creates) the catalog at dbPath. Every Store opened with
// ":memory:" in one process shares the same in-memory catalog.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	schema := `
	CREATE TABLE IF NOT EXISTS books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		isbn13 TEXT NOT NULL,
		title TEXT NOT NULL,
		authors TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		thumbnail TEXT NOT NULL DEFAULT '',
		categories TEXT NOT NULL DEFAULT '',
		published_year REAL,
		average_rating REAL,
		moods TEXT,
		UNIQUE (isbn13, title)
	);

	CREATE VIRTUAL TABLE IF NOT EXISTS books_fts USING fts5(
		title, authors, description, categories,
		content='books', content_rowid='id'
	);

	CREATE TRIGGER IF NOT EXISTS books_ai AFTER INSERT ON books BEGIN
		INSERT INTO books_fts(rowid, title, authors, description, categories)
		VALUES (new.id, new.title, new.authors, new.description, new.categories);
	END;

	CREATE TRIGGER IF NOT EXISTS books_ad AFTER DELETE ON books BEGIN
		INSERT INTO books_fts(books_fts, rowid, title, authors, description, categories)
		VALUES ('delete', old.id, old.title, old.authors, old.description, old.categories);
	END;

	CREATE TRIGGER IF NOT EXISTS books_au AFTER UPDATE ON books BEGIN
		INSERT INTO books_fts(books_fts, rowid, title, authors, description, categories)
		VALUES ('delete', old.id, old.title, old.authors, old.description, old.categories);
		INSERT INTO books_fts(rowid, title, authors, description, categories)
		VALUES (new.id, new.title, new.authors, new.description, new.categories);
	END;
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Add upserts books by (isbn13, title) and returns how many were written.
func (s *Store) Add(books []book.Book) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(books) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO books (
			isbn13, title, authors, description, thumbnail, categories,
			published_year, average_rating, moods
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (isbn13, title) DO UPDATE SET
			authors = excluded.authors,
			description = excluded.description,
			thumbnail = excluded.thumbnail,
			categories = excluded.categories,
			published_year = excluded.published_year,
			average_rating = excluded.average_rating,
			moods = excluded.moods
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	for _, b := range books {
		if strings.TrimSpace(b.Title) == "" {
			return 0, fmt.Errorf("store: book %q has no title", b.ISBN13)
		}
		var moods sql.NullString
		if len(b.Moods) > 0 {
			data, err := json.Marshal(b.Moods)
			if err != nil {
				return 0, err
			}
			moods = sql.NullString{String: string(data), Valid: true}
		}
		if _, err := stmt.Exec(
			b.ISBN13, b.Title, b.Authors, b.Description, b.Thumbnail, b.Categories,
			nullFloat(b.PublishedYear), nullFloat(b.AverageRating), moods,
		); err != nil {
			return 0, fmt.Errorf("store: insert %q: %w", b.Title, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// Count returns the number of books.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM books").Scan(&n)
	return n, err
}

// Get returns one book by identity.
func (s *Store) Get(isbn13, title string) (book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+bookColumns+` FROM books b WHERE isbn13 = ? AND title = ?`, isbn13, title)
	b, err := scanBook(row)
	if errors.Is(err, sql.ErrNoRows) {
		return book.Book{}, ErrNotFound
	}
	return b, err
}

// List returns up to limit books in insertion order.
func (s *Store) List(limit int) ([]book.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT `+bookColumns+` FROM books b ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []book.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Search runs a full-text query. Any word may match; titles weigh most.
// A query with no searchable words returns no hits.
func (s *Store) Search(q string, limit int) ([]Hit, error) {
	match := MatchExpr(q)
	if match == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT `+bookColumns+`, bm25(books_fts, 10.0, 4.0, 2.0, 1.0) AS score
		FROM books_fts
		JOIN books b ON b.id = books_fts.rowid
		WHERE books_fts MATCH ?
		ORDER BY score, b.id
		LIMIT ?`, match, limit)
	if err != nil {
		return nil, fmt.Errorf("store: search %q: %w", q, err)
	}
	defer rows.Close()

	var out []Hit
	for rows.Next() {
		var h Hit
		b, err := scanBook(rows, &h.Rank)
		if err != nil {
			return nil, err
		}
		h.Book = b
		out = append(out, h)
	}
	return out, rows.Err()
}

// MatchExpr turns free text into an FTS5 expression: each word quoted,
// joined with OR. Punctuation never reaches the FTS parser.
func MatchExpr(q string) string {
	words := strings.FieldsFunc(strings.ToLower(q), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	seen := make(map[string]bool, len(words))
	var terms []string
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		terms = append(terms, `"`+w+`"`)
	}
	return strings.Join(terms, " OR ")
}

const bookColumns = `b.isbn13, b.title, b.authors, b.description, b.thumbnail, b.categories,
	b.published_year, b.average_rating, b.moods`

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(sc scanner, extra ...any) (book.Book, error) {
	var (
		b          book.Book
		year, rate sql.NullFloat64
		moods      sql.NullString
	)
	dest := []any{&b.ISBN13, &b.Title, &b.Authors, &b.Description, &b.Thumbnail, &b.Categories, &year, &rate, &moods}
	if err := sc.Scan(append(dest, extra...)...); err != nil {
		return book.Book{}, err
	}
	if year.Valid {
		b.PublishedYear = book.Float(year.Float64)
	}
	if rate.Valid {
		b.AverageRating = book.Float(rate.Float64)
	}
	if moods.Valid && moods.String != "" {
		if err := json.Unmarshal([]byte(moods.String), &b.Moods); err != nil {
			return book.Book{}, fmt.Errorf("store: moods for %q: %w", b.Title, err)
		}
	}
	return b, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
