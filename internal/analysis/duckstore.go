package analysis

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcboeker/go-duckdb"

	"github.com/compliance-checklist/backend/internal/models"
)

// ChecklistQuery filters checklist reads. Zero values mean no filter.
type ChecklistQuery struct {
	Risk     string // exact risk tier
	Document string // exact source filename
	Search   string // case-insensitive substring of the sentence
}

// StoreOptions tunes the embedded database.
type StoreOptions struct {
	Threads     int
	MemoryLimit string
}

// ChecklistStore persists one session's checklist items in a temporary
// DuckDB file, serving filtered, paged reads and the CSV projection
// without keeping large batches resident in memory.
type ChecklistStore struct {
	db     *sql.DB
	dbPath string
	count  int
}

// NewChecklistStore creates a session-scoped store in the temp directory.
func NewChecklistStore(tempDir, sessionID string, opts StoreOptions) (*ChecklistStore, error) {
	if opts.Threads <= 0 {
		opts.Threads = 4
	}
	if opts.MemoryLimit == "" {
		opts.MemoryLimit = "512MB"
	}

	dbPath := filepath.Join(tempDir, fmt.Sprintf("checklist_%s.duckdb", sessionID))

	connector, err := duckdb.NewConnector(dbPath, func(execer driver.ExecerContext) error {
		pragmas := []string{
			fmt.Sprintf("PRAGMA memory_limit='%s'", opts.MemoryLimit),
			fmt.Sprintf("PRAGMA threads=%d", opts.Threads),
			"PRAGMA enable_progress_bar=false",
		}
		for _, pragma := range pragmas {
			if _, err := execer.ExecContext(context.Background(), pragma, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB connector: %w", err)
	}

	db := sql.OpenDB(connector)

	_, err = db.Exec(`
		CREATE TABLE checklist (
			id          INTEGER PRIMARY KEY,
			document    VARCHAR NOT NULL,
			sentence    VARCHAR NOT NULL,
			dates       VARCHAR NOT NULL,
			assigned_to VARCHAR NOT NULL,
			status      VARCHAR NOT NULL,
			risk        VARCHAR NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		os.Remove(dbPath)
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &ChecklistStore{db: db, dbPath: dbPath}, nil
}

// InsertItems stores a batch of checklist items. Dates are stored
// semicolon-joined; ISO dates contain no semicolons so the join is
// lossless.
func (s *ChecklistStore) InsertItems(items []models.ChecklistItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO checklist VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		_, err := stmt.Exec(
			item.ID,
			item.Document,
			item.Sentence,
			strings.Join(item.Dates, ";"),
			item.AssignedTo,
			string(item.Status),
			string(item.Risk),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.count += len(items)
	return nil
}

// Count returns the number of stored items.
func (s *ChecklistStore) Count() int {
	return s.count
}

// Query returns one page of checklist items matching the filters,
// ordered by id, plus the total match count.
func (s *ChecklistStore) Query(ctx context.Context, q ChecklistQuery, page, pageSize int) ([]models.ChecklistItem, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 100
	}

	where, args := buildChecklistFilter(q)

	var total int
	countQuery := "SELECT COUNT(*) FROM checklist" + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting checklist items: %w", err)
	}

	query := "SELECT id, document, sentence, dates, assigned_to, status, risk FROM checklist" +
		where + " ORDER BY id LIMIT ? OFFSET ?"
	rows, err := s.db.QueryContext(ctx, query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying checklist items: %w", err)
	}
	defer rows.Close()

	items := make([]models.ChecklistItem, 0, pageSize)
	for rows.Next() {
		var item models.ChecklistItem
		var dates, status, risk string
		if err := rows.Scan(&item.ID, &item.Document, &item.Sentence, &dates, &item.AssignedTo, &status, &risk); err != nil {
			return nil, 0, err
		}
		item.Dates = splitDates(dates)
		item.Status = models.ItemStatus(status)
		item.Risk = models.RiskLevel(risk)
		items = append(items, item)
	}

	return items, total, rows.Err()
}

func buildChecklistFilter(q ChecklistQuery) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if q.Risk != "" {
		clauses = append(clauses, "risk = ?")
		args = append(args, q.Risk)
	}
	if q.Document != "" {
		clauses = append(clauses, "document = ?")
		args = append(args, q.Document)
	}
	if q.Search != "" {
		clauses = append(clauses, "lower(sentence) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Search)+"%")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func splitDates(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ";")
}

// Close releases the database and removes the backing file.
func (s *ChecklistStore) Close() error {
	err := s.db.Close()
	if s.dbPath != "" {
		os.Remove(s.dbPath)
	}
	return err
}
