package cutoffs

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/admitlab/allotsim/internal/allotment"
)

// Archive is a sqlite-backed cutoff collection. It exists so scraped
// datasets can be accumulated across years and rounds and re-exported
// without keeping the source JSON around.
type Archive struct {
	db   *sqlx.DB
	path string
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS cutoffs (
	institute      TEXT NOT NULL,
	institute_code TEXT NOT NULL DEFAULT '',
	course         TEXT NOT NULL,
	category       TEXT NOT NULL,
	cutoff_rank    INTEGER NOT NULL,
	year           TEXT NOT NULL,
	round          TEXT NOT NULL,
	UNIQUE (institute_code, course, category, year, round)
);
`

func OpenArchive(dbPath string) (*Archive, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Archive{db: db, path: dbPath}, nil
}

func (a *Archive) Path() string {
	return a.path
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// Import upserts the given entries. A re-import of the same dataset
// refreshes cutoff ranks in place instead of duplicating rows. Returns
// the number of entries written.
func (a *Archive) Import(ctx context.Context, entries []allotment.CutoffEntry) (int, error) {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}

	count := 0
	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO cutoffs (institute, institute_code, course, category, cutoff_rank, year, round)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (institute_code, course, category, year, round)
			DO UPDATE SET cutoff_rank = excluded.cutoff_rank, institute = excluded.institute`,
			e.Institute, e.InstituteCode, e.Course, e.Category, e.CutoffRank, e.Year, e.Round)
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("entry %d: insert: %w", i, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return count, nil
}

type archiveRow struct {
	Institute     string `db:"institute"`
	InstituteCode string `db:"institute_code"`
	Course        string `db:"course"`
	Category      string `db:"category"`
	CutoffRank    int    `db:"cutoff_rank"`
	Year          string `db:"year"`
	Round         string `db:"round"`
}

func (r archiveRow) toEntry() allotment.CutoffEntry {
	return allotment.CutoffEntry{
		Institute:     r.Institute,
		InstituteCode: r.InstituteCode,
		Course:        r.Course,
		Category:      r.Category,
		CutoffRank:    r.CutoffRank,
		Year:          r.Year,
		Round:         r.Round,
	}
}

// LoadAll reads every stored entry in a stable order.
func (a *Archive) LoadAll(ctx context.Context) ([]allotment.CutoffEntry, error) {
	var rows []archiveRow
	err := a.db.SelectContext(ctx, &rows, `SELECT institute, institute_code, course, category, cutoff_rank, year, round
		FROM cutoffs ORDER BY year, round, institute_code, course, category`)
	if err != nil {
		return nil, fmt.Errorf("select cutoffs: %w", err)
	}

	entries := make([]allotment.CutoffEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, r.toEntry())
	}
	return entries, nil
}

// Years lists the distinct year labels stored in the archive.
func (a *Archive) Years(ctx context.Context) ([]string, error) {
	var years []string
	if err := a.db.SelectContext(ctx, &years, `SELECT DISTINCT year FROM cutoffs ORDER BY year`); err != nil {
		return nil, fmt.Errorf("select years: %w", err)
	}
	return years, nil
}
