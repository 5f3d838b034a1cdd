//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opencatalogtools/metamine/internal/lnch"
)

//
// POSTGRES EXPORT
//

// best-effort copy of one run's derived tables into a postgres database
// so the results can be poked at with real SQL tooling; the sqlite file
// remains the system of record

// exportable tables and their column order; runs is rebuilt separately
var exporttables = map[string][]string{
	"termcounts":  {"run", "term", "n"},
	"termpairs":   {"run", "a", "b", "n", "phi"},
	"tfidf":       {"run", "doc", "term", "n", "tf", "idf", "tfidf"},
	"topicterms":  {"run", "topic", "term", "weight"},
	"memberships": {"run", "doc", "topic", "weight"},
}

var exportschema = map[string]string{
	"runs":        `CREATE TABLE runs (id text, started text, catalog text, field text, fingerprint text)`,
	"termcounts":  `CREATE TABLE termcounts (run text, term text, n integer)`,
	"termpairs":   `CREATE TABLE termpairs (run text, a text, b text, n integer, phi double precision)`,
	"tfidf":       `CREATE TABLE tfidf (run text, doc text, term text, n integer, tf double precision, idf double precision, tfidf double precision)`,
	"topicterms":  `CREATE TABLE topicterms (run text, topic integer, term text, weight double precision)`,
	"memberships": `CREATE TABLE memberships (run text, doc text, topic integer, weight double precision)`,
}

// OpenPGPool - build a pgxpool from the configured login
func OpenPGPool(pl lnch.PostgresLogin) (*pgxpool.Pool, error) {
	const (
		UTPL  = "postgres://%s:%s@%s:%d/%s"
		FAIL1 = "OpenPGPool() could not parse '%s': %w"
		FAIL2 = "OpenPGPool() could not connect to PostgreSQL: %w"
	)

	url := fmt.Sprintf(UTPL, pl.User, pl.Pass, pl.Host, pl.Port, pl.DBName)
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, url, err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf(FAIL2, err)
	}
	return pool, nil
}

// ExportRun - copy one run's rows from the sqlite store into postgres
func ExportRun(pool *pgxpool.Pool, s *Store, run string) (int64, error) {
	const (
		EXISTS = "already exists"
		RQ     = `SELECT id, started, catalog, field, fingerprint FROM runs WHERE id = ?`
		RI     = `INSERT INTO runs (id, started, catalog, field, fingerprint) VALUES ($1, $2, $3, $4, $5)`
		FAIL1  = "ExportRun() found no run '%s'"
		FAIL2  = "ExportRun() could not create '%s': %w"
		FAIL3  = "ExportRun() failed copying '%s': %w"
	)

	ctx := context.Background()

	for t, create := range exportschema {
		if _, err := pool.Exec(ctx, create); err != nil {
			if !strings.Contains(err.Error(), EXISTS) {
				return 0, fmt.Errorf(FAIL2, t, err)
			}
		}
	}

	var id, started, catalog, field, fingerprint string
	if err := s.db.QueryRow(RQ, run).Scan(&id, &started, &catalog, &field, &fingerprint); err != nil {
		return 0, fmt.Errorf(FAIL1, run)
	}
	if _, err := pool.Exec(ctx, RI, id, started, catalog, field, fingerprint); err != nil {
		return 0, fmt.Errorf(FAIL3, "runs", err)
	}

	var total int64
	for t, cols := range exporttables {
		rows, err := s.exportrows(t, cols, run)
		if err != nil {
			return total, err
		}
		if len(rows) == 0 {
			continue
		}
		n, err := pool.CopyFrom(ctx, pgx.Identifier{t}, cols, pgx.CopyFromRows(rows))
		if err != nil {
			return total, fmt.Errorf(FAIL3, t, err)
		}
		total += n
	}
	return total, nil
}

// exportrows - pull one run's rows out of a derived table in column order
func (s *Store) exportrows(table string, cols []string, run string) ([][]any, error) {
	const (
		Q = `SELECT %s FROM %s WHERE run = ?`
	)

	q := fmt.Sprintf(Q, strings.Join(cols, ", "), table)
	found, err := s.db.Query(q, run)
	if err != nil {
		return nil, err
	}
	defer found.Close()

	var out [][]any
	for found.Next() {
		row := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := found.Scan(ptrs...); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, found.Err()
}
