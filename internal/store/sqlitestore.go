//    MetaMine: topic models and term statistics for data-catalog metadata
//    License: GNU GENERAL PUBLIC LICENSE 3

package store

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/opencatalogtools/metamine/internal/gen"
	"github.com/opencatalogtools/metamine/internal/pairs"
	"github.com/opencatalogtools/metamine/internal/topics"
	"github.com/opencatalogtools/metamine/internal/weigh"
)

//
// RESULTS STORE
//

// every pipeline stage lands its derived tables here; "runs" ties them
// together and "fits" caches fitted topic models by fingerprint so that
// re-running the same corpus with the same settings skips the slow part

const (
	DRIVER = "sqlite"

	SCHEMA = `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		started     TEXT,
		catalog     TEXT,
		field       TEXT,
		fingerprint TEXT
	);
	CREATE TABLE IF NOT EXISTS termcounts (
		run  TEXT,
		term TEXT,
		n    INTEGER
	);
	CREATE TABLE IF NOT EXISTS termpairs (
		run TEXT,
		a   TEXT,
		b   TEXT,
		n   INTEGER,
		phi REAL
	);
	CREATE TABLE IF NOT EXISTS tfidf (
		run   TEXT,
		doc   TEXT,
		term  TEXT,
		n     INTEGER,
		tf    REAL,
		idf   REAL,
		tfidf REAL
	);
	CREATE TABLE IF NOT EXISTS topicterms (
		run    TEXT,
		topic  INTEGER,
		term   TEXT,
		weight REAL
	);
	CREATE TABLE IF NOT EXISTS memberships (
		run    TEXT,
		doc    TEXT,
		topic  INTEGER,
		weight REAL
	);
	CREATE TABLE IF NOT EXISTS fits (
		fingerprint TEXT PRIMARY KEY,
		fitsize     INTEGER,
		fitdata     BLOB
	);`

	// topicterms would be K x V if stored whole; nobody queries past the head
	TERMSPERTOPIC = 50
)

type Store struct {
	db *sql.DB
}

// Open - open (or create) a results database and make sure the schema exists
func Open(path string) (*Store, error) {
	const (
		FAIL1 = "Open() could not open '%s': %w"
		FAIL2 = "Open() could not initialize '%s': %w"
	)

	db, err := sql.Open(DRIVER, path)
	if err != nil {
		return nil, fmt.Errorf(FAIL1, path, err)
	}

	if _, err := db.Exec(SCHEMA); err != nil {
		return nil, fmt.Errorf(FAIL2, path, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NewRun - register a run and get its id back
func (s *Store) NewRun(catalog string, field string, fingerprint string) (string, error) {
	const (
		INS = `INSERT INTO runs (id, started, catalog, field, fingerprint) VALUES (?, ?, ?, ?, ?)`
	)

	id := uuid.New().String()
	_, err := s.db.Exec(INS, id, time.Now().Format(time.RFC3339), catalog, field, fingerprint)
	if err != nil {
		return "", fmt.Errorf("NewRun() insert failed: %w", err)
	}
	return id, nil
}

// AddTermCounts - save a run's term frequency table
func (s *Store) AddTermCounts(run string, counts map[string]int) error {
	const (
		INS = `INSERT INTO termcounts (run, term, n) VALUES (?, ?, ?)`
	)

	terms := gen.StringMapKeysIntoSlice(counts)
	sort.Strings(terms)

	return s.batch(INS, len(terms), func(i int) []any {
		return []any{run, terms[i], counts[terms[i]]}
	})
}

// AddPairs - save a run's co-occurrence counts
func (s *Store) AddPairs(run string, pp []pairs.Pair) error {
	const (
		INS = `INSERT INTO termpairs (run, a, b, n, phi) VALUES (?, ?, ?, ?, NULL)`
	)
	return s.batch(INS, len(pp), func(i int) []any {
		return []any{run, pp[i].A, pp[i].B, pp[i].N}
	})
}

// AddCorrelations - save a run's pairwise correlations
func (s *Store) AddCorrelations(run string, cc []pairs.Correlation) error {
	const (
		INS = `INSERT INTO termpairs (run, a, b, n, phi) VALUES (?, ?, ?, ?, ?)`
	)
	return s.batch(INS, len(cc), func(i int) []any {
		return []any{run, cc[i].A, cc[i].B, cc[i].N, cc[i].Phi}
	})
}

// AddScores - save a run's tf-idf table
func (s *Store) AddScores(run string, ss []weigh.Score) error {
	const (
		INS = `INSERT INTO tfidf (run, doc, term, n, tf, idf, tfidf) VALUES (?, ?, ?, ?, ?, ?, ?)`
	)
	return s.batch(INS, len(ss), func(i int) []any {
		return []any{run, ss[i].ID, ss[i].Term, ss[i].N, ss[i].TF, ss[i].IDF, ss[i].TFIDF}
	})
}

// AddFit - flatten a fitted topic model into queryable tables
func (s *Store) AddFit(run string, f *topics.Fit) error {
	const (
		INST = `INSERT INTO topicterms (run, topic, term, weight) VALUES (?, ?, ?, ?)`
		INSM = `INSERT INTO memberships (run, doc, topic, weight) VALUES (?, ?, ?, ?)`
	)

	type ttrow struct {
		topic  int
		term   string
		weight float64
	}

	var tt []ttrow
	for k := 0; k < f.K; k++ {
		for _, tw := range f.TopTerms(k, TERMSPERTOPIC) {
			tt = append(tt, ttrow{topic: k, term: tw.Term, weight: tw.Weight})
		}
	}

	if err := s.batch(INST, len(tt), func(i int) []any {
		return []any{run, tt[i].topic, tt[i].term, tt[i].weight}
	}); err != nil {
		return err
	}

	type mrow struct {
		doc    string
		topic  int
		weight float64
	}

	var mm []mrow
	for d, id := range f.DocIDs {
		for k, w := range f.DocTopics[d] {
			if w == 0 {
				continue
			}
			mm = append(mm, mrow{doc: id, topic: k, weight: w})
		}
	}

	return s.batch(INSM, len(mm), func(i int) []any {
		return []any{run, mm[i].doc, mm[i].topic, mm[i].weight}
	})
}

// batch - insert n rows inside one transaction via a prepared statement
func (s *Store) batch(q string, n int, row func(i int) []any) error {
	const (
		FAIL = "batch insert failed at row %d: %w"
	)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(q)
	if err != nil {
		tx.Rollback()
		return err
	}

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(row(i)...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf(FAIL, i, err)
		}
	}

	stmt.Close()
	return tx.Commit()
}

//
// FIT CACHE
//

// HasFit - has a model with this fingerprint already been stored?
func (s *Store) HasFit(fp string) bool {
	const (
		Q = `SELECT fingerprint FROM fits WHERE fingerprint = ? LIMIT 1`
	)
	var found string
	err := s.db.QueryRow(Q, fp).Scan(&found)
	return err == nil
}

// SaveFit - store a fitted model as a gzipped json blob keyed by fingerprint
func (s *Store) SaveFit(fp string, f *topics.Fit) error {
	const (
		INS = `INSERT OR REPLACE INTO fits (fingerprint, fitsize, fitdata) VALUES (?, ?, ?)`
		GZ  = gzip.BestSpeed
	)

	fb, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("SaveFit() could not marshal the model: %w", err)
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	if err != nil {
		return err
	}
	if _, err := zw.Write(fb); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	b := buf.Bytes()
	_, err = s.db.Exec(INS, fp, len(b), b)
	return err
}

// FetchFit - get a fitted model back out of the cache
func (s *Store) FetchFit(fp string) (*topics.Fit, error) {
	const (
		Q    = `SELECT fitdata FROM fits WHERE fingerprint = ? LIMIT 1`
		FAIL = "FetchFit() found nothing under '%s'"
	)

	var blob []byte
	if err := s.db.QueryRow(Q, fp).Scan(&blob); err != nil {
		return nil, fmt.Errorf(FAIL, fp)
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if err := zr.Close(); err != nil {
		return nil, err
	}

	var f topics.Fit
	if err := json.Unmarshal(decompr, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FitCount - how many cached models are in the store?
func (s *Store) FitCount() int {
	const (
		Q = `SELECT COUNT(fingerprint) FROM fits`
	)
	var n int
	if err := s.db.QueryRow(Q).Scan(&n); err != nil {
		return 0
	}
	return n
}
