// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/config"
	"github.com/katalvlaran/cylmag/magnet"
	"github.com/katalvlaran/cylmag/sweep"
)

// Summary describes a stored run without its samples.
type Summary struct {
	ID        string
	CreatedAt time.Time
	Quantity  sweep.Quantity
	Plane     sweep.Plane
	NonFinite int
	MaxNorm   float64 // largest finite magnitude; NaN when there is none
}

// Run is a stored sweep with its parameters and samples.
type Run struct {
	Summary
	Params magnet.Parameters
	Result *sweep.Result
}

// SaveRun stores res and the parameters it was computed with, returning the new
// run id. Samples are written in one transaction.
func (s *Store) SaveRun(ctx context.Context, res *sweep.Result, p magnet.Parameters) (string, error) {
	if res == nil {
		return "", errors.New("store: save run: nil result")
	}
	doc, err := config.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("store: save run: encode params: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("store: save run: %w", err)
	}

	var maxNorm any
	if m, ok := res.Max(); ok {
		maxNorm = m
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("store: save run: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	pl := res.Plane
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, quantity, plane, u_min, u_max, u_n, v_min, v_max, v_n, plane_offset, params, non_finite, max_norm)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id.String(),
		s.now().UTC().Format(time.RFC3339Nano),
		res.Quantity.String(),
		pl.Kind.String(),
		pl.U.Min, pl.U.Max, pl.U.N,
		pl.V.Min, pl.V.Max, pl.V.N,
		pl.Offset,
		string(doc),
		res.NonFinite,
		maxNorm,
	)
	if err != nil {
		return "", fmt.Errorf("store: save run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO samples (run_id, idx, vx, vy, vz) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("store: save run: %w", err)
	}
	defer stmt.Close()

	for idx, v := range res.Vectors {
		if _, err := stmt.ExecContext(ctx, id.String(), idx, nullable(v.X), nullable(v.Y), nullable(v.Z)); err != nil {
			return "", fmt.Errorf("store: save run: sample %d: %w", idx, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("store: save run: commit: %w", err)
	}

	return id.String(), nil
}

// nullable maps NaN to NULL; SQLite has no NaN.
func nullable(v float64) any {
	if math.IsNaN(v) {
		return nil
	}

	return v
}

func fromNullable(n sql.NullFloat64) float64 {
	if !n.Valid {
		return math.NaN()
	}

	return n.Float64
}

const summaryColumns = `id, created_at, quantity, plane, u_min, u_max, u_n, v_min, v_max, v_n, plane_offset, non_finite, max_norm`

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner, extra ...any) (Summary, error) {
	var (
		sum            Summary
		created, q, pk string
		u, v           sweep.Axis
		offset         float64
		maxNorm        sql.NullFloat64
	)
	dest := append([]any{&sum.ID, &created, &q, &pk, &u.Min, &u.Max, &u.N, &v.Min, &v.Max, &v.N, &offset, &sum.NonFinite, &maxNorm}, extra...)
	if err := row.Scan(dest...); err != nil {
		return Summary{}, err
	}

	var err error
	if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return Summary{}, fmt.Errorf("run %s: created_at: %w", sum.ID, err)
	}
	if sum.Quantity, err = sweep.ParseQuantity(q); err != nil {
		return Summary{}, fmt.Errorf("run %s: %w", sum.ID, err)
	}
	kind, err := sweep.ParseKind(pk)
	if err != nil {
		return Summary{}, fmt.Errorf("run %s: %w", sum.ID, err)
	}
	if sum.Plane, err = sweep.NewPlane(kind, u, v, offset); err != nil {
		return Summary{}, fmt.Errorf("run %s: %w", sum.ID, err)
	}
	sum.MaxNorm = fromNullable(maxNorm)

	return sum, nil
}

// ListRuns returns the summaries of all runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+summaryColumns+` FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list runs: %w", err)
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}

	return out, nil
}

// LoadRun returns the run with the given id, samples included.
// Returns ErrRunNotFound for an unknown id.
func (s *Store) LoadRun(ctx context.Context, id string) (*Run, error) {
	var doc string
	row := s.db.QueryRowContext(ctx, `SELECT `+summaryColumns+`, params FROM runs WHERE id = ?`, id)
	sum, err := scanSummary(row, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load run: %w", err)
	}

	params, err := config.Decode(bytes.NewReader([]byte(doc)))
	if err != nil {
		return nil, fmt.Errorf("store: load run %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT vx, vy, vz FROM samples WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("store: load run: %w", err)
	}
	defer rows.Close()

	vectors := make([]r3.Vec, 0, sum.Plane.Size())
	for rows.Next() {
		var x, y, z sql.NullFloat64
		if err := rows.Scan(&x, &y, &z); err != nil {
			return nil, fmt.Errorf("store: load run: %w", err)
		}
		vectors = append(vectors, r3.Vec{X: fromNullable(x), Y: fromNullable(y), Z: fromNullable(z)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: load run: %w", err)
	}

	res, err := sweep.NewResult(sum.Plane, sum.Quantity, vectors)
	if err != nil {
		return nil, fmt.Errorf("store: load run %s: %w", id, err)
	}

	return &Run{Summary: sum, Params: params, Result: res}, nil
}

// DeleteRun removes a run and its samples.
// Returns ErrRunNotFound for an unknown id.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	out, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	n, err := out.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return nil
}
