// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/cylmag/magnet"
	"github.com/katalvlaran/cylmag/particle"
	"github.com/katalvlaran/cylmag/sweep"
)

// createTestStore opens a fresh database in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func testResult(t *testing.T) *sweep.Result {
	t.Helper()
	plane, err := sweep.NewPlane(sweep.YZ, sweep.Axis{Min: -1, Max: 1, N: 3}, sweep.Axis{Min: 0, Max: 2, N: 2}, 0.25)
	require.NoError(t, err)
	res, err := sweep.NewResult(plane, sweep.Force, []r3.Vec{
		{X: 1, Y: 2, Z: 3},
		{X: math.NaN(), Y: 0, Z: 0},
		{X: 0, Y: math.Inf(-1), Z: 0},
		{X: -0.5, Y: 1e-300, Z: 7},
		{},
		{X: 3, Y: 4},
	})
	require.NoError(t, err)

	return res
}

func TestOpen_PragmasAndVersion(t *testing.T) {
	s := createTestStore(t)

	var mode string
	require.NoError(t, s.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var fk, version int
	require.NoError(t, s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s1, err := Open(path)
	require.NoError(t, err)
	id, err := s1.SaveRun(context.Background(), testResult(t), magnet.Default())
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	_, err = s2.LoadRun(context.Background(), id)
	assert.NoError(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	res := testResult(t)
	params, err := magnet.New(
		magnet.WithRotation(10, -20),
		magnet.WithModel(particle.LinearSaturation{Saturation: 300}),
	)
	require.NoError(t, err)

	id, err := s.SaveRun(ctx, res, params)
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	run, err := s.LoadRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, params, run.Params)
	assert.Equal(t, res.Plane, run.Plane)
	assert.Equal(t, sweep.Force, run.Quantity)
	assert.Equal(t, 2, run.NonFinite)
	assert.Equal(t, 2, run.Result.NonFinite)
	assert.InDelta(t, math.Sqrt(49.25), run.MaxNorm, 1e-12)

	require.Len(t, run.Result.Vectors, len(res.Vectors))
	for i, want := range res.Vectors {
		got := run.Result.Vectors[i]
		if math.IsNaN(want.X) {
			assert.True(t, math.IsNaN(got.X), "sample %d", i)
			continue
		}
		assert.Equal(t, want, got, "sample %d", i)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := createTestStore(t)
	s.now = fixedClock()
	ctx := context.Background()

	first, err := s.SaveRun(ctx, testResult(t), magnet.Default())
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, testResult(t), magnet.Default())
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)
	assert.True(t, time.Date(2025, 3, 1, 12, 0, 2, 0, time.UTC).Equal(runs[0].CreatedAt), "got %v", runs[0].CreatedAt)
	assert.Equal(t, sweep.YZ, runs[0].Plane.Kind)
}

func TestLoadRun_NotFound(t *testing.T) {
	s := createTestStore(t)
	_, err := s.LoadRun(context.Background(), "0190c6a4-0000-7000-8000-000000000000")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestDeleteRun_Cascades(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	id, err := s.SaveRun(ctx, testResult(t), magnet.Default())
	require.NoError(t, err)

	require.NoError(t, s.DeleteRun(ctx, id))
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM samples WHERE run_id = ?`, id).Scan(&n))
	assert.Zero(t, n)
	assert.ErrorIs(t, s.DeleteRun(ctx, id), ErrRunNotFound)
}

func TestSaveRun_AllNonFinite(t *testing.T) {
	s := createTestStore(t)
	plane, err := sweep.NewPlane(sweep.XZ, sweep.Axis{Min: 0, Max: 1, N: 2}, sweep.Axis{Min: 0, Max: 1, N: 2}, 0)
	require.NoError(t, err)
	nan := r3.Vec{X: math.NaN(), Y: math.NaN(), Z: math.NaN()}
	res, err := sweep.NewResult(plane, sweep.Field, []r3.Vec{nan, nan, nan, nan})
	require.NoError(t, err)

	id, err := s.SaveRun(context.Background(), res, magnet.Default())
	require.NoError(t, err)
	run, err := s.LoadRun(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(run.MaxNorm))
	assert.Equal(t, 4, run.NonFinite)
}
