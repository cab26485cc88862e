// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// SweepSuite drives sweep and the runs commands against one archive.
type SweepSuite struct {
	suite.Suite
	dir string
	db  string
}

func (s *SweepSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.db = filepath.Join(s.dir, "runs.db")
}

type sweepJSON struct {
	Quantity  string   `json:"quantity"`
	Plane     string   `json:"plane"`
	U         string   `json:"u"`
	Samples   int      `json:"samples"`
	NonFinite int      `json:"non_finite"`
	Min       *float64 `json:"min"`
	Max       *float64 `json:"max"`
	CSV       string   `json:"csv"`
	PNG       string   `json:"png"`
	RunID     string   `json:"run_id"`
}

func (s *SweepSuite) sweep(extra ...string) sweepJSON {
	args := append([]string{"sweep", "--format", "json",
		"--u", "3:7:5", "--v", "-4:4:9", "--workers", "2"}, extra...)
	out, _, err := execute(s.T(), args...)
	s.Require().NoError(err, out)

	var got sweepJSON
	s.Equal("ok", decode(s.T(), out, &got).Status)
	return got
}

func (s *SweepSuite) readCSV(path string) [][]string {
	f, err := os.Open(path)
	s.Require().NoError(err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	s.Require().NoError(err)
	return records
}

func (s *SweepSuite) TestSummary() {
	got := s.sweep("-q", "field")
	s.Equal("field", got.Quantity)
	s.Equal("xz", got.Plane)
	s.Equal("3:7:5", got.U)
	s.Equal(45, got.Samples)
	s.Equal(0, got.NonFinite)
	s.Require().NotNil(got.Min)
	s.Require().NotNil(got.Max)
	s.Less(*got.Min, *got.Max)
	s.Empty(got.RunID)
}

func (s *SweepSuite) TestWritesCSVAndPNG() {
	csvPath := filepath.Join(s.dir, "grid.csv")
	pngPath := filepath.Join(s.dir, "grid.png")
	got := s.sweep("--csv", csvPath, "--png", pngPath, "--ceiling", "1")
	s.Equal(csvPath, got.CSV)
	s.Equal(pngPath, got.PNG)

	records := s.readCSV(csvPath)
	s.Len(records, 46)
	s.Equal("u", records[0][0])

	info, err := os.Stat(pngPath)
	s.Require().NoError(err)
	s.Positive(info.Size())
}

func (s *SweepSuite) TestPNGWithoutOutline() {
	pngPath := filepath.Join(s.dir, "bare.png")
	got := s.sweep("--png", pngPath, "--no-outline")
	s.Equal(pngPath, got.PNG)

	info, err := os.Stat(pngPath)
	s.Require().NoError(err)
	s.Positive(info.Size())
}

func (s *SweepSuite) TestArchiveListExportDelete() {
	first := s.sweep("--db", s.db)
	s.Require().NotEmpty(first.RunID)
	second := s.sweep("--db", s.db, "-q", "infinite", "--plane", "yz")
	s.Require().NotEmpty(second.RunID)

	out, _, err := execute(s.T(), "runs", "list", "--db", s.db, "--format", "json")
	s.Require().NoError(err)
	var list struct {
		Runs []struct {
			ID       string `json:"id"`
			Quantity string `json:"quantity"`
			Plane    string `json:"plane"`
		} `json:"runs"`
	}
	decode(s.T(), out, &list)
	s.Require().Len(list.Runs, 2)
	ids := []string{list.Runs[0].ID, list.Runs[1].ID}
	s.ElementsMatch([]string{first.RunID, second.RunID}, ids)

	csvPath := filepath.Join(s.dir, "export.csv")
	out, _, err = execute(s.T(), "runs", "export", first.RunID, "--db", s.db, "--csv", csvPath)
	s.Require().NoError(err)
	s.Contains(out, "exported "+first.RunID)
	s.Len(s.readCSV(csvPath), 46)

	out, _, err = execute(s.T(), "runs", "delete", first.RunID, "--db", s.db)
	s.Require().NoError(err)
	s.Contains(out, "deleted "+first.RunID)

	_, _, err = execute(s.T(), "runs", "delete", first.RunID, "--db", s.db)
	s.Require().Error(err)
	s.Equal(ExitCommandError, GetExitCode(err))

	out, _, err = execute(s.T(), "runs", "list", "--db", s.db)
	s.Require().NoError(err)
	s.Contains(out, second.RunID)
	s.NotContains(out, first.RunID)
}

func (s *SweepSuite) TestRimCountsNonFinite() {
	out, _, err := execute(s.T(), "sweep", "--format", "json",
		"--u", "-2.5:2.5:3", "--v", "-2.5:2.5:3")
	s.Require().NoError(err)
	var got sweepJSON
	decode(s.T(), out, &got)
	s.Equal(4, got.NonFinite)
}

func (s *SweepSuite) TestBadFlags() {
	cases := [][]string{
		{"sweep", "--plane", "ab"},
		{"sweep", "--u", "1:1:5"},
		{"sweep", "--v", "0:1"},
		{"sweep", "-q", "torque"},
		{"sweep", "--workers", "0"},
		{"sweep", "--ceiling", "-1"},
		{"sweep", "--size", "0"},
	}
	for _, args := range cases {
		_, _, err := execute(s.T(), args...)
		s.Require().Error(err, "%v", args)
		s.Equal(ExitCommandError, GetExitCode(err), "%v", args)
	}
}

func (s *SweepSuite) TestMissingArchive() {
	_, _, err := execute(s.T(), "runs", "list", "--db", filepath.Join(s.dir, "none.db"))
	s.Require().Error(err)
	s.Equal(ExitCommandError, GetExitCode(err))

	_, _, err = execute(s.T(), "runs", "export", "abc", "--db", s.db)
	s.Require().Error(err)
	s.Equal(ExitCommandError, GetExitCode(err))
}

func TestSweepSuite(t *testing.T) {
	suite.Run(t, new(SweepSuite))
}
