// SPDX-License-Identifier: MIT

package sweep

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the first record written by WriteCSV.
var csvHeader = []string{"u", "v", "x", "y", "z", "vx", "vy", "vz", "magnitude"}

// WriteCSV writes one record per sample of res, rows of V outermost.
// Floats use the shortest representation that round-trips.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	record := make([]string, len(csvHeader))
	for j := range res.V {
		for i := range res.U {
			pt, vec := res.Point(i, j), res.At(i, j)
			record[0], record[1] = f(res.U[i]), f(res.V[j])
			record[2], record[3], record[4] = f(pt.X), f(pt.Y), f(pt.Z)
			record[5], record[6], record[7] = f(vec.X), f(vec.Y), f(vec.Z)
			record[8] = f(res.Magnitude.At(j, i))
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}
