package pointio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/closestpair/point"
)

// Write emits pts to w, one "x,y" record per line.
func Write(w io.Writer, pts []point.Point) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, p := range pts {
		buf = strconv.AppendFloat(buf[:0], p.X, 'g', -1, 64)
		buf = append(buf, Delimiter)
		buf = strconv.AppendFloat(buf, p.Y, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes pts to it.
func WriteFile(path string, pts []point.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, pts)
}

// Read parses every record in r.
// Returns ErrMalformedRecord (wrapped with the line number) on the first bad record.
func Read(r io.Reader) ([]point.Point, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var pts []point.Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return pts, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, perr.StartLine, perr.Err)
			}

			return nil, err
		}

		line, _ := cr.FieldPos(0)
		p, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		pts = append(pts, p)
	}
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]point.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// parseRecord converts a two-field record into a finite point.
func parseRecord(rec []string) (point.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
	if err != nil {
		return point.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
	if err != nil {
		return point.Point{}, err
	}
	p := point.New(x, y)
	if !p.IsFinite() {
		return point.Point{}, fmt.Errorf("non-finite coordinate in %v", p)
	}

	return p, nil
}
