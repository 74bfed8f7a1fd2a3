package bench

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/closestpair/result"
)

// TextSink writes one line per size:
//
//	size t1 i1 t2 i2 … tN iN avgT avgI
//
// where t is elapsed nanoseconds and i the iteration count of each run.
// Output is buffered and flushed at the end of every line.
type TextSink struct {
	w   *bufio.Writer
	buf []byte
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: bufio.NewWriter(w)}
}

// Begin starts the line for size.
func (s *TextSink) Begin(size int) error {
	s.buf = strconv.AppendInt(s.buf[:0], int64(size), 10)
	_, err := s.w.Write(s.buf)

	return err
}

// Consume appends " elapsed iterations" for one run.
func (s *TextSink) Consume(r result.Result) error {
	s.buf = append(s.buf[:0], ' ')
	s.buf = strconv.AppendInt(s.buf, r.Elapsed.Nanoseconds(), 10)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendInt(s.buf, r.Iterations, 10)
	_, err := s.w.Write(s.buf)

	return err
}

// End appends the averages, terminates the line and flushes.
func (s *TextSink) End(avg Average) error {
	s.buf = append(s.buf[:0], ' ')
	s.buf = strconv.AppendFloat(s.buf, avg.Elapsed, 'f', -1, 64)
	s.buf = append(s.buf, ' ')
	s.buf = strconv.AppendFloat(s.buf, avg.Iterations, 'f', -1, 64)
	s.buf = append(s.buf, '\n')
	if _, err := s.w.Write(s.buf); err != nil {
		return err
	}

	return s.w.Flush()
}

// Row is everything a Collector saw for one size.
type Row struct {
	Size    int
	Runs    []result.Result
	Average Average
}

// Collector is an in-memory Sink.
type Collector struct {
	Rows []Row
}

// Begin opens a new row.
func (c *Collector) Begin(size int) error {
	c.Rows = append(c.Rows, Row{Size: size})

	return nil
}

// Consume records one run in the current row.
func (c *Collector) Consume(r result.Result) error {
	last := &c.Rows[len(c.Rows)-1]
	last.Runs = append(last.Runs, r)

	return nil
}

// End stores the averages of the current row.
func (c *Collector) End(avg Average) error {
	c.Rows[len(c.Rows)-1].Average = avg

	return nil
}
