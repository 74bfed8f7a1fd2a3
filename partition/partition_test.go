package partition_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/closestpair/partition"
	"github.com/katalvlaran/closestpair/point"
)

// line returns n points (0,0),(1,0),…,(n-1,0), already sorted.
func line(n int) []point.Point {
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(float64(i), 0)
	}

	return pts
}

// SplitSuite exercises Split over a range of input sizes.
type SplitSuite struct {
	suite.Suite
}

// TestEmpty verifies the explicit rejection of zero points.
func (s *SplitSuite) TestEmpty() {
	_, err := partition.Split(nil)
	require.ErrorIs(s.T(), err, partition.ErrEmptyInput)

	_, err = partition.New([]point.Point{})
	require.ErrorIs(s.T(), err, partition.ErrEmptyInput)
}

// TestConcatenationAndLeafSizes checks the two structural invariants for
// every size from 1 to 64.
func (s *SplitSuite) TestConcatenationAndLeafSizes() {
	for n := 1; n <= 64; n++ {
		pts := line(n)
		res, err := partition.Split(pts)
		require.NoError(s.T(), err)

		var joined []point.Point
		for _, leaf := range res.Partitions {
			require.GreaterOrEqual(s.T(), leaf.Len(), 1, "n=%d", n)
			require.LessOrEqual(s.T(), leaf.Len(), partition.LeafSize, "n=%d", n)
			if n >= 2 {
				require.GreaterOrEqual(s.T(), leaf.Len(), 2, "n=%d: leaves of a ≥2 input hold ≥2", n)
			}
			joined = append(joined, leaf.Points...)
		}
		if diff := cmp.Diff(pts, joined); diff != "" {
			s.T().Fatalf("n=%d concatenation mismatch (-want +got):\n%s", n, diff)
		}
	}
}

// TestBoundsAndOffsets checks MinX/MaxX caching and the Start/End offsets.
func (s *SplitSuite) TestBoundsAndOffsets() {
	pts := line(10)
	res, err := partition.Split(pts)
	require.NoError(s.T(), err)

	next := 0
	for _, leaf := range res.Partitions {
		require.Equal(s.T(), next, leaf.Start)
		require.Equal(s.T(), leaf.Start+leaf.Len(), leaf.End)
		require.Equal(s.T(), pts[leaf.Start].X, leaf.MinX)
		require.Equal(s.T(), pts[leaf.End-1].X, leaf.MaxX)
		next = leaf.End
	}
	require.Equal(s.T(), len(pts), next)
}

// TestIterationCount counts recursion nodes: 10 → (5 → 2,3) + (5 → 2,3) = 7.
func (s *SplitSuite) TestIterationCount() {
	cases := map[int]int64{1: 1, 3: 1, 4: 3, 6: 3, 7: 5, 10: 7}
	for n, want := range cases {
		res, err := partition.Split(line(n))
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, res.Iterations, "n=%d", n)
	}
}

// TestViewIsNotCopy verifies that leaves alias the input sequence and that
// appending to a leaf does not clobber its neighbour.
func (s *SplitSuite) TestViewIsNotCopy() {
	pts := line(6)
	res, err := partition.Split(pts)
	require.NoError(s.T(), err)
	require.Len(s.T(), res.Partitions, 2)

	first := res.Partitions[0]
	require.Same(s.T(), &pts[0], &first.Points[0])

	_ = append(first.Points, point.New(-1, -1))
	require.Equal(s.T(), point.New(3, 0), pts[3])
}

func TestSplitSuite(t *testing.T) {
	suite.Run(t, new(SplitSuite))
}
