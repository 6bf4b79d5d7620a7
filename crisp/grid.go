package crisp

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Grid is a Set over a sampled real grid. Members are identified by their
// grid position held in a roaring bitmap, so a dense alpha-cut over a finely
// sampled interval stays compact. The grid must be sorted in ascending order
// and is shared read-only with the owning fuzzy set.
type Grid struct {
	grid   []float64
	bitmap *roaring.Bitmap
}

// NewGrid returns an empty Grid over the given sampled values.
func NewGrid(grid []float64) *Grid {
	return &Grid{
		grid:   grid,
		bitmap: roaring.New(),
	}
}

// Add marks the grid position as a member. Positions outside the grid are
// ignored.
func (s *Grid) Add(position uint32) {
	if int(position) < len(s.grid) {
		s.bitmap.Add(position)
	}
}

func (s *Grid) Contains(value float64) bool {
	position := sort.SearchFloat64s(s.grid, value)
	return position < len(s.grid) && s.grid[position] == value && s.bitmap.Contains(uint32(position))
}

func (s *Grid) Cardinality() uint64 {
	return s.bitmap.GetCardinality()
}

func (s *Grid) Each(delegate func(value float64) bool) {
	for itr := s.bitmap.Iterator(); itr.HasNext(); {
		if !delegate(s.grid[itr.Next()]) {
			break
		}
	}
}

func (s *Grid) Slice() []float64 {
	values := make([]float64, 0, s.bitmap.GetCardinality())

	s.Each(func(value float64) bool {
		values = append(values, value)
		return true
	})

	return values
}

func (s *Grid) Equal(other Set[float64]) bool {
	return equal[float64](s, other)
}
