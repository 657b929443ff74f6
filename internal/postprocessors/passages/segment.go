package passages

// Segment is a half-open range [Start, End) of paragraph indexes.
type Segment struct {
	Start int
	End   int
}

// Empty returns true if the segment holds no paragraphs.
func (s Segment) Empty() bool {
	return s.End <= s.Start
}

// Len returns the number of paragraphs in the segment.
func (s Segment) Len() int {
	if s.Empty() {
		return 0
	}
	return s.End - s.Start
}

// Segments divides n paragraphs into count contiguous segments of width
// n/count. Boundaries are the truncated products i×width and (i+1)×width,
// so segments can come out empty; callers skip those rather than borrowing
// from neighbours.
func Segments(n, count int) []Segment {
	if n <= 0 || count <= 0 {
		return nil
	}

	width := float64(n) / float64(count)
	segments := make([]Segment, count)
	for i := range segments {
		segments[i] = Segment{
			Start: int(float64(i) * width),
			End:   int(float64(i+1) * width),
		}
	}
	return segments
}
