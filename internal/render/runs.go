package render

import "github.com/Mecca-Research/interactive-kaleidoscope/internal/kaleido"

// strokeRun is a contiguous range of samples assigned to one palette color.
// Batching samples into runs lets the renderer issue one stroke per color
// instead of switching colors point by point.
type strokeRun struct {
	color int
	start int // first sample index, inclusive
	end   int // last sample index, inclusive
}

// colorRuns partitions the sample parameters into contiguous per-color runs.
// Adjacent runs share their boundary sample so the stroked polylines join
// without gaps.
func colorRuns(ts []float64, colorCount int) []strokeRun {
	if len(ts) == 0 || colorCount <= 0 {
		return nil
	}

	runs := make([]strokeRun, 0, colorCount+1)
	current := strokeRun{color: kaleido.ColorBucket(ts[0], colorCount)}
	for j := 1; j < len(ts); j++ {
		c := kaleido.ColorBucket(ts[j], colorCount)
		if c == current.color {
			current.end = j
			continue
		}
		current.end = j // overlap one sample into the next run
		runs = append(runs, current)
		current = strokeRun{color: c, start: j, end: j}
	}
	runs = append(runs, current)
	return runs
}
