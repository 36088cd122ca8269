package render

import "testing"

func params(n int) []float64 {
	ts := make([]float64, n+1)
	for j := 0; j <= n; j++ {
		ts[j] = float64(j) / float64(n)
	}
	return ts
}

func TestColorRunsCoverAllSamples(t *testing.T) {
	ts := params(300)
	runs := colorRuns(ts, 5)

	if runs[0].start != 0 {
		t.Fatalf("first run starts at %d", runs[0].start)
	}
	if last := runs[len(runs)-1]; last.end != len(ts)-1 {
		t.Fatalf("last run ends at %d, want %d", last.end, len(ts)-1)
	}
	for i := 1; i < len(runs); i++ {
		// Adjacent runs share their boundary sample so strokes join.
		if runs[i].start != runs[i-1].end {
			t.Fatalf("run %d starts at %d, previous ends at %d", i, runs[i].start, runs[i-1].end)
		}
	}
}

func TestColorRunsSequentialBuckets(t *testing.T) {
	runs := colorRuns(params(500), 4)
	// t sweeps 0..1, so buckets appear in order, with t=1 wrapping to 0.
	want := []int{0, 1, 2, 3, 0}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(runs), len(want))
	}
	for i, run := range runs {
		if run.color != want[i] {
			t.Fatalf("run %d color = %d, want %d", i, run.color, want[i])
		}
	}
}

func TestColorRunsDegenerateInputs(t *testing.T) {
	if runs := colorRuns(nil, 4); runs != nil {
		t.Fatalf("nil samples produced %v", runs)
	}
	if runs := colorRuns(params(10), 0); runs != nil {
		t.Fatalf("zero colors produced %v", runs)
	}
	runs := colorRuns(params(10), 1)
	if len(runs) != 1 || runs[0].color != 0 || runs[0].end != 10 {
		t.Fatalf("single color runs = %v", runs)
	}
}
