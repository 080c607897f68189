package gridsearch

import "testing"

func TestLowerBound(t *testing.T) {
	table := []float64{1, 3, 3, 7, 10}
	cases := []struct {
		x    float64
		want int
	}{
		{0, 1},
		{1, 2},
		{3, 4},
		{7, 5},
		{10, 6},
		{11, 6},
	}
	for _, c := range cases {
		if got := LowerBound(table, c.x); got != c.want {
			t.Errorf("LowerBound(%v, %v) = %d, want %d", table, c.x, got, c.want)
		}
	}
}

func TestBracketAscendingClampsToTerminalIntervals(t *testing.T) {
	table := []float64{1, 2, 4, 8, 16}

	if got := BracketAscending(table, 0.5); got != 1 {
		t.Errorf("below grid: got %d, want 1", got)
	}
	if got := BracketAscending(table, 16); got != len(table)-1 {
		t.Errorf("at last point: got %d, want %d", got, len(table)-1)
	}
	if got := BracketAscending(table, 100); got != len(table)-1 {
		t.Errorf("above grid: got %d, want %d", got, len(table)-1)
	}
}

func TestBracketAscendingBracketsInterior(t *testing.T) {
	table := []float64{1, 2, 4, 8, 16}
	i := BracketAscending(table, 5)
	if table[i-1] > 5 || table[i] <= 5 {
		t.Fatalf("bracket [%v, %v] does not contain 5", table[i-1], table[i])
	}
}

func TestBracketWindowRestrictsSearchRange(t *testing.T) {
	table := []float64{1, 2, 4, 8, 16, 32, 64}
	// Window [3,5] covers values 4,8,16. A query of 9 inside the window
	// must resolve to the sub-range search's index shifted back into
	// table's own coordinates.
	got := BracketWindow(table, 3, 5, 9.0)
	want := BracketAscending(table[2:5], 9.0) + 2
	if got != want {
		t.Fatalf("BracketWindow = %d, want %d", got, want)
	}
}

func TestLowerBoundIntegers(t *testing.T) {
	table := []int{2, 4, 6, 8}
	if got := LowerBound(table, 5); got != 3 {
		t.Fatalf("LowerBound(int) = %d, want 3", got)
	}
}
