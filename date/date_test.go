package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{"2021-01-02", New(2021, time.January, 2), false},
		{"2021-1-2", New(2021, time.January, 2), false},
		{"02/01/2021", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if (err != nil) != tc.err {
			t.Errorf("Parse(%q) error = %v, want error = %v", tc.in, err, tc.err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := New(2021, time.March, 31)
	b := New(2021, time.April, 1)

	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() inconsistent for %s and %s", a, b)
	}
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 || a.Compare(a) != 0 {
		t.Errorf("Compare() inconsistent for %s and %s", a, b)
	}
	// New normalizes out-of-range days, so Add can cross month boundaries.
	if a.Add(1) != b {
		t.Errorf("Add(1) = %s, want %s", a.Add(1), b)
	}
}
