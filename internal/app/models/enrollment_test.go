package models

import "testing"

func TestParseEnrollmentStatus(t *testing.T) {
	tests := []struct {
		input string
		want  EnrollmentStatus
		ok    bool
	}{
		{"ongoing", StatusOngoing, true},
		{"pass", StatusPass, true},
		{"fail", StatusFail, true},
		{"PASS", StatusPass, true},
		{"  Ongoing  ", StatusOngoing, true},
		{"Fail\n", StatusFail, true},
		{"", "", false},
		{"passed", "", false},
		{"dropped", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseEnrollmentStatus(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseEnrollmentStatus(%q) = (%q, %v), want (%q, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCounterDelta(t *testing.T) {
	tests := []struct {
		name string
		from EnrollmentStatus
		to   EnrollmentStatus
		want int
	}{
		{"ongoing to pass", StatusOngoing, StatusPass, -1},
		{"ongoing to fail", StatusOngoing, StatusFail, -1},
		{"pass to ongoing", StatusPass, StatusOngoing, 1},
		{"fail to ongoing", StatusFail, StatusOngoing, 1},
		{"pass to fail", StatusPass, StatusFail, 0},
		{"fail to pass", StatusFail, StatusPass, 0},
		{"ongoing to ongoing", StatusOngoing, StatusOngoing, 0},
		{"pass to pass", StatusPass, StatusPass, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CounterDelta(tt.from, tt.to); got != tt.want {
				t.Errorf("CounterDelta(%q, %q) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// A status round trip must leave the counter unchanged, whatever the path.
func TestCounterDeltaRoundTrip(t *testing.T) {
	paths := [][]EnrollmentStatus{
		{StatusOngoing, StatusPass, StatusOngoing},
		{StatusOngoing, StatusFail, StatusOngoing},
		{StatusOngoing, StatusPass, StatusFail, StatusOngoing},
		{StatusOngoing, StatusFail, StatusPass, StatusFail, StatusOngoing},
	}

	for _, path := range paths {
		total := 0
		for i := 1; i < len(path); i++ {
			total += CounterDelta(path[i-1], path[i])
		}
		if total != 0 {
			t.Errorf("round trip %v changed counter by %d, want 0", path, total)
		}
	}
}
