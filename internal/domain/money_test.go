package domain

import "testing"

func TestParseMonetary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		euros int
		cents int
	}{
		{"12,5", 12, 50},
		{"12,50", 12, 50},
		{"0,999", 0, 99}, // truncated, not rounded
		{"7", 7, 0},
		{",25", 0, 25},
		{"", 0, 0},
		{"100,00", 100, 0},
		{"1,2,3", 1, 20}, // trailing garbage after the second separator is ignored
	}
	for _, tc := range cases {
		got := ParseMonetary(tc.in)
		if got.Euros != tc.euros || got.Cents != tc.cents {
			t.Errorf("ParseMonetary(%q)=%+v, want euros=%d cents=%d", tc.in, got, tc.euros, tc.cents)
		}
	}
}
