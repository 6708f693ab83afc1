package domain

import "testing"

func TestWords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want string
	}{
		{0, "null"},
		{1, "eins"},
		{16, "sechzehn"},
		{21, "einundzwanzig"},
		{42, "zweiundvierzig"},
		{99, "neunundneunzig"},
		{100, "einhundert"},
		{101, "einhunderteins"},
		{321, "dreihunderteinundzwanzig"},
		{1000, "eintausend"},
		{1001, "eintausendeins"},
		{2345, "zweitausenddreihundertfünfundvierzig"},
		{999999, "neunhundertneunundneunzigtausendneunhundertneunundneunzig"},
		{1000000, ""},
		{-3, ""},
	}
	for _, tc := range cases {
		if got := Words(tc.n); got != tc.want {
			t.Errorf("Words(%d)=%q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestAmountInWords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a    Amount
		want string
	}{
		{Amount{Euros: 21}, "einundzwanzig Euro"},
		{Amount{Euros: 100}, "einhundert Euro"},
		{Amount{}, "null Euro"},
		{Amount{Euros: 12, Cents: 50}, "zwölf Euro fünfzig Cent"},
		{Amount{Cents: 99}, "neunundneunzig Cent"},
	}
	for _, tc := range cases {
		if got := tc.a.InWords(); got != tc.want {
			t.Errorf("%+v InWords()=%q, want %q", tc.a, got, tc.want)
		}
	}
}
