package domain

// German cardinal words for 0-20 and the decades. Everything else is composed
// recursively in Words.
var germanNumbers = map[int]string{
	0: "null", 1: "eins", 2: "zwei", 3: "drei", 4: "vier", 5: "fünf",
	6: "sechs", 7: "sieben", 8: "acht", 9: "neun", 10: "zehn",
	11: "elf", 12: "zwölf", 13: "dreizehn", 14: "vierzehn", 15: "fünfzehn",
	16: "sechzehn", 17: "siebzehn", 18: "achtzehn", 19: "neunzehn",
	20: "zwanzig", 30: "dreißig", 40: "vierzig", 50: "fünfzig",
	60: "sechzig", 70: "siebzig", 80: "achtzig", 90: "neunzig",
}

// Words renders n as a German cardinal number.
//
// Numbers at or above one million are out of scope for the claim form and
// yield the empty string; so do negative numbers.
func Words(n int) string {
	if n < 0 {
		return ""
	}
	if w, ok := germanNumbers[n]; ok {
		return w
	}

	switch {
	case n < 100:
		ones := n % 10
		tens := n - ones
		onesWord := germanNumbers[ones]
		if ones == 1 {
			// "einundzwanzig", not "einsundzwanzig"
			onesWord = "ein"
		}
		return onesWord + "und" + germanNumbers[tens]
	case n < 1000:
		hundreds := n / 100
		rest := n % 100
		word := germanNumbers[hundreds]
		if hundreds == 1 {
			word = "ein"
		}
		word += "hundert"
		if rest > 0 {
			word += Words(rest)
		}
		return word
	case n < 1000000:
		thousands := n / 1000
		rest := n % 1000
		word := Words(thousands)
		if thousands == 1 {
			word = "ein"
		}
		word += "tausend"
		if rest > 0 {
			word += Words(rest)
		}
		return word
	}
	return ""
}

// InWords renders the amount as the portal's "Betrag in Worten" phrase, e.g.
// "einhundert Euro fünfzig Cent". A zero amount renders as "null Euro".
func (a Amount) InWords() string {
	var out string
	if a.Euros > 0 {
		out = Words(a.Euros) + " Euro"
	}
	if a.Cents > 0 {
		if out != "" {
			out += " "
		}
		out += Words(a.Cents) + " Cent"
	}
	if a.Euros == 0 && a.Cents == 0 {
		return "null Euro"
	}
	return out
}
