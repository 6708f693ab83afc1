package bankdir

// Seed is a compact excerpt of the German routing-code dataset, enough for
// local runs of the portal. The authoritative dataset is supplied by the
// deployment.
func Seed() []Entry {
	return []Entry{
		{"10000000", "Bundesbank"},
		{"10010010", "Postbank"},
		{"10010424", "Aareal Bank"},
		{"10011001", "N26 Bank"},
		{"10040000", "Commerzbank"},
		{"10050000", "Berliner Sparkasse"},
		{"10070000", "Deutsche Bank"},
		{"10090000", "Berliner Volksbank"},
		{"20050000", "Hamburger Sparkasse"},
		{"20070000", "Deutsche Bank"},
		{"20090500", "Sparda-Bank Hamburg"},
		{"37040044", "Commerzbank"},
		{"37050198", "Sparkasse KölnBonn"},
		{"37050299", "Kreissparkasse Köln"},
		{"37060193", "Volksbank Köln Bonn"},
		{"37070024", "Deutsche Bank"},
		{"50010517", "ING-DiBa"},
		{"50030600", "KfW"},
		{"50050201", "Frankfurter Sparkasse"},
		{"50060000", "DZ BANK"},
		{"50070010", "Deutsche Bank Frankfurt/Main"},
		{"50850049", "Sparkasse Darmstadt"},
		{"50890000", "Volksbank Darmstadt-Südhessen"},
		{"55050000", "Kasseler Sparkasse"},
		{"60050000", "Landesbank Baden-Württemberg"},
		{"60090500", "Sparda-Bank Baden-Württemberg"},
		{"66050101", "Sparkasse Karlsruhe"},
		{"70050000", "Bayerische Landesbank"},
		{"70090500", "Sparda-Bank München"},
		{"70150000", "Stadtsparkasse München"},
		{"76050000", "Sparkasse Nürnberg"},
		{"83062563", "Wise"},
		{"85050300", "Ostsächsische Sparkasse Dresden"},
		{"86055592", "Sparkasse Leipzig"},
	}
}
