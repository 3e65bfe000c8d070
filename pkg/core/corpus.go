package core

// Duplicates returns every inconsiderate phrase that occurs in more than one
// pattern, once each, in the order the phrases were first seen.
func Duplicates(patterns []Pattern) []string {
	counts := make(map[string]int)
	var order []string
	for _, p := range patterns {
		p.Inconsiderate.Each(func(phrase, _ string) {
			if counts[phrase] == 0 {
				order = append(order, phrase)
			}
			counts[phrase]++
		})
	}

	var dups []string
	for _, phrase := range order {
		if counts[phrase] > 1 {
			dups = append(dups, phrase)
		}
	}
	return dups
}

// CheckCorpus fails with a *DuplicateError naming all duplicated phrases.
func CheckCorpus(patterns []Pattern) error {
	if dups := Duplicates(patterns); len(dups) > 0 {
		return &DuplicateError{Phrases: dups}
	}
	return nil
}

// Compile runs the whole pipeline over records. Either every record compiles
// and the corpus is free of duplicates, or no patterns are returned.
func Compile(records []RawRecord) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(records))
	for _, raw := range records {
		p, err := Derive(NormalizeRecord(raw))
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	if err := CheckCorpus(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}
