package distinct

// Summary holds descriptive statistics for the distinct values of an
// integer slice.
type Summary struct {
	Total    int // elements seen, duplicates included
	Distinct int // elements surviving deduplication
	Dropped  int // duplicate occurrences removed
	Min      int
	Max      int
	Median   int
	P95      int
}

// Summarize computes the stats the simplest way possible: dedupe, keep
// the sorted values, and index into them. For a few thousand elements
// this takes well under a millisecond, which is all the cmd needs.
//
// The order statistics are zero when the input is empty; check
// Distinct before trusting them.
func Summarize(s []int) Summary {
	vals := Ints(s)
	n := len(vals)
	if n == 0 {
		return Summary{}
	}

	return Summary{
		Total:    len(s),
		Distinct: n,
		Dropped:  len(s) - n,
		Min:      vals[0],
		Max:      vals[n-1],
		Median:   vals[n/2],
		P95:      vals[(n*95)/100],
	}
}
