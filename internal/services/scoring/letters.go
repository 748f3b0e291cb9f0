package scoring

// letterValues holds the base points for A-Z
var letterValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, // A-M
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10, // N-Z
}

// LetterValue returns the base points for a grid letter. Blanks (stored
// lowercase) and anything outside A-Z are worth nothing.
func LetterValue(r rune) int {
	if r < 'A' || r > 'Z' {
		return 0
	}
	return letterValues[r-'A']
}
