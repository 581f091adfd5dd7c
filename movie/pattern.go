package movie

import "regexp"

// CastSeparator joins cast entries into the text that candidate patterns
// are matched against.
const CastSeparator = ", "

// TitlePattern is a regular expression matching title anywhere in a value.
// Input is matched literally; an empty title matches everything.
func TitlePattern(title string) string {
	return regexp.QuoteMeta(title)
}

// CandidatePattern matches a joined cast containing actor1 followed later
// by actor2, or actor2 followed later by actor1.
func CandidatePattern(actor1, actor2 string) string {
	a, b := regexp.QuoteMeta(actor1), regexp.QuoteMeta(actor2)
	return a + ".*" + b + "|" + b + ".*" + a
}
