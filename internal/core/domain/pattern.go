package domain

import "strings"

var patternEscaper = strings.NewReplacer("/", `\/`, ".", `\.`)

// PathToPattern converts a slash-separated path, relative to the source root,
// into the regex form expected by the transfer engine.
// Only '/' and '.' are escaped; every other character is passed through.
func PathToPattern(rel string) string {
	return patternEscaper.Replace(rel)
}
