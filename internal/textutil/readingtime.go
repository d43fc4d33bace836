package textutil

import "strings"

const wordsPerMinute = 200

// ReadingTime estimates reading time in whole minutes from article body
// text. Words are whitespace-delimited tokens of the raw content, so HTML
// tags count as words. Never returns less than 1.
func ReadingTime(contentHTML string) int {
	words := len(strings.Fields(contentHTML))
	if words == 0 {
		return 1
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
