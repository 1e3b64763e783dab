// Package lines splits practice text into display lines.
//
// Offsets are counted in runes, not bytes, so a line budget of n means n
// visible characters.
package lines

// SoftBreakMinimum is how far past the line start a space has to be before
// the splitter breaks there instead of cutting the word.
const SoftBreakMinimum = 16

// BuildLineStarts greedily wraps text into lines of at most maxChars runes and
// returns the offset each line starts at. The first offset is always 0 and
// empty text yields a single empty line.
//
// A line that is not the last one ends right after the last space inside it,
// as long as that space sits more than SoftBreakMinimum runes after the line
// start; otherwise the line is cut at exactly maxChars.
func BuildLineStarts(text string, maxChars int) []int {
	runes := []rune(text)
	return buildLineStarts(runes, maxChars)
}

func buildLineStarts(runes []rune, maxChars int) []int {
	starts := []int{0}
	if len(runes) == 0 {
		return starts
	}
	if maxChars < 1 {
		maxChars = 1
	}

	start := 0
	for {
		hardEnd := min(start+maxChars, len(runes))
		end := hardEnd
		if end < len(runes) {
			softBreak := lastSpace(runes, start, end)
			if softBreak > start+SoftBreakMinimum {
				end = softBreak + 1
			}
		}
		if end <= start {
			end = hardEnd
		}

		start = end
		if start >= len(runes) {
			return starts
		}
		starts = append(starts, start)
	}
}

// lastSpace returns the index of the last space in runes[from:to], or -1.
func lastSpace(runes []rune, from, to int) int {
	for i := to - 1; i >= from; i -= 1 {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// Split returns the lines BuildLineStarts describes. Joining them gives back
// text.
func Split(text string, maxChars int) []string {
	runes := []rune(text)
	starts := buildLineStarts(runes, maxChars)

	result := make([]string, len(starts))
	for i, start := range starts {
		end := len(runes)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		result[i] = string(runes[start:end])
	}
	return result
}
