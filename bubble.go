package pixelsays

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// connector joins the bubble to the pixel art below it.
const connector = "        \\\n         \\\n"

// mascot is drawn under the bubble when no image is given.
const mascot = `
        \
         \
            _~^~^~_
        \) /  o o  \ (/
          '_   -   _'
          / '-----' \
`

// blankRun matches any run of whitespace that is not a line break.
var blankRun = regexp.MustCompile(`[\t\v\f\p{Zs}]+`)

// Bubble returns message wrapped to maxWidth display columns and framed in a
// speech bubble. The result ends with the bottom border and no newline.
// A maxWidth below 1 disables wrapping.
func Bubble(message string, maxWidth int) string {
	var b strings.Builder
	writeBubble(&b, wrap(normalize(message), maxWidth))
	return b.String()
}

// Frame writes the speech bubble for message to w, followed by a newline.
func Frame(w io.Writer, message string, maxWidth int) error {
	_, err := io.WriteString(w, Bubble(message, maxWidth)+"\n")
	return err
}

func normalize(message string) string {
	message = strings.ReplaceAll(message, "\r\n", "\n")
	return blankRun.ReplaceAllString(message, " ")
}

// wrap breaks s greedily at whitespace. Tokens wider than width are left
// whole on their own line.
func wrap(s string, width int) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if width > 0 {
		s = ansi.Wordwrap(s, width, "")
	}

	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.Trim(line, " \r")
	}
	return lines
}

func longestLine(lines []string) int {
	longest := 0
	for _, line := range lines {
		longest = max(longest, runewidth.StringWidth(line))
	}
	return longest
}

// delimiters picks the left and right bubble edges for line i of n.
func delimiters(i, n int) (string, string) {
	switch {
	case n == 1:
		return "< ", " >"
	case i == 0:
		return "/ ", " \\"
	case i == n-1:
		return "\\ ", " /"
	default:
		return "| ", " |"
	}
}

func writeBubble(b *strings.Builder, lines []string) {
	width := longestLine(lines)

	b.WriteByte(' ')
	b.WriteString(strings.Repeat("_", width+2))
	b.WriteByte('\n')

	for i, line := range lines {
		left, right := delimiters(i, len(lines))
		b.WriteString(left)
		b.WriteString(runewidth.FillRight(line, width))
		b.WriteString(right)
		b.WriteByte('\n')
	}

	b.WriteByte(' ')
	b.WriteString(strings.Repeat("-", width+2))
}
