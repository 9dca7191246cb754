package jsonio

import (
	"github.com/fatih/color"
)

var (
	keyColor     = color.New(color.FgCyan).SprintFunc()
	stringColor  = color.New(color.FgGreen).SprintFunc()
	numberColor  = color.New(color.FgYellow).SprintFunc()
	literalColor = color.New(color.FgMagenta).SprintFunc()
)

// colorizeJSON colors the tokens of marshaled JSON text: object keys,
// string values, numbers and the true/false/null literals. Structural
// characters and whitespace pass through.
func colorizeJSON(d []byte) []byte {
	var out []byte
	for i := 0; i < len(d); {
		c := d[i]
		switch {
		case c == '"':
			j := stringEnd(d, i)
			tok := string(d[i:j])
			if isKey(d, j) {
				out = append(out, keyColor(tok)...)
			} else {
				out = append(out, stringColor(tok)...)
			}
			i = j
		case c == '-' || (c >= '0' && c <= '9'):
			j := i
			for j < len(d) && numByte(d[j]) {
				j++
			}
			out = append(out, numberColor(string(d[i:j]))...)
			i = j
		case c == 't' || c == 'f' || c == 'n':
			j := i
			for j < len(d) && d[j] >= 'a' && d[j] <= 'z' {
				j++
			}
			out = append(out, literalColor(string(d[i:j]))...)
			i = j
		default:
			out = append(out, c)
			i++
		}
	}
	return out
}

// stringEnd returns the index just past the string token starting at i.
func stringEnd(d []byte, i int) int {
	for j := i + 1; j < len(d); j++ {
		switch d[j] {
		case '\\':
			j++
		case '"':
			return j + 1
		}
	}
	return len(d)
}

// isKey reports whether the token ending at j is followed by a colon.
func isKey(d []byte, j int) bool {
	for ; j < len(d); j++ {
		switch d[j] {
		case ' ', '\t', '\n':
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

func numByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}
