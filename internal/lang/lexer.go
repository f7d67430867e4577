package lang

import "strings"

type lexState int

const (
	stateNormal lexState = iota
	stateSingle
	stateDouble
)

// Lex splits a raw input line into tokens, honoring single quotes, double
// quotes, and backslash escapes. Single-quoted content is taken verbatim.
// Inside double quotes, a backslash only escapes '\' and '"'; anywhere else
// it is reproduced literally along with the following byte. Outside any
// quote, a backslash escapes exactly the next byte, and runs of whitespace
// separate tokens without producing empty ones.
func Lex(line string) ([]Token, error) {
	var tokens []Token
	var buf strings.Builder

	state := stateNormal
	escapeNext := false
	dqEscape := false
	tokenStart := 0
	haveStart := false

	mark := func(i int) {
		if !haveStart {
			tokenStart = i
			haveStart = true
		}
	}

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, Token{Value: buf.String(), Offset: tokenStart})
			buf.Reset()
		}
		haveStart = false
	}

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch state {
		case stateNormal:
			if escapeNext {
				mark(i - 1)
				buf.WriteByte(c)
				escapeNext = false
				continue
			}
			switch c {
			case '\\':
				escapeNext = true
			case '\'':
				mark(i)
				state = stateSingle
			case '"':
				mark(i)
				state = stateDouble
			case ' ', '\t':
				flush()
			default:
				mark(i)
				buf.WriteByte(c)
			}

		case stateSingle:
			if c == '\'' {
				state = stateNormal
			} else {
				buf.WriteByte(c)
			}

		case stateDouble:
			if dqEscape {
				if c == '\\' || c == '"' {
					buf.WriteByte(c)
				} else {
					buf.WriteByte('\\')
					buf.WriteByte(c)
				}
				dqEscape = false
				continue
			}
			switch c {
			case '"':
				state = stateNormal
			case '\\':
				dqEscape = true
			default:
				buf.WriteByte(c)
			}
		}
	}

	if state != stateNormal || escapeNext || dqEscape {
		return nil, ErrUnbalancedQuotes
	}

	flush()
	return tokens, nil
}
