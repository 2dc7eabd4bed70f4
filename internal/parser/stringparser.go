package parser

import (
	"errors"
	"strings"

	"simpledb/internal/common"
)

var (
	ErrNoInput           = errors.New("No input")
	ErrUnterminatedQuote = errors.New("unterminated quote")
)

type StringParser struct{}

func NewStringParser() *StringParser {
	return &StringParser{}
}

func (p *StringParser) Parse(data []byte) (*common.Command, error) {
	s := strings.TrimSpace(string(data))
	parts, err := parseQuotedArgs(s)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, ErrNoInput
	}

	args := make([]string, len(parts)-1)
	copy(args, parts[1:])

	return &common.Command{
		Operation: parts[0],
		Args:      args,
	}, nil
}

// parseQuotedArgs parses a string into arguments, respecting single and double quotes
// Example: `a b c` -> ['a','b','c']
// Example: `"a b" 'c d'"e f"'g h'` -> ['a b', 'c d', 'e f', 'g h']
func parseQuotedArgs(input string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool
	// quoted tracks an argument that was opened with quotes, so '' yields an empty argument
	var quoted bool

	flush := func() {
		if current.Len() > 0 || quoted {
			args = append(args, current.String())
			current.Reset()
		}
		quoted = false
	}

	for _, char := range input {
		switch {
		case char == '\'' && !inDoubleQuote:
			if inSingleQuote {
				flush()
			} else {
				flush()
				quoted = true
			}
			inSingleQuote = !inSingleQuote
		case char == '"' && !inSingleQuote:
			if inDoubleQuote {
				flush()
			} else {
				flush()
				quoted = true
			}
			inDoubleQuote = !inDoubleQuote
		case isWhitespace(char) && !inSingleQuote && !inDoubleQuote:
			flush()
		default:
			current.WriteRune(char)
		}
	}

	if inSingleQuote || inDoubleQuote {
		return nil, ErrUnterminatedQuote
	}
	flush()

	return args, nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
