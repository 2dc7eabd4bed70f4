package parser

import (
	"errors"
	"slices"
	"testing"
)

func TestStringParser_Parse(t *testing.T) {
	p := NewStringParser()

	tests := []struct {
		input     string
		operation string
		args      []string
	}{
		{"SET a 10", "SET", []string{"a", "10"}},
		{"  GET   a  ", "GET", []string{"a"}},
		{"BEGIN", "BEGIN", []string{}},
		{"numequalto\t-5\r\n", "numequalto", []string{"-5"}},
		{`SET "a key" 1`, "SET", []string{"a key", "1"}},
		{`"a b" 'c d'"e f"'g h'`, "a b", []string{"c d", "e f", "g h"}},
		{`GET "it's"`, "GET", []string{"it's"}},
		{`GET ''`, "GET", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := p.Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Operation != tt.operation {
				t.Errorf("operation = %q, want %q", cmd.Operation, tt.operation)
			}
			if !slices.Equal(cmd.Args, tt.args) {
				t.Errorf("args = %q, want %q", cmd.Args, tt.args)
			}
		})
	}
}

func TestStringParser_Errors(t *testing.T) {
	p := NewStringParser()

	tests := []struct {
		input string
		want  error
	}{
		{"", ErrNoInput},
		{"   \t ", ErrNoInput},
		{`SET "a 1`, ErrUnterminatedQuote},
		{`GET 'a`, ErrUnterminatedQuote},
	}

	for _, tt := range tests {
		if _, err := p.Parse([]byte(tt.input)); !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.want)
		}
	}
}
