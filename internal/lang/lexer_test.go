package lang

import (
	"reflect"
	"testing"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestLex_BasicCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single word", "ls", []string{"ls"}},
		{"two words", "echo hi", []string{"echo", "hi"}},
		{"extra whitespace", "echo    hi", []string{"echo", "hi"}},
		{"leading and trailing spaces", "  ls  ", []string{"ls"}},
		{"empty line", "", []string{}},
		{"only spaces", "   ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(values(got), tt.want) {
				t.Errorf("Lex(%q) = %v, want %v", tt.input, values(got), tt.want)
			}
		})
	}
}

func TestLex_Quoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single quoted", `echo 'hello world'`, []string{"echo", "hello world"}},
		{"double quoted", `echo "hello world"`, []string{"echo", "hello world"}},
		{"glued quotes", `echo 'abc'def`, []string{"echo", "abcdef"}},
		{"double quote escape backslash", `echo "a\"b\\c\qd"`, []string{"echo", `a"b\c\qd`}},
		{"unquoted escape space", `echo hello\ world`, []string{"echo", "hello world"}},
		{"single quotes ignore backslash", `echo 'a\nb'`, []string{"echo", `a\nb`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.input)
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(values(got), tt.want) {
				t.Errorf("Lex(%q) = %v, want %v", tt.input, values(got), tt.want)
			}
		})
	}
}

func TestLex_Unbalanced(t *testing.T) {
	tests := []string{
		`echo 'unterminated`,
		`echo "unterminated`,
		`echo trailing\`,
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Lex(input)
			if err != ErrUnbalancedQuotes {
				t.Errorf("Lex(%q) error = %v, want ErrUnbalancedQuotes", input, err)
			}
		})
	}
}

func TestLex_RedirectionTokensAreWords(t *testing.T) {
	got, err := Lex("echo hi > out.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"echo", "hi", ">", "out.txt"}
	if !reflect.DeepEqual(values(got), want) {
		t.Errorf("got %v, want %v", values(got), want)
	}
}
