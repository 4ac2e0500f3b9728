package bson

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/goassets/internal/logx"
)

// Tokenize lexes src into a token sequence ending in TokenEOF. On
// malformed input it discards any tokens accumulated so far and
// returns an error (§4.1's "clears its output and reports failure").
func Tokenize(src string) ([]Token, error) {
	t := &tokenizer{src: src, line: 1, column: 1}
	toks, err := t.run()
	if err != nil {
		return nil, err
	}
	return toks, nil
}

type tokenizer struct {
	src         string
	pos         int // byte offset
	line, column int
	out         []Token
}

func (t *tokenizer) errorf(format string, args ...any) error {
	return fmt.Errorf("bson tokenize error at %d:%d: %s", t.line, t.column, fmt.Sprintf(format, args...))
}

// peekRuneAt decodes the rune at the given byte offset without advancing.
// Invalid UTF-8 decodes to codepoint -1 with a warning, per §4.1.
func (t *tokenizer) peekRuneAt(pos int) (r rune, size int) {
	if pos >= len(t.src) {
		return utf8.RuneError, 0
	}
	r, size = utf8.DecodeRuneInString(t.src[pos:])
	if r == utf8.RuneError && size <= 1 {
		logx.Warnf("bson tokenizer: invalid UTF-8 byte at %d:%d, substituting codepoint -1", t.line, t.column)
		return -1, 1
	}
	return r, size
}

func (t *tokenizer) advance(size int, r rune) {
	t.pos += size
	if r == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (t *tokenizer) run() ([]Token, error) {
	for t.pos < len(t.src) {
		startLine, startCol := t.line, t.column
		r, size := t.peekRuneAt(t.pos)

		switch {
		case r == ' ' || r == '\t' || r == '\r':
			var b strings.Builder
			for t.pos < len(t.src) {
				r2, size2 := t.peekRuneAt(t.pos)
				if r2 != ' ' && r2 != '\t' && r2 != '\r' {
					break
				}
				b.WriteRune(r2)
				t.advance(size2, r2)
			}
			t.out = append(t.out, Token{Kind: TokenWhitespace, Text: b.String(), Line: startLine, Column: startCol})

		case r == '\n':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenNewline, Text: "\n", Line: startLine, Column: startCol})

		case r == '/' && t.pos+1 < len(t.src) && t.src[t.pos+1] == '/':
			var b strings.Builder
			b.WriteString("//")
			t.advance(size, r)
			r2, size2 := t.peekRuneAt(t.pos)
			t.advance(size2, r2) // second '/'
			for t.pos < len(t.src) {
				r2, size2 = t.peekRuneAt(t.pos)
				if r2 == '\n' {
					break
				}
				b.WriteRune(r2)
				t.advance(size2, r2)
			}
			t.out = append(t.out, Token{Kind: TokenComment, Text: b.String(), Line: startLine, Column: startCol})

		case r == '"':
			tok, err := t.lexString(startLine, startCol)
			if err != nil {
				t.out = nil
				return nil, err
			}
			t.out = append(t.out, tok)

		case isDigit(r):
			var b strings.Builder
			for t.pos < len(t.src) {
				r2, size2 := t.peekRuneAt(t.pos)
				if !isDigit(r2) {
					break
				}
				b.WriteRune(r2)
				t.advance(size2, r2)
			}
			t.out = append(t.out, Token{Kind: TokenNumber, Text: b.String(), Line: startLine, Column: startCol})

		case isIdentStart(r):
			word := t.lexWord()
			if kw := strings.ToLower(word); kw == "true" || kw == "false" {
				t.out = append(t.out, Token{Kind: TokenBoolean, Text: kw, Line: startLine, Column: startCol})
			} else {
				t.out = append(t.out, Token{Kind: TokenIdentifier, Text: word, Line: startLine, Column: startCol})
			}

		case r == '=':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenEquals, Text: "=", Line: startLine, Column: startCol})
		case r == '-':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenMinus, Text: "-", Line: startLine, Column: startCol})
		case r == '+':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenPlus, Text: "+", Line: startLine, Column: startCol})
		case r == '/':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenSlash, Text: "/", Line: startLine, Column: startCol})
		case r == '*':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenStar, Text: "*", Line: startLine, Column: startCol})
		case r == '.':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenDot, Text: ".", Line: startLine, Column: startCol})
		case r == '{':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenLBrace, Text: "{", Line: startLine, Column: startCol})
		case r == '}':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenRBrace, Text: "}", Line: startLine, Column: startCol})
		case r == '[':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenLBracket, Text: "[", Line: startLine, Column: startCol})
		case r == ']':
			t.advance(size, r)
			t.out = append(t.out, Token{Kind: TokenRBracket, Text: "]", Line: startLine, Column: startCol})

		default:
			t.out = nil
			return nil, t.errorf("unexpected character %q", r)
		}
	}

	t.out = append(t.out, Token{Kind: TokenEOF, Text: "", Line: t.line, Column: t.column})
	return t.out, nil
}

func (t *tokenizer) lexWord() string {
	var b strings.Builder
	for t.pos < len(t.src) {
		r, size := t.peekRuneAt(t.pos)
		if b.Len() == 0 {
			if !isIdentStart(r) {
				break
			}
		} else if !isIdentCont(r) {
			break
		}
		b.WriteRune(r)
		t.advance(size, r)
	}
	return b.String()
}

// lexString consumes a "..." literal. The closing quote is the first
// unescaped quote: unescaped iff the preceding codepoint is not '\', or
// the preceding two codepoints are "\\" (§4.1). The raw content between
// the quotes is then unescaped (\" and \\ only, matching the spec's
// note that deeper backslash nesting isn't handled).
func (t *tokenizer) lexString(startLine, startCol int) (Token, error) {
	// consume opening quote
	_, size := t.peekRuneAt(t.pos)
	t.advance(size, '"')

	var raw strings.Builder
	var prev1, prev2 rune = 0, 0
	for {
		if t.pos >= len(t.src) {
			return Token{}, t.errorf("unterminated string literal starting at %d:%d", startLine, startCol)
		}
		r, rsize := t.peekRuneAt(t.pos)
		if r == '"' {
			unescaped := prev1 != '\\' || prev2 == '\\'
			if unescaped {
				t.advance(rsize, r)
				return Token{Kind: TokenString, Text: unescapeString(raw.String()), Line: startLine, Column: startCol}, nil
			}
		}
		raw.WriteRune(r)
		t.advance(rsize, r)
		prev2 = prev1
		prev1 = r
	}
}

// unescapeString collapses \" and \\ into their literal characters.
func unescapeString(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && (raw[i+1] == '"' || raw[i+1] == '\\') {
			b.WriteByte(raw[i+1])
			i++
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}
