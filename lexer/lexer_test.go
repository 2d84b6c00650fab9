package lexer

import (
	"testing"

	"minipy/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func mustScan(t *testing.T, src string) []token.Token {
	t.Helper()
	l, err := NewFromString(src)
	if err != nil {
		t.Fatalf("NewFromString(%q): unexpected error: %v", src, err)
	}
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			break
		}
	}
	return toks
}

func TestIndentDedent(t *testing.T) {
	got := kinds(mustScan(t, "  a\n    b\n"))
	want := []token.Kind{
		token.Id, token.Newline, token.Indent, token.Indent,
		token.Id, token.Newline, token.Dedent, token.Dedent, token.Eof,
	}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCommentThenNewline(t *testing.T) {
	got := kinds(mustScan(t, "a # c\nb\n"))
	want := []token.Kind{token.Id, token.Newline, token.Id, token.Newline, token.Eof}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEmptyInputIsJustEof(t *testing.T) {
	got := kinds(mustScan(t, ""))
	want := []token.Kind{token.Eof}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestOddIndentIsAnError(t *testing.T) {
	_, err := NewFromString("a\n   b\n")
	if err == nil {
		t.Fatalf("expected a LexerError for a 3-space indent, got none")
	}
	if _, ok := err.(*Error); !ok {
		t.Fatalf("expected *lexer.Error, got %T", err)
	}
}

func TestFirstLineLeadingWhitespaceIsInvisible(t *testing.T) {
	// The very first run of leading spaces in the whole stream is
	// discarded before indentation tracking engages (see the comment on
	// scan), so a leading 3-space run at absolute stream start does not
	// raise an error the way an equally uneven indent would later on.
	got := kinds(mustScan(t, "   a\n"))
	want := []token.Kind{token.Id, token.Newline, token.Eof}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNoTrailingNewlineStillClosesCleanly(t *testing.T) {
	got := kinds(mustScan(t, "a\nb"))
	want := []token.Kind{token.Id, token.Newline, token.Id, token.Newline, token.Eof}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBlankLinesCollapse(t *testing.T) {
	got := kinds(mustScan(t, "a\n\n\nb\n"))
	want := []token.Kind{token.Id, token.Newline, token.Id, token.Newline, token.Eof}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDedentToZeroAtEof(t *testing.T) {
	got := kinds(mustScan(t, "a\n  b\n"))
	want := []token.Kind{
		token.Id, token.Newline, token.Indent,
		token.Id, token.Newline, token.Dedent, token.Eof,
	}
	if !kindsEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTabIndentationIsRejected(t *testing.T) {
	_, err := NewFromString("a\n\tb\n")
	if err == nil {
		t.Fatalf("expected a LexerError for tab indentation")
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	toks := mustScan(t, "a == b != c <= d >= e < f > g ! h\n")
	wantKinds := []token.Kind{
		token.Id, token.Eq, token.Id, token.NotEq, token.Id, token.LessOrEq, token.Id,
		token.GreaterOrEq, token.Id, token.Char, token.Id, token.Char, token.Id,
		token.Char, token.Id, token.Newline, token.Eof,
	}
	if !kindsEqual(kinds(toks), wantKinds) {
		t.Fatalf("got %v, want %v", kinds(toks), wantKinds)
	}
}

func TestKeywordsVersusIdentifiers(t *testing.T) {
	toks := mustScan(t, "class classy\n")
	if toks[0].Kind != token.Class {
		t.Fatalf("expected Class, got %s", toks[0].Kind)
	}
	if toks[1].Kind != token.Id || toks[1].Text != "classy" {
		t.Fatalf("expected Id(classy), got %s", toks[1])
	}
}

func TestStringEscapes(t *testing.T) {
	toks := mustScan(t, `"a\nb\tc\\d\"e"`+"\n")
	if toks[0].Kind != token.String {
		t.Fatalf("expected String, got %s", toks[0])
	}
	want := "a\nb\tc\\d\"e"
	if toks[0].Text != want {
		t.Fatalf("got %q, want %q", toks[0].Text, want)
	}
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	if _, err := NewFromString(`"abc`); err == nil {
		t.Fatalf("expected a LexerError for an unterminated string")
	}
}

func TestNewlineInsideStringIsAnError(t *testing.T) {
	if _, err := NewFromString("\"a\nb\""); err == nil {
		t.Fatalf("expected a LexerError for a raw newline inside a string")
	}
}

func TestIndentDedentBalance(t *testing.T) {
	toks := mustScan(t, "a\n  b\n    c\n  d\ne\n")
	indents, dedents := 0, 0
	running := 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
			running++
		case token.Dedent:
			dedents++
			running--
		}
		if running < 0 {
			t.Fatalf("dedent ran below zero mid-stream")
		}
	}
	if indents != dedents {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indents, dedents)
	}
}

func TestTokenEquality(t *testing.T) {
	a := token.NewId("x", 1)
	b := token.NewId("x", 2)
	c := token.NewId("y", 1)
	if !a.Equal(b) {
		t.Fatalf("tokens with equal payload and differing line should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("tokens with differing payload should not be equal")
	}
}

func TestExpectKindAdvancesOnMatch(t *testing.T) {
	l, err := NewFromString("a\n")
	if err != nil {
		t.Fatalf("NewFromString: unexpected error: %v", err)
	}
	tok, err := l.ExpectKind(token.Id)
	if err != nil {
		t.Fatalf("ExpectKind(Id): unexpected error: %v", err)
	}
	if tok.Text != "a" {
		t.Fatalf("got %q, want %q", tok.Text, "a")
	}
	if l.Peek().Kind != token.Newline {
		t.Fatalf("expected ExpectKind to have advanced past Id to Newline, got %s", l.Peek().Kind)
	}
}

func TestExpectKindMismatchIsLexerError(t *testing.T) {
	l, err := NewFromString("a\n")
	if err != nil {
		t.Fatalf("NewFromString: unexpected error: %v", err)
	}
	if _, err := l.ExpectKind(token.Number); err == nil {
		t.Fatalf("expected a LexerError for a kind mismatch")
	}
	if l.Peek().Kind != token.Id {
		t.Fatalf("a failed ExpectKind must not advance, got %s", l.Peek().Kind)
	}
}

func TestExpectTokenComparesPayload(t *testing.T) {
	l, err := NewFromString("a\n")
	if err != nil {
		t.Fatalf("NewFromString: unexpected error: %v", err)
	}
	if _, err := l.ExpectToken(token.NewId("b", 1)); err == nil {
		t.Fatalf("expected a LexerError for a payload mismatch")
	}
	tok, err := l.ExpectToken(token.NewId("a", 1))
	if err != nil {
		t.Fatalf("ExpectToken(Id(a)): unexpected error: %v", err)
	}
	if tok.Text != "a" {
		t.Fatalf("got %q, want %q", tok.Text, "a")
	}
}

func TestNextNeverAdvancesPastEof(t *testing.T) {
	l, err := NewFromString("")
	if err != nil {
		t.Fatalf("NewFromString: unexpected error: %v", err)
	}
	first := l.Next()
	second := l.Next()
	if first.Kind != token.Eof || second.Kind != token.Eof {
		t.Fatalf("expected Eof on both calls, got %s then %s", first.Kind, second.Kind)
	}
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
