// Package token defines the token alphabet produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// Kind tags the variant of a Token.
type Kind byte

const (
	// Literals
	Number Kind = iota
	Id
	String
	Char

	// Keywords
	Class
	Return
	If
	Else
	Def
	Print
	And
	Or
	Not
	None
	True
	False

	// Structural markers
	Newline
	Indent
	Dedent
	Eof

	// Two-character operators
	Eq
	NotEq
	LessOrEq
	GreaterOrEq
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case Id:
		return "Id"
	case String:
		return "String"
	case Char:
		return "Char"
	case Class:
		return "Class"
	case Return:
		return "Return"
	case If:
		return "If"
	case Else:
		return "Else"
	case Def:
		return "Def"
	case Print:
		return "Print"
	case And:
		return "And"
	case Or:
		return "Or"
	case Not:
		return "Not"
	case None:
		return "None"
	case True:
		return "True"
	case False:
		return "False"
	case Newline:
		return "Newline"
	case Indent:
		return "Indent"
	case Dedent:
		return "Dedent"
	case Eof:
		return "Eof"
	case Eq:
		return "Eq"
	case NotEq:
		return "NotEq"
	case LessOrEq:
		return "LessOrEq"
	case GreaterOrEq:
		return "GreaterOrEq"
	}
	panic(fmt.Sprintf("invalid token kind: %d", byte(k)))
}

// Keywords maps guest-language reserved words to their Kind. Anything not
// in this table that matches an identifier's lexical shape is Id.
var Keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
}

// Token is a tagged union over Kind with a payload for the payload-bearing
// kinds (Number, Id, String, Char). Line is 1-indexed.
type Token struct {
	Kind    Kind
	Int     int
	Text    string
	Ch      byte
	Line    int
}

func NewNumber(v int, line int) Token    { return Token{Kind: Number, Int: v, Line: line} }
func NewId(s string, line int) Token     { return Token{Kind: Id, Text: s, Line: line} }
func NewString(s string, line int) Token { return Token{Kind: String, Text: s, Line: line} }
func NewChar(c byte, line int) Token     { return Token{Kind: Char, Ch: c, Line: line} }
func New(kind Kind, line int) Token      { return Token{Kind: kind, Line: line} }

// Equal compares tag and, for payload-bearing kinds, payload. Line is not
// part of token identity.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Int == o.Int
	case Id, String:
		return t.Text == o.Text
	case Char:
		return t.Ch == o.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.Int)
	case Id:
		return fmt.Sprintf("Id(%s)", t.Text)
	case String:
		return fmt.Sprintf("String(%q)", t.Text)
	case Char:
		return fmt.Sprintf("Char(%c)", t.Ch)
	default:
		return t.Kind.String()
	}
}
