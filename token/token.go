package token

type TokenType int

type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers and ints
	ID
	INT
	PRIM // function? number? list? cons? empty? arity cons first rest

	// Operators
	BIND // :=
	PLUS
	MINUS
	MULT
	DIV
	TILDE
	EQUAL
	NEQ
	LT
	GT
	LTE
	GTE
	AND
	OR

	// Delimiters
	LPAREN
	RPAREN
	COMMA
	SEMICOLON

	// Keywords
	IF
	THEN
	ELSE
	LET
	IN
	MAP
	TO
	EMPTY
	TRUE
	FALSE

	// Unused
	NUM_TOKEN_TYPES
)

var names = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	ID:        "ID",
	INT:       "INT",
	PRIM:      "PRIM",
	BIND:      ":=",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	TILDE:     "~",
	EQUAL:     "=",
	NEQ:       "!=",
	LT:        "<",
	GT:        ">",
	LTE:       "<=",
	GTE:       ">=",
	AND:       "&",
	OR:        "|",
	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	SEMICOLON: ";",
	IF:        "if",
	THEN:      "then",
	ELSE:      "else",
	LET:       "let",
	IN:        "in",
	MAP:       "map",
	TO:        "to",
	EMPTY:     "empty",
	TRUE:      "true",
	FALSE:     "false",
}

func (t TokenType) String() string { return names[t] }

func (t Token) String() string {
	if t.Type == EOF {
		return "end of input"
	}
	return "`" + t.Literal + "'"
}

// Note that the order of these is significant:
// e.g. "<=" must come before "<"
func GetOperators() []Token {
	return []Token{
		{Type: BIND, Literal: ":="},
		{Type: NEQ, Literal: "!="},
		{Type: LTE, Literal: "<="},
		{Type: GTE, Literal: ">="},
		{Type: LT, Literal: "<"},
		{Type: GT, Literal: ">"},
		{Type: EQUAL, Literal: "="},
		{Type: PLUS, Literal: "+"},
		{Type: MINUS, Literal: "-"},
		{Type: MULT, Literal: "*"},
		{Type: DIV, Literal: "/"},
		{Type: TILDE, Literal: "~"},
		{Type: AND, Literal: "&"},
		{Type: OR, Literal: "|"},
		{Type: LPAREN, Literal: "("},
		{Type: RPAREN, Literal: ")"},
		{Type: COMMA, Literal: ","},
		{Type: SEMICOLON, Literal: ";"},
	}
}

var keywords = map[string]TokenType{
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"let":   LET,
	"in":    IN,
	"map":   MAP,
	"to":    TO,
	"empty": EMPTY,
	"true":  TRUE,
	"false": FALSE,

	"function?": PRIM,
	"number?":   PRIM,
	"list?":     PRIM,
	"cons?":     PRIM,
	"empty?":    PRIM,
	"arity":     PRIM,
	"cons":      PRIM,
	"first":     PRIM,
	"rest":      PRIM,
}

func LookupID(id string) TokenType {
	if tok, ok := keywords[id]; ok {
		return tok
	}

	return ID
}
