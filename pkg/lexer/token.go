package lexer

// TokenType represents the type of a token.
type TokenType string

// Token represents a lexical token.
type Token struct {
	Type     TokenType
	Literal  string // The actual text of the token (comment tokens carry their text without delimiters)
	Line     int    // 1-based line number where the token starts
	Column   int    // 1-based column number (rune index) where the token starts
	StartPos int    // 0-based byte offset where the token starts
	EndPos   int    // 0-based byte offset after the token ends
}

const (
	// Special
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers + literals
	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"
	STRING TokenType = "STRING"
	REGEX  TokenType = "REGEX" // only produced by ScanRegexFrom

	// Comments (surfaced as tokens so the parser can attach leading comments)
	LINE_COMMENT  TokenType = "LINE_COMMENT"
	BLOCK_COMMENT TokenType = "BLOCK_COMMENT"

	// Operators
	ASSIGN   TokenType = "="
	ARROW    TokenType = "=>"
	EQ       TokenType = "=="
	STRICT_EQ TokenType = "==="

	PLUS        TokenType = "+"
	PLUS_ASSIGN TokenType = "+="
	INC         TokenType = "++"

	MINUS        TokenType = "-"
	MINUS_ASSIGN TokenType = "-="
	DEC          TokenType = "--"

	ASTERISK        TokenType = "*"
	ASTERISK_ASSIGN TokenType = "*="
	EXPONENT        TokenType = "**"
	EXPONENT_ASSIGN TokenType = "**="

	SLASH        TokenType = "/"
	SLASH_ASSIGN TokenType = "/="

	REMAINDER        TokenType = "%"
	REMAINDER_ASSIGN TokenType = "%="

	BANG          TokenType = "!"
	NOT_EQ        TokenType = "!="
	STRICT_NOT_EQ TokenType = "!=="

	LT                TokenType = "<"
	LE                TokenType = "<="
	LEFT_SHIFT        TokenType = "<<"
	LEFT_SHIFT_ASSIGN TokenType = "<<="

	GT                          TokenType = ">"
	GE                          TokenType = ">="
	RIGHT_SHIFT                 TokenType = ">>"
	RIGHT_SHIFT_ASSIGN          TokenType = ">>="
	UNSIGNED_RIGHT_SHIFT        TokenType = ">>>"
	UNSIGNED_RIGHT_SHIFT_ASSIGN TokenType = ">>>="

	BITWISE_AND        TokenType = "&"
	BITWISE_AND_ASSIGN TokenType = "&="
	LOGICAL_AND        TokenType = "&&"
	LOGICAL_AND_ASSIGN TokenType = "&&="

	PIPE              TokenType = "|"
	BITWISE_OR_ASSIGN TokenType = "|="
	LOGICAL_OR        TokenType = "||"
	LOGICAL_OR_ASSIGN TokenType = "||="

	BITWISE_XOR        TokenType = "^"
	BITWISE_XOR_ASSIGN TokenType = "^="

	BITWISE_NOT TokenType = "~"

	QUESTION          TokenType = "?"
	COALESCE          TokenType = "??"
	COALESCE_ASSIGN   TokenType = "??="
	OPTIONAL_CHAINING TokenType = "?."

	DOT    TokenType = "."
	SPREAD TokenType = "..."

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"
	AT        TokenType = "@"

	// Keywords
	FUNCTION   TokenType = "FUNCTION"
	LET        TokenType = "LET"
	CONST      TokenType = "CONST"
	VAR        TokenType = "VAR"
	TRUE       TokenType = "TRUE"
	FALSE      TokenType = "FALSE"
	NULL       TokenType = "NULL"
	IF         TokenType = "IF"
	ELSE       TokenType = "ELSE"
	RETURN     TokenType = "RETURN"
	WHILE      TokenType = "WHILE"
	DO         TokenType = "DO"
	FOR        TokenType = "FOR"
	BREAK      TokenType = "BREAK"
	CONTINUE   TokenType = "CONTINUE"
	NEW        TokenType = "NEW"
	THIS       TokenType = "THIS"
	TYPEOF     TokenType = "TYPEOF"
	VOID       TokenType = "VOID"
	DELETE     TokenType = "DELETE"
	IN         TokenType = "IN"
	OF         TokenType = "OF"
	INSTANCEOF TokenType = "INSTANCEOF"
	CLASS      TokenType = "CLASS"
	EXTENDS    TokenType = "EXTENDS"
	IMPLEMENTS TokenType = "IMPLEMENTS"
	STATIC     TokenType = "STATIC"
	GET        TokenType = "GET"
	SET        TokenType = "SET"
	ASYNC      TokenType = "ASYNC"
	AWAIT      TokenType = "AWAIT"
	YIELD      TokenType = "YIELD"
	IMPORT     TokenType = "IMPORT"
	EXPORT     TokenType = "EXPORT"
	FROM       TokenType = "FROM"
	AS         TokenType = "AS"
	DEFAULT    TokenType = "DEFAULT"
	SWITCH     TokenType = "SWITCH"
	CASE       TokenType = "CASE"
	THROW      TokenType = "THROW"
	TRY        TokenType = "TRY"
	CATCH      TokenType = "CATCH"
	FINALLY    TokenType = "FINALLY"
)

var keywords = map[string]TokenType{
	"function":   FUNCTION,
	"let":        LET,
	"const":      CONST,
	"var":        VAR,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
	"if":         IF,
	"else":       ELSE,
	"return":     RETURN,
	"while":      WHILE,
	"do":         DO,
	"for":        FOR,
	"break":      BREAK,
	"continue":   CONTINUE,
	"new":        NEW,
	"this":       THIS,
	"typeof":     TYPEOF,
	"void":       VOID,
	"delete":     DELETE,
	"in":         IN,
	"of":         OF,
	"instanceof": INSTANCEOF,
	"class":      CLASS,
	"extends":    EXTENDS,
	"implements": IMPLEMENTS,
	"static":     STATIC,
	"get":        GET,
	"set":        SET,
	"async":      ASYNC,
	"await":      AWAIT,
	"yield":      YIELD,
	"import":     IMPORT,
	"export":     EXPORT,
	"from":       FROM,
	"as":         AS,
	"default":    DEFAULT,
	"switch":     SWITCH,
	"case":       CASE,
	"throw":      THROW,
	"try":        TRY,
	"catch":      CATCH,
	"finally":    FINALLY,
}

// LookupIdent checks the keywords table for an identifier.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}
