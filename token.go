// token.go
//
// Token definitions for the LAMC language.
//
// A Token is an immutable value: for ordinary tokens Lexeme is a substring
// view of the source buffer (no copy; it must not outlive the buffer), while
// ERROR tokens carry a short static message instead. StartByte/EndByte index
// the lexeme back into the source for span-based tooling.
package lamc

// TokenType represents the kind of token.
type TokenType int

const (
	// Literals
	TokenInt TokenType = iota
	TokenFloat
	TokenString
	TokenChar
	TokenTrue
	TokenFalse

	// Identifiers and keywords
	TokenIdentifier
	TokenFunc
	TokenReturn
	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenIn
	TokenLoop
	TokenBreak
	TokenContinue
	TokenImport
	TokenExport
	TokenClass
	TokenThis
	TokenTry
	TokenCatch
	TokenFinally

	// Operators
	TokenPlus         // +
	TokenMinus        // -
	TokenStar         // *
	TokenSlash        // /
	TokenPercent      // %
	TokenEqual        // =
	TokenEqualEqual   // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=
	TokenAnd          // &&
	TokenOr           // ||
	TokenNot          // !
	TokenAmpersand    // &
	TokenPipe         // |
	TokenCaret        // ^
	TokenTilde        // ~
	TokenDotDot       // ..
	TokenDotDotEqual  // ..=

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenComma        // ,
	TokenColon        // :
	TokenDot          // .
	TokenArrow        // ->

	// Special. TokenNewline is reserved: statement boundaries are inferred
	// from brace/keyword context, so the lexer never emits it.
	TokenNewline
	TokenEOF
	TokenError
)

var tokenNames = map[TokenType]string{
	TokenInt:          "INT",
	TokenFloat:        "FLOAT",
	TokenString:       "STRING",
	TokenChar:         "CHAR",
	TokenTrue:         "TRUE",
	TokenFalse:        "FALSE",
	TokenIdentifier:   "IDENTIFIER",
	TokenFunc:         "FUNC",
	TokenReturn:       "RETURN",
	TokenIf:           "IF",
	TokenElse:         "ELSE",
	TokenWhile:        "WHILE",
	TokenFor:          "FOR",
	TokenIn:           "IN",
	TokenLoop:         "LOOP",
	TokenBreak:        "BREAK",
	TokenContinue:     "CONTINUE",
	TokenImport:       "IMPORT",
	TokenExport:       "EXPORT",
	TokenClass:        "CLASS",
	TokenThis:         "THIS",
	TokenTry:          "TRY",
	TokenCatch:        "CATCH",
	TokenFinally:      "FINALLY",
	TokenPlus:         "PLUS",
	TokenMinus:        "MINUS",
	TokenStar:         "STAR",
	TokenSlash:        "SLASH",
	TokenPercent:      "PERCENT",
	TokenEqual:        "EQUAL",
	TokenEqualEqual:   "EQUAL_EQUAL",
	TokenNotEqual:     "NOT_EQUAL",
	TokenLess:         "LESS",
	TokenGreater:      "GREATER",
	TokenLessEqual:    "LESS_EQUAL",
	TokenGreaterEqual: "GREATER_EQUAL",
	TokenAnd:          "AND",
	TokenOr:           "OR",
	TokenNot:          "NOT",
	TokenAmpersand:    "AMPERSAND",
	TokenPipe:         "PIPE",
	TokenCaret:        "CARET",
	TokenTilde:        "TILDE",
	TokenDotDot:       "DOT_DOT",
	TokenDotDotEqual:  "DOT_DOT_EQUAL",
	TokenLeftParen:    "LEFT_PAREN",
	TokenRightParen:   "RIGHT_PAREN",
	TokenLeftBrace:    "LEFT_BRACE",
	TokenRightBrace:   "RIGHT_BRACE",
	TokenLeftBracket:  "LEFT_BRACKET",
	TokenRightBracket: "RIGHT_BRACKET",
	TokenComma:        "COMMA",
	TokenColon:        "COLON",
	TokenDot:          "DOT",
	TokenArrow:        "ARROW",
	TokenNewline:      "NEWLINE",
	TokenEOF:          "EOF",
	TokenError:        "ERROR",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is a lexical token. Line/Col are 1-based and point at the first
// character of the lexeme, except for ERROR tokens, which carry the lexer
// position at the moment the error was detected.
type Token struct {
	Type      TokenType
	Lexeme    string // source substring, or a static message for ERROR tokens
	StartByte int
	EndByte   int
	Line      int
	Col       int
}

// IsErr reports whether the token is a synthetic error token.
func (t Token) IsErr() bool { return t.Type == TokenError }

func errorToken(msg string, line, col int) Token {
	return Token{Type: TokenError, Lexeme: msg, Line: line, Col: col}
}
