// lexer.go
//
// Hand-written scanner for LAMC source. Pull-based: the parser calls
// NextToken once per token, no buffering. The lexer looks at most one
// character ahead of the scan cursor before committing a decision.
//
// Source is treated as a byte buffer; the caller owns it and must keep it
// immutable for the whole session. Lexical errors never abort scanning:
// they surface as ERROR tokens that the parser turns into diagnostics.
package lamc

// keywords maps exact identifier text to its keyword token type.
var keywords = map[string]TokenType{
	"break":    TokenBreak,
	"catch":    TokenCatch,
	"class":    TokenClass,
	"continue": TokenContinue,
	"else":     TokenElse,
	"export":   TokenExport,
	"false":    TokenFalse,
	"finally":  TokenFinally,
	"for":      TokenFor,
	"func":     TokenFunc,
	"if":       TokenIf,
	"import":   TokenImport,
	"in":       TokenIn,
	"loop":     TokenLoop,
	"return":   TokenReturn,
	"this":     TokenThis,
	"true":     TokenTrue,
	"try":      TokenTry,
	"while":    TokenWhile,
}

// Lexer scans LAMC source into tokens.
type Lexer struct {
	src   string
	start int // start index of the token being scanned
	cur   int // scan cursor; invariant cur >= start
	line  int // 1-based
	col   int // 1-based column of the character at cur

	// position of the token currently being scanned
	tokLine int
	tokCol  int
}

// NewLexer creates a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() byte {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.cur]
	l.cur++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.src[l.cur] != expected {
		return false
	}
	l.advance()
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
func isAlphaNum(b byte) bool { return isAlpha(b) || isDigit(b) }

// skipWhitespace consumes spaces, tabs, carriage returns, newlines and both
// comment forms. An unterminated block comment is absorbed to end of input
// without an error.
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\r', '\t', '\n':
			l.advance()
		case '/':
			switch l.peekNext() {
			case '/':
				for !l.isAtEnd() && l.peek() != '\n' {
					l.advance()
				}
			case '*':
				l.advance() // '/'
				l.advance() // '*'
				for !l.isAtEnd() {
					if l.peek() == '*' && l.peekNext() == '/' {
						l.advance()
						l.advance()
						break
					}
					l.advance()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) makeToken(tt TokenType) Token {
	return Token{
		Type:      tt,
		Lexeme:    l.src[l.start:l.cur],
		StartByte: l.start,
		EndByte:   l.cur,
		Line:      l.tokLine,
		Col:       l.tokCol,
	}
}

func (l *Lexer) identifier() Token {
	for isAlphaNum(l.peek()) {
		l.advance()
	}
	if tt, ok := keywords[l.src[l.start:l.cur]]; ok {
		return l.makeToken(tt)
	}
	return l.makeToken(TokenIdentifier)
}

// number scans a digit run, then a fractional part only when a digit follows
// the dot. No exponents, no hex, no digit separators.
func (l *Lexer) number() Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // '.'
		for isDigit(l.peek()) {
			l.advance()
		}
		return l.makeToken(TokenFloat)
	}
	return l.makeToken(TokenInt)
}

// stringLit scans to the matching quote. A backslash unconditionally skips
// the next character; no escape validation happens at this layer. The lexeme
// keeps the surrounding quotes.
func (l *Lexer) stringLit(quote byte) Token {
	for !l.isAtEnd() && l.peek() != quote {
		if l.peek() == '\\' {
			l.advance()
			if l.isAtEnd() {
				break
			}
		}
		l.advance()
	}
	if l.isAtEnd() {
		return errorToken("Unterminated string", l.line, l.col)
	}
	l.advance() // closing quote
	return l.makeToken(TokenString)
}

// NextToken returns the next token. At end of input it returns EOF and keeps
// returning EOF on further calls.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	l.start = l.cur
	l.tokLine = l.line
	l.tokCol = l.col

	if l.isAtEnd() {
		return l.makeToken(TokenEOF)
	}

	ch := l.advance()

	if isAlpha(ch) {
		return l.identifier()
	}
	if isDigit(ch) {
		return l.number()
	}

	switch ch {
	case '(':
		return l.makeToken(TokenLeftParen)
	case ')':
		return l.makeToken(TokenRightParen)
	case '{':
		return l.makeToken(TokenLeftBrace)
	case '}':
		return l.makeToken(TokenRightBrace)
	case '[':
		return l.makeToken(TokenLeftBracket)
	case ']':
		return l.makeToken(TokenRightBracket)
	case ',':
		return l.makeToken(TokenComma)
	case ':':
		return l.makeToken(TokenColon)
	case '+':
		return l.makeToken(TokenPlus)
	case '%':
		return l.makeToken(TokenPercent)
	case '^':
		return l.makeToken(TokenCaret)
	case '~':
		return l.makeToken(TokenTilde)
	case '*':
		return l.makeToken(TokenStar)
	case '/':
		// '//' and '/*' were already consumed by skipWhitespace
		return l.makeToken(TokenSlash)
	case '-':
		if l.match('>') {
			return l.makeToken(TokenArrow)
		}
		return l.makeToken(TokenMinus)
	case '!':
		if l.match('=') {
			return l.makeToken(TokenNotEqual)
		}
		return l.makeToken(TokenNot)
	case '=':
		if l.match('=') {
			return l.makeToken(TokenEqualEqual)
		}
		return l.makeToken(TokenEqual)
	case '<':
		if l.match('=') {
			return l.makeToken(TokenLessEqual)
		}
		return l.makeToken(TokenLess)
	case '>':
		if l.match('=') {
			return l.makeToken(TokenGreaterEqual)
		}
		return l.makeToken(TokenGreater)
	case '&':
		if l.match('&') {
			return l.makeToken(TokenAnd)
		}
		return l.makeToken(TokenAmpersand)
	case '|':
		if l.match('|') {
			return l.makeToken(TokenOr)
		}
		return l.makeToken(TokenPipe)
	case '.':
		if l.match('.') {
			if l.match('=') {
				return l.makeToken(TokenDotDotEqual)
			}
			return l.makeToken(TokenDotDot)
		}
		return l.makeToken(TokenDot)
	case '"', '\'':
		return l.stringLit(ch)
	}

	return errorToken("Unexpected character", l.line, l.col)
}

// Scan tokenizes the entire source and returns all tokens, EOF included.
// ERROR tokens appear inline in the stream.
func (l *Lexer) Scan() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
