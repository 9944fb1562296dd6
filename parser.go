// parser.go
//
// Recursive descent parser for LAMC. Tokens are pulled from the lexer one at
// a time; only the current and previous tokens are held. Binary operator
// precedence is the call chain itself: each level parses the tighter level
// first and folds its own operators left-associatively.
//
// Error recovery is panic mode: the first error in a window is recorded as a
// Diag, subsequent errors are swallowed until synchronize skips to a likely
// statement boundary. If anything failed, the partially built tree is
// discarded and Parse returns a *ParseError carrying every diagnostic.
//
// Two statement-level behaviors are deliberate, inherited quirks:
//   - `name = expr` always builds a fresh VarDecl, never a reassignment.
//   - a statement beginning with a bare identifier is only a postfix chain
//     (calls, indexing, member access); binary operators do not resume after
//     it, so `foo() + 1` is not a valid statement.
package lamc

import "strconv"

// Parser consumes tokens and builds the AST.
type Parser struct {
	lex         *Lexer
	current     Token
	previous    Token
	hadError    bool
	panicMode   bool
	interactive bool
	diags       []Diag
}

// NewParser creates a parser over lex and primes it with the first token.
func NewParser(lex *Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	return p
}

// NewParserInteractive is NewParser with REPL-friendly diagnostics: errors
// raised at EOF are marked Incomplete so callers can prompt for more input.
func NewParserInteractive(lex *Lexer) *Parser {
	p := &Parser{lex: lex, interactive: true}
	p.advance()
	return p
}

// Parse parses a complete source string.
func Parse(src string) (*Program, error) {
	return NewParser(NewLexer(src)).Parse()
}

// ParseInteractive parses in interactive mode; see NewParserInteractive.
func ParseInteractive(src string) (*Program, error) {
	return NewParserInteractive(NewLexer(src)).Parse()
}

// Diags returns the diagnostics collected so far, in source order.
func (p *Parser) Diags() []Diag { return p.diags }

// ----- token plumbing -----

// advance pulls the next token, converting ERROR tokens into diagnostics on
// the spot so the grammar never sees them.
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.lex.NextToken()
		if p.current.Type != TokenError {
			break
		}
		p.errorAtCurrent(p.current.Lexeme)
	}
}

func (p *Parser) check(tt TokenType) bool { return p.current.Type == tt }

func (p *Parser) match(tt TokenType) bool {
	if !p.check(tt) {
		return false
	}
	p.advance()
	return true
}

// expect consumes a token of the given type or reports msg at the current
// token, returning the (unconsumed) current token in that case.
func (p *Parser) expect(tt TokenType, msg string) Token {
	if p.current.Type == tt {
		tok := p.current
		p.advance()
		return tok
	}
	p.errorAtCurrent(msg)
	return p.current
}

func (p *Parser) isAtEnd() bool { return p.current.Type == TokenEOF }

// ----- error reporting -----

func (p *Parser) errorAt(tok Token, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	d := Diag{Line: tok.Line, Col: tok.Col, Tok: tok.Type, Lexeme: tok.Lexeme, Msg: msg}
	if tok.Type == TokenError {
		d.Tok = -1
		d.Lexeme = ""
	}
	if p.interactive && tok.Type == TokenEOF {
		d.Incomplete = true
	}
	p.diags = append(p.diags, d)
}

func (p *Parser) errorAtCurrent(msg string) { p.errorAt(p.current, msg) }
func (p *Parser) errorAtPrevious(msg string) { p.errorAt(p.previous, msg) }

// synchronize skips tokens until a plausible statement boundary, then
// re-arms error reporting.
func (p *Parser) synchronize() {
	p.panicMode = false

	for !p.isAtEnd() {
		if p.previous.Type == TokenNewline {
			return
		}
		switch p.current.Type {
		case TokenFunc, TokenIf, TokenWhile, TokenFor, TokenLoop,
			TokenReturn, TokenImport, TokenClass:
			return
		}
		p.advance()
	}
}

// ----- expressions -----

// parsePrimary parses a literal, identifier, grouping, array or dict
// literal. It returns nil (without reporting) when the current token closes
// an enclosing construct, so callers can treat the expression as absent.
func (p *Parser) parsePrimary() Node {
	switch p.current.Type {
	case TokenRightParen, TokenRightBracket, TokenEOF:
		return nil
	}

	if p.match(TokenInt) {
		tok := p.previous
		v, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return NewLiteralInt(v, tok.Line, tok.Col)
	}

	if p.match(TokenFloat) {
		tok := p.previous
		v, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return NewLiteralFloat(v, tok.Line, tok.Col)
	}

	if p.match(TokenString) {
		tok := p.previous
		// strip the surrounding quotes; they stay in the lexeme span
		return NewLiteralString(tok.Lexeme[1:len(tok.Lexeme)-1], tok.Line, tok.Col)
	}

	if p.match(TokenTrue) {
		tok := p.previous
		return NewLiteralBool(true, tok.Line, tok.Col)
	}

	if p.match(TokenFalse) {
		tok := p.previous
		return NewLiteralBool(false, tok.Line, tok.Col)
	}

	if p.match(TokenIdentifier) {
		tok := p.previous
		return NewIdentifier(tok.Lexeme, tok.Line, tok.Col)
	}

	if p.match(TokenLeftParen) {
		expr := p.ParseExpression()
		if expr == nil {
			p.errorAtPrevious("Expected expression after '('")
			return nil
		}
		p.expect(TokenRightParen, "Expected ')' after expression")
		return expr
	}

	if p.match(TokenLeftBracket) {
		start := p.previous
		var elements []Node
		if !p.check(TokenRightBracket) {
			for {
				elements = append(elements, p.ParseExpression())
				if !p.match(TokenComma) {
					break
				}
			}
		}
		p.expect(TokenRightBracket, "Expected ']' after array elements")
		return NewArray(elements, start.Line, start.Col)
	}

	if p.match(TokenLeftBrace) {
		return p.parseDictLiteral(p.previous)
	}

	p.errorAtCurrent("Expected expression")
	return nil
}

// parseDictLiteral parses the entries of `{ key: value, ... }`; the opening
// brace has already been consumed.
func (p *Parser) parseDictLiteral(open Token) Node {
	var entries []*DictEntry
	if !p.check(TokenRightBrace) {
		for {
			key := p.ParseExpression()
			if key == nil {
				p.errorAtCurrent("Expected dict key")
				break
			}
			p.expect(TokenColon, "Expected ':' after dict key")
			value := p.ParseExpression()
			entries = append(entries, NewDictEntry(key, value))
			if !p.match(TokenComma) {
				break
			}
		}
	}
	p.expect(TokenRightBrace, "Expected '}' after dict entries")
	return NewDict(entries, open.Line, open.Col)
}

// parsePostfixOn applies any run of call/index/member operators to expr.
func (p *Parser) parsePostfixOn(expr Node) Node {
	for {
		if p.match(TokenLeftParen) {
			var args []Node
			if !p.check(TokenRightParen) {
				for {
					args = append(args, p.ParseExpression())
					if !p.match(TokenComma) {
						break
					}
				}
			}
			paren := p.expect(TokenRightParen, "Expected ')' after arguments")
			expr = NewCall(expr, args, paren.Line, paren.Col)
		} else if p.match(TokenLeftBracket) {
			index := p.ParseExpression()
			bracket := p.expect(TokenRightBracket, "Expected ']' after index")
			expr = NewIndex(expr, index, bracket.Line, bracket.Col)
		} else if p.match(TokenDot) {
			member := p.expect(TokenIdentifier, "Expected property name after '.'")
			expr = NewMember(expr, member.Lexeme, member.Line, member.Col)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) parsePostfix() Node {
	return p.parsePostfixOn(p.parsePrimary())
}

// parseUnary handles the right-associative prefix operators -, !, ~.
func (p *Parser) parseUnary() Node {
	if p.match(TokenMinus) {
		op := p.previous
		return NewUnary(OpNeg, p.parseUnary(), op.Line, op.Col)
	}
	if p.match(TokenNot) {
		op := p.previous
		return NewUnary(OpNot, p.parseUnary(), op.Line, op.Col)
	}
	if p.match(TokenTilde) {
		op := p.previous
		return NewUnary(OpBitNot, p.parseUnary(), op.Line, op.Col)
	}
	return p.parsePostfix()
}

func (p *Parser) parseFactor() Node {
	expr := p.parseUnary()
	for p.match(TokenStar) || p.match(TokenSlash) || p.match(TokenPercent) {
		op := p.previous
		right := p.parseUnary()

		binOp := OpMod
		switch op.Type {
		case TokenStar:
			binOp = OpMul
		case TokenSlash:
			binOp = OpDiv
		}
		expr = NewBinary(binOp, expr, right, op.Line, op.Col)
	}
	return expr
}

func (p *Parser) parseTerm() Node {
	expr := p.parseFactor()
	for p.match(TokenPlus) || p.match(TokenMinus) {
		op := p.previous
		right := p.parseFactor()

		binOp := OpSub
		if op.Type == TokenPlus {
			binOp = OpAdd
		}
		expr = NewBinary(binOp, expr, right, op.Line, op.Col)
	}
	return expr
}

func (p *Parser) parseComparison() Node {
	expr := p.parseTerm()
	for p.match(TokenLess) || p.match(TokenGreater) ||
		p.match(TokenLessEqual) || p.match(TokenGreaterEqual) {
		op := p.previous
		right := p.parseTerm()

		binOp := OpLt
		switch op.Type {
		case TokenGreater:
			binOp = OpGt
		case TokenLessEqual:
			binOp = OpLe
		case TokenGreaterEqual:
			binOp = OpGe
		}
		expr = NewBinary(binOp, expr, right, op.Line, op.Col)
	}
	return expr
}

func (p *Parser) parseEquality() Node {
	expr := p.parseComparison()
	for p.match(TokenEqualEqual) || p.match(TokenNotEqual) {
		op := p.previous
		right := p.parseComparison()

		binOp := OpNe
		if op.Type == TokenEqualEqual {
			binOp = OpEq
		}
		expr = NewBinary(binOp, expr, right, op.Line, op.Col)
	}
	return expr
}

func (p *Parser) parseLogicalAnd() Node {
	expr := p.parseEquality()
	for p.match(TokenAnd) {
		op := p.previous
		right := p.parseEquality()
		expr = NewBinary(OpAnd, expr, right, op.Line, op.Col)
	}
	return expr
}

func (p *Parser) parseLogicalOr() Node {
	expr := p.parseLogicalAnd()
	for p.match(TokenOr) {
		op := p.previous
		right := p.parseLogicalAnd()
		expr = NewBinary(OpOr, expr, right, op.Line, op.Col)
	}
	return expr
}

// ParseExpression parses one expression at the lowest binding level.
func (p *Parser) ParseExpression() Node {
	return p.parseLogicalOr()
}

// ----- statements -----

func (p *Parser) parseBlock() Node {
	brace := p.expect(TokenLeftBrace, "Expected '{' to begin block")

	var stmts []Node
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		before := p.current
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
			continue
		}
		if p.panicMode {
			p.synchronize()
		} else if p.current == before {
			// empty statement that consumed nothing; skip the token so the
			// block loop always makes progress
			p.advance()
		}
	}

	p.expect(TokenRightBrace, "Expected '}' after block")
	return NewBlock(stmts, brace.Line, brace.Col)
}

// parseBody parses either a braced block or a single statement.
func (p *Parser) parseBody() Node {
	if p.check(TokenLeftBrace) {
		return p.parseBlock()
	}
	return p.parseStatement()
}

func (p *Parser) parseIfStatement() Node {
	ifTok := p.previous

	cond := p.ParseExpression()
	if cond == nil {
		p.errorAtPrevious("Expected condition in if statement")
		return nil
	}

	then := p.parseBody()

	var els Node
	if p.match(TokenElse) {
		if p.check(TokenIf) {
			p.advance()
			els = p.parseIfStatement()
		} else {
			els = p.parseBody()
		}
	}

	return NewIf(cond, then, els, ifTok.Line, ifTok.Col)
}

func (p *Parser) parseWhileStatement() Node {
	whileTok := p.previous

	cond := p.ParseExpression()
	if cond == nil {
		p.errorAtPrevious("Expected condition in while statement")
		return nil
	}

	body := p.parseBody()
	return NewWhile(cond, body, whileTok.Line, whileTok.Col)
}

func (p *Parser) parseForStatement() Node {
	forTok := p.previous

	varTok := p.expect(TokenIdentifier, "Expected variable name in for loop")
	varName := varTok.Lexeme

	// `for i, item in xs` makes the first name the index variable
	indexVar := ""
	if p.match(TokenComma) {
		indexVar = varName
		valueTok := p.expect(TokenIdentifier, "Expected value variable after ','")
		varName = valueTok.Lexeme
	}

	p.expect(TokenIn, "Expected 'in' in for loop")

	iterable := p.ParseExpression()
	if iterable == nil {
		p.errorAtPrevious("Expected iterable expression in for loop")
		return nil
	}

	body := p.parseBody()
	return NewFor(varName, iterable, body, indexVar, forTok.Line, forTok.Col)
}

func (p *Parser) parseLoopStatement() Node {
	loopTok := p.previous
	body := p.parseBody()
	return NewLoop(body, loopTok.Line, loopTok.Col)
}

func (p *Parser) parseReturnStatement() Node {
	retTok := p.previous

	var value Node
	if !p.check(TokenRightBrace) && !p.isAtEnd() {
		value = p.ParseExpression()
	}

	return NewReturn(value, retTok.Line, retTok.Col)
}

func (p *Parser) parseImportStatement() Node {
	importTok := p.previous

	mod := p.expect(TokenIdentifier, "Expected module name after 'import'")
	name := mod.Lexeme
	for p.match(TokenDot) {
		part := p.expect(TokenIdentifier, "Expected identifier after '.'")
		name += "." + part.Lexeme
	}

	return NewImport(name, importTok.Line, importTok.Col)
}

func (p *Parser) parseClassDeclaration() Node {
	classTok := p.previous

	nameTok := p.expect(TokenIdentifier, "Expected class name")
	p.expect(TokenLeftBrace, "Expected '{' after class name")

	var fields, methods []Node
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		if p.match(TokenFunc) {
			if m := p.parseFunctionDeclaration(); m != nil {
				methods = append(methods, m)
			}
		} else if p.check(TokenIdentifier) {
			stmt := p.parseStatement()
			if vd, ok := stmt.(*VarDecl); ok {
				fields = append(fields, vd)
			} else {
				p.errorAtPrevious("Expected field declaration in class body")
			}
		} else {
			p.errorAtCurrent("Expected field or method in class body")
		}
		if p.panicMode {
			break
		}
	}

	p.expect(TokenRightBrace, "Expected '}' after class body")
	return NewClass(nameTok.Lexeme, methods, fields, classTok.Line, classTok.Col)
}

func (p *Parser) parseFunctionDeclaration() Node {
	funcTok := p.previous

	nameTok := p.expect(TokenIdentifier, "Expected function name")
	p.expect(TokenLeftParen, "Expected '(' after function name")

	var params []*Parameter
	if !p.check(TokenRightParen) {
		for {
			param := p.expect(TokenIdentifier, "Expected parameter name")

			paramType := ""
			if p.match(TokenColon) {
				typeTok := p.expect(TokenIdentifier, "Expected parameter type")
				paramType = typeTok.Lexeme
			}

			params = append(params, NewParameter(param.Lexeme, paramType, nil))
			if !p.match(TokenComma) {
				break
			}
		}
	}

	p.expect(TokenRightParen, "Expected ')' after parameters")

	returnType := ""
	if p.match(TokenArrow) {
		typeTok := p.expect(TokenIdentifier, "Expected return type")
		returnType = typeTok.Lexeme
	}

	body := p.parseBlock()
	return NewFunction(nameTok.Lexeme, params, body, returnType, funcTok.Line, funcTok.Col)
}

// parseStatement parses one statement. An identifier opens the two-token
// lookahead dance: `name :` and `name =` declare, anything else re-reads the
// identifier as the head of a postfix chain.
func (p *Parser) parseStatement() Node {
	if p.check(TokenIdentifier) {
		nameTok := p.current
		p.advance()

		if p.check(TokenColon) {
			p.advance()
			typeTok := p.expect(TokenIdentifier, "Expected type name")
			p.expect(TokenEqual, "Expected '=' after type")
			init := p.ParseExpression()
			return NewVarDecl(nameTok.Lexeme, typeTok.Lexeme, init, nameTok.Line, nameTok.Col)
		}

		if p.check(TokenEqual) {
			p.advance()
			value := p.ParseExpression()
			return NewVarDecl(nameTok.Lexeme, "", value, nameTok.Line, nameTok.Col)
		}

		expr := Node(NewIdentifier(nameTok.Lexeme, nameTok.Line, nameTok.Col))
		expr = p.parsePostfixOn(expr)
		line, col := expr.Pos()
		return NewExprStmt(expr, line, col)
	}

	if p.match(TokenIf) {
		return p.parseIfStatement()
	}
	if p.match(TokenWhile) {
		return p.parseWhileStatement()
	}
	if p.match(TokenFor) {
		return p.parseForStatement()
	}
	if p.match(TokenLoop) {
		return p.parseLoopStatement()
	}
	if p.match(TokenReturn) {
		return p.parseReturnStatement()
	}
	if p.match(TokenBreak) {
		tok := p.previous
		return NewBreak(tok.Line, tok.Col)
	}
	if p.match(TokenContinue) {
		tok := p.previous
		return NewContinue(tok.Line, tok.Col)
	}
	if p.match(TokenImport) {
		return p.parseImportStatement()
	}

	expr := p.ParseExpression()
	if expr == nil {
		return nil
	}
	line, col := expr.Pos()
	return NewExprStmt(expr, line, col)
}

// parseDeclaration parses a function or class declaration, falling back to
// statement parsing.
func (p *Parser) parseDeclaration() Node {
	if p.match(TokenFunc) {
		return p.parseFunctionDeclaration()
	}
	if p.match(TokenClass) {
		return p.parseClassDeclaration()
	}
	return p.parseStatement()
}

// Parse consumes declarations to end of input. On any recorded error the
// partial tree is dropped and a *ParseError with all diagnostics is
// returned.
func (p *Parser) Parse() (*Program, error) {
	var decls []Node

	for !p.isAtEnd() {
		before := p.current
		decl := p.parseDeclaration()
		if decl != nil {
			decls = append(decls, decl)
		}

		if p.panicMode {
			p.synchronize()
		} else if decl == nil && p.current == before && !p.isAtEnd() {
			// dropped empty statement; keep the top-level loop moving
			p.advance()
		}
	}

	if p.hadError {
		return nil, &ParseError{Diags: p.diags}
	}

	return NewProgram(decls), nil
}
