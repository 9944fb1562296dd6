// parser_test.go
package lamc

import (
	"strings"
	"testing"
)

// --- helpers ---------------------------------------------------------------

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	program, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse error: %v\nsource:\n%s", err, src)
	}
	return program
}

func mustFailParseContains(t *testing.T, src, substr string) *ParseError {
	t.Helper()
	program, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error containing %q, got nil\nsource:\n%s", substr, src)
	}
	if program != nil {
		t.Fatalf("partial tree survived a failed parse\nsource:\n%s", src)
	}
	if substr != "" && !strings.Contains(err.Error(), substr) {
		t.Fatalf("expected error containing %q, got %v\nsource:\n%s", substr, err, src)
	}
	return err.(*ParseError)
}

func mustIncomplete(t *testing.T, src string) {
	t.Helper()
	_, err := ParseInteractive(src)
	if err == nil || !IsIncomplete(err) {
		t.Fatalf("expected incomplete-input error, got %v\nsource:\n%s", err, src)
	}
}

func onlyDecl(t *testing.T, src string) Node {
	t.Helper()
	program := mustParse(t, src)
	if len(program.Decls) != 1 {
		t.Fatalf("want 1 declaration, got %d\nsource:\n%s", len(program.Decls), src)
	}
	return program.Decls[0]
}

func exprOf(t *testing.T, src string) Node {
	t.Helper()
	stmt, ok := onlyDecl(t, src).(*ExprStmt)
	if !ok {
		t.Fatalf("want ExprStmt, got %T\nsource:\n%s", onlyDecl(t, src), src)
	}
	return stmt.Expr
}

func wantBinary(t *testing.T, n Node, op BinaryOp) *BinaryExpr {
	t.Helper()
	b, ok := n.(*BinaryExpr)
	if !ok {
		t.Fatalf("want BinaryExpr, got %T", n)
	}
	if b.Op != op {
		t.Fatalf("want operator %s, got %s", op, b.Op)
	}
	return b
}

func wantIntLit(t *testing.T, n Node, v int64) {
	t.Helper()
	lit, ok := n.(*Literal)
	if !ok || lit.LitKind != LitInt {
		t.Fatalf("want int literal, got %T", n)
	}
	if lit.Int != v {
		t.Fatalf("want %d, got %d", v, lit.Int)
	}
}

// --- literals and operators ------------------------------------------------

func Test_Parser_Literals(t *testing.T) {
	program := mustParse(t, `42 3.5 "hi" true false name`)
	wantKinds := []NodeKind{
		KindLiteralExpr, KindLiteralExpr, KindLiteralExpr,
		KindLiteralExpr, KindLiteralExpr, KindIdentifierExpr,
	}
	if len(program.Decls) != len(wantKinds) {
		t.Fatalf("want %d statements, got %d", len(wantKinds), len(program.Decls))
	}
	for i, want := range wantKinds {
		stmt := program.Decls[i].(*ExprStmt)
		if got := stmt.Expr.Kind(); got != want {
			t.Fatalf("statement %d: want %s, got %s", i, want, got)
		}
	}
}

func Test_Parser_String_Literal_Unquoted(t *testing.T) {
	lit := exprOf(t, `"hello"`).(*Literal)
	if lit.LitKind != LitString || lit.Str != "hello" {
		t.Fatalf("want string \"hello\", got %+v", lit)
	}
}

func Test_Parser_Precedence_Mul_Over_Add(t *testing.T) {
	// 2 + 3 * 4 parses as 2 + (3 * 4)
	add := wantBinary(t, exprOf(t, `2 + 3 * 4`), OpAdd)
	wantIntLit(t, add.Left, 2)
	mul := wantBinary(t, add.Right, OpMul)
	wantIntLit(t, mul.Left, 3)
	wantIntLit(t, mul.Right, 4)
}

func Test_Parser_Left_Associativity(t *testing.T) {
	// 10 - 3 - 2 parses as (10 - 3) - 2
	outer := wantBinary(t, exprOf(t, `10 - 3 - 2`), OpSub)
	wantIntLit(t, outer.Right, 2)
	inner := wantBinary(t, outer.Left, OpSub)
	wantIntLit(t, inner.Left, 10)
	wantIntLit(t, inner.Right, 3)
}

func Test_Parser_Precedence_Full_Ladder(t *testing.T) {
	// a || b && c == d < e + f * -g
	or := wantBinary(t, exprOf(t, `a || b && c == d < e + f * -g`), OpOr)
	and := wantBinary(t, or.Right, OpAnd)
	eq := wantBinary(t, and.Right, OpEq)
	lt := wantBinary(t, eq.Right, OpLt)
	add := wantBinary(t, lt.Right, OpAdd)
	mul := wantBinary(t, add.Right, OpMul)
	neg, ok := mul.Right.(*UnaryExpr)
	if !ok || neg.Op != OpNeg {
		t.Fatalf("want unary minus at the bottom, got %T", mul.Right)
	}
}

func Test_Parser_Grouping_Overrides_Precedence(t *testing.T) {
	mul := wantBinary(t, exprOf(t, `(2 + 3) * 4`), OpMul)
	add := wantBinary(t, mul.Left, OpAdd)
	wantIntLit(t, add.Left, 2)
	wantIntLit(t, mul.Right, 4)
}

func Test_Parser_Unary_Right_Associative(t *testing.T) {
	outer := exprOf(t, `!!x`).(*UnaryExpr)
	inner, ok := outer.Operand.(*UnaryExpr)
	if !ok || outer.Op != OpNot || inner.Op != OpNot {
		t.Fatalf("want nested NOT, got %+v", outer)
	}
}

func Test_Parser_Postfix_Chain(t *testing.T) {
	// obj.items[0](x) nests member -> index -> call
	call := exprOf(t, `obj.items[0](x)`).(*CallExpr)
	idx, ok := call.Callee.(*IndexExpr)
	if !ok {
		t.Fatalf("want IndexExpr callee, got %T", call.Callee)
	}
	member, ok := idx.Object.(*MemberExpr)
	if !ok || member.Member != "items" {
		t.Fatalf("want MemberExpr(items), got %T", idx.Object)
	}
	if _, ok := member.Object.(*Identifier); !ok {
		t.Fatalf("want Identifier at the root of the chain")
	}
}

func Test_Parser_Array_Literal(t *testing.T) {
	arr := exprOf(t, `[1, 2, 3]`).(*ArrayExpr)
	if len(arr.Elements) != 3 {
		t.Fatalf("want 3 elements, got %d", len(arr.Elements))
	}
	wantIntLit(t, arr.Elements[2], 3)
}

func Test_Parser_Dict_Literal(t *testing.T) {
	dict := exprOf(t, `{"a": 1, "b": 2}`).(*DictExpr)
	if len(dict.Entries) != 2 {
		t.Fatalf("want 2 entries, got %d", len(dict.Entries))
	}
	key := dict.Entries[0].Key.(*Literal)
	if key.Str != "a" {
		t.Fatalf("first key: %q", key.Str)
	}
	wantIntLit(t, dict.Entries[1].Value, 2)
}

func Test_Parser_Empty_Dict(t *testing.T) {
	dict := exprOf(t, `{}`).(*DictExpr)
	if len(dict.Entries) != 0 {
		t.Fatalf("want empty dict, got %d entries", len(dict.Entries))
	}
}

// --- declarations ----------------------------------------------------------

func Test_Parser_Untyped_Declaration(t *testing.T) {
	decl := onlyDecl(t, `x = 10`).(*VarDecl)
	if decl.Name != "x" || decl.TypeName != "" {
		t.Fatalf("unexpected decl: %+v", decl)
	}
	wantIntLit(t, decl.Init, 10)
}

func Test_Parser_Typed_Declaration(t *testing.T) {
	decl := onlyDecl(t, `x: int = 42`).(*VarDecl)
	if decl.Name != "x" || decl.TypeName != "int" {
		t.Fatalf("unexpected decl: %+v", decl)
	}
	wantIntLit(t, decl.Init, 42)
}

func Test_Parser_Assignment_Is_Always_A_Fresh_Declaration(t *testing.T) {
	// `name = expr` never produces AssignStmt, even for a repeated name
	program := mustParse(t, "x = 1\nx = 2")
	for i, d := range program.Decls {
		if _, ok := d.(*VarDecl); !ok {
			t.Fatalf("statement %d: want VarDecl, got %T", i, d)
		}
	}
}

func Test_Parser_Identifier_Statement_Is_Postfix_Only(t *testing.T) {
	// after the postfix chain the statement ends; the dangling "+ 1" starts
	// a new statement and fails
	mustFailParseContains(t, `foo() + 1`, "Expected expression")
}

func Test_Parser_Call_Statement(t *testing.T) {
	stmt := onlyDecl(t, `print(1, 2)`).(*ExprStmt)
	call := stmt.Expr.(*CallExpr)
	if len(call.Args) != 2 {
		t.Fatalf("want 2 arguments, got %d", len(call.Args))
	}
}

func Test_Parser_Function_Declaration(t *testing.T) {
	fn := onlyDecl(t, `func add(a: int, b: int) -> int { return a + b }`).(*FunctionDecl)
	if fn.Name != "add" || fn.ReturnType != "int" {
		t.Fatalf("unexpected function: %+v", fn)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "a" || fn.Params[1].TypeName != "int" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
	body := fn.Body.(*BlockStmt)
	if len(body.Stmts) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(body.Stmts))
	}
	ret := body.Stmts[0].(*ReturnStmt)
	wantBinary(t, ret.Value, OpAdd)
}

func Test_Parser_Function_Untyped_Params(t *testing.T) {
	fn := onlyDecl(t, `func f(a, b) { }`).(*FunctionDecl)
	if fn.ReturnType != "" {
		t.Fatalf("want no return type, got %q", fn.ReturnType)
	}
	if len(fn.Params) != 2 || fn.Params[0].TypeName != "" {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
}

func Test_Parser_Class_Declaration(t *testing.T) {
	src := `class Point {
  x = 0
  y = 0
  func dist() -> float { return 0.0 }
}`
	cls := onlyDecl(t, src).(*ClassDecl)
	if cls.Name != "Point" {
		t.Fatalf("class name: %q", cls.Name)
	}
	if len(cls.Fields) != 2 || len(cls.Methods) != 1 {
		t.Fatalf("want 2 fields and 1 method, got %d/%d", len(cls.Fields), len(cls.Methods))
	}
	if m := cls.Methods[0].(*FunctionDecl); m.Name != "dist" {
		t.Fatalf("method name: %q", m.Name)
	}
}

func Test_Parser_Import(t *testing.T) {
	imp := onlyDecl(t, `import math`).(*ImportStmt)
	if imp.Module != "math" {
		t.Fatalf("module: %q", imp.Module)
	}
}

func Test_Parser_Import_Dotted(t *testing.T) {
	imp := onlyDecl(t, `import std.io.file`).(*ImportStmt)
	if imp.Module != "std.io.file" {
		t.Fatalf("module: %q", imp.Module)
	}
}

// --- control flow ----------------------------------------------------------

func Test_Parser_If_Else_Chain(t *testing.T) {
	src := `if x < 0 { a() } else if x == 0 { b() } else { c() }`
	ifStmt := onlyDecl(t, src).(*IfStmt)
	wantBinary(t, ifStmt.Condition, OpLt)
	elif, ok := ifStmt.Else.(*IfStmt)
	if !ok {
		t.Fatalf("want nested IfStmt in else, got %T", ifStmt.Else)
	}
	if _, ok := elif.Else.(*BlockStmt); !ok {
		t.Fatalf("want final else block, got %T", elif.Else)
	}
}

func Test_Parser_If_Single_Statement_Body(t *testing.T) {
	ifStmt := onlyDecl(t, `if ready go()`).(*IfStmt)
	if _, ok := ifStmt.Then.(*ExprStmt); !ok {
		t.Fatalf("want single-statement then branch, got %T", ifStmt.Then)
	}
}

func Test_Parser_While(t *testing.T) {
	w := onlyDecl(t, `while n > 0 { n = n - 1 }`).(*WhileStmt)
	wantBinary(t, w.Condition, OpGt)
	if _, ok := w.Body.(*BlockStmt); !ok {
		t.Fatalf("want block body, got %T", w.Body)
	}
}

func Test_Parser_For(t *testing.T) {
	f := onlyDecl(t, `for item in items { use(item) }`).(*ForStmt)
	if f.Var != "item" || f.IndexVar != "" {
		t.Fatalf("unexpected loop vars: %+v", f)
	}
}

func Test_Parser_For_With_Index(t *testing.T) {
	f := onlyDecl(t, `for i, item in items { use(i, item) }`).(*ForStmt)
	if f.IndexVar != "i" || f.Var != "item" {
		t.Fatalf("unexpected loop vars: index=%q var=%q", f.IndexVar, f.Var)
	}
}

func Test_Parser_Loop_Break_Continue(t *testing.T) {
	src := `loop { if done() break
continue }`
	l := onlyDecl(t, src).(*LoopStmt)
	body := l.Body.(*BlockStmt)
	if len(body.Stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(body.Stmts))
	}
	ifStmt := body.Stmts[0].(*IfStmt)
	if _, ok := ifStmt.Then.(*BreakStmt); !ok {
		t.Fatalf("want BreakStmt, got %T", ifStmt.Then)
	}
	if _, ok := body.Stmts[1].(*ContinueStmt); !ok {
		t.Fatalf("want ContinueStmt, got %T", body.Stmts[1])
	}
}

func Test_Parser_Bare_Return(t *testing.T) {
	fn := onlyDecl(t, `func f() { return }`).(*FunctionDecl)
	ret := fn.Body.(*BlockStmt).Stmts[0].(*ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("want bare return, got value %T", ret.Value)
	}
}

func Test_Parser_Four_Statement_Program(t *testing.T) {
	src := `x = 10
y: int = 20
if x < y { print(x) }
func add(a: int, b: int) -> int { return a + b }`
	program := mustParse(t, src)
	wantKinds := []NodeKind{KindVarDecl, KindVarDecl, KindIfStmt, KindFunctionDecl}
	if len(program.Decls) != len(wantKinds) {
		t.Fatalf("want %d declarations, got %d", len(wantKinds), len(program.Decls))
	}
	for i, want := range wantKinds {
		if got := program.Decls[i].Kind(); got != want {
			t.Fatalf("declaration %d: want %s, got %s", i, want, got)
		}
	}
}

// --- positions -------------------------------------------------------------

func Test_Parser_Node_Positions(t *testing.T) {
	program := mustParse(t, "x = 1\nif y { z() }")
	line, col := program.Decls[0].Pos()
	if line != 1 || col != 1 {
		t.Fatalf("decl position: (%d,%d)", line, col)
	}
	line, col = program.Decls[1].Pos()
	if line != 2 || col != 1 {
		t.Fatalf("if position: (%d,%d)", line, col)
	}
}

// --- errors and recovery ---------------------------------------------------

func Test_Parser_Error_Reports_Position_And_Lexeme(t *testing.T) {
	pe := mustFailParseContains(t, `x = = 5`, "Expected expression")
	if len(pe.Diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %d", len(pe.Diags))
	}
	d := pe.Diags[0]
	if d.Lexeme != "=" || d.Line != 1 || d.Col != 5 {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
}

func Test_Parser_Panic_Mode_Suppresses_Cascade(t *testing.T) {
	// the second and third stray '=' must not produce extra diagnostics
	pe := mustFailParseContains(t, `x = = = 5`, "Expected expression")
	if len(pe.Diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %d: %v", len(pe.Diags), pe.Diags)
	}
}

func Test_Parser_Recovery_At_Next_Function(t *testing.T) {
	src := `x = = 5
func ok() { return 1 }`
	pe := mustFailParseContains(t, src, "Expected expression")
	if len(pe.Diags) != 1 {
		t.Fatalf("recovery produced extra diagnostics: %v", pe.Diags)
	}
	if pe.Diags[0].Line != 1 {
		t.Fatalf("diagnostic on wrong line: %+v", pe.Diags[0])
	}
}

func Test_Parser_Lexer_Error_Becomes_Diagnostic(t *testing.T) {
	pe := mustFailParseContains(t, `x = @`, "Unexpected character")
	d := pe.Diags[0]
	if d.Tok >= 0 {
		t.Fatalf("lexer-origin diagnostic should carry no token type, got %v", d.Tok)
	}
	if !strings.HasPrefix(d.String(), "[Line 1, Column 6] Error: ") {
		t.Fatalf("lexer-origin rendering: %q", d.String())
	}
}

func Test_Parser_Unterminated_String_Reported_Once(t *testing.T) {
	pe := mustFailParseContains(t, `msg = "oops`, "Unterminated string")
	if len(pe.Diags) != 1 {
		t.Fatalf("want 1 diagnostic, got %d", len(pe.Diags))
	}
}

func Test_Parser_Reserved_Keywords_Fail_Plainly(t *testing.T) {
	// lexed as keywords but no statement form exists for them yet
	for _, src := range []string{`try { }`, `export x = 1`, `this.x = 1`} {
		program, err := Parse(src)
		if err == nil || program != nil {
			t.Fatalf("expected ordinary parse failure for %q, got %v", src, err)
		}
	}
}

func Test_Parser_Empty_Source(t *testing.T) {
	program := mustParse(t, "")
	if len(program.Decls) != 0 {
		t.Fatalf("want empty program, got %d declarations", len(program.Decls))
	}
}

// --- interactive mode ------------------------------------------------------

func Test_Parser_Interactive_Incomplete_Block(t *testing.T) {
	mustIncomplete(t, `func add(a: int, b: int) -> int {`)
	mustIncomplete(t, `if ready {`)
	mustIncomplete(t, `x = (1 +`)
}

func Test_Parser_Interactive_Real_Error_Not_Incomplete(t *testing.T) {
	_, err := ParseInteractive(`x = = 5`)
	if err == nil || IsIncomplete(err) {
		t.Fatalf("mid-input error misdiagnosed as incomplete: %v", err)
	}
}

func Test_Parser_Interactive_Mixed_Errors_Not_Incomplete(t *testing.T) {
	_, err := ParseInteractive("x = = 5\nfunc f() {")
	if err == nil || IsIncomplete(err) {
		t.Fatalf("mixed errors misdiagnosed as incomplete: %v", err)
	}
}

func Test_Parser_Batch_EOF_Error_Not_Incomplete(t *testing.T) {
	_, err := Parse(`func f() {`)
	if err == nil || IsIncomplete(err) {
		t.Fatalf("batch mode must never mark incomplete: %v", err)
	}
}
