// ast.go
//
// AST node definitions for LAMC.
//
// The tree is strictly tree-shaped: every node exclusively owns its children
// and there are no shared or back references. Nodes are created through the
// typed constructors below, which take already-built children; constructor
// arguments of string type are plain Go values and need no explicit
// duplication. Traversal lives in walk.go, rendering in printer.go.
package lamc

// NodeKind tags the variant of an AST node.
type NodeKind int

const (
	// Expressions
	KindBinaryExpr NodeKind = iota
	KindUnaryExpr
	KindLiteralExpr
	KindIdentifierExpr
	KindCallExpr
	KindIndexExpr
	KindMemberExpr
	KindArrayExpr
	KindDictExpr

	// Statements
	KindVarDecl
	KindAssignStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindLoopStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindBlockStmt

	// Declarations
	KindFunctionDecl
	KindClassDecl
	KindImportStmt

	// Root
	KindProgram
)

var kindNames = [...]string{
	KindBinaryExpr:     "BinaryExpr",
	KindUnaryExpr:      "UnaryExpr",
	KindLiteralExpr:    "Literal",
	KindIdentifierExpr: "Identifier",
	KindCallExpr:       "CallExpr",
	KindIndexExpr:      "IndexExpr",
	KindMemberExpr:     "MemberExpr",
	KindArrayExpr:      "ArrayExpr",
	KindDictExpr:       "DictExpr",
	KindVarDecl:        "VarDecl",
	KindAssignStmt:     "AssignStmt",
	KindExprStmt:       "ExprStmt",
	KindIfStmt:         "IfStmt",
	KindWhileStmt:      "WhileStmt",
	KindForStmt:        "ForStmt",
	KindLoopStmt:       "LoopStmt",
	KindReturnStmt:     "ReturnStmt",
	KindBreakStmt:      "BreakStmt",
	KindContinueStmt:   "ContinueStmt",
	KindBlockStmt:      "BlockStmt",
	KindFunctionDecl:   "FunctionDecl",
	KindClassDecl:      "ClassDecl",
	KindImportStmt:     "ImportStmt",
	KindProgram:        "Program",
}

func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// BinaryOp identifies a binary operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpBitXor
)

var binaryOpNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpEq: "==", OpNe: "!=", OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpAnd: "&&", OpOr: "||",
	OpBitAnd: "&", OpBitOr: "|", OpBitXor: "^",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpNot
	OpBitNot
)

var unaryOpNames = [...]string{OpNeg: "-", OpNot: "!", OpBitNot: "~"}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "?"
}

// LiteralKind tags the payload of a Literal node.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitString
	LitBool
	LitNull
)

// Node is an AST node. Every node carries its kind and the 1-based source
// position it was created from.
type Node interface {
	Kind() NodeKind
	Pos() (line, col int)
}

// base carries the position common to all nodes.
type base struct {
	Line int
	Col  int
}

func (b base) Pos() (int, int) { return b.Line, b.Col }

// ----- expressions -----

type BinaryExpr struct {
	base
	Op    BinaryOp
	Left  Node
	Right Node
}

func (*BinaryExpr) Kind() NodeKind { return KindBinaryExpr }

type UnaryExpr struct {
	base
	Op      UnaryOp
	Operand Node
}

func (*UnaryExpr) Kind() NodeKind { return KindUnaryExpr }

// Literal is an INT/FLOAT/STRING/BOOL/NULL literal; only the field matching
// LitKind is meaningful.
type Literal struct {
	base
	LitKind LiteralKind
	Int     int64
	Float   float64
	Str     string
	Bool    bool
}

func (*Literal) Kind() NodeKind { return KindLiteralExpr }

type Identifier struct {
	base
	Name string
}

func (*Identifier) Kind() NodeKind { return KindIdentifierExpr }

type CallExpr struct {
	base
	Callee Node
	Args   []Node
}

func (*CallExpr) Kind() NodeKind { return KindCallExpr }

type IndexExpr struct {
	base
	Object Node
	Index  Node
}

func (*IndexExpr) Kind() NodeKind { return KindIndexExpr }

type MemberExpr struct {
	base
	Object Node
	Member string
}

func (*MemberExpr) Kind() NodeKind { return KindMemberExpr }

type ArrayExpr struct {
	base
	Elements []Node
}

func (*ArrayExpr) Kind() NodeKind { return KindArrayExpr }

// DictEntry is an owned key/value record of a DictExpr.
type DictEntry struct {
	Key   Node
	Value Node
}

type DictExpr struct {
	base
	Entries []*DictEntry
}

func (*DictExpr) Kind() NodeKind { return KindDictExpr }

// ----- statements -----

// VarDecl is `name = expr` or `name: type = expr`. TypeName is empty when no
// annotation was written.
type VarDecl struct {
	base
	Name     string
	TypeName string
	Init     Node
}

func (*VarDecl) Kind() NodeKind { return KindVarDecl }

// AssignStmt reassigns an existing target. The statement grammar never
// produces it (`name = expr` always declares); the node exists for tools
// that build trees directly.
type AssignStmt struct {
	base
	Target Node
	Value  Node
}

func (*AssignStmt) Kind() NodeKind { return KindAssignStmt }

type ExprStmt struct {
	base
	Expr Node
}

func (*ExprStmt) Kind() NodeKind { return KindExprStmt }

type IfStmt struct {
	base
	Condition Node
	Then      Node
	Else      Node // nil if no else branch
}

func (*IfStmt) Kind() NodeKind { return KindIfStmt }

type WhileStmt struct {
	base
	Condition Node
	Body      Node
}

func (*WhileStmt) Kind() NodeKind { return KindWhileStmt }

// ForStmt is `for v in iter` or `for i, v in iter`; IndexVar is empty in the
// single-variable form.
type ForStmt struct {
	base
	Var      string
	IndexVar string
	Iterable Node
	Body     Node
}

func (*ForStmt) Kind() NodeKind { return KindForStmt }

type LoopStmt struct {
	base
	Body Node
}

func (*LoopStmt) Kind() NodeKind { return KindLoopStmt }

type ReturnStmt struct {
	base
	Value Node // nil for a bare return
}

func (*ReturnStmt) Kind() NodeKind { return KindReturnStmt }

type BreakStmt struct{ base }

func (*BreakStmt) Kind() NodeKind { return KindBreakStmt }

type ContinueStmt struct{ base }

func (*ContinueStmt) Kind() NodeKind { return KindContinueStmt }

type BlockStmt struct {
	base
	Stmts []Node
}

func (*BlockStmt) Kind() NodeKind { return KindBlockStmt }

// ----- declarations -----

// Parameter is an owned function-parameter record; TypeName and Default are
// optional.
type Parameter struct {
	Name     string
	TypeName string
	Default  Node
}

type FunctionDecl struct {
	base
	Name       string
	Params     []*Parameter
	ReturnType string // empty when no '->' annotation
	Body       Node
}

func (*FunctionDecl) Kind() NodeKind { return KindFunctionDecl }

type ClassDecl struct {
	base
	Name    string
	Fields  []Node
	Methods []Node
}

func (*ClassDecl) Kind() NodeKind { return KindClassDecl }

type ImportStmt struct {
	base
	Module string
}

func (*ImportStmt) Kind() NodeKind { return KindImportStmt }

// Program is the root node: a sequence of top-level declarations.
type Program struct {
	base
	Decls []Node
}

func (*Program) Kind() NodeKind { return KindProgram }

// ----- constructors -----

func NewBinary(op BinaryOp, left, right Node, line, col int) *BinaryExpr {
	return &BinaryExpr{base: base{line, col}, Op: op, Left: left, Right: right}
}

func NewUnary(op UnaryOp, operand Node, line, col int) *UnaryExpr {
	return &UnaryExpr{base: base{line, col}, Op: op, Operand: operand}
}

func NewLiteralInt(v int64, line, col int) *Literal {
	return &Literal{base: base{line, col}, LitKind: LitInt, Int: v}
}

func NewLiteralFloat(v float64, line, col int) *Literal {
	return &Literal{base: base{line, col}, LitKind: LitFloat, Float: v}
}

func NewLiteralString(v string, line, col int) *Literal {
	return &Literal{base: base{line, col}, LitKind: LitString, Str: v}
}

func NewLiteralBool(v bool, line, col int) *Literal {
	return &Literal{base: base{line, col}, LitKind: LitBool, Bool: v}
}

func NewLiteralNull(line, col int) *Literal {
	return &Literal{base: base{line, col}, LitKind: LitNull}
}

func NewIdentifier(name string, line, col int) *Identifier {
	return &Identifier{base: base{line, col}, Name: name}
}

func NewCall(callee Node, args []Node, line, col int) *CallExpr {
	return &CallExpr{base: base{line, col}, Callee: callee, Args: args}
}

func NewIndex(object, index Node, line, col int) *IndexExpr {
	return &IndexExpr{base: base{line, col}, Object: object, Index: index}
}

func NewMember(object Node, member string, line, col int) *MemberExpr {
	return &MemberExpr{base: base{line, col}, Object: object, Member: member}
}

func NewArray(elements []Node, line, col int) *ArrayExpr {
	return &ArrayExpr{base: base{line, col}, Elements: elements}
}

func NewDict(entries []*DictEntry, line, col int) *DictExpr {
	return &DictExpr{base: base{line, col}, Entries: entries}
}

func NewDictEntry(key, value Node) *DictEntry {
	return &DictEntry{Key: key, Value: value}
}

func NewVarDecl(name, typeName string, init Node, line, col int) *VarDecl {
	return &VarDecl{base: base{line, col}, Name: name, TypeName: typeName, Init: init}
}

func NewAssign(target, value Node, line, col int) *AssignStmt {
	return &AssignStmt{base: base{line, col}, Target: target, Value: value}
}

func NewExprStmt(expr Node, line, col int) *ExprStmt {
	return &ExprStmt{base: base{line, col}, Expr: expr}
}

func NewIf(cond, then, els Node, line, col int) *IfStmt {
	return &IfStmt{base: base{line, col}, Condition: cond, Then: then, Else: els}
}

func NewWhile(cond, body Node, line, col int) *WhileStmt {
	return &WhileStmt{base: base{line, col}, Condition: cond, Body: body}
}

func NewFor(variable string, iterable, body Node, indexVar string, line, col int) *ForStmt {
	return &ForStmt{base: base{line, col}, Var: variable, IndexVar: indexVar, Iterable: iterable, Body: body}
}

func NewLoop(body Node, line, col int) *LoopStmt {
	return &LoopStmt{base: base{line, col}, Body: body}
}

func NewReturn(value Node, line, col int) *ReturnStmt {
	return &ReturnStmt{base: base{line, col}, Value: value}
}

func NewBreak(line, col int) *BreakStmt { return &BreakStmt{base: base{line, col}} }

func NewContinue(line, col int) *ContinueStmt { return &ContinueStmt{base: base{line, col}} }

func NewBlock(stmts []Node, line, col int) *BlockStmt {
	return &BlockStmt{base: base{line, col}, Stmts: stmts}
}

func NewParameter(name, typeName string, def Node) *Parameter {
	return &Parameter{Name: name, TypeName: typeName, Default: def}
}

func NewFunction(name string, params []*Parameter, body Node, returnType string, line, col int) *FunctionDecl {
	return &FunctionDecl{base: base{line, col}, Name: name, Params: params, ReturnType: returnType, Body: body}
}

func NewClass(name string, methods, fields []Node, line, col int) *ClassDecl {
	return &ClassDecl{base: base{line, col}, Name: name, Methods: methods, Fields: fields}
}

func NewImport(module string, line, col int) *ImportStmt {
	return &ImportStmt{base: base{line, col}, Module: module}
}

func NewProgram(decls []Node) *Program { return &Program{base: base{1, 1}, Decls: decls} }
