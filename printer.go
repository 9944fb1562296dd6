// printer.go
//
// Human-readable tree dump of the AST. Output is stable and line-oriented:
// one node per line, two spaces per nesting level, labeled sub-sections
// ("callee:", "arguments:", "body:") where a node has more than one child
// role. Nil children print as "(null)".
package lamc

import (
	"fmt"
	"io"
	"strings"
)

type printer struct {
	w io.Writer
}

func (p *printer) indent(depth int) {
	io.WriteString(p.w, strings.Repeat("  ", depth))
}

func (p *printer) label(depth int, s string) {
	p.indent(depth)
	io.WriteString(p.w, s)
	io.WriteString(p.w, "\n")
}

func (p *printer) node(n Node, depth int) {
	if n == nil {
		p.label(depth, "(null)")
		return
	}

	switch x := n.(type) {
	case *BinaryExpr:
		p.label(depth, fmt.Sprintf("BinaryExpr (%s)", x.Op))
		p.node(x.Left, depth+1)
		p.node(x.Right, depth+1)

	case *UnaryExpr:
		p.label(depth, fmt.Sprintf("UnaryExpr (%s)", x.Op))
		p.node(x.Operand, depth+1)

	case *Literal:
		switch x.LitKind {
		case LitInt:
			p.label(depth, fmt.Sprintf("Literal (int: %d)", x.Int))
		case LitFloat:
			p.label(depth, fmt.Sprintf("Literal (float: %g)", x.Float))
		case LitString:
			p.label(depth, fmt.Sprintf("Literal (string: %q)", x.Str))
		case LitBool:
			p.label(depth, fmt.Sprintf("Literal (bool: %t)", x.Bool))
		case LitNull:
			p.label(depth, "Literal (null)")
		}

	case *Identifier:
		p.label(depth, fmt.Sprintf("Identifier (%s)", x.Name))

	case *CallExpr:
		p.label(depth, "CallExpr")
		p.label(depth+1, "callee:")
		p.node(x.Callee, depth+2)
		p.label(depth+1, "arguments:")
		for _, a := range x.Args {
			p.node(a, depth+2)
		}

	case *IndexExpr:
		p.label(depth, "IndexExpr")
		p.label(depth+1, "object:")
		p.node(x.Object, depth+2)
		p.label(depth+1, "index:")
		p.node(x.Index, depth+2)

	case *MemberExpr:
		p.label(depth, fmt.Sprintf("MemberExpr (field: %s)", x.Member))
		p.node(x.Object, depth+1)

	case *ArrayExpr:
		p.label(depth, "ArrayExpr")
		for _, e := range x.Elements {
			p.node(e, depth+1)
		}

	case *DictExpr:
		p.label(depth, "DictExpr")
		for _, entry := range x.Entries {
			p.label(depth+1, "entry:")
			p.label(depth+2, "key:")
			p.node(entry.Key, depth+3)
			p.label(depth+2, "value:")
			p.node(entry.Value, depth+3)
		}

	case *VarDecl:
		if x.TypeName != "" {
			p.label(depth, fmt.Sprintf("VarDecl (name: %s, type: %s)", x.Name, x.TypeName))
		} else {
			p.label(depth, fmt.Sprintf("VarDecl (name: %s)", x.Name))
		}
		if x.Init != nil {
			p.label(depth+1, "initializer:")
			p.node(x.Init, depth+2)
		}

	case *AssignStmt:
		p.label(depth, "AssignStmt")
		p.label(depth+1, "target:")
		p.node(x.Target, depth+2)
		p.label(depth+1, "value:")
		p.node(x.Value, depth+2)

	case *ExprStmt:
		p.label(depth, "ExprStmt")
		p.node(x.Expr, depth+1)

	case *IfStmt:
		p.label(depth, "IfStmt")
		p.label(depth+1, "condition:")
		p.node(x.Condition, depth+2)
		p.label(depth+1, "then:")
		p.node(x.Then, depth+2)
		if x.Else != nil {
			p.label(depth+1, "else:")
			p.node(x.Else, depth+2)
		}

	case *WhileStmt:
		p.label(depth, "WhileStmt")
		p.label(depth+1, "condition:")
		p.node(x.Condition, depth+2)
		p.label(depth+1, "body:")
		p.node(x.Body, depth+2)

	case *ForStmt:
		if x.IndexVar != "" {
			p.label(depth, fmt.Sprintf("ForStmt (var: %s, index: %s)", x.Var, x.IndexVar))
		} else {
			p.label(depth, fmt.Sprintf("ForStmt (var: %s)", x.Var))
		}
		p.label(depth+1, "iterable:")
		p.node(x.Iterable, depth+2)
		p.label(depth+1, "body:")
		p.node(x.Body, depth+2)

	case *LoopStmt:
		p.label(depth, "LoopStmt")
		p.node(x.Body, depth+1)

	case *ReturnStmt:
		p.label(depth, "ReturnStmt")
		if x.Value != nil {
			p.node(x.Value, depth+1)
		}

	case *BreakStmt:
		p.label(depth, "BreakStmt")

	case *ContinueStmt:
		p.label(depth, "ContinueStmt")

	case *BlockStmt:
		p.label(depth, "BlockStmt")
		for _, s := range x.Stmts {
			p.node(s, depth+1)
		}

	case *FunctionDecl:
		if x.ReturnType != "" {
			p.label(depth, fmt.Sprintf("FunctionDecl (name: %s, return: %s)", x.Name, x.ReturnType))
		} else {
			p.label(depth, fmt.Sprintf("FunctionDecl (name: %s)", x.Name))
		}
		p.label(depth+1, "parameters:")
		for _, param := range x.Params {
			line := "param: " + param.Name
			if param.TypeName != "" {
				line += ": " + param.TypeName
			}
			if param.Default != nil {
				line += " = ..."
			}
			p.label(depth+2, line)
		}
		p.label(depth+1, "body:")
		p.node(x.Body, depth+2)

	case *ClassDecl:
		p.label(depth, fmt.Sprintf("ClassDecl (name: %s)", x.Name))
		if len(x.Fields) > 0 {
			p.label(depth+1, "fields:")
			for _, f := range x.Fields {
				p.node(f, depth+2)
			}
		}
		if len(x.Methods) > 0 {
			p.label(depth+1, "methods:")
			for _, m := range x.Methods {
				p.node(m, depth+2)
			}
		}

	case *ImportStmt:
		p.label(depth, fmt.Sprintf("ImportStmt (module: %s)", x.Module))

	case *Program:
		p.label(depth, "Program")
		for _, d := range x.Decls {
			p.node(d, depth+1)
		}
	}
}

// Fprint writes the tree rooted at n to w.
func Fprint(w io.Writer, n Node) {
	p := &printer{w: w}
	p.node(n, 0)
}

// Print renders the tree rooted at n as a string.
func Print(n Node) string {
	var b strings.Builder
	Fprint(&b, n)
	return b.String()
}

// FprintProgram writes the framed whole-program dump used by the CLI and the
// REPL's ast mode.
func FprintProgram(w io.Writer, program *Program) {
	if program == nil {
		fmt.Fprintln(w, "Error: Not a program node")
		return
	}
	fmt.Fprintf(w, "===== LAMC Abstract Syntax Tree =====\n\n")
	Fprint(w, program)
	fmt.Fprintf(w, "\n===== End of AST =====\n")
}
