package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

func newParser(t *testing.T, src string, opts ...Option) *Parser {
	t.Helper()
	p, err := New([]byte(src), opts...)
	if err != nil {
		t.Fatalf("New(%q) error: %v", src, err)
	}
	return p
}

func parseExpression(t *testing.T, src string) ast.Expr {
	t.Helper()
	e, err := newParser(t, src).ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression(%q) error: %v", src, err)
	}
	return e
}

func parseStatement(t *testing.T, src string) ast.Stmt {
	t.Helper()
	p := newParser(t, src)
	s, err := p.ParseStatement()
	if err != nil {
		t.Fatalf("ParseStatement(%q) error: %v", src, err)
	}
	if !p.Done() {
		t.Fatalf("ParseStatement(%q) left input at %s", src, p.peek())
	}
	return s
}

func parseFile(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	unit, err := ParseFile([]byte(src), WithFile("Test.java"))
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	return unit
}

func pos(line, column int) token.Position {
	return token.Position{Line: line, Column: column}
}

func checkSpan(t *testing.T, n ast.Node, l1, c1, l2, c2 int) {
	t.Helper()
	if n.Pos() != pos(l1, c1) || n.End() != pos(l2, c2) {
		t.Errorf("%s span = %s-%s, want %d:%d-%d:%d", n.Kind(), n.Pos(), n.End(), l1, c1, l2, c2)
	}
}

func TestEndToEnd(t *testing.T) {
	t.Run("literal", func(t *testing.T) {
		lit, err := newParser(t, "12").ParseLiteral()
		if err != nil {
			t.Fatalf("ParseLiteral error: %v", err)
		}
		if lit.Value != "12" || lit.LitKind != token.DecimalInteger {
			t.Errorf("literal = %q (%s), want \"12\"", lit.Value, lit.LitKind)
		}
		checkSpan(t, lit, 1, 1, 1, 2)
	})

	t.Run("parenthesized binary operation", func(t *testing.T) {
		e, err := newParser(t, "(x + y)").ParseParExpression()
		if err != nil {
			t.Fatalf("ParseParExpression error: %v", err)
		}
		bin, ok := e.(*ast.BinaryOperation)
		if !ok {
			t.Fatalf("got %T, want *ast.BinaryOperation", e)
		}
		if bin.Operator != "+" {
			t.Errorf("Operator = %q, want \"+\"", bin.Operator)
		}
		checkSpan(t, bin, 1, 1, 1, 7)
		checkSpan(t, bin.Left, 1, 2, 1, 2)
		checkSpan(t, bin.Right, 1, 6, 1, 6)
	})

	t.Run("array creator", func(t *testing.T) {
		e, err := newParser(t, "new int[] {1, 2, 3}").ParsePrimary()
		if err != nil {
			t.Fatalf("ParsePrimary error: %v", err)
		}
		creator, ok := e.(*ast.ArrayCreator)
		if !ok {
			t.Fatalf("got %T, want *ast.ArrayCreator", e)
		}
		checkSpan(t, creator, 1, 1, 1, 19)
		if len(creator.Dimensions) != 1 || creator.Dimensions[0] != nil {
			t.Errorf("Dimensions = %v, want one unsized dimension", creator.Dimensions)
		}
		if creator.Initializer == nil || len(creator.Initializer.Initializers) != 3 {
			t.Fatalf("Initializer = %+v, want three elements", creator.Initializer)
		}
		checkSpan(t, creator.Initializer, 1, 11, 1, 19)
	})

	t.Run("local variable declaration", func(t *testing.T) {
		decl, err := newParser(t, "int x = 1;").ParseLocalVariableDeclarationStatement()
		if err != nil {
			t.Fatalf("ParseLocalVariableDeclarationStatement error: %v", err)
		}
		checkSpan(t, decl, 1, 1, 1, 10)
		if len(decl.Declarators) != 1 {
			t.Fatalf("got %d declarators, want 1", len(decl.Declarators))
		}
		d := decl.Declarators[0]
		checkSpan(t, d, 1, 5, 1, 9)
		lit, ok := d.Initializer.(*ast.Literal)
		if !ok || lit.Value != "1" {
			t.Fatalf("Initializer = %#v, want literal 1", d.Initializer)
		}
		checkSpan(t, lit, 1, 9, 1, 9)
	})

	t.Run("catch clause", func(t *testing.T) {
		c, err := newParser(t, "catch (Exception e) {}").ParseCatchClause()
		if err != nil {
			t.Fatalf("ParseCatchClause error: %v", err)
		}
		checkSpan(t, c, 1, 1, 1, 22)
		if got := c.Parameter.Name.Name; got != "e" {
			t.Errorf("parameter name = %q, want \"e\"", got)
		}
	})

	t.Run("expression before semicolon", func(t *testing.T) {
		p := newParser(t, "x + (y * z);")
		e, err := p.ParseExpression()
		if err != nil {
			t.Fatalf("ParseExpression error: %v", err)
		}
		bin, ok := e.(*ast.BinaryOperation)
		if !ok {
			t.Fatalf("got %T, want *ast.BinaryOperation", e)
		}
		checkSpan(t, bin, 1, 1, 1, 11)
		checkSpan(t, bin.Right, 1, 5, 1, 11)
		if !p.check(token.Semicolon) {
			t.Errorf("parser at %s, want ';'", p.peek())
		}
	})
}

func TestExplicitConstructorInvocation(t *testing.T) {
	tests := []struct {
		input   string
		keyword string
		args    int
		end     int
	}{
		{"this()", "this", 0, 6},
		{"this(1, 2)", "this", 2, 10},
		{"super()", "super", 0, 7},
		{"super(a)", "super", 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := newParser(t, tt.input).ParsePrimary()
			if err != nil {
				t.Fatalf("ParsePrimary error: %v", err)
			}
			inv, ok := e.(*ast.ExplicitConstructorInvocation)
			if !ok {
				t.Fatalf("got %T, want *ast.ExplicitConstructorInvocation", e)
			}
			if inv.Keyword != tt.keyword || len(inv.Arguments) != tt.args {
				t.Errorf("got %s with %d arguments, want %s with %d", inv.Keyword, len(inv.Arguments), tt.keyword, tt.args)
			}
			checkSpan(t, inv, 1, 1, 1, tt.end)
			if tt.input == "this(1, 2)" {
				for i, arg := range inv.Arguments {
					if _, ok := arg.(*ast.Literal); !ok {
						t.Errorf("argument %d is %T, want *ast.Literal", i, arg)
					}
				}
			}
		})
	}
}

func TestPrimaryChains(t *testing.T) {
	t.Run("qualified name", func(t *testing.T) {
		e, err := newParser(t, "com.example.Person").ParsePrimary()
		if err != nil {
			t.Fatalf("ParsePrimary error: %v", err)
		}
		ref, ok := e.(*ast.MemberReference)
		if !ok {
			t.Fatalf("got %T, want *ast.MemberReference", e)
		}
		checkSpan(t, ref, 1, 1, 1, 18)
		if ref.Member.Name != "Person" {
			t.Errorf("Member = %q, want \"Person\"", ref.Member.Name)
		}
	})

	t.Run("method call on qualified name", func(t *testing.T) {
		e, err := newParser(t, "com.example.Person.foo()").ParsePrimary()
		if err != nil {
			t.Fatalf("ParsePrimary error: %v", err)
		}
		call, ok := e.(*ast.MethodInvocation)
		if !ok {
			t.Fatalf("got %T, want *ast.MethodInvocation", e)
		}
		checkSpan(t, call, 1, 1, 1, 24)
		if call.Member.Name != "foo" || call.Arguments == nil || len(call.Arguments) != 0 {
			t.Errorf("call = %s(%v), want foo()", call.Member.Name, call.Arguments)
		}
		q, ok := call.Qualifier.(*ast.MemberReference)
		if !ok {
			t.Fatalf("Qualifier is %T, want *ast.MemberReference", call.Qualifier)
		}
		checkSpan(t, q, 1, 1, 1, 18)
	})

	tests := []struct {
		input string
		kind  ast.NodeKind
		end   int
	}{
		{"foo()", ast.KindMethodInvocation, 5},
		{"a.b.c", ast.KindMemberReference, 5},
		{"a[0]", ast.KindArrayAccess, 4},
		{"a[0][1]", ast.KindArrayAccess, 7},
		{"a.b()[i].c", ast.KindMemberReference, 10},
		{"this", ast.KindThis, 4},
		{"Outer.this", ast.KindThis, 10},
		{"super.foo()", ast.KindMethodInvocation, 11},
		{"Outer.super.foo()", ast.KindMethodInvocation, 17},
		{"new A()", ast.KindClassCreator, 7},
		{"new A<>()", ast.KindClassCreator, 9},
		{"new java.util.ArrayList<String>(10)", ast.KindClassCreator, 35},
		{"new A() { void f() {} }", ast.KindClassCreator, 23},
		{"outer.new Inner()", ast.KindClassCreator, 17},
		{"new int[3][]", ast.KindArrayCreator, 12},
		{"new String[2][3]", ast.KindArrayCreator, 16},
		{"int[].class", ast.KindClassReference, 11},
		{"String.class", ast.KindClassReference, 12},
		{"java.lang.String[][].class", ast.KindClassReference, 26},
		{"void.class", ast.KindVoidClassReference, 10},
		{"String::valueOf", ast.KindMethodReference, 15},
		{"ArrayList::new", ast.KindMethodReference, 14},
		{"int[]::clone", ast.KindMethodReference, 12},
		{"List<String>::size", ast.KindMethodReference, 18},
		{"this::foo", ast.KindMethodReference, 9},
		{"super::foo", ast.KindMethodReference, 10},
		{"Collections.<String>emptyList()", ast.KindMethodInvocation, 31},
		{"\"s\".length()", ast.KindMethodInvocation, 12},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := newParser(t, tt.input).ParsePrimary()
			if err != nil {
				t.Fatalf("ParsePrimary error: %v", err)
			}
			if e.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind(), tt.kind)
			}
			checkSpan(t, e, 1, 1, 1, tt.end)
		})
	}
}

func TestClassLiteralTypes(t *testing.T) {
	e, err := newParser(t, "int[].class").ParsePrimary()
	if err != nil {
		t.Fatalf("ParsePrimary error: %v", err)
	}
	ref := e.(*ast.ClassReference)
	arr, ok := ref.Type.(*ast.ArrayType)
	if !ok {
		t.Fatalf("Type is %T, want *ast.ArrayType", ref.Type)
	}
	if prim, ok := arr.Element.(*ast.PrimitiveType); !ok || prim.Name != "int" {
		t.Errorf("Element = %#v, want int", arr.Element)
	}
	checkSpan(t, arr, 1, 1, 1, 5)
}

func TestVoidRejected(t *testing.T) {
	tests := []struct {
		name  string
		parse func(p *Parser) error
		input string
	}{
		{"type", func(p *Parser) error { _, err := p.ParseType(); return err }, "void"},
		{"local variable", func(p *Parser) error { _, err := p.ParseLocalVariableDeclarationStatement(); return err }, "void x = 1;"},
		{"type argument", func(p *Parser) error { _, err := p.ParseType(); return err }, "List<void>"},
		{"void array class literal", func(p *Parser) error { _, err := p.ParsePrimary(); return err }, "void[].class"},
		{"field", func(p *Parser) error { _, err := p.ParseClassBodyDeclaration(); return err }, "void x;"},
		{"cast", func(p *Parser) error { _, err := p.ParseExpression(); return err }, "(void) x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(newParser(t, tt.input))
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error = %v, want *SyntaxError", err)
			}
		})
	}
}

func TestExpressionStructure(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a = b = c", "(a = (b = c))"},
		{"a += b", "(a += b)"},
		{"a ? b : c ? d : e", "(a ? b : (c ? d : e))"},
		{"a || b && c", "(a || (b && c))"},
		{"a | b ^ c & d", "(a | (b ^ (c & d)))"},
		{"a == b < c", "(a == (b < c))"},
		{"a < b", "(a < b)"},
		{"i < n >> 1", "(i < (n >> 1))"},
		{"a << 2 + 1", "(a << (2 + 1))"},
		{"x >>> 3", "(x >>> 3)"},
		{"a < b && c > d", "((a < b) && (c > d))"},
		{"-a * b", "((-a) * b)"},
		{"!a && b", "((!a) && b)"},
		{"i++ + ++j", "((i++) + (++j))"},
		{"(int) x + 1", "((int)x + 1)"},
		{"(a) + b", "(a + b)"},
		{"(a) - b", "(a - b)"},
		{"(String) s", "(String)s"},
		{"(int[]) o", "(int[])o"},
		{"(List<String>) o", "(List<String>)o"},
		{"(Runnable & Serializable) r", "(Runnable & Serializable)r"},
		{"(int) -x", "(int)(-x)"},
		{"x instanceof String", "(x instanceof String)"},
		{"x instanceof String && y", "((x instanceof String) && y)"},
		{"x -> x + 1", "(x) -> (x + 1)"},
		{"(a, b) -> a + b", "(a, b) -> (a + b)"},
		{"(int a, int b) -> a", "(int a, int b) -> a"},
		{"() -> {}", "() -> {...}"},
		{"c ? x -> x : y -> y", "(c ? (x) -> x : (y) -> y)"},
		{"f(x -> x, 1)", "f((x) -> x, 1)"},
		{"a[i] = b.c(d)[0]", "(a[i] = b.c(d)[0])"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := newParser(t, tt.input)
			e, err := p.ParseExpression()
			if err != nil {
				t.Fatalf("ParseExpression error: %v", err)
			}
			if !p.Done() {
				t.Fatalf("input left at %s", p.peek())
			}
			if got := render(e); got != tt.want {
				t.Errorf("ParseExpression(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// render prints an expression fully parenthesized for structural
// comparison.
func render(n ast.Node) string {
	switch e := n.(type) {
	case *ast.Literal:
		return e.Value
	case *ast.MemberReference:
		if e.Qualifier != nil {
			return render(e.Qualifier) + "." + e.Member.Name
		}
		return e.Member.Name
	case *ast.MethodInvocation:
		name := e.Member.Name
		if e.Qualifier != nil {
			name = render(e.Qualifier) + "." + name
		}
		return name + "(" + renderList(e.Arguments) + ")"
	case *ast.ArrayAccess:
		return render(e.Array) + "[" + render(e.Index) + "]"
	case *ast.BinaryOperation:
		return "(" + render(e.Left) + " " + e.Operator + " " + render(e.Right) + ")"
	case *ast.Assignment:
		return "(" + render(e.Target) + " " + e.Operator + " " + render(e.Value) + ")"
	case *ast.Ternary:
		return "(" + render(e.Condition) + " ? " + render(e.IfTrue) + " : " + render(e.IfFalse) + ")"
	case *ast.UnaryOperation:
		return "(" + e.Operator + render(e.Operand) + ")"
	case *ast.PostfixOperation:
		return "(" + render(e.Operand) + e.Operator + ")"
	case *ast.Cast:
		types := []string{ast.TypeString(e.Type)}
		for _, b := range e.Bounds {
			types = append(types, ast.TypeString(b))
		}
		return "(" + strings.Join(types, " & ") + ")" + render(e.Expr)
	case *ast.InstanceOf:
		return "(" + render(e.Expr) + " instanceof " + ast.TypeString(e.Type) + ")"
	case *ast.Lambda:
		var params []string
		for _, p := range e.Parameters {
			switch p := p.(type) {
			case *ast.InferredParameter:
				params = append(params, p.Name.Name)
			case *ast.FormalParameter:
				params = append(params, ast.TypeString(p.Type)+" "+p.Name.Name)
			}
		}
		body := "{...}"
		if expr, ok := e.Body.(ast.Expr); ok {
			body = render(expr)
		}
		return "(" + strings.Join(params, ", ") + ") -> " + body
	}
	return n.Kind().String()
}

func renderList(list []ast.Expr) string {
	var parts []string
	for _, e := range list {
		parts = append(parts, render(e))
	}
	return strings.Join(parts, ", ")
}

func TestParenthesizedSpans(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.NodeKind
		end   int
	}{
		{"(a)", ast.KindMemberReference, 3},
		{"((1))", ast.KindLiteral, 5},
		{"(f())", ast.KindMethodInvocation, 5},
		{"( a + b )", ast.KindBinaryOperation, 9},
		{"(x = 1)", ast.KindAssignment, 7},
		{"(a ? b : c)", ast.KindTernary, 11},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e := parseExpression(t, tt.input)
			if e.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", e.Kind(), tt.kind)
			}
			checkSpan(t, e, 1, 1, 1, tt.end)
		})
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		input string
		want  string
		end   int
	}{
		{"int", "int", 3},
		{"String", "String", 6},
		{"java.util.List<String>", "java.util.List<String>", 22},
		{"int[][]", "int[][]", 7},
		{"List<List<String>>", "List<List<String>>", 18},
		{"List<List<List<String>>>", "List<List<List<String>>>", 24},
		{"Map<String, List<? extends Number>>", "Map<String, List<? extends Number>>", 35},
		{"Comparator<? super T>", "Comparator<? super T>", 21},
		{"Class<?>", "Class<?>", 8},
		{"Outer<A>.Inner<B>[]", "Outer<A>.Inner<B>[]", 19},
		{"@NonNull String", "String", 15},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := newParser(t, tt.input)
			typ, err := p.ParseType()
			if err != nil {
				t.Fatalf("ParseType error: %v", err)
			}
			if got := ast.TypeString(typ); got != tt.want {
				t.Errorf("type = %s, want %s", got, tt.want)
			}
			if !p.Done() {
				t.Errorf("input left at %s", p.peek())
			}
			if typ.End() != pos(1, tt.end) {
				t.Errorf("End = %s, want 1:%d", typ.End(), tt.end)
			}
		})
	}
}

func TestNestedTypeArgumentsInDeclaration(t *testing.T) {
	decl, err := newParser(t, "List<List<String>> x;").ParseLocalVariableDeclarationStatement()
	if err != nil {
		t.Fatalf("ParseLocalVariableDeclarationStatement error: %v", err)
	}
	checkSpan(t, decl, 1, 1, 1, 21)
	outer := decl.Type.(*ast.ReferenceType)
	checkSpan(t, outer, 1, 1, 1, 18)
	checkSpan(t, outer.Arguments, 1, 5, 1, 18)
	inner := outer.Arguments.List[0].(*ast.ReferenceType)
	checkSpan(t, inner, 1, 6, 1, 17)
	checkSpan(t, inner.Arguments, 1, 10, 1, 17)
	checkSpan(t, decl.Declarators[0], 1, 20, 1, 20)
}

func TestShiftAfterFailedGenericAttempt(t *testing.T) {
	e := parseExpression(t, "i < n >> 1")
	bin := e.(*ast.BinaryOperation)
	if bin.Operator != "<" {
		t.Fatalf("Operator = %q, want \"<\"", bin.Operator)
	}
	shift := bin.Right.(*ast.BinaryOperation)
	if shift.Operator != ">>" {
		t.Errorf("right Operator = %q, want \">>\"", shift.Operator)
	}
	checkSpan(t, shift, 1, 5, 1, 10)
}

func TestLocalVariableDeclarations(t *testing.T) {
	tests := []struct {
		input       string
		declarators int
		end         int
	}{
		{"int x = 1;", 1, 10},
		{"int x, y = 2, z;", 3, 16},
		{"int x = {1, 2, 3};", 1, 18},
		{"final String s = \"a\";", 1, 21},
		{"int[] a[] = {{1}, {}};", 1, 22},
		{"Map<String, Integer> m = new HashMap<>();", 1, 41},
		{"java.util.List<String> l;", 1, 25},
		{"@SuppressWarnings(\"x\") var v = f();", 1, 35},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decl, err := newParser(t, tt.input).ParseLocalVariableDeclarationStatement()
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if len(decl.Declarators) != tt.declarators {
				t.Errorf("got %d declarators, want %d", len(decl.Declarators), tt.declarators)
			}
			checkSpan(t, decl, 1, 1, 1, tt.end)
		})
	}

	t.Run("array initializer", func(t *testing.T) {
		decl, err := newParser(t, "int x = {1, 2, 3};").ParseLocalVariableDeclarationStatement()
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		d := decl.Declarators[0]
		init, ok := d.Initializer.(*ast.ArrayInitializer)
		if !ok {
			t.Fatalf("Initializer is %T, want *ast.ArrayInitializer", d.Initializer)
		}
		checkSpan(t, init, 1, 9, 1, 17)
		checkSpan(t, d, 1, 5, 1, 17)
	})

	t.Run("trailing dimensions", func(t *testing.T) {
		decl, err := newParser(t, "int[] a[];").ParseLocalVariableDeclarationStatement()
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if got := decl.Declarators[0].Dimensions; got != 1 {
			t.Errorf("Dimensions = %d, want 1", got)
		}
	})
}

func TestCatchClauses(t *testing.T) {
	c, err := newParser(t, "catch (final IOException | RuntimeException e) { log(e); }").ParseCatchClause()
	if err != nil {
		t.Fatalf("ParseCatchClause error: %v", err)
	}
	if !c.Parameter.Modifiers.Has("final") {
		t.Errorf("parameter is not final")
	}
	var names []string
	for _, typ := range c.Parameter.Types {
		names = append(names, ast.TypeString(typ))
	}
	if got := strings.Join(names, "|"); got != "IOException|RuntimeException" {
		t.Errorf("Types = %s", got)
	}
	checkSpan(t, c.Parameter, 1, 8, 1, 45)
	checkSpan(t, c, 1, 1, 1, 58)

	for _, bad := range []string{"catch (Exception) {}", "catch Exception e {}", "catch (Exception e)"} {
		t.Run(bad, func(t *testing.T) {
			if _, err := newParser(t, bad).ParseCatchClause(); err == nil {
				t.Errorf("ParseCatchClause(%q) succeeded", bad)
			}
		})
	}
}

func TestTypeDeclarations(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.NodeKind
		name  string
		end   int
	}{
		{"interface A {}", ast.KindInterfaceDeclaration, "A", 14},
		{"enum A {}", ast.KindEnumDeclaration, "A", 9},
		{"class A {}", ast.KindClassDeclaration, "A", 10},
		{"@interface A {}", ast.KindAnnotationDeclaration, "A", 15},
		{"public final class A<T extends Comparable<T>> extends B implements C, D<T> {}", ast.KindClassDeclaration, "A", 77},
		{"enum Color { RED, GREEN, BLUE; }", ast.KindEnumDeclaration, "Color", 32},
		{"interface I extends J, K<L> { void m(); }", ast.KindInterfaceDeclaration, "I", 41},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decl, err := newParser(t, tt.input).ParseTypeDeclaration()
			if err != nil {
				t.Fatalf("ParseTypeDeclaration error: %v", err)
			}
			if decl.Kind() != tt.kind || decl.TypeName() != tt.name {
				t.Errorf("got %s %s, want %s %s", decl.Kind(), decl.TypeName(), tt.kind, tt.name)
			}
			checkSpan(t, decl, 1, 1, 1, tt.end)
		})
	}
}

func TestEnumBody(t *testing.T) {
	src := `enum Planet implements Body {
    MERCURY(3.303e+23, 2.4397e6),
    @Deprecated PLUTO(1.0, 2.0) { double mass() { return 0; } },
    ;
    private final double mass;
    Planet(double mass, double radius) { this.mass = mass; }
    double mass() { return mass; }
}`
	decl, err := newParser(t, src).ParseTypeDeclaration()
	if err != nil {
		t.Fatalf("ParseTypeDeclaration error: %v", err)
	}
	enum := decl.(*ast.EnumDeclaration)
	if len(enum.Body.Constants) != 2 {
		t.Fatalf("got %d constants, want 2", len(enum.Body.Constants))
	}
	pluto := enum.Body.Constants[1]
	if pluto.Name.Name != "PLUTO" || len(pluto.Annotations) != 1 || pluto.Body == nil || len(pluto.Arguments) != 2 {
		t.Errorf("PLUTO = %+v", pluto)
	}
	if len(enum.Body.Declarations) != 3 {
		t.Fatalf("got %d declarations, want 3", len(enum.Body.Declarations))
	}
	kinds := []ast.NodeKind{ast.KindFieldDeclaration, ast.KindConstructorDeclaration, ast.KindMethodDeclaration}
	for i, d := range enum.Body.Declarations {
		if d.Kind() != kinds[i] {
			t.Errorf("declaration %d is %s, want %s", i, d.Kind(), kinds[i])
		}
	}
}

func TestClassBodyDeclarations(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.NodeKind
	}{
		{"int x;", ast.KindFieldDeclaration},
		{"private static final long serialVersionUID = 1L;", ast.KindFieldDeclaration},
		{"void f() {}", ast.KindMethodDeclaration},
		{"abstract int f(int a, String... rest);", ast.KindMethodDeclaration},
		{"public <T> T id(T t) { return t; }", ast.KindMethodDeclaration},
		{"int f()[] { return null; }", ast.KindMethodDeclaration},
		{"A() { super(); }", ast.KindConstructorDeclaration},
		{"<T> A(T t) throws E1, E2 { this(t, 0); }", ast.KindConstructorDeclaration},
		{"static { x = 1; }", ast.KindInitializer},
		{"{ y = 2; }", ast.KindInitializer},
		{"class Inner {}", ast.KindClassDeclaration},
		{"static enum E { A }", ast.KindEnumDeclaration},
		{"@Override public String toString() { return \"\"; }", ast.KindMethodDeclaration},
		{"default void m() {}", ast.KindMethodDeclaration},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := newParser(t, tt.input)
			decl, err := p.ParseClassBodyDeclaration()
			if err != nil {
				t.Fatalf("ParseClassBodyDeclaration error: %v", err)
			}
			if decl.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", decl.Kind(), tt.kind)
			}
			if !p.Done() {
				t.Errorf("input left at %s", p.peek())
			}
			checkSpan(t, decl, 1, 1, 1, len(tt.input))
		})
	}

	t.Run("varargs", func(t *testing.T) {
		decl, err := newParser(t, "void f(int a, String... rest) {}").ParseClassBodyDeclaration()
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		m := decl.(*ast.MethodDeclaration)
		if m.ReturnType != nil {
			t.Errorf("ReturnType = %v, want nil for void", m.ReturnType)
		}
		if len(m.Parameters) != 2 || !m.Parameters[1].Varargs || m.Parameters[0].Varargs {
			t.Errorf("Parameters = %+v", m.Parameters)
		}
	})
}

func TestAnnotations(t *testing.T) {
	src := `@interface Config {
    String name() default "x";
    int[] sizes() default {1, 2};
    Class<?> type();
    Retention keep() default @Retention(RetentionPolicy.RUNTIME);
}`
	decl, err := newParser(t, src).ParseTypeDeclaration()
	if err != nil {
		t.Fatalf("ParseTypeDeclaration error: %v", err)
	}
	a := decl.(*ast.AnnotationDeclaration)
	if len(a.Body.Declarations) != 4 {
		t.Fatalf("got %d members, want 4", len(a.Body.Declarations))
	}
	for i, d := range a.Body.Declarations {
		if d.Kind() != ast.KindAnnotationMethod {
			t.Errorf("member %d is %s", i, d.Kind())
		}
	}
	sizes := a.Body.Declarations[1].(*ast.AnnotationMethod)
	if _, ok := sizes.Default.(*ast.ElementArrayValue); !ok {
		t.Errorf("sizes default is %T, want *ast.ElementArrayValue", sizes.Default)
	}

	unit := parseFile(t, `@Target({ElementType.TYPE, ElementType.METHOD}) @Author(name = "a", year = 2024) @Marker class A {}`)
	mods := unit.Types[0].(*ast.ClassDeclaration).Modifiers
	if len(mods.Annotations) != 3 {
		t.Fatalf("got %d annotations, want 3", len(mods.Annotations))
	}
	if _, ok := mods.Annotations[0].Element.(*ast.ElementArrayValue); !ok {
		t.Errorf("@Target element is %T", mods.Annotations[0].Element)
	}
	if len(mods.Annotations[1].Pairs) != 2 {
		t.Errorf("@Author pairs = %d, want 2", len(mods.Annotations[1].Pairs))
	}
	if mods.Annotations[2].Element != nil || mods.Annotations[2].Pairs != nil {
		t.Errorf("@Marker has elements")
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.NodeKind
	}{
		{";", ast.KindEmptyStatement},
		{"{ }", ast.KindBlock},
		{"x = 1;", ast.KindExpressionStatement},
		{"f();", ast.KindExpressionStatement},
		{"i++;", ast.KindExpressionStatement},
		{"int x = 1;", ast.KindLocalVariableDeclaration},
		{"List<String> names = new ArrayList<>();", ast.KindLocalVariableDeclaration},
		{"a.b.C c;", ast.KindLocalVariableDeclaration},
		{"String[] args = {};", ast.KindLocalVariableDeclaration},
		{"final var x = 1;", ast.KindLocalVariableDeclaration},
		{"a < b;", ast.KindExpressionStatement},
		{"if (a) b(); else c();", ast.KindIfStatement},
		{"if (a) if (b) c(); else d();", ast.KindIfStatement},
		{"while (true) {}", ast.KindWhileStatement},
		{"do { x++; } while (x < 10);", ast.KindDoStatement},
		{"for (int i = 0; i < n; i++) {}", ast.KindForStatement},
		{"for (i = 0, j = 1; ; i++, j--) ;", ast.KindForStatement},
		{"for (;;) {}", ast.KindForStatement},
		{"for (String s : list) {}", ast.KindEnhancedForStatement},
		{"for (final Map.Entry<K, V> e : m.entrySet()) {}", ast.KindEnhancedForStatement},
		{"outer: for (;;) { break outer; }", ast.KindLabeledStatement},
		{"continue;", ast.KindContinueStatement},
		{"return;", ast.KindReturnStatement},
		{"return a + b;", ast.KindReturnStatement},
		{"throw new IllegalStateException();", ast.KindThrowStatement},
		{"synchronized (lock) { n++; }", ast.KindSynchronizedStatement},
		{"assert x > 0 : \"positive\";", ast.KindAssertStatement},
		{"switch (x) { case 1: case 2: f(); break; default: g(); }", ast.KindSwitchStatement},
		{"try { f(); } catch (E e) {} finally {}", ast.KindTryStatement},
		{"try (InputStream in = open(); out) { }", ast.KindTryStatement},
		{"try { } finally { }", ast.KindTryStatement},
		{"class Local { }", ast.KindClassDeclaration},
		{"final class Local { }", ast.KindClassDeclaration},
		{"this(1);", ast.KindExpressionStatement},
		{"Runnable r = () -> {};", ast.KindLocalVariableDeclaration},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := parseStatement(t, tt.input)
			if s.Kind() != tt.kind {
				t.Errorf("kind = %s, want %s", s.Kind(), tt.kind)
			}
			checkSpan(t, s, 1, 1, 1, len(tt.input))
		})
	}
}

func TestStatementDetails(t *testing.T) {
	t.Run("dangling else", func(t *testing.T) {
		s := parseStatement(t, "if (a) if (b) c(); else d();").(*ast.IfStatement)
		if s.Else != nil {
			t.Errorf("outer if has an else")
		}
		if inner := s.Then.(*ast.IfStatement); inner.Else == nil {
			t.Errorf("inner if has no else")
		}
	})

	t.Run("condition span", func(t *testing.T) {
		s := parseStatement(t, "while (x) {}").(*ast.WhileStatement)
		checkSpan(t, s.Condition, 1, 8, 1, 8)
	})

	t.Run("switch groups", func(t *testing.T) {
		s := parseStatement(t, "switch (x) { case 1: case 2: f(); break; default: g(); }").(*ast.SwitchStatement)
		if len(s.Cases) != 2 {
			t.Fatalf("got %d case groups, want 2", len(s.Cases))
		}
		if len(s.Cases[0].Labels) != 2 || len(s.Cases[0].Body) != 2 {
			t.Errorf("first group = %+v", s.Cases[0])
		}
		if !s.Cases[1].Default || len(s.Cases[1].Labels) != 0 {
			t.Errorf("second group = %+v", s.Cases[1])
		}
	})

	t.Run("try resources", func(t *testing.T) {
		s := parseStatement(t, "try (InputStream in = open(); out;) { }").(*ast.TryStatement)
		if len(s.Resources) != 2 {
			t.Fatalf("got %d resources, want 2", len(s.Resources))
		}
		if s.Resources[0].Type == nil || s.Resources[0].Name.Name != "in" {
			t.Errorf("resource 0 = %+v", s.Resources[0])
		}
		if s.Resources[1].Type != nil {
			t.Errorf("resource 1 has a type")
		}
	})

	t.Run("for header", func(t *testing.T) {
		s := parseStatement(t, "for (int i = 0, j = n; i < j; i++, j--) {}").(*ast.ForStatement)
		if len(s.Init) != 1 {
			t.Fatalf("Init = %v", s.Init)
		}
		decl := s.Init[0].(*ast.LocalVariableDeclaration)
		if len(decl.Declarators) != 2 {
			t.Errorf("got %d declarators, want 2", len(decl.Declarators))
		}
		checkSpan(t, decl, 1, 6, 1, 21)
		if len(s.Update) != 2 {
			t.Errorf("got %d updates, want 2", len(s.Update))
		}
	})
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		input   string
		pos     token.Position
		message string
	}{
		{"int x = ;", pos(1, 9), "illegal start of expression"},
		{"try { }", pos(1, 8), "'try' without 'catch'"},
		{"else x();", pos(1, 1), "'else' without 'if'"},
		{"x = 1", pos(1, 6), "unexpected token"},
		{"if x) {}", pos(1, 4), "unexpected token"},
		{"for (int i = 0; i < n) {}", pos(1, 22), "unexpected token"},
		{"void x;", pos(1, 1), "'void' type not allowed here"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := newParser(t, tt.input, WithFile("T.java")).ParseStatement()
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("error = %v, want *SyntaxError", err)
			}
			if synErr.Pos != tt.pos {
				t.Errorf("Pos = %s, want %s", synErr.Pos, tt.pos)
			}
			if !strings.Contains(synErr.Message, tt.message) {
				t.Errorf("Message = %q, want %q", synErr.Message, tt.message)
			}
			if !strings.HasPrefix(err.Error(), "T.java:") {
				t.Errorf("Error() = %q, want file prefix", err.Error())
			}
		})
	}
}

func TestSyntaxErrorMessage(t *testing.T) {
	_, err := newParser(t, "catch (Exception e {}").ParseCatchClause()
	if err == nil {
		t.Fatal("ParseCatchClause succeeded")
	}
	want := `1:20: unexpected token, expected ")", got "{"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		input      string
		file       bool
		incomplete bool
	}{
		{"class A {", true, true},
		{"class A { void f() {", true, true},
		{"class A }", true, false},
		{"int x = ", false, true},
		{"if (a", false, true},
		{"int x = );", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var err error
			if tt.file {
				_, err = ParseFile([]byte(tt.input))
			} else {
				_, err = newParser(t, tt.input).ParseStatement()
			}
			if err == nil {
				t.Fatalf("%q parsed without error", tt.input)
			}
			if got := IsIncomplete(err); got != tt.incomplete {
				t.Errorf("IsIncomplete(%v) = %v, want %v", err, got, tt.incomplete)
			}
		})
	}
}

func TestFailedEntryPointRewinds(t *testing.T) {
	p := newParser(t, "List<String> x")
	if _, err := p.ParseLocalVariableDeclarationStatement(); err == nil {
		t.Fatal("declaration without ';' parsed")
	}
	typ, err := p.ParseType()
	if err != nil {
		t.Fatalf("ParseType after failure: %v", err)
	}
	checkSpan(t, typ, 1, 1, 1, 12)
}

func TestChainedEntryPoints(t *testing.T) {
	p := newParser(t, "int x = 1; x++; return x;")
	if _, err := p.ParseLocalVariableDeclarationStatement(); err != nil {
		t.Fatalf("declaration: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := p.ParseStatement(); err != nil {
			t.Fatalf("statement %d: %v", i, err)
		}
	}
	if !p.Done() {
		t.Errorf("input left at %s", p.peek())
	}
	p.Reset()
	if p.Done() {
		t.Errorf("Done after Reset")
	}
}

func TestParseExpr(t *testing.T) {
	if _, err := ParseExpr([]byte("a + b")); err != nil {
		t.Errorf("ParseExpr error: %v", err)
	}
	_, err := ParseExpr([]byte("a + b;"))
	var synErr *SyntaxError
	if !errors.As(err, &synErr) || synErr.Pos != pos(1, 6) {
		t.Errorf("ParseExpr with trailing ';' = %v, want error at 1:6", err)
	}
	_, err = ParseExpr([]byte("\"open"))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Errorf("ParseExpr with bad literal = %v, want *LexError", err)
	}
}

func TestMaxNesting(t *testing.T) {
	deep := strings.Repeat("(", 200) + "1" + strings.Repeat(")", 200)
	if _, err := newParser(t, deep).ParseExpression(); err != nil {
		t.Fatalf("200 levels: %v", err)
	}
	_, err := newParser(t, deep, WithMaxNesting(50)).ParseExpression()
	if err == nil || !strings.Contains(err.Error(), "nesting exceeds 50 levels") {
		t.Errorf("error = %v, want nesting error", err)
	}

	// One level per parenthesis.
	parens := strings.Repeat("(", 900) + "1" + strings.Repeat(")", 900)
	if _, err := newParser(t, parens).ParseExpression(); err != nil {
		t.Errorf("900 parentheses: %v", err)
	}
	if _, err := newParser(t, parens, WithMaxNesting(899)).ParseExpression(); err == nil {
		t.Errorf("900 parentheses parsed with a limit of 899")
	}
	nots := strings.Repeat("!", 1200) + "x"
	if _, err := newParser(t, nots).ParseExpression(); err == nil {
		t.Errorf("1200 prefix operators parsed with the default limit")
	}

	// Far past the default limit, the parser must fail instead of
	// exhausting the stack.
	deeper := strings.Repeat("{", 100000)
	if _, err := newParser(t, deeper).ParseBlock(); err == nil {
		t.Errorf("unbalanced braces parsed")
	}
}

const sampleFile = `/** Package doc. */
@Generated
package com.example.app;

import java.util.*;
import java.util.function.Function;
import static java.lang.Math.max;

/**
 * A sample class.
 */
public abstract class Sample<T extends Comparable<? super T>> extends Base<T>
        implements Runnable, java.io.Serializable {

    private static final Map<String, List<Integer>> CACHE = new HashMap<>();
    protected int[] counts = new int[10], more[];

    /** Creates a sample. */
    public Sample(T seed) throws IllegalArgumentException {
        super(seed);
        this.counts[0] = seed == null ? -1 : 1;
    }

    @Override
    public void run() {
        int total = 0;
        for (int i = 0; i < counts.length; i++) {
            total += counts[i] << 2 >>> 1;
        }
        label:
        for (Map.Entry<String, List<Integer>> e : CACHE.entrySet()) {
            if (e.getValue().isEmpty()) continue label;
            else break;
        }
        Function<Integer, Integer> f = x -> x * 2;
        Runnable r = () -> { System.out.println("run"); };
        Object o = (Object) (String) "s";
        String s = o instanceof String ? (String) o : String.valueOf(o);
        List<String> names = Arrays.<String>asList("a", "b");
        names.forEach(System.out::println);
        char c = '\n';
        long big = 0xFFFF_FFFFL;
        double d = 1.5e-3;
        synchronized (this) {
            total++;
        }
        try (java.io.Reader in = open()) {
            in.read();
        } catch (java.io.IOException | RuntimeException ex) {
            throw new IllegalStateException(ex);
        } finally {
            total--;
        }
        switch (total) {
            case 0:
                break;
            default:
                total = -total;
        }
        do { total >>= 1; } while (total > 0);
        assert total == 0 : "done";
        new Thread(new Runnable() {
            public void run() {}
        }).start();
        class Local implements Comparable<Local> {
            public int compareTo(Local other) { return 0; }
        }
    }

    abstract <R> R apply(Function<? super T, ? extends R> fn);

    static {
        CACHE.put("x", new ArrayList<>());
    }

    enum Mode { ON, OFF }

    interface Callback<E> {
        void call(E event);
        default void done() {}
    }

    @interface Marker {
        String value() default "";
    }
}

enum Color { RED, GREEN }
`

func TestParseCompilationUnit(t *testing.T) {
	unit := parseFile(t, sampleFile)

	if unit.Package == nil || unit.Package.Name.String() != "com.example.app" {
		t.Fatalf("Package = %+v", unit.Package)
	}
	if unit.Package.Doc != "/** Package doc. */" || len(unit.Package.Annotations) != 1 {
		t.Errorf("package doc/annotations = %q %d", unit.Package.Doc, len(unit.Package.Annotations))
	}
	if len(unit.Imports) != 3 {
		t.Fatalf("got %d imports, want 3", len(unit.Imports))
	}
	if !unit.Imports[0].Wildcard || unit.Imports[0].Name.String() != "java.util" {
		t.Errorf("import 0 = %+v", unit.Imports[0])
	}
	if !unit.Imports[2].Static || unit.Imports[2].Name.String() != "java.lang.Math.max" {
		t.Errorf("import 2 = %+v", unit.Imports[2])
	}
	if len(unit.Types) != 2 {
		t.Fatalf("got %d types, want 2", len(unit.Types))
	}

	sample := unit.Types[0].(*ast.ClassDeclaration)
	if !strings.Contains(sample.Doc, "A sample class.") {
		t.Errorf("class Doc = %q", sample.Doc)
	}
	if !sample.Modifiers.Has("public") || !sample.Modifiers.Has("abstract") {
		t.Errorf("class modifiers = %+v", sample.Modifiers.Keywords)
	}
	if len(sample.Implements) != 2 || sample.Extends == nil || sample.TypeParameters == nil {
		t.Errorf("class header = %+v", sample)
	}
	checkSpan(t, unit, 2, 1, 88, 25)
	checkSpan(t, sample, 12, 1, 86, 1)

	var ctor *ast.ConstructorDeclaration
	for _, d := range sample.Body.Declarations {
		if c, ok := d.(*ast.ConstructorDeclaration); ok {
			ctor = c
		}
	}
	if ctor == nil || ctor.Doc != "/** Creates a sample. */" {
		t.Errorf("constructor = %+v", ctor)
	}
}

func TestSpanContainment(t *testing.T) {
	unit := parseFile(t, sampleFile)

	var stack []ast.Node
	count := 0
	ast.Inspect(unit, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		count++
		if n.End().Before(n.Pos()) {
			t.Errorf("%s at %s ends before it starts (%s)", n.Kind(), n.Pos(), n.End())
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			if !ast.Contains(parent, n) {
				t.Errorf("%s %s-%s is not inside %s %s-%s",
					n.Kind(), n.Pos(), n.End(), parent.Kind(), parent.Pos(), parent.End())
			}
		}
		stack = append(stack, n)
		return true
	})
	if count < 300 {
		t.Errorf("visited %d nodes, expected a full tree", count)
	}
}

func TestParseDeterministic(t *testing.T) {
	first := parseFile(t, sampleFile)
	second := parseFile(t, sampleFile)

	var a, b []string
	collect := func(dst *[]string) func(ast.Node) bool {
		return func(n ast.Node) bool {
			if n != nil {
				*dst = append(*dst, n.Kind().String()+"@"+n.Pos().String()+"-"+n.End().String())
			}
			return true
		}
	}
	ast.Inspect(first, collect(&a))
	ast.Inspect(second, collect(&b))
	if strings.Join(a, "\n") != strings.Join(b, "\n") {
		t.Errorf("two parses of the same file differ")
	}
}

func TestCompilationUnitEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types int
	}{
		{"empty", "", 0},
		{"only comments", "// nothing\n/* here */", 0},
		{"stray semicolons", "import a.B;; class A {};", 1},
		{"annotated type without package", "@Deprecated class A {}", 1},
		{"crlf", "package p;\r\nclass A {\r\n  int x;\r\n}\r\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := parseFile(t, tt.input)
			if len(unit.Types) != tt.types {
				t.Errorf("got %d types, want %d", len(unit.Types), tt.types)
			}
		})
	}

	errorTests := []struct {
		name  string
		input string
		line  int
		col   int
	}{
		{"dangling annotation", "@Foo", 1, 5},
		{"dangling annotation newline", "@Foo\n", 2, 1},
		{"dangling annotations after imports", "import a.B;\n@Foo @Bar(1)", 2, 13},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.input))
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("error = %v, want *SyntaxError", err)
			}
			if syntaxErr.Pos != token.Pos(tt.line, tt.col) {
				t.Errorf("error at %s, want %d:%d", syntaxErr.Pos, tt.line, tt.col)
			}
		})
	}
	t.Run("crlf positions", func(t *testing.T) {
		unit := parseFile(t, "package p;\r\nclass A {\r\n  int x;\r\n}\r\n")
		a := unit.Types[0].(*ast.ClassDeclaration)
		checkSpan(t, a, 2, 1, 4, 1)
		checkSpan(t, a.Body.Declarations[0], 3, 3, 3, 8)
	})
}

func TestWithComments(t *testing.T) {
	p := newParser(t, "// a\nclass A { /* b */ }", WithComments())
	if _, err := p.ParseCompilationUnit(); err != nil {
		t.Fatalf("error: %v", err)
	}
	if got := len(p.Comments()); got != 2 {
		t.Errorf("got %d comments, want 2", got)
	}
	if got := len(newParser(t, "// a").Comments()); got != 0 {
		t.Errorf("comments recorded without WithComments: %d", got)
	}
}
