package ast

import "sort"

// A Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the children of node
// with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

func walkList[N Node](v Visitor, list []N) {
	for _, n := range list {
		Walk(v, n)
	}
}

// Walk traverses the tree rooted at node in depth-first order, visiting
// children in source order. node must not be nil.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Identifier, *Modifier, *PrimitiveType, *Literal, *VoidClassReference,
		*EmptyStatement:
		// leaves

	case *QualifiedName:
		walkList(v, n.Parts)

	// Compilation unit
	case *CompilationUnit:
		if n.Package != nil {
			Walk(v, n.Package)
		}
		walkList(v, n.Imports)
		walkList(v, n.Types)

	case *PackageDeclaration:
		walkList(v, n.Annotations)
		Walk(v, n.Name)

	case *Import:
		Walk(v, n.Name)

	// Modifiers and annotations
	case *Modifiers:
		walkModifiers(v, n)

	case *Annotation:
		Walk(v, n.Name)
		if n.Element != nil {
			Walk(v, n.Element)
		}
		walkList(v, n.Pairs)

	case *ElementValuePair:
		Walk(v, n.Name)
		Walk(v, n.Value)

	case *ElementArrayValue:
		walkList(v, n.Values)

	// Type declarations
	case *ClassDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Name)
		if n.TypeParameters != nil {
			Walk(v, n.TypeParameters)
		}
		if n.Extends != nil {
			Walk(v, n.Extends)
		}
		walkList(v, n.Implements)
		Walk(v, n.Body)

	case *InterfaceDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Name)
		if n.TypeParameters != nil {
			Walk(v, n.TypeParameters)
		}
		walkList(v, n.Extends)
		Walk(v, n.Body)

	case *EnumDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Name)
		walkList(v, n.Implements)
		Walk(v, n.Body)

	case *EnumBody:
		walkList(v, n.Constants)
		walkList(v, n.Declarations)

	case *EnumConstant:
		walkList(v, n.Annotations)
		Walk(v, n.Name)
		walkList(v, n.Arguments)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *AnnotationDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Name)
		Walk(v, n.Body)

	case *AnnotationMethod:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Type)
		Walk(v, n.Name)
		if n.Default != nil {
			Walk(v, n.Default)
		}

	case *ClassBody:
		walkList(v, n.Declarations)

	// Members
	case *FieldDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Type)
		walkList(v, n.Declarators)

	case *MethodDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		if n.TypeParameters != nil {
			Walk(v, n.TypeParameters)
		}
		if n.ReturnType != nil {
			Walk(v, n.ReturnType)
		}
		Walk(v, n.Name)
		walkList(v, n.Parameters)
		walkList(v, n.Throws)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *ConstructorDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		if n.TypeParameters != nil {
			Walk(v, n.TypeParameters)
		}
		Walk(v, n.Name)
		walkList(v, n.Parameters)
		walkList(v, n.Throws)
		Walk(v, n.Body)

	case *Initializer:
		Walk(v, n.Body)

	case *FormalParameter:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Type)
		Walk(v, n.Name)

	case *InferredParameter:
		Walk(v, n.Name)

	case *VariableDeclarator:
		Walk(v, n.Name)
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}

	// Types
	case *ReferenceType:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}
		Walk(v, n.Name)
		if n.Arguments != nil {
			Walk(v, n.Arguments)
		}

	case *ArrayType:
		Walk(v, n.Element)

	case *Wildcard:
		if n.Bound != nil {
			Walk(v, n.Bound)
		}

	case *TypeArguments:
		walkList(v, n.List)

	case *TypeParameter:
		Walk(v, n.Name)
		walkList(v, n.Bounds)

	case *TypeParameters:
		walkList(v, n.List)

	// Statements
	case *Block:
		walkList(v, n.Statements)

	case *LocalVariableDeclaration:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		Walk(v, n.Type)
		walkList(v, n.Declarators)

	case *ExpressionStatement:
		Walk(v, n.Expr)

	case *IfStatement:
		Walk(v, n.Condition)
		Walk(v, n.Then)
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *WhileStatement:
		Walk(v, n.Condition)
		Walk(v, n.Body)

	case *DoStatement:
		Walk(v, n.Body)
		Walk(v, n.Condition)

	case *ForStatement:
		walkList(v, n.Init)
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
		walkList(v, n.Update)
		Walk(v, n.Body)

	case *EnhancedForStatement:
		Walk(v, n.Variable)
		Walk(v, n.Iterable)
		Walk(v, n.Body)

	case *LabeledStatement:
		Walk(v, n.Label)
		Walk(v, n.Body)

	case *SwitchStatement:
		Walk(v, n.Expr)
		walkList(v, n.Cases)

	case *SwitchCase:
		walkList(v, n.Labels)
		walkList(v, n.Body)

	case *ReturnStatement:
		if n.Expr != nil {
			Walk(v, n.Expr)
		}

	case *BreakStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}

	case *ContinueStatement:
		if n.Label != nil {
			Walk(v, n.Label)
		}

	case *ThrowStatement:
		Walk(v, n.Expr)

	case *SynchronizedStatement:
		Walk(v, n.Lock)
		Walk(v, n.Body)

	case *TryStatement:
		walkList(v, n.Resources)
		Walk(v, n.Body)
		walkList(v, n.Catches)
		if n.Finally != nil {
			Walk(v, n.Finally)
		}

	case *TryResource:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		if n.Type != nil {
			Walk(v, n.Type)
		}
		if n.Name != nil {
			Walk(v, n.Name)
		}
		Walk(v, n.Value)

	case *CatchClause:
		Walk(v, n.Parameter)
		Walk(v, n.Body)

	case *CatchClauseParameter:
		if n.Modifiers != nil {
			Walk(v, n.Modifiers)
		}
		walkList(v, n.Types)
		Walk(v, n.Name)

	case *AssertStatement:
		Walk(v, n.Condition)
		if n.Message != nil {
			Walk(v, n.Message)
		}

	// Expressions
	case *This:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}

	case *Super:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}

	case *MemberReference:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}
		Walk(v, n.Member)

	case *MethodInvocation:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}
		if n.TypeArguments != nil {
			Walk(v, n.TypeArguments)
		}
		Walk(v, n.Member)
		walkList(v, n.Arguments)

	case *ExplicitConstructorInvocation:
		if n.Qualifier != nil {
			Walk(v, n.Qualifier)
		}
		if n.TypeArguments != nil {
			Walk(v, n.TypeArguments)
		}
		walkList(v, n.Arguments)

	case *ClassCreator:
		if n.Outer != nil {
			Walk(v, n.Outer)
		}
		if n.TypeArguments != nil {
			Walk(v, n.TypeArguments)
		}
		Walk(v, n.Type)
		walkList(v, n.Arguments)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *ArrayCreator:
		Walk(v, n.Type)
		for _, dim := range n.Dimensions {
			if dim != nil {
				Walk(v, dim)
			}
		}
		if n.Initializer != nil {
			Walk(v, n.Initializer)
		}

	case *ArrayInitializer:
		walkList(v, n.Initializers)

	case *ArrayAccess:
		Walk(v, n.Array)
		Walk(v, n.Index)

	case *BinaryOperation:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *InstanceOf:
		Walk(v, n.Expr)
		Walk(v, n.Type)

	case *UnaryOperation:
		Walk(v, n.Operand)

	case *PostfixOperation:
		Walk(v, n.Operand)

	case *Cast:
		Walk(v, n.Type)
		walkList(v, n.Bounds)
		Walk(v, n.Expr)

	case *Assignment:
		Walk(v, n.Target)
		Walk(v, n.Value)

	case *Ternary:
		Walk(v, n.Condition)
		Walk(v, n.IfTrue)
		Walk(v, n.IfFalse)

	case *Lambda:
		walkList(v, n.Parameters)
		Walk(v, n.Body)

	case *MethodReference:
		Walk(v, n.Target)
		if n.TypeArguments != nil {
			Walk(v, n.TypeArguments)
		}
		Walk(v, n.Method)

	case *ClassReference:
		Walk(v, n.Type)

	default:
		panic("ast.Walk: unexpected node type " + node.Kind().String())
	}

	v.Visit(nil)
}

// walkModifiers visits keywords and annotations interleaved as written.
func walkModifiers(v Visitor, m *Modifiers) {
	nodes := make([]Node, 0, len(m.Keywords)+len(m.Annotations))
	for _, k := range m.Keywords {
		nodes = append(nodes, k)
	}
	for _, a := range m.Annotations {
		nodes = append(nodes, a)
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Pos().Before(nodes[j].Pos())
	})
	walkList(v, nodes)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node); if f returns true, Inspect invokes f recursively for each child
// of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
