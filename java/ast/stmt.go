package ast

type (
	Block struct {
		Span
		Statements []Stmt `json:"statements" yaml:"statements"`
	}

	// LocalVariableDeclaration declares one or more variables of a shared
	// base type. As a statement its span includes the terminating semicolon;
	// inside a for header it ends at the last declarator.
	LocalVariableDeclaration struct {
		Span
		Modifiers   *Modifiers            `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Type        Type                  `json:"type" yaml:"type"`
		Declarators []*VariableDeclarator `json:"declarators" yaml:"declarators"`
	}

	EmptyStatement struct {
		Span
	}

	ExpressionStatement struct {
		Span
		Expr Expr `json:"expr" yaml:"expr"`
	}

	IfStatement struct {
		Span
		Condition Expr `json:"condition" yaml:"condition"`
		Then      Stmt `json:"then" yaml:"then"`
		Else      Stmt `json:"else,omitempty" yaml:"else,omitempty"`
	}

	WhileStatement struct {
		Span
		Condition Expr `json:"condition" yaml:"condition"`
		Body      Stmt `json:"body" yaml:"body"`
	}

	DoStatement struct {
		Span
		Body      Stmt `json:"body" yaml:"body"`
		Condition Expr `json:"condition" yaml:"condition"`
	}

	// ForStatement Init holds either a single *LocalVariableDeclaration or a
	// list of expressions.
	ForStatement struct {
		Span
		Init      []Node `json:"init,omitempty" yaml:"init,omitempty"`
		Condition Expr   `json:"condition,omitempty" yaml:"condition,omitempty"`
		Update    []Expr `json:"update,omitempty" yaml:"update,omitempty"`
		Body      Stmt   `json:"body" yaml:"body"`
	}

	EnhancedForStatement struct {
		Span
		Variable *FormalParameter `json:"variable" yaml:"variable"`
		Iterable Expr             `json:"iterable" yaml:"iterable"`
		Body     Stmt             `json:"body" yaml:"body"`
	}

	LabeledStatement struct {
		Span
		Label *Identifier `json:"label" yaml:"label"`
		Body  Stmt        `json:"body" yaml:"body"`
	}

	SwitchStatement struct {
		Span
		Expr  Expr          `json:"expr" yaml:"expr"`
		Cases []*SwitchCase `json:"cases" yaml:"cases"`
	}

	// SwitchCase is a group of consecutive labels and the statements that
	// follow them. Default is set when one of the labels is default.
	SwitchCase struct {
		Span
		Labels  []Expr `json:"labels,omitempty" yaml:"labels,omitempty"`
		Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
		Body    []Stmt `json:"body" yaml:"body"`
	}

	ReturnStatement struct {
		Span
		Expr Expr `json:"expr,omitempty" yaml:"expr,omitempty"`
	}

	BreakStatement struct {
		Span
		Label *Identifier `json:"label,omitempty" yaml:"label,omitempty"`
	}

	ContinueStatement struct {
		Span
		Label *Identifier `json:"label,omitempty" yaml:"label,omitempty"`
	}

	ThrowStatement struct {
		Span
		Expr Expr `json:"expr" yaml:"expr"`
	}

	SynchronizedStatement struct {
		Span
		Lock Expr   `json:"lock" yaml:"lock"`
		Body *Block `json:"body" yaml:"body"`
	}

	TryStatement struct {
		Span
		Resources []*TryResource `json:"resources,omitempty" yaml:"resources,omitempty"`
		Body      *Block         `json:"body" yaml:"body"`
		Catches   []*CatchClause `json:"catches,omitempty" yaml:"catches,omitempty"`
		Finally   *Block         `json:"finally,omitempty" yaml:"finally,omitempty"`
	}

	// TryResource is a declared resource (Type name = value) or, when Type
	// is nil, a reference to an effectively final variable or field.
	TryResource struct {
		Span
		Modifiers *Modifiers  `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Type      Type        `json:"type,omitempty" yaml:"type,omitempty"`
		Name      *Identifier `json:"name,omitempty" yaml:"name,omitempty"`
		Value     Expr        `json:"value" yaml:"value"`
	}

	CatchClause struct {
		Span
		Parameter *CatchClauseParameter `json:"parameter" yaml:"parameter"`
		Body      *Block                `json:"body" yaml:"body"`
	}

	// CatchClauseParameter Types has more than one entry for a multi-catch.
	CatchClauseParameter struct {
		Span
		Modifiers *Modifiers  `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Types     []Type      `json:"types" yaml:"types"`
		Name      *Identifier `json:"name" yaml:"name"`
	}

	AssertStatement struct {
		Span
		Condition Expr `json:"condition" yaml:"condition"`
		Message   Expr `json:"message,omitempty" yaml:"message,omitempty"`
	}
)

func (*Block) Kind() NodeKind                    { return KindBlock }
func (*LocalVariableDeclaration) Kind() NodeKind { return KindLocalVariableDeclaration }
func (*EmptyStatement) Kind() NodeKind           { return KindEmptyStatement }
func (*ExpressionStatement) Kind() NodeKind      { return KindExpressionStatement }
func (*IfStatement) Kind() NodeKind              { return KindIfStatement }
func (*WhileStatement) Kind() NodeKind           { return KindWhileStatement }
func (*DoStatement) Kind() NodeKind              { return KindDoStatement }
func (*ForStatement) Kind() NodeKind             { return KindForStatement }
func (*EnhancedForStatement) Kind() NodeKind     { return KindEnhancedForStatement }
func (*LabeledStatement) Kind() NodeKind         { return KindLabeledStatement }
func (*SwitchStatement) Kind() NodeKind          { return KindSwitchStatement }
func (*SwitchCase) Kind() NodeKind               { return KindSwitchCase }
func (*ReturnStatement) Kind() NodeKind          { return KindReturnStatement }
func (*BreakStatement) Kind() NodeKind           { return KindBreakStatement }
func (*ContinueStatement) Kind() NodeKind        { return KindContinueStatement }
func (*ThrowStatement) Kind() NodeKind           { return KindThrowStatement }
func (*SynchronizedStatement) Kind() NodeKind    { return KindSynchronizedStatement }
func (*TryStatement) Kind() NodeKind             { return KindTryStatement }
func (*TryResource) Kind() NodeKind              { return KindTryResource }
func (*CatchClause) Kind() NodeKind              { return KindCatchClause }
func (*CatchClauseParameter) Kind() NodeKind     { return KindCatchClauseParameter }
func (*AssertStatement) Kind() NodeKind          { return KindAssertStatement }

func (*Block) stmtNode()                    {}
func (*LocalVariableDeclaration) stmtNode() {}
func (*EmptyStatement) stmtNode()           {}
func (*ExpressionStatement) stmtNode()      {}
func (*IfStatement) stmtNode()              {}
func (*WhileStatement) stmtNode()           {}
func (*DoStatement) stmtNode()              {}
func (*ForStatement) stmtNode()             {}
func (*EnhancedForStatement) stmtNode()     {}
func (*LabeledStatement) stmtNode()         {}
func (*SwitchStatement) stmtNode()          {}
func (*ReturnStatement) stmtNode()          {}
func (*BreakStatement) stmtNode()           {}
func (*ContinueStatement) stmtNode()        {}
func (*ThrowStatement) stmtNode()           {}
func (*SynchronizedStatement) stmtNode()    {}
func (*TryStatement) stmtNode()             {}
func (*AssertStatement) stmtNode()          {}
