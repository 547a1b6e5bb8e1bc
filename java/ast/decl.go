package ast

type (
	// CompilationUnit is the root of a parsed source file.
	CompilationUnit struct {
		Span
		Package *PackageDeclaration `json:"package,omitempty" yaml:"package,omitempty"`
		Imports []*Import           `json:"imports" yaml:"imports"`
		Types   []TypeDecl          `json:"types" yaml:"types"`
	}

	PackageDeclaration struct {
		Span
		Doc         string         `json:"doc,omitempty" yaml:"doc,omitempty"`
		Annotations []*Annotation  `json:"annotations,omitempty" yaml:"annotations,omitempty"`
		Name        *QualifiedName `json:"name" yaml:"name"`
	}

	// Import is a single-type, on-demand (Wildcard) or static import.
	Import struct {
		Span
		Static   bool           `json:"static,omitempty" yaml:"static,omitempty"`
		Name     *QualifiedName `json:"name" yaml:"name"`
		Wildcard bool           `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
	}

	// Modifiers groups the keyword modifiers and annotations preceding a
	// declaration. Its span runs from the first to the last of them.
	Modifiers struct {
		Span
		Keywords    []*Modifier   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
		Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	}

	Modifier struct {
		Span
		Keyword string `json:"keyword" yaml:"keyword"`
	}

	// Annotation is @Name, @Name(value) or @Name(k = v, ...). Element holds
	// the single unnamed value; Pairs the named ones.
	Annotation struct {
		Span
		Name    *QualifiedName      `json:"name" yaml:"name"`
		Element Node                `json:"element,omitempty" yaml:"element,omitempty"`
		Pairs   []*ElementValuePair `json:"pairs,omitempty" yaml:"pairs,omitempty"`
	}

	// ElementValuePair values are an Expr, an *Annotation or an
	// *ElementArrayValue.
	ElementValuePair struct {
		Span
		Name  *Identifier `json:"name" yaml:"name"`
		Value Node        `json:"value" yaml:"value"`
	}

	ElementArrayValue struct {
		Span
		Values []Node `json:"values" yaml:"values"`
	}

	ClassDeclaration struct {
		Span
		Doc            string           `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers      *Modifiers       `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Name           *Identifier      `json:"name" yaml:"name"`
		TypeParameters *TypeParameters  `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
		Extends        *ReferenceType   `json:"extends,omitempty" yaml:"extends,omitempty"`
		Implements     []*ReferenceType `json:"implements,omitempty" yaml:"implements,omitempty"`
		Body           *ClassBody       `json:"body" yaml:"body"`
	}

	InterfaceDeclaration struct {
		Span
		Doc            string           `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers      *Modifiers       `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Name           *Identifier      `json:"name" yaml:"name"`
		TypeParameters *TypeParameters  `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
		Extends        []*ReferenceType `json:"extends,omitempty" yaml:"extends,omitempty"`
		Body           *ClassBody       `json:"body" yaml:"body"`
	}

	EnumDeclaration struct {
		Span
		Doc        string           `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers  *Modifiers       `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Name       *Identifier      `json:"name" yaml:"name"`
		Implements []*ReferenceType `json:"implements,omitempty" yaml:"implements,omitempty"`
		Body       *EnumBody        `json:"body" yaml:"body"`
	}

	// EnumBody is the constant list followed by optional member declarations
	// after a semicolon.
	EnumBody struct {
		Span
		Constants    []*EnumConstant `json:"constants" yaml:"constants"`
		Declarations []Decl          `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	}

	// EnumConstant Arguments is nil when the constant has no parentheses.
	EnumConstant struct {
		Span
		Doc         string        `json:"doc,omitempty" yaml:"doc,omitempty"`
		Annotations []*Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
		Name        *Identifier   `json:"name" yaml:"name"`
		Arguments   []Expr        `json:"arguments,omitempty" yaml:"arguments,omitempty"`
		Body        *ClassBody    `json:"body,omitempty" yaml:"body,omitempty"`
	}

	// AnnotationDeclaration is @interface Name { ... }.
	AnnotationDeclaration struct {
		Span
		Doc       string      `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers *Modifiers  `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Name      *Identifier `json:"name" yaml:"name"`
		Body      *ClassBody  `json:"body" yaml:"body"`
	}

	// AnnotationMethod is an annotation type element: Type name() [default v];
	AnnotationMethod struct {
		Span
		Doc        string      `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers  *Modifiers  `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Type       Type        `json:"type" yaml:"type"`
		Name       *Identifier `json:"name" yaml:"name"`
		Dimensions int         `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
		Default    Node        `json:"default,omitempty" yaml:"default,omitempty"`
	}

	ClassBody struct {
		Span
		Declarations []Decl `json:"declarations" yaml:"declarations"`
	}

	FieldDeclaration struct {
		Span
		Doc         string                `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers   *Modifiers            `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Type        Type                  `json:"type" yaml:"type"`
		Declarators []*VariableDeclarator `json:"declarators" yaml:"declarators"`
	}

	// MethodDeclaration ReturnType is nil for void. Body is nil for abstract
	// and native methods. Dimensions counts brackets after the parameter list
	// (int f()[]).
	MethodDeclaration struct {
		Span
		Doc            string             `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers      *Modifiers         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		TypeParameters *TypeParameters    `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
		ReturnType     Type               `json:"returnType,omitempty" yaml:"returnType,omitempty"`
		Name           *Identifier        `json:"name" yaml:"name"`
		Parameters     []*FormalParameter `json:"parameters" yaml:"parameters"`
		Dimensions     int                `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
		Throws         []*ReferenceType   `json:"throws,omitempty" yaml:"throws,omitempty"`
		Body           *Block             `json:"body,omitempty" yaml:"body,omitempty"`
	}

	ConstructorDeclaration struct {
		Span
		Doc            string             `json:"doc,omitempty" yaml:"doc,omitempty"`
		Modifiers      *Modifiers         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		TypeParameters *TypeParameters    `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
		Name           *Identifier        `json:"name" yaml:"name"`
		Parameters     []*FormalParameter `json:"parameters" yaml:"parameters"`
		Throws         []*ReferenceType   `json:"throws,omitempty" yaml:"throws,omitempty"`
		Body           *Block             `json:"body" yaml:"body"`
	}

	// Initializer is an instance or static initializer block.
	Initializer struct {
		Span
		Static bool   `json:"static,omitempty" yaml:"static,omitempty"`
		Body   *Block `json:"body" yaml:"body"`
	}

	// FormalParameter is a method, constructor, lambda or enhanced-for
	// parameter. For a varargs parameter Type is the element
	// type and Varargs is set.
	FormalParameter struct {
		Span
		Modifiers *Modifiers  `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
		Type      Type        `json:"type" yaml:"type"`
		Varargs   bool        `json:"varargs,omitempty" yaml:"varargs,omitempty"`
		Name      *Identifier `json:"name" yaml:"name"`
	}

	// InferredParameter is an untyped lambda parameter: x in x -> x + 1.
	InferredParameter struct {
		Span
		Name *Identifier `json:"name" yaml:"name"`
	}

	// VariableDeclarator is name [dims] [= initializer]. The span ends at
	// the initializer when there is one.
	VariableDeclarator struct {
		Span
		Name        *Identifier `json:"name" yaml:"name"`
		Dimensions  int         `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
		Initializer Expr        `json:"initializer,omitempty" yaml:"initializer,omitempty"`
	}
)

func (*CompilationUnit) Kind() NodeKind        { return KindCompilationUnit }
func (*PackageDeclaration) Kind() NodeKind     { return KindPackageDeclaration }
func (*Import) Kind() NodeKind                 { return KindImport }
func (*Modifiers) Kind() NodeKind              { return KindModifiers }
func (*Modifier) Kind() NodeKind               { return KindModifier }
func (*Annotation) Kind() NodeKind             { return KindAnnotation }
func (*ElementValuePair) Kind() NodeKind       { return KindElementValuePair }
func (*ElementArrayValue) Kind() NodeKind      { return KindElementArrayValue }
func (*ClassDeclaration) Kind() NodeKind       { return KindClassDeclaration }
func (*InterfaceDeclaration) Kind() NodeKind   { return KindInterfaceDeclaration }
func (*EnumDeclaration) Kind() NodeKind        { return KindEnumDeclaration }
func (*EnumBody) Kind() NodeKind               { return KindEnumBody }
func (*EnumConstant) Kind() NodeKind           { return KindEnumConstant }
func (*AnnotationDeclaration) Kind() NodeKind  { return KindAnnotationDeclaration }
func (*AnnotationMethod) Kind() NodeKind       { return KindAnnotationMethod }
func (*ClassBody) Kind() NodeKind              { return KindClassBody }
func (*FieldDeclaration) Kind() NodeKind       { return KindFieldDeclaration }
func (*MethodDeclaration) Kind() NodeKind      { return KindMethodDeclaration }
func (*ConstructorDeclaration) Kind() NodeKind { return KindConstructorDeclaration }
func (*Initializer) Kind() NodeKind            { return KindInitializer }
func (*FormalParameter) Kind() NodeKind        { return KindFormalParameter }
func (*InferredParameter) Kind() NodeKind      { return KindInferredParameter }
func (*VariableDeclarator) Kind() NodeKind     { return KindVariableDeclarator }

func (*ClassDeclaration) declNode()       {}
func (*InterfaceDeclaration) declNode()   {}
func (*EnumDeclaration) declNode()        {}
func (*AnnotationDeclaration) declNode()  {}
func (*AnnotationMethod) declNode()       {}
func (*FieldDeclaration) declNode()       {}
func (*MethodDeclaration) declNode()      {}
func (*ConstructorDeclaration) declNode() {}
func (*Initializer) declNode()            {}

func (d *ClassDeclaration) TypeName() string      { return d.Name.String() }
func (d *InterfaceDeclaration) TypeName() string  { return d.Name.String() }
func (d *EnumDeclaration) TypeName() string       { return d.Name.String() }
func (d *AnnotationDeclaration) TypeName() string { return d.Name.String() }

// Local class, interface and enum declarations.
func (*ClassDeclaration) stmtNode()     {}
func (*InterfaceDeclaration) stmtNode() {}
func (*EnumDeclaration) stmtNode()      {}

// Has reports whether keyword is among the modifiers. A nil Modifiers has
// no keywords.
func (m *Modifiers) Has(keyword string) bool {
	if m == nil {
		return false
	}
	for _, k := range m.Keywords {
		if k.Keyword == keyword {
			return true
		}
	}
	return false
}
