// Package ast defines the untyped program tree consumed by the semantic
// core: classes, methods, params and expressions as produced by an external
// parser. Nodes carry no type slot of their own; the checker (package sem)
// records each node's type during analysis without mutating these nodes,
// keyed instead by node identity (see sem.Result.NodeTypes).
package ast

// Node is any program-tree node.
type Node interface {
	node()
}

// Expr is an expression node. Statements in the language are expressions:
// an If, an assignment, a return, and a literal are all valid members of a
// statement sequence and all produce a value (possibly Void).
type Expr interface {
	Node
	exprNode()
}

// Stmt is a member of a statement sequence. The language has no separate
// statement grammar, so Stmt is just Expr under another name for call sites
// that want to talk about "a method body" or "a branch" rather than "a
// value-producing node".
type Stmt = Expr

// TypeSpec is a type annotation as written in source, before resolution
// against an environment.
type TypeSpec interface {
	Node
	typeSpecNode()
	String() string
}

// NamedTypeSpec refers to a non-generic class or type parameter by name.
type NamedTypeSpec struct {
	Name string
}

func (*NamedTypeSpec) node()         {}
func (*NamedTypeSpec) typeSpecNode() {}
func (t *NamedTypeSpec) String() string { return t.Name }

// GenericTypeSpec refers to a generic class specialized at the given type
// argument specs, e.g. `Array<Int>`.
type GenericTypeSpec struct {
	Name string
	Args []TypeSpec
}

func (*GenericTypeSpec) node()         {}
func (*GenericTypeSpec) typeSpecNode() {}
func (t *GenericTypeSpec) String() string {
	s := t.Name + "<"
	for i, a := range t.Args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ">"
}

// Param is a method parameter. A single Param within a method's parameter
// list may have IsVararg set, in which case Type must be a GenericTypeSpec
// naming Array<E> for some element spec E.
type Param struct {
	Name     string
	Type     TypeSpec
	IsVararg bool
	// IsIParam marks an initializer parameter ("IParam"): besides binding a
	// local of the same name inside the body, it implicitly declares an
	// instance variable of the same name and type on the enclosing class.
	// Only meaningful on the params of a method named "initialize".
	IsIParam bool
}

func (*Param) node() {}

// IVarDecl is an explicitly declared instance variable (as opposed to one
// implied by an IParam).
type IVarDecl struct {
	Name string
	Type TypeSpec
}

func (*IVarDecl) node() {}

// Method is a method declaration: a class method (lives on the companion
// metaclass) or an instance method, distinguished by where it is stored on
// ClassDecl, not by a field here. A Method named "initialize" and returning
// Void is the class's initializer; its IParams implicitly define ivars.
type Method struct {
	Name       string
	Params     []*Param
	ReturnType TypeSpec
	Body       []Stmt
}

func (*Method) node() {}

// NewMethod constructs a method declaration.
func NewMethod(name string, params []*Param, returnType TypeSpec, body []Stmt) *Method {
	return &Method{Name: name, Params: params, ReturnType: returnType, Body: body}
}

// ClassDecl is a user class declaration. Superclass is "" for the root
// class Object; a class with a non-empty TypeParams list is generic.
type ClassDecl struct {
	Name            string
	Superclass      string
	TypeParams      []string
	IVars           []*IVarDecl
	ClassMethods    []*Method
	InstanceMethods []*Method
}

func (*ClassDecl) node() {}

// IsGeneric reports whether the class declares type parameters.
func (c *ClassDecl) IsGeneric() bool { return len(c.TypeParams) > 0 }

// Program is the root of the tree: every user-declared class plus the
// top-level statement sequence.
type Program struct {
	Classes []*ClassDecl
	Main    []Stmt
}

func (*Program) node() {}

// NewProgram constructs a program from its class declarations and main
// statement sequence.
func NewProgram(classes []*ClassDecl, main []Stmt) *Program {
	return &Program{Classes: classes, Main: main}
}
