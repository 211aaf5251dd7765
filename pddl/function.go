package pddl

// Function is a symbol with an ordered, optionally typed parameter list,
// like Predicate, but denotes a value (numeric by default, or object-typed
// when :object-fluents / :typing make that meaningful) rather than a
// truth value.
type Function struct {
	Identifier
	parameters *Sequence[*Variable]
	returnType *Type // nil means numeric (the PDDL default)
}

// NewFunction creates a numeric-valued function with no parameters.
func NewFunction(name string) *Function {
	return &Function{Identifier: NewIdentifier(name), parameters: NewSequence[*Variable]()}
}

// AddParameter appends a parameter to the function's ordered list.
func (f *Function) AddParameter(v *Variable) {
	f.parameters.Append(v)
}

// Parameters returns the ordered parameter list.
func (f *Function) Parameters() []*Variable {
	return f.parameters.Iter()
}

// Arity returns the number of parameters.
func (f *Function) Arity() int {
	return f.parameters.Len()
}

// SetReturnType records an object-fluent return type; absent, the
// function is numeric.
func (f *Function) SetReturnType(t *Type) {
	f.returnType = t
}

// ReturnType returns the declared object-fluent return type, or nil if
// the function is numeric.
func (f *Function) ReturnType() *Type {
	return f.returnType
}

// IsNumeric reports whether the function yields a number rather than an
// object.
func (f *Function) IsNumeric() bool {
	return f.returnType == nil
}

func (f *Function) String() string {
	return printTypedParamList(f.Name(), f.parameters.Iter())
}
