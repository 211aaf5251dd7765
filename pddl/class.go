package pddl

// Class groups a name-keyed set of member functions accessed through
// dotted notation (class.field). The parser accepts a :class declaration
// only in domains that enable :modules.
type Class struct {
	Identifier
	members *NameSet[*Function]
}

// NewClass creates a class with no members.
func NewClass(name string) *Class {
	return &Class{Identifier: NewIdentifier(name), members: NewNameSet[*Function]()}
}

// AddMember registers a member function, failing with DuplicateSymbol if
// already present.
func (c *Class) AddMember(f *Function) error {
	return c.members.Add(f)
}

// Member looks a member function up by name.
func (c *Class) Member(name string) (*Function, error) {
	return c.members.Get(name)
}

// Members returns the class's member functions in unspecified order.
func (c *Class) Members() []*Function {
	return c.members.Iter()
}
