package ast

// TypeAlias names another declared type (or a reserved primitive, "int"
// or "string"). lookup_unaliased_type follows chains of these.
type TypeAlias struct {
	ID string
}

func (*TypeAlias) typeNode() {}

// RecordType is an ordered sequence of named, typed fields.
type RecordType struct {
	Fields []*TypeField
}

func (*RecordType) typeNode() {}

// ArrayType names the type-id of the array's elements.
type ArrayType struct {
	ElementTypeID string
}

func (*ArrayType) typeNode() {}
