package ast

// RecordFieldInit is a single field initializer inside a RecordLiteral,
// e.g. the `height=6` in `Bulk {height=6, weight=200}`.
type RecordFieldInit struct {
	ID   string
	Expr Expression
}

// RecordLiteral constructs a value of the named record type. Fields must
// appear in declaration order; see check.RecordFieldRule.
type RecordLiteral struct {
	TypeID string
	Fields []RecordFieldInit
}

func (*RecordLiteral) expressionNode() {}
