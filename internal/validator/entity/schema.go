package entity

// ColumnType is the declared type a column value must be castable to.
type ColumnType int

const (
	ColumnString ColumnType = iota
	ColumnInt64
	ColumnFloat64
)

func (t ColumnType) String() string {
	switch t {
	case ColumnInt64:
		return "int64"
	case ColumnFloat64:
		return "float64"
	default:
		return "string"
	}
}

type Column struct {
	Name string
	Type ColumnType
}

// Schema lists the declared columns. Columns missing from a file are not an
// error and columns not listed here are ignored.
type Schema []Column

// DefaultSchema is id:int64, name:string, amount:float64.
func DefaultSchema() Schema {
	return Schema{
		{Name: "id", Type: ColumnInt64},
		{Name: "name", Type: ColumnString},
		{Name: "amount", Type: ColumnFloat64},
	}
}
