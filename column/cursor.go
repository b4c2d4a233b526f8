// Package column holds the numeric column types the statistics engine reads
// and the adapters that build them from Arrow and Parquet data.
package column

import "errors"

var (
	// ErrUnsupportedType is returned when an Arrow array is not numeric.
	ErrUnsupportedType = errors.New("unsupported column type")
)

// Cursor is a sequential, resettable view over a fixed-size numeric column.
//
// After Reset, a full HasNext/Next traversal yields exactly Size values in
// their original order. FirstElement does not move the cursor.
type Cursor interface {
	Size() int
	HasNext() bool
	Next() float64
	Reset()
	FirstElement() float64
}

// FloatConvertible is implemented by columns that can be widened into a
// FloatColumn.
type FloatConvertible interface {
	ToFloatColumn() *FloatColumn
}
