package column

import (
	"errors"
	"fmt"
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

type number interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type valueArray[T number] interface {
	arrow.Array
	Value(int) T
}

func appendValues[T number](c *FloatColumn, arr valueArray[T]) {
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			c.Append(math.NaN())
			continue
		}
		c.Append(float64(arr.Value(i)))
	}
}

func appendArray(c *FloatColumn, arr arrow.Array) error {
	switch a := arr.(type) {
	case *array.Float64:
		appendValues[float64](c, a)
	case *array.Float32:
		appendValues[float32](c, a)
	case *array.Float16:
		for i := 0; i < a.Len(); i++ {
			if a.IsNull(i) {
				c.Append(math.NaN())
				continue
			}
			c.Append(float64(a.Value(i).Float32()))
		}
	case *array.Int64:
		appendValues[int64](c, a)
	case *array.Int32:
		appendValues[int32](c, a)
	case *array.Int16:
		appendValues[int16](c, a)
	case *array.Int8:
		appendValues[int8](c, a)
	case *array.Uint64:
		appendValues[uint64](c, a)
	case *array.Uint32:
		appendValues[uint32](c, a)
	case *array.Uint16:
		appendValues[uint16](c, a)
	case *array.Uint8:
		appendValues[uint8](c, a)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, arr.DataType())
	}
	return nil
}

// FromArrow converts a numeric Arrow array into a FloatColumn. Nulls become
// NaN.
func FromArrow(name string, arr arrow.Array) (*FloatColumn, error) {
	c := NewFloatColumn(name, arr.Len())
	if err := appendArray(c, arr); err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	return c, nil
}

// FromChunked concatenates every chunk of a numeric chunked array.
func FromChunked(name string, chunked *arrow.Chunked) (*FloatColumn, error) {
	c := NewFloatColumn(name, chunked.Len())
	for _, chunk := range chunked.Chunks() {
		if err := appendArray(c, chunk); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
	}
	return c, nil
}

// FromTable returns one FloatColumn per numeric column of tbl, in schema
// order. Non-numeric columns are skipped.
func FromTable(tbl arrow.Table) ([]*FloatColumn, error) {
	columns := make([]*FloatColumn, 0, tbl.NumCols())
	for i := 0; i < int(tbl.NumCols()); i++ {
		col := tbl.Column(i)
		c, err := FromChunked(col.Name(), col.Data())
		if errors.Is(err, ErrUnsupportedType) {
			continue
		}
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}
