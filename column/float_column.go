package column

import "math"

// FloatColumn is a named, growable column of float64 values. NaN marks a
// missing value. A FloatColumn carries its own cursor, so it must not be
// traversed from more than one goroutine at a time.
type FloatColumn struct {
	name string
	data []float64
	pos  int
}

func NewFloatColumn(name string, capacity int) *FloatColumn {
	return &FloatColumn{
		name: name,
		data: make([]float64, 0, capacity),
	}
}

// FloatColumnOf copies values into a new column.
func FloatColumnOf(name string, values []float64) *FloatColumn {
	data := make([]float64, len(values))
	copy(data, values)
	return &FloatColumn{name: name, data: data}
}

func (c *FloatColumn) Name() string {
	return c.name
}

func (c *FloatColumn) Append(value float64) {
	c.data = append(c.data, value)
}

func (c *FloatColumn) Get(i int) float64 {
	return c.data[i]
}

// Values returns the backing slice. Callers must not modify it.
func (c *FloatColumn) Values() []float64 {
	return c.data
}

func (c *FloatColumn) Size() int {
	return len(c.data)
}

func (c *FloatColumn) HasNext() bool {
	return c.pos < len(c.data)
}

func (c *FloatColumn) Next() float64 {
	value := c.data[c.pos]
	c.pos++
	return value
}

func (c *FloatColumn) Reset() {
	c.pos = 0
}

// FirstElement returns the value at position 0, or NaN for an empty column.
func (c *FloatColumn) FirstElement() float64 {
	if len(c.data) == 0 {
		return math.NaN()
	}
	return c.data[0]
}

func (c *FloatColumn) ToFloatColumn() *FloatColumn {
	return c
}
