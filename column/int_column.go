package column

// IntColumn is a named, growable column of int64 values. It has no missing
// value sentinel; statistics are computed on its float64 widening.
type IntColumn struct {
	name string
	data []int64
}

func NewIntColumn(name string, capacity int) *IntColumn {
	return &IntColumn{
		name: name,
		data: make([]int64, 0, capacity),
	}
}

func IntColumnOf(name string, values []int64) *IntColumn {
	data := make([]int64, len(values))
	copy(data, values)
	return &IntColumn{name: name, data: data}
}

func (c *IntColumn) Name() string {
	return c.name
}

func (c *IntColumn) Append(value int64) {
	c.data = append(c.data, value)
}

func (c *IntColumn) Size() int {
	return len(c.data)
}

func (c *IntColumn) Values() []int64 {
	return c.data
}

// ToFloatArray widens every value to float64. Magnitudes above 2^53 lose
// precision.
func (c *IntColumn) ToFloatArray() []float64 {
	floats := make([]float64, len(c.data))
	for i, value := range c.data {
		floats[i] = float64(value)
	}
	return floats
}

func (c *IntColumn) ToFloatColumn() *FloatColumn {
	return &FloatColumn{name: c.name, data: c.ToFloatArray()}
}
