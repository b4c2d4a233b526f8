package core

import (
	"columnstats/stats"

	"github.com/tinylib/msgp/msgp"
)

const summaryFields = 5

// NOTE: Tests are in backing_store_test.go

// SummaryToBytes encodes a summary as a MessagePack array of
// [min, max, mean, variance, n].
func SummaryToBytes(summary *stats.Summary) []byte {
	buf := make([]byte, 0, 1+4*msgp.Float64Size+msgp.IntSize)
	buf = msgp.AppendArrayHeader(buf, summaryFields)
	buf = msgp.AppendFloat64(buf, summary.Min)
	buf = msgp.AppendFloat64(buf, summary.Max)
	buf = msgp.AppendFloat64(buf, summary.Mean)
	buf = msgp.AppendFloat64(buf, summary.Variance)
	buf = msgp.AppendInt(buf, summary.N)
	return buf
}

func BytesToSummary(buf []byte) (*stats.Summary, error) {
	sz, buf, err := msgp.ReadArrayHeaderBytes(buf)
	if err != nil {
		return nil, err
	}
	if sz != summaryFields {
		return nil, msgp.ArrayError{Wanted: summaryFields, Got: sz}
	}

	summary := &stats.Summary{}
	for _, field := range []*float64{
		&summary.Min, &summary.Max, &summary.Mean, &summary.Variance} {
		*field, buf, err = msgp.ReadFloat64Bytes(buf)
		if err != nil {
			return nil, err
		}
	}
	summary.N, _, err = msgp.ReadIntBytes(buf)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
