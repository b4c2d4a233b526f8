package column

import (
	"context"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ReadParquet loads the numeric columns of a Parquet file.
func ReadParquet(ctx context.Context, r parquet.ReaderAtSeeker) ([]*FloatColumn, error) {
	mem := memory.NewGoAllocator()
	tbl, err := pqarrow.ReadTable(ctx, r, parquet.NewReaderProperties(mem),
		pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	defer tbl.Release()

	return FromTable(tbl)
}

func OpenParquet(ctx context.Context, path string) ([]*FloatColumn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer f.Close()

	return ReadParquet(ctx, f)
}
