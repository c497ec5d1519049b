package formatter_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	rec := core.NewRecord(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC), core.WarnLevel, "db", "retrying", errors.New("timeout"))

	out, _ := f.Format(rec)
	fmt.Print(string(out))
	// Output:
	// 2026-01-15T12:00:00.000Z [WARN] [db] retrying error=timeout
}
