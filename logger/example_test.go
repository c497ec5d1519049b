package logger_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/nlog/core"
	"github.com/philipp01105/nlog/formatter"
	"github.com/philipp01105/nlog/handler"
	"github.com/philipp01105/nlog/logger"
)

// Use the process default registry for quick, no-setup logging.
func Example() {
	log := logger.MustGet("app")
	log.Info("application started")
}

// Build a registry with its own handlers and per-logger thresholds.
func ExampleNew() {
	h := handler.NewWriterHandler(handler.WriterConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			TimestampFormat: "-",
		}),
	})
	reg, err := logger.New(
		logger.WithHandlers(h),
		logger.WithLevels(map[string]core.Level{"db": core.WarnLevel}),
	)
	if err != nil {
		panic(err)
	}

	db := reg.MustGet("db")
	db.Info("connected")
	db.Warn("slow query")
	// Output:
	// - [WARN] [db] slow query
}

// Find distinguishes a strict lookup from an optional one.
func ExampleRegistry_Find() {
	reg, _ := logger.New(logger.WithHandlers())

	l, err := reg.Find("ghost", false)
	fmt.Println(l == nil, err)

	_, err = reg.Find("ghost", true)
	fmt.Println(err)
	// Output:
	// true <nil>
	// unknown logger: "ghost"
}
