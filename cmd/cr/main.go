// Command cr converts between Gregorian instants and the French Republican
// calendar, and manages the year-start table the conversions rely on.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"
)

const version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr, time.Now).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cr: %v\n", err)
		os.Exit(1)
	}
}
