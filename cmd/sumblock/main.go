// Command sumblock runs add/subtract/sum block scenarios.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/sumblock/sumblock/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cmd.Execute(ctx)

	stop()
	atexit.Exit(code)
}
