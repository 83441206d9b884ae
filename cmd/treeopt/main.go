// Command treeopt computes budgeted passive tree allocations for the builds
// of a profile file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/passivetree/internal/app"
	"github.com/katalvlaran/passivetree/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.Code(err))
	}
}

// run encapsulates the program so it can be driven from tests.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	if err := cli.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, shouldExit, err := cli.Parse(args, outW, nil)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, errW, cfg).Run(ctx)
}
