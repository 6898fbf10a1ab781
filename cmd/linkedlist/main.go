// Runs an interactive shell over named integer linked lists; see pkg/shell for the command set.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/nobletooth/primer/pkg/config"
	"github.com/nobletooth/primer/pkg/shell"
	"github.com/nobletooth/primer/pkg/utils"
)

var (
	printVersion = flag.Bool("print_version", false, "Print the version and exit.")
	script       = flag.String("script", "", "File to read commands from; stdin is used when empty.")
	prompt       = flag.String("prompt", "> ", "Prompt written before each command; ignored when running a script.")
)

// run executes the shell on the --script file or on `stdin`.
func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	commands, shellPrompt := stdin, *prompt
	if *script != "" {
		scriptFile, err := os.Open(*script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer func() { _ = scriptFile.Close() }()
		commands, shellPrompt = scriptFile, ""
	}
	return shell.New(shellPrompt).Run(ctx, commands, stdout)
}

func main() {
	config.InitFlags()
	utils.InitLogging()

	if *printVersion {
		utils.LogBuildInfo("linkedlist")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("List shell stopped.", "err", err)
		os.Exit(1)
	}
}
