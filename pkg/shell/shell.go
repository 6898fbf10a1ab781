// The shell is a line-oriented interpreter over named integer linked lists; one command per line, one reply line
// per command, in the spirit of a Redis CLI session:
//
//	> INSERT_END a 1
//	OK
//	> GET a 5
//	(nil)
//	> DELETE_AT a -1
//	ERR invalid position: -1
//
// Empty lines and lines starting with '#' are ignored.

package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var commandsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "shell_commands_total",
	Help: "The total number of commands executed by the list shell",
}, []string{
	"command", // The upper-cased command name.
	"status",  // Either ok or error.
})

// Shell runs list commands read from an input stream.
type Shell struct {
	handler *handler
	prompt  string // Written before reading each line; empty disables it.
}

// New creates a shell with no lists, writing `prompt` before each line it reads.
func New(prompt string) *Shell {
	return &Shell{handler: newHandler(), prompt: prompt}
}

// Run executes the commands from `r` and writes their replies to `w`.
// It returns nil on QUIT or end of input, and the context error if `ctx` is cancelled first.
func (s *Shell) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			if _, err := fmt.Fprint(w, s.prompt); err != nil {
				return fmt.Errorf("failed to write prompt: %w", err)
			}
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil // End of input.
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out := s.execute(line)
		if err := out.writeTo(w); err != nil {
			return fmt.Errorf("failed to write reply: %w", err)
		}
		if out.quit {
			return nil
		}
	}
}

// execute runs a single command `line` and returns its reply.
func (s *Shell) execute(line string) output {
	cmd, ok := parseCommand(line)
	if !ok {
		return writeError(errors.New("empty command"))
	}
	out := s.handler.handle(cmd)
	commandLabel := cmd.name
	if _, known := argCounts[commandLabel]; !known { // Keep the metric cardinality bounded.
		commandLabel = "UNKNOWN"
	}
	commandsMetric.WithLabelValues(commandLabel, out.status()).Inc()
	if out.err != nil {
		slog.Debug("Command failed.", "command", cmd.name, "args", cmd.args, "error", *out.err)
	}
	return out
}
