// Reads an array of values, bubble sorts it and prints the array before and after sorting.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nobletooth/primer/pkg/config"
	"github.com/nobletooth/primer/pkg/utils"
)

var (
	printVersion = flag.Bool("print_version", false, "Print the version and exit.")
	input        = flag.String("input", "",
		"Values to sort inside '[]', e.g. [5, 3, 1]. Read from stdin when empty.")
	descending = flag.Bool("descending", false, "Sort in descending order.")
)

// readInput returns the --input flag, or prompts for a line on `stdin` if the flag is empty.
func readInput(stdin io.Reader, stdout io.Writer) (string, error) {
	if *input != "" {
		return *input, nil
	}
	if _, err := fmt.Fprint(stdout, "Enter values inside '[]' : "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func run(stdin io.Reader, stdout io.Writer) error {
	text, err := readInput(stdin, stdout)
	if err != nil {
		return err
	}
	seq, err := parseSequence(text)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(stdout, "Original array:", seq); err != nil {
		return err
	}
	seq.sort(*descending)
	_, err = fmt.Fprintln(stdout, "Sorted array:", seq)
	return err
}

func main() {
	config.InitFlags()
	utils.InitLogging()

	if *printVersion {
		utils.LogBuildInfo("bubblesort")
		return
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		slog.Error("Bubble sort failed.", "error", err)
		os.Exit(1)
	}
}
