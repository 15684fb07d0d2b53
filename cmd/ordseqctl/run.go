package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/noath/ordseq/command"
	"github.com/noath/ordseq/treap"
)

var (
	runSeed   int64
	runPretty bool
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Run a command stream from FILE or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "seed for the treap's priority RNG (reproducible runs)")
	runCmd.Flags().BoolVar(&runPretty, "pretty", false, "print the final sequence bracketed and comma-separated when stdout is a terminal")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	var logger logr.Logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithValues("run_id", uuid.NewString())

	p, err := command.Parse(in)
	if err != nil {
		return fmt.Errorf("ordseqctl: %w", err)
	}

	start := time.Now()
	logger.Info("run starting", "initial_len", len(p.Initial), "command_count", len(p.Commands))

	r := command.New(treap.WithSeed(runSeed))
	res, err := r.Run(cmd.Context(), p)
	if err != nil {
		logger.Error(err, "run failed")
		return fmt.Errorf("ordseqctl: %w", err)
	}

	logger.Info("run finished", "duration", time.Since(start), "sum_count", len(res.Sums))

	writeResult(cmd.OutOrStdout(), res, shouldPretty())
	return nil
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("ordseqctl: %w", err)
	}
	return f, nil
}

// shouldPretty honors --pretty only when stdout is an interactive terminal,
// matching common CLI convention: redirected output always gets the plain,
// script-friendly form regardless of the flag.
func shouldPretty() bool {
	return runPretty && isatty.IsTerminal(os.Stdout.Fd())
}

func writeResult(w io.Writer, res *command.Result, pretty bool) {
	for _, s := range res.Sums {
		fmt.Fprintln(w, s)
	}
	if pretty {
		fmt.Fprintln(w, "["+joinInt64(res.Final, ", ")+"]")
		return
	}
	fmt.Fprintln(w, joinInt64(res.Final, " "))
}

func joinInt64(vs []int64, sep string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}
