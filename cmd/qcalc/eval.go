package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"qcalc/internal/calc"
)

var errEvaluation = errors.New(calc.ErrorMarker)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION...",
	Short: "Evaluate an expression and print the result",
	Example: `  qcalc eval "2+2"
  qcalc eval --degrees "sin(90)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		out, ok := evaluateLine(env.session, strings.Join(args, " "))
		if !ok {
			return errEvaluation
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// evaluateLine replaces the session input with expr and evaluates it.
// It reports whether the evaluation succeeded.
func evaluateLine(session *calc.Controller, expr string) (string, bool) {
	before := len(session.History())
	session.Dispatch(calc.Clear())
	session.Dispatch(calc.Append(expr))
	st := session.Dispatch(calc.Evaluate())
	return st.Output, len(st.History) > before
}

// runLines evaluates each line of r and writes one output line per input
// line. Lines ":deg", ":rad" and ":history" switch mode or print the
// history instead.
func runLines(r io.Reader, w io.Writer, session *calc.Controller) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":deg":
			session.Dispatch(calc.SetAngleMode(calc.Degrees))
		case ":rad":
			session.Dispatch(calc.SetAngleMode(calc.Radians))
		case ":history":
			session.Dispatch(calc.ViewHistory())
			for _, e := range session.History() {
				fmt.Fprintln(w, e)
			}
		default:
			out, _ := evaluateLine(session, line)
			fmt.Fprintln(w, out)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
