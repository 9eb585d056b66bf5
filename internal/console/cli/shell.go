package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var errUnterminatedQuote = errors.New("cli: unterminated quote")

// shellCommand reads command lines from stdin and runs them against the
// same session until EOF or "exit". A session started with login inside the
// shell, mock logins included, stays alive for the following commands.
func (r *Runner) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "shell",
		Short:       "Run commands interactively in one session",
		Args:        r.exactArgs(),
		Annotations: map[string]string{annotBoot: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			for {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				fmt.Fprint(r.Stderr, Program+"> ")
				line, readErr := r.in.ReadString('\n')

				fields, err := splitArgs(line)
				switch {
				case err != nil:
					fmt.Fprintln(r.Stderr, Notice(err))
				case len(fields) == 0:
				case fields[0] == "exit" || fields[0] == "quit":
					return nil
				case fields[0] == "shell":
					fmt.Fprintln(r.Stderr, "already in the shell")
				default:
					r.exec(ctx, fields, false)
				}

				if readErr != nil {
					fmt.Fprintln(r.Stderr)
					return nil
				}
			}
		},
	}
}

// splitArgs splits a command line on whitespace. Single and double quotes
// group words; there are no escapes.
func splitArgs(line string) ([]string, error) {
	var (
		out   []string
		cur   strings.Builder
		quote rune
		inArg bool
	)
	for _, c := range line {
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
				continue
			}
			cur.WriteRune(c)
		case c == '"' || c == '\'':
			quote = c
			inArg = true
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			if inArg {
				out = append(out, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(c)
			inArg = true
		}
	}
	if quote != 0 {
		return nil, errUnterminatedQuote
	}
	if inArg {
		out = append(out, cur.String())
	}
	return out, nil
}
