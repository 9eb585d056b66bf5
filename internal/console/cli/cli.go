// Package cli is the operator command surface of the console. Each command
// is one view of the admin API: it boots the session, calls the client and
// prints a table or a one-line result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aussiebroadwan/riskconsole/internal/console/session"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// Program is the name used in usage and hints.
const Program = "riskconsole"

// errUsage marks a malformed command line. The usage has already been
// printed when it is returned.
var errUsage = errors.New("cli: usage")

// Annotations read by the root pre-run hook. They apply to a command and
// everything below it.
const (
	annotBoot    = "riskconsole/boot"
	annotSession = "riskconsole/session"
)

// Runner executes console commands against one client and session.
type Runner struct {
	Client  *consoleapi.Client
	Session *session.Provider

	// Boot restores the session before a command runs. Defaults to
	// Session.Boot.
	Boot func(ctx context.Context) session.Snapshot

	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Now      func() time.Time
	Location *time.Location

	in *bufio.Reader
}

func (r *Runner) defaults() {
	if r.Boot == nil {
		r.Boot = r.Session.Boot
	}
	if r.Stdin == nil {
		r.Stdin = os.Stdin
	}
	if r.Stdout == nil {
		r.Stdout = os.Stdout
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.Location == nil {
		r.Location = time.Local
	}
	if r.in == nil {
		r.in = bufio.NewReader(r.Stdin)
	}
}

// Run executes one command line and returns the process exit status.
func (r *Runner) Run(ctx context.Context, args []string) int {
	r.defaults()
	return r.exec(ctx, args, true)
}

// exec runs one command line on a fresh command tree. boot is false inside
// the shell, where the session lives for the whole loop.
func (r *Runner) exec(ctx context.Context, args []string, boot bool) int {
	root := r.rootCommand(boot)
	// cobra falls back to os.Args for nil.
	root.SetArgs(append([]string{}, args...))

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintln(r.Stderr, Notice(err))
		return 1
	}
}

func (r *Runner) rootCommand(boot bool) *cobra.Command {
	root := &cobra.Command{
		Use:   Program,
		Short: "Operator console for the content risk admin API",
		Long: Program + " manages apps, channels, name lists and their entries,\n" +
			"browses risk logs and runs text moderation checks.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: r.unknown,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if boot && annotated(cmd, annotBoot) {
				r.Boot(cmd.Context())
			}
			if annotated(cmd, annotSession) {
				return r.requireSession()
			}
			return nil
		},
	}
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return r.usageError(cmd, err)
	})

	root.AddCommand(
		r.loginCommand(),
		r.registerCommand(),
		r.logoutCommand(),
		r.whoamiCommand(),
		r.appsCommand(),
		r.channelsCommand(),
		r.listsCommand(),
		r.detailsCommand(),
		r.logsCommand(),
		r.checkCommand(),
		r.shellCommand(),
	)
	return root
}

// group is a command that only holds subcommands. The session is required
// for all of them.
func (r *Runner) group(use, short string, subs ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:         use,
		Short:       short,
		Args:        cobra.ArbitraryArgs,
		Annotations: sessionAnnotations(),
		RunE:        r.unknown,
	}
	cmd.AddCommand(subs...)
	return cmd
}

// unknown handles a command line that names no runnable command.
func (r *Runner) unknown(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintf(r.Stderr, "unknown command %q for %q\n\n", args[0], cmd.CommandPath())
	}
	fmt.Fprint(r.Stderr, cmd.UsageString())
	return errUsage
}

// usageError prints err with the command's usage.
func (r *Runner) usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(r.Stderr, "%s\n\n%s", err, cmd.UsageString())
	return fmt.Errorf("%w: %w", errUsage, err)
}

// exactArgs requires exactly the named positional arguments.
func (r *Runner) exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(names) == 0 && len(args) > 0:
			return r.usageError(cmd, fmt.Errorf("unexpected argument %q", args[0]))
		case len(args) != len(names):
			return r.usageError(cmd, fmt.Errorf("want <%s>, got %d argument(s)", strings.Join(names, "> <"), len(args)))
		}
		for i, a := range args {
			if strings.TrimSpace(a) == "" {
				return r.usageError(cmd, fmt.Errorf("<%s> must not be empty", names[i]))
			}
		}
		return nil
	}
}

// minArgs requires at least n positional arguments.
func (r *Runner) minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return r.usageError(cmd, err)
		}
		return nil
	}
}

func annotated(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[key]; ok {
			return true
		}
	}
	return false
}

func sessionAnnotations() map[string]string {
	return map[string]string{annotBoot: "", annotSession: ""}
}

func parseID(name, raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, raw)
	}
	return n, nil
}

// username is the actor sent with mutations.
func (r *Runner) username() (string, error) {
	return r.Session.Username()
}

// requireSession fails with session.ErrNoSession when nobody is logged in.
func (r *Runner) requireSession() error {
	if !r.Session.Authenticated() {
		return session.ErrNoSession
	}
	return nil
}

// prompt reads one line from stdin after printing label to stderr.
func (r *Runner) prompt(label string) (string, error) {
	fmt.Fprint(r.Stderr, label)
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret reads a line without echo when stdin is a terminal and falls
// back to prompt otherwise.
func (r *Runner) promptSecret(label string) (string, error) {
	f, ok := r.Stdin.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return r.prompt(label)
	}
	fmt.Fprint(r.Stderr, label)
	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(r.Stderr)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Stdout, format, args...)
}
