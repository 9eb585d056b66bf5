package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

func (r *Runner) loginCommand() *cobra.Command {
	var identity, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with identity and password",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, pw, err := r.credentials(identity, password)
			if err != nil {
				return err
			}
			u, err := r.Session.Login(cmd.Context(), id, pw)
			if err != nil {
				return err
			}
			r.printf("logged in as %s (%s)\n", u.DisplayName, u.Identity)
			return nil
		},
	}
	cmd.Flags().StringVar(&identity, "identity", "", "operator identity")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	return cmd
}

func (r *Runner) registerCommand() *cobra.Command {
	var identity, password, name string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an operator account and log in",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, pw, err := r.credentials(identity, password)
			if err != nil {
				return err
			}
			display := strings.TrimSpace(name)
			if display == "" {
				display = id
			}
			u, err := r.Session.Register(cmd.Context(), id, pw, display)
			if err != nil {
				return err
			}
			r.printf("registered and logged in as %s (%s)\n", u.DisplayName, u.Identity)
			return nil
		},
	}
	cmd.Flags().StringVar(&identity, "identity", "", "operator identity")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when empty)")
	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to the identity)")
	return cmd
}

// credentials fills in what the flags left out from stdin.
func (r *Runner) credentials(identity, password string) (string, string, error) {
	var err error
	identity = strings.TrimSpace(identity)
	if identity == "" {
		if identity, err = r.prompt("identity: "); err != nil {
			return "", "", err
		}
		identity = strings.TrimSpace(identity)
	}
	if password == "" {
		if password, err = r.promptSecret("password: "); err != nil {
			return "", "", err
		}
	}
	if identity == "" || password == "" {
		return "", "", fmt.Errorf("identity and password are required")
	}
	return identity, password, nil
}

func (r *Runner) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "End the session",
		Args:        r.exactArgs(),
		Annotations: map[string]string{annotBoot: ""},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.Session.Logout(cmd.Context()); err != nil {
				fmt.Fprintf(r.Stderr, "warning: server logout failed: %s\n", Notice(err))
			}
			r.printf("logged out\n")
			return nil
		},
	}
}

func (r *Runner) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Short:       "Show the logged-in operator",
		Args:        r.exactArgs(),
		Annotations: sessionAnnotations(),
		RunE: func(*cobra.Command, []string) error {
			snap := r.Session.Snapshot()
			t := newTable(r.Stdout)
			t.row("identity", snap.User.Identity)
			t.row("name", snap.User.DisplayName)
			t.row("id", snap.User.ID)
			t.row("roles", strings.Join(snap.User.Roles, ","))
			if exp, ok := consoleapi.TokenExpiry(snap.AccessToken); ok {
				t.row("token expires", exp.In(r.Location).Format(time.DateTime))
			}
			return t.flush()
		},
	}
}
