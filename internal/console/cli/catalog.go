package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

func (r *Runner) appsCommand() *cobra.Command {
	return r.group("apps", "List, get, create, update or delete apps",
		r.appsListCommand(),
		r.appsGetCommand(),
		r.appsCreateCommand(),
		r.appsUpdateCommand(),
		r.appsDeleteCommand(),
	)
}

func (r *Runner) appsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List apps",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			apps, err := r.Client.ListApps(cmd.Context())
			if err != nil {
				return err
			}
			t := newTable(r.Stdout, "APP ID", "NAME", "ACCESS KEY")
			for _, a := range apps {
				t.row(a.AppID, a.Name, a.AccessKey)
			}
			return t.flush()
		},
	}
}

func (r *Runner) appsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <app_id>",
		Short: "Show one app",
		Args:  r.exactArgs("app_id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := r.Client.GetApp(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			t := newTable(r.Stdout)
			t.row("app id", a.AppID)
			t.row("name", a.Name)
			t.row("access key", a.AccessKey)
			return t.flush()
		},
	}
}

func (r *Runner) appsCreateCommand() *cobra.Command {
	var appID, name string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an app",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(appID) == "" || strings.TrimSpace(name) == "" {
				return fmt.Errorf("--app-id and --name are required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.CreateApp(cmd.Context(), consoleapi.CreateAppRequest{
				AppID:    strings.TrimSpace(appID),
				Name:     strings.TrimSpace(name),
				Username: user,
			})
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&appID, "app-id", "", "app identifier")
	cmd.Flags().StringVar(&name, "name", "", "app name")
	return cmd
}

func (r *Runner) appsUpdateCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "update <app_id>",
		Short: "Rename an app",
		Args:  r.exactArgs("app_id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.UpdateApp(cmd.Context(), strings.TrimSpace(args[0]),
				consoleapi.UpdateAppRequest{Name: strings.TrimSpace(name), Username: user})
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new app name")
	return cmd
}

func (r *Runner) appsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <app_id>",
		Short: "Delete an app",
		Args:  r.exactArgs("app_id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := r.Client.DeleteApp(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
}

func (r *Runner) channelsCommand() *cobra.Command {
	return r.group("channels", "List, get, create, update or delete channels",
		r.channelsListCommand(),
		r.channelsGetCommand(),
		r.channelsCreateCommand(),
		r.channelsUpdateCommand(),
		r.channelsDeleteCommand(),
	)
}

func (r *Runner) channelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List channels",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			chans, err := r.Client.ListChannels(cmd.Context())
			if err != nil {
				return err
			}
			t := newTable(r.Stdout, "ID", "NAME", "MEMO")
			for _, c := range chans {
				t.row(c.ID, c.Name, c.Memo)
			}
			return t.flush()
		},
	}
}

func (r *Runner) channelsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one channel",
		Args:  r.exactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			c, err := r.Client.GetChannel(cmd.Context(), id)
			if err != nil {
				return err
			}
			t := newTable(r.Stdout)
			t.row("id", c.ID)
			t.row("name", c.Name)
			t.row("memo", c.Memo)
			return t.flush()
		},
	}
}

func (r *Runner) channelsCreateCommand() *cobra.Command {
	var name, memo string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a channel",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.CreateChannel(cmd.Context(), consoleapi.CreateChannelRequest{
				Name:     strings.TrimSpace(name),
				Memo:     memo,
				Username: user,
			})
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "channel name")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form note")
	return cmd
}

func (r *Runner) channelsUpdateCommand() *cobra.Command {
	var name, memo string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a channel",
		Args:  r.exactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.UpdateChannel(cmd.Context(), id, consoleapi.UpdateChannelRequest{
				Name:     strings.TrimSpace(name),
				Memo:     memo,
				Username: user,
			})
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "channel name")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form note")
	return cmd
}

func (r *Runner) channelsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a channel",
		Args:  r.exactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.DeleteChannel(cmd.Context(), id, user)
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
}
