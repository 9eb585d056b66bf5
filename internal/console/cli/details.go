package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

func (r *Runner) detailsCommand() *cobra.Command {
	return r.group("details", "Manage name list entries",
		r.detailsGetCommand(),
		r.detailsSearchCommand(),
		r.detailsAddCommand(),
		r.detailsBatchCommand(),
		r.detailsUpdateCommand(),
		r.detailsDeleteCommand(),
		r.detailsDeleteBatchCommand(),
		r.detailsDeleteByTextCommand(),
	)
}

func (r *Runner) printDetails(items ...consoleapi.ListDetail) error {
	t := newTable(r.Stdout, "ID", "LIST", "TEXT", "MEMO")
	for _, d := range items {
		t.row(d.ID, d.ListNo, d.Text, d.Memo)
	}
	return t.flush()
}

func (r *Runner) detailsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one entry",
		Args:  r.exactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			d, err := r.Client.GetListDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return r.printDetails(*d)
		},
	}
}

func (r *Runner) detailsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <text>",
		Short: "Find entries containing text",
		Args:  r.exactArgs("text"),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(args[0])
			found, err := r.Client.SearchListDetails(cmd.Context(), text)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				r.printf("no entries match %q\n", text)
				return nil
			}
			return r.printDetails(found...)
		},
	}
}

func (r *Runner) detailsAddCommand() *cobra.Command {
	var list, text, memo string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one entry to a name list",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(list) == "" || strings.TrimSpace(text) == "" {
				return fmt.Errorf("--list and --text are required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.AddListDetail(cmd.Context(), consoleapi.AddListDetailRequest{
				ListNo:   strings.TrimSpace(list),
				Text:     strings.TrimSpace(text),
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
	cmd.Flags().StringVar(&list, "list", "", "name list number")
	cmd.Flags().StringVar(&text, "text", "", "entry text")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form note")
	return cmd
}

// detailsBatchCommand adds one entry per line read from stdin, or per
// positional argument when there are any.
func (r *Runner) detailsBatchCommand() *cobra.Command {
	var list string
	cmd := &cobra.Command{
		Use:   "batch [entry]...",
		Short: "Add entries from the arguments or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(list) == "" {
				return fmt.Errorf("--list is required")
			}

			entries := args
			if len(entries) == 0 {
				entries = r.readLines()
			}
			var data []string
			for _, e := range entries {
				if e = strings.TrimSpace(e); e != "" {
					data = append(data, e)
				}
			}
			if len(data) == 0 {
				return fmt.Errorf("no entries given")
			}

			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.AddListDetails(cmd.Context(), consoleapi.AddListDetailsRequest{
				ListNo:   strings.TrimSpace(list),
				Data:     data,
				Username: user,
			})
			if err != nil {
				return err
			}
			r.printf("%s (%d entries)\n", msg, len(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "name list number")
	return cmd
}

// readLines reads stdin to the end.
func (r *Runner) readLines() []string {
	var lines []string
	for {
		line, err := r.in.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimRight(line, "\r\n"))
		}
		if err != nil {
			return lines
		}
	}
}

func (r *Runner) detailsUpdateCommand() *cobra.Command {
	var text, memo string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the text or memo of an entry",
		Args:  r.exactArgs("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("id", args[0])
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("--text is required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.UpdateListDetail(cmd.Context(), id, consoleapi.UpdateListDetailRequest{
				Text:     strings.TrimSpace(text),
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
	cmd.Flags().StringVar(&text, "text", "", "entry text")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form note")
	return cmd
}

func (r *Runner) detailsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one entry",
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
			msg, err := r.Client.DeleteListDetail(cmd.Context(), id, user)
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
}

func (r *Runner) detailsDeleteBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-batch <id>...",
		Short: "Delete several entries",
		Args:  r.minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, raw := range args {
				id, err := parseID("id", raw)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.DeleteListDetails(cmd.Context(), ids, user)
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
}

func (r *Runner) detailsDeleteByTextCommand() *cobra.Command {
	var list, text string
	cmd := &cobra.Command{
		Use:   "delete-by-text",
		Short: "Delete the entry with this text from a named list",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(list) == "" || strings.TrimSpace(text) == "" {
				return fmt.Errorf("--list-name and --text are required")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.DeleteListDetailByText(cmd.Context(), strings.TrimSpace(list), strings.TrimSpace(text), user)
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&list, "list-name", "", "name list name")
	cmd.Flags().StringVar(&text, "text", "", "entry text")
	return cmd
}
