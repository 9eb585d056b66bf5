package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aussiebroadwan/riskconsole/internal/console/forms"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

func (r *Runner) listsCommand() *cobra.Command {
	return r.group("lists", "Manage name lists",
		r.listsListCommand(),
		r.listsGetCommand(),
		r.listsCreateCommand(),
		r.listsUpdateCommand(),
		r.listsDeleteCommand(),
		r.listsStatusCommand(),
	)
}

func (r *Runner) listsListCommand() *cobra.Command {
	var (
		scope  string
		status string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List name lists a page at a time",
		Args:  r.exactArgs(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := forms.NameListFilter{Scope: consoleapi.Scope(strings.ToUpper(scope))}
			if status != "" {
				v, ok := forms.Lookup(forms.Statuses, status)
				if !ok {
					return fmt.Errorf("unknown status %q", status)
				}
				filter.Status = strconv.Itoa(v)
			}

			all, err := r.Client.ListNameLists(cmd.Context())
			if err != nil {
				return err
			}
			p := forms.Paginate(filter.Apply(all), page, forms.NameListPageSize)

			t := newTable(r.Stdout, "ID", "NO", "NAME", "TYPE", "MATCH", "SUGGEST", "RISK", "SCOPE", "STATUS")
			for _, nl := range p.Items {
				t.row(
					nl.ID, nl.No, nl.Name,
					forms.Label(forms.ListTypes, nl.Type),
					forms.Label(forms.MatchRules, nl.MatchRule),
					forms.Label(forms.Suggestions, nl.Suggest),
					forms.Label(forms.RiskTypes, nl.RiskType),
					nl.Scope,
					forms.Label(forms.Statuses, nl.Status),
				)
			}
			if err := t.flush(); err != nil {
				return err
			}
			r.printf("page %d/%d, %d lists\n", p.Page, p.TotalPages, p.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "only lists with this scope (GLOBAL, APP, APP_CHANNEL)")
	cmd.Flags().StringVar(&status, "status", "", "only lists with this status (enabled, disabled)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	return cmd
}

func (r *Runner) listsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <list>",
		Short: "Show one name list",
		Args:  r.exactArgs("list"),
		RunE: func(cmd *cobra.Command, args []string) error {
			nl, err := r.Client.GetNameList(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}

			t := newTable(r.Stdout)
			t.row("id", nl.ID)
			t.row("no", nl.No)
			t.row("name", nl.Name)
			t.row("type", forms.Label(forms.ListTypes, nl.Type))
			t.row("match rule", forms.Label(forms.MatchRules, nl.MatchRule))
			t.row("match type", forms.Label(forms.MatchTypes, nl.MatchType))
			t.row("suggest", forms.Label(forms.Suggestions, nl.Suggest))
			t.row("risk type", forms.Label(forms.RiskTypes, nl.RiskType))
			t.row("status", forms.Label(forms.Statuses, nl.Status))
			t.row("scope", nl.Scope)
			t.row("apps", strings.Join(nl.AppIDs, ","))
			t.row("channels", joinInts(nl.ChannelIDs))
			t.row("languages", languages(nl))
			return t.flush()
		},
	}
}

func languages(nl *consoleapi.NameList) string {
	if nl.LanguageScope != consoleapi.LanguageSpecific {
		return string(consoleapi.LanguageAll)
	}
	if len(nl.LanguageCodes) > 0 {
		return strings.Join(nl.LanguageCodes, ",")
	}
	return nl.Language
}

// nameListFlags are the editable fields of a name list. Only flags the
// operator changed are applied, so update only touches what was set.
type nameListFlags struct {
	fs            *pflag.FlagSet
	name          string
	listType      string
	matchRule     string
	matchType     string
	suggest       string
	riskType      string
	status        string
	scope         string
	apps          string
	channels      string
	languageScope string
	languages     string
}

func bindNameListFlags(fs *pflag.FlagSet) *nameListFlags {
	f := &nameListFlags{fs: fs}
	fs.StringVar(&f.name, "name", "", "list name")
	fs.StringVar(&f.listType, "type", "", "whitelist, sensitive or ignore")
	fs.StringVar(&f.matchRule, "match-rule", "", "exact or semantic")
	fs.StringVar(&f.matchType, "match-type", "", "text+nickname, text, nickname, ip or account")
	fs.StringVar(&f.suggest, "suggest", "", "reject, pass or review")
	fs.StringVar(&f.riskType, "risk-type", "", "politics, porn, ads, flood, prohibited or other")
	fs.StringVar(&f.status, "status", "", "enabled or disabled")
	fs.StringVar(&f.scope, "scope", "", "GLOBAL, APP or APP_CHANNEL")
	fs.StringVar(&f.apps, "apps", "", "comma separated app ids (at most 5)")
	fs.StringVar(&f.channels, "channels", "", "comma separated channel ids (at most 5)")
	fs.StringVar(&f.languageScope, "language-scope", "", "ALL or SPECIFIC")
	fs.StringVar(&f.languages, "languages", "", "comma separated language codes")
	return f
}

// apply copies the flags that were given onto form, through the form's own
// transitions so its limits and clearing rules hold.
func (f *nameListFlags) apply(form *forms.NameListForm) error {
	set := f.fs.Changed

	if set("name") {
		form.Name = f.name
	}

	enums := []struct {
		flag  string
		value string
		opts  []forms.Option
		dst   *int
	}{
		{"type", f.listType, forms.ListTypes, &form.Type},
		{"match-rule", f.matchRule, forms.MatchRules, &form.MatchRule},
		{"match-type", f.matchType, forms.MatchTypes, &form.MatchType},
		{"suggest", f.suggest, forms.Suggestions, &form.Suggest},
		{"risk-type", f.riskType, forms.RiskTypes, &form.RiskType},
		{"status", f.status, forms.Statuses, &form.Status},
	}
	for _, e := range enums {
		if !set(e.flag) {
			continue
		}
		v, ok := forms.Lookup(e.opts, e.value)
		if !ok {
			return fmt.Errorf("unknown --%s %q", e.flag, e.value)
		}
		*e.dst = v
	}

	if set("apps") {
		form.AppIDs = nil
		for _, id := range splitList(f.apps) {
			if err := form.ToggleApp(id); err != nil {
				return err
			}
		}
	}
	if set("channels") {
		form.ChannelIDs = nil
		for _, raw := range splitList(f.channels) {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("channel id must be a number, got %q", raw)
			}
			if err := form.ToggleChannel(id); err != nil {
				return err
			}
		}
	}
	// Scopes last, so a scope switch clears the targets it does not use.
	if set("scope") {
		if err := form.SetScope(consoleapi.Scope(strings.ToUpper(f.scope))); err != nil {
			return err
		}
	}
	if set("languages") {
		form.SetLanguageCodes(f.languages)
	}
	if set("language-scope") {
		if err := form.SetLanguageScope(consoleapi.LanguageScope(strings.ToUpper(f.languageScope))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) listsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a name list",
		Args:  r.exactArgs(),
	}
	f := bindNameListFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		form := forms.NewNameListForm()
		if err := f.apply(form); err != nil {
			return err
		}
		return r.saveNameList(cmd.Context(), form, "")
	}
	return cmd
}

func (r *Runner) listsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <list>",
		Short: "Change the given fields of a name list",
		Args:  r.exactArgs("list"),
	}
	f := bindNameListFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lid := strings.TrimSpace(args[0])
		current, err := r.Client.GetNameList(cmd.Context(), lid)
		if err != nil {
			return err
		}
		form := forms.FromNameList(*current)
		if err := f.apply(form); err != nil {
			return err
		}
		return r.saveNameList(cmd.Context(), form, lid)
	}
	return cmd
}

// saveNameList creates the list when lid is empty and updates it otherwise.
func (r *Runner) saveNameList(ctx context.Context, form *forms.NameListForm, lid string) error {
	if err := form.Validate(); err != nil {
		return err
	}
	user, err := r.username()
	if err != nil {
		return err
	}

	var msg string
	if lid == "" {
		msg, err = r.Client.CreateNameList(ctx, form.Payload(user))
	} else {
		msg, err = r.Client.UpdateNameList(ctx, lid, form.Payload(user))
	}
	if err != nil {
		return err
	}
	r.printf("%s\n", msg)
	return nil
}

func (r *Runner) listsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list>",
		Short: "Delete a name list",
		Args:  r.exactArgs("list"),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := r.Client.DeleteNameList(cmd.Context(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
}

func (r *Runner) listsStatusCommand() *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "status <list>",
		Short: "Enable or disable a name list",
		Args:  r.exactArgs("list"),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := forms.Lookup(forms.Statuses, status)
			if !ok {
				return fmt.Errorf("--status must be enabled or disabled")
			}
			user, err := r.username()
			if err != nil {
				return err
			}
			msg, err := r.Client.SwitchNameListStatus(cmd.Context(), strings.TrimSpace(args[0]), v, user)
			if err != nil {
				return err
			}
			r.printf("%s\n", msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "enabled or disabled")
	return cmd
}

// splitList splits a comma separated flag value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func joinInts(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
