package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/growth-cli/internal/outreach"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Render an outreach email template",
	Long: `Renders a built-in outreach template. Every placeholder the template uses
must be given with --var; "brand" defaults to the platform name.

Examples:
  # List templates and their variables
  email --list

  email --template influencer_intro \
    --var name=Rohan --var game=BGMI --var campaign_name="Monsoon Cup" \
    --var referral_code=ROHANBGMI --var sender_name=Asha`,
	RunE: runEmail,
}

func init() {
	f := emailCmd.Flags()
	f.String("template", "", "template name")
	f.StringArray("var", nil, "template variable as key=value (repeatable)")
	f.Bool("list", false, "list the built-in templates")

	rootCmd.AddCommand(emailCmd)
}

func runEmail(cmd *cobra.Command, _ []string) error {
	list, _ := cmd.Flags().GetBool("list")
	name, _ := cmd.Flags().GetString("template")
	rawVars, _ := cmd.Flags().GetStringArray("var")

	if list {
		rows := make([][]string, 0)
		for _, t := range outreach.Templates() {
			rows = append(rows, []string{t.Name, strings.Join(t.Variables, ",")})
		}
		return writeTable(cmd.OutOrStdout(), []string{"template", "variables"}, rows)
	}
	if name == "" {
		return eris.New("email: --template is required (see --list)")
	}

	tmpl, ok := outreach.Lookup(name)
	if !ok {
		return eris.Errorf("email: unknown template %q", name)
	}

	vars, err := parseVars(rawVars)
	if err != nil {
		return err
	}

	msg, err := tmpl.Render(vars)
	if err != nil {
		return eris.Wrap(err, "email: render")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n\n%s\n", msg.Subject, msg.Body)
	return nil
}

// parseVars turns repeated key=value flags into template variables. Values
// may contain commas and "=".
func parseVars(raw []string) (map[string]string, error) {
	vars := map[string]string{"brand": outreach.DefaultBrand}
	for _, r := range raw {
		k, v, ok := strings.Cut(r, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, eris.Errorf("email: invalid --var %q, want key=value", r)
		}
		vars[k] = v
	}
	return vars, nil
}
