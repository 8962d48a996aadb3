// Package outreach renders the email and pitch templates used for influencer
// and backlink outreach. Sending is owned by the external mailer.
package outreach

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// FormatEmailTemplate replaces every literal {key} in tmpl with vars[key].
// Keys missing from vars become empty strings.
func FormatEmailTemplate(tmpl string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		return vars[m[1:len(m)-1]]
	})
}

// Template is a named email with a declared variable list.
type Template struct {
	Name      string   `json:"name" yaml:"name"`
	Subject   string   `json:"subject" yaml:"subject"`
	Body      string   `json:"body" yaml:"body"`
	Variables []string `json:"variables" yaml:"variables"`
}

// Email is a rendered template.
type Email struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Placeholders returns the distinct placeholder names used in the subject
// and body, in order of first appearance.
func (t Template) Placeholders() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, text := range []string{t.Subject, t.Body} {
		for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
			if _, ok := seen[m[1]]; ok {
				continue
			}
			seen[m[1]] = struct{}{}
			out = append(out, m[1])
		}
	}
	return out
}

// Validate reports placeholders that are not in the declared variable list.
func (t Template) Validate() error {
	declared := t.declared()
	var undeclared []string
	for _, p := range t.Placeholders() {
		if _, ok := declared[p]; !ok {
			undeclared = append(undeclared, p)
		}
	}
	if len(undeclared) > 0 {
		return eris.Errorf("outreach: template %q uses undeclared placeholders: %s",
			t.Name, strings.Join(undeclared, ", "))
	}
	return nil
}

// Render validates the template and substitutes vars. Every placeholder the
// template uses must have a non-empty value.
func (t Template) Render(vars map[string]string) (Email, error) {
	if err := t.Validate(); err != nil {
		return Email{}, err
	}

	var missing []string
	for _, p := range t.Placeholders() {
		if strings.TrimSpace(vars[p]) == "" {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return Email{}, eris.Errorf("outreach: template %q missing values for: %s",
			t.Name, strings.Join(missing, ", "))
	}

	return Email{
		Subject: FormatEmailTemplate(t.Subject, vars),
		Body:    FormatEmailTemplate(t.Body, vars),
	}, nil
}

func (t Template) declared() map[string]struct{} {
	m := make(map[string]struct{}, len(t.Variables))
	for _, v := range t.Variables {
		m[v] = struct{}{}
	}
	return m
}
