package dupex

import (
	"io"
	"strings"

	"github.com/projectdiscovery/fasttemplate"
	errorutil "github.com/projectdiscovery/utils/errors"
)

// reportVars builds the variable map one cluster exposes to report
// templates.
func reportVars(c *Cluster, total int) map[string]interface{} {
	return map[string]interface{}{
		"representative": c.Representative,
		"members":        strings.Join(c.Members, ", "),
		"size":           c.Size(),
		"total":          total,
	}
}

// ValidateTemplates compiles every report template and rejects templates
// referencing variables that no cluster provides.
func ValidateTemplates(templates []string) error {
	sample := reportVars(&Cluster{Representative: "temp"}, 0)
	for _, v := range templates {
		if _, err := fasttemplate.NewTemplate(v, ParenthesisOpen, ParenthesisClose); err != nil {
			return err
		}
		for _, name := range getAllVars(v) {
			if _, ok := sample[name]; !ok {
				return errorutil.NewWithTag("dupex", "unknown variable `%v` in report template `%v`", name, v)
			}
		}
	}
	return nil
}

// WriteReport renders each cluster through every template, one line per
// rendering, and writes the result to w. Templates default to
// DefaultTemplates when empty.
func WriteReport(w io.Writer, clusters []Cluster, templates []string) error {
	if w == nil {
		return errorutil.NewWithTag("dupex", "writer destination cannot be nil")
	}
	if len(templates) == 0 {
		templates = DefaultTemplates
	}
	if err := ValidateTemplates(templates); err != nil {
		return err
	}
	for i := range clusters {
		values := reportVars(&clusters[i], len(clusters))
		for _, tpl := range templates {
			if _, err := w.Write([]byte(Replace(tpl, values) + "\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
