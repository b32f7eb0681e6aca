package javascript

import (
	"fmt"

	"github.com/HalfToothed/gostman-site/config"
	"github.com/evanw/esbuild/pkg/api"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a problem esbuild reported for one inline script.
type Finding struct {
	Directive int // index into the config's head tags
	Severity  Severity
	Line      int // 1-based, 0 if unknown
	Column    int
	Text      string
}

func (f Finding) String() string {
	if f.Line == 0 {
		return fmt.Sprintf("head[%d]: %s: %s", f.Directive, f.Severity, f.Text)
	}
	return fmt.Sprintf("head[%d]:%d:%d: %s: %s", f.Directive, f.Line, f.Column, f.Severity, f.Text)
}

// LintInlineScripts parses the inline body of every script directive and
// reports syntax errors and warnings. The composer treats script bodies as
// opaque, so findings are advisory.
func LintInlineScripts(cfg config.SiteConfig) []Finding {
	var findings []Finding

	for i, d := range cfg.HeadTags() {
		script, ok := d.(*config.ScriptDirective)
		if !ok || script.Content() == "" {
			continue
		}

		result := api.Transform(script.Content(), api.TransformOptions{
			Loader: api.LoaderJS,
			Engines: []api.Engine{
				{Name: api.EngineChrome, Version: "100"},
				{Name: api.EngineFirefox, Version: "100"},
				{Name: api.EngineSafari, Version: "15"},
				{Name: api.EngineEdge, Version: "100"},
			},
			LogLevel: api.LogLevelSilent,
		})

		for _, msg := range result.Errors {
			findings = append(findings, newFinding(i, SeverityError, msg))
		}
		for _, msg := range result.Warnings {
			findings = append(findings, newFinding(i, SeverityWarning, msg))
		}
	}

	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func newFinding(index int, severity Severity, msg api.Message) Finding {
	f := Finding{Directive: index, Severity: severity, Text: msg.Text}
	if msg.Location != nil {
		f.Line = msg.Location.Line
		f.Column = msg.Location.Column
	}
	return f
}
