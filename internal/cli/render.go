package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/courgette/internal/output"
	"github.com/ariel-frischer/courgette/internal/runopts"
)

// workerView is the JSON document printed for one WorkerOptionSet.
type workerView struct {
	Mode              string              `json:"mode"`
	Feature           string              `json:"feature,omitempty"`
	ResourcePath      string              `json:"resource_path,omitempty"`
	Tokens            []string            `json:"tokens"`
	Options           map[string][]string `json:"options"`
	RerunFile         string              `json:"rerun_file"`
	CucumberRerunFile string              `json:"cucumber_rerun_file"`
	ReportFiles       []string            `json:"report_files"`
}

func newWorkerView(ws *runopts.WorkerOptionSet) workerView {
	view := workerView{
		Mode:              "aggregate",
		Tokens:            ws.Tokens(),
		Options:           make(map[string][]string),
		RerunFile:         ws.RerunFilePath(),
		CucumberRerunFile: ws.CucumberRerunFile(),
		ReportFiles:       ws.ReportFilePaths(),
	}
	if ws.WorkerMode() {
		view.Mode = "worker"
		view.Feature = ws.Feature().URI()
		view.ResourcePath = ws.ResourcePath()
	}
	for _, entry := range ws.OptionMap().Entries() {
		name := entry.Name
		if name == runopts.OptFeatures {
			name = "features"
		}
		view.Options[name] = entry.Tokens
	}
	if view.ReportFiles == nil {
		view.ReportFiles = []string{}
	}
	return view
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printWorker writes a human-readable summary of ws.
func printWorker(out io.Writer, ws *runopts.WorkerOptionSet) {
	const width = 13

	if ws.WorkerMode() {
		output.PrintHeading(out, "Feature: "+ws.Feature().URI())
	} else {
		output.PrintHeading(out, "Aggregate run")
	}
	output.PrintLabeled(out, 2, width, "tokens:", strings.Join(quoteTokens(ws.Tokens()), " "))
	output.PrintLabeled(out, 2, width, "rerun file:", ws.RerunFilePath())
	if inherited := ws.CucumberRerunFile(); inherited != ws.RerunFilePath() {
		output.PrintLabeled(out, 2, width, "declared rerun:", inherited)
	}
	reports := ws.ReportFilePaths()
	if len(reports) == 0 {
		output.PrintLabeled(out, 2, width, "report files:", output.Dim("(none)"))
		return
	}
	output.PrintLabeled(out, 2, width, "report files:", "")
	for _, r := range reports {
		fmt.Fprintf(out, "    - %s\n", r)
	}
}

// quoteTokens quotes tokens containing spaces so the line can be pasted into a shell.
func quoteTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok == "" || strings.ContainsAny(tok, " \t'\"") {
			out[i] = fmt.Sprintf("%q", tok)
			continue
		}
		out[i] = tok
	}
	return out
}
