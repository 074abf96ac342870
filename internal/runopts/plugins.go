package runopts

import (
	"slices"
	"strings"
)

// PluginKind is the part of a plugin spec before the first colon.
type PluginKind string

const (
	PluginHTML  PluginKind = "html"
	PluginJSON  PluginKind = "json"
	PluginJUnit PluginKind = "junit"
	PluginRerun PluginKind = "rerun"
	PluginOther PluginKind = "other"
)

// ParsePlugin splits a "kind:destination" spec. Kinds this package does not relocate
// come back as PluginOther with an empty destination.
func ParsePlugin(spec string) (PluginKind, string) {
	for _, kind := range []PluginKind{PluginHTML, PluginJSON, PluginJUnit, PluginRerun} {
		if dest, ok := strings.CutPrefix(spec, string(kind)+":"); ok {
			return kind, dest
		}
	}
	return PluginOther, ""
}

// IsReport reports whether kind produces a human-readable report.
func (k PluginKind) IsReport() bool {
	return k == PluginHTML || k == PluginJSON || k == PluginJUnit
}

// PluginTargets carries the paths the rewrite may need.
type PluginTargets struct {
	// WorkerMode selects per-feature relocation.
	WorkerMode bool
	// ReportStem is the worker's report path without extension (worker mode).
	ReportStem string
	// WorkerRerunFile is the worker's rerun file (worker mode).
	WorkerRerunFile string
	// ReportJSON is the aggregation JSON report.
	ReportJSON string
	// InheritedRerunFile is the rerun destination declared in the options file, if any
	// (aggregate mode).
	InheritedRerunFile string
	// AggregateRerunFile is used in aggregate mode when nothing else names one.
	AggregateRerunFile string
	// ResultServiceXML is the result-service JUnit input; empty when the integration
	// is disabled.
	ResultServiceXML string
}

// PluginRewrite is the outcome of RewritePlugins.
type PluginRewrite struct {
	Specs []string
	// RerunFile is where the engine writes failed scenarios.
	RerunFile string
	// ReportFiles are the destinations of every html, json and junit spec, in order.
	ReportFiles []string
}

// RewritePlugins makes a plugin list safe for concurrent execution.
//
// Presence checks compare strings, not kinds: "json:a/report.json" and
// "json:./a/report.json" are different specs and both survive.
func RewritePlugins(specs []string, t PluginTargets) PluginRewrite {
	if len(specs) == 0 {
		specs = []string{"json:" + t.ReportJSON}
	}

	var out []string
	add := func(spec string) {
		if !slices.Contains(out, spec) {
			out = append(out, spec)
		}
	}

	workerJUnit := "junit:" + t.ReportStem + ".xml"
	for _, spec := range specs {
		kind, dest := ParsePlugin(spec)
		if kind == PluginOther {
			out = append(out, spec)
			continue
		}
		if !t.WorkerMode || !kind.IsReport() || dest == t.ReportJSON {
			add(spec)
			continue
		}
		if kind == PluginJUnit {
			add(workerJUnit)
		} else {
			add(string(kind) + ":" + t.ReportStem + "." + string(kind))
		}
	}

	rerunFile, found := firstRerun(out)
	if !found {
		switch {
		case t.WorkerMode:
			rerunFile = t.WorkerRerunFile
		case t.InheritedRerunFile != "":
			rerunFile = t.InheritedRerunFile
		default:
			rerunFile = t.AggregateRerunFile
		}
		out = append(out, "rerun:"+rerunFile)
	}

	if !containsSubstring(out, t.ReportJSON) {
		out = append(out, "json:"+t.ReportJSON)
	}

	if t.ResultServiceXML != "" && !containsSubstring(out, t.ResultServiceXML) {
		out = append(out, "junit:"+t.ResultServiceXML)
	}

	if t.WorkerMode {
		add(workerJUnit)
	}

	return PluginRewrite{
		Specs:       out,
		RerunFile:   rerunFile,
		ReportFiles: reportFiles(out),
	}
}

// InheritedRerunFile returns the destination of the first rerun spec in declared.
func InheritedRerunFile(declared []string) string {
	file, _ := firstRerun(declared)
	return file
}

func firstRerun(specs []string) (string, bool) {
	for _, spec := range specs {
		if kind, dest := ParsePlugin(spec); kind == PluginRerun {
			return dest, true
		}
	}
	return "", false
}

func reportFiles(specs []string) []string {
	var files []string
	for _, spec := range specs {
		if kind, dest := ParsePlugin(spec); kind.IsReport() {
			files = append(files, dest)
		}
	}
	return files
}

func containsSubstring(specs []string, path string) bool {
	return slices.ContainsFunc(specs, func(s string) bool {
		return strings.Contains(s, path)
	})
}
