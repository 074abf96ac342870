package runopts

import (
	"strings"

	"github.com/ariel-frischer/courgette/internal/config"
)

// Option names as keys of the option map. Each key is also the engine flag except
// for extraGlue (emitted as --glue), the three switches (emitted by polarity) and the
// unnamed features entry.
const (
	OptGlue          = "--glue"
	OptExtraGlue     = "--extraGlue"
	OptTags          = "--tags"
	OptPlugin        = "--plugin"
	OptName          = "--name"
	OptSnippets      = "--snippets"
	OptDryRun        = "--dryRun"
	OptStrict        = "--strict"
	OptMonochrome    = "--monochrome"
	OptObjectFactory = "--object-factory"
	OptFeatures      = ""
)

// OptionEntry is one named option and the tokens it contributes.
type OptionEntry struct {
	Name   string
	Tokens []string
}

// OptionMap is the named option set in emission order.
type OptionMap struct {
	entries []OptionEntry
}

// Get returns the tokens of the named option.
func (m OptionMap) Get(name string) ([]string, bool) {
	for _, e := range m.entries {
		if e.Name == name {
			return e.Tokens, true
		}
	}
	return nil, false
}

// Entries returns the options in emission order.
func (m OptionMap) Entries() []OptionEntry {
	return m.entries
}

// Tokens flattens the map into the vector passed to the engine.
func (m OptionMap) Tokens() []string {
	var tokens []string
	for _, e := range m.entries {
		tokens = append(tokens, e.Tokens...)
	}
	return tokens
}

func (m *OptionMap) put(name string, tokens []string) {
	if len(tokens) == 0 {
		return
	}
	m.entries = append(m.entries, OptionEntry{Name: name, Tokens: tokens})
}

// buildOptionMap assembles the option map. plugins is the already rewritten plugin
// list; features is the single resource path in worker mode or the declared feature
// paths otherwise.
func buildOptionMap(opts config.CucumberOptions, plugins, features []string) OptionMap {
	var m OptionMap
	m.put(OptGlue, flagPairs("--glue", opts.Glue))
	m.put(OptExtraGlue, flagPairs("--glue", opts.ExtraGlue))
	m.put(OptTags, flagPairs("--tags", opts.Tags))
	m.put(OptPlugin, flagPairs("--plugin", plugins))
	m.put(OptName, flagPairs("--name", opts.Name))
	if opts.Snippets != "" {
		m.put(OptSnippets, []string{"--snippets", strings.ToLower(string(opts.Snippets))})
	}
	m.put(OptDryRun, []string{switchFlag("dry-run", opts.DryRun)})
	m.put(OptStrict, []string{switchFlag("strict", opts.Strict)})
	m.put(OptMonochrome, []string{switchFlag("monochrome", opts.Monochrome)})
	if opts.ObjectFactory != "" && opts.ObjectFactory != config.NoObjectFactory {
		m.put(OptObjectFactory, []string{"--object-factory", opts.ObjectFactory})
	}
	m.put(OptFeatures, features)
	return m
}

// flagPairs emits one (flag, value) pair per comma-separated piece of each value.
// Blank pieces are dropped.
func flagPairs(flag string, values []string) []string {
	var tokens []string
	for _, v := range values {
		for _, piece := range strings.Split(v, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			tokens = append(tokens, flag, piece)
		}
	}
	return tokens
}

func switchFlag(name string, on bool) string {
	if on {
		return "--" + name
	}
	return "--no-" + name
}
