// Package plan builds the worker option sets of a run up front, one per feature,
// the way the worker pool would when it dispatches them.
package plan

import (
	"context"
	"fmt"

	"github.com/ariel-frischer/courgette/internal/config"
	"github.com/ariel-frischer/courgette/internal/logger"
	"github.com/ariel-frischer/courgette/internal/runopts"
	"github.com/ariel-frischer/courgette/internal/selection"
	"golang.org/x/sync/errgroup"
)

// Planner constructs WorkerOptionSets concurrently from one shared configuration.
type Planner struct {
	cfg           *config.RunConfiguration
	session       runopts.Session
	resultService runopts.ResultService
	log           *logger.Logger
	maxParallel   int
}

// Option configures a Planner.
type Option func(*Planner)

// WithResultService adds the result-service JUnit spec to every worker.
func WithResultService(rs runopts.ResultService) Option {
	return func(p *Planner) {
		p.resultService = rs
	}
}

// WithLogger sets the logger; the default discards.
func WithLogger(log *logger.Logger) Option {
	return func(p *Planner) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMaxParallel overrides the configured thread count.
func WithMaxParallel(n int) Option {
	return func(p *Planner) {
		if n >= 1 {
			p.maxParallel = n
		}
	}
}

// New creates a Planner. Parallelism defaults to the configured thread count.
func New(cfg *config.RunConfiguration, session runopts.Session, opts ...Option) *Planner {
	p := &Planner{
		cfg:         cfg,
		session:     session,
		log:         logger.Nop(),
		maxParallel: max(cfg.Threads, 1),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers builds one option set per feature. The result is in input order.
func (p *Planner) Workers(ctx context.Context, features []selection.Feature) ([]*runopts.WorkerOptionSet, error) {
	sets := make([]*runopts.WorkerOptionSet, len(features))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxParallel)

	for i, feature := range features {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ws, err := runopts.NewWorker(p.cfg, p.session, feature, p.options()...)
			if err != nil {
				return fmt.Errorf("building options for %s: %w", feature.URI(), err)
			}
			p.log.WithFields(map[string]any{
				"feature": ws.ResourcePath(),
				"rerun":   ws.RerunFilePath(),
				"reports": len(ws.ReportFilePaths()),
			}).Debug("worker options built")
			sets[i] = ws
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

// Aggregate builds the single option set that runs the whole suite.
func (p *Planner) Aggregate() (*runopts.WorkerOptionSet, error) {
	ws, err := runopts.NewAggregate(p.cfg, p.session, p.options()...)
	if err != nil {
		return nil, fmt.Errorf("building aggregate options: %w", err)
	}
	p.log.WithFields(map[string]any{"rerun": ws.RerunFilePath()}).Debug("aggregate options built")
	return ws, nil
}

func (p *Planner) options() []runopts.Option {
	if p.resultService == nil {
		return nil
	}
	return []runopts.Option{runopts.WithResultService(p.resultService)}
}

// URIFeature is a feature known only by its URI, as given on the command line.
type URIFeature string

// URI implements selection.Feature.
func (f URIFeature) URI() string { return string(f) }

// Pickles implements selection.Feature. The engine expands pickles; none are known here.
func (f URIFeature) Pickles() []selection.Pickle { return nil }

// FeaturesFromURIs wraps command-line feature URIs.
func FeaturesFromURIs(uris []string) []selection.Feature {
	features := make([]selection.Feature, len(uris))
	for i, uri := range uris {
		features[i] = URIFeature(uri)
	}
	return features
}
