package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ariel-frischer/courgette/internal/config"
	clierrors "github.com/ariel-frischer/courgette/internal/errors"
	"github.com/ariel-frischer/courgette/internal/lifecycle"
	"github.com/ariel-frischer/courgette/internal/logger"
	"github.com/ariel-frischer/courgette/internal/plan"
	"github.com/ariel-frischer/courgette/internal/reportportal"
	"github.com/ariel-frischer/courgette/internal/runopts"
	"github.com/spf13/cobra"
)

// logLevelEnv is consulted when --log-level is not given.
const logLevelEnv = "COURGETTE_LOG_LEVEL"

// runContext is everything a command needs to build worker option sets.
type runContext struct {
	cfg          *config.RunConfiguration
	session      runopts.Session
	reportPortal *reportportal.Handle
	log          *logger.Logger
}

// planner returns a Planner sharing the session and result service of the run.
// maxParallel of zero keeps the resolved thread count.
func (rc *runContext) planner(maxParallel int) *plan.Planner {
	return plan.New(rc.cfg, rc.session,
		plan.WithResultService(rc.reportPortal),
		plan.WithLogger(rc.log),
		plan.WithMaxParallel(maxParallel),
	)
}

func newCommandLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	level := flags.logLevel
	if level == "" {
		level = os.Getenv(logLevelEnv)
	}
	log, err := logger.New(logger.Options{Level: level, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, clierrors.NewArgumentError(
			fmt.Sprintf("invalid log level %q", level),
			"Use one of: debug, info, warn, error",
		)
	}
	return log, nil
}

// commandLog reports command completion through the logger.
type commandLog struct {
	log *logger.Logger
}

func (c commandLog) OnCommandComplete(name string, err error, duration time.Duration) {
	c.log.WithFields(map[string]any{
		"command":     name,
		"success":     err == nil,
		"duration_ms": duration.Milliseconds(),
	}).Debug("command complete")
}

// timed wraps run so its completion is reported through lifecycle.
func timed(root *rootFlags, name string, run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log, err := newCommandLogger(cmd, root)
		if err != nil {
			return err
		}
		return lifecycle.Run(commandLog{log: log}, name, func() error {
			return run(cmd, args)
		})
	}
}

// loadProperties reads COURGETTE_*/CUCUMBER_* variables and the -D definitions.
func loadProperties(flags *rootFlags) (*config.Properties, error) {
	defs, err := parseDefinitions(flags.defines)
	if err != nil {
		return nil, err
	}
	props, err := config.LoadProperties(defs)
	if err != nil {
		return nil, clierrors.WrapWithMessage(err, clierrors.Configuration, "loading properties")
	}
	return props, nil
}

// loadRunContext resolves the RunConfiguration and validates the result-service
// integration before any worker is built.
func loadRunContext(cmd *cobra.Command, flags *rootFlags) (*runContext, error) {
	log, err := newCommandLogger(cmd, flags)
	if err != nil {
		return nil, err
	}

	props, err := loadProperties(flags)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{
		OptionsPath: flags.configPath,
		Properties:  props,
	})
	if err != nil {
		return nil, classifyConfigError(err, flags.configPath)
	}

	session := runopts.NewSession()
	log.WithFields(map[string]any{
		"source":     cfg.Source,
		"session_id": session.ID,
		"threads":    cfg.Threads,
		"run_level":  string(cfg.RunLevel),
	}).Info("configuration loaded")

	rp := reportportal.NewHandle(cfg)
	if err := rp.Validate(); err != nil {
		log.Error(err, "reportportal validation failed")
		return nil, classifyReportPortalError(err, cfg.ResourcePaths)
	}
	if rp.Enabled() {
		log.Debug("reportportal integration enabled")
	}

	return &runContext{cfg: cfg, session: session, reportPortal: rp, log: log}, nil
}

// parseDefinitions splits each key=value at the first '='. Values may contain commas.
func parseDefinitions(defines []string) (map[string]string, error) {
	defs := make(map[string]string, len(defines))
	for _, d := range defines {
		key, value, ok := strings.Cut(d, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, clierrors.NewArgumentError(
				fmt.Sprintf("invalid property definition %q", d),
				"Use -D key=value, e.g. -D courgette.threads=4",
			)
		}
		defs[key] = value
	}
	return defs, nil
}

func classifyConfigError(err error, path string) error {
	switch {
	case errors.Is(err, config.ErrOptionsNotFound):
		cliErr := clierrors.OptionsFileNotFound(path)
		cliErr.Cause = err
		return cliErr
	case errors.Is(err, config.ErrMalformedProperty):
		return clierrors.MalformedProperty(err)
	default:
		return clierrors.InvalidOptions(err)
	}
}

func classifyReportPortalError(err error, searchPaths []string) error {
	if errors.Is(err, reportportal.ErrPropertiesNotFound) {
		cliErr := clierrors.ReportPortalPropertiesMissing(reportportal.PropertiesFile, searchPaths)
		cliErr.Cause = err
		return cliErr
	}
	return clierrors.ReportPortalInvalid(err)
}
