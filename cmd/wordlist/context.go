package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"wordlist/internal/config"
	"wordlist/internal/ledger"
	"wordlist/internal/logging"
	"wordlist/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	runID  string
	ledger *ledger.Store
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		runID:      uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// runContext tags ctx with this invocation's run id.
func (c *commandContext) runContext(cmd *cobra.Command) context.Context {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return logging.WithRunID(base, c.runID)
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

// openLedger returns the history store, or nil when the ledger is disabled or
// cannot be opened. An open failure is logged, not returned.
func (c *commandContext) openLedger(logger *slog.Logger) *ledger.Store {
	if c.ledger != nil {
		return c.ledger
	}
	cfg, err := c.ensureConfig()
	if err != nil || !cfg.Ledger.Enabled {
		return nil
	}
	store, err := ledger.Open(cfg.Ledger.Path)
	if err != nil {
		logging.WarnWithContext(logger, "history ledger unavailable", "ledger_open_failed",
			logging.String("path", cfg.Ledger.Path),
			logging.Error(err),
			logging.String(logging.FieldImpact, "this run will not be recorded"),
		)
		return nil
	}
	c.ledger = store
	return store
}

func (c *commandContext) manager(cmd *cobra.Command) (*workflow.Manager, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, nil, err
	}
	var opts []workflow.ManagerOption
	if store := c.openLedger(logging.WithContext(c.runContext(cmd), logger)); store != nil {
		opts = append(opts, workflow.WithRecorder(store))
	}
	mgr, err := workflow.NewManagerFromConfig(cfg, cmd.InOrStdin(), logger, opts...)
	if err != nil {
		return nil, nil, err
	}
	return mgr, logger, nil
}

func (c *commandContext) close() {
	if c.ledger != nil {
		_ = c.ledger.Close()
		c.ledger = nil
	}
}

// listPath resolves an explicit --list/--output flag or falls back to the
// configured wordlist.
func (c *commandContext) listPath(flag string) (string, error) {
	if flag = strings.TrimSpace(flag); flag != "" {
		return config.ExpandPath(flag)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Wordlist.Path, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
