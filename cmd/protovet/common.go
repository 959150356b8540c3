package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/metalagman/protovet/internal/config"
	"github.com/metalagman/protovet/internal/engine"
	"github.com/metalagman/protovet/internal/evidence"
	"github.com/metalagman/protovet/internal/history"
	"github.com/metalagman/protovet/internal/protocol"
	"github.com/metalagman/protovet/internal/scripts"
	"github.com/metalagman/protovet/internal/validators"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func resolveWorkspace() (string, error) {
	if workspace != "" {
		abs, err := filepath.Abs(workspace)
		if err != nil {
			return "", fmt.Errorf("resolve workspace: %w", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve workspace: %w", err)
	}
	return cwd, nil
}

// loadConfig reads .protovet/config.json when present; a missing file
// falls back to defaults since every setting has one.
func loadConfig(workspaceRoot string) (config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		path = filepath.Join(".protovet", "config.json")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(workspaceRoot, path)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default().Resolve(workspaceRoot), nil
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("json")
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := config.ValidateSettings(viper.AllSettings()); err != nil {
		return config.Config{}, err
	}
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Resolve(workspaceRoot), nil
}

// buildRunner assembles the engine from the resolved config.
func buildRunner(cfg config.Config) (*engine.Runner, *validators.Registry, error) {
	reg, err := scripts.Load(cfg.Paths.ScriptRegistry)
	if err != nil {
		return nil, nil, err
	}
	registry := validators.Default(reg)
	writer, err := evidence.NewWriter(cfg.Paths.ValidationDir)
	if err != nil {
		return nil, nil, err
	}
	loader := protocol.NewLoader(cfg.Paths.ProtocolsDir)
	return engine.NewRunner(loader, registry, writer, cfg.Workers), registry, nil
}

func openHistory(workspaceRoot string) (*sql.DB, func(), error) {
	dir := filepath.Join(workspaceRoot, ".protovet")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, err
	}
	db, err := history.Open(filepath.Join(dir, "protovet.db"))
	if err != nil {
		return nil, func() {}, err
	}
	return db, func() { _ = db.Close() }, nil
}

// recordInvocation appends the run to the history store. History is an
// audit convenience: failures are logged, never fatal.
func recordInvocation(ctx context.Context, workspaceRoot string, inv history.Invocation) {
	db, closeFn, err := openHistory(workspaceRoot)
	if err != nil {
		log.Warn().Err(err).Msg("history unavailable")
		return
	}
	defer closeFn()
	store := history.NewStore(db)
	if inv.ID == "" {
		id, err := history.NewInvocationID()
		if err != nil {
			log.Warn().Err(err).Msg("history record skipped")
			return
		}
		inv.ID = id
	}
	if err := store.Record(ctx, inv); err != nil {
		log.Warn().Err(err).Msg("history record failed")
	}
}
