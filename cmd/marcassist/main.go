// Command marcassist builds Cutter numbers and checks MARC field punctuation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/marcassist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/marcassist/internal/adapters/driven/rulepack"
	"github.com/custodia-labs/marcassist/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/marcassist/internal/adapters/driven/tablefile"
	"github.com/custodia-labs/marcassist/internal/adapters/driving/cli"
	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
	"github.com/custodia-labs/marcassist/internal/core/services"
	"github.com/custodia-labs/marcassist/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires adapters and services from the config file.
func bootstrap(ctx context.Context, opts cli.GlobalOptions) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}
	logger.SetVerbose(opts.Verbose || settings.Verbose)
	logger.Debug("Config: %s", configStore.Path())

	db, err := sqlite.NewStore(filepath.Join(filepath.Dir(configStore.Path()), "data"))
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database: %v", err)
		}
	}

	cutterService := loadCutter(ctx, settings.Cutter, db)
	punctuationService := loadRules(ctx, settings.Rules)

	return &cli.Services{
		Cutter:      cutterService,
		Punctuation: punctuationService,
		Settings:    settingsService,
		Tables:      services.NewTableService(db, openTableFile),
	}, cleanup, nil
}

// loadCutter builds the Cutter service from the configured table store.
// A table that fails to load leaves the service with an empty table.
func loadCutter(ctx context.Context, settings domain.CutterSettings, db *sqlite.Store) *services.CutterService {
	var store driven.CutterTableStore
	switch settings.Store {
	case domain.TableStoreSQLite:
		store = db
	case domain.TableStoreFile:
		if settings.TablePath != "" {
			f, err := tablefile.New(settings.TablePath)
			if err != nil {
				warn("cutter table: %v", err)
				break
			}
			store = f
		}
	}

	service, err := services.LoadCutterService(ctx, store, settings.Options())
	if err != nil {
		warn("cutter table: %v", err)
		return services.NewCutterService(nil, settings.Options())
	}
	return service
}

// loadRules builds the punctuation service over the configured rule pack.
// A pack that fails to load is reported and validation stays unavailable.
func loadRules(ctx context.Context, settings domain.RulesSettings) *services.PunctuationService {
	if !settings.IsConfigured() {
		return services.NewPunctuationService(nil)
	}

	source, err := rulepack.NewFileSource(settings.PackPath, settings.OptionsPath)
	if err != nil {
		warn("rule pack: %v", err)
		return services.NewPunctuationService(nil)
	}

	service := services.NewPunctuationService(source)
	if err := service.Reload(ctx); err != nil {
		warn("%v", err)
	}
	return service
}

func openTableFile(path string) (driven.CutterTableFile, error) {
	return tablefile.New(path)
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
