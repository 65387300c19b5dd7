package cmd

import (
	"fmt"

	"github.com/azdoops/publishpr/internal/config"
	"github.com/azdoops/publishpr/internal/orchestrator"
	"github.com/azdoops/publishpr/internal/repository"
	"github.com/azdoops/publishpr/internal/transport"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	fs  afero.Fs
	log *zap.Logger

	// azdoRepo is built lazily: listing and publishing need a credential,
	// version and help output do not.
	azdoRepo repository.AzdoRepository
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &container{
		cfg: cfg,
		fs:  afero.NewOsFs(),
		log: log,
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// azdoRepository validates the remote configuration and builds the API
// client on first use. The credential is injected here, once, and never
// read from the environment mid-workflow.
func (c *container) azdoRepository() (repository.AzdoRepository, error) {
	if c.azdoRepo != nil {
		return c.azdoRepo, nil
	}
	if err := c.cfg.ValidateForRemoteOperations(); err != nil {
		return nil, err
	}
	client, err := transport.New(transport.Options{
		OrgURL:      c.cfg.OrgURL,
		PAT:         c.cfg.PAT,
		AccessToken: c.cfg.AccessToken,
		Timeout:     c.cfg.RequestTimeout,
		Logger:      c.log,
	})
	if err != nil {
		return nil, err
	}
	c.azdoRepo = repository.NewAzdoRepository(client)
	return c.azdoRepo, nil
}

func (c *container) publishOrchestrator() (*orchestrator.PublishOrchestrator, error) {
	azdoRepo, err := c.azdoRepository()
	if err != nil {
		return nil, err
	}
	return orchestrator.NewPublishOrchestrator(azdoRepo, c.log), nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}
	rootCmd.AddCommand(NewPublishCmd(c))
	rootCmd.AddCommand(NewListProjectsCmd(c))
	rootCmd.AddCommand(NewListReposCmd(c))
	rootCmd.AddCommand(NewGetFileCmd(c))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
