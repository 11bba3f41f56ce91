package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"site-server/core/config"
	"site-server/core/loader"
	"site-server/core/logger"
	"site-server/core/metrics"
	"site-server/core/middleware/accesslog"
	"site-server/core/middleware/rayid"
	"site-server/core/reconcile"
	"site-server/core/server"
	"site-server/core/storage"

	"site-server/feature/integrity"
	"site-server/feature/publish"
	"site-server/feature/static"
	"site-server/feature/status"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "site-server/docs/swagger"
)

// @title Site Server Admin API
// @version 1.0
// @description Health, statistics, integrity and publish endpoints of the static site server.
// @host localhost:8089
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site directory over HTTP",
	Long: `Binds the configured port (default 8089) on all interfaces and serves the root
directory until interrupted. The port and root come from configuration (SERVER_PORT,
SERVER_ROOT); the root defaults to the directory containing the executable.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	srv, err := newServer(cfg, logg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		var bindErr *server.BindError
		if errors.As(err, &bindErr) {
			logg.Error("Failed to bind", zap.String("addr", bindErr.Addr), zap.Error(bindErr.Err))
		}
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ServeForever(ctx)
}

// newServer wires the app, middleware and features for cfg without binding.
func newServer(cfg *config.Config, logg *zap.Logger, out io.Writer) (*server.StaticFileServer, error) {
	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return nil, err
	}

	var store storage.Client
	if cfg.Storage.Enabled {
		if store, err = storage.NewClient(cfg.Storage); err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	app := server.NewApp(logg)
	recorder := metrics.NewRecorder()

	// RayID first so every log line below can be correlated
	app.Use(rayid.New())
	app.Use(accesslog.New(logg, recorder))

	spec := &reconcile.Spec{
		Root:         root,
		Storage:      cfg.Storage,
		CacheControl: cfg.Server.CacheControl,
	}

	// The static catch-all must be registered last
	mgr := loader.NewManager()
	mgr.Register(status.NewFeature(root, recorder, cfg.Server.ApiKey, logg))
	mgr.Register(integrity.NewFeature(root, cfg.Server.CriticalFiles, cfg.Server.ApiKey, logg))
	mgr.Register(publish.NewFeature(store, spec, cfg.Server.ApiKey, logg))
	mgr.Register(static.NewFeature(root, cfg.Server.CacheControl, logg))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded), zap.String("root", root))
	if cfg.Server.ApiKey == "" {
		logg.Warn("No API key configured: admin endpoints under /_server are open to anyone who can reach the server",
			zap.String("addr", cfg.Server.Addr()))
	}

	return server.New(cfg.Server, app, logg, out), nil
}
