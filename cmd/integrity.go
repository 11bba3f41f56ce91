package cmd

import (
	"fmt"

	"site-server/core/config"
	"site-server/core/logger"
	"site-server/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the site root for missing critical files",
	Long: `Checks that every file listed in SERVER_CRITICAL_FILES exists under the root directory.
Exits with a non-zero code when anything is missing.`,
	Args: cobra.NoArgs,
	RunE: runIntegrity,
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return err
	}

	svc := integrity.NewService(root, cfg.Server.CriticalFiles, l)
	missing, err := svc.CheckStructure(cmd.Context())
	if err != nil {
		return fmt.Errorf("structure check failed: %w", err)
	}

	l.Info("Integrity report",
		zap.String("root", root),
		zap.Int("checked", len(svc.CriticalFiles())),
		zap.Int("missing", len(missing)),
	)
	for _, name := range missing {
		l.Warn("Missing critical file", zap.String("file", name))
	}

	if len(missing) > 0 {
		return fmt.Errorf("%d critical files missing", len(missing))
	}
	return nil
}
