package cmd

import (
	"errors"
	"fmt"

	"site-server/core/config"
	"site-server/core/logger"
	"site-server/core/reconcile"
	"site-server/core/storage"
	"site-server/feature/publish"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	confirmPublish bool
	purgePublish   bool
)

// publishCmd mirrors the root directory into the storage bucket.
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the site directory to S3-compatible storage",
	Long: `Compares the root directory with the configured bucket and reports what would change.
Nothing is written unless --confirm is given.

Examples:
  # Report only
  publish

  # Upload new and changed files
  publish --confirm

  # Upload, and delete objects no longer present locally
  publish --confirm --purge`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().BoolVar(&confirmPublish, "confirm", false, "Apply the plan (default is report only)")
	publishCmd.Flags().BoolVar(&purgePublish, "purge", false, "Delete objects missing locally")

	RootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	if !cfg.Storage.Enabled {
		return errors.New("storage is disabled: set STORAGE_ENABLED=true")
	}

	root, err := cfg.Server.ResolveRoot()
	if err != nil {
		return err
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	svc := publish.NewService(client, &reconcile.Spec{
		Root:         root,
		Storage:      cfg.Storage,
		CacheControl: cfg.Server.CacheControl,
	}, l)

	if !confirmPublish {
		l.Info("Planning publish...", zap.String("root", root), zap.String("bucket", cfg.Storage.Bucket))
		plan, err := svc.Plan(ctx, purgePublish)
		if err != nil {
			return err
		}
		printPublishReport(l, plan)
		l.Info("Dry-run mode: No changes were made. Use --confirm to apply.")
		return nil
	}

	report, err := svc.Apply(ctx, purgePublish)
	if err != nil {
		return err
	}

	l.Info("Successfully executed actions", zap.Int("count", report.Executed))
	return nil
}

// printPublishReport prints a formatted plan using the logger.
func printPublishReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Publish report",
		zap.Bool("bucket_exists", plan.BucketExists),
		zap.Int("total_items", s.TotalItems),
		zap.Int("in_sync", s.InSync),
		zap.Int("missing_remote", s.MissingRemote),
		zap.Int("missing_local", s.MissingLocal),
		zap.Int("changed", s.Changed),
	)

	if len(plan.Actions) == 0 {
		return
	}

	l.Info("Planned actions",
		zap.Int("upload_actions", s.UploadActions),
		zap.Int("delete_actions", s.DeleteActions),
		zap.Int("total_actions", len(plan.Actions)),
	)

	maxShow := min(len(plan.Actions), 5)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}
