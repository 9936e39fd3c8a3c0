// file: cmd/backup.go
// version: 1.0.0
// guid: 5c8e2d71-a4b9-4f03-8e6d-1b7a9c3f0e26

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/jdfalk/library-catalog/internal/backup"
	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Save a compressed snapshot of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := backup.CreateBackup(config.AppConfig.StoragePath, backupConfig())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", info.Path)
		return nil
	},
}

// backupListCmd represents the backup list command
var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog backups, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backups, err := backup.ListBackups(config.AppConfig.BackupDir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(backups) == 0 {
			fmt.Fprintln(out, "No backups found")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CREATED\tSIZE\tFILE")
		for _, b := range backups {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", b.CreatedAt.Format("2006-01-02 15:04:05"), b.Size, b.Path)
		}
		return tw.Flush()
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Replace the catalog with a backup",
	Long: `Replace the catalog with the one stored in a backup archive. The
current catalog is backed up first, so a restore can itself be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		storagePath := config.AppConfig.StoragePath

		if _, err := os.Stat(storagePath); err == nil {
			info, err := backup.CreateBackup(storagePath, backupConfig())
			if err != nil {
				return fmt.Errorf("failed to back up current catalog: %w", err)
			}
			logger.Info("Backed up current catalog", zap.String("path", info.Path))
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		if err := backup.RestoreBackup(args[0], storagePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog restored from %s\n", args[0])
		return nil
	},
}

func backupConfig() backup.BackupConfig {
	cfg := backup.DefaultBackupConfig()
	cfg.BackupDir = config.AppConfig.BackupDir
	cfg.MaxBackups = config.AppConfig.MaxBackups
	return cfg
}

func init() {
	backupCmd.AddCommand(backupListCmd)
}
