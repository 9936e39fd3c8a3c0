// file: cmd/root.go
// version: 2.0.0
// guid: 6a7b8c9d-0e1f-2a3b-4c5d-6e7f8a9b0c1d

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/logging"
	"github.com/jdfalk/library-catalog/internal/shell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var storagePath string
var backupDir string
var maxBackups int
var logLevel string

// configErr holds a failure from initConfig, which cannot return one.
var configErr error

var logger = zap.NewNop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage a personal library catalog",
	Long: `Library keeps a catalog of your books in a JSON file: add and remove
books, search by title, author or year, and track which ones are issued.

Run without a subcommand to start the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		l, err := logging.New(config.AppConfig.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug("Using config file", zap.String("path", used))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runShell,
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	sh := shell.New(config.AppConfig.StoragePath, cmd.InOrStdin(), cmd.OutOrStdout(), catalog.WithLogger(logger))
	return sh.Run(cmd.Context())
}

// openLibrary loads the configured catalog.
func openLibrary() (*catalog.Library, error) {
	return catalog.New(config.AppConfig.StoragePath, catalog.WithLogger(logger))
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.library-catalog.yaml)")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", config.DefaultStoragePath, "path to the catalog JSON file")
	rootCmd.PersistentFlags().StringVar(&backupDir, "backup-dir", config.DefaultBackupDir, "directory for catalog backups")
	rootCmd.PersistentFlags().IntVar(&maxBackups, "max-backups", config.DefaultMaxBackups, "number of backups to keep (0 keeps all)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
}

// bindFlags ties the persistent flags to viper keys. It runs on every
// initialization so a viper.Reset between executions does not lose them.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("storage_path", flags.Lookup("storage"))
	viper.BindPFlag("backup_dir", flags.Lookup("backup-dir"))
	viper.BindPFlag("max_backups", flags.Lookup("max-backups"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	configErr = nil
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(config.DefaultConfigName)
	}

	viper.SetEnvPrefix("LIBRARY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Only an explicitly requested config file has to exist.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config: %w", err)
		}
	}

	config.InitConfig()
}

