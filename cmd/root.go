package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/caja/cmd/box"
	"github.com/hance08/caja/cmd/template"
	"github.com/hance08/caja/cmd/transaction"
	"github.com/hance08/caja/internal/app"
	"github.com/hance08/caja/internal/config"
	"github.com/hance08/caja/internal/errhandler"
	"github.com/hance08/caja/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlag(os.Args[1:])

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	if err := initOwner(); err != nil {
		errhandler.Exit(err)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "caja",
		Short:         "caja keeps your money in boxes and tracks your savings goals",
		Long:          `caja is a CLI/TUI personal finance tool: record income and expenses into boxes and see when your savings goals will be reached.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	svc, owner := application.Service, application.Owner

	rootCmd.AddCommand(box.NewBoxCmd(svc, owner))
	rootCmd.AddCommand(transaction.NewTransactionCmd(svc, owner))
	rootCmd.AddCommand(template.NewTemplateCmd(svc, owner))

	rootCmd.AddCommand(NewAddCmd(svc, owner))
	rootCmd.AddCommand(NewSummaryCmd(svc, owner))
	rootCmd.AddCommand(NewGoalsCmd(svc, owner))
	rootCmd.AddCommand(NewInfoCmd(svc))

	err = rootCmd.Execute()
	cleanup()

	errhandler.Exit(err)
}

// configFlag picks --config out of args before cobra parses them, since the
// config decides which database the commands are built against.
func configFlag(args []string) string {
	for i, arg := range args {
		switch {
		case (arg == "--config" || arg == "-c") && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func initConfig() error {
	defaults := config.NewDefault()
	viper.SetDefault("owner", defaults.Owner)
	viper.SetDefault("database.path", defaults.Database.Path)
	viper.SetDefault("defaults.currency", defaults.Defaults.Currency)
	viper.SetDefault("defaults.locale", defaults.Defaults.Locale)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("CAJA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = defaults
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// initOwner runs the first-run wizard when no owner is configured. The
// answers are written back to the config file.
func initOwner() error {
	if strings.TrimSpace(cfg.Owner) != "" || !isInteractive() {
		return nil
	}

	owner, currency, err := prompts.PromptInitSetup(defaultOwner(), cfg.Defaults.Currency)
	if err != nil {
		return err
	}

	viper.Set("owner", owner)
	viper.Set("defaults.currency", currency)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	cfg.Owner = owner
	cfg.Defaults.Currency = currency

	pterm.Success.Printf("Configuration saved. Boxes will belong to: %s\n", owner)

	return nil
}

func defaultOwner() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
