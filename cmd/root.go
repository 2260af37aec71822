package main

import (
	"errors"

	"launcher-icon-generator/config"
	"launcher-icon-generator/services"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// configFile optional config file path, icongen.yaml in the working directory otherwise
	configFile string
	devMode    bool
)

var rootCommand = &cobra.Command{
	Use:           "icongen",
	Short:         "Generate Android launcher icons and the store icon from one source image",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.New(), configFile)
		if err != nil {
			logger, _ := newLogger(config.Default().Log, devMode)
			logger.Error("failed to load config", zap.Error(err))
			_ = logger.Sync()
			return err
		}

		logger, err := newLogger(c.Log, devMode)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		svc, err := services.NewResizingService(c, logger)
		if err != nil {
			logger.Error("failed to create resizing service", zap.Error(err))
			return err
		}

		err = generate(cmd.Context(), svc, logger)
		switch {
		case errors.Is(err, services.ErrInterrupted):
			logger.Error("operation cancelled")
		case errors.Is(err, services.ErrSourceNotFound):
			logger.Error("source icon not found, place it in the project root", zap.String("path", c.Source), zap.Error(err))
		case err != nil:
			logger.Error("icon generation failed", zap.Error(err))
		}
		return err
	},
}

func init() {
	flags := rootCommand.Flags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")
	flags.BoolVar(&devMode, "dev", false, "development mode (debug level, colored console output)")
}
