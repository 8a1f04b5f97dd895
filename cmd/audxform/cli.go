// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audxform/internal/config"
	"github.com/ik5/audxform/internal/log"
)

// app carries the state shared by every sub-command.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	out io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:           "audxform",
		Short:         "Apply pitch, reverse, scale and smoothing effects to audio files",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to a YAML config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(
		newTransformCmd(a),
		newServeCmd(a),
		newEffectsCmd(a),
	)

	return rootCmd
}

// setup loads the configuration and configures logging.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}

	if err := log.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	a.cfg = cfg
	logrus.WithFields(logrus.Fields{
		"config":    a.configPath,
		"log_level": cfg.LogLevel,
	}).Debug("configuration loaded")

	return nil
}
