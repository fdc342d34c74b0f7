// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd holds the forestctl commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/outtree/forest"
	"github.com/outtree/forest/internal/logger"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
	hideLogTime bool
	hideLogPath bool
	colorMode   string
	logLevel    string
}

const (
	colorModeNever  = "never"
	colorModeAlways = "always"
)

var supportedColorModes = []string{
	colorModeNever,
	colorModeAlways,
}

const envPrefix = "FORESTCTL"

var longRootCmdDescription = `forestctl loads forests written as YAML literals and runs the
container operations on them: structural dumps, traversals in flat or preorder
order, removal, unjoin and append, and the invariant checker.
`

// NewRootCmd returns the forestctl command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "forestctl",
		Short:         "Inspect and reshape forests of strings.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file of forestctl, any format viper reads")
	flags.BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug mode, logging every structural operation")
	flags.BoolVar(&opts.hideLogTime, "hide-time", false, "hide the log time")
	flags.BoolVar(&opts.hideLogPath, "hide-path", true, "hide the log path")
	flags.StringVar(&opts.colorMode, "color", colorModeAlways, fmt.Sprintf("set the log color mode, the possible values can be %v", supportedColorModes))
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level when debug mode is off")

	rootCmd.AddCommand(
		NewDumpCmd(),
		NewStatsCmd(),
		NewWalkCmd(),
		NewRemoveCmd(),
		NewUnjoinCmd(),
		NewAppendCmd(),
		NewVerifyCmd(),
		NewVersionCmd(),
	)
	return rootCmd
}

// Execute runs forestctl with the process arguments.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("forestctl-%s: %v", Version, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set. Values set on
// the command line win over both.
func initConfig(cmd *cobra.Command, v *viper.Viper, opts *rootOpts) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if opts.cfgFile != "" {
		v.SetConfigFile(opts.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", opts.cfgFile, err)
		}
	}

	colorMode := v.GetString("color")
	if colorMode != colorModeNever && colorMode != colorModeAlways {
		return fmt.Errorf("color mode must be one of %v, got %q", supportedColorModes, colorMode)
	}

	return logger.Init(logger.LogOptions{
		Verbose:      v.GetBool("debug"),
		Level:        v.GetString("log-level"),
		DisableColor: colorMode == colorModeNever,
		HideLogTime:  v.GetBool("hide-time"),
		HideLogPath:  v.GetBool("hide-path"),
		Output:       cmd.ErrOrStderr(),
	}, forest.Log)
}
