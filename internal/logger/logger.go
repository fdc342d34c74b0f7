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

// Package logger configures logrus for forestctl.
package logger

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose sets the debug level. It wins over Level.
	Verbose bool
	// Level is a logrus level name, "info" when empty.
	Level string
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	HideLogTime  bool
	HideLogPath  bool
	// Output defaults to stderr.
	Output io.Writer
}

// Init applies options to the standard logrus logger and to every logger in
// extra, typically forest.Log.
func Init(options LogOptions, extra ...*logrus.Logger) error {
	level := logrus.InfoLevel
	if options.Level != "" {
		l, err := logrus.ParseLevel(options.Level)
		if err != nil {
			return errors.Errorf("failed to init logger: %v", err)
		}
		level = l
	}
	if options.Verbose {
		level = logrus.DebugLevel
	}

	for _, l := range append([]*logrus.Logger{logrus.StandardLogger()}, extra...) {
		if l == nil {
			continue
		}
		l.SetLevel(level)
		l.SetReportCaller(!options.HideLogPath)
		l.SetFormatter(&Formatter{
			DisableColor: options.DisableColor,
			HideLogTime:  options.HideLogTime,
			HideLogPath:  options.HideLogPath,
		})
		if options.Output != nil {
			l.SetOutput(options.Output)
		}
	}
	return nil
}
