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

package forest

import "github.com/sirupsen/logrus"

// Log receives debug entries for the structural operations that transfer or
// drop whole subtrees. It stays at logrus' default Info level, so nothing is
// written unless a caller lowers it.
var Log = logrus.New()

func logOp(op string, fields logrus.Fields) {
	if !Log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	entry := Log.WithField("op", op)
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Debug("forest")
}
