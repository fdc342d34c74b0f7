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

package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outtree/forest/internal/literal"
)

func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verify FILE...",
		Short:   "Check the structural invariants of forests",
		Example: `forestctl verify a.yaml b.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var multiE *multierror.Error
			for _, name := range args {
				f, err := literal.ReadFile(name)
				if err == nil {
					err = f.Verify()
				}
				if err != nil {
					multiE = multierror.Append(multiE, errors.Wrap(err, name))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d nodes)\n", name, f.Size())
			}
			return multiE.ErrorOrNil()
		},
	}
}
