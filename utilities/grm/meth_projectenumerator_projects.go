// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grm

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/servicelimits/utilities/pol"
)

// Projects returns the target projects of the given project mode
func (projectEnumerator *ProjectEnumerator) Projects(ctx context.Context, projectMode pol.ProjectMode) ([]Project, error) {
	switch projectMode.Kind {
	case pol.EnumerateAll:
		return projectEnumerator.ListAll(ctx, projectMode.Filter)
	case pol.ExplicitList:
		return projectEnumerator.FetchExplicit(ctx, projectMode.IDs)
	}
	return nil, fmt.Errorf("grm unsupported project mode %s", projectMode.Kind)
}
