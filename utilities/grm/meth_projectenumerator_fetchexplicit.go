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
)

// FetchExplicit gets each project by ID in the given order.
// The first lookup failure aborts: there is no skip unknown project policy.
// When a project is not found the API returns 403 forbiden instead of 404 not found
func (projectEnumerator *ProjectEnumerator) FetchExplicit(ctx context.Context, projectIDs []string) (projects []Project, err error) {
	projects = make([]Project, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		project, err := projectEnumerator.projectsService.Get(projectID).Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("grm projectsService.Get %s %w", projectID, err)
		}
		projects = append(projects, newProject(project))
	}
	return projects, nil
}
