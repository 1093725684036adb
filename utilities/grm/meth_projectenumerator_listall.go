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

	"google.golang.org/api/cloudresourcemanager/v1"
)

// ListAll returns every project visible to the caller matching the filter, all pages included, in the API order
// https://cloud.google.com/resource-manager/reference/rest/v1/projects/list
func (projectEnumerator *ProjectEnumerator) ListAll(ctx context.Context, filter string) (projects []Project, err error) {
	projects = make([]Project, 0)
	call := projectEnumerator.projectsService.List()
	if filter != "" {
		call = call.Filter(filter)
	}
	err = call.Pages(ctx, func(listProjectsResponse *cloudresourcemanager.ListProjectsResponse) error {
		for _, project := range listProjectsResponse.Projects {
			projects = append(projects, newProject(project))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("grm projectsService.List filter '%s' %w", filter, err)
	}
	return projects, nil
}
