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
	"google.golang.org/api/cloudresourcemanager/v1"
)

// Project as known by resource manager, immutable for the duration of a run
type Project struct {
	ProjectID      string
	ProjectNumber  int64
	Name           string
	LifecycleState string
}

// ProjectEnumerator list or get projects from the resource manager API
type ProjectEnumerator struct {
	projectsService *cloudresourcemanager.ProjectsService
}

// NewProjectEnumerator create a project enumerator on a resource manager client
func NewProjectEnumerator(cloudresourcemanagerService *cloudresourcemanager.Service) *ProjectEnumerator {
	return &ProjectEnumerator{
		projectsService: cloudresourcemanagerService.Projects,
	}
}

func newProject(project *cloudresourcemanager.Project) Project {
	return Project{
		ProjectID:      project.ProjectId,
		ProjectNumber:  project.ProjectNumber,
		Name:           project.Name,
		LifecycleState: project.LifecycleState,
	}
}
