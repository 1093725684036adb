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

package gsu

import (
	"context"

	"github.com/BrunoReboul/servicelimits/utilities/grm"
	"github.com/BrunoReboul/servicelimits/utilities/pol"
)

// Collect discovers the services of a project then fetches each service quota, sequentially
func (serviceEnumerator *ServiceEnumerator) Collect(ctx context.Context, project grm.Project, serviceMode pol.ServiceMode) (projectLimits ProjectLimits, err error) {
	projectLimits.ProjectID = project.ProjectID
	serviceNames, err := serviceEnumerator.Discover(ctx, project, serviceMode)
	if err != nil {
		return projectLimits, err
	}
	projectLimits.Services = make([]ServiceLimits, 0, len(serviceNames))
	for _, serviceName := range serviceNames {
		serviceLimits, err := serviceEnumerator.FetchQuota(ctx, project, serviceName)
		if err != nil {
			if serviceEnumerator.failurePolicy == Isolate {
				serviceError := ServiceError{
					ProjectID:   project.ProjectID,
					ServiceName: serviceName,
					Err:         err,
				}
				projectLimits.Errors = append(projectLimits.Errors, serviceError)
				continue
			}
			return projectLimits, err
		}
		projectLimits.Services = append(projectLimits.Services, serviceLimits)
	}
	return projectLimits, nil
}
