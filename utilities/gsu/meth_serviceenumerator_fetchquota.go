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
	"fmt"
	"log"

	"github.com/BrunoReboul/servicelimits/utilities/grm"
)

// FetchQuota gets the service by exact name and returns its quota limits.
// The state read here is authoritative: a service not ENABLED is dropped, with no limits and no error.
func (serviceEnumerator *ServiceEnumerator) FetchQuota(ctx context.Context, project grm.Project, serviceName string) (serviceLimits ServiceLimits, err error) {
	projectKey := project.ProjectID
	if project.ProjectNumber != 0 {
		projectKey = fmt.Sprintf("%d", project.ProjectNumber)
	}
	name := fmt.Sprintf("projects/%s/services/%s", projectKey, serviceName)
	service, err := serviceEnumerator.servicesService.Get(name).Context(ctx).Do()
	if err != nil {
		return serviceLimits, fmt.Errorf("gsu servicesService.Get %s %w", name, err)
	}
	serviceLimits.Name = serviceName
	serviceLimits.State = service.State
	if service.State != StateEnabled {
		serviceLimits.Dropped = true
		log.Printf("gsu project %s service %s dropped, state %s", project.ProjectID, serviceName, service.State)
		return serviceLimits, nil
	}
	if service.Config != nil && service.Config.Quota != nil {
		serviceLimits.Limits = service.Config.Quota.Limits
	}
	return serviceLimits, nil
}
