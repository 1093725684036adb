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
	"strings"

	"github.com/BrunoReboul/servicelimits/utilities/grm"
	"github.com/BrunoReboul/servicelimits/utilities/pol"
	"google.golang.org/api/serviceusage/v1"
)

// Discover returns the names of the services to inspect in a project.
// The result is advisory: the state is checked again when fetching the quota.
func (serviceEnumerator *ServiceEnumerator) Discover(ctx context.Context, project grm.Project, serviceMode pol.ServiceMode) (serviceNames []string, err error) {
	switch serviceMode.Kind {
	case pol.EnumerateAll:
		return serviceEnumerator.listEnabled(ctx, project)
	case pol.ExplicitList:
		return dedup(serviceMode.Names), nil
	}
	return nil, fmt.Errorf("gsu unsupported service mode %s", serviceMode.Kind)
}

func (serviceEnumerator *ServiceEnumerator) listEnabled(ctx context.Context, project grm.Project) (serviceNames []string, err error) {
	serviceNames = make([]string, 0)
	parent := fmt.Sprintf("projects/%s", project.ProjectID)
	err = serviceEnumerator.servicesService.List(parent).Filter("state:ENABLED").PageSize(maxPageSize).Pages(ctx,
		func(listServicesResponse *serviceusage.ListServicesResponse) error {
			for _, service := range listServicesResponse.Services {
				if service.State != StateEnabled {
					continue
				}
				serviceNames = append(serviceNames, getServiceName(service))
			}
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("gsu servicesService.List %s %w", parent, err)
	}
	return dedup(serviceNames), nil
}

// getServiceName prefers config.name, falls back on the last part of projects/123/services/name
func getServiceName(service *serviceusage.GoogleApiServiceusageV1Service) string {
	if service.Config != nil && service.Config.Name != "" {
		return service.Config.Name
	}
	parts := strings.Split(service.Name, "/")
	return parts[len(parts)-1]
}

func dedup(names []string) []string {
	seen := make(map[string]bool, len(names))
	deduped := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		deduped = append(deduped, name)
	}
	return deduped
}
