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
	"fmt"

	"google.golang.org/api/serviceusage/v1"
)

// StateEnabled is the only service state retained for export
const StateEnabled = "ENABLED"

// maxPageSize API max for services.list
const maxPageSize = 200

// FailurePolicy tells what to do when a service quota fetch fails
type FailurePolicy string

const (
	// Abort propagates the first fetch error, the whole run stops
	Abort FailurePolicy = "abort"
	// Isolate records the fetch error on the project and goes on with the next service
	Isolate FailurePolicy = "isolate"
)

// ServiceLimits quota limits of one service. Dropped services have no limits.
type ServiceLimits struct {
	Name    string
	State   string
	Dropped bool
	Limits  []*serviceusage.QuotaLimit
}

// ServiceError a service quota fetch failure recorded under the Isolate policy
type ServiceError struct {
	ProjectID   string
	ServiceName string
	Err         error
}

func (serviceError ServiceError) Error() string {
	return fmt.Sprintf("project %s service %s %v", serviceError.ProjectID, serviceError.ServiceName, serviceError.Err)
}

// ProjectLimits services of one project in discovery order
type ProjectLimits struct {
	ProjectID string
	Services  []ServiceLimits
	Errors    []ServiceError
}

// ServiceEnumerator discovers the services of a project and fetches their quota configuration
type ServiceEnumerator struct {
	servicesService *serviceusage.ServicesService
	failurePolicy   FailurePolicy
}

// NewServiceEnumerator create a service enumerator on a service usage client
func NewServiceEnumerator(serviceusageService *serviceusage.Service, failurePolicy FailurePolicy) (*ServiceEnumerator, error) {
	switch failurePolicy {
	case "":
		failurePolicy = Abort
	case Abort, Isolate:
	default:
		return nil, fmt.Errorf("gsu unsupported failure policy '%s' supported are %s %s", failurePolicy, Abort, Isolate)
	}
	return &ServiceEnumerator{
		servicesService: serviceusageService.Services,
		failurePolicy:   failurePolicy,
	}, nil
}
