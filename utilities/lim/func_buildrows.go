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

package lim

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/BrunoReboul/servicelimits/utilities/gsu"
	"google.golang.org/api/serviceusage/v1"
)

// Builder flattens quota limits into export rows
type Builder struct {
	now func() time.Time
}

// NewBuilder create a row builder, now defaults to time.Now
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// BuildRows emits one row per quota limit of each retained service.
// Dropped services and services without limits produce no row.
func (builder *Builder) BuildRows(projectsLimits []gsu.ProjectLimits) (rows []ExportRow, err error) {
	rows = make([]ExportRow, 0)
	for _, projectLimits := range projectsLimits {
		for _, serviceLimits := range projectLimits.Services {
			if serviceLimits.Dropped {
				continue
			}
			for _, quotaLimit := range serviceLimits.Limits {
				if quotaLimit == nil {
					continue
				}
				row, err := builder.buildRow(projectLimits.ProjectID, serviceLimits.Name, quotaLimit)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

func (builder *Builder) buildRow(projectID string, serviceName string, quotaLimit *serviceusage.QuotaLimit) (row ExportRow, err error) {
	values, err := FlattenValues(quotaLimit.Values)
	if err != nil {
		return row, fmt.Errorf("lim project %s service %s limit %s %w", projectID, serviceName, quotaLimit.Name, err)
	}
	return ExportRow{
		ProjectID:    projectID,
		Service:      serviceName,
		Name:         quotaLimit.Name,
		Description:  quotaLimit.Description,
		DefaultLimit: quotaLimit.DefaultLimit,
		MaxLimit:     quotaLimit.MaxLimit,
		FreeTier:     quotaLimit.FreeTier,
		Duration:     quotaLimit.Duration,
		Metric:       quotaLimit.Metric,
		Unit:         quotaLimit.Unit,
		DisplayName:  quotaLimit.DisplayName,
		UpdateTime:   builder.now(),
		Values:       values,
	}, nil
}

// FlattenValues turns the values map into key/value pairs sorted by key.
// The API transports int64 values as strings.
func FlattenValues(m map[string]string) ([]KeyValue, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]KeyValue, 0, len(m))
	for _, k := range keys {
		value, err := strconv.ParseInt(m[k], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value of key '%s' is not an int64 '%s'", k, m[k])
		}
		values = append(values, KeyValue{Key: k, Value: value})
	}
	return values, nil
}
