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

package pol

// Mode tells how a kind of resource is selected
type Mode int

const (
	// EnumerateAll selects every resource returned by a listing, optionally filtered
	EnumerateAll Mode = iota
	// ExplicitList selects only the configured identifiers, in the configured order
	ExplicitList
)

func (m Mode) String() string {
	switch m {
	case EnumerateAll:
		return "enumerateAll"
	case ExplicitList:
		return "explicitList"
	}
	return "unknown"
}

// Settings inclusion settings as found in the settings YAML file
type Settings struct {
	IncludeAllProjects        bool     `yaml:"includeAllProjects"`
	ProjectFilter             string   `yaml:"projectFilter"`
	IncludeProjects           []string `yaml:"includeProjects"`
	IncludeAllEnabledServices bool     `yaml:"includeAllEnabledServices"`
	IncludeServices           []string `yaml:"includeServices"`
}

// ProjectMode project selection: Filter is meaningful for EnumerateAll, IDs for ExplicitList
type ProjectMode struct {
	Kind   Mode
	Filter string
	IDs    []string
}

// ServiceMode service selection: Names is meaningful for ExplicitList only
type ServiceMode struct {
	Kind  Mode
	Names []string
}

// Policy resolved inclusion policy, immutable once built
type Policy struct {
	projectMode ProjectMode
	serviceMode ServiceMode
	warnings    []string
}

// ProjectMode returns the project selection mode
func (p *Policy) ProjectMode() ProjectMode {
	return p.projectMode
}

// ServiceMode returns the service selection mode
func (p *Policy) ServiceMode() ServiceMode {
	return p.serviceMode
}

// Warnings lists the settings ignored by precedence
func (p *Policy) Warnings() []string {
	return p.warnings
}
