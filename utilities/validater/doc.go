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

/*
Package validater checks settings struct fields against their 'valid' tag

- valid:"isNotZeroValue" rejects empty strings, slices, maps and zero integers
- valid:"isOneOf=a|b" accepts an empty string or one of the listed values
- valid:"-" skips a struct field
*/
package validater
