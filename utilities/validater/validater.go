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

package validater

import (
	"fmt"
	"log"
	"reflect"
	"strings"
)

const tagKeyName = "valid"

type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	if value == nil {
		return false, fmt.Errorf("Should NOT be nil")
	}
	kind := reflect.TypeOf(value).Kind()
	switch kind {
	case reflect.String, reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int, reflect.Int64:
		if reflect.ValueOf(value).Int() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isOneOfValidater accepts an empty string or one of the listed values
type isOneOfValidater struct {
	acceptedValues []string
}

func (v isOneOfValidater) validate(value interface{}) (bool, error) {
	reflectValue := reflect.ValueOf(value)
	if reflectValue.Kind() != reflect.String {
		return false, fmt.Errorf("Should be a string")
	}
	s := reflectValue.String()
	if s == "" {
		return true, nil
	}
	for _, acceptedValue := range v.acceptedValues {
		if s == acceptedValue {
			return true, nil
		}
	}
	return false, fmt.Errorf("Should be one of %v found '%s'", v.acceptedValues, s)
}

func getValidater(tagValue string) validater {
	tagValueParts := strings.SplitN(tagValue, "=", 2)
	switch tagValueParts[0] {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isOneOf":
		if len(tagValueParts) == 2 {
			return isOneOfValidater{acceptedValues: strings.Split(tagValueParts[1], "|")}
		}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if !typeField.IsExported() {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with unexported fields only, tag it valid:"-"
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
		} else if valueField.IsValid() {
			ok, err := getValidater(typeField.Tag.Get(tagKeyName)).validate(valueField.Interface())
			if !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
			}
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct, logs each error found
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errors := getValidationErrors(structure, pedigree)
	if len(errors) > 0 {
		for _, err := range errors {
			log.Println(err)
		}
		return fmt.Errorf("settings validation failed, %d error(s), first: %v", len(errors), errors[0])
	}
	return nil
}
