package utils

import (
	"reflect"
	"strings"
)

// CollectionName derives the collection a record type is stored in by
// lowercasing the type name, e.g. Application -> "application".
func CollectionName(input any) string {

	targetType := reflect.TypeOf(input)
	if targetType == nil {
		panic("input must be a pointer to a struct or a struct")
	}

	for targetType.Kind() == reflect.Ptr {
		targetType = targetType.Elem()
	}

	if targetType.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return strings.ToLower(targetType.Name())

}
