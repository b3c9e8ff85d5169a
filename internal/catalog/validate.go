package catalog

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a tool parameter is rejected by an
// allow-list. Its Error text is the exact string surfaced to the caller, so
// it always names the rejected value and enumerates the accepted ones.
type ValidationError struct {
	// Param is the name of the rejected parameter.
	Param string
	// Value is the rejected value.
	Value string
	// Valid enumerates the accepted values in catalog order.
	Valid []string
	// ParentParam and ParentValue are set when the rejection is scoped to a
	// parent parameter, e.g. a datastructure that is valid for some other
	// product but not the requested one.
	ParentParam string
	ParentValue string
}

func (e *ValidationError) Error() string {
	valid := strings.Join(e.Valid, ", ")
	if e.ParentParam != "" {
		return fmt.Sprintf("Error: Invalid %s '%s' for %s '%s'. Valid values are: %s",
			e.Param, e.Value, e.ParentParam, e.ParentValue, valid)
	}
	return fmt.Sprintf("Error: Invalid %s '%s'. Valid values are: %s", e.Param, e.Value, valid)
}

// ValidateFlat checks value against a flat allow-list.
func ValidateFlat(param, value string, list *AllowList) error {
	if list.Contains(value) {
		return nil
	}
	return &ValidationError{Param: param, Value: value, Valid: list.Values()}
}

// ValidateDependent checks a parent/child pair against a dependent
// allow-list. The parent is validated first so an unknown parent is reported
// against the parent universe, never as a child mismatch.
func ValidateDependent(parentParam, parentValue, childParam, childValue string, dep *DependentAllowList) error {
	if !dep.ContainsParent(parentValue) {
		return &ValidationError{Param: parentParam, Value: parentValue, Valid: dep.Parents()}
	}
	children := dep.ChildrenOf(parentValue)
	if children.Contains(childValue) {
		return nil
	}
	return &ValidationError{
		Param:       childParam,
		Value:       childValue,
		Valid:       children.Values(),
		ParentParam: parentParam,
		ParentValue: parentValue,
	}
}
