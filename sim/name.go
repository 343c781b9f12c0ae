package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidateName checks that a component name follows the naming convention.
// A name is a series of dot-separated elements such as "Model.Sum[2]". Each
// element starts with a capital letter, contains no '_', '-' or quote, and
// may end with integer indices in square brackets.
func ValidateName(name string) error {
	for _, elem := range strings.Split(name, ".") {
		if err := validateNameElement(elem); err != nil {
			return fmt.Errorf("name %q is not valid: %w", name, err)
		}
	}

	return nil
}

// NameMustBeValid panics if the name does not follow the naming convention.
func NameMustBeValid(name string) {
	if err := ValidateName(name); err != nil {
		panic(err.Error())
	}
}

func validateNameElement(elem string) error {
	base, indices, _ := strings.Cut(elem, "[")
	if base == "" {
		return errors.New("empty element")
	}

	if strings.ContainsAny(base, "_-\"']") {
		return fmt.Errorf("element %q contains an invalid character", base)
	}

	if base[0] < 'A' || base[0] > 'Z' {
		return fmt.Errorf("element %q must start with a capital letter", base)
	}

	if indices == "" {
		return nil
	}

	for _, index := range strings.Split("["+indices, "[")[1:] {
		digits, found := strings.CutSuffix(index, "]")
		if !found {
			return fmt.Errorf("unmatched bracket in %q", elem)
		}

		if _, err := strconv.Atoi(digits); err != nil {
			return fmt.Errorf("index %q of %q is not an integer", digits, elem)
		}
	}

	return nil
}
