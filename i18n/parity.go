package i18n

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckParity compares the shape of two copy bags: every string must be
// set in both and parallel tables must have the same length.
func CheckParity(a, b CopyBag) error {
	problems := []string{}
	compareValues(reflect.ValueOf(a), reflect.ValueOf(b), "CopyBag", &problems)
	if len(problems) > 0 {
		return fmt.Errorf("copy %s/%s out of parity: %s", a.Locale, b.Locale, strings.Join(problems, ", "))
	}
	return nil
}

// CheckAll checks every locale against english
func CheckAll() error {
	return CheckParity(english(), italian())
}

func compareValues(a, b reflect.Value, path string, problems *[]string) {
	switch a.Kind() {
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			compareValues(a.Field(i), b.Field(i), path+"."+a.Type().Field(i).Name, problems)
		}
	case reflect.Slice:
		if a.Len() != b.Len() {
			*problems = append(*problems, fmt.Sprintf("%s has %d and %d entries", path, a.Len(), b.Len()))
			return
		}
		if a.Len() == 0 {
			*problems = append(*problems, path+" is empty")
		}
		for i := 0; i < a.Len(); i++ {
			compareValues(a.Index(i), b.Index(i), fmt.Sprintf("%s[%d]", path, i), problems)
		}
	case reflect.String:
		if a.String() == "" || b.String() == "" {
			*problems = append(*problems, path+" is missing a translation")
		}
	}
}
