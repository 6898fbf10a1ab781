package config

import (
	"flag"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// skippedConfigFlags is the list of command line flags on which the config schema check is disabled.
var skippedConfigFlags = []string{"print_version", "config_file"}

const flagTag = "flag"

var durationType = reflect.TypeOf(time.Duration(0))

// valueToString converts a config field value to its string representation suitable for flag setting.
func valueToString(v reflect.Value) (string, error) {
	if v.Type() == durationType {
		return time.Duration(v.Int()).String(), nil
	}
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.String:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported kind: %v", v.Kind())
	}
}

// collectAndRegisterFlags collects all set flags with their values from the given config struct `v`.
// The collected flags are put inside the given `flags` variable.
func collectAndRegisterFlags(flags map[ /*flagName*/ string] /*flagValue*/ string, v reflect.Value) error {
	for fieldIdx := 0; fieldIdx < v.NumField(); fieldIdx++ {
		field, fieldValue := v.Type().Field(fieldIdx), v.Field(fieldIdx)
		if fieldValue.Kind() == reflect.Pointer {
			if fieldValue.IsNil() { // Not set in the config file.
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		flagName, hasFlagName := field.Tag.Lookup(flagTag)
		// Recurse into nested sections that do not carry a flag name themselves.
		if fieldValue.Kind() == reflect.Struct && !hasFlagName {
			if err := collectAndRegisterFlags(flags, fieldValue); err != nil {
				return err
			}
			continue
		}
		if !hasFlagName {
			continue // Skip other fields.
		}
		stringValue, err := valueToString(fieldValue)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", field.Name, err)
		}
		// Check for duplicate flag entries.
		if _, alreadyExists := flags[flagName]; alreadyExists {
			return fmt.Errorf("flag '%s' has multiple entries in config: '%s'", flagName, field.Name)
		}
		flags[flagName] = stringValue
	}
	return nil
}

// setConfigFlags sets all the filled flags in the given `conf` to the global flag variables.
// Entries whose flag isn't defined by the running binary are skipped; the schema is shared by all binaries.
func setConfigFlags(conf *Config) error {
	registeredFlags := make(map[ /*flagName*/ string] /*flagValue*/ string)
	if err := collectAndRegisterFlags(registeredFlags, reflect.ValueOf(conf).Elem()); err != nil {
		return fmt.Errorf("failed to collect flags: %w", err)
	}
	for flagName, flagValue := range registeredFlags {
		if flag.Lookup(flagName) == nil {
			slog.Debug("Skipping config entry of an undefined flag.", "flag", flagName)
			continue
		}
		if setErr := flag.Set(flagName, flagValue); setErr != nil {
			return fmt.Errorf("failed to set flag %s: %w", flagName, setErr)
		}
	}
	return nil
}

// getDefinedFlags returns the set of defined flags inside the given config schema type `t`.
func getDefinedFlags(t reflect.Type) (map[ /*flagName*/ string]struct{}, error) {
	flagSet := make(map[ /*flagName*/ string]struct{})
	var walkFields func(t reflect.Type) error
	walkFields = func(t reflect.Type) error {
		for fieldIdx := 0; fieldIdx < t.NumField(); fieldIdx++ {
			field := t.Field(fieldIdx)
			if flagName, ok := field.Tag.Lookup(flagTag); ok && flagName != "" {
				if _, exists := flagSet[flagName]; exists {
					return fmt.Errorf("duplicate flag name '%s' in config: %s", flagName, field.Name)
				}
				flagSet[flagName] = struct{}{}
				continue
			}
			fieldType := field.Type
			if fieldType.Kind() == reflect.Pointer {
				fieldType = fieldType.Elem()
			}
			if fieldType.Kind() == reflect.Struct {
				if err := walkFields(fieldType); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walkFields(t); err != nil {
		return nil, err
	}
	return flagSet, nil
}

// CollectUnregisteredFlags collects all flags that haven't been registered in the config schema.
// An error exists in the results corresponding to each unregistered flag.
func CollectUnregisteredFlags() []error {
	definedFlags, err := getDefinedFlags(reflect.TypeOf(Config{}))
	if err != nil {
		return []error{err}
	}
	errs := make([]error, 0)
	flag.VisitAll(func(f *flag.Flag) {
		if strings.HasPrefix(f.Name, "test.") { // Skip test flags.
			return
		}
		if slices.Contains(skippedConfigFlags, f.Name) {
			return
		}
		if _, flagHasConfigEntry := definedFlags[f.Name]; !flagHasConfigEntry {
			errs = append(errs, fmt.Errorf("flag '%s' has not been defined in config schema", f.Name))
		}
	})
	return errs
}
