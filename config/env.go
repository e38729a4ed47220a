package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// loadFromEnvironment fills the config from environment variables using the
// env/default struct tags.
func loadFromEnvironment(config *Config) error {
	return loadStruct(reflect.ValueOf(config).Elem())
}

func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		tags := t.Field(i)

		if !field.CanSet() {
			continue
		}

		// Config sections nest one level deep; recurse into them.
		if field.Kind() == reflect.Struct {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}

		envName, ok := tags.Tag.Lookup("env")
		if !ok {
			continue
		}

		raw := os.Getenv(envName)
		if raw == "" {
			raw = tags.Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		if err := assign(field, raw); err != nil {
			return fmt.Errorf("%s (field %s): %w", envName, tags.Name, err)
		}
	}

	return nil
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", raw, err)
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
		return nil

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse bool %q: %w", raw, err)
		}
		field.SetBool(b)
		return nil

	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("parse int %q: %w", raw, err)
		}
		field.SetInt(n)
		return nil

	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
}
