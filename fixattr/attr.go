package fixattr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/jwhart/fixgo/fix"
)

// keyFor builds a fix.Key from a tag's parsed key string, treating an
// all-digit key as a tag number and anything else as a dictionary name.
func keyFor(key string) fix.Key {
	if isDigits(key) {
		return fix.ByNumber(key)
	}
	return fix.ByName(key)
}

// structFields walks v (a pointer to struct) and calls fn for every
// exported field carrying a non-ignored fixattr tag.
func structFields(v interface{}, tagName string, fn func(field reflect.Value, info *tagInfo) error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return ErrNotPointer
	}
	if rv.IsNil() {
		return ErrNilPointer
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get(tagName)
		if tag == "" {
			continue
		}
		info, err := parseTag(tag)
		if err != nil {
			return fmt.Errorf("field %s: %w", rt.Field(i).Name, err)
		}
		if info.ignore {
			continue
		}

		if err := fn(field, info); err != nil {
			return fmt.Errorf("field %s: %w", rt.Field(i).Name, err)
		}
	}
	return nil
}

// Apply populates the exported, tagged fields of v (a pointer to
// struct) from sec, leaving a field untouched if its tag's key is not
// present in sec.
func Apply(sec *fix.Section, v interface{}, opts ...Option) error {
	if sec == nil {
		return ErrNilSection
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	return structFields(v, cfg.tagName, func(field reflect.Value, info *tagInfo) error {
		raw, err := sec.Get(keyFor(info.key))
		if err != nil {
			return nil
		}
		return setFieldValue(field, raw)
	})
}

// Extract writes the exported, tagged fields of v (a pointer to
// struct) into sec, skipping zero-value fields tagged omitempty.
func Extract(sec *fix.Section, v interface{}, opts ...Option) error {
	if sec == nil {
		return ErrNilSection
	}
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	return structFields(v, cfg.tagName, func(field reflect.Value, info *tagInfo) error {
		if info.omitEmpty && field.IsZero() {
			return nil
		}
		raw, err := formatFieldValue(field)
		if err != nil {
			return err
		}
		var setOpts []fix.SetOption
		if cfg.ignoreSpec {
			setOpts = append(setOpts, fix.WithIgnoreSpec(true))
		}
		return sec.Set(keyFor(info.key), raw, setOpts...)
	})
}

// setFieldValue converts a raw wire value into field, performing the
// scalar conversion its Kind requires.
func setFieldValue(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(i)
		return nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
		return nil

	case reflect.Bool:
		b, err := parseFIXBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
}

// formatFieldValue renders field as the raw wire value FIX expects for
// its Kind: decimal for numbers, "Y"/"N" for booleans.
func formatFieldValue(field reflect.Value) (string, error) {
	switch field.Kind() {
	case reflect.String:
		return field.String(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10), nil

	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64), nil

	case reflect.Bool:
		if field.Bool() {
			return "Y", nil
		}
		return "N", nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, field.Type())
	}
}

// parseFIXBool accepts FIX's BOOLEAN convention ("Y"/"N") along with
// the usual Go-ish spellings, case-insensitively.
func parseFIXBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "true", "1", "yes":
		return true, nil
	case "n", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("fixattr: cannot parse %q as bool", raw)
	}
}
