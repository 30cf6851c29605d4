// Package colname resolves database column names for ORM-style struct
// models and provides the case conversions that naming convention relies on.
//
// A field maps to the name given in its `db` tag when present; otherwise
// the field name is converted to snake_case. A tag of "-" excludes the
// field from the mapping.
package colname

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// ToSnake converts a name to snake_case (UserID -> user_id).
func ToSnake(name string) string { return strcase.ToSnake(name) }

// ToCamel converts a name to lowerCamelCase (user_id -> userID).
func ToCamel(name string) string { return strcase.ToLowerCamel(name) }

// ToPascal converts a name to PascalCase (user_id -> UserID).
func ToPascal(name string) string { return strcase.ToCamel(name) }

// Column returns the database column name for the named field of model.
//
// model must be a struct or a pointer to one. The `db` tag wins when
// present (options after a comma are ignored); otherwise the field name is
// snake_cased. Returns an error if the field does not exist, is excluded
// with `db:"-"`, or model is not a struct.
func Column(model any, field string) (string, error) {
	t, err := structType(model)
	if err != nil {
		return "", err
	}

	f, ok := t.FieldByName(field)
	if !ok {
		return "", fmt.Errorf("colname: %s has no field %q", t.Name(), field)
	}

	name := columnName(f)
	if name == "" {
		return "", fmt.Errorf("colname: field %s.%s is not mapped to a column", t.Name(), field)
	}
	return name, nil
}

// Columns returns the column names for all exported fields of model, in
// declaration order, skipping fields excluded with `db:"-"`.
func Columns(model any) ([]string, error) {
	t, err := structType(model)
	if err != nil {
		return nil, err
	}

	cols := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if name := columnName(f); name != "" {
			cols = append(cols, name)
		}
	}
	return cols, nil
}

// columnName resolves a single field's column name, or "" if excluded.
func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("db")
	if tag == "" {
		return strcase.ToSnake(f.Name)
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return strcase.ToSnake(f.Name)
	}
	return name
}

// structType unwraps pointers and validates that model is a struct.
func structType(model any) (reflect.Type, error) {
	if model == nil {
		return nil, fmt.Errorf("colname: model is nil")
	}

	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("colname: model must be a struct, got %s", t.Kind())
	}
	return t, nil
}
