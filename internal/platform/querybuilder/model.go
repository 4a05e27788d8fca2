package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an InsertBuilder from a struct's db tags. Fields
// tagged `db:"-"` or listed in skip are excluded, which lets callers
// leave serial primary keys to the database.
func InsertModel(table string, model any, skip ...string) (*InsertBuilder, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("insert model is nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("insert model must be a struct, got %s", v.Kind())
	}

	skipSet := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipSet[s] = struct{}{}
	}

	var (
		columns []string
		values  []any
	)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		column := strings.Split(tag, ",")[0]
		if _, skipped := skipSet[column]; skipped {
			continue
		}
		columns = append(columns, column)
		values = append(values, v.Field(i).Interface())
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("insert model %s has no db-tagged fields", t.Name())
	}

	return InsertInto(table).Columns(columns...).Values(values...), nil
}
