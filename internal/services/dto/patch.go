package dto

import (
	"reflect"
	"strings"

	"sitecms_backend/internal/repositories"
)

// ToPatch turns an update request into a sparse patch: every non-nil
// pointer field becomes an entry keyed by its json name.
func ToPatch(req interface{}) repositories.Patch {
	patch := repositories.Patch{}

	rv := reflect.Indirect(reflect.ValueOf(req))
	if rv.Kind() != reflect.Struct {
		return patch
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)
		if !field.IsExported() || value.Kind() != reflect.Pointer || value.IsNil() {
			continue
		}

		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		patch[name] = value.Elem().Interface()
	}
	return patch
}

// Pagination is the skip/limit pair every list endpoint accepts.
type Pagination struct {
	Skip  int `form:"skip" json:"skip" validate:"min=0"`
	Limit int `form:"limit" json:"limit" validate:"min=1,max=100"`
}

const DefaultLimit = 100

func DefaultPagination() Pagination {
	return Pagination{Skip: 0, Limit: DefaultLimit}
}
