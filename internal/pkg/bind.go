package pkg

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to obj and validates it. On failure
// it writes a 400 failure envelope and returns false. Field-level validation
// errors are summarized in the envelope's detail field using JSON tag names
// where the concrete type makes them available.
//
// Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		writeBindFailure(c, err, obj)
		return false
	}
	return true
}

func writeBindFailure(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		Write(c, FailureMessage(err.Error()))
		return
	}

	jsonTags := buildJSONTagMap(obj)

	details := make([]string, 0, len(ve))
	for _, fe := range ve {
		name := strings.ToLower(fe.Field())
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		details = append(details, name+": "+msg)
	}
	sort.Strings(details)

	res := FailureMessage("validation error")
	res.Detail = strings.Join(details, "; ")
	Write(c, res)
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// Returns nil when obj is not a struct or pointer to one.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if name := parseJSONTagName(f.Tag.Get("json")); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
