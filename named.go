package deciders

import (
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

type Named interface {
	TypeName() string
}

// NameOf reports the wire-friendly name of a command or event: an explicit
// TypeName when the value provides one, otherwise the reflected type as
// namespace:kebab-name. Generic arguments are trimmed before conversion.
func NameOf(value any) string {
	if typed, ok := value.(Named); ok == true {
		return typed.TypeName()
	}

	name := reflect.TypeOf(value).String()
	if index := strings.IndexByte(name, '['); index >= 0 {
		name = name[:index]
	}

	split := strings.Split(name, ".")
	segments := make([]string, len(split))
	for i, segment := range split {
		s := strings.TrimLeft(segment, "*")
		segments[i] = strcase.ToKebab(s)
	}

	namespace := segments[0]
	kind := strings.Join(segments[1:], "-")

	return namespace + ":" + kind
}
