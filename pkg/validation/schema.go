package validation

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// StructuredSchema describes the structured document emitted for a valid
// model.
func StructuredSchema() *openapi3.Schema {
	hint := openapi3.NewObjectSchema().
		WithProperty("description", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("cost", openapi3.NewIntegerSchema().WithMin(0)).
		WithoutAdditionalProperties()
	hint.Required = []string{"description", "cost"}

	doc := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("author", openapi3.NewStringSchema()).
		WithProperty("category", openapi3.NewStringSchema().WithEnum(enumValues(model.Categories())...)).
		WithProperty("difficulty", openapi3.NewStringSchema().WithEnum(enumValues(model.Difficulties())...)).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("discord", openapi3.NewStringSchema()).
		WithProperty("flag", openapi3.NewStringSchema().WithPattern(model.FlagPattern())).
		WithProperty("port", openapi3.NewIntegerSchema().WithMin(model.MinPort).WithMax(model.MaxPort)).
		WithProperty("hints", openapi3.NewArraySchema().WithItems(hint)).
		WithProperty("requirements", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithoutAdditionalProperties()
	doc.Required = []string{"name", "author", "category", "difficulty", "description", "discord", "flag"}
	return doc
}

func enumValues[T ~string](values []T) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
