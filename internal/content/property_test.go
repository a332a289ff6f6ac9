package content

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func nonEmptyText() gopter.Gen {
	return gen.AlphaString().SuchThat(func(s string) bool { return s != "" })
}

func TestBlogProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	registry := Default()

	properties.Property("valid blogs round-trip unchanged", prop.ForAll(
		func(title, date, image string) bool {
			raw := map[string]any{"title": title, "date": date, "image": image}
			blog, err := registry.ValidateBlog("post", raw)
			if err != nil {
				return false
			}
			return blog.Title == title && blog.Date == date && blog.Image == image
		},
		nonEmptyText(),
		nonEmptyText(),
		nonEmptyText(),
	))

	properties.Property("validation is idempotent", prop.ForAll(
		func(title, date, image string) bool {
			raw := map[string]any{"title": title, "date": date, "image": image}
			first, err := registry.Validate(CollectionBlogs, "post", raw)
			if err != nil {
				return false
			}
			second, err := registry.Validate(CollectionBlogs, "post", raw)
			if err != nil {
				return false
			}
			return first.Equal(second)
		},
		nonEmptyText(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestProjectProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(5678)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	registry := Default()

	properties.Property("stack order is preserved", prop.ForAll(
		func(stack []string) bool {
			raw := map[string]any{
				"title": "Project",
				"url":   "https://example.com",
				"image": "/x.png",
				"stack": toAny(stack),
			}
			project, err := registry.ValidateProject("p", raw)
			if err != nil {
				return false
			}
			return slices.Equal(project.Stack, stack)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("any missing field is named", prop.ForAll(
		func(idx int) bool {
			fields := ProjectSchema().FieldNames()
			raw := map[string]any{
				"title": "Project",
				"url":   "https://example.com",
				"image": "/x.png",
				"stack": []any{"Go"},
			}
			delete(raw, fields[idx])

			_, err := registry.Validate(CollectionProjects, "p", raw)
			ve, ok := err.(*ValidationError)
			if !ok || len(ve.Problems) != 1 {
				return false
			}
			missing, ok := ve.Problems[0].(*MissingFieldError)
			return ok && missing.Field == fields[idx]
		},
		gen.IntRange(0, 3),
	))

	properties.Property("urls with spaces and no scheme are rejected", prop.ForAll(
		func(a, b string) bool {
			raw := map[string]any{
				"title": "Project",
				"url":   a + " " + b,
				"image": "/x.png",
				"stack": []any{},
			}
			_, err := registry.Validate(CollectionProjects, "p", raw)
			ve, ok := err.(*ValidationError)
			if !ok {
				return false
			}
			_, ok = ve.Problems[0].(*MalformedURLError)
			return ok
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func toAny(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
