package content

import (
	"github.com/templui/folio/internal/model"
)

const (
	CollectionBlogs    = "blogs"
	CollectionProjects = "projects"
)

// BlogSchema is the shape of a blog post.
func BlogSchema() Schema {
	return NewSchema(
		RequiredText("title"),
		Text("date"),
		Text("image"),
	)
}

// ProjectSchema is the shape of a portfolio project.
func ProjectSchema() Schema {
	return NewSchema(
		RequiredText("title"),
		URL("url"),
		Text("image"),
		TextList("stack"),
	)
}

// Default returns a registry with the site's collections registered.
func Default(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	r.MustRegister(CollectionBlogs, BlogSchema())
	r.MustRegister(CollectionProjects, ProjectSchema())
	return r
}

func DecodeBlog(rec Record) model.BlogEntry {
	return model.BlogEntry{
		Slug:  rec.Entry(),
		Title: rec.Text("title"),
		Date:  rec.Text("date"),
		Image: rec.Text("image"),
	}
}

func DecodeProject(rec Record) model.ProjectEntry {
	return model.ProjectEntry{
		Slug:  rec.Entry(),
		Title: rec.Text("title"),
		URL:   rec.Text("url"),
		Image: rec.Text("image"),
		Stack: rec.TextList("stack"),
	}
}

// ValidateBlog validates raw as a blog entry and decodes it.
func (r *Registry) ValidateBlog(slug string, raw map[string]any) (model.BlogEntry, error) {
	rec, err := r.Validate(CollectionBlogs, slug, raw)
	if err != nil {
		return model.BlogEntry{}, err
	}
	return DecodeBlog(rec), nil
}

// ValidateProject validates raw as a project entry and decodes it.
func (r *Registry) ValidateProject(slug string, raw map[string]any) (model.ProjectEntry, error) {
	rec, err := r.Validate(CollectionProjects, slug, raw)
	if err != nil {
		return model.ProjectEntry{}, err
	}
	return DecodeProject(rec), nil
}
