package service

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/markdown"
	"github.com/templui/folio/internal/model"
)

// RawEntry is one content file before validation.
type RawEntry struct {
	Collection string
	Slug       string
	Path       string
	Fields     map[string]any
}

// Site holds every validated entry.
type Site struct {
	Blogs    []model.BlogEntry
	Projects []model.ProjectEntry
}

func (s *Site) Count(collection string) int {
	switch collection {
	case content.CollectionBlogs:
		return len(s.Blogs)
	case content.CollectionProjects:
		return len(s.Projects)
	default:
		return 0
	}
}

// FileError reports a content file that could not be read or decoded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LoadError lists every file and validation problem found in one load.
type LoadError struct {
	Problems []error
}

func (e *LoadError) Error() string {
	if len(e.Problems) == 1 {
		return "content: " + e.Problems[0].Error()
	}
	return fmt.Sprintf("content: %d problems, first: %v", len(e.Problems), e.Problems[0])
}

func (e *LoadError) Unwrap() []error { return e.Problems }

type ContentService struct {
	parser      *markdown.Parser
	registry    *content.Registry
	contentPath string
}

func NewContentService(contentPath string, registry *content.Registry) *ContentService {
	return &ContentService{
		parser:      markdown.NewParser(),
		registry:    registry,
		contentPath: contentPath,
	}
}

func (s *ContentService) ContentPath() string {
	return s.contentPath
}

// Load reads and validates every collection. It does not stop at the first
// bad file: all problems come back together in a *LoadError.
func (s *ContentService) Load() (*Site, error) {
	site := &Site{}
	var problems []error
	for _, collection := range s.registry.Collections() {
		problems = append(problems, s.loadCollection(site, collection)...)
	}

	sortBlogs(site.Blogs)
	sortProjects(site.Projects)

	if len(problems) > 0 {
		return site, &LoadError{Problems: problems}
	}

	slog.Info("content loaded", "blogs", len(site.Blogs), "projects", len(site.Projects))
	return site, nil
}

// Blogs returns validated blog posts, newest first. Only problems in the
// blogs collection are reported.
func (s *ContentService) Blogs() ([]model.BlogEntry, error) {
	site := &Site{}
	problems := s.loadCollection(site, content.CollectionBlogs)
	if len(problems) > 0 {
		return nil, &LoadError{Problems: problems}
	}
	sortBlogs(site.Blogs)
	return site.Blogs, nil
}

// Projects returns validated projects ordered by title. Only problems in
// the projects collection are reported.
func (s *ContentService) Projects() ([]model.ProjectEntry, error) {
	site := &Site{}
	problems := s.loadCollection(site, content.CollectionProjects)
	if len(problems) > 0 {
		return nil, &LoadError{Problems: problems}
	}
	sortProjects(site.Projects)
	return site.Projects, nil
}

// loadCollection validates one collection into site and returns its problems.
func (s *ContentService) loadCollection(site *Site, collection string) []error {
	entries, problems := s.RawEntries(collection)

	for _, entry := range entries {
		rec, err := s.registry.Validate(collection, entry.Slug, entry.Fields)
		if err != nil {
			slog.Warn("content entry rejected", "collection", collection, "path", entry.Path, "error", err)
			problems = append(problems, err)
			continue
		}

		switch collection {
		case content.CollectionBlogs:
			site.Blogs = append(site.Blogs, content.DecodeBlog(rec))
		case content.CollectionProjects:
			site.Projects = append(site.Projects, content.DecodeProject(rec))
		default:
			slog.Debug("validated entry has no typed decoder", "collection", collection, "slug", entry.Slug)
		}
	}

	return problems
}

// RawEntries reads the files of one collection directory in name order.
// A missing directory means an empty collection.
func (s *ContentService) RawEntries(collection string) ([]RawEntry, []error) {
	dir := filepath.Join(s.contentPath, collection)
	files, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("collection directory not found", "collection", collection, "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, []error{&FileError{Path: dir, Err: err}}
	}

	var entries []RawEntry
	var problems []error
	for _, file := range files {
		if file.IsDir() || strings.HasPrefix(file.Name(), ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(file.Name()))
		if !isContentFile(ext) {
			continue
		}

		path := filepath.Join(dir, file.Name())
		fields, err := s.readFields(path, ext)
		if err != nil {
			problems = append(problems, &FileError{Path: path, Err: err})
			continue
		}

		entries = append(entries, RawEntry{
			Collection: collection,
			Slug:       strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())),
			Path:       path,
			Fields:     fields,
		})
	}

	return entries, problems
}

func isContentFile(ext string) bool {
	switch ext {
	case ".md", ".markdown", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (s *ContentService) readFields(path, ext string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if ext == ".yaml" || ext == ".yml" {
		var fields map[string]any
		err = yaml.Unmarshal(data, &fields)
		if err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		if fields == nil {
			fields = make(map[string]any)
		}
		return fields, nil
	}

	return s.parser.Frontmatter(data)
}

// sortBlogs orders posts newest first. Posts whose date does not parse go
// last; ties break on slug.
func sortBlogs(blogs []model.BlogEntry) {
	sort.SliceStable(blogs, func(i, j int) bool {
		ti, okI := blogs[i].PublishedAt()
		tj, okJ := blogs[j].PublishedAt()
		if okI != okJ {
			return okI
		}
		if okI && !ti.Equal(tj) {
			return ti.After(tj)
		}
		return blogs[i].Slug < blogs[j].Slug
	})
}

func sortProjects(projects []model.ProjectEntry) {
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Title != projects[j].Title {
			return projects[i].Title < projects[j].Title
		}
		return projects[i].Slug < projects[j].Slug
	})
}
