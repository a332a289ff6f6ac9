package app

import (
	"fmt"
	"os"

	"github.com/templui/folio/internal/config"
	"github.com/templui/folio/internal/content"
	"github.com/templui/folio/internal/service"
)

type App struct {
	Cfg            *config.Config
	Registry       *content.Registry
	ContentService *service.ContentService
}

func New(cfg *config.Config) (*App, error) {
	info, err := os.Stat(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("content path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", cfg.ContentPath)
	}

	registry := content.Default(content.WithStrict(cfg.ContentStrict))
	contentService := service.NewContentService(cfg.ContentPath, registry)

	return &App{
		Cfg:            cfg,
		Registry:       registry,
		ContentService: contentService,
	}, nil
}
