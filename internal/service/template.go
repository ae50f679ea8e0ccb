package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/markdown"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
	"github.com/wellnessbuddy/api/internal/storage"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TemplateService struct {
	repo       repository.ContractTemplateRepository
	storage    storage.Storage // nil when object storage is not configured
	contentDir string
}

func NewTemplateService(repo repository.ContractTemplateRepository, fileStorage storage.Storage, contentDir string) *TemplateService {
	return &TemplateService{
		repo:       repo,
		storage:    fileStorage,
		contentDir: filepath.Join(contentDir, "templates"),
	}
}

// SyncContent upserts templates shipped as markdown files under
// content/templates. Frontmatter: title, category, file (optional storage
// key); the body becomes the description. The filename slug is the id, so
// re-running is idempotent.
func (s *TemplateService) SyncContent() error {
	files, err := os.ReadDir(s.contentDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	parser := markdown.NewParser()

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(file.Name(), ".md")
		source, err := os.ReadFile(filepath.Join(s.contentDir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", slug, err)
		}

		html, meta, err := parser.ParseWithFrontmatter(source)
		if err != nil {
			return fmt.Errorf("failed to parse template %s: %w", slug, err)
		}

		title, _ := meta["title"].(string)
		if title == "" {
			title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
		}
		category, _ := meta["category"].(string)
		if category == "" {
			category = "general"
		}

		var fileKey *string
		if key, ok := meta["file"].(string); ok && key != "" {
			fileKey = &key
		}

		now := time.Now()
		err = s.repo.Upsert(&model.ContractTemplate{
			ID:          slug,
			Title:       title,
			Category:    category,
			Description: string(html),
			FileKey:     fileKey,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert template %s: %w", slug, err)
		}
	}

	slog.Info("contract templates synced", "dir", s.contentDir)
	return nil
}

func (s *TemplateService) Create(title, category, description string, fileKey *string) (*model.ContractTemplate, error) {
	now := time.Now()
	template := &model.ContractTemplate{
		ID:          uuid.New().String(),
		Title:       title,
		Category:    category,
		Description: description,
		FileKey:     fileKey,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(template)
	if err != nil {
		return nil, err
	}

	return template, nil
}

// ByID loads a template and, when a file is attached and storage is
// configured, fills in a presigned download URL.
func (s *TemplateService) ByID(templateID string) (*model.ContractTemplate, error) {
	template, err := s.repo.ByID(templateID)
	if err != nil {
		return nil, err
	}

	s.attachFileURL(template)
	return template, nil
}

func (s *TemplateService) Templates(category string) ([]*model.ContractTemplate, error) {
	templates, err := s.repo.Templates(category)
	if err != nil {
		return nil, err
	}

	for _, t := range templates {
		s.attachFileURL(t)
	}

	return templates, nil
}

func (s *TemplateService) attachFileURL(template *model.ContractTemplate) {
	if s.storage == nil || template.FileKey == nil || *template.FileKey == "" {
		return
	}

	url, err := s.storage.PresignedURL(*template.FileKey)
	if err != nil {
		slog.Error("failed to presign template file", "error", err, "template_id", template.ID, "file_key", *template.FileKey)
		return
	}
	template.FileURL = url
}

// TemplateUpdate carries a partial update; nil fields are left unchanged. An
// empty FileKey removes the file reference.
type TemplateUpdate struct {
	Title       *string
	Category    *string
	Description *string
	FileKey     *string
}

func (s *TemplateService) Update(templateID string, upd TemplateUpdate) (*model.ContractTemplate, error) {
	template, err := s.repo.ByID(templateID)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		template.Title = *upd.Title
	}
	if upd.Category != nil {
		template.Category = *upd.Category
	}
	if upd.Description != nil {
		template.Description = *upd.Description
	}
	if upd.FileKey != nil {
		if *upd.FileKey == "" {
			template.FileKey = nil
		} else {
			template.FileKey = upd.FileKey
		}
	}
	template.UpdatedAt = time.Now()

	err = s.repo.Update(template)
	if err != nil {
		return nil, err
	}

	s.attachFileURL(template)
	return template, nil
}

func (s *TemplateService) Delete(templateID string) error {
	return s.repo.Delete(templateID)
}
