package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrTemplateNotFound = errors.New("contract template not found")
)

type ContractTemplateRepository interface {
	Create(template *model.ContractTemplate) error
	Upsert(template *model.ContractTemplate) error
	ByID(templateID string) (*model.ContractTemplate, error)
	Templates(category string) ([]*model.ContractTemplate, error)
	Update(template *model.ContractTemplate) error
	Delete(templateID string) error
}

type contractTemplateRepository struct {
	db *sqlx.DB
}

func NewContractTemplateRepository(db *sqlx.DB) ContractTemplateRepository {
	return &contractTemplateRepository{db: db}
}

func (r *contractTemplateRepository) Create(template *model.ContractTemplate) error {
	query := `INSERT INTO contract_templates (id, title, category, description, file_key, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		template.ID,
		template.Title,
		template.Category,
		template.Description,
		template.FileKey,
		template.CreatedAt,
		template.UpdatedAt,
	)

	return err
}

// Upsert is used by content seeding: templates shipped as markdown files are
// re-applied on every startup, keyed by their slug id.
func (r *contractTemplateRepository) Upsert(template *model.ContractTemplate) error {
	query := `INSERT INTO contract_templates (id, title, category, description, file_key, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (id) DO UPDATE SET
	              title = EXCLUDED.title,
	              category = EXCLUDED.category,
	              description = EXCLUDED.description,
	              file_key = EXCLUDED.file_key,
	              updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(query,
		template.ID,
		template.Title,
		template.Category,
		template.Description,
		template.FileKey,
		template.CreatedAt,
		template.UpdatedAt,
	)

	return err
}

func (r *contractTemplateRepository) ByID(templateID string) (*model.ContractTemplate, error) {
	template := &model.ContractTemplate{}
	query := `SELECT * FROM contract_templates WHERE id = $1`

	err := r.db.Get(template, query, templateID)
	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}

	return template, err
}

func (r *contractTemplateRepository) Templates(category string) ([]*model.ContractTemplate, error) {
	var templates []*model.ContractTemplate

	if category != "" {
		query := `SELECT * FROM contract_templates WHERE category = $1 ORDER BY title ASC`
		err := r.db.Select(&templates, query, category)
		if err != nil {
			return nil, err
		}
		return templates, nil
	}

	query := `SELECT * FROM contract_templates ORDER BY title ASC`
	err := r.db.Select(&templates, query)
	if err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *contractTemplateRepository) Update(template *model.ContractTemplate) error {
	query := `UPDATE contract_templates
	          SET title = $1, category = $2, description = $3, file_key = $4, updated_at = $5
	          WHERE id = $6`

	result, err := r.db.Exec(query,
		template.Title,
		template.Category,
		template.Description,
		template.FileKey,
		template.UpdatedAt,
		template.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func (r *contractTemplateRepository) Delete(templateID string) error {
	query := `DELETE FROM contract_templates WHERE id = $1`
	result, err := r.db.Exec(query, templateID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTemplateNotFound
	}

	return nil
}
