package main

import (
	"context"
	"database/sql"
	"fmt"
)

func init() {
	registerSeeder(&TemplateSeeder{})
}

// TemplateSeedData is the YAML structure for template seed files.
type TemplateSeedData struct {
	OrganizationID int            `yaml:"organization_id"`
	Templates      []TemplateSeed `yaml:"templates"`
}

type TemplateSeed struct {
	Name    string `yaml:"name"`
	OrderNo int    `yaml:"orderno"`
}

// TemplateSeeder implements Seeder for review templates.
type TemplateSeeder struct {
	file string
}

func (s *TemplateSeeder) Name() string {
	return "templates"
}

func (s *TemplateSeeder) Description() string {
	return "Seeds ordered review templates"
}

func (s *TemplateSeeder) SetFile(path string) {
	s.file = path
}

// Seed saves templates keyed by order number. An existing live template at
// the same order number is renamed rather than duplicated.
func (s *TemplateSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := loadSeedFile[TemplateSeedData](s.file, "templates.yaml")
	if err != nil {
		return err
	}

	const query = `
		INSERT INTO templates (organization_id, name, orderno)
		VALUES ($1, $2, $3)
		ON CONFLICT (organization_id, orderno) WHERE NOT is_delete DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = NOW()`

	for _, t := range data.Templates {
		if t.OrderNo <= 0 {
			return fmt.Errorf("template %s: orderno must be positive", t.Name)
		}
		if _, err := tx.ExecContext(ctx, query, data.OrganizationID, t.Name, t.OrderNo); err != nil {
			return fmt.Errorf("save template %s: %w", t.Name, err)
		}
	}

	return nil
}
