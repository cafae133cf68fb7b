package main

import (
	"context"
	"database/sql"
	"fmt"
)

func init() {
	registerSeeder(&BatchSeeder{})
}

// BatchSeedData is the YAML structure for batch seed files.
type BatchSeedData struct {
	OrganizationID int         `yaml:"organization_id"`
	Batches        []BatchSeed `yaml:"batches"`
}

type BatchSeed struct {
	Name   string      `yaml:"name"`
	Images []ImageSeed `yaml:"images"`
}

type ImageSeed struct {
	Filename  string `yaml:"filename"`
	Image     string `yaml:"image"`
	Assigned  bool   `yaml:"assigned"`
	Completed bool   `yaml:"completed"`
	Inactive  bool   `yaml:"inactive"`
	UserID    *int   `yaml:"userid"`
}

// BatchSeeder implements Seeder for review batches and their images.
type BatchSeeder struct {
	file string
}

func (s *BatchSeeder) Name() string {
	return "batches"
}

func (s *BatchSeeder) Description() string {
	return "Seeds review batches and their image collections"
}

func (s *BatchSeeder) SetFile(path string) {
	s.file = path
}

// Seed inserts batches and images that do not already exist, so repeated
// runs are idempotent.
func (s *BatchSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := loadSeedFile[BatchSeedData](s.file, "batches.yaml")
	if err != nil {
		return err
	}

	for _, b := range data.Batches {
		if err := s.saveBatch(ctx, tx, data.OrganizationID, b.Name); err != nil {
			return fmt.Errorf("save batch %s: %w", b.Name, err)
		}

		for _, img := range b.Images {
			if err := s.saveImage(ctx, tx, data.OrganizationID, b.Name, img); err != nil {
				return fmt.Errorf("save image %s in batch %s: %w", img.Filename, b.Name, err)
			}
		}
	}

	return nil
}

func (s *BatchSeeder) saveBatch(ctx context.Context, tx *sql.Tx, org int, name string) error {
	const query = `
		INSERT INTO batches (batchname, organization_id)
		VALUES ($1, $2)
		ON CONFLICT (organization_id, batchname) DO NOTHING`

	_, err := tx.ExecContext(ctx, query, name, org)
	return err
}

func (s *BatchSeeder) saveImage(ctx context.Context, tx *sql.Tx, org int, batch string, img ImageSeed) error {
	const query = `
		INSERT INTO imagecollections
			(batchname, filename, image, organization_id, assigned, completed, imagestatus, userid)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM imagecollections
			WHERE organization_id = $4 AND batchname = $1 AND filename = $2
		)`

	_, err := tx.ExecContext(ctx, query,
		batch, img.Filename, img.Image, org,
		img.Assigned, img.Completed, !img.Inactive, img.UserID,
	)
	return err
}
