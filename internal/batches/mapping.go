package batches

import (
	"strings"

	"github.com/JaimeStill/qc-lab/pkg/repository"
)

const activeImagesQuery = `
	SELECT
		b.id, b.batchname,
		i.id, i.filename, i.image, i.organization_id,
		i.assigned, i.completed, i.imagestatus, i.userid
	FROM batches b
	JOIN imagecollections i
		ON i.batchname = b.batchname
		AND i.organization_id = b.organization_id
	WHERE b.organization_id = $1
		AND i.imagestatus
	ORDER BY b.id, i.id`

func scanRow(s repository.Scanner) (Row, error) {
	var r Row
	err := s.Scan(
		&r.BatchID, &r.BatchName,
		&r.Image.ID, &r.Image.Filename, &r.Image.Image, &r.Image.OrganizationID,
		&r.Image.Assigned, &r.Image.Completed, &r.Image.ImageStatus, &r.Image.UserID,
	)
	return r, err
}

// BaseName returns the segment after the last "/".
func BaseName(filename string) string {
	if i := strings.LastIndex(filename, "/"); i >= 0 {
		return filename[i+1:]
	}
	return filename
}

// Group folds rows into batches in first-seen order, trimming filenames and
// counting images. Batches only arise from rows, so none is ever empty.
func Group(rows []Row) []Batch {
	batches := make([]Batch, 0)
	index := make(map[int]int)

	for _, r := range rows {
		i, ok := index[r.BatchID]
		if !ok {
			i = len(batches)
			index[r.BatchID] = i
			batches = append(batches, Batch{
				ID:              r.BatchID,
				BatchName:       r.BatchName,
				ImageCollection: []Image{},
			})
		}

		img := r.Image
		img.Filename = BaseName(img.Filename)

		b := &batches[i]
		b.ImageCollection = append(b.ImageCollection, img)
		b.ImagesCount = len(b.ImageCollection)
	}

	return batches
}
