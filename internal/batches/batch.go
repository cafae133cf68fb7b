// Package batches serves an organization's review batches together with
// their active images.
package batches

// Image is an active image within a batch. Filename holds only the final
// path segment of the stored name.
type Image struct {
	ID             int    `json:"id"`
	Filename       string `json:"filename"`
	Image          string `json:"image"`
	OrganizationID int    `json:"organizationId"`
	Assigned       bool   `json:"assigned"`
	Completed      bool   `json:"completed"`
	ImageStatus    bool   `json:"imagestatus"`
	UserID         *int   `json:"userid"`
}

// Batch groups the active images that share a batch name.
type Batch struct {
	ID              int     `json:"id"`
	BatchName       string  `json:"batchname"`
	ImagesCount     int     `json:"imagescount"`
	ImageCollection []Image `json:"imagecollection"`
}

// Row is one batch/image pair as returned by the joined query.
type Row struct {
	BatchID   int
	BatchName string
	Image     Image
}
