package grocy

import (
	"context"

	"github.com/grocyhq/go-grocy/api"
)

// FileManager provides access to the server's file groups (product
// pictures, recipe pictures, instruction manuals, ...).
type FileManager struct {
	client *api.Client
}

// Upload stores raw file data in a file group.
func (m *FileManager) Upload(ctx context.Context, group, fileName string, data []byte) error {
	return m.client.UploadFile(ctx, group, fileName, data)
}

// Download returns the raw contents of a file.
func (m *FileManager) Download(ctx context.Context, group, fileName string) ([]byte, error) {
	return m.client.DownloadFile(ctx, group, fileName)
}

// Delete removes a file from a file group.
func (m *FileManager) Delete(ctx context.Context, group, fileName string) error {
	return m.client.DeleteFile(ctx, group, fileName)
}

// UploadProductPicture uploads a product picture and points the product at
// it.
func (m *FileManager) UploadProductPicture(ctx context.Context, productID int, data []byte) error {
	return m.client.UploadProductPicture(ctx, productID, data)
}
