package api

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
)

// File names on the files surface travel base64-encoded in the URL.

func fileEndpoint(group, fileName string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(fileName))
	return fmt.Sprintf("files/%s/%s", group, encoded)
}

// UploadFile uploads raw file data to a file group.
func (c *Client) UploadFile(ctx context.Context, group, fileName string, data []byte) error {
	_, err := c.PutBytes(ctx, fileEndpoint(group, fileName), data)
	return err
}

// DownloadFile downloads a file from a file group.
func (c *Client) DownloadFile(ctx context.Context, group, fileName string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, fileEndpoint(group, fileName), "", nil)
}

// DeleteFile deletes a file from a file group.
func (c *Client) DeleteFile(ctx context.Context, group, fileName string) error {
	_, err := c.Delete(ctx, fileEndpoint(group, fileName))
	return err
}

// UploadProductPicture uploads a product picture and points the product at
// it. The server convention names the picture "{id}.jpg".
func (c *Client) UploadProductPicture(ctx context.Context, productID int, data []byte) error {
	name := fmt.Sprintf("%d.jpg", productID)
	if err := c.UploadFile(ctx, "productpictures", name, data); err != nil {
		return err
	}
	_, err := c.Put(ctx, fmt.Sprintf("objects/products/%d", productID), map[string]any{"picture_file_name": name})
	return err
}
