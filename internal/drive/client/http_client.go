package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sajidbaba1/yt/internal/drive"
	"github.com/sajidbaba1/yt/internal/googleauth"
	"github.com/sajidbaba1/yt/internal/models"
)

const (
	filesEndpoint   = "https://www.googleapis.com/drive/v3/files"
	videoFilesQuery = "mimeType contains 'video/' and trashed = false"
	defaultPageSize = 25
)

type driveClient struct {
	tokenSource *googleauth.TokenSource
	httpClient  *http.Client
	// media downloads can run for as long as the file is large; no client
	// timeout, cancellation comes from the request context
	mediaClient *http.Client
}

func NewDriveClient(tokenSource *googleauth.TokenSource) drive.Client {
	return &driveClient{
		tokenSource: tokenSource,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		mediaClient: &http.Client{},
	}
}

type driveFile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MimeType      string `json:"mimeType"`
	Size          string `json:"size"`
	ThumbnailLink string `json:"thumbnailLink"`
}

type fileListResponse struct {
	Files         []driveFile `json:"files"`
	NextPageToken string      `json:"nextPageToken"`
}

func (c *driveClient) ListVideoFiles(ctx context.Context, pageToken string, pageSize int) (*models.DriveFileList, error) {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	params := url.Values{}
	params.Set("q", videoFilesQuery)
	params.Set("fields", "nextPageToken, files(id, name, mimeType, size, thumbnailLink)")
	params.Set("orderBy", "modifiedTime desc")
	params.Set("pageSize", strconv.Itoa(pageSize))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var payload fileListResponse
	if err := c.getJSON(ctx, filesEndpoint+"?"+params.Encode(), &payload); err != nil {
		return nil, fmt.Errorf("failed to list drive files: %w", err)
	}

	files := make([]*models.DriveFile, 0, len(payload.Files))
	for _, f := range payload.Files {
		size, _ := strconv.ParseInt(f.Size, 10, 64)
		files = append(files, &models.DriveFile{
			FileID:    f.ID,
			Name:      f.Name,
			MimeType:  f.MimeType,
			Size:      size,
			Thumbnail: f.ThumbnailLink,
		})
	}
	return &models.DriveFileList{
		Files:         files,
		NextPageToken: payload.NextPageToken,
	}, nil
}

func (c *driveClient) GetFile(ctx context.Context, fileID string) (*models.DriveFile, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=id,name,mimeType,size", filesEndpoint, url.PathEscape(fileID))
	var f driveFile
	if err := c.getJSON(ctx, endpoint, &f); err != nil {
		return nil, fmt.Errorf("failed to get drive file %s: %w", fileID, err)
	}
	size, _ := strconv.ParseInt(f.Size, 10, 64)
	return &models.DriveFile{
		FileID:   f.ID,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     size,
	}, nil
}

func (c *driveClient) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	endpoint := fmt.Sprintf("%s/%s?alt=media", filesEndpoint, url.PathEscape(fileID))
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.mediaClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file %s: %w", fileID, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("drive download returned status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func (c *driveClient) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	token, err := c.tokenSource.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

func (c *driveClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("drive api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
