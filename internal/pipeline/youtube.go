package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sajidbaba1/yt/internal/drive"
	"github.com/sajidbaba1/yt/internal/googleauth"
	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
)

const (
	videosUploadEndpoint   = "https://www.googleapis.com/upload/youtube/v3/videos?uploadType=resumable&part=snippet,status"
	thumbnailSetEndpoint   = "https://www.googleapis.com/upload/youtube/v3/thumbnails/set?videoId=%s"
	commentThreadsEndpoint = "https://www.googleapis.com/youtube/v3/commentThreads?part=snippet"
)

type youtubeUploader struct {
	driveClient drive.Client
	tokenSource *googleauth.TokenSource
	awsRepo     jobs.AWSRepository
	apiClient   *http.Client
	// the media upload runs for the duration of the transfer; the only
	// timeout is the request context
	mediaClient *http.Client
	logger      logger.Logger
}

func NewYoutubeUploader(driveClient drive.Client, tokenSource *googleauth.TokenSource, awsRepo jobs.AWSRepository, log logger.Logger) Uploader {
	return &youtubeUploader{
		driveClient: driveClient,
		tokenSource: tokenSource,
		awsRepo:     awsRepo,
		apiClient:   &http.Client{Timeout: 60 * time.Second},
		mediaClient: &http.Client{},
		logger:      log,
	}
}

func (u *youtubeUploader) Upload(ctx context.Context, job *models.Job) (string, error) {
	body, err := u.driveClient.Download(ctx, job.SourceFileID)
	if err != nil {
		return "", fmt.Errorf("drive download: %w", err)
	}
	defer body.Close()

	sessionURL, err := u.initiateUpload(ctx, job)
	if err != nil {
		return "", fmt.Errorf("initiate upload: %w", err)
	}

	videoID, err := u.transfer(ctx, sessionURL, body)
	if err != nil {
		return "", fmt.Errorf("video upload: %w", err)
	}
	u.logger.Infof("uploaded video %s for job %s", videoID, job.JobID)

	if job.ThumbnailKey != "" {
		if err := u.setThumbnail(ctx, videoID, job.ThumbnailKey); err != nil {
			return "", fmt.Errorf("thumbnail set: %w", err)
		}
	}

	if job.FirstComment != "" {
		if err := u.postComment(ctx, videoID, job.FirstComment); err != nil {
			return "", fmt.Errorf("first comment: %w", err)
		}
	}

	return videoID, nil
}

type videoSnippet struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
}

type videoStatus struct {
	PrivacyStatus string `json:"privacyStatus"`
}

func (u *youtubeUploader) initiateUpload(ctx context.Context, job *models.Job) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"snippet": videoSnippet{
			Title:       job.Title,
			Description: buildDescription(job),
			Tags:        job.Tags,
		},
		"status": videoStatus{PrivacyStatus: "public"},
	})
	if err != nil {
		return "", err
	}

	req, err := u.newRequest(ctx, http.MethodPost, videosUploadEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Upload-Content-Type", "video/*")

	resp, err := u.apiClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload initiation returned status %d", resp.StatusCode)
	}
	sessionURL := resp.Header.Get("Location")
	if sessionURL == "" {
		return "", fmt.Errorf("upload initiation returned no session url")
	}
	return sessionURL, nil
}

func (u *youtubeUploader) transfer(ctx context.Context, sessionURL string, body io.Reader) (string, error) {
	req, err := u.newRequest(ctx, http.MethodPut, sessionURL, body)
	if err != nil {
		return "", err
	}
	resp, err := u.mediaClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("video upload returned status %d", resp.StatusCode)
	}
	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if payload.ID == "" {
		return "", fmt.Errorf("upload response has no video id")
	}
	return payload.ID, nil
}

func (u *youtubeUploader) setThumbnail(ctx context.Context, videoID string, thumbnailKey string) error {
	data, contentType, err := u.awsRepo.GetThumbnail(ctx, thumbnailKey)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}
	req, err := u.newRequest(ctx, http.MethodPost, fmt.Sprintf(thumbnailSetEndpoint, videoID), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := u.apiClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("thumbnail set returned status %d", resp.StatusCode)
	}
	return nil
}

func (u *youtubeUploader) postComment(ctx context.Context, videoID string, text string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"snippet": map[string]interface{}{
			"videoId": videoID,
			"topLevelComment": map[string]interface{}{
				"snippet": map[string]string{"textOriginal": text},
			},
		},
	})
	if err != nil {
		return err
	}
	req, err := u.newRequest(ctx, http.MethodPost, commentThreadsEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.apiClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("comment post returned status %d", resp.StatusCode)
	}
	return nil
}

func (u *youtubeUploader) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	token, err := u.tokenSource.AccessToken(ctx)
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

func buildDescription(job *models.Job) string {
	if len(job.Hashtags) == 0 {
		return job.Description
	}
	return strings.TrimSpace(job.Description + "\n\n" + strings.Join(job.Hashtags, " "))
}
