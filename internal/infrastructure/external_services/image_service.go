package externalservices

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/firaol-d/clubhub/internal/domain/contract"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// ImageService talks to the external asset host. Uploads go as multipart
// form posts; the host answers with the public URL and an opaque ref used
// for later deletion.
type ImageService struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  usecasecontract.IAppLogger
}

var _ contract.IImageService = (*ImageService)(nil)

func NewImageService(baseURL, apiKey string, logger usecasecontract.IAppLogger) *ImageService {
	return &ImageService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type uploadResponse struct {
	URL string `json:"url"`
	Ref string `json:"ref"`
}

// Upload stores an image on the asset host and returns its public URL and
// deletion ref. The hint is forwarded so the host can categorize the asset.
func (s *ImageService) Upload(ctx context.Context, data []byte, filename, hint string) (*contract.UploadedImage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if hint != "" {
		if err := writer.WriteField("hint", hint); err != nil {
			return nil, fmt.Errorf("failed to write hint field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("asset host returned status %d: %s", resp.StatusCode, string(body))
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.URL == "" {
		return nil, fmt.Errorf("asset host returned empty url")
	}
	return &contract.UploadedImage{URL: out.URL, Ref: out.Ref}, nil
}

// Delete removes an asset by ref. A 404 from the host means the asset is
// already gone and is treated as success.
func (s *ImageService) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/assets/"+ref, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		s.logger.Warnf("asset %s already absent on host", ref)
		return nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("asset host returned status %d", resp.StatusCode)
	}
	return nil
}
