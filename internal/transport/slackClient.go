package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dailyavatar/dailyavatar/internal/entity"
	"github.com/dailyavatar/dailyavatar/internal/pkg/processor"
)

// SlackClient uploads profile photos through the Slack users.setPhoto method.
type SlackClient struct {
	baseURL string
	client  *http.Client
}

func NewSlackClient(baseURL string) *SlackClient {
	return &SlackClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload encodes the image as PNG and POSTs it as a multipart form with the
// bearer token. Any non-2xx status, unreadable body or ok:false response is
// reported as an entity.UploadError. A single attempt is made, retrying is
// up to the caller.
func (c *SlackClient) Upload(ctx context.Context, img image.Image, token string) error {
	encoded, err := processor.EncodePNG(img)
	if err != nil {
		return err
	}

	body := new(bytes.Buffer)
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("image", "avatar.png")
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, encoded); err != nil {
		return err
	}
	if err := form.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users.setPhoto", body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var slackResp entity.SlackResponse
	if err := json.NewDecoder(resp.Body).Decode(&slackResp); err != nil {
		return &entity.UploadError{Status: resp.StatusCode, Message: "malformed response body"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !slackResp.OK {
		message := slackResp.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &entity.UploadError{Status: resp.StatusCode, Message: message}
	}

	return nil
}
