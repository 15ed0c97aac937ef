package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/cloudflare/cloudflare-go"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcosboni7/backsleeping/internal/adapter"
	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/logger"
)

// sniffLen is how many leading bytes are read for content type detection
const sniffLen = 3072

// UploadResult holds the URLs produced by a single media upload
type UploadResult struct {
	// AssetID is the provider-assigned identifier
	AssetID string
	// URL is the delivery URL: an image variant or an HLS manifest
	URL string
	// ThumbnailURL is the provider-generated preview, set for videos only
	ThumbnailURL string
}

// PostMedia holds the outcome of uploading a post's video and optional thumbnail
type PostMedia struct {
	VideoURL     string
	ThumbnailURL string
}

// Uploader stores user media and returns delivery URLs
//
//go:generate mockgen -source=uploader.go -destination=../mocks/uploader.go -package=mocks -mock_names=Uploader=MockUploader
type Uploader interface {
	// UploadImage stores an image and returns its delivery URL
	UploadImage(ctx context.Context, r io.Reader, filename string) (*UploadResult, error)

	// UploadVideo stores a video, waits for it to finish processing and
	// returns its playback URL
	UploadVideo(ctx context.Context, r io.Reader, filename string) (*UploadResult, error)

	// UploadPostMedia uploads a post's video and optional thumbnail image
	// concurrently. When thumb is nil the provider-generated video thumbnail
	// is used instead.
	UploadPostMedia(ctx context.Context, video io.Reader, videoName string, thumb io.Reader, thumbName string) (*PostMedia, error)
}

// Config holds Cloudflare Images and Stream settings
type Config struct {
	// AccountID is the Cloudflare account ID (used for both Images and Stream)
	AccountID string
}

// cloudflareUploader implements Uploader on Cloudflare Images and Stream
type cloudflareUploader struct {
	cfClient adapter.CloudflareClient
	config   *Config
	rc       *cloudflare.ResourceContainer
	fs       adapter.FileSystem
	pool     pond.Pool
}

// NewCloudflareUploader creates an Uploader backed by Cloudflare Images and Stream
func NewCloudflareUploader(cfClient adapter.CloudflareClient, config *Config, fs adapter.FileSystem) Uploader {
	return &cloudflareUploader{
		cfClient: cfClient,
		config:   config,
		fs:       fs,
		pool:     pond.NewPool(4),
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: config.AccountID,
		},
	}
}

// UploadImage stores an image on Cloudflare Images
func (u *cloudflareUploader) UploadImage(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	body, mime, err := sniff(r)
	if err != nil {
		return nil, fmt.Errorf("failed to detect content type: %w", err)
	}
	if !isImage(mime) {
		logger.WarnCtx(ctx, "Rejected non-image upload",
			zap.String("filename", filename),
			zap.String("contentType", mime.String()),
		)
		return nil, domain.ErrUnsupportedMediaType
	}

	image, err := u.cfClient.UploadImage(ctx, u.rc, cloudflare.UploadImageParams{
		File: io.NopCloser(body),
		Name: uploadName(filename, mime),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: image upload rejected: %v", domain.ErrUploadFailed, err)
	}

	logger.InfoCtx(ctx, "Uploaded image",
		zap.String("imageID", image.ID),
		zap.String("filename", filename),
	)

	url := ""
	if len(image.Variants) > 0 {
		url = image.Variants[0]
	}

	return &UploadResult{
		AssetID: image.ID,
		URL:     url,
	}, nil
}

// UploadVideo stores a video on Cloudflare Stream. The Stream API accepts only
// file uploads, so the body is spooled to a temp file first, then the upload is
// polled until processing completes.
func (u *cloudflareUploader) UploadVideo(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	body, mime, err := sniff(r)
	if err != nil {
		return nil, fmt.Errorf("failed to detect content type: %w", err)
	}
	if !isVideo(mime) {
		logger.WarnCtx(ctx, "Rejected non-video upload",
			zap.String("filename", filename),
			zap.String("contentType", mime.String()),
		)
		return nil, domain.ErrUnsupportedMediaType
	}

	tempFile, err := u.fs.CreateTemp(u.fs.TempDir(), "sleeping-video-*"+mime.Extension())
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err := u.fs.Remove(tempFile.Name()); err != nil {
			logger.WarnCtx(ctx, "Failed to remove temp file",
				zap.String("file", tempFile.Name()),
				zap.Error(err),
			)
		}
	}()

	if _, err := io.Copy(tempFile, body); err != nil {
		_ = tempFile.Close()
		return nil, fmt.Errorf("failed to spool video to disk: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush temp file: %w", err)
	}

	video, err := u.cfClient.UploadVideoFile(ctx, cloudflare.StreamUploadFileParameters{
		AccountID: u.config.AccountID,
		FilePath:  tempFile.Name(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: video upload rejected: %v", domain.ErrUploadFailed, err)
	}

	details, err := u.waitForVideoReady(ctx, video.UID)
	if err != nil {
		// Playback URLs are usually present before processing finishes;
		// fall back to what the initial upload returned
		logger.WarnCtx(ctx, "Video not ready in time, using upload response",
			zap.String("videoID", video.UID),
			zap.Error(err),
		)
		details = video
	}

	logger.InfoCtx(ctx, "Uploaded video",
		zap.String("videoID", details.UID),
		zap.String("status", string(details.Status.State)),
	)

	return &UploadResult{
		AssetID:      details.UID,
		URL:          details.Playback.HLS,
		ThumbnailURL: details.Thumbnail,
	}, nil
}

// UploadPostMedia uploads the video and optional thumbnail concurrently
func (u *cloudflareUploader) UploadPostMedia(ctx context.Context, video io.Reader, videoName string, thumb io.Reader, thumbName string) (*PostMedia, error) {
	var videoResult, thumbResult *UploadResult

	group := u.pool.NewGroup()
	group.SubmitErr(func() error {
		result, err := u.UploadVideo(ctx, video, videoName)
		if err != nil {
			return err
		}
		videoResult = result
		return nil
	})
	if thumb != nil {
		group.SubmitErr(func() error {
			result, err := u.UploadImage(ctx, thumb, thumbName)
			if err != nil {
				return err
			}
			thumbResult = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	media := &PostMedia{
		VideoURL:     videoResult.URL,
		ThumbnailURL: videoResult.ThumbnailURL,
	}
	if thumbResult != nil && thumbResult.URL != "" {
		media.ThumbnailURL = thumbResult.URL
	}

	return media, nil
}

// waitForVideoReady polls Cloudflare Stream until the video is ready or timeout using backoff retry
func (u *cloudflareUploader) waitForVideoReady(ctx context.Context, videoID string) (cloudflare.StreamVideo, error) {
	var details cloudflare.StreamVideo

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	b.Multiplier = 1.5
	b.RandomizationFactor = 0.5

	operation := func() error {
		video, err := u.cfClient.GetVideo(ctx, cloudflare.StreamParameters{
			AccountID: u.config.AccountID,
			VideoID:   videoID,
		})
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to get video: %w", err)
		}

		details = video

		switch video.Status.State {
		case "ready":
			return nil

		case "error", "failed":
			return backoff.Permanent(fmt.Errorf("video processing failed: %s", video.Status.ErrorReasonText))

		default:
			// queued, downloading, inprogress
			return fmt.Errorf("video not ready yet: %s", video.Status.State)
		}
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return details, fmt.Errorf("waiting for video to be ready: %w", err)
	}

	return details, nil
}

// sniff reads the head of r, detects its content type and returns a reader
// that replays the full body
func sniff(r io.Reader) (io.Reader, *mimetype.MIME, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, nil, err
	}
	head = head[:n]

	mime := mimetype.Detect(head)
	return io.MultiReader(bytes.NewReader(head), r), mime, nil
}

func isImage(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

func isVideo(mime *mimetype.MIME) bool {
	for m := mime; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "video/") {
			return true
		}
	}
	return false
}

// uploadName builds a collision-free provider-side name keeping the detected extension
func uploadName(filename string, mime *mimetype.MIME) string {
	if filename == "" {
		filename = "upload"
	}
	return fmt.Sprintf("%s-%s%s", filename, uuid.New().String(), mime.Extension())
}
