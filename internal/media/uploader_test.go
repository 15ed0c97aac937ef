package media_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcosboni7/backsleeping/internal/adapter"
	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/logger"
	"github.com/marcosboni7/backsleeping/internal/media"
	"github.com/marcosboni7/backsleeping/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// pngBytes is a minimal PNG header, enough for content type detection
var pngBytes = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

// mp4Bytes is a minimal MP4 ftyp box
var mp4Bytes = []byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm', 0, 0, 0, 0}

func newTestUploader(t *testing.T) (*mocks.MockCloudflareClient, media.Uploader) {
	ctrl := gomock.NewController(t)
	cfClient := mocks.NewMockCloudflareClient(ctrl)
	uploader := media.NewCloudflareUploader(cfClient, &media.Config{AccountID: "acc-123"}, adapter.NewFileSystem())
	return cfClient, uploader
}

func TestUploadImage(t *testing.T) {
	cfClient, uploader := newTestUploader(t)

	cfClient.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cloudflare.Image{
			ID:       "img-1",
			Variants: []string{"https://imagedelivery.net/acc/img-1/public"},
		}, nil)

	result, err := uploader.UploadImage(context.Background(), bytes.NewReader(pngBytes), "avatar")
	require.NoError(t, err)
	assert.Equal(t, "img-1", result.AssetID)
	assert.Equal(t, "https://imagedelivery.net/acc/img-1/public", result.URL)
}

func TestUploadImageProviderFailure(t *testing.T) {
	cfClient, uploader := newTestUploader(t)

	cfClient.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cloudflare.Image{}, errors.New("status 500"))

	_, err := uploader.UploadImage(context.Background(), bytes.NewReader(pngBytes), "avatar")
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	_, uploader := newTestUploader(t)

	_, err := uploader.UploadImage(context.Background(), bytes.NewReader([]byte("plain text")), "avatar")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
}

func TestUploadVideoRejectsNonVideo(t *testing.T) {
	_, uploader := newTestUploader(t)

	_, err := uploader.UploadVideo(context.Background(), bytes.NewReader(pngBytes), "clip")
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
}

func TestUploadVideo(t *testing.T) {
	cfClient, uploader := newTestUploader(t)

	cfClient.EXPECT().
		UploadVideoFile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params cloudflare.StreamUploadFileParameters) (cloudflare.StreamVideo, error) {
			assert.Equal(t, "acc-123", params.AccountID)
			assert.NotEmpty(t, params.FilePath)
			return cloudflare.StreamVideo{UID: "vid-1"}, nil
		})
	cfClient.EXPECT().
		GetVideo(gomock.Any(), cloudflare.StreamParameters{AccountID: "acc-123", VideoID: "vid-1"}).
		Return(cloudflare.StreamVideo{
			UID:       "vid-1",
			Thumbnail: "https://videodelivery.net/vid-1/thumbnails/thumbnail.jpg",
			Playback: cloudflare.StreamVideoPlayback{
				HLS: "https://videodelivery.net/vid-1/manifest/video.m3u8",
			},
			Status: cloudflare.StreamVideoStatus{State: "ready"},
		}, nil)

	result, err := uploader.UploadVideo(context.Background(), bytes.NewReader(mp4Bytes), "clip")
	require.NoError(t, err)
	assert.Equal(t, "vid-1", result.AssetID)
	assert.Equal(t, "https://videodelivery.net/vid-1/manifest/video.m3u8", result.URL)
	assert.Equal(t, "https://videodelivery.net/vid-1/thumbnails/thumbnail.jpg", result.ThumbnailURL)
}

func TestUploadPostMediaWithThumbnail(t *testing.T) {
	cfClient, uploader := newTestUploader(t)

	cfClient.EXPECT().
		UploadVideoFile(gomock.Any(), gomock.Any()).
		Return(cloudflare.StreamVideo{UID: "vid-2"}, nil)
	cfClient.EXPECT().
		GetVideo(gomock.Any(), gomock.Any()).
		Return(cloudflare.StreamVideo{
			UID:       "vid-2",
			Thumbnail: "https://videodelivery.net/vid-2/thumbnails/thumbnail.jpg",
			Playback: cloudflare.StreamVideoPlayback{
				HLS: "https://videodelivery.net/vid-2/manifest/video.m3u8",
			},
			Status: cloudflare.StreamVideoStatus{State: "ready"},
		}, nil)
	cfClient.EXPECT().
		UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cloudflare.Image{
			ID:       "img-2",
			Variants: []string{"https://imagedelivery.net/acc/img-2/public"},
		}, nil)

	media, err := uploader.UploadPostMedia(context.Background(),
		bytes.NewReader(mp4Bytes), "clip",
		bytes.NewReader(pngBytes), "thumb")
	require.NoError(t, err)
	assert.Equal(t, "https://videodelivery.net/vid-2/manifest/video.m3u8", media.VideoURL)
	// The explicit thumbnail wins over the provider-generated one
	assert.Equal(t, "https://imagedelivery.net/acc/img-2/public", media.ThumbnailURL)
}

func TestUploadPostMediaWithoutThumbnail(t *testing.T) {
	cfClient, uploader := newTestUploader(t)

	cfClient.EXPECT().
		UploadVideoFile(gomock.Any(), gomock.Any()).
		Return(cloudflare.StreamVideo{UID: "vid-3"}, nil)
	cfClient.EXPECT().
		GetVideo(gomock.Any(), gomock.Any()).
		Return(cloudflare.StreamVideo{
			UID:       "vid-3",
			Thumbnail: "https://videodelivery.net/vid-3/thumbnails/thumbnail.jpg",
			Playback: cloudflare.StreamVideoPlayback{
				HLS: "https://videodelivery.net/vid-3/manifest/video.m3u8",
			},
			Status: cloudflare.StreamVideoStatus{State: "ready"},
		}, nil)

	media, err := uploader.UploadPostMedia(context.Background(),
		bytes.NewReader(mp4Bytes), "clip", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "https://videodelivery.net/vid-3/thumbnails/thumbnail.jpg", media.ThumbnailURL)
}
