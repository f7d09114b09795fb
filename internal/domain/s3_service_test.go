package domain

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	key         string
	size        int64
	contentType string
	body        []byte
}

func (f *fakeS3) PutObject(_ context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	f.key, f.size, f.contentType = key, size, contentType
	f.body, _ = io.ReadAll(r)
	return "https://s3.local/bucket/" + key, nil
}

func TestAudioArchive_SaveAudio(t *testing.T) {
	req := require.New(t)
	s3 := &fakeS3{}
	archive := NewAudioArchive(s3)
	archive.now = func() time.Time { return time.Date(2026, 3, 8, 23, 30, 0, 0, time.UTC) }

	url, err := archive.SaveAudio(context.Background(), []byte("RIFF"), "audio/wav", ".wav")
	req.NoError(err)

	req.True(strings.HasPrefix(s3.key, "stt/2026-03-08/"))
	req.True(strings.HasSuffix(s3.key, ".wav"))
	req.Equal(int64(4), s3.size)
	req.Equal("audio/wav", s3.contentType)
	req.Equal([]byte("RIFF"), s3.body)
	req.Equal("https://s3.local/bucket/"+s3.key, url)

	_, err = archive.SaveAudio(context.Background(), nil, "audio/wav", ".wav")
	req.Error(err)
}
