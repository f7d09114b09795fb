package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func wavBytes() []byte {
	return append([]byte("RIFF\x24\x00\x00\x00WAVEfmt "), make([]byte, 32)...)
}

func TestRemoteTTS_NewResponseFormat(t *testing.T) {
	req := require.New(t)

	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inference/" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true,"audio_url":"out_42.wav","duration_seconds":2.37}`))
	}))
	defer srv.Close()

	audio, err := NewRemoteTTS(srv.URL, "ref_male_17.wav", time.Second).Synthesize(context.Background(), "Ne y windga")
	req.NoError(err)
	req.Equal(srv.URL+"/tts/download/out_42.wav", audio.URL)
	req.NotNil(audio.DurationSeconds)
	req.InDelta(2.37, *audio.DurationSeconds, 0.001)
	req.Equal("Ne y windga", got["text"])
	req.Equal("ref_male_17.wav", got["reference_speaker"])
}

func TestRemoteTTS_LegacyResponseFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"audio_url":"/static/out.wav"}`))
	}))
	defer srv.Close()

	audio, err := NewRemoteTTS(srv.URL, "ref_male_17.wav", time.Second).Synthesize(context.Background(), "x")
	require.NoError(t, err)
	require.Equal(t, srv.URL+"/static/out.wav", audio.URL)
	require.Nil(t, audio.DurationSeconds)
}

func TestRemoteTTS_Errors(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer empty.Close()

	_, err := NewRemoteTTS(empty.URL, "ref", time.Second).Synthesize(context.Background(), "x")
	require.ErrorIs(t, err, ErrNoAudio)
	require.ErrorIs(t, err, ErrSynthesis)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "cuda oom", http.StatusInternalServerError)
	}))
	defer failing.Close()

	_, err = NewRemoteTTS(failing.URL, "ref", time.Second).Synthesize(context.Background(), "x")
	require.ErrorIs(t, err, ErrSynthesis)
	require.NotErrorIs(t, err, ErrNoAudio)
	require.Contains(t, err.Error(), "cuda oom")
}

func TestRemoteSTT_Multipart(t *testing.T) {
	req := require.New(t)

	var (
		field, filename string
		payload         []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe/" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for name, files := range r.MultipartForm.File {
			field, filename = name, files[0].Filename
			f, _ := files[0].Open()
			payload, _ = io.ReadAll(f)
			f.Close()
		}
		_, _ = w.Write([]byte(`{"transcription":"ne y windga"}`))
	}))
	defer srv.Close()

	text, err := NewRemoteSTT(srv.URL, time.Second).Transcribe(context.Background(), bytes.NewReader(wavBytes()), "recording.webm")
	req.NoError(err)
	req.Equal("ne y windga", text)
	req.Equal("audio_file", field)
	req.Equal("audio.wav", filename)
	req.Equal(wavBytes(), payload)
}

func TestRemoteSTT_FieldPriority(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text":"b","transcription":"c"}`))
	}))
	defer srv.Close()

	text, err := NewRemoteSTT(srv.URL, time.Second).Transcribe(context.Background(), bytes.NewReader(wavBytes()), "")
	require.NoError(t, err)
	require.Equal(t, "b", text)
}

func TestRemoteSTT_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewRemoteSTT(srv.URL, time.Second).Transcribe(context.Background(), bytes.NewReader(wavBytes()), "")
	require.ErrorIs(t, err, ErrTranscription)
}

// --- Service ---

type fakeSTT struct {
	text  string
	err   error
	calls int
}

func (f *fakeSTT) Transcribe(context.Context, io.Reader, string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeTTS struct {
	audio Audio
	err   error
	got   string
}

func (f *fakeTTS) Synthesize(_ context.Context, text string) (Audio, error) {
	f.got = text
	return f.audio, f.err
}

type fakeArchive struct {
	contentType string
	ext         string
	err         error
}

func (f *fakeArchive) SaveAudio(_ context.Context, _ []byte, contentType, ext string) (string, error) {
	f.contentType, f.ext = contentType, ext
	return "https://s3.local/audio" + ext, f.err
}

type fakeNotifier struct{ calls int }

func (f *fakeNotifier) Notify(context.Context, string, error, string) error {
	f.calls++
	return nil
}

func newTestService(stt STTClient, tts TTSClient, archive Archive, n *fakeNotifier) *Service {
	return NewService(stt, tts, archive, n, logger.NewZapLogger(zap.NewNop().Sugar()), 1<<20)
}

func TestService_Transcribe(t *testing.T) {
	req := require.New(t)
	stt := &fakeSTT{text: "  ne y windga \n"}
	archive := &fakeArchive{}
	svc := newTestService(stt, &fakeTTS{}, archive, &fakeNotifier{})

	text, err := svc.Transcribe(context.Background(), Upload{Data: wavBytes(), Filename: "rec.wav"})
	req.NoError(err)
	req.Equal("ne y windga", text)
	req.Equal("audio/wav", archive.contentType)
	req.Equal(".wav", archive.ext)
}

func TestService_Transcribe_Rejects(t *testing.T) {
	req := require.New(t)
	stt := &fakeSTT{text: "x"}
	svc := NewService(stt, &fakeTTS{}, nil, &fakeNotifier{}, logger.NewZapLogger(zap.NewNop().Sugar()), 16)

	_, err := svc.Transcribe(context.Background(), Upload{})
	req.ErrorIs(err, ErrNoAudio)

	_, err = svc.Transcribe(context.Background(), Upload{Data: wavBytes()})
	req.ErrorIs(err, ErrAudioTooLarge)

	_, err = svc.Transcribe(context.Background(), Upload{Data: []byte("hello")})
	req.ErrorIs(err, ErrNotAudio)

	req.Zero(stt.calls)
}

func TestService_Transcribe_ArchiveFailureIsIgnored(t *testing.T) {
	svc := newTestService(&fakeSTT{text: "ok"}, &fakeTTS{}, &fakeArchive{err: errors.New("s3 down")}, &fakeNotifier{})

	text, err := svc.Transcribe(context.Background(), Upload{Data: wavBytes()})
	require.NoError(t, err)
	require.Equal(t, "ok", text)
}

func TestService_Transcribe_UpstreamNotifies(t *testing.T) {
	n := &fakeNotifier{}
	svc := newTestService(&fakeSTT{err: ErrTranscription}, &fakeTTS{}, nil, n)

	_, err := svc.Transcribe(context.Background(), Upload{Data: wavBytes()})
	require.ErrorIs(t, err, ErrTranscription)
	require.Equal(t, 1, n.calls)
}

func TestService_Synthesize(t *testing.T) {
	req := require.New(t)
	tts := &fakeTTS{audio: Audio{URL: "http://speech/tts/download/a.wav"}}
	n := &fakeNotifier{}
	svc := newTestService(&fakeSTT{}, tts, nil, n)

	_, err := svc.Synthesize(context.Background(), "   ")
	req.ErrorIs(err, ErrEmptyText)

	audio, err := svc.Synthesize(context.Background(), " Ne y windga ")
	req.NoError(err)
	req.Equal("Ne y windga", tts.got)
	req.Equal("http://speech/tts/download/a.wav", audio.URL)

	tts.err = ErrSynthesis
	_, err = svc.Synthesize(context.Background(), "x")
	req.ErrorIs(err, ErrSynthesis)
	req.Equal(1, n.calls)
}
