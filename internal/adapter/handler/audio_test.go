package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/speakwise-team/speakwise/errors"
	"github.com/speakwise-team/speakwise/internal/domain/entities"
	"github.com/speakwise-team/speakwise/pkg/validator"
)

type fakeAnalysisService struct {
	job      *entities.AnalysisJob
	err      error
	gotTopic string
}

func (f *fakeAnalysisService) Submit(_ context.Context, _ io.Reader, topic string) (*entities.AnalysisJob, error) {
	f.gotTopic = topic
	return f.job, f.err
}

func (f *fakeAnalysisService) GetResult(_ context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.job, nil
}

type fakeArchiver struct {
	objectName string
	size       int64
}

func (f *fakeArchiver) SaveAudio(_ context.Context, objectName string, _ io.Reader, size int64, _ string) error {
	f.objectName = objectName
	f.size = size
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func multipartBody(t *testing.T, topic, filename string, audio []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if topic != "" {
		if err := w.WriteField("topic", topic); err != nil {
			t.Fatalf("write topic: %v", err)
		}
	}
	if filename != "" {
		part, err := w.CreateFormFile("audio_file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(audio); err != nil {
			t.Fatalf("write audio: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestSubmitAudio_Accepted(t *testing.T) {
	job := entities.NewAnalysisJob("city planning")
	job.MarkAsProcessing("we should widen the cycle lanes")
	service := &fakeAnalysisService{job: job}
	archiver := &fakeArchiver{}
	h := NewAudioHandler(service, archiver, nil)

	body, contentType := multipartBody(t, "city planning", "clip.wav", []byte("fake-wav-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/input", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.SubmitAudio(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["unique_id"] != job.ID.String() {
		t.Errorf("unique_id = %v, want %s", resp["unique_id"], job.ID)
	}
	if resp["transcription"] != "we should widen the cycle lanes" {
		t.Errorf("unexpected transcription %v", resp["transcription"])
	}
	if service.gotTopic != "city planning" {
		t.Errorf("service received topic %q", service.gotTopic)
	}
	if archiver.objectName != job.ID.String()+".wav" {
		t.Errorf("archived object = %q", archiver.objectName)
	}
	if archiver.size != int64(len("fake-wav-bytes")) {
		t.Errorf("archived size = %d", archiver.size)
	}
}

func TestSubmitAudio_MissingTopic(t *testing.T) {
	h := NewAudioHandler(&fakeAnalysisService{}, nil, nil)

	body, contentType := multipartBody(t, "", "clip.wav", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/input", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.SubmitAudio(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestSubmitAudio_MissingFile(t *testing.T) {
	h := NewAudioHandler(&fakeAnalysisService{}, nil, nil)

	body, contentType := multipartBody(t, "a topic", "", nil)
	req := httptest.NewRequest(http.MethodPost, "/v1/audio/input", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := newEcho().NewContext(req, rec)

	if err := h.SubmitAudio(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func resultContext(t *testing.T, e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/audio/results/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/audio/results/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestGetResults_Completed(t *testing.T) {
	job := entities.NewAnalysisJob("topic")
	job.MarkAsProcessing("text")
	job.MarkAsCompleted(entities.ScoreSet{Fluency: 7.5, Vocabulary: 6.1, Grammar: 9.2, Relevancy: 8.0}, nil)
	h := NewAudioHandler(&fakeAnalysisService{job: job}, nil, nil)

	c, rec := resultContext(t, newEcho(), job.ID.String())
	if err := h.GetResults(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Scores *struct {
			Fluency float64 `json:"fluency"`
		} `json:"scores"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Scores == nil || resp.Scores.Fluency != 7.5 {
		t.Errorf("unexpected scores payload: %s", rec.Body.String())
	}
	if resp.Status != "completed" {
		t.Errorf("status field = %q, want completed", resp.Status)
	}
}

func TestGetResults_InFlight(t *testing.T) {
	job := entities.NewAnalysisJob("topic")
	job.MarkAsProcessing("partial transcript")
	h := NewAudioHandler(&fakeAnalysisService{job: job}, nil, nil)

	c, rec := resultContext(t, newEcho(), job.ID.String())
	if err := h.GetResults(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
}

func TestGetResults_UnknownID(t *testing.T) {
	id := uuid.New()
	h := NewAudioHandler(&fakeAnalysisService{err: errors.ErrJobNotFound(id.String())}, nil, nil)

	c, rec := resultContext(t, newEcho(), id.String())
	if err := h.GetResults(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetResults_MalformedID(t *testing.T) {
	h := NewAudioHandler(&fakeAnalysisService{}, nil, nil)

	c, rec := resultContext(t, newEcho(), "not-a-uuid")
	if err := h.GetResults(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
