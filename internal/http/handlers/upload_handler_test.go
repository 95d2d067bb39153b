package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moovio/go-cinema-backend/internal/storage"
)

func newUploadRouter(fs FileStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, nil, nil, nil, fs)
	r := gin.New()
	r.POST("/files", h.UploadFiles)
	return r
}

func multipartBody(t *testing.T, field string, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for _, name := range names {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake-image-bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestUploadFiles_SavesAndReportsFolder(t *testing.T) {
	var gotFolder string
	var gotCount int
	fs := &fakeFileStore{
		save: func(files []*multipart.FileHeader, folder string) ([]storage.SavedFile, error) {
			gotFolder = folder
			gotCount = len(files)
			out := make([]storage.SavedFile, 0, len(files))
			for _, f := range files {
				out = append(out, storage.SavedFile{
					URL:  "/uploads/" + folder + "/" + f.Filename,
					Name: f.Filename,
				})
			}
			return out, nil
		},
	}
	r := newUploadRouter(fs)

	body, contentType := multipartBody(t, "files", "poster.jpg", "big-poster.jpg")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/files?folder=movies", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if gotFolder != "movies" || gotCount != 2 {
		t.Fatalf("folder=%q count=%d", gotFolder, gotCount)
	}
}

func TestUploadFiles_RejectsEmptyAndNonMultipart(t *testing.T) {
	fs := &fakeFileStore{
		save: func(_ []*multipart.FileHeader, _ string) ([]storage.SavedFile, error) {
			t.Fatalf("store must not be called")
			return nil, nil
		},
	}
	r := newUploadRouter(fs)

	// Not multipart
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/files", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-multipart expected 400, got %d", w.Code)
	}

	// Multipart without the expected field
	body, contentType := multipartBody(t, "attachments", "poster.jpg")
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/files", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("wrong field expected 400, got %d", w.Code)
	}
}

func TestUploadFiles_StoreFailureMapsTo500(t *testing.T) {
	fs := &fakeFileStore{
		save: func(_ []*multipart.FileHeader, _ string) ([]storage.SavedFile, error) {
			return nil, errors.New("disk full")
		},
	}
	r := newUploadRouter(fs)

	body, contentType := multipartBody(t, "files", "poster.jpg")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/files", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Code != ErrCodeUploadFailed {
		t.Fatalf("code = %q", resp.Code)
	}
}
