package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/parkatlas/park-media-go/internal/api_context"
	"github.com/parkatlas/park-media-go/internal/mock"
	"github.com/parkatlas/park-media-go/internal/port"
	msuuid "github.com/parkatlas/park-media-go/internal/uuid"
)

// mockRenderer stands in for the caching renderer.
type mockRenderer struct {
	rawOut    []byte
	etagOut   string
	renderErr error
}

func (m *mockRenderer) RenderGetMedia(ctx context.Context, getter port.MediaGetter, id msuuid.UUID) ([]byte, string, error) {
	if m.renderErr != nil {
		return nil, "", m.renderErr
	}
	return m.rawOut, m.etagOut, nil
}

func getMediaRequest(id msuuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/medias/"+id.String(), nil)
	ctx := context.WithValue(req.Context(), api_context.IDKey, id)
	return req.WithContext(ctx)
}

func TestGetMediaHandler_MissingID(t *testing.T) {
	handler := GetMediaHandler(&mockRenderer{}, &mock.MediaGetter{})

	req := httptest.NewRequest(http.MethodGet, "/medias/abc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetMediaHandler_NotFound(t *testing.T) {
	rdr := &mockRenderer{renderErr: sql.ErrNoRows}
	handler := GetMediaHandler(rdr, &mock.MediaGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, getMediaRequest(msuuid.NewUUID()))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGetMediaHandler_InternalError(t *testing.T) {
	rdr := &mockRenderer{renderErr: errors.New("boom")}
	handler := GetMediaHandler(rdr, &mock.MediaGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, getMediaRequest(msuuid.NewUUID()))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestGetMediaHandler_Success(t *testing.T) {
	raw := []byte(`{"status":"ready"}`)
	rdr := &mockRenderer{rawOut: raw, etagOut: `"cafebabe"`}
	handler := GetMediaHandler(rdr, &mock.MediaGetter{})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, getMediaRequest(msuuid.NewUUID()))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("ETag"); got != `"cafebabe"` {
		t.Errorf("expected ETag header, got %q", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "public, max-age=300" {
		t.Errorf("expected caching header, got %q", got)
	}
	if rr.Body.String() != string(raw) {
		t.Errorf("expected raw payload, got %q", rr.Body.String())
	}
}

func TestGetMediaHandler_NotModified(t *testing.T) {
	rdr := &mockRenderer{rawOut: []byte(`{}`), etagOut: `"cafebabe"`}
	handler := GetMediaHandler(rdr, &mock.MediaGetter{})

	req := getMediaRequest(msuuid.NewUUID())
	req.Header.Set("If-None-Match", `"cafebabe"`)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("304 carries no body")
	}
}
