package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notes-saas-backend/internal/domain"
)

type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, identity domain.Identity, title, content string) (*domain.Note, error) {
	args := m.Called(ctx, identity, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) GetNote(ctx context.Context, identity domain.Identity, noteID int32) (*domain.Note, error) {
	args := m.Called(ctx, identity, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) ListNotes(ctx context.Context, identity domain.Identity) ([]domain.Note, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteService) UpdateNote(ctx context.Context, identity domain.Identity, noteID int32, title, content string) (*domain.Note, error) {
	args := m.Called(ctx, identity, noteID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) DeleteNote(ctx context.Context, identity domain.Identity, noteID int32) error {
	args := m.Called(ctx, identity, noteID)
	return args.Error(0)
}

func requestWithIdentity(method, target, body string, identity domain.Identity) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(ContextWithIdentity(r.Context(), identity))
}

func TestNoteHandler_Create(t *testing.T) {
	identity := domain.Identity{UserID: 5, TenantID: 10, Role: domain.RoleMember}

	t.Run("Created", func(t *testing.T) {
		svc := new(MockNoteService)
		handler := NewNoteHandler(svc)

		svc.On("CreateNote", mock.Anything, identity, "t", "c").
			Return(&domain.Note{ID: 1, Title: "t", Content: "c", TenantID: 10, CreatedBy: 5}, nil)

		w := httptest.NewRecorder()
		handler.Create(w, requestWithIdentity("POST", "/api/notes", `{"title":"t","content":"c"}`, identity))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("TrialExpired", func(t *testing.T) {
		svc := new(MockNoteService)
		handler := NewNoteHandler(svc)

		svc.On("CreateNote", mock.Anything, identity, "t", "c").
			Return(nil, domain.ErrTrialExpired)

		w := httptest.NewRecorder()
		handler.Create(w, requestWithIdentity("POST", "/api/notes", `{"title":"t","content":"c"}`, identity))

		assert.Equal(t, http.StatusForbidden, w.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["trialExpired"])
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := new(MockNoteService)
		handler := NewNoteHandler(svc)

		w := httptest.NewRecorder()
		handler.Create(w, requestWithIdentity("POST", "/api/notes", `{"title":""}`, identity))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateNote", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestNoteHandler_Get_DeniedLooksLikeMissing(t *testing.T) {
	identity := domain.Identity{UserID: 5, TenantID: 10, Role: domain.RoleMember}

	for _, svcErr := range []error{domain.ErrAccessDenied, domain.ErrNotFound} {
		svc := new(MockNoteService)
		handler := NewNoteHandler(svc)

		svc.On("GetNote", mock.Anything, identity, int32(7)).Return(nil, svcErr)

		r := requestWithIdentity("GET", "/api/notes/7", "", identity)
		r = mux.SetURLVars(r, map[string]string{"id": "7"})
		w := httptest.NewRecorder()
		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Not found", body["error"])
	}
}

func TestNoteHandler_List_EmptyIsArray(t *testing.T) {
	identity := domain.Identity{UserID: 5, TenantID: 10, Role: domain.RoleMember}
	svc := new(MockNoteService)
	handler := NewNoteHandler(svc)

	svc.On("ListNotes", mock.Anything, identity).Return([]domain.Note(nil), nil)

	w := httptest.NewRecorder()
	handler.List(w, requestWithIdentity("GET", "/api/notes", "", identity))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestNoteHandler_Unauthenticated(t *testing.T) {
	handler := NewNoteHandler(new(MockNoteService))

	w := httptest.NewRecorder()
	handler.List(w, httptest.NewRequest("GET", "/api/notes", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
