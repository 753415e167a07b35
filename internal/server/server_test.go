package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/mocks"
)

type pingPool struct{ err error }

func (p pingPool) Ping(context.Context) error { return p.err }
func (p pingPool) Close()                     {}

func newTestServer(t *testing.T, svc *mocks.MockGroupService) http.Handler {
	t.Helper()
	authn := stubAuthenticator{groups: map[string]string{"irons": "token-1"}}
	s := NewServer(Options{Port: 0, MaxRequestBytes: 1 << 10}, pingPool{}, authn, svc, []byte(`[]`))
	return s.Handler()
}

func TestServer_PublicRoutes(t *testing.T) {
	h := newTestServer(t, mocks.NewMockGroupService(t))

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics", "/api/collection-log-info"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
		})
	}
}

func TestServer_GroupRoutesRequireToken(t *testing.T) {
	h := newTestServer(t, mocks.NewMockGroupService(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/group/irons/am-i-logged-in", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/group/irons/am-i-logged-in", nil)
	req.Header.Set(HeaderAuthorization, "token-1")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_RoutesToService(t *testing.T) {
	svc := mocks.NewMockGroupService(t)
	svc.On("AmIInGroup", mock.Anything, int64(1), "alice").Return(nil).Once()
	svc.On("GetSkillData", mock.Anything, int64(1), domain.SkillDataPeriodMonth).Return(domain.GroupSkillData{}, nil).Once()
	svc.On("AddMember", mock.Anything, int64(1), "bob").Return(nil).Once()
	h := newTestServer(t, svc)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/group/irons/am-i-in-group?member_name=alice", "", http.StatusOK},
		{http.MethodGet, "/api/group/irons/get-skill-data?period=Month", "", http.StatusOK},
		{http.MethodPost, "/api/group/irons/add-group-member", `{"name":"bob"}`, http.StatusCreated},
		{http.MethodGet, "/api/group/irons/add-group-member", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/group/irons/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(HeaderAuthorization, "token-1")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestServer_RequestSizeLimit(t *testing.T) {
	svc := mocks.NewMockGroupService(t)
	h := newTestServer(t, svc)

	body := `{"name":"alice","bank":[` + strings.Repeat("1,", 2000) + `1]}`
	req := httptest.NewRequest(http.MethodPost, "/api/group/irons/update-group-member", strings.NewReader(body))
	req.Header.Set(HeaderAuthorization, "token-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "UpdateMember", mock.Anything, mock.Anything, mock.Anything)
}
