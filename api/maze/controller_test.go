package mazeapi_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	apii "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*dmn.MazeRecord
	fail    bool
}

func (r *memoryRepo) Save(record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("connection refused")
	}
	r.records[record.ID] = record
	return nil
}

func (r *memoryRepo) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		return rec, nil
	}
	return nil, dmn.ErrMazeNotFound
}

func (r *memoryRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.MazeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*dmn.MazeRecord
	for _, rec := range r.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type discardLogger struct{}

func (discardLogger) Info(string)    {}
func (discardLogger) Warning(string) {}
func (discardLogger) Error(string)   {}

type testServer struct {
	handler http.Handler
	repo    *memoryRepo
	token   string
	userID  uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memoryRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
	mazes, err := service.NewMazeService(repo, nil, discardLogger{}, &service.MazeOptions{
		MaxDimension: 30,
		SeedFunc:     func() int64 { return 7 },
	})
	require.NoError(t, err)

	controller, err := mazeapi.NewMazeController(mazes, discardLogger{})
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "vinom-maze")
	userID := uuid.New()
	tok, err := tokenizer.Generate(map[string]interface{}{"userID": userID.String()}, time.Minute)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})

	return &testServer{handler: router.Handler(), repo: repo, token: tok, userID: userID}
}

func (s *testServer) do(t *testing.T, method, path string, body any, auth bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) generate(t *testing.T, algorithm string, w, h int) mazeapi.MazeResponse {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/mazes", gin.H{"algorithm": algorithm, "width": w, "height": h}, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp mazeapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGenerate(t *testing.T) {
	s := newTestServer(t)

	resp := s.generate(t, "prim", 3, 4)
	assert.Equal(t, s.userID.String(), resp.OwnerID)
	assert.Equal(t, "prim", resp.Algorithm)
	assert.Equal(t, int64(7), resp.Seed)
	require.Len(t, resp.Rows, 7)
	assert.Len(t, resp.Rows[0], 9)
}

func TestGenerate_RequiresAuth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/mazes", gin.H{"algorithm": "dfs", "width": 2, "height": 2}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.token = "not-a-token"
	rec = s.do(t, http.MethodPost, "/api/v1/mazes", gin.H{"algorithm": "dfs", "width": 2, "height": 2}, true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerate_BadRequests(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "unknown algorithm", body: gin.H{"algorithm": "bfs", "width": 2, "height": 2}},
		{name: "negative width", body: gin.H{"algorithm": "dfs", "width": -2, "height": 2}},
		{name: "too large", body: gin.H{"algorithm": "dfs", "width": 31, "height": 2}},
		{name: "missing fields", body: gin.H{"algorithm": "dfs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/v1/mazes", tt.body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerate_StorageFailure(t *testing.T) {
	s := newTestServer(t)
	s.repo.fail = true

	rec := s.do(t, http.MethodPost, "/api/v1/mazes", gin.H{"algorithm": "dfs", "width": 2, "height": 2}, true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestByIDAndText(t *testing.T) {
	s := newTestServer(t)
	created := s.generate(t, "dfs", 2, 2)

	rec := s.do(t, http.MethodGet, "/api/v1/mazes/"+created.ID, nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	var got mazeapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.Rows, got.Rows)

	rec = s.do(t, http.MethodGet, "/api/v1/mazes/"+created.ID+"/text", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")

	m, err := maze.NewDFSGenerator(maze.NewRandom(7)).Generate(2, 2)
	require.NoError(t, err)
	assert.Equal(t, m.String(), rec.Body.String())

	rec = s.do(t, http.MethodGet, "/api/v1/mazes/"+uuid.NewString(), nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/mazes/not-a-uuid", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMine(t *testing.T) {
	s := newTestServer(t)
	s.generate(t, "dfs", 2, 2)
	s.generate(t, "kruskal", 3, 3)

	rec := s.do(t, http.MethodGet, "/api/v1/mazes", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []mazeapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestSolve(t *testing.T) {
	s := newTestServer(t)
	created := s.generate(t, "wilson", 5, 5)

	rec := s.do(t, http.MethodPost, "/api/v1/mazes/"+created.ID+"/solve",
		gin.H{"algorithm": "astar", "start": "1,1", "end": "9,9"}, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got mazeapi.SolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Found)
	assert.Equal(t, len(got.Path)-1, got.Length)
	assert.Equal(t, maze.Point{X: 1, Y: 1}, got.Path[0])
	assert.Equal(t, maze.Point{X: 9, Y: 9}, got.Path[len(got.Path)-1])
	assert.Equal(t, byte('.'), got.Rows[1][1])
}

func TestSolve_BadRequests(t *testing.T) {
	s := newTestServer(t)
	created := s.generate(t, "dfs", 2, 2)
	url := "/api/v1/mazes/" + created.ID + "/solve"

	tests := []struct {
		name string
		url  string
		body any
		want int
	}{
		{name: "bad point", url: url, body: gin.H{"algorithm": "astar", "start": "1;1", "end": "3,3"}, want: http.StatusBadRequest},
		{name: "on wall", url: url, body: gin.H{"algorithm": "astar", "start": "0,0", "end": "3,3"}, want: http.StatusBadRequest},
		{name: "out of bounds", url: url, body: gin.H{"algorithm": "astar", "start": "1,1", "end": "30,3"}, want: http.StatusBadRequest},
		{name: "unknown solver", url: url, body: gin.H{"algorithm": "bfs", "start": "1,1", "end": "3,3"}, want: http.StatusBadRequest},
		{name: "unknown maze", url: "/api/v1/mazes/" + uuid.NewString() + "/solve", body: gin.H{"algorithm": "astar", "start": "1,1", "end": "3,3"}, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, tt.url, tt.body, false)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
