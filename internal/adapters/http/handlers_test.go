package httpadapter

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/kenken/internal/domain"
	"svw.info/kenken/internal/infrastructure/storage"
	"svw.info/kenken/internal/solver"
	"svw.info/kenken/internal/usecase"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := usecase.NewService(solver.NewEngine(), storage.NewFS(t.TempDir()))
	r := gin.New()
	New(uc, log).Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func solveBody(save bool) map[string]any {
	return map[string]any{
		"name": "two by two",
		"save": save,
		"definition": domain.Definition{
			Width: 2,
			Cages: []domain.CageDef{
				{Value: 3, Op: domain.OpAdd, Cells: [][2]int{{0, 0}, {0, 1}}},
				{Value: 2, Op: domain.OpMul, Cells: [][2]int{{1, 0}, {1, 1}}},
			},
		},
	}
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSolveEndpoint(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/solve", solveBody(false))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Solved   bool    `json:"solved"`
		Solution [][]int `json:"solution"`
		ID       string  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Solved)
	require.Len(t, resp.Solution, 2)
	assert.Equal(t, 3, resp.Solution[0][0]+resp.Solution[0][1])
	assert.Equal(t, 2, resp.Solution[1][0]*resp.Solution[1][1])
	assert.Empty(t, resp.ID, "nothing persisted without save")
}

func TestSolveEndpointSavesAndLoads(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/solve", solveBody(true))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)

	w = doJSON(t, r, http.MethodGet, "/api/puzzles", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var metas []domain.RecordMeta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metas))
	require.Len(t, metas, 1)
	assert.Equal(t, resp.ID, metas[0].ID)

	w = doJSON(t, r, http.MethodGet, "/api/puzzles/"+resp.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rec domain.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "two by two", rec.Name)
	assert.True(t, rec.Solved)
}

func TestSolveEndpointRejectsBadDefinition(t *testing.T) {
	body := solveBody(false)
	body["definition"] = domain.Definition{
		Width: 2,
		Cages: []domain.CageDef{
			{Value: 3, Op: domain.OpAdd, Cells: [][2]int{{0, 0}, {0, 1}}},
		},
	}
	w := doJSON(t, newTestRouter(t), http.MethodPost, "/api/solve", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSolveEndpointRejectsBadJSON(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/solve", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoadMissingRecord(t *testing.T) {
	w := doJSON(t, newTestRouter(t), http.MethodGet, "/api/puzzles/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
