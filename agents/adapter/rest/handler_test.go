package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AzielCF/az-chatbox/agents/application"
	"github.com/AzielCF/az-chatbox/agents/repository"
	"github.com/AzielCF/az-chatbox/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  int             `json:"status"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Results json.RawMessage `json:"results"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "agents.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	repo := repository.NewAgentGormRepository(db)
	require.NoError(t, repo.InitSchema(context.Background()))

	app := fiber.New()
	app.Use(middleware.Recovery())
	NewAgentHandler(
		application.NewAgentService(repo),
		application.NewAvatarStore(t.TempDir(), "avatars"),
	).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestAgentHandler_Lifecycle(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/agents", AgentRequest{Name: "Ana", Email: "ana@acme.test"})
	require.Equal(t, http.StatusCreated, status)
	var created struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Enabled bool   `json:"enabled"`
	}
	require.NoError(t, json.Unmarshal(env.Results, &created))
	assert.Equal(t, "online", created.Status)
	assert.True(t, created.Enabled)

	status, env = doJSON(t, app, http.MethodGet, "/agents", nil)
	require.Equal(t, http.StatusOK, status)
	var listed []map[string]any
	require.NoError(t, json.Unmarshal(env.Results, &listed))
	assert.Len(t, listed, 1)

	status, _ = doJSON(t, app, http.MethodPut, "/agents/"+created.ID, AgentRequest{Name: "Ana", JobTitle: "Sales", Status: "away"})
	assert.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, app, http.MethodGet, "/agents/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(env.Results), `"job_title":"Sales"`)

	status, _ = doJSON(t, app, http.MethodDelete, "/agents/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, app, http.MethodGet, "/agents/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND_ERROR", env.Code)
}

func TestAgentHandler_CreateValidation(t *testing.T) {
	app := newTestApp(t)

	status, env := doJSON(t, app, http.MethodPost, "/agents", AgentRequest{Email: "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}

func TestAgentHandler_UploadAvatar(t *testing.T) {
	app := newTestApp(t)
	_, env := doJSON(t, app, http.MethodPost, "/agents", AgentRequest{Name: "Ana"})
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Results, &created))

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 10, 20))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/agents/"+created.ID+"/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, string(out.Results), `"avatar_path":"avatars/`+created.ID+`.png"`)
}
