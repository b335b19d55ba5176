package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mrlokans/qualification/internal/config"
	"github.com/mrlokans/qualification/internal/database"
	"github.com/mrlokans/qualification/internal/logger"
)

// setupTestDB creates an initialized database with the default admin.
func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_api_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(config.Database{Path: dbPath, LogLevel: "silent"}, logger.Nop())
	require.NoError(t, err)
	db.BcryptCost = bcrypt.MinCost
	require.NoError(t, db.Init(context.Background(), nil))

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return db
}

func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database) {
	t.Helper()
	db := setupTestDB(t)

	plans, err := db.Plans()
	require.NoError(t, err)
	topics, err := db.Topics()
	require.NoError(t, err)
	tasks, err := db.Tasks()
	require.NoError(t, err)
	users, err := db.Users()
	require.NoError(t, err)

	router := NewRouter(RouterConfig{
		Version: "test",
		Health:  db,
		Plans:   plans,
		Topics:  topics,
		Tasks:   tasks,
		Users:   users,
		Logger:  logger.Nop(),
	})
	return router, db
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		var payload []byte
		if raw, ok := body.(string); ok {
			payload = []byte(raw)
		} else {
			payload, _ = json.Marshal(body)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
