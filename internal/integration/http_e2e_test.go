//go:build integration

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpserver "floripa_guide/internal/adapters/http_server"
	redisad "floripa_guide/internal/adapters/redis"
	"floripa_guide/internal/app"
	"floripa_guide/internal/catalog"
	"floripa_guide/internal/domain"
	mysqlrepo "floripa_guide/internal/storage/mysql"
)

// ---------- helpers ----------

func migrationsDir() string {
	if d := os.Getenv("MIGRATIONS_DIR"); d != "" {
		return d
	}
	return filepath.Join("..", "..", "migrations")
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err, "read migrations dir %s", dir)

	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	require.NotEmpty(t, files, "no .sql files in %s", dir)
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = db.Exec(string(sqlBytes))
		require.NoError(t, err, "exec %s", f)
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=floripa"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/floripa?parseTime=true&multiStatements=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}))
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)
	return db
}

func call(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })
	return res
}

// ---------- the test ----------

func TestHTTP_EndToEnd_PartnerAndItinerary(t *testing.T) {
	db := startMySQL(t)
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })

	cache := redisad.NewFromClient(rc)
	q := app.NewQueryService(catalog.Default(), cache, 10*time.Minute, nil)
	p := app.NewPartnerService(mysqlrepo.New(db), redisad.NewSessions(rc), time.Hour)

	srv := httpserver.New([]string{"*"})
	srv.MountHandlers(&httpserver.Handlers{Q: q, P: p})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	// itinerary is cached in redis
	res := call(t, "POST", ts.URL+"/v1/itineraries", "", map[string]any{
		"days": 3, "budget": "alto", "types": []string{"praias", "baladas"}, "group": "amigos",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var it domain.Itinerary
	require.NoError(t, json.NewDecoder(res.Body).Decode(&it))
	assert.Len(t, it.Days, 3)
	assert.Equal(t, domain.SourceHeuristic, it.Source)
	assert.NotEmpty(t, mr.Keys(), "itinerary should be cached")

	// partner registration goes to mysql
	res = call(t, "POST", ts.URL+"/v1/partners", "", map[string]any{
		"name": "Joana", "email": "Joana@Bonanza.test", "password": "churrasco",
		"business_name": "Churrascaria Bonanza", "type": "restaurante", "city": "Florianópolis",
		"whatsapp": "5548988887777", "plan": "premium",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "joana@bonanza.test").Scan(&count))
	assert.Equal(t, 1, count)

	// session lives in redis
	res = call(t, "POST", ts.URL+"/v1/sessions", "", map[string]string{"email": "joana@bonanza.test", "password": "churrasco"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	var sess domain.Session
	require.NoError(t, json.NewDecoder(res.Body).Decode(&sess))
	require.NotEmpty(t, sess.Token)
	assert.True(t, mr.Exists("session:"+sess.Token))

	res = call(t, "GET", ts.URL+"/v1/partners/me", sess.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var d domain.Dashboard
	require.NoError(t, json.NewDecoder(res.Body).Decode(&d))
	require.NotNil(t, d.Partner)
	assert.Equal(t, "Churrascaria Bonanza", d.Partner.BusinessName)
	require.NotNil(t, d.Subscription)
	assert.Equal(t, domain.PlanPremium, d.Subscription.Plan)

	// expiry is enforced by redis
	mr.FastForward(2 * time.Hour)
	res = call(t, "GET", ts.URL+"/v1/partners/me", sess.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
