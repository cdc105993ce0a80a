package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/app/server"
	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/generator"
	"github.com/advrk/shortener/internal/models"
	"github.com/advrk/shortener/internal/storage"
)

const trustedSubnet = "192.168.0.0/24"

func startServer(t *testing.T) (*httptest.Server, *service.Auth) {
	t.Helper()

	store, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	log := zap.NewNop()
	shortener := service.NewShortener(store, generator.New(generator.DefaultLength), log, "https://advrk.io")
	resolver := service.NewResolver(shortener, "https://advrk.io")
	auth := service.NewAuth("")

	srv := httptest.NewServer(server.Init(log, shortener, resolver, auth, trustedSubnet))
	t.Cleanup(srv.Close)

	return srv, auth
}

func sessionClient(t *testing.T, srv *httptest.Server, auth *service.Auth) *resty.Client {
	t.Helper()

	token, _, err := auth.BuildJWTString()
	require.NoError(t, err)

	return resty.New().
		SetBaseURL(srv.URL).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		SetCookie(&http.Cookie{Name: "token", Value: token})
}

func TestManagementAPIRequiresSession(t *testing.T) {
	srv, _ := startServer(t)

	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/api/urls")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = client.R().
		SetCookie(&http.Cookie{Name: "token", Value: "forged"}).
		Get("/api/urls")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
}

func TestShortenResolveLifecycle(t *testing.T) {
	srv, auth := startServer(t)
	client := sessionClient(t, srv, auth)

	// Create a short link. The response carries the refreshed active list.
	var created models.ListResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"url":"example.com/some/page"}`).
		SetResult(&created).
		Post("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	require.Len(t, created.URLs, 1)

	record := created.URLs[0]
	assert.Equal(t, "https://example.com/some/page", record.Original)
	assert.Equal(t, "https://advrk.io/"+record.ID, record.Short)

	// Public resolution is a 302 and needs no session.
	resp, _ = resty.New().
		SetBaseURL(srv.URL).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		R().Get("/" + record.ID)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "https://example.com/some/page", resp.Header().Get("Location"))

	// Archive hides the link from visitors.
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"id":"` + record.ID + `"}`).
		Delete("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, _ = resty.New().
		SetBaseURL(srv.URL).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		R().Get("/" + record.ID)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	// Restore brings it back.
	var restored models.ListResponse
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"id":"` + record.ID + `"}`).
		SetResult(&restored).
		Put("/api/archive")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Empty(t, restored.URLs)

	resp, _ = resty.New().
		SetBaseURL(srv.URL).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		R().Get("/" + record.ID)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
}

func TestPurgeGatedByTrustedSubnet(t *testing.T) {
	srv, auth := startServer(t)
	client := sessionClient(t, srv, auth)

	var created models.ListResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"url":"example.com"}`).
		SetResult(&created).
		Post("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	id := created.URLs[0].ID

	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"id":"` + id + `"}`).
		Delete("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	// Outside the trusted subnet the route is forbidden.
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Real-IP", "10.1.2.3").
		SetBody(`{"id":"` + id + `"}`).
		Delete("/api/archive")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	// Inside it the record is gone for good.
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Real-IP", "192.168.0.10").
		SetBody(`{"id":"` + id + `"}`).
		Delete("/api/archive")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().Get("/api/archive")
	require.NoError(t, err)
	assert.JSONEq(t, `{"urls":[]}`, resp.String())
}

func TestCheckDuplicatesOverHTTP(t *testing.T) {
	srv, auth := startServer(t)
	client := sessionClient(t, srv, auth)

	var created models.ListResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"url":"example.com"}`).
		SetResult(&created).
		Post("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	first := created.URLs[0]

	// Archive the first record, then point a fresh one at the same path.
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"id":"` + first.ID + `"}`).
		Delete("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"url":"example.org"}`).
		SetResult(&created).
		Post("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	second := created.URLs[0]

	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"id":"`+second.ID+`","shortUrl":"`+first.Short+`"}`).
		Put("/api/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var dup models.CheckDuplicatesResponse
	resp, err = client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"shortUrls":["`+first.Short+`","`+second.Short+`"]}`).
		SetResult(&dup).
		Post("/api/check-duplicates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []string{first.Short}, dup.Duplicates)
}

func TestRootAndUnknownRoutes(t *testing.T) {
	srv, _ := startServer(t)
	client := resty.New().SetBaseURL(srv.URL)

	resp, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

	resp, err = client.R().Get("/nope123")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}
