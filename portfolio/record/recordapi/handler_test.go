package recordapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/httpx"
	"github.com/Abraxas-365/folio/pkg/storex"
	"github.com/Abraxas-365/folio/portfolio/record"
	"github.com/Abraxas-365/folio/portfolio/record/recordsrv"
)

type fakeStore struct {
	collections map[string][]storex.Snapshot
}

func (f *fakeStore) FetchAll(ctx context.Context, collection string) ([]storex.Snapshot, error) {
	return f.collections[collection], nil
}

func (f *fakeStore) FetchByID(ctx context.Context, collection, id string) (*storex.Snapshot, error) {
	for _, snap := range f.collections[collection] {
		if snap.ID == id {
			s := snap
			return &s, nil
		}
	}
	return nil, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := &fakeStore{collections: map[string][]storex.Snapshot{
		"experience": {
			{ID: "exp1", Data: map[string]any{
				"companyName": "Company Name",
				"title":       "Job Title",
				"startDate":   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			}},
			{ID: "exp2", Data: map[string]any{
				"companyName": "Other Corp",
				"title":       "Engineer",
			}},
		},
		"education": {
			{ID: "edu1", Data: map[string]any{
				"name":   "State University",
				"degree": "BSc",
			}},
		},
	}}

	service, err := recordsrv.NewRecordService(store)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler})
	RegisterRoutes(app, NewHandlers(service))
	return app
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	return resp
}

func TestGetExperience_ListAll(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/experience")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var records []record.RecordResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "Company Name", records[0].CompanyName)
	assert.Equal(t, "Other Corp", records[1].CompanyName)
}

func TestGetExperience_ByID(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/experience?id=exp1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rec record.RecordResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "Job Title", rec.Title)
}

func TestGetExperience_ByIDNotFound(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/experience?id=ghost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetEducation_SerializesInstitutionName(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/education?id=edu1")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "State University", body["institutionName"])
	assert.Equal(t, "BSc", body["degree"])
	assert.NotContains(t, body, "companyName")
}

func TestGetRecords_UnknownQueryParams(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/experience?id=exp1&limit=5&sort=asc")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errx.HTTPResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "RECORD_UNKNOWN_QUERY_PARAM", body.Code)

	params, ok := body.Details["params"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"limit", "sort"}, params)
}
