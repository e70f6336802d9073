package apiv1

import (
	"bytes"
	"encoding/json"
	"interview-scheduler/config"
	candidatehandler "interview-scheduler/lib/candidate"
	eventhandler "interview-scheduler/lib/event"
	authutils "interview-scheduler/lib/utils/auth-utils"
	apimodels "interview-scheduler/models/api"
	candidateapimodels "interview-scheduler/models/api/candidate"
	eventapimodels "interview-scheduler/models/api/event"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const knownID = "7d3c2a5e-8f0b-4c1e-9a7d-2b6f4e1c0a9d"

type candidateFake struct {
	candidatehandler.Provider
	created []candidateapimodels.CandidateData
	locale  string
}

func (f *candidateFake) Create(data candidateapimodels.CandidateData) (string, error) {
	f.created = append(f.created, data)
	return knownID, nil
}

func (f *candidateFake) Get(id string) (candidateapimodels.CandidateView, error) {
	if id != knownID {
		return candidateapimodels.CandidateView{}, candidatehandler.ErrNotFound
	}
	return candidateapimodels.CandidateView{ID: id, Name: "John"}, nil
}

func (f *candidateFake) InterviewerOptions(id string) ([]candidateapimodels.InterviewerOption, error) {
	f.locale = locale
	return []candidateapimodels.InterviewerOption{{Label: "Alice in pairing", ID: "i1"}}, nil
}

func (f *candidateFake) ScheduleXlsx(id, locale string) (*bytes.Buffer, error) {
	return bytes.NewBufferString("xlsx"), nil
}

type eventFake struct {
	eventhandler.Provider
}

func (f eventFake) Update(id string, data eventapimodels.EventUpdate) error {
	return eventhandler.ErrNotFound
}

func newTestApp(t *testing.T) (*fiber.App, *candidateFake) {
	config.Conf = new(config.Configuration)
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	token, err := authutils.GetToken("admin", time.Now())
	require.NoError(t, err)
	testToken = token

	fake := &candidateFake{}
	candidatehandler.Instance = fake
	eventhandler.Instance = eventFake{}
	app := fiber.New()
	InitCandidateApiRouters(app)
	InitEventApiRouters(app)
	return app, fake
}

var testToken string

func authorized(req *http.Request) *http.Request {
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testToken)
	return req
}

func decode(t *testing.T, resp *http.Response) apimodels.Response {
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	result := apimodels.Response{}
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return authorized(req)
}

func TestCandidateApi(t *testing.T) {
	app, fake := newTestApp(t)

	t.Run(`token required`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/candidate/"+knownID, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
	t.Run(`create`, func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/candidate", candidateapimodels.CandidateData{Name: "John"}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, knownID, decode(t, resp).Data)
		require.Len(t, fake.created, 1)
	})
	t.Run(`create without name`, func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/candidate", candidateapimodels.CandidateData{}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "fail", decode(t, resp).Status)
		require.Len(t, fake.created, 1)
	})
	t.Run(`get unknown`, func(t *testing.T) {
		resp, err := app.Test(authorized(httptest.NewRequest(http.MethodGet, "/candidate/0b5c8e1a-3f2d-4a6b-8c9e-1d2f3a4b5c6d", nil)))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, candidatehandler.ErrNotFound.Error(), decode(t, resp).Message)
	})
	t.Run(`malformed id`, func(t *testing.T) {
		resp, err := app.Test(authorized(httptest.NewRequest(http.MethodGet, "/candidate/42", nil)))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
	t.Run(`interviewer options use Accept-Language`, func(t *testing.T) {
		req := authorized(httptest.NewRequest(http.MethodGet, "/candidate/"+knownID+"/interviewer_options", nil))
		req.Header.Set(fiber.HeaderAcceptLanguage, "ru-RU,ru;q=0.9,en;q=0.8")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "ru", fake.locale)
	})
	t.Run(`schedule xlsx`, func(t *testing.T) {
		resp, err := app.Test(authorized(httptest.NewRequest(http.MethodGet, "/candidate/"+knownID+"/schedule/xlsx", nil)))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xlsx")
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "xlsx", string(body))
	})
}

func TestEventApi(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run(`end before start`, func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/event/"+knownID, map[string]any{
			"start_time": "2024-05-01T11:00:00Z",
			"end_time":   "2024-05-01T10:00:00Z",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
	t.Run(`unknown event`, func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPut, "/event/"+knownID, map[string]any{
			"start_time": "2024-05-01T10:00:00Z",
			"end_time":   "2024-05-01T11:00:00Z",
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
