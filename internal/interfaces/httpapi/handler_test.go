package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/mkalvans/football-stats/internal/infrastructure/repository/memory"
	"github.com/mkalvans/football-stats/internal/platform/logging"
	"github.com/mkalvans/football-stats/internal/usecase"
)

const ingestDocument = `{
  "Spele": {
    "Laiks": "2009/07/15",
    "Vieta": "Skonto stadions",
    "Skatitaji": 4500,
    "VT": {"Vards": "Janis", "Uzvards": "Ozols"},
    "T": {"Vards": "Peteris", "Uzvards": "Kalns"},
    "Komanda": [
      {
        "Nosaukums": "Riga FC",
        "Speletaji": {
          "Speletajs": [
            {"Nr": 1, "Vards": "Igors", "Uzvards": "Bergs", "Loma": "V"},
            {"Nr": 7, "Vards": "Maris", "Uzvards": "Zarins", "Loma": "U"}
          ]
        },
        "Varti": {
          "VG": {"Nr": 7, "Laiks": "41:18"}
        },
        "Sodi": "",
        "Mainas": ""
      },
      {
        "Nosaukums": "Ventspils",
        "Speletaji": {
          "Speletajs": {"Nr": 10, "Vards": "Olegs", "Uzvards": "Krasts", "Loma": "A"}
        },
        "Varti": "",
        "Sodi": "",
        "Mainas": ""
      }
    ]
  }
}`

func newTestRouter() http.Handler {
	store := memory.NewStore()
	logger := logging.NewNop()

	teamRepo := store.TeamRepository()
	playerRepo := store.PlayerRepository()
	refereeRepo := store.RefereeRepository()
	matchRepo := store.MatchRepository()
	goalRepo := store.GoalRepository()
	cardRepo := store.CardRepository()
	subRepo := store.SubstitutionRepository()

	standingsService := usecase.NewStandingsService(teamRepo, matchRepo, goalRepo)
	scorersService := usecase.NewTopScorersService(goalRepo, playerRepo, teamRepo)
	subsService := usecase.NewSubstitutionService(subRepo, playerRepo, teamRepo)
	popularService := usecase.NewPopularGoalsService(goalRepo, matchRepo, playerRepo, teamRepo)

	handler := NewHandler(
		usecase.NewIngestService(store, logger),
		usecase.NewMatchService(matchRepo, teamRepo, playerRepo, refereeRepo, goalRepo, cardRepo, subRepo),
		standingsService,
		scorersService,
		subsService,
		popularService,
		usecase.NewStatsService(standingsService, scorersService, subsService, popularService),
		logger,
	)

	return NewRouter(handler, logger, []string{"*"})
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body
}

func TestIngestMatch_CreatesThenSkips(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(ingestDocument))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeEnvelope(t, rec)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object in response")
	}
	if skipped, _ := data["skipped"].(bool); skipped {
		t.Fatalf("expected skipped=false on first ingest")
	}
	if _, ok := data["matchId"]; !ok {
		t.Fatalf("expected matchId in response")
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(ingestDocument))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on duplicate, got %d", rec.Code)
	}
	body = decodeEnvelope(t, rec)
	data, _ = body["data"].(map[string]any)
	if skipped, _ := data["skipped"].(bool); !skipped {
		t.Fatalf("expected skipped=true on duplicate ingest")
	}
}

func TestIngestMatch_RejectsMalformedDocument(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(`{"Spele": {"Laiks": "nope"}}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	errorObj, ok := body["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object in response")
	}
	if got, _ := errorObj["status"].(string); got != "INVALID_ARGUMENT" {
		t.Fatalf("expected error status INVALID_ARGUMENT, got %v", errorObj["status"])
	}
}

func TestListStandings_AfterIngest(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(ingestDocument))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("ingest failed: %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := decodeEnvelope(t, rec)
	rows, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("expected data array in response")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 standings rows, got %d", len(rows))
	}
	first, _ := rows[0].(map[string]any)
	if name, _ := first["team_name"].(string); name != "Riga FC" {
		t.Fatalf("expected Riga FC on top, got %v", first["team_name"])
	}
}

func TestGetMatch_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/999", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListTopScorers_RejectsBadLimit(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/v1/top-scorers?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
