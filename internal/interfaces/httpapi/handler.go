// Package httpapi exposes the aggregated statistics and ingestion
// operations over HTTP.
package httpapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mkalvans/football-stats/internal/feed"
	"github.com/mkalvans/football-stats/internal/platform/logging"
	"github.com/mkalvans/football-stats/internal/usecase"
)

const maxDocumentBytes = 1 << 20

type Handler struct {
	ingestService    *usecase.IngestService
	matchService     *usecase.MatchService
	standingsService *usecase.StandingsService
	scorersService   *usecase.TopScorersService
	subsService      *usecase.SubstitutionService
	popularService   *usecase.PopularGoalsService
	statsService     *usecase.StatsService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	ingestService *usecase.IngestService,
	matchService *usecase.MatchService,
	standingsService *usecase.StandingsService,
	scorersService *usecase.TopScorersService,
	subsService *usecase.SubstitutionService,
	popularService *usecase.PopularGoalsService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		ingestService:    ingestService,
		matchService:     matchService,
		standingsService: standingsService,
		scorersService:   scorersService,
		subsService:      subsService,
		popularService:   popularService,
		statsService:     statsService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standingsService.Table(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := h.limitParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.scorersService.Rank(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) ListSubstitutions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSubstitutions")
	defer span.End()

	limit, err := h.limitParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.subsService.Rank(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list substitutions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) ListPopularGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPopularGoals")
	defer span.End()

	limit, err := h.limitParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.popularService.Rank(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list popular goals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	limit, err := h.limitParam(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	snapshot, err := h.statsService.Snapshot(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "stats snapshot failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshot)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matches)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := strconv.ParseInt(r.PathValue("matchID"), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: match id must be numeric", usecase.ErrInvalidInput))
		return
	}

	detail, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}

type ingestResponseDTO struct {
	MatchID int64 `json:"matchId,omitempty"`
	Skipped bool  `json:"skipped"`
}

func (h *Handler) IngestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatch")
	defer span.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	doc, err := feed.Parse(body)
	if err != nil {
		h.logger.WarnContext(ctx, "reject match document", "error", err)
		writeError(ctx, w, err)
		return
	}

	result, err := h.ingestService.IngestDocument(ctx, doc)
	if err != nil {
		h.logger.ErrorContext(ctx, "ingest match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if result.Skipped {
		status = http.StatusOK
	}
	writeSuccess(ctx, w, status, ingestResponseDTO{
		MatchID: result.MatchID,
		Skipped: result.Skipped,
	})
}

type limitQuery struct {
	Limit int `validate:"omitempty,min=1,max=1000"`
}

// limitParam reads the optional limit query parameter, falling back to the
// calculator default when absent.
func (h *Handler) limitParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return usecase.DefaultStatsLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be numeric", usecase.ErrInvalidInput)
	}
	if err := h.validator.Struct(limitQuery{Limit: limit}); err != nil {
		return 0, fmt.Errorf("%w: limit must be between 1 and 1000", usecase.ErrInvalidInput)
	}
	return limit, nil
}
