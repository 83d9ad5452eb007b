// Package stub is a development search backend speaking the same HTTP
// contract as the real semantic service, backed by the SQLite catalog.
package stub

import (
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/abelbrown/bookfinder/internal/book"
	"github.com/abelbrown/bookfinder/internal/mood"
	"github.com/abelbrown/bookfinder/internal/store"
)

const (
	// DefaultTopK applies when a request omits top_k.
	DefaultTopK = 41
	// MaxTopK bounds one request.
	MaxTopK = 200
	// moodThreshold is the score a result needs to pass a mood filter.
	moodThreshold = 0.3
)

type searchRequest struct {
	Query string  `json:"query"`
	TopK  int     `json:"top_k"`
	Mood  *string `json:"mood"`
}

// Handler serves the search API.
type Handler struct {
	store *store.Store
	log   *log.Logger
	now   func() time.Time
}

// NewHandler returns a Handler over st. logger may be nil.
func NewHandler(st *store.Store, logger *log.Logger) *Handler {
	return &Handler{store: st, log: logger, now: time.Now}
}

// NewServer builds the echo instance with every route registered.
func NewServer(h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	if h.log != nil {
		e.Use(requestLogger(h.log))
	}

	e.GET("/", h.Root)
	e.GET("/api/moods", h.Moods)
	e.POST("/api/search", h.Search)
	return e
}

// Root handles GET /.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the BookFinder development backend"})
}

// Moods handles GET /api/moods.
func (h *Handler) Moods(c echo.Context) error {
	all := mood.All()
	out := make([]string, len(all))
	for i, m := range all {
		out[i] = string(m)
	}
	return c.JSON(http.StatusOK, map[string][]string{"moods": out})
}

// Search handles POST /api/search.
func (h *Handler) Search(c echo.Context) error {
	start := h.now()

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	candidates, err := h.candidates(req.Query, topK*2)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var filter string
	if req.Mood != nil {
		filter = strings.ToLower(strings.TrimSpace(*req.Mood))
	}

	results := make([]book.Book, 0, topK)
	for _, b := range candidates {
		if len(b.Moods) == 0 {
			b.Moods = Classify(b.Description)
		}
		if filter != "" && b.Moods[filter] <= moodThreshold {
			continue
		}
		results = append(results, b)
		if len(results) == topK {
			break
		}
	}

	return c.JSON(http.StatusOK, book.SearchResponse{
		Results:   results,
		Total:     len(results),
		QueryTime: h.now().Sub(start).Seconds(),
	})
}

// candidates returns up to n books: full-text hits first, each carrying a
// distance in (0, 1], then the rest of the catalog in insertion order with
// no distance. The pool is always as full as the catalog allows, the way a
// nearest-neighbour index always has neighbours.
func (h *Handler) candidates(q string, n int) ([]book.Book, error) {
	hits, err := h.store.Search(q, n)
	if err != nil {
		return nil, err
	}
	out := make([]book.Book, 0, n)
	seen := make(map[string]bool, len(hits))
	for _, hit := range hits {
		b := hit.Book
		b.SimilarityScore = book.Float(Distance(hit.Rank))
		seen[b.Key()] = true
		out = append(out, b)
	}
	if len(out) == n {
		return out, nil
	}

	rest, err := h.store.List(n)
	if err != nil {
		return nil, err
	}
	for _, b := range rest {
		if len(out) == n {
			break
		}
		if !seen[b.Key()] {
			out = append(out, b)
		}
	}
	return out, nil
}

// Distance maps a bm25 rank onto (0, 1]: stronger matches are closer to 0.
func Distance(rank float64) float64 {
	return 1 / (1 + math.Abs(rank))
}

func requestLogger(l *log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			l.Info("request",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"dur", time.Since(start).Round(time.Microsecond),
			)
			return nil
		}
	}
}
