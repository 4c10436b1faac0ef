package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/haagahelia/hidb-back/internal/service"
	"go.uber.org/zap"
)

const landingPage = `
    <html>
      <head>
        <title>HIDB Back</title>
      </head>
      <body style="font-family: sans-serif; text-align: center; margin-top: 50px;">
        <h1>Welcome to HIDB Back</h1>
      </body>
    </html>
  `

// Handler handles HTTP requests for the catalog API
type Handler struct {
	service      service.CatalogService
	logger       *zap.Logger
	exposeErrors bool
}

// NewHandler creates a new handler instance. exposeErrors controls whether
// 500 envelopes carry the underlying error detail (development only).
func NewHandler(svc service.CatalogService, logger *zap.Logger, exposeErrors bool) *Handler {
	return &Handler{service: svc, logger: logger, exposeErrors: exposeErrors}
}

// Index handles GET / with the HTML landing page
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(landingPage))
}

// Hello handles GET /hello
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from HIDB Back!"})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// ListAircraft handles GET /api/aircraft
func (h *Handler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.service.GetAllAircraft(r.Context())
	if err != nil {
		h.logger.Error("Error fetching aircraft", zap.Error(err))
		respondServerError(w, "Error retrieving aircraft from database", err, h.exposeErrors)
		return
	}
	respondList(w, "Aircraft retrieved successfully", aircraft, len(aircraft))
}

// GetAircraft handles GET /api/aircraft/{id}. The validation gate has
// already rejected malformed ids; the strconv check is a defensive
// fallback only.
func (h *Handler) GetAircraft(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "Invalid aircraft ID")
		return
	}

	aircraft, err := h.service.GetAircraftByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Error fetching aircraft", zap.Int("id", id), zap.Error(err))
		respondServerError(w, "Error retrieving aircraft from database", err, h.exposeErrors)
		return
	}
	if aircraft == nil {
		respondNotFound(w, "Aircraft")
		return
	}
	respondItem(w, "Aircraft retrieved successfully", aircraft)
}

// ListOrganizations handles GET /api/organizations
func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	organizations, err := h.service.GetAllOrganizations(r.Context())
	if err != nil {
		h.logger.Error("Error fetching organizations", zap.Error(err))
		respondServerError(w, "Error retrieving organizations from database", err, h.exposeErrors)
		return
	}
	respondList(w, "Organizations retrieved successfully", organizations, len(organizations))
}

// GetOrganization handles GET /api/organizations/{id}
func (h *Handler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "Invalid organization ID")
		return
	}

	organization, err := h.service.GetOrganizationByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Error fetching organization", zap.Int("id", id), zap.Error(err))
		respondServerError(w, "Error retrieving organization from database", err, h.exposeErrors)
		return
	}
	if organization == nil {
		respondNotFound(w, "Organization")
		return
	}
	respondItem(w, "Organization retrieved successfully", organization)
}

// ListMedia handles GET /api/media
func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.service.GetAllMedia(r.Context())
	if err != nil {
		h.logger.Error("Error fetching media", zap.Error(err))
		respondServerError(w, "Error retrieving media from database", err, h.exposeErrors)
		return
	}
	respondList(w, "Media retrieved successfully", media, len(media))
}

// GetMedia handles GET /api/media/{id}
func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondBadRequest(w, "Invalid media ID")
		return
	}

	media, err := h.service.GetMediaByID(r.Context(), id)
	if err != nil {
		h.logger.Error("Error fetching media", zap.Int("id", id), zap.Error(err))
		respondServerError(w, "Error retrieving media from database", err, h.exposeErrors)
		return
	}
	if media == nil {
		respondNotFound(w, "Media")
		return
	}
	respondItem(w, "Media retrieved successfully", media)
}
