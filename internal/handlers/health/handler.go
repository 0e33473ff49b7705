package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"teammeet/infras/postgres"
	"teammeet/transport/http/response"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health reports whether the service can reach its database.
// @Summary Health check
// @Description Report service and database health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "OK"
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Read.PingContext(r.Context()); err != nil {
		response.WithUnhealthy(w)

		return
	}

	if err := h.db.Write.PingContext(r.Context()); err != nil {
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}
