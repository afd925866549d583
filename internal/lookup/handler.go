package lookup

import (
	"net/http"

	"phonelookup_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the lookup endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Track handles POST /api/v1/track.
// Typed pipeline failures are part of the contract and return 200 with a
// failure envelope; only a missing field or empty input is a 400.
func (h *Handler) Track(c *gin.Context) {
	var req TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.JSON(c, http.StatusBadRequest, Failure{Success: false, Error: "phone number is required"})
		return
	}

	result, failure := h.svc.Track(c.Request.Context(), req)
	if failure != nil {
		status := http.StatusOK
		if failure.Kind == FailureInput {
			status = http.StatusBadRequest
		}
		httpkit.JSON(c, status, Failure{Success: false, Error: failure.Detail})
		return
	}

	httpkit.OK(c, result)
}

// Validate handles POST /api/v1/validate. It reuses only the validation
// stage: no geocoding, no artifacts.
func (h *Handler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.OK(c, ValidationResult{Valid: false, Message: "phone number is required"})
		return
	}

	httpkit.OK(c, h.svc.Validate(req.PhoneNumber))
}

// ServeMap handles GET /api/v1/map/:filename. A missing artifact is a
// lookup failure for the caller, never a pipeline failure.
func (h *Handler) ServeMap(c *gin.Context) {
	path, err := h.svc.ArtifactPath(c.Param("filename"))
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.File(path)
}
