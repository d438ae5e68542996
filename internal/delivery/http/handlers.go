package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/christofschnelle/leaflet-demo/internal/domain"
	"github.com/christofschnelle/leaflet-demo/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	mapSvc *service.MapService
}

// NewHandler creates a new handler
func NewHandler(mapSvc *service.MapService) *Handler {
	return &Handler{mapSvc: mapSvc}
}

// coordinateRequest is the body of click and location events.
type coordinateRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// togglesRequest carries optional flag changes; omitted fields stay as-is.
type togglesRequest struct {
	ShowWeather *bool `json:"show_weather"`
	ShowTraffic *bool `json:"show_traffic"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "leaflet-demo-backend",
		"version": "1.0.0",
	})
}

// CreateSession opens a new map session with default toggles.
func (h *Handler) CreateSession(c *fiber.Ctx) error {
	sess := h.mapSvc.CreateSession()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"session_id": sess.ID,
		"view":       h.mapSvc.View(sess),
	})
}

// DeleteSession drops a map session.
func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	if !h.mapSvc.DropSession(c.Params("id")) {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetView renders the current view model for a session.
func (h *Handler) GetView(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"view":    h.mapSvc.View(sess),
	})
}

// MapClick appends a clicked point and returns the re-rendered view.
func (h *Handler) MapClick(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	pt, err := h.coordinate(c)
	if err != nil {
		return err
	}

	h.mapSvc.HandleMapClick(sess, pt)

	return c.JSON(fiber.Map{
		"success": true,
		"view":    h.mapSvc.View(sess),
	})
}

// LocationFound records a geolocation fix, triggers the fetch effects and
// returns the fly-to command along with the re-rendered view.
func (h *Handler) LocationFound(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	pt, err := h.coordinate(c)
	if err != nil {
		return err
	}

	flyTo := h.mapSvc.HandleLocationFound(sess, pt)

	return c.JSON(fiber.Map{
		"success": true,
		"fly_to":  flyTo,
		"view":    h.mapSvc.View(sess),
	})
}

// ClearPoints empties the clicked-point sequence.
func (h *Handler) ClearPoints(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	h.mapSvc.ClearPoints(sess)

	return c.JSON(fiber.Map{
		"success": true,
		"view":    h.mapSvc.View(sess),
	})
}

// UpdateToggles flips the overlay flags.
func (h *Handler) UpdateToggles(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	var req togglesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	h.mapSvc.SetToggles(sess, req.ShowWeather, req.ShowTraffic)

	return c.JSON(fiber.Map{
		"success": true,
		"view":    h.mapSvc.View(sess),
	})
}

// GetWeather returns the current weather snapshot, null until the first
// successful fetch.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	st := h.mapSvc.Snapshot(sess)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    st.Weather,
	})
}

// GetTraffic returns the current traffic-point set.
func (h *Handler) GetTraffic(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}

	st := h.mapSvc.Snapshot(sess)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    st.TrafficPoints,
		"count":   len(st.TrafficPoints),
	})
}

// session resolves the :id route parameter to a live session.
func (h *Handler) session(c *fiber.Ctx) (*service.Session, error) {
	sess, ok := h.mapSvc.Session(c.Params("id"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	return sess, nil
}

// coordinate parses and range-checks the request body. The map host sends
// coordinates by construction, but wire input is untrusted.
func (h *Handler) coordinate(c *fiber.Ctx) (domain.Coordinate, error) {
	var req coordinateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.Coordinate{}, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	pt := domain.Coordinate{Lat: req.Lat, Lng: req.Lng}
	if err := pt.Validate(); err != nil {
		return domain.Coordinate{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return pt, nil
}
