package lookup

import (
	"phonelookup_backend/internal/geocode"
	apphttp "phonelookup_backend/internal/http"
	"phonelookup_backend/internal/mapgen"
	"phonelookup_backend/platform/logger"
	"phonelookup_backend/platform/validator"
)

// Module wires the lookup pipeline and its HTTP routes.
type Module struct {
	service *Service
	handler *Handler
}

func NewModule(resolver *geocode.Resolver, maps *mapgen.Builder, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(resolver, maps, val, log)
	return &Module{
		service: svc,
		handler: NewHandler(svc),
	}
}

// Service returns the lookup service for non-HTTP consumers (the CLI).
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "lookup"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/track", m.handler.Track)
	ctx.V1.POST("/validate", m.handler.Validate)
	ctx.V1.GET("/map/:filename", m.handler.ServeMap)
}

var _ apphttp.Module = (*Module)(nil)
