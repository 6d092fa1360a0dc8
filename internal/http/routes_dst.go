package http

import (
	"github.com/gin-gonic/gin"
)

// DSTRoutes handles dilution protocol route registration: calculation,
// batch, units, drug references, sessions and log queries.
type DSTRoutes struct {
	handler         *Handler
	drugsHandler    *DrugsHandler
	sessionsHandler *SessionsHandler
	logsHandler     *LogsHandler
}

// NewDSTRoutes creates a new DSTRoutes instance. Sessions and logs
// handlers are omitted when their services are nil (database disabled).
func NewDSTRoutes(cfg *RouterConfig) *DSTRoutes {
	r := &DSTRoutes{
		handler: NewHandler(cfg.ProtocolService, cfg.BatchService),
	}
	if cfg.DrugService != nil {
		r.drugsHandler = NewDrugsHandler(cfg.DrugService)
	}
	if cfg.SessionService != nil {
		r.sessionsHandler = NewSessionsHandler(cfg.SessionService)
	}
	if cfg.LoggingService != nil {
		r.logsHandler = NewLogsHandler(cfg.LoggingService)
	}
	return r
}

// RegisterPublicRoutes registers all routes without authentication.
func (r *DSTRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.registerCalculationRoutes(rg)
	r.registerReferenceRoutes(rg)
	r.registerSessionRoutes(rg)
	r.registerLogRoutes(rg)
}

// RegisterProtectedRoutes registers the routes behind JWT auth. The
// read-only reference endpoints stay public so the front end can list
// drugs before login.
func (r *DSTRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.registerCalculationRoutes(protected)
	r.registerSessionRoutes(protected)
	r.registerLogRoutes(protected)

	if r.drugsHandler != nil {
		protected.POST("/drugs", r.drugsHandler.CreateDrug)
		protected.PATCH("/drugs/:drug_id/availability", r.drugsHandler.UpdateDrugAvailability)
	}
}

// RegisterReadOnlyRoutes registers the unauthenticated read endpoints
// used alongside RegisterProtectedRoutes.
func (r *DSTRoutes) RegisterReadOnlyRoutes(rg *gin.RouterGroup) {
	if r.drugsHandler != nil {
		rg.GET("/drugs", r.drugsHandler.ListDrugs)
		rg.GET("/drugs/:drug_id", r.drugsHandler.GetDrug)
	}
	rg.GET("/units", r.handler.ListUnits)
	rg.POST("/units/convert", r.handler.ConvertUnit)
}

func (r *DSTRoutes) registerCalculationRoutes(rg *gin.RouterGroup) {
	rg.POST("/calculate/stage-one", r.handler.StageOne)
	rg.POST("/calculate/stage-two", r.handler.StageTwo)
	rg.POST("/batch", r.handler.Batch)
}

func (r *DSTRoutes) registerReferenceRoutes(rg *gin.RouterGroup) {
	if r.drugsHandler != nil {
		rg.GET("/drugs", r.drugsHandler.ListDrugs)
		rg.GET("/drugs/:drug_id", r.drugsHandler.GetDrug)
		rg.POST("/drugs", r.drugsHandler.CreateDrug)
		rg.PATCH("/drugs/:drug_id/availability", r.drugsHandler.UpdateDrugAvailability)
	}
	rg.GET("/units", r.handler.ListUnits)
	rg.POST("/units/convert", r.handler.ConvertUnit)
}

func (r *DSTRoutes) registerSessionRoutes(rg *gin.RouterGroup) {
	if r.sessionsHandler == nil {
		return
	}
	rg.POST("/sessions", r.sessionsHandler.SaveSession)
	rg.GET("/sessions", r.sessionsHandler.ListSessions)
	rg.GET("/sessions/:session_id", r.sessionsHandler.GetSession)
	rg.DELETE("/sessions/:session_id", r.sessionsHandler.DeleteSession)
}

func (r *DSTRoutes) registerLogRoutes(rg *gin.RouterGroup) {
	if r.logsHandler == nil {
		return
	}
	rg.GET("/logs", r.logsHandler.QueryLogs)
}

// GetHandler returns the underlying calculation handler.
func (r *DSTRoutes) GetHandler() *Handler {
	return r.handler
}
