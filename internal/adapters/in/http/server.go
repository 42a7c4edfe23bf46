package http

import (
	"net/http"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/commands"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/queries"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/kernel"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/purchase"
	"github.com/NotMikev/awesome-pizza-manager/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PurchaseResponse is the wire representation of one order.
type PurchaseResponse struct {
	Code      string    `json:"code"`
	Item      string    `json:"item"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPurchaseHandler     commands.CreatePurchaseCommandHandler
	takeNextPurchaseHandler   commands.TakeNextPurchaseCommandHandler
	takePurchaseByCodeHandler commands.TakePurchaseByCodeCommandHandler
	markPurchaseReadyHandler  commands.MarkPurchaseReadyCommandHandler

	// Query handlers
	checkPurchaseStatusHandler queries.CheckPurchaseStatusQueryHandler
	getAuditRecordHandler      queries.GetAuditRecordQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPurchaseHandler commands.CreatePurchaseCommandHandler,
	takeNextPurchaseHandler commands.TakeNextPurchaseCommandHandler,
	takePurchaseByCodeHandler commands.TakePurchaseByCodeCommandHandler,
	markPurchaseReadyHandler commands.MarkPurchaseReadyCommandHandler,
	checkPurchaseStatusHandler queries.CheckPurchaseStatusQueryHandler,
	getAuditRecordHandler queries.GetAuditRecordQueryHandler,
) *Server {
	return &Server{
		createPurchaseHandler:      createPurchaseHandler,
		takeNextPurchaseHandler:    takeNextPurchaseHandler,
		takePurchaseByCodeHandler:  takePurchaseByCodeHandler,
		markPurchaseReadyHandler:   markPurchaseReadyHandler,
		checkPurchaseStatusHandler: checkPurchaseStatusHandler,
		getAuditRecordHandler:      getAuditRecordHandler,
	}
}

// RegisterRoutes mounts all order lifecycle routes under the audited prefix
// and the audit trail lookup outside it.
func (s *Server) RegisterRoutes(api *echo.Group, e *echo.Echo) {
	api.POST("/purchase", s.CreatePurchase)
	api.POST("/purchase/next", s.TakeNextPurchase)
	api.POST("/purchase/next/:code", s.TakePurchaseByCode)
	api.POST("/purchase/:code/ready", s.MarkPurchaseReady)
	api.GET("/purchase/:code", s.CheckPurchaseStatus)

	e.GET("/audit/:correlationId", s.GetAuditRecord)
}

// CreatePurchase handles POST /api/purchase - places a new pizza order.
//
//	@Summary		Place a new order
//	@Tags			purchase
//	@Param			item	query		string	true	"pizza to order"
//	@Success		201		{object}	PurchaseResponse
//	@Failure		400		{object}	ApiError
//	@Router			/api/purchase [post]
func (s *Server) CreatePurchase(ctx echo.Context) error {
	item := ctx.QueryParam("item")
	if item == "" {
		item = ctx.FormValue("item")
	}

	cmd, err := commands.NewCreatePurchaseCommand(kernel.NewCode(), item)
	if err != nil {
		return err
	}

	placed, err := s.createPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, fromPurchase(placed))
}

// TakeNextPurchase handles POST /api/purchase/next - claims the oldest pending order.
//
//	@Summary		Take the next order in the queue
//	@Tags			purchase
//	@Success		200	{object}	PurchaseResponse
//	@Failure		404	{object}	ApiError
//	@Router			/api/purchase/next [post]
func (s *Server) TakeNextPurchase(ctx echo.Context) error {
	cmd := commands.NewTakeNextPurchaseCommand()

	taken, err := s.takeNextPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromPurchase(taken))
}

// TakePurchaseByCode handles POST /api/purchase/next/:code - claims one specific pending order.
//
//	@Summary		Take a specific pending order
//	@Tags			purchase
//	@Param			code	path		string	true	"order code"
//	@Success		200		{object}	PurchaseResponse
//	@Failure		404		{object}	ApiError
//	@Router			/api/purchase/next/{code} [post]
func (s *Server) TakePurchaseByCode(ctx echo.Context) error {
	code, err := codeParam(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTakePurchaseByCodeCommand(code)
	if err != nil {
		return err
	}

	taken, err := s.takePurchaseByCodeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromPurchase(taken))
}

// MarkPurchaseReady handles POST /api/purchase/:code/ready - finishes an order in progress.
//
//	@Summary		Mark an order as ready
//	@Tags			purchase
//	@Param			code	path		string	true	"order code"
//	@Success		200		{object}	PurchaseResponse
//	@Failure		404		{object}	ApiError
//	@Router			/api/purchase/{code}/ready [post]
func (s *Server) MarkPurchaseReady(ctx echo.Context) error {
	code, err := codeParam(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkPurchaseReadyCommand(code)
	if err != nil {
		return err
	}

	ready, err := s.markPurchaseReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, fromPurchase(ready))
}

// CheckPurchaseStatus handles GET /api/purchase/:code - reports the current order state.
//
//	@Summary		Check the status of an order
//	@Tags			purchase
//	@Param			code	path		string	true	"order code"
//	@Success		200		{object}	PurchaseResponse
//	@Failure		404		{object}	ApiError
//	@Router			/api/purchase/{code} [get]
func (s *Server) CheckPurchaseStatus(ctx echo.Context) error {
	code, err := codeParam(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewCheckPurchaseStatusQuery(code)
	if err != nil {
		return err
	}

	status, err := s.checkPurchaseStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, PurchaseResponse{
		Code:      status.Code,
		Item:      status.Item,
		Status:    status.Status,
		CreatedAt: status.CreatedAt,
		UpdatedAt: status.UpdatedAt,
	})
}

// GetAuditRecord handles GET /audit/:correlationId - looks up the audit trail
// entry of a past API call. The lookup itself is not audited.
//
//	@Summary		Look up an audit trail entry
//	@Tags			audit
//	@Param			correlationId	path		string	true	"correlation id from the X-Correlation-Id header"
//	@Success		200				{object}	queries.GetAuditRecordQueryResponse
//	@Failure		404				{object}	ApiError
//	@Router			/audit/{correlationId} [get]
func (s *Server) GetAuditRecord(ctx echo.Context) error {
	query, err := queries.NewGetAuditRecordQuery(ctx.Param("correlationId"))
	if err != nil {
		return err
	}

	record, err := s.getAuditRecordHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, record)
}

// codeParam extracts the order code from the request path. A code the domain
// rejects names no order, so the failure is reported as not found rather than
// a validation error.
func codeParam(ctx echo.Context) (kernel.Code, error) {
	raw := ctx.Param("code")
	code, err := kernel.CodeFromString(raw)
	if err != nil {
		return kernel.Code{}, errs.NewObjectNotFoundErrorWithCause("code", raw, err)
	}
	return code, nil
}

func fromPurchase(p *purchase.Purchase) PurchaseResponse {
	return PurchaseResponse{
		Code:      p.Code().String(),
		Item:      p.Item(),
		Status:    p.Status().String(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
