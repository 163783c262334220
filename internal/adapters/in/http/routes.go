package http

import (
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Query enums of the API contract.
type (
	DeliveryStatus string
	PaymentStatus  string
	RiderStatus    string
)

// GetParcelsParams defines parameters for GetParcels.
type GetParcelsParams struct {
	Email          *string         `form:"email,omitempty"          json:"email,omitempty"`
	DeliveryStatus *DeliveryStatus `form:"deliveryStatus,omitempty" json:"deliveryStatus,omitempty"`
	PaymentStatus  *PaymentStatus  `form:"paymentStatus,omitempty"  json:"paymentStatus,omitempty"`
}

// GetPaymentsParams defines parameters for GetPayments.
type GetPaymentsParams struct {
	Email *string `form:"email,omitempty" json:"email,omitempty"`
}

// GetRidersParams defines parameters for GetRiders.
type GetRidersParams struct {
	Status *RiderStatus `form:"status,omitempty" json:"status,omitempty"`
	Search *string      `form:"search,omitempty" json:"search,omitempty"`
}

// GetRiderParcelsParams defines parameters for GetRiderParcels.
type GetRiderParcelsParams struct {
	DeliveryStatus *DeliveryStatus `form:"deliveryStatus,omitempty" json:"deliveryStatus,omitempty"`
}

// ServerInterface represents all server handlers behind authentication.
type ServerInterface interface {
	// (POST /users)
	LoginUser(ctx echo.Context) error
	// (GET /users/role)
	GetUserRole(ctx echo.Context) error
	// (POST /parcels)
	CreateParcel(ctx echo.Context) error
	// (GET /parcels)
	GetParcels(ctx echo.Context, params GetParcelsParams) error
	// (GET /parcels/{parcelId})
	GetParcel(ctx echo.Context, parcelID openapi_types.UUID) error
	// (DELETE /parcels/{parcelId})
	DeleteParcel(ctx echo.Context, parcelID openapi_types.UUID) error
	// (PATCH /parcels/assign-rider/{parcelId})
	AssignRider(ctx echo.Context, parcelID openapi_types.UUID) error
	// (PATCH /parcels/rider-status/{id})
	AdvanceDelivery(ctx echo.Context, id openapi_types.UUID) error
	// (POST /payments)
	ConfirmPayment(ctx echo.Context) error
	// (GET /payments)
	GetPayments(ctx echo.Context, params GetPaymentsParams) error
	// (POST /tracking)
	AddTrackingEvent(ctx echo.Context) error
	// (GET /tracking/{trackingId})
	GetTracking(ctx echo.Context, trackingID string) error
	// (POST /riders)
	ApplyRider(ctx echo.Context) error
	// (GET /riders)
	GetRiders(ctx echo.Context, params GetRidersParams) error
	// (PATCH /riders/{id}/status)
	ChangeRiderStatus(ctx echo.Context, id openapi_types.UUID) error
	// (GET /rider/parcels)
	GetRiderParcels(ctx echo.Context, params GetRiderParcelsParams) error
	// (POST /rider/cashout)
	Cashout(ctx echo.Context) error
	// (GET /rider/withdraw-total)
	GetWithdrawTotal(ctx echo.Context) error
	// (GET /rider/withdrawals)
	GetWithdrawals(ctx echo.Context) error
	// (GET /dashboard/admin-stats)
	GetAdminStats(ctx echo.Context) error
	// (GET /dashboard/rider-stats)
	GetRiderStats(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// bindPathUUID parses a uuid path parameter. A malformed id cannot name an
// existing object, so it is reported as not found.
func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	raw := ctx.Param(name)
	err := runtime.BindStyledParameterWithOptions("simple", name, raw, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, errs.NewObjectNotFoundErrorWithCause(name, raw, err)
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

// LoginUser converts echo context to params.
func (w *ServerInterfaceWrapper) LoginUser(ctx echo.Context) error {
	return w.Handler.LoginUser(ctx)
}

// GetUserRole converts echo context to params.
func (w *ServerInterfaceWrapper) GetUserRole(ctx echo.Context) error {
	return w.Handler.GetUserRole(ctx)
}

// CreateParcel converts echo context to params.
func (w *ServerInterfaceWrapper) CreateParcel(ctx echo.Context) error {
	return w.Handler.CreateParcel(ctx)
}

// GetParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcels(ctx echo.Context) error {
	var params GetParcelsParams
	if err := bindQuery(ctx, "email", &params.Email); err != nil {
		return err
	}
	if err := bindQuery(ctx, "deliveryStatus", &params.DeliveryStatus); err != nil {
		return err
	}
	if err := bindQuery(ctx, "paymentStatus", &params.PaymentStatus); err != nil {
		return err
	}
	return w.Handler.GetParcels(ctx, params)
}

// GetParcel converts echo context to params.
func (w *ServerInterfaceWrapper) GetParcel(ctx echo.Context) error {
	parcelID, err := bindPathUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.GetParcel(ctx, parcelID)
}

// DeleteParcel converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteParcel(ctx echo.Context) error {
	parcelID, err := bindPathUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteParcel(ctx, parcelID)
}

// AssignRider converts echo context to params.
func (w *ServerInterfaceWrapper) AssignRider(ctx echo.Context) error {
	parcelID, err := bindPathUUID(ctx, "parcelId")
	if err != nil {
		return err
	}
	return w.Handler.AssignRider(ctx, parcelID)
}

// AdvanceDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceDelivery(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AdvanceDelivery(ctx, id)
}

// ConfirmPayment converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmPayment(ctx echo.Context) error {
	return w.Handler.ConfirmPayment(ctx)
}

// GetPayments converts echo context to params.
func (w *ServerInterfaceWrapper) GetPayments(ctx echo.Context) error {
	var params GetPaymentsParams
	if err := bindQuery(ctx, "email", &params.Email); err != nil {
		return err
	}
	return w.Handler.GetPayments(ctx, params)
}

// AddTrackingEvent converts echo context to params.
func (w *ServerInterfaceWrapper) AddTrackingEvent(ctx echo.Context) error {
	return w.Handler.AddTrackingEvent(ctx)
}

// GetTracking converts echo context to params.
func (w *ServerInterfaceWrapper) GetTracking(ctx echo.Context) error {
	var trackingID string
	err := runtime.BindStyledParameterWithOptions("simple", "trackingId", ctx.Param("trackingId"), &trackingID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trackingId", err)
	}
	return w.Handler.GetTracking(ctx, trackingID)
}

// ApplyRider converts echo context to params.
func (w *ServerInterfaceWrapper) ApplyRider(ctx echo.Context) error {
	return w.Handler.ApplyRider(ctx)
}

// GetRiders converts echo context to params.
func (w *ServerInterfaceWrapper) GetRiders(ctx echo.Context) error {
	var params GetRidersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "search", &params.Search); err != nil {
		return err
	}
	return w.Handler.GetRiders(ctx, params)
}

// ChangeRiderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeRiderStatus(ctx echo.Context) error {
	id, err := bindPathUUID(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.ChangeRiderStatus(ctx, id)
}

// GetRiderParcels converts echo context to params.
func (w *ServerInterfaceWrapper) GetRiderParcels(ctx echo.Context) error {
	var params GetRiderParcelsParams
	if err := bindQuery(ctx, "deliveryStatus", &params.DeliveryStatus); err != nil {
		return err
	}
	return w.Handler.GetRiderParcels(ctx, params)
}

// Cashout converts echo context to params.
func (w *ServerInterfaceWrapper) Cashout(ctx echo.Context) error {
	return w.Handler.Cashout(ctx)
}

// GetWithdrawTotal converts echo context to params.
func (w *ServerInterfaceWrapper) GetWithdrawTotal(ctx echo.Context) error {
	return w.Handler.GetWithdrawTotal(ctx)
}

// GetWithdrawals converts echo context to params.
func (w *ServerInterfaceWrapper) GetWithdrawals(ctx echo.Context) error {
	return w.Handler.GetWithdrawals(ctx)
}

// GetAdminStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetAdminStats(ctx echo.Context) error {
	return w.Handler.GetAdminStats(ctx)
}

// GetRiderStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetRiderStats(ctx echo.Context) error {
	return w.Handler.GetRiderStats(ctx)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// OperationMiddleware returns the middleware chain of one operation, keyed
// by its operationId in the API contract.
type OperationMiddleware func(operationID string) []echo.MiddlewareFunc

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface, mw OperationMiddleware) {
	w := ServerInterfaceWrapper{Handler: si}
	if mw == nil {
		mw = func(string) []echo.MiddlewareFunc { return nil }
	}

	router.POST("/users", w.LoginUser, mw("loginUser")...)
	router.GET("/users/role", w.GetUserRole, mw("getUserRole")...)
	router.POST("/parcels", w.CreateParcel, mw("createParcel")...)
	router.GET("/parcels", w.GetParcels, mw("getParcels")...)
	router.GET("/parcels/:parcelId", w.GetParcel, mw("getParcel")...)
	router.DELETE("/parcels/:parcelId", w.DeleteParcel, mw("deleteParcel")...)
	router.PATCH("/parcels/assign-rider/:parcelId", w.AssignRider, mw("assignRider")...)
	router.PATCH("/parcels/rider-status/:id", w.AdvanceDelivery, mw("advanceDelivery")...)
	router.POST("/payments", w.ConfirmPayment, mw("confirmPayment")...)
	router.GET("/payments", w.GetPayments, mw("getPayments")...)
	router.POST("/tracking", w.AddTrackingEvent, mw("addTrackingEvent")...)
	router.GET("/tracking/:trackingId", w.GetTracking, mw("getTracking")...)
	router.POST("/riders", w.ApplyRider, mw("applyRider")...)
	router.GET("/riders", w.GetRiders, mw("getRiders")...)
	router.PATCH("/riders/:id/status", w.ChangeRiderStatus, mw("changeRiderStatus")...)
	router.GET("/rider/parcels", w.GetRiderParcels, mw("getRiderParcels")...)
	router.POST("/rider/cashout", w.Cashout, mw("cashout")...)
	router.GET("/rider/withdraw-total", w.GetWithdrawTotal, mw("getWithdrawTotal")...)
	router.GET("/rider/withdrawals", w.GetWithdrawals, mw("getWithdrawals")...)
	router.GET("/dashboard/admin-stats", w.GetAdminStats, mw("getAdminStats")...)
	router.GET("/dashboard/rider-stats", w.GetRiderStats, mw("getRiderStats")...)
}
