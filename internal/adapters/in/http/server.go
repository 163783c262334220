package http

import (
	"context"
	"net/http"

	"parcelhub/internal/core/application/authority"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"go.uber.org/zap"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	LoginUser         commands.LoginUserCommandHandler
	CreateParcel      commands.CreateParcelCommandHandler
	DeleteParcel      commands.DeleteParcelCommandHandler
	AssignRider       commands.AssignRiderCommandHandler
	AdvanceDelivery   commands.AdvanceDeliveryCommandHandler
	ConfirmPayment    commands.ConfirmPaymentCommandHandler
	AddTrackingEvent  commands.AddTrackingEventCommandHandler
	ApplyRider        commands.ApplyRiderCommandHandler
	ChangeRiderStatus commands.ChangeRiderStatusCommandHandler
	RecordWithdrawal  commands.RecordWithdrawalCommandHandler

	// Query handlers
	GetUserRole     queries.GetUserRoleQueryHandler
	GetParcels      queries.GetParcelsQueryHandler
	GetParcel       queries.GetParcelQueryHandler
	GetRiderParcels queries.GetRiderParcelsQueryHandler
	GetPayments     queries.GetPaymentsQueryHandler
	GetTracking     queries.GetTrackingQueryHandler
	GetRiders       queries.GetRidersQueryHandler
	GetWithdrawals  queries.GetWithdrawalsQueryHandler
	GetAdminStats   queries.GetAdminStatsQueryHandler
	GetRiderStats   queries.GetRiderStatsQueryHandler
}

// HealthCheck probes one dependency for GET /health.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// Dependencies are the collaborators of the server besides the use cases.
// Cache may be nil when no Redis is configured.
type Dependencies struct {
	Authority *authority.RoleAuthority
	Verifier  ports.IdentityVerifier
	Cache     ports.StatsCache
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Checks    []HealthCheck
}

// Server implements ServerInterface. It turns HTTP requests into commands
// and queries and their results into response bodies; authorization has
// already happened in middleware when a method runs.
type Server struct {
	h         Handlers
	authority *authority.RoleAuthority
	verifier  ports.IdentityVerifier
	cache     ports.StatsCache
	metrics   *metrics.Metrics
	log       *zap.Logger
	checks    []HealthCheck
}

func NewServer(h Handlers, deps Dependencies) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		h:         h,
		authority: deps.Authority,
		verifier:  deps.Verifier,
		cache:     deps.Cache,
		metrics:   m,
		log:       log,
		checks:    deps.Checks,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	resp := HealthResponse{Status: "healthy", Deps: make([]HealthDependency, 0, len(s.checks))}
	code := http.StatusOK
	for _, check := range s.checks {
		dep := HealthDependency{Name: check.Name, Status: "healthy", Message: "OK"}
		if err := check.Ping(c.Request().Context()); err != nil {
			dep.Status = "unhealthy"
			dep.Message = err.Error()
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
		resp.Deps = append(resp.Deps, dep)
	}
	return c.JSON(code, resp)
}

// LoginUser handles POST /users. The account is created on first login.
func (s *Server) LoginUser(c echo.Context) error {
	var req LoginRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	cmd, err := commands.NewLoginUserCommand(identityOf(c).Email, req.Name)
	if err != nil {
		return err
	}
	result, err := s.h.LoginUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	code := http.StatusOK
	if result.IsNewUser {
		code = http.StatusCreated
	}
	return c.JSON(code, LoginResponse{IsNewUser: result.IsNewUser, User: toUserResponse(result.User)})
}

// GetUserRole handles GET /users/role for the caller's own account.
func (s *Server) GetUserRole(c echo.Context) error {
	query, err := queries.NewGetUserRoleQuery(identityOf(c).Email)
	if err != nil {
		return err
	}
	role, err := s.h.GetUserRole.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, RoleResponse{Role: role.String()})
}

// CreateParcel handles POST /parcels.
func (s *Server) CreateParcel(c echo.Context) error {
	var req NewParcelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cost, err := kernel.MoneyFromFloat(req.TotalCost)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		accountOf(c).Email(),
		parcel.Details{
			Title:            req.Title,
			SenderName:       req.SenderName,
			SenderDistrict:   req.SenderDistrict,
			ReceiverName:     req.ReceiverName,
			ReceiverDistrict: req.ReceiverDistrict,
		},
		cost,
	)
	if err != nil {
		return err
	}
	p, err := s.h.CreateParcel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.ParcelsCreated.Inc()
	return c.JSON(http.StatusCreated, toParcelResponse(p))
}

// GetParcels handles GET /parcels.
func (s *Server) GetParcels(c echo.Context, params GetParcelsParams) error {
	account := accountOf(c)
	query, err := queries.NewGetParcelsQuery(
		account.Email(),
		account.HasRole(user.RoleAdmin),
		deref(params.Email),
		deref(params.DeliveryStatus),
		deref(params.PaymentStatus),
	)
	if err != nil {
		return err
	}
	views, err := s.h.GetParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelViewResponses(views))
}

// GetParcel handles GET /parcels/{parcelId}.
func (s *Server) GetParcel(c echo.Context, parcelID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return err
	}
	account := accountOf(c)
	query, err := queries.NewGetParcelQuery(id, account.Email(), account.HasRole(user.RoleAdmin))
	if err != nil {
		return err
	}
	view, err := s.h.GetParcel.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelViewResponse(view))
}

// DeleteParcel handles DELETE /parcels/{parcelId}.
func (s *Server) DeleteParcel(c echo.Context, parcelID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteParcelCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteParcel.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	s.invalidateStats(c.Request().Context())
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// AssignRider handles PATCH /parcels/assign-rider/{parcelId}.
func (s *Server) AssignRider(c echo.Context, parcelID openapi_types.UUID) error {
	var req AssignRiderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return err
	}
	// A rider id that cannot parse fails like one that does not resolve.
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return errs.NewTransactionFailedErrorWithCause(commands.AssignmentFailed,
			errs.NewObjectNotFoundErrorWithCause("riderId", req.RiderID, err))
	}
	riderEmail, err := kernel.NewEmail(req.RiderEmail)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignRiderCommand(id, riderID, riderEmail, accountOf(c).Email())
	if err != nil {
		return err
	}
	err = s.h.AssignRider.Handle(c.Request().Context(), cmd)
	s.metrics.Assignments.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// AdvanceDelivery handles PATCH /parcels/rider-status/{id}.
func (s *Server) AdvanceDelivery(c echo.Context, parcelID openapi_types.UUID) error {
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return err
	}
	account := accountOf(c)
	cmd, err := commands.NewAdvanceDeliveryCommand(id, req.Status, account.Email(), account.HasRole(user.RoleAdmin))
	if err != nil {
		return err
	}
	p, err := s.h.AdvanceDelivery.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.DeliveryUpdates.WithLabelValues(p.DeliveryStatus().String()).Inc()
	if p.DeliveryStatus() == parcel.Completed {
		var keys []string
		if a := p.Assignment(); a != nil {
			keys = append(keys, queries.RiderStatsCacheKey(a.RiderEmail))
		}
		s.invalidateStats(c.Request().Context(), keys...)
	}
	return c.JSON(http.StatusOK, toParcelResponse(p))
}

// ConfirmPayment handles POST /payments.
func (s *Server) ConfirmPayment(c echo.Context) error {
	var req PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return err
	}
	amount, err := kernel.MoneyFromFloat(req.Amount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmPaymentCommand(parcelID, accountOf(c).Email(), amount, req.TransactionID)
	if err != nil {
		return err
	}
	record, err := s.h.ConfirmPayment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.PaymentsConfirmed.Inc()
	s.invalidateStats(c.Request().Context())
	return c.JSON(http.StatusCreated, toPaymentResponse(record))
}

// GetPayments handles GET /payments. Without an email filter the caller's
// own history is returned.
func (s *Server) GetPayments(c echo.Context, params GetPaymentsParams) error {
	requester := accountOf(c).Email()
	email := requester
	if v := deref(params.Email); v != "" {
		var err error
		if email, err = kernel.NewEmail(v); err != nil {
			return err
		}
	}

	query, err := queries.NewGetPaymentsQuery(email, requester)
	if err != nil {
		return err
	}
	views, err := s.h.GetPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentViewResponses(views))
}

// AddTrackingEvent handles POST /tracking.
func (s *Server) AddTrackingEvent(c echo.Context) error {
	var req TrackingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewAddTrackingEventCommand(req.TrackingID, req.Status, req.Details, accountOf(c).Email())
	if err != nil {
		return err
	}
	if err = s.h.AddTrackingEvent.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Success: true})
}

// GetTracking handles GET /tracking/{trackingId}.
func (s *Server) GetTracking(c echo.Context, trackingID string) error {
	query, err := queries.NewGetTrackingQuery(trackingID)
	if err != nil {
		return err
	}
	views, err := s.h.GetTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackingResponses(views))
}

// ApplyRider handles POST /riders. The application is filed under the
// caller's e-mail.
func (s *Server) ApplyRider(c echo.Context) error {
	var req RiderApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewApplyRiderCommand(
		kernel.NewUUID(),
		accountOf(c).Email(),
		rider.Profile{Name: req.Name, District: req.District, Phone: req.Phone},
	)
	if err != nil {
		return err
	}
	r, err := s.h.ApplyRider.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toRiderResponse(r))
}

// GetRiders handles GET /riders.
func (s *Server) GetRiders(c echo.Context, params GetRidersParams) error {
	query, err := queries.NewGetRidersQuery(deref(params.Status), deref(params.Search))
	if err != nil {
		return err
	}
	views, err := s.h.GetRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRiderViewResponses(views))
}

// ChangeRiderStatus handles PATCH /riders/{id}/status.
func (s *Server) ChangeRiderStatus(c echo.Context, riderID openapi_types.UUID) error {
	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(riderID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeRiderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}
	result, err := s.h.ChangeRiderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if result.RoleChanged {
		s.metrics.RoleCascades.WithLabelValues("status_change").Inc()
	}
	s.invalidateStats(c.Request().Context())
	return c.JSON(http.StatusOK, ModifiedResponse{ModifiedCount: result.ModifiedCount})
}

// GetRiderParcels handles GET /rider/parcels.
func (s *Server) GetRiderParcels(c echo.Context, params GetRiderParcelsParams) error {
	query, err := queries.NewGetRiderParcelsQuery(accountOf(c).Email(), deref(params.DeliveryStatus))
	if err != nil {
		return err
	}
	views, err := s.h.GetRiderParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toParcelViewResponses(views))
}

// Cashout handles POST /rider/cashout.
func (s *Server) Cashout(c echo.Context) error {
	var req CashoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	amount, err := kernel.MoneyFromFloat(req.Amount)
	if err != nil {
		return err
	}

	email := accountOf(c).Email()
	cmd, err := commands.NewRecordWithdrawalCommand(email, amount)
	if err != nil {
		return err
	}
	record, err := s.h.RecordWithdrawal.Handle(c.Request().Context(), cmd)
	s.metrics.Withdrawals.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return err
	}

	s.metrics.WithdrawnAmount.Add(record.Amount().Float64())
	s.invalidateStats(c.Request().Context(), queries.RiderStatsCacheKey(email))
	return c.JSON(http.StatusOK, toWithdrawalResponse(record))
}

// GetWithdrawTotal handles GET /rider/withdraw-total.
func (s *Server) GetWithdrawTotal(c echo.Context) error {
	query, err := queries.NewGetWithdrawalsQuery(accountOf(c).Email())
	if err != nil {
		return err
	}
	total, err := s.h.GetWithdrawals.Total(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TotalResponse{Total: total.Float64()})
}

// GetWithdrawals handles GET /rider/withdrawals.
func (s *Server) GetWithdrawals(c echo.Context) error {
	email := accountOf(c).Email()
	query, err := queries.NewGetWithdrawalsQuery(email)
	if err != nil {
		return err
	}
	views, err := s.h.GetWithdrawals.History(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toWithdrawalViewResponses(email.String(), views))
}

// GetAdminStats handles GET /dashboard/admin-stats.
func (s *Server) GetAdminStats(c echo.Context) error {
	stats, err := s.h.GetAdminStats.Handle(c.Request().Context(), queries.NewGetAdminStatsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminStatsResponse(stats))
}

// GetRiderStats handles GET /dashboard/rider-stats.
func (s *Server) GetRiderStats(c echo.Context) error {
	query, err := queries.NewGetRiderStatsQuery(accountOf(c).Email())
	if err != nil {
		return err
	}
	stats, err := s.h.GetRiderStats.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRiderStatsResponse(stats))
}

// invalidateStats drops the admin dashboard and the given extra keys from
// the cache. Failures only cost freshness until the TTL expires.
func (s *Server) invalidateStats(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	keys = append(keys, queries.AdminStatsCacheKey)
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.log.Warn("stats cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func deref[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}
