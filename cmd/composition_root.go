package cmd

import (
	"context"

	httpin "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/in/http/apidocs"
	"parcelhub/internal/adapters/out/idgen"
	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/core/application/authority"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/jobs"
	"parcelhub/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires use cases to adapters. It holds no global state;
// every process or test builds its own.
type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	verifier    ports.IdentityVerifier
	cache       ports.StatsCache
	trackingIDs ports.TrackingIDGenerator
	adminEmails []kernel.Email
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// NewCompositionRoot builds the root. cache may be nil, which disables the
// dashboard cache and the stats refresh job.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	verifier ports.IdentityVerifier,
	cache ports.StatsCache,
	log *zap.Logger,
) (*CompositionRoot, error) {
	adminEmails, err := cfg.AdminEmailList()
	if err != nil {
		return nil, err
	}
	trackingIDs, err := idgen.NewSnowflakeGenerator(cfg.SnowflakeNode)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:         cfg,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB, log.Named("uow")),
		verifier:    verifier,
		cache:       cache,
		trackingIDs: trackingIDs,
		adminEmails: adminEmails,
		metrics:     metrics.New(),
		log:         log,
	}, nil
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.accountUoWFactory(), c.adminEmails)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.trackingIDs)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	return commands.NewAdvanceDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.paymentUoWFactory())
}

func (c *CompositionRoot) CreateAddTrackingEventCommandHandler() commands.AddTrackingEventCommandHandler {
	return commands.NewAddTrackingEventCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateApplyRiderCommandHandler() commands.ApplyRiderCommandHandler {
	return commands.NewApplyRiderCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateChangeRiderStatusCommandHandler() commands.ChangeRiderStatusCommandHandler {
	return commands.NewChangeRiderStatusCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateReconcileRolesCommandHandler() commands.ReconcileRolesCommandHandler {
	return commands.NewReconcileRolesCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateRecordWithdrawalCommandHandler() commands.RecordWithdrawalCommandHandler {
	return commands.NewRecordWithdrawalCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateGetAdminStatsQueryHandler() queries.GetAdminStatsQueryHandler {
	return queries.NewGetAdminStatsQueryHandler(c.gormDB, c.cache, c.cfg.StatsCacheTTL, c.log.Named("admin_stats"))
}

func (c *CompositionRoot) CreateGetRiderStatsQueryHandler() queries.GetRiderStatsQueryHandler {
	return queries.NewGetRiderStatsQueryHandler(c.gormDB, c.cache, c.cfg.StatsCacheTTL, c.log.Named("rider_stats"))
}

// CreateRoleAuthority resolves accounts with a fresh unit of work per lookup,
// outside any transaction.
func (c *CompositionRoot) CreateRoleAuthority() *authority.RoleAuthority {
	return authority.NewRoleAuthority(FuncUserLookup(func(ctx context.Context, email kernel.Email) (*user.User, error) {
		return c.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	}))
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	checks := []httpin.HealthCheck{{
		Name: "postgres",
		Ping: func(ctx context.Context) error {
			sqlDB, err := c.gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}}
	if pinger, ok := c.cache.(interface{ Ping(context.Context) error }); ok {
		checks = append(checks, httpin.HealthCheck{Name: "redis", Ping: pinger.Ping})
	}

	return httpin.NewServer(httpin.Handlers{
		LoginUser:         c.CreateLoginUserCommandHandler(),
		CreateParcel:      c.CreateCreateParcelCommandHandler(),
		DeleteParcel:      c.CreateDeleteParcelCommandHandler(),
		AssignRider:       c.CreateAssignRiderCommandHandler(),
		AdvanceDelivery:   c.CreateAdvanceDeliveryCommandHandler(),
		ConfirmPayment:    c.CreateConfirmPaymentCommandHandler(),
		AddTrackingEvent:  c.CreateAddTrackingEventCommandHandler(),
		ApplyRider:        c.CreateApplyRiderCommandHandler(),
		ChangeRiderStatus: c.CreateChangeRiderStatusCommandHandler(),
		RecordWithdrawal:  c.CreateRecordWithdrawalCommandHandler(),

		GetUserRole:     queries.NewGetUserRoleQueryHandler(c.gormDB),
		GetParcels:      queries.NewGetParcelsQueryHandler(c.gormDB),
		GetParcel:       queries.NewGetParcelQueryHandler(c.gormDB),
		GetRiderParcels: queries.NewGetRiderParcelsQueryHandler(c.gormDB),
		GetPayments:     queries.NewGetPaymentsQueryHandler(c.gormDB),
		GetTracking:     queries.NewGetTrackingQueryHandler(c.gormDB),
		GetRiders:       queries.NewGetRidersQueryHandler(c.gormDB),
		GetWithdrawals:  queries.NewGetWithdrawalsQueryHandler(c.gormDB),
		GetAdminStats:   c.CreateGetAdminStatsQueryHandler(),
		GetRiderStats:   c.CreateGetRiderStatsQueryHandler(),
	}, httpin.Dependencies{
		Authority: c.CreateRoleAuthority(),
		Verifier:  c.verifier,
		Cache:     c.cache,
		Metrics:   c.metrics,
		Logger:    c.log.Named("http"),
		Checks:    checks,
	})
}

// CreateRouter builds the echo instance for the whole API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := apidocs.Load(ctx)
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(c.CreateHTTPServer(), doc, c.cfg.OpenAPIValidation)
}

// CreateJobManager schedules the background jobs. The stats refresh job only
// runs when a cache is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	jm := jobs.NewJobManager(c.cfg.JobTimeout, c.log)

	reconcile := jobs.NewRoleReconciliationJob(c.CreateReconcileRolesCommandHandler(), c.metrics, c.log)
	if err := jm.Schedule(c.cfg.RoleReconcileSchedule, reconcile); err != nil {
		return nil, err
	}

	if c.cache != nil {
		refresh := jobs.NewStatsRefreshJob(c.CreateGetAdminStatsQueryHandler(), c.metrics, c.log)
		if err := jm.Schedule(c.cfg.StatsRefreshSchedule, refresh); err != nil {
			return nil, err
		}
	}
	return jm, nil
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncUserLookup func(ctx context.Context, email kernel.Email) (*user.User, error)

func (f FuncUserLookup) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	return f(ctx, email)
}
