package httpserver

import (
	_ "isp-dashboard/docs"

	alertUsecase "isp-dashboard/internal/alert/usecase"
	billingHTTP "isp-dashboard/internal/billing/delivery/http"
	billingRepo "isp-dashboard/internal/billing/repository/graphql"
	billingUsecase "isp-dashboard/internal/billing/usecase"
	customerHTTP "isp-dashboard/internal/customer/delivery/http"
	customerRepo "isp-dashboard/internal/customer/repository/graphql"
	customerUsecase "isp-dashboard/internal/customer/usecase"
	inventoryHTTP "isp-dashboard/internal/inventory/delivery/http"
	inventoryRepo "isp-dashboard/internal/inventory/repository/graphql"
	inventoryUsecase "isp-dashboard/internal/inventory/usecase"
	messagingHTTP "isp-dashboard/internal/messaging/delivery/http"
	messagingRepo "isp-dashboard/internal/messaging/repository/graphql"
	messagingUsecase "isp-dashboard/internal/messaging/usecase"
	"isp-dashboard/internal/middleware"
	"isp-dashboard/internal/organization"
	organizationHTTP "isp-dashboard/internal/organization/delivery/http"
	organizationRepo "isp-dashboard/internal/organization/repository/graphql"
	organizationUsecase "isp-dashboard/internal/organization/usecase"
	paymentHTTP "isp-dashboard/internal/payment/delivery/http"
	paymentRepo "isp-dashboard/internal/payment/repository/graphql"
	paymentUsecase "isp-dashboard/internal/payment/usecase"
	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/realtime"
	realtimeHTTP "isp-dashboard/internal/realtime/delivery/http"
	realtimeRedis "isp-dashboard/internal/realtime/delivery/redis"
	realtimeUsecase "isp-dashboard/internal/realtime/usecase"
	"isp-dashboard/internal/resource"
	packageHTTP "isp-dashboard/internal/servicepackage/delivery/http"
	packageRepo "isp-dashboard/internal/servicepackage/repository/graphql"
	packageUsecase "isp-dashboard/internal/servicepackage/usecase"
	stationHTTP "isp-dashboard/internal/station/delivery/http"
	stationRepo "isp-dashboard/internal/station/repository/graphql"
	stationUsecase "isp-dashboard/internal/station/usecase"
	ticketHTTP "isp-dashboard/internal/ticket/delivery/http"
	ticketRepo "isp-dashboard/internal/ticket/repository/graphql"
	ticketUsecase "isp-dashboard/internal/ticket/usecase"
	"isp-dashboard/pkg/form"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	srv.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mw := middleware.New(srv.logger, srv.jwtMgr, form.NewGuard(), middleware.NewMetrics(srv.registry))
	srv.gin.Use(
		mw.RequestID(),
		middleware.Recovery(srv.logger, srv.discord),
		middleware.CORS(middleware.NewCORSConfig(srv.allowedOrigins)),
		mw.Metrics(),
		mw.Locale(),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	validator := form.NewValidator()
	alertUC := alertUsecase.New(srv.logger, srv.alerts)

	// Realtime
	srv.realtimeUC = realtimeUsecase.New(srv.logger, realtime.Config{
		MaxConnections:  srv.wsConfig.MaxConnections,
		MaxConnsPerUser: srv.wsConfig.MaxConnsPerUser,
		ConnectRate:     srv.wsConfig.ConnectRate,
		ConnectWindow:   srv.wsConfig.ConnectWindow,
		PongWait:        srv.wsConfig.PongWait,
		PingPeriod:      srv.wsConfig.PingInterval,
		WriteWait:       srv.wsConfig.WriteWait,
		MaxMessageSize:  srv.wsConfig.MaxMessageSize,
	}, realtimeUsecase.NewMetrics(srv.registry))
	srv.subscriber = realtimeRedis.New(srv.redis, srv.realtimeUC, srv.logger)

	deps := resource.Deps{
		Logger:    srv.logger,
		Client:    srv.graphql,
		Cache:     srv.cache,
		Publisher: realtimeRedis.NewPublisher(srv.redis),
	}

	// Repositories
	orgRepo := organizationRepo.New(srv.logger, deps)
	pkgRepo := packageRepo.New(srv.logger, deps)
	stRepo := stationRepo.New(srv.logger, deps)
	custRepo := customerRepo.New(srv.logger, deps)
	invRepo := inventoryRepo.New(srv.logger, deps)
	tkRepo := ticketRepo.New(srv.logger, deps)
	msgRepo := messagingRepo.New(srv.logger, deps)
	payRepo := paymentRepo.New(srv.logger, deps)
	billRepo := billingRepo.New(srv.logger, deps)

	// Usecases
	orgUC := organizationUsecase.New(srv.logger, orgRepo, validator)
	pkgUC := packageUsecase.New(srv.logger, pkgRepo, validator)
	stUC := stationUsecase.New(srv.logger, stRepo, validator)
	custUC := customerUsecase.New(srv.logger, custRepo, validator, pkgUC, stUC)
	invUC := inventoryUsecase.New(srv.logger, invRepo, validator)
	tkUC := ticketUsecase.New(srv.logger, tkRepo, validator, srv.storage, alertUC, srv.urlExpiry)
	msgUC := messagingUsecase.New(srv.logger, msgRepo, validator)
	payUC := paymentUsecase.New(srv.logger, payRepo, validator)
	billUC := billingUsecase.New(srv.logger, billRepo, validator, alertUC)

	gate := permission.NewGate(srv.logger, orgUC, organization.ErrOrganizationNotFound)

	// API routes
	api := srv.gin.Group(Api)
	organizationHTTP.New(srv.logger, orgUC, srv.discord).RegisterRoutes(api, mw, gate)
	packageHTTP.New(srv.logger, pkgUC, srv.discord).RegisterRoutes(api, mw, gate)
	stationHTTP.New(srv.logger, stUC, srv.discord).RegisterRoutes(api, mw, gate)
	customerHTTP.New(srv.logger, custUC, srv.discord).RegisterRoutes(api, mw, gate)
	inventoryHTTP.New(srv.logger, invUC, srv.discord).RegisterRoutes(api, mw, gate)
	ticketHTTP.New(srv.logger, tkUC, srv.discord).RegisterRoutes(api, mw, gate)
	messagingHTTP.New(srv.logger, msgUC, srv.discord).RegisterRoutes(api, mw, gate)
	paymentHTTP.New(srv.logger, payUC, srv.discord).RegisterRoutes(api, mw, gate)
	billingHTTP.New(srv.logger, billUC, srv.discord).RegisterRoutes(api, mw, gate)
	realtimeHTTP.New(srv.logger, srv.realtimeUC, srv.discord, realtimeHTTP.WSConfig{
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		AllowedOrigins:  srv.allowedOrigins,
	}).RegisterRoutes(api, mw, gate)

	return nil
}
