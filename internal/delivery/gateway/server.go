package gateway

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"estate/config"
	"estate/internal/delivery"
	deliverymiddleware "estate/internal/delivery/http/middleware"
	"estate/internal/delivery/http/router/handler"
	"estate/internal/domain/entity"
	"estate/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type GatewayParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	AuthMiddleware  *deliverymiddleware.AuthMiddleware
	RequestID       *deliverymiddleware.RequestIDMiddleware
	ErrorMiddleware *deliverymiddleware.ErrorMiddleware
}

type gatewayServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the gateway's echo server with the route table wired to
// the downstream services.
func NewServer(params GatewayParams) (delivery.Delivery, error) {
	gwCfg := params.Config.Gateway
	if gwCfg == nil {
		return nil, errors.New("gateway configuration is required")
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(params.RequestID.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())

	if err := registerRoutes(echoServer, gwCfg, params.AuthMiddleware); err != nil {
		return nil, err
	}

	delivery := &gatewayServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// registerRoutes sets up the edge route table. Role checks use OR semantics:
// one matching role is enough.
func registerRoutes(e *echo.Echo, cfg *config.GatewayConfig, auth *deliverymiddleware.AuthMiddleware) error {
	identityProxy, err := newProxyHandler(cfg.IdentityServiceURL)
	if err != nil {
		return err
	}
	propertyProxy, err := newProxyHandler(cfg.PropertyServiceURL)
	if err != nil {
		return err
	}
	enquiryProxy, err := newProxyHandler(cfg.EnquiryServiceURL)
	if err != nil {
		return err
	}

	e.GET("/health", handler.HealthCheck)

	// Credential endpoints pass straight through; the identity service does
	// its own verification.
	e.Any("/auth/*", identityProxy)

	// Listings are publicly browsable
	e.GET("/properties", propertyProxy)
	e.GET("/properties/:id", propertyProxy)

	// Listing management requires the seller role
	sellerGroup := e.Group("/properties")
	sellerGroup.Use(auth.Authenticate)
	sellerGroup.Use(auth.RequireAnyRole(entity.RoleSeller, entity.RoleAdmin))
	{
		sellerGroup.POST("", propertyProxy)
		sellerGroup.PUT("/:id", propertyProxy)
		sellerGroup.DELETE("/:id", propertyProxy)
	}

	// Enquiries require any authenticated identity
	enquiryGroup := e.Group("/enquiries")
	enquiryGroup.Use(auth.Authenticate)
	{
		enquiryGroup.POST("", enquiryProxy)
		enquiryGroup.GET("", enquiryProxy)
		enquiryGroup.GET("/:id", enquiryProxy)
	}

	// Platform administration
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireAnyRole(entity.RoleAdmin))
	{
		adminGroup.Any("/properties", propertyProxy)
		adminGroup.Any("/properties/*", propertyProxy)
		adminGroup.Any("/enquiries", enquiryProxy)
		adminGroup.Any("/enquiries/*", enquiryProxy)
		adminGroup.Any("/users", identityProxy)
		adminGroup.Any("/users/*", identityProxy)
	}

	return nil
}

func (s *gatewayServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting gateway server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve gateway")
	}

	return nil
}

func (s *gatewayServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down gateway server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
