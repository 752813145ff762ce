package server

import (
	"fmt"
	"time"

	"net/http"

	"github.com/joeblew999/plat-emailguard/internal/config"
	"github.com/joeblew999/plat-emailguard/internal/errorx"
	"github.com/joeblew999/plat-emailguard/internal/handler"
	"github.com/joeblew999/plat-emailguard/internal/model"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/ui"
	"github.com/joeblew999/plat-emailguard/pkg/checker"
	"github.com/joeblew999/plat-emailguard/pkg/db"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
	gomjml "github.com/preslavrachev/gomjml/mjml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Server wraps the MCP server and email checking services.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	// Register global error handler for proper HTTP status codes
	errorx.RegisterErrorHandler()

	// Enable go-zero prometheus metrics (required for metric.CounterVec/HistogramVec/GaugeVec to record)
	prometheus.Enable()

	// Create MCP server
	mcpServer := mcp.NewMcpServer(c.McpConf)

	database, err := db.Open(c.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// go-zero sqlx.SqlConn for circuit breaking + tracing on model queries
	conn := database.SqlConn()
	reports := model.NewReportsModel(conn)
	events := model.NewReportEventsModel(conn)

	checkQueue, err := queue.NewQueue(database.DB)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create queue: %w", err)
	}

	recorder, err := queue.NewEventRecorder(conn)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create event recorder: %w", err)
	}
	checkQueue.Events = recorder

	// Parse checker config
	messageTimeout, _ := time.ParseDuration(c.Checker.MessageTimeout)
	if messageTimeout == 0 {
		messageTimeout = 30 * time.Second
	}

	engine := checker.NewEngine(checkQueue, checker.Config{
		RateLimit:      c.Checker.RateLimit,
		MessageTimeout: messageTimeout,
	})

	// Register MCP tools
	RegisterMCPTools(mcpServer, engine, checkQueue, reports)

	// Create UI rest server (Datastar web UI) with CORS
	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(engine, checkQueue, reports)
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	// Create API rest server (goctl-generated JSON REST API) with CORS
	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	apiCtx := svc.NewServiceContext(c, checkQueue, engine, reports, events)
	handler.RegisterHandlers(apiServer, apiCtx)

	// Expose Prometheus metrics endpoint
	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	// Register cleanup via proc shutdown listeners
	proc.AddShutdownListener(func() {
		logx.Info("Closing database")
		database.Close()
	})
	proc.AddShutdownListener(func() {
		gomjml.StopASTCacheCleanup()
	})
	if checkQueue.Events != nil {
		proc.AddShutdownListener(func() {
			logx.Info("Flushing report events")
			checkQueue.Events.Flush()
		})
	}

	// Build service group: checker + UI + API + MCP (stopped in reverse order)
	group := service.NewServiceGroup()
	group.Add(newCheckerService(engine, c.Checker.Workers))
	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("plat-emailguard server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("database", c.Database.Path),
		logx.Field("workers", c.Checker.Workers),
	)
	logx.Infof("To add to Claude: claude mcp add plat-emailguard -- npx -y mcp-remote http://localhost:%d/sse", c.Port)

	return &Server{config: c, group: group}, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
