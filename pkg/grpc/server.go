// Package grpc runs the gRPC listener next to the HTTP API. It carries the
// standard health service (grpc.health.v1.Health) and reflection, behind an
// interceptor chain for panic recovery, logging and Prometheus metrics.
//
//	srv, err := grpc.Start(":" + config.GRPCPort())
//	// ...run until signal...
//	srv.Stop()
package grpc

import (
	"context"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/shashiranjanraj/ordermanager/pkg/logger"
	"github.com/shashiranjanraj/ordermanager/pkg/metrics"
)

const maxMsgSize = 4 << 20

var (
	handledTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordermanager",
		Subsystem: "grpc",
		Name:      "server_handled_total",
		Help:      "Total number of gRPC calls completed by method and code.",
	}, []string{"grpc_method", "grpc_code"})

	handlingSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ordermanager",
		Subsystem: "grpc",
		Name:      "server_handling_seconds",
		Help:      "Histogram of gRPC response latency in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"grpc_method"})
)

func init() {
	metrics.MustRegister(handledTotal, handlingSeconds)
}

func recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithCtx(ctx).Error("grpc: panic recovered",
				"method", info.FullMethod,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			err = status.Errorf(codes.Internal, "internal server error")
		}
	}()
	return handler(ctx, req)
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	logger.WithCtx(ctx).Info("grpc: request",
		"method", info.FullMethod,
		"duration", time.Since(start).String(),
		"code", status.Code(err).String(),
	)
	return resp, err
}

func metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	handledTotal.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	handlingSeconds.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
	return resp, err
}

// chainUnary runs interceptors[0] outermost.
func chainUnary(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			ic, next := interceptors[i], chain
			chain = func(ctx context.Context, req interface{}) (interface{}, error) {
				return ic(ctx, req, info, next)
			}
		}
		return chain(ctx, req)
	}
}

// Server is a started gRPC listener.
type Server struct {
	srv    *grpc.Server
	lis    net.Listener
	health *health.Server
}

// Start listens on addr and serves in the background. ":0" picks a free
// port; Addr reports it.
func Start(addr string) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("grpc: listen on %s: %w", addr, err)
	}

	srv := grpc.NewServer(
		grpc.UnaryInterceptor(chainUnary(recoveryInterceptor, loggingInterceptor, metricsInterceptor)),
		grpc.MaxRecvMsgSize(maxMsgSize),
		grpc.MaxSendMsgSize(maxMsgSize),
	)
	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, hs)
	reflection.Register(srv)

	logger.Info("grpc server listening", "addr", lis.Addr().String())
	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc: serve", "error", err)
		}
	}()
	return &Server{srv: srv, lis: lis, health: hs}, nil
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

// SetServing flips the overall health status reported to health checkers.
func (s *Server) SetServing(serving bool) {
	st := grpc_health_v1.HealthCheckResponse_SERVING
	if !serving {
		st = grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	s.health.SetServingStatus("", st)
}

// Stop marks the server NOT_SERVING and waits for in-flight RPCs.
func (s *Server) Stop() {
	if s == nil {
		return
	}
	logger.Info("grpc server shutting down")
	s.health.Shutdown()
	s.srv.GracefulStop()
}
