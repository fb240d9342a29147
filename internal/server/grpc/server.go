// Package grpc exposes the server services over gRPC: request handlers, the
// access-token and logging interceptors, and the listener lifecycle.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/qwik2do/internal/logging"
	pb "github.com/dmitrijs2005/qwik2do/internal/proto"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
	"github.com/dmitrijs2005/qwik2do/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.Session, error)
	Logout(ctx context.Context, userID string, refreshToken string) error
}

type taskSvc interface {
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, userID string, text string) (*models.Task, error)
	Delete(ctx context.Context, userID string, id string) error
	SetCompleted(ctx context.Context, userID string, id string, completed bool) error
}

type ambientSvc interface {
	BackgroundImage(ctx context.Context) (*models.BackgroundImage, error)
	Weather(ctx context.Context, lat, lon float64) (*models.Weather, error)
}

type GRPCServer struct {
	pb.UnimplementedQwik2DoServiceServer
	address   string
	users     userSvc
	tasks     taskSvc
	ambient   ambientSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ts taskSvc, as ambientSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		tasks:     ts,
		ambient:   as,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterQwik2DoServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then drains in-flight calls.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
