package grpc

import (
	"context"
	"net"

	"github.com/khushal/hello-grpc/internal/logging"
	pb "github.com/khushal/hello-grpc/internal/proto"
	"github.com/khushal/hello-grpc/internal/server/models"
	"github.com/khushal/hello-grpc/internal/server/services"
	"google.golang.org/grpc"
)

// userSvc is the slice of services.UserService the transport needs.
type userSvc interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, identifier services.LoginIdentifier, password string) (*services.LoginResult, error)
	GetProfile(ctx context.Context, userID, tokenSubject string) (*models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address   string
	users     userSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterUserServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
