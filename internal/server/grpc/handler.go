package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/khushal/hello-grpc/internal/common"
	pb "github.com/khushal/hello-grpc/internal/proto"
	"github.com/khushal/hello-grpc/internal/server/models"
	"github.com/khushal/hello-grpc/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Business failures (bad input, taken names, wrong credentials, missing
// users) are reported in the response body with success=false; gRPC status
// codes are reserved for authentication, authorization and internal faults.

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "username", req.GetUsername())

	user, err := s.users.Register(ctx, req.GetUsername(), req.GetEmail(), req.GetPassword())

	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr),
			errors.Is(err, common.ErrUsernameTaken),
			errors.Is(err, common.ErrEmailTaken):
			return &pb.RegisterResponse{Success: false, Message: err.Error()}, nil
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Registered", "username", user.Username, "user_id", user.ID)
	return &pb.RegisterResponse{Success: true, Message: "user registered", UserId: user.ID}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	var identifier services.LoginIdentifier
	switch id := req.GetIdentifier().GetIdentifier().(type) {
	case *pb.LoginIdentifier_Username:
		identifier = services.UsernameIdentifier(id.Username)
	case *pb.LoginIdentifier_Email:
		identifier = services.EmailIdentifier(id.Email)
	default:
		return &pb.LoginResponse{Success: false, Message: "username or email is required"}, nil
	}

	result, err := s.users.Login(ctx, identifier, req.GetPassword())

	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return &pb.LoginResponse{Success: false, Message: err.Error()}, nil
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{
		Success:      true,
		Message:      "login successful",
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		User:         userToProfile(result.User),
	}, nil

}

func (s *GRPCServer) GetUserProfile(ctx context.Context, req *pb.UserProfileRequest) (*pb.UserProfileResponse, error) {

	subject, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.users.GetProfile(ctx, req.GetUserId(), subject)

	if err != nil {
		switch {
		case errors.Is(err, common.ErrorForbidden):
			return nil, status.Error(codes.PermissionDenied, "access denied")
		case errors.Is(err, common.ErrorNotFound):
			return &pb.UserProfileResponse{Success: false, Message: "user not found"}, nil
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.UserProfileResponse{Success: true, Profile: userToProfile(user)}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func userToProfile(u *models.User) *pb.UserProfile {
	profile := &pb.UserProfile{
		UserId:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		profile.LastLogin = u.LastLogin.Format(time.RFC3339)
	}
	return profile
}
