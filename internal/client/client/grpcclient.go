package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/khushal/hello-grpc/internal/client/models"
	"github.com/khushal/hello-grpc/internal/common"
	pb "github.com/khushal/hello-grpc/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.UserServiceClient
	accessToken  string
	refreshToken string
	userID       string
}

func withBearerToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthorizationHeaderName)
	md.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	return metadata.NewOutgoingContext(ctx, md)
}

// bearerTokenInterceptor attaches the access token obtained at login to every
// outgoing call. Calls made before login go out without a token.
func (s *GRPCClient) bearerTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withBearerToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewUserClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.bearerTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserServiceClient(conn)
	return nil
}

// Register creates an account. Rejections reported by the server (taken
// username, invalid input) come back as plain errors carrying the server's
// message.
func (s *GRPCClient) Register(ctx context.Context, username, email, password string) (string, error) {

	req := &pb.RegisterRequest{Username: username, Email: email, Password: password}

	resp, err := s.client.Register(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}
	if !resp.GetSuccess() {
		return "", errors.New(resp.GetMessage())
	}

	return resp.GetUserId(), nil

}

// Login authenticates with a username or an email. On success the client
// remembers the minted tokens and the user id for subsequent calls.
func (s *GRPCClient) Login(ctx context.Context, identifier *pb.LoginIdentifier, password string) error {

	req := &pb.LoginRequest{Identifier: identifier, Password: password}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return s.mapError(err)
	}
	if !resp.GetSuccess() {
		return errors.New(resp.GetMessage())
	}

	s.accessToken = resp.GetAccessToken()
	s.refreshToken = resp.GetRefreshToken()
	s.userID = resp.GetUser().GetUserId()

	return nil

}

func (s *GRPCClient) LoginWithUsername(ctx context.Context, username, password string) error {
	return s.Login(ctx, &pb.LoginIdentifier{Identifier: &pb.LoginIdentifier_Username{Username: username}}, password)
}

func (s *GRPCClient) LoginWithEmail(ctx context.Context, email, password string) error {
	return s.Login(ctx, &pb.LoginIdentifier{Identifier: &pb.LoginIdentifier_Email{Email: email}}, password)
}

// GetProfile fetches the profile of the logged-in user.
func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {

	if s.userID == "" {
		return nil, ErrUnauthorized
	}

	req := &pb.UserProfileRequest{UserId: s.userID}

	resp, err := s.client.GetUserProfile(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}
	if !resp.GetSuccess() {
		return nil, errors.New(resp.GetMessage())
	}

	p := resp.GetProfile()
	return &models.Profile{
		UserID:    p.GetUserId(),
		Username:  p.GetUsername(),
		Email:     p.GetEmail(),
		CreatedAt: p.GetCreatedAt(),
		LastLogin: p.GetLastLogin(),
	}, nil

}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) UserID() string {
	return s.userID
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
