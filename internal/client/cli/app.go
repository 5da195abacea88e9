package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/khushal/hello-grpc/internal/client/client"
	"github.com/khushal/hello-grpc/internal/client/config"
	"github.com/khushal/hello-grpc/internal/client/models"
)

// userAPI is the slice of the gRPC client the CLI needs.
type userAPI interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	LoginWithUsername(ctx context.Context, username, password string) error
	LoginWithEmail(ctx context.Context, email, password string) error
	GetProfile(ctx context.Context) (*models.Profile, error)
	Ping(ctx context.Context) error
	UserID() string
	Close() error
}

type App struct {
	config   *config.Config
	api      userAPI
	reader   *bufio.Reader
	userName string
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewUserClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.UserID() != ""
}

// withTimeout applies the configured per-request deadline.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}
