// Package repomanager owns the database handle: it opens the connection
// pool, runs migrations, and hands out repositories bound to it.
package repomanager

import (
	"database/sql"

	"github.com/khushal/hello-grpc/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
