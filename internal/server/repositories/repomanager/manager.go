// Package repomanager builds repositories over a shared database handle
// and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrenko/authcore/internal/dbx"
	"github.com/mpetrenko/authcore/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
