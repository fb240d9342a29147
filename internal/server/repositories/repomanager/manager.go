package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/qwik2do/internal/dbx"
	"github.com/dmitrijs2005/qwik2do/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/qwik2do/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/qwik2do/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the pool or an
// open transaction, so services can compose them inside dbx.WithTx.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}
