// Package repomanager vends per-entity repository implementations bound to a
// shared dbx.DBTX and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/omccomas/terminal/internal/dbx"
	"github.com/omccomas/terminal/internal/server/repositories/bookmarks"
	"github.com/omccomas/terminal/internal/server/repositories/files"
	"github.com/omccomas/terminal/internal/server/repositories/macros"
	"github.com/omccomas/terminal/internal/server/repositories/messages"
	"github.com/omccomas/terminal/internal/server/repositories/notes"
	"github.com/omccomas/terminal/internal/server/repositories/refreshtokens"
	"github.com/omccomas/terminal/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to either the root *sql.DB
// or an in-flight transaction, so services can compose multi-repo units of
// work with dbx.WithTx.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Notes(db dbx.DBTX) notes.Repository
	Bookmarks(db dbx.DBTX) bookmarks.Repository
	Macros(db dbx.DBTX) macros.Repository
	Files(db dbx.DBTX) files.Repository
	Messages(db dbx.DBTX) messages.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
