package ports

import "context"

// AdminRepo resolves the admin flag from the admins side table. Services
// call it on every mutating request; the flag is never taken from client
// input or cached across sessions.
type AdminRepo interface {
	IsAdmin(ctx context.Context, actorID string) (bool, error)
}
