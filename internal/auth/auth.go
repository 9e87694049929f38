package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"client-scheduler/internal/model"
)

// UserSource lists every stored user record. *store.Store satisfies it.
type UserSource interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type Authenticator struct {
	users  UserSource
	verify Verifier
	sink   AuditSink
	log    *zap.Logger
}

func NewAuthenticator(users UserSource, verify Verifier, sink AuditSink, log *zap.Logger) *Authenticator {
	return &Authenticator{users: users, verify: verify, sink: sink, log: log}
}

// Authenticate checks the claimed name/password pair against every stored
// user. Name matching is exact and case-sensitive; the password check is
// delegated to the configured Verifier. A store failure propagates to the
// caller and is not an attempt outcome, so it produces no audit record.
// Otherwise exactly one record is emitted whatever the outcome; a sink
// failure is logged and never surfaced or allowed to change the result.
func (a *Authenticator) Authenticate(ctx context.Context, name, password string) (*model.User, bool, error) {
	users, err := a.users.ListUsers(ctx)
	if err != nil {
		return nil, false, err
	}

	var match *model.User
	for i := range users {
		if users[i].Name == name && a.verify.Verify(users[i].Password, password) {
			match = &users[i]
			break
		}
	}

	if err := a.sink.Record(time.Now(), match != nil, name); err != nil {
		a.log.Warn("audit sink write failed", zap.String("user", name), zap.Error(err))
	}
	return match, match != nil, nil
}
