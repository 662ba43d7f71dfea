package mongostore

import (
	"context"

	"campus-reserve/internal/pkg/errs"
	"campus-reserve/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

var errSessionStart = errs.New("failed to start mongo session")

type MongoUoW struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoUoW(client *mongo.Client, database string) shared.UnitOfWork {
	return &MongoUoW{client: client, db: client.Database(database)}
}

// Within runs fn in a snapshot transaction. WithTransaction re-runs fn while the
// server labels the failure TransientTransactionError, e.g. a write conflict on
// a shared event or merch document.
func (u *MongoUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Repositories) error) error {
	sess, err := u.client.StartSession()
	if err != nil {
		return errs.Mark(err, errSessionStart)
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc, repositories{db: u.db})
	}, txnOpts)
	return err
}

func (u *MongoUoW) Repositories() shared.Repositories {
	return repositories{db: u.db}
}
