// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/assetmanager/internal/app/api"
	auditstore "github.com/dalemusser/assetmanager/internal/app/store/audit"
	prefillstore "github.com/dalemusser/assetmanager/internal/app/store/prefill"
	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"github.com/dalemusser/assetmanager/internal/app/system/workers"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the MongoDB client, builds the backend client and the
// shared console-side state.
//
// The backend is not contacted here; it may come up after the console, and
// /health reports its reachability.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		logger.Error("MongoDB connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("MongoDB ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	backend, err := api.New(appCfg.BackendURL, appCfg.BackendTimeout, logger)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("backend client: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	prefill := prefillstore.New(db)
	alertCache := listcache.New[models.Alert]()
	janitor := workers.NewJanitor(prefill, []listcache.Evicter{alertCache}, logger, workers.JanitorConfig{
		Interval:      appCfg.PrefillSweepInterval,
		PrefillMaxAge: appCfg.PrefillMaxAge,
		CacheMaxAge:   appCfg.ListCacheMaxAge,
	})

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Backend:       backend,
		Prefill:       prefill,
		AlertCache:    alertCache,
		Janitor:       janitor,
	}, nil
}

// EnsureSchema creates the indexes for the console-side collections.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := auditstore.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		logger.Error("audit index setup failed", zap.Error(err))
		return err
	}
	if err := deps.Prefill.EnsureIndexes(ctx); err != nil {
		logger.Error("prefill index setup failed", zap.Error(err))
		return err
	}
	logger.Info("schema ready")
	return nil
}
