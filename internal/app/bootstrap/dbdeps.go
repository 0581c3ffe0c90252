// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/assetmanager/internal/app/api"
	prefillstore "github.com/dalemusser/assetmanager/internal/app/store/prefill"
	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"github.com/dalemusser/assetmanager/internal/app/system/workers"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// The hooks receive DBDeps by value, so anything shared between
// BuildHandler and Shutdown is a pointer created in ConnectDB.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Backend is the shared client for the inventory REST backend.
	Backend *api.Client

	// Prefill carries discovered IPs into the new-device form.
	Prefill *prefillstore.Store

	// AlertCache keeps the last rendered alert rows per session.
	AlertCache *listcache.Cache[models.Alert]

	// Janitor purges old prefills and idle cache entries. Started in
	// Startup, stopped in Shutdown.
	Janitor *workers.Janitor
}
