package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"labtrail.dev/backend/internal/model"
	"labtrail.dev/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	AnalyteCatalog *cache.Singular[[]string]

	PivotTable *cache.Singular[*model.PivotTable]

	SeriesByQuery *cache.Set[[]*model.AnalyteDayMean]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		cache.Populate(client)
		initializeCaches()
	})
}

// Flush empties every registered cache. Used by the admin purge endpoint and
// by the report worker after new events have been persisted.
func Flush() error {
	for _, flush := range SingularFlusherMap {
		if err := flush(); err != nil {
			return err
		}
	}
	for _, flush := range SetMap {
		if err := flush(); err != nil {
			return err
		}
	}
	return nil
}

func initializeCaches() {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// analyte catalog
	AnalyteCatalog = cache.NewSingular[[]string]("analyteCatalog")

	SingularFlusherMap["analyteCatalog"] = AnalyteCatalog.Delete

	// pivot matrix
	PivotTable = cache.NewSingular[*model.PivotTable]("pivotTable")

	SingularFlusherMap["pivotTable"] = PivotTable.Delete

	// time series
	SeriesByQuery = cache.NewSet[[]*model.AnalyteDayMean]("series#analytes|start|end")

	SetMap["series#analytes|start|end"] = SeriesByQuery.Flush
}
