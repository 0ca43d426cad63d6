// seed loads the demo dataset into the configured local store without
// starting the server.
//
// Usage: go run ./cmd/seed
// Reads the same STORE_DRIVER/STORE_PATH configuration as the API; refuses to
// touch a store that already holds records.
package main

import (
	"fmt"
	"os"

	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
	"github.com/eurocore-global/supplyhub-api/internal/seed"
	"github.com/eurocore-global/supplyhub-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	var store localstore.Store
	switch cfg.Store.Driver {
	case config.StoreDriverSQLite:
		s, err := localstore.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			fail("open sqlite store: %v", err)
		}
		defer s.Close()
		store = s
	case config.StoreDriverMemory:
		fail("seeding a memory store is pointless, set STORE_DRIVER=file or sqlite")
	default:
		s, err := localstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			fail("open file store: %v", err)
		}
		store = s
	}

	manufacturers, err := records.NewManufacturerRepository(store)
	if err != nil {
		fail("load manufacturers: %v", err)
	}
	customers, err := records.NewCustomerRepository(store)
	if err != nil {
		fail("load customers: %v", err)
	}
	rfqs, err := records.NewRFQRepository(store)
	if err != nil {
		fail("load rfqs: %v", err)
	}

	empty, err := seed.Empty(manufacturers, customers, rfqs)
	if err != nil {
		fail("inspect store: %v", err)
	}
	if !empty {
		fail("store already holds records, refusing to seed")
	}
	if err := seed.Apply(manufacturers, customers, rfqs); err != nil {
		fail("seed: %v", err)
	}
	fmt.Println("demo dataset loaded")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
