package main

import (
	"os"
	"path/filepath"

	"github.com/Marcel-MD/pos/domain"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config()

	menu, err := domain.LoadCatalog(cfg.MenuPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading menu catalog")
	}

	drinks, err := domain.LoadCatalog(cfg.DrinksPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading drinks catalog")
	}

	catalog, err := domain.MergeCatalogs(menu, drinks)
	if err != nil {
		log.Fatal().Err(err).Msg("Error merging catalogs")
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Error opening order store")
	}
	defer closeStore()

	orderLog := domain.NewOrderLog(store)
	log.Info().Int("items", catalog.ItemsCount).Int("orders", len(orderLog.Orders())).Msg("POS ready")

	srv := newServer(catalog, orderLog, domain.LogNotifier{})

	r := gin.Default()
	r.GET("/menu", srv.getMenu)
	r.GET("/tables/:table/cart", srv.getCart)
	r.POST("/tables/:table/items", srv.addItem)
	r.PATCH("/tables/:table/items/:id", srv.changeQuantity)
	r.DELETE("/tables/:table/items/:id", srv.removeItem)
	r.PUT("/tables/:table/info", srv.setTableInfo)
	r.POST("/tables/:table/submit", srv.submit)
	r.GET("/orders", srv.allOrders)
	r.GET("/orders/pending", srv.pendingOrders)
	r.Run(":" + cfg.Port)
}

type appConfig struct {
	Port        string
	MenuPath    string
	DrinksPath  string
	StoreDriver string
	StorePath   string
}

func config() appConfig {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Logger = log.With().Caller().Logger()

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file, using defaults")
	}

	return appConfig{
		Port:        getenv("PORT", "8080"),
		MenuPath:    getenv("MENU_PATH", "config/menu.json"),
		DrinksPath:  getenv("DRINKS_PATH", "config/drinks.json"),
		StoreDriver: getenv("STORE_DRIVER", "file"),
		StorePath:   getenv("STORE_PATH", "data/orders.json"),
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openStore(cfg appConfig) (domain.Store, func(), error) {
	switch cfg.StoreDriver {
	case "memory":
		return domain.NewMemoryStore(), func() {}, nil
	case "bolt":
		if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0755); err != nil {
			return nil, nil, err
		}
		store, err := domain.OpenBoltStore(cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.StorePath), 0755); err != nil {
			return nil, nil, err
		}
		return domain.NewFileStore(cfg.StorePath), func() {}, nil
	}
}
