package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"product-relations-backend/internal/config"
	"product-relations-backend/internal/database"
	"product-relations-backend/internal/database/models"
	"product-relations-backend/internal/repository"
	"product-relations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that match the seed files
type GroupData struct {
	Name                string  `yaml:"name"`
	AttributeID         *uint64 `yaml:"attribute_id,omitempty"`
	DisplayOnList       bool    `yaml:"display_on_list"`
	DisplayStyleSingle  string  `yaml:"display_style_single"`
	DisplayStyleArchive string  `yaml:"display_style_archive"`
	SortOrder           int     `yaml:"sort_order"`
}

type ProductData struct {
	ID         uint64            `yaml:"id"`
	Name       string            `yaml:"name"`
	Permalink  string            `yaml:"permalink"`
	Images     map[string]string `yaml:"images,omitempty"`
	Attributes map[uint64]string `yaml:"attributes,omitempty"`
	Prices     []PriceData       `yaml:"prices,omitempty"`
}

type PriceData struct {
	Price        float64  `yaml:"price"`
	RegularPrice *float64 `yaml:"regular_price,omitempty"`
	Currency     string   `yaml:"currency,omitempty"`
}

type RelationData struct {
	Group       string   `yaml:"group"`
	ProductID   uint64   `yaml:"product_id"`
	RelatedIDs  []uint64 `yaml:"related_ids"`
	CustomLabel string   `yaml:"custom_label,omitempty"`
	CustomImage string   `yaml:"custom_image,omitempty"`
}

// SeedFile is one YAML document under the data directory; every section is optional
type SeedFile struct {
	Groups    []GroupData    `yaml:"groups"`
	Products  []ProductData  `yaml:"products"`
	Relations []RelationData `yaml:"relations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: logger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to read seed files: %w", err)
	}

	validate := validator.New()
	relationRepo := repository.NewRelationRepository(db)
	productService := service.NewProductService(repository.NewProductRepository(db), validate)
	relationService := service.NewRelationService(relationRepo, validate)
	priceService := service.NewPriceHistoryService(repository.NewPriceHistoryRepository(db), validate, 0)

	// Groups first; relations refer to them by name
	groupIDs := make(map[string]uint64)
	groupCreated := 0
	for _, groupData := range seed.Groups {
		group, created, err := createGroup(db, groupData)
		if err != nil {
			return fmt.Errorf("failed to create group %s: %w", groupData.Name, err)
		}
		groupIDs[groupData.Name] = group.ID
		if created {
			groupCreated++
		}
	}
	log.Printf("Relation groups: %d created, %d total", groupCreated, len(seed.Groups))

	pricesRecorded := 0
	for _, productData := range seed.Products {
		if _, err := productService.UpsertProduct(productData.ID, &service.UpsertProductRequest{
			Name:       productData.Name,
			Permalink:  productData.Permalink,
			Images:     productData.Images,
			Attributes: productData.Attributes,
		}); err != nil {
			return fmt.Errorf("failed to upsert product %d: %w", productData.ID, err)
		}

		for _, price := range productData.Prices {
			result, err := priceService.RecordPrice(productData.ID, &service.RecordPriceRequest{
				Price:        price.Price,
				RegularPrice: price.RegularPrice,
				Currency:     price.Currency,
			})
			if err != nil {
				log.Printf("Warning: failed to record price for product %d: %v", productData.ID, err)
				continue
			}
			if result.Recorded {
				pricesRecorded++
			}
		}
	}
	log.Printf("Products: %d upserted, %d prices recorded", len(seed.Products), pricesRecorded)

	relationsCreated := 0
	for _, relationData := range seed.Relations {
		groupID, ok := groupIDs[relationData.Group]
		if !ok {
			return fmt.Errorf("relation of product %d refers to unknown group %q", relationData.ProductID, relationData.Group)
		}

		var settings *service.SettingsRequest
		if relationData.CustomLabel != "" || relationData.CustomImage != "" {
			settings = &service.SettingsRequest{
				CustomLabel: relationData.CustomLabel,
				CustomImage: relationData.CustomImage,
			}
		}

		for _, relatedID := range relationData.RelatedIDs {
			pair, err := relationService.CreateRelation(&service.CreateRelationRequest{
				ProductID:        relationData.ProductID,
				RelatedProductID: relatedID,
				GroupID:          groupID,
				Settings:         settings,
			})
			if err != nil {
				return fmt.Errorf("failed to relate %d and %d: %w", relationData.ProductID, relatedID, err)
			}
			if pair.Created {
				relationsCreated++
			}
		}

		if err := relationService.ReorderRelations(relationData.ProductID, groupID, &service.ReorderRelationsRequest{
			RelatedProductIDs: relationData.RelatedIDs,
		}); err != nil {
			log.Printf("Warning: failed to order relations of product %d: %v", relationData.ProductID, err)
		}
	}
	log.Printf("Relations: %d pairs created", relationsCreated)

	return nil
}

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	var all SeedFile

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		all.Groups = append(all.Groups, file.Groups...)
		all.Products = append(all.Products, file.Products...)
		all.Relations = append(all.Relations, file.Relations...)
		return nil
	})

	return &all, err
}

func createGroup(db *gorm.DB, groupData GroupData) (*models.RelationGroup, bool, error) {
	var group models.RelationGroup
	err := db.Where("name = ?", groupData.Name).First(&group).Error
	if err == nil {
		return &group, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query relation group: %w", err)
	}

	group = models.RelationGroup{
		Name:                groupData.Name,
		AttributeID:         groupData.AttributeID,
		DisplayOnList:       groupData.DisplayOnList,
		DisplayStyleSingle:  seedStyle(groupData.DisplayStyleSingle),
		DisplayStyleArchive: seedStyle(groupData.DisplayStyleArchive),
		SortOrder:           groupData.SortOrder,
	}
	if err := repository.NewRelationGroupRepository(db).Create(&group); err != nil {
		return nil, false, err
	}
	return &group, true, nil
}

func seedStyle(style string) models.DisplayStyle {
	s := models.DisplayStyle(style)
	if !s.IsValid() {
		return models.DefaultDisplayStyle
	}
	return s
}
