package commands

import (
	"context"
	"fmt"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/menu"
	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/tables"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// SeedCommandHandler encapsulates logic for seeding demo data via CLI.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler
// instance with a configured logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{logger: loggerInstance}, nil
}

// SeedDemoCmd creates a demo restaurant with an owner account, a small
// menu and a handful of tables with QR codes.
func (commandHandler *SeedCommandHandler) SeedDemoCmd(cmd *cobra.Command, _ []string) {
	ownerEmail, err := cmd.Flags().GetString("owner-email")
	if err != nil {
		commandHandler.logger.Error("invalid owner-email flag ", err)
		return
	}
	ownerPassword, err := cmd.Flags().GetString("owner-password")
	if err != nil {
		commandHandler.logger.Error("invalid owner-password flag ", err)
		return
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	slug, err := cmd.Flags().GetString("slug")
	if err != nil {
		commandHandler.logger.Error("invalid slug flag ", err)
		return
	}
	tableCount, err := cmd.Flags().GetInt("tables")
	if err != nil {
		commandHandler.logger.Error("invalid tables flag ", err)
		return
	}

	p, err := openPlatform(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := context.Background()

	owner, err := p.accounts.Register(ctx, &accounts.Registration{
		Email:     ownerEmail,
		Password:  ownerPassword,
		FirstName: "Demo",
		LastName:  "Owner",
	})
	if err != nil {
		commandHandler.logger.Error("failed to register owner account ", err)
		return
	}

	restaurant, err := p.restaurants.Register(ctx, owner.ID, name, slug)
	if err != nil {
		commandHandler.logger.Error("failed to register restaurant ", err)
		return
	}

	if err := commandHandler.seedMenu(ctx, p, restaurant.ID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.seedTables(ctx, p, restaurant.ID, tableCount); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Seeded demo restaurant ", slug, " with owner ", ownerEmail)
}

func (commandHandler *SeedCommandHandler) seedMenu(ctx context.Context, p *platform, restaurantID string) error {
	type seedItem struct {
		name        string
		description string
		price       string
		vegetarian  bool
		spicyLevel  int
	}
	seedCategories := []struct {
		name  string
		items []seedItem
	}{
		{
			name: "Khinkali",
			items: []seedItem{
				{name: "Beef and Pork Khinkali", description: "Hand-folded dumplings, sold per piece", price: "1.50"},
				{name: "Mushroom Khinkali", description: "Vegetarian dumplings with wild mushrooms", price: "1.30", vegetarian: true},
			},
		},
		{
			name: "Khachapuri",
			items: []seedItem{
				{name: "Adjarian Khachapuri", description: "Open boat with egg and butter", price: "18.00", vegetarian: true},
				{name: "Imeretian Khachapuri", description: "Closed round with sulguni", price: "15.00", vegetarian: true},
			},
		},
		{
			name: "Mains",
			items: []seedItem{
				{name: "Chicken Shkmeruli", description: "Pan-fried chicken in garlic milk sauce", price: "24.00"},
				{name: "Beef Ostri", description: "Spicy beef stew with tomatoes", price: "22.00", spicyLevel: 3},
			},
		},
	}

	for displayOrder, seedCategory := range seedCategories {
		category, err := p.menu.CreateCategory(ctx, &menu.MenuCategory{
			RestaurantID: restaurantID,
			Name:         seedCategory.name,
			DisplayOrder: displayOrder,
		})
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", seedCategory.name, err)
		}

		for itemOrder, seed := range seedCategory.items {
			price, err := decimal.NewFromString(seed.price)
			if err != nil {
				return fmt.Errorf("invalid seed price %s: %w", seed.price, err)
			}
			categoryID := category.ID
			if _, err := p.menu.CreateItem(ctx, &menu.MenuItem{
				RestaurantID: restaurantID,
				CategoryID:   &categoryID,
				Name:         seed.name,
				Description:  seed.description,
				Price:        price,
				IsAvailable:  true,
				DisplayOrder: itemOrder,
				IsVegetarian: seed.vegetarian,
				IsSpicy:      seed.spicyLevel > 0,
				SpicyLevel:   seed.spicyLevel,
			}); err != nil {
				return fmt.Errorf("failed to seed item %s: %w", seed.name, err)
			}
		}
	}

	return nil
}

func (commandHandler *SeedCommandHandler) seedTables(ctx context.Context, p *platform, restaurantID string, tableCount int) error {
	section, err := p.tables.CreateSection(ctx, &tables.TableSection{
		RestaurantID: restaurantID,
		Name:         "Main Hall",
	})
	if err != nil {
		return fmt.Errorf("failed to seed section: %w", err)
	}

	for number := 1; number <= tableCount; number++ {
		sectionID := section.ID
		table, err := p.tables.CreateTable(ctx, &tables.Table{
			RestaurantID: restaurantID,
			SectionID:    &sectionID,
			Number:       fmt.Sprintf("%d", number),
			Capacity:     4,
		})
		if err != nil {
			return fmt.Errorf("failed to seed table %d: %w", number, err)
		}

		qr, err := p.tables.CreateQRCode(ctx, restaurantID, table.ID, "table sticker")
		if err != nil {
			return fmt.Errorf("failed to seed QR code for table %d: %w", number, err)
		}
		commandHandler.logger.Info("Table ", table.Number, " QR code: ", qr.Code)
	}

	return nil
}

// InitSeedCommands registers seeding-related commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedDemoCmd = &cobra.Command{
		Use:   "seed-demo",
		Short: "Seed a demo restaurant with a menu and tables",
		Run:   handler.SeedDemoCmd,
	}
	seedDemoCmd.Flags().StringP("owner-email", "", "owner@example.com", "Email for the demo owner account")
	seedDemoCmd.Flags().StringP("owner-password", "", "changeme-now", "Password for the demo owner account")
	seedDemoCmd.Flags().StringP("name", "", "Old Tbilisi", "Display name of the demo restaurant")
	seedDemoCmd.Flags().StringP("slug", "", "old-tbilisi", "URL slug of the demo restaurant")
	seedDemoCmd.Flags().IntP("tables", "", 6, "Number of tables to create")
	rootCmd.AddCommand(seedDemoCmd)

	return nil
}
