package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"srms-backend/internal/domain"
)

// Seed is the startup dataset. The zero value is useless; use
// DefaultSeed or LoadSeed.
type Seed struct {
	Menu      []domain.MenuItem
	Inventory []domain.InventoryRecord
	Users     []domain.User
}

type seedFile struct {
	Menu []struct {
		ID       int     `yaml:"id"`
		Name     string  `yaml:"name"`
		Price    float64 `yaml:"price"`
		Category string  `yaml:"category"`
		Img      string  `yaml:"img"`
	} `yaml:"menu"`
	Inventory []struct {
		ID                int     `yaml:"id"`
		Name              string  `yaml:"name"`
		Quantity          float64 `yaml:"quantity"`
		Unit              string  `yaml:"unit"`
		LowStockThreshold float64 `yaml:"low_stock_threshold"`
	} `yaml:"inventory"`
	Users []domain.User `yaml:"users"`
}

// LoadSeed reads a YAML seed file. Sections absent from the file fall
// back to the built-in defaults.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}

	seed := DefaultSeed()
	if len(f.Menu) > 0 {
		seed.Menu = make([]domain.MenuItem, 0, len(f.Menu))
		for _, m := range f.Menu {
			seed.Menu = append(seed.Menu, domain.MenuItem{
				ID: m.ID, Name: m.Name, Price: m.Price,
				Category: m.Category, ImageURL: m.Img,
			})
		}
	}
	if len(f.Inventory) > 0 {
		seed.Inventory = make([]domain.InventoryRecord, 0, len(f.Inventory))
		for _, r := range f.Inventory {
			seed.Inventory = append(seed.Inventory, domain.InventoryRecord{
				ID: r.ID, Name: r.Name, Quantity: r.Quantity,
				Unit: r.Unit, LowStockThreshold: r.LowStockThreshold,
			})
		}
	}
	if len(f.Users) > 0 {
		seed.Users = f.Users
	}
	return seed, nil
}

// DefaultSeed is the dataset the backend has always shipped with.
func DefaultSeed() Seed {
	return Seed{
		Menu: []domain.MenuItem{
			{ID: 1, Name: "Karak Tea", Price: 6, Category: "Drinks",
				ImageURL: "https://foodess.com/wp-content/uploads/2024/02/Karak-Chai-4.jpg"},
			{ID: 2, Name: "Pizza", Price: 32, Category: "Main",
				ImageURL: "https://assets.surlatable.com/m/15a89c2d9c6c1345/72_dpi_webp-REC-283110_Pizza.jpg"},
			{ID: 3, Name: "Chicken Biryani", Price: 28, Category: "Main",
				ImageURL: "https://www.cubesnjuliennes.com/wp-content/uploads/2020/01/Chicken-Biryani.jpg"},
			{ID: 4, Name: "Rice Plate", Price: 15, Category: "Side",
				ImageURL: "https://www.allrecipes.com/thmb/TS7Hb4x4owg8zzyTMYhGi739OI0=/750x0/filters:no_upscale():max_bytes(150000):strip_icc()/microwave-rice-ddmfs-2x3-25-010ae39399ca44d184b57849af4059ad.jpg"},
			{ID: 5, Name: "Mandi", Price: 30, Category: "Main",
				ImageURL: "https://cdn.prod.website-files.com/5fe870209b4f367ca43b8b48/6913130abb97dd483dbd5f6b_pexels-i-own-my-food-art-76108785-8994586.jpg"},
			{ID: 6, Name: "French Fries", Price: 12, Category: "Side",
				ImageURL: "https://www.recipetineats.com/tachyon/2022/09/Fries-with-rosemary-salt_1.jpg?resize=900%2C1125&zoom=0.72"},
			{ID: 7, Name: "Chocolate Cake", Price: 22, Category: "Dessert",
				ImageURL: "https://sallysbakingaddiction.com/wp-content/uploads/2013/04/triple-chocolate-cake-4.jpg"},
		},
		Inventory: []domain.InventoryRecord{
			{ID: 1, Name: "Rice (kg)", Quantity: 25, Unit: "kg", LowStockThreshold: 5},
			{ID: 2, Name: "Chicken (kg)", Quantity: 12, Unit: "kg", LowStockThreshold: 3},
			{ID: 3, Name: "Tea Leaves (kg)", Quantity: 4, Unit: "kg", LowStockThreshold: 1},
			{ID: 4, Name: "Soft Drinks (bottles)", Quantity: 40, Unit: "bottles", LowStockThreshold: 10},
		},
		Users: []domain.User{
			{Username: "admin", Password: "admin123", Role: "ADMIN"},
			{Username: "waiter", Password: "waiter123", Role: "WAITER"},
			{Username: "chef", Password: "chef123", Role: "CHEF"},
		},
	}
}
