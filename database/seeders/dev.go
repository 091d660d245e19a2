package seeders

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/auth"
)

func init() {
	Register("users", SeedUsers)
	Register("orders", SeedOrders)
}

// SeedUsers creates one account per ADMIN_EMAILS entry plus a regular
// staff account, all with the password "password". Dev convenience only;
// existing rows are left alone.
func SeedUsers(db *gorm.DB) error {
	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	seed := []models.User{
		{Name: "Staff", Email: "staff@example.com", Password: hash, Role: "user"},
	}
	for _, email := range config.AdminEmails() {
		seed = append(seed, models.User{Name: "Admin", Email: email, Password: hash, Role: "admin"})
	}

	for _, u := range seed {
		var count int64
		db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedOrders inserts a handful of sample orders spread over recent days so
// the dashboard has something to show.
func SeedOrders(db *gorm.DB) error {
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	today := time.Now()
	date := func(daysAgo int) string {
		return today.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	orders := []models.Order{
		{OrderCode: "ORD-SEED1", CustomerName: "Maria Santos", FBProfile: "fb.com/maria.santos", OrderDetails: "2x blue mug", Status: "pending", OrderDate: date(0), DeliveryMethod: "jnt", PaidProduct: 450, PaidShipping: 80},
		{OrderCode: "ORD-SEED2", CustomerName: "Juan Cruz", OrderDetails: "red shirt L", Status: "shipped", OrderDate: date(1), DeliveryMethod: "jnt", PaidProduct: 320, PaidShipping: 60, Notes: "rush"},
		{OrderCode: "ORD-SEED3", CustomerName: "Ana Reyes", OrderDetails: "cap, black", Status: "delivered", OrderDate: date(2), DeliveryMethod: "walkin", PaidProduct: 150, PaidShipping: 0},
		{OrderCode: "ORD-SEED4", CustomerName: "Maria Santos", OrderDetails: "tote bag", Status: "processing", OrderDate: date(2), DeliveryMethod: "jnt", PaidProduct: 200, PaidShipping: 60},
		{OrderCode: "ORD-SEED5", CustomerName: "Leo Tan", OrderDetails: "stickers x10", Status: "cancelled", OrderDate: date(5), DeliveryMethod: "walkin", PaidProduct: 90, PaidShipping: 0},
	}

	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
