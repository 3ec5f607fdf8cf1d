package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotelhub_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase ensures a default admin, the starter room categories and a
// small set of rooms exist so a fresh install is bookable immediately.
func SeedDatabase() {
	// ---------------- Admin ----------------
	var adminCount int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Email:    utils.EnvOrDefault("ADMIN_EMAIL", "admin@hotelhub.local"),
				Password: string(hash),
				Role:     models.RoleAdmin,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Room categories ----------------
	var categoryCount int64
	DB.Model(&models.RoomCategory{}).Count(&categoryCount)
	if categoryCount == 0 {
		categories := []models.RoomCategory{
			{Name: "Standard", Description: "Standard Room", Price: 1000, MaxAdults: 2, MaxChildren: 1},
			{Name: "Superior", Description: "Superior Room", Price: 1500, MaxAdults: 3, MaxChildren: 2},
			{Name: "Deluxe", Description: "Deluxe Room", Price: 2500, MaxAdults: 4, MaxChildren: 2},
		}
		if err := DB.Create(&categories).Error; err != nil {
			log.Printf("warning: failed to seed room categories: %v", err)
		} else {
			log.Println("Room categories seeded")
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		var categories []models.RoomCategory
		if err := DB.Order("price ASC").Find(&categories).Error; err != nil || len(categories) == 0 {
			log.Printf("warning: cannot seed rooms without categories: %v", err)
			return
		}

		rooms := make([]models.Room, 0, 9)
		for i, cat := range categories {
			floor := fmt.Sprintf("%d", i+1)
			for n := 1; n <= 3; n++ {
				catID := cat.ID
				rooms = append(rooms, models.Room{
					RoomCategoryID: &catID,
					RoomNumber:     fmt.Sprintf("%d0%d", i+1, n),
					Floor:          floor,
				})
			}
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.RoomCategory{},
		&models.Room{},
		&models.Booking{},
		&models.FoodOrder{},
		&models.SpaBooking{},
		&models.FinalBilling{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
