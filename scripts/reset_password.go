package main

import (
	"fmt"
	"os"

	"github.com/petrobase/sitecms/internal/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:50"`
	Password string `gorm:"size:255"`
	AuthType string `gorm:"size:20"`
}

func (User) TableName() string { return "users" }

func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/reset_password.go <username> <new-password>")
		os.Exit(1)
	}
	username := os.Args[1]
	password := os.Args[2]

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.Database.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	default:
		dialector = sqlite.Open(cfg.Database.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	var user User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		fmt.Printf("User %q not found: %v\n", username, err)
		os.Exit(1)
	}

	if user.AuthType == "ldap" {
		fmt.Printf("User %q authenticates via LDAP, password is managed by the directory\n", username)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	if err := db.Model(&User{}).Where("id = ?", user.ID).Update("password", string(hash)).Error; err != nil {
		fmt.Printf("Failed to update password: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Password updated for user %q (ID %d)\n", username, user.ID)
}
