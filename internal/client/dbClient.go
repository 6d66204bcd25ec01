package client

import (
	"log"

	"artmarket/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func InitSqliteClient(databaseURL string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&model.Painting{},
		&model.Category{},
		&model.Artist{},
		&model.Order{},
		&model.SiteSettings{},
		&model.User{},
		&model.Like{},
	); err != nil {
		log.Fatal(err)
	}

	return db
}
