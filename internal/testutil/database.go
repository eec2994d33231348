package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Expects a MySQL instance
// on localhost:3306 with a database named 'canteen_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/canteen_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB truncates all canteen tables and closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderPlaces", "OrderDetails", "Orders", "Foods", "Places", "Users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the canteen schema.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS Users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createFoodsTable := `
	CREATE TABLE IF NOT EXISTS Foods (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createPlacesTable := `
	CREATE TABLE IF NOT EXISTS Places (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		uuid CHAR(36) NOT NULL PRIMARY KEY,
		userId INT UNSIGNED NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'CREATED',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (userId)
	)`

	createOrderDetailsTable := `
	CREATE TABLE IF NOT EXISTS OrderDetails (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderUuid CHAR(36) NOT NULL,
		foodId INT UNSIGNED NOT NULL,
		quantity INT NOT NULL,
		withdrawalOrder INT NOT NULL DEFAULT 0,
		FOREIGN KEY (orderUuid) REFERENCES Orders(uuid) ON DELETE CASCADE,
		INDEX idx_order (orderUuid),
		INDEX idx_food (foodId)
	)`

	createOrderPlacesTable := `
	CREATE TABLE IF NOT EXISTS OrderPlaces (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderUuid CHAR(36) NOT NULL,
		placeId INT UNSIGNED NOT NULL,
		quantity INT NOT NULL,
		FOREIGN KEY (orderUuid) REFERENCES Orders(uuid) ON DELETE CASCADE,
		INDEX idx_order (orderUuid),
		INDEX idx_place (placeId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Users", createUsersTable},
		{"Foods", createFoodsTable},
		{"Places", createPlacesTable},
		{"Orders", createOrdersTable},
		{"OrderDetails", createOrderDetailsTable},
		{"OrderPlaces", createOrderPlacesTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// SeedUser inserts a user and returns its id.
func SeedUser(t *testing.T, db *sql.DB, username string) uint {
	result, err := db.Exec(`INSERT INTO Users (username, email) VALUES (?, ?)`, username, username+"@example.com")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded user id: %v", err)
	}
	return uint(id)
}

// SeedFood inserts a catalog food row and returns its id.
func SeedFood(t *testing.T, db *sql.DB, name string) uint {
	result, err := db.Exec(`INSERT INTO Foods (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("failed to seed food: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded food id: %v", err)
	}
	return uint(id)
}

// SeedPlace inserts a catalog place row and returns its id.
func SeedPlace(t *testing.T, db *sql.DB, name string) uint {
	result, err := db.Exec(`INSERT INTO Places (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("failed to seed place: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded place id: %v", err)
	}
	return uint(id)
}
