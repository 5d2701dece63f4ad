package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"gardenplan/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the plantings rebuild BEFORE AutoMigrate so GORM doesn't try
	// the failing ALTER TABLE on a legacy table without a primary key.
	if err := migratePlantingsAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Garden{},
		&entities.GardenBed{},
		&entities.Seed{},
		&entities.Planting{},
		&entities.Task{},
		&entities.GardenTask{},
		&entities.WishlistItem{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migratePlantingsAddPK rebuilds plantings if an early install left the
// table without a primary key on planting_id.
func migratePlantingsAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='plantings'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(plantings)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasIDasPK := false
	for _, c := range cols {
		if strings.EqualFold(c.Name, "planting_id") {
			if c.Pk == 1 {
				hasIDasPK = true
			}
			break
		}
	}
	if hasIDasPK {
		return nil
	}

	createSQL := `
CREATE TABLE plantings_new (
    planting_id INTEGER PRIMARY KEY AUTOINCREMENT,
    garden_id INTEGER,
    bed_id INTEGER,
    seed_id INTEGER,
    method TEXT,
    start_segment INTEGER,
    segments_used INTEGER,
    planned_presow_date TEXT,
    planned_date TEXT,
    planned_harvest_start TEXT,
    planned_harvest_end TEXT,
    actual_presow_date TEXT,
    actual_date TEXT,
    actual_harvest_start TEXT,
    actual_harvest_end TEXT,
    notes TEXT,
    created_at DATETIME,
    updated_at DATETIME
);
`
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copyCols := []string{
		"garden_id", "bed_id", "seed_id", "method",
		"start_segment", "segments_used",
		"planned_presow_date", "planned_date", "planned_harvest_start", "planned_harvest_end",
		"actual_presow_date", "actual_date", "actual_harvest_start", "actual_harvest_end",
		"notes", "created_at", "updated_at",
	}
	sels := make([]string, len(copyCols))
	for i, name := range copyCols {
		sels[i] = sel(name)
	}
	copySQL := fmt.Sprintf(`
INSERT INTO plantings_new (%s)
SELECT %s FROM plantings;
`, strings.Join(copyCols, ", "), strings.Join(sels, ", "))

	return db.Transaction(func(tx *gorm.DB) error {
		// FK checks off during the rebuild; SQLite scopes the pragma to
		// this connection.
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE plantings`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE plantings_new RENAME TO plantings`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}
