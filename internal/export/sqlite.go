package export

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/genreforge/genreforge/pkg/constants"
	pkgerrors "github.com/genreforge/genreforge/pkg/errors"
	"github.com/genreforge/genreforge/pkg/genres"
)

// Record is the database row model for an exported entry. IDs come from the
// pipeline's own allocator, so auto-increment is disabled.
type Record struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false"`
	Name          string `gorm:"index:idx_records_name"`
	Level         int    `gorm:"index:idx_records_level"`
	ParentID      int64  `gorm:"index:idx_records_parent"`
	Region        string
	Language      string
	Period        string
	Status        string
	Instruments   string
	Pioneers      string
	Artists       string
	Works         string
	Source        string
	BPM           string
	TimeSignature string
}

// Store persists entries to a SQLite database.
type Store struct {
	db   *gorm.DB
	path string
}

// OpenStore opens or creates the SQLite database at path and migrates the
// record table.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, pkgerrors.NewExportError("sqlite", path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, pkgerrors.NewExportError("sqlite", path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Save replaces the stored records with entries, inserting in batches.
// Clearing first keeps re-exports into an existing database from colliding
// on primary keys, matching the truncating file exports.
func (s *Store) Save(entries []genres.Entry) error {
	records := make([]Record, len(entries))
	for i, e := range entries {
		records[i] = toRecord(e)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, constants.SQLiteInsertBatch).Error
	})
	if err != nil {
		return pkgerrors.WrapExport("sqlite", s.path, err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&Record{}).Count(&n).Error; err != nil {
		return 0, pkgerrors.WrapExport("sqlite", s.path, err)
	}
	return n, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toRecord(e genres.Entry) Record {
	return Record{
		ID:            e.ID,
		Name:          e.Name,
		Level:         e.Level,
		ParentID:      e.ParentID,
		Region:        e.Region,
		Language:      e.Language,
		Period:        e.Period,
		Status:        e.Status.String(),
		Instruments:   e.Instruments,
		Pioneers:      e.Pioneers,
		Artists:       e.Artists,
		Works:         e.Works,
		Source:        e.Source,
		BPM:           e.BPM,
		TimeSignature: e.TimeSignature,
	}
}
