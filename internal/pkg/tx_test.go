package pkg

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type txRecord struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupTxDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&txRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&txRecord{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTxDB(t)

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&txRecord{Name: "kept"}).Error
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}

	if got := count(t, db); got != 1 {
		t.Errorf("count=%d; want 1", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTxDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&txRecord{Name: "discarded"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := count(t, db); got != 0 {
		t.Errorf("count=%d; want 0 after rollback", got)
	}
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := setupTxDB(t)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = WithTx(context.Background(), db, func(tx *gorm.DB) error {
			if err := tx.Create(&txRecord{Name: "discarded"}).Error; err != nil {
				return err
			}
			panic("boom")
		})
	}()

	if got := count(t, db); got != 0 {
		t.Errorf("count=%d; want 0 after panic rollback", got)
	}
}
