package repository

import (
	"fmt"
	"testing"
	"time"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func reportDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Order{}, &entity.OrderItem{},
		&entity.Supplier{}, &entity.Purchase{}, &entity.PurchaseItem{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, code, status string, total, tax int64, items ...entity.OrderItem) {
	t.Helper()
	o := entity.Order{Code: code, Status: status, Subtotal: total - tax, Tax: tax, Total: total}
	require.NoError(t, db.Create(&o).Error)
	for i := range items {
		items[i].OrderID = o.ID
		require.NoError(t, db.Create(&items[i]).Error)
	}
}

func TestSalesTotals_ExcludesCancelled(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	seedOrder(t, db, "POS-1", entity.OrderStatusCompleted, 10250, 250)
	seedOrder(t, db, "POS-2", entity.OrderStatusPaid, 20500, 500)
	seedOrder(t, db, "POS-3", entity.OrderStatusCancelled, 99999, 999)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	totals, err := repo.SalesTotals(from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.OrderCount)
	assert.Equal(t, int64(30750), totals.Gross)
	assert.Equal(t, int64(750), totals.Tax)
}

func TestSalesTotals_EmptyRange(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	from := time.Now().AddDate(0, 0, 10)
	to := time.Now().AddDate(0, 0, 11)

	totals, err := repo.SalesTotals(from, to)
	require.NoError(t, err)
	assert.Zero(t, totals.OrderCount)
	assert.Zero(t, totals.Gross)
}

func TestTopItems_OrdersByQuantity(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	seedOrder(t, db, "POS-1", entity.OrderStatusCompleted, 41000, 1000,
		entity.OrderItem{ItemID: 1, ItemName: "Pilau", Qty: 3, UnitPrice: 10000, Total: 30000},
		entity.OrderItem{ItemID: 2, ItemName: "Chai", Qty: 10, UnitPrice: 1000, Total: 10000},
	)
	seedOrder(t, db, "POS-2", entity.OrderStatusPaid, 20500, 500,
		entity.OrderItem{ItemID: 1, ItemName: "Pilau", Qty: 2, UnitPrice: 10000, Total: 20000},
	)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	top, err := repo.TopItems(from, to, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Chai", top[0].ItemName)
	assert.Equal(t, int64(10), top[0].Qty)
	assert.Equal(t, "Pilau", top[1].ItemName)
	assert.Equal(t, int64(5), top[1].Qty)
	assert.Equal(t, int64(50000), top[1].Revenue)
}

func TestTopItems_SkipsSoftDeletedRows(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	seedOrder(t, db, "POS-1", entity.OrderStatusCompleted, 10250, 250,
		entity.OrderItem{ItemID: 1, ItemName: "Pilau", Qty: 1, UnitPrice: 10000, Total: 10000},
	)
	seedOrder(t, db, "POS-2", entity.OrderStatusCompleted, 20500, 500,
		entity.OrderItem{ItemID: 2, ItemName: "Chai", Qty: 2, UnitPrice: 10000, Total: 20000},
	)
	require.NoError(t, db.Where("code = ?", "POS-2").Delete(&entity.Order{}).Error)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	top, err := repo.TopItems(from, to, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Pilau", top[0].ItemName)
}

func TestSpendBySupplier_SkipsSoftDeletedPurchases(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	s1 := entity.Supplier{Name: "Mzigo Traders"}
	require.NoError(t, db.Create(&s1).Error)

	keep := entity.Purchase{SupplierID: s1.ID, Total: 50000}
	gone := entity.Purchase{SupplierID: s1.ID, Total: 25000}
	require.NoError(t, db.Create(&keep).Error)
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Delete(&gone).Error)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	bySupplier, err := repo.SpendBySupplier(from, to)
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, int64(50000), bySupplier[0].Spend)
}

func TestProcurement_SpendBySupplier(t *testing.T) {
	db := reportDB(t)
	repo := NewReportRepository(db)

	s1 := entity.Supplier{Name: "Mzigo Traders"}
	s2 := entity.Supplier{Name: "Soko Fresh"}
	require.NoError(t, db.Create(&s1).Error)
	require.NoError(t, db.Create(&s2).Error)

	require.NoError(t, db.Create(&entity.Purchase{SupplierID: s1.ID, Total: 50000}).Error)
	require.NoError(t, db.Create(&entity.Purchase{SupplierID: s1.ID, Total: 25000}).Error)
	require.NoError(t, db.Create(&entity.Purchase{SupplierID: s2.ID, Total: 60000}).Error)

	from := time.Now().AddDate(0, 0, -1)
	to := time.Now().AddDate(0, 0, 1)

	totals, err := repo.ProcurementTotals(from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(3), totals.PurchaseCount)
	assert.Equal(t, int64(135000), totals.Spend)

	bySupplier, err := repo.SpendBySupplier(from, to)
	require.NoError(t, err)
	require.Len(t, bySupplier, 2)
	assert.Equal(t, "Mzigo Traders", bySupplier[0].SupplierName)
	assert.Equal(t, int64(75000), bySupplier[0].Spend)
	assert.Equal(t, "Soko Fresh", bySupplier[1].SupplierName)
}
