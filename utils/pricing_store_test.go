package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Bgmi10/booking-engine-sub003/models"
	"github.com/Bgmi10/booking-engine-sub003/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pricing_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.RateDatePrice{}))
	return db
}

func testDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertRateDatePrices_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	rows := []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 1), Price: 150.50, PriceType: models.PriceTypeBaseOverride},
		{RoomID: 1, Date: testDay(2024, 6, 2), Price: 160.00, PriceType: models.PriceTypeBaseOverride},
		{RoomID: 2, Date: testDay(2024, 6, 1), Price: 99.99, PriceType: models.PriceTypeRoomOverride},
	}
	require.NoError(t, UpsertRateDatePrices(db, 7, rows))

	got, err := ActiveRateDatePrices(db, 7, []uint{1, 2}, testDay(2024, 6, 1), testDay(2024, 6, 30))
	require.NoError(t, err)
	require.Len(t, got, len(rows))

	byCell := map[[2]uint64]models.RateDatePrice{}
	for _, r := range got {
		assert.True(t, r.IsActive)
		byCell[[2]uint64{uint64(r.RoomID), uint64(r.Date.Day())}] = r
	}
	for _, want := range rows {
		r, ok := byCell[[2]uint64{uint64(want.RoomID), uint64(want.Date.Day())}]
		require.True(t, ok)
		assert.InDelta(t, want.Price, r.Price, 0.01)
		assert.Equal(t, want.PriceType, r.PriceType)
	}
}

func TestUpsertRateDatePrices_IdempotentReapply(t *testing.T) {
	db := newTestDB(t)
	row := []PriceRow{{RoomID: 3, Date: testDay(2024, 6, 5), Price: 210, PriceType: models.PriceTypeRoomIncrease}}

	require.NoError(t, UpsertRateDatePrices(db, 1, row))
	require.NoError(t, UpsertRateDatePrices(db, 1, row))
	require.NoError(t, UpsertRateDatePrices(db, 1, row))

	active, err := ActiveRateDatePrices(db, 1, []uint{3}, testDay(2024, 6, 1), testDay(2024, 6, 30))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.InDelta(t, 210.0, active[0].Price, 0.01)

	// Historical rows stay in place as inactive audit data.
	var total int64
	require.NoError(t, db.Model(&models.RateDatePrice{}).Count(&total).Error)
	assert.EqualValues(t, 3, total)
}

func TestUpsertRateDatePrices_ReplacesPriorActiveRow(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertRateDatePrices(db, 1, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 10), Price: 100, PriceType: models.PriceTypeBaseOverride},
	}))
	require.NoError(t, UpsertRateDatePrices(db, 1, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 10), Price: 130, PriceType: models.PriceTypeRoomOverride},
	}))

	active, err := ActiveRateDatePrices(db, 1, []uint{1}, testDay(2024, 6, 10), testDay(2024, 6, 10))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.InDelta(t, 130.0, active[0].Price, 0.01)
	assert.Equal(t, models.PriceTypeRoomOverride, active[0].PriceType)
}

func TestUpsertRateDatePrices_ScopedToPolicy(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertRateDatePrices(db, 1, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 10), Price: 100, PriceType: models.PriceTypeBaseOverride},
	}))
	require.NoError(t, UpsertRateDatePrices(db, 2, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 10), Price: 300, PriceType: models.PriceTypeBaseOverride},
	}))

	active, err := ActiveRateDatePrices(db, 1, []uint{1}, testDay(2024, 6, 10), testDay(2024, 6, 10))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.InDelta(t, 100.0, active[0].Price, 0.01)
}

func TestDeactivateRateDatePrice(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertRateDatePrices(db, 1, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 10), Price: 100, PriceType: models.PriceTypeBaseOverride},
	}))
	active, err := ActiveRateDatePrices(db, 1, nil, testDay(2024, 6, 10), testDay(2024, 6, 10))
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, DeactivateRateDatePrice(db, active[0].ID))

	active, err = ActiveRateDatePrices(db, 1, nil, testDay(2024, 6, 10), testDay(2024, 6, 10))
	require.NoError(t, err)
	assert.Empty(t, active)

	// Deactivating twice reports not found.
	assert.ErrorIs(t, DeactivateRateDatePrice(db, 1), gorm.ErrRecordNotFound)
}

func TestToOverrides_FeedsResolver(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, UpsertRateDatePrices(db, 1, []PriceRow{
		{RoomID: 1, Date: testDay(2024, 6, 1), Price: 85, PriceType: models.PriceTypeRoomIncrease},
	}))
	rows, err := ActiveRateDatePrices(db, 1, nil, testDay(2024, 6, 1), testDay(2024, 6, 1))
	require.NoError(t, err)

	resolved := pricing.ResolveEffectivePrice(1, testDay(2024, 6, 1), ToOverrides(rows), 200)
	assert.Equal(t, 85.0, resolved.Price)
	assert.Equal(t, pricing.SourceRoomIncrease, resolved.Source)
}
