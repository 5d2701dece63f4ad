package serviceImp

import (
	"bytes"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"gardenplan/entities"
	seedRepoImp "gardenplan/pkg/seed/repositoryImp"
)

func newTestSvc(t *testing.T) (*seedSvc, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Seed{}))
	return New(seedRepoImp.New(db)).(*seedSvc), db
}

func sheetBytes(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &row))
	}
	buf, err := x.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportXLSX(t *testing.T) {
	svc, db := newTestSvc(t)
	buf := sheetBytes(t, [][]any{
		{"Name", "Variety", "Sowing Type", "Presow Weeks", "Grow Weeks", "Harvest Weeks", "Planting Months", "Notes"},
		{"Tomato", "San Marzano", "presow", 6, 8, 6, "3,4", "needs staking"},
		{"Radish", "", "direct", "", 4, 2, "3,4,5,6,7,8", ""},
		{"", "", "", "", "", "", "", ""}, // no name: skipped
	})

	seeds, err := svc.ImportXLSX("u1", buf)
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "Tomato", seeds[0].Name)
	assert.Equal(t, "presow", seeds[0].SowingType)
	assert.Equal(t, 6, *seeds[0].PresowDurationWeeks)
	assert.Equal(t, []int{3, 4}, seeds[0].PlantingMonths)
	assert.Equal(t, "needs staking", seeds[0].Notes)

	assert.Equal(t, "direct", seeds[1].SowingType)
	assert.Nil(t, seeds[1].PresowDurationWeeks)
	assert.Equal(t, 4, *seeds[1].GrowDurationWeeks)

	var n int64
	require.NoError(t, db.Model(&entities.Seed{}).Where("user_id = ?", "u1").Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestImportXLSXToleratesHeaderAliases(t *testing.T) {
	svc, _ := newTestSvc(t)
	buf := sheetBytes(t, [][]any{
		{"seed", "cultivar", "method", "presow_duration_weeks"},
		{"Leek", "Winter giant", "indoor", 10},
	})
	seeds, err := svc.ImportXLSX("u1", buf)
	require.NoError(t, err)
	require.Len(t, seeds, 1)
	assert.Equal(t, "Leek", seeds[0].Name)
	assert.Equal(t, "presow", seeds[0].SowingType, "indoor maps to presow")
	assert.Equal(t, 10, *seeds[0].PresowDurationWeeks)
}

func TestImportXLSXRejectsMissingNameColumn(t *testing.T) {
	svc, _ := newTestSvc(t)
	buf := sheetBytes(t, [][]any{
		{"Variety", "Sowing Type"},
		{"San Marzano", "presow"},
	})
	_, err := svc.ImportXLSX("u1", buf)
	assert.Error(t, err)
}
