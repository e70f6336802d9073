package xlsexport

import (
	candidateapimodels "interview-scheduler/models/api/candidate"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportSchedule(t *testing.T) {
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	list := []candidateapimodels.ScheduleItem{
		{
			StepName:     "pairing",
			Status:       "Upcoming",
			StartTime:    start,
			EndTime:      start.Add(time.Hour),
			Location:     "room 1",
			Interviewers: []string{"Alice", "Bob"},
		},
		{
			StepName: "hr",
			Status:   "Pending",
		},
	}
	buf, err := impl{}.ExportSchedule("John Smith", list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()
	sheet := "Расписание"

	value, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	require.Equal(t, "John Smith", value)

	value, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	require.Equal(t, "Этап", value)

	value, err = f.GetCellValue(sheet, "A3")
	require.NoError(t, err)
	require.Equal(t, "pairing", value)

	value, err = f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	require.Equal(t, "01.03.2024 10:00", value)

	value, err = f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	require.Equal(t, "Alice, Bob", value)

	value, err = f.GetCellValue(sheet, "C4")
	require.NoError(t, err)
	require.Equal(t, "", value)
}
