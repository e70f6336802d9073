package xlsexport

import (
	"bytes"
	candidateapimodels "interview-scheduler/models/api/candidate"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportSchedule(candidateName string, list []candidateapimodels.ScheduleItem) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const dateTimeLayout = "02.01.2006 15:04"

var scheduleHeaders = []string{"Этап", "Статус", "Начало", "Окончание", "Место", "Интервьюеры"}

func (i impl) ExportSchedule(candidateName string, list []candidateapimodels.ScheduleItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	if err := writeTitle(f, sheet, 1, len(scheduleHeaders), candidateName); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err := writeHeader(f, sheet, 2, scheduleHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err := writeScheduleData(f, sheet, 3, list); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	if err := f.SetSheetName(sheet, "Расписание"); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа xlsx")
	}
	return f.WriteToBuffer()
}

func writeScheduleData(f *excelize.File, sheet string, firstRow int, list []candidateapimodels.ScheduleItem) error {
	if len(list) == 0 {
		return nil
	}
	if err := applyDataCellStyle(f, sheet, 1, firstRow, len(scheduleHeaders), firstRow+len(list)-1); err != nil {
		return err
	}
	for idx, item := range list {
		start, end := "", ""
		if item.HasEvent() {
			start = item.StartTime.Format(dateTimeLayout)
			end = item.EndTime.Format(dateTimeLayout)
		}
		err := writeRow(f, sheet, firstRow+idx,
			item.StepName,
			item.Status,
			start,
			end,
			item.Location,
			strings.Join(item.Interviewers, ", "),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
