package pdfexport

import (
	"bytes"
	"fmt"
	candidateapimodels "interview-scheduler/models/api/candidate"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	fontFamily     = "Arial"
	fallbackFamily = "Helvetica"
	dateTimeLayout = "02.01.2006 15:04"
)

// GenerateSchedule расписание собеседований кандидата в pdf.
// Если в fontDir нет Arial.ttf, используется встроенный Helvetica (без кириллицы).
func GenerateSchedule(fontDir, candidateName string, list []candidateapimodels.ScheduleItem) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateSchedule panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", fontDir)
	family := fontFamily
	pdf.AddUTF8Font(fontFamily, "", "Arial.ttf")
	pdf.AddUTF8Font(fontFamily, "B", "Arial Bold.ttf")
	if pdf.Error() != nil {
		log.WithError(pdf.Error()).Debug("шрифт Arial недоступен, используется Helvetica")
		pdf.ClearError()
		family = fallbackFamily
	}
	pdf.AddPage()
	pdf.SetFont(family, "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	tr := func(s string) string { return s }
	if family == fallbackFamily {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.CellFormat(0, 10, tr(candidateName), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{45, 30, 35, 35, 55, 77}
	pdf.SetFont(family, "B", 10)
	for idx, header := range []string{"Step", "Status", "Start", "End", "Location", "Interviewers"} {
		pdf.CellFormat(widths[idx], 8, tr(header), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 10)
	for _, item := range list {
		start, end := "", ""
		if item.HasEvent() {
			start = item.StartTime.Format(dateTimeLayout)
			end = item.EndTime.Format(dateTimeLayout)
		}
		cells := []string{item.StepName, item.Status, start, end, item.Location, strings.Join(item.Interviewers, ", ")}
		for idx, value := range cells {
			pdf.CellFormat(widths[idx], 7, tr(truncate(value, 60)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total steps: %d", len(list))), "", 1, "L", false, 0, "")

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-1]) + "…"
}
