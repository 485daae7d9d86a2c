package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/spreadsheet"
)

// The export always has 31 day columns; days a month lacks stay blank.
const exportDayColumns = 31

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func monthName(m attendance.Month) string {
	return monthNames[m.Month-1]
}

func exportHeader() []string {
	header := make([]string, 0, exportDayColumns+3)
	header = append(header, "Jurusan", "Nama")
	for day := 1; day <= exportDayColumns; day++ {
		header = append(header, strconv.Itoa(day))
	}
	return append(header, "Jumlah")
}

// exportSheet flattens the department groups into one row per lecturer.
func exportSheet(m attendance.Month, rep report.MonthlyReport) spreadsheet.Sheet {
	title := fmt.Sprintf("Rekap Absensi %s %d", monthName(m), m.Year)

	var rows [][]interface{}
	for _, dept := range rep.Departments {
		for _, l := range dept.Lecturers {
			row := make([]interface{}, 0, exportDayColumns+3)
			row = append(row, dept.Name, l.FullName)
			for day := 1; day <= exportDayColumns; day++ {
				row = append(row, l.Cell(day))
			}
			rows = append(rows, append(row, l.Summary))
		}
	}

	return spreadsheet.Sheet{
		Name:      title,
		Header:    exportHeader(),
		Rows:      rows,
		ColWidths: map[string]float64{"A": 28, "B": 32, "AH": 30},
	}
}

func exportFileName(m attendance.Month) string {
	return strings.ReplaceAll(fmt.Sprintf("Rekap Absensi %s %d", monthName(m), m.Year), " ", "_") + ".xlsx"
}
