package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/xuri/excelize/v2"
)

// Date cells arrive either formatted by the workbook or as Excel serial numbers.
// Slash and dash forms are month first, as spreadsheets export them.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"01/02/2006",
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", attendance.ErrDataFormat, s)
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
}

// parseClock normalises a time-of-day cell to "15:04:05". Blank cells and "-" are absent.
func parseClock(s string) (*string, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v := t.Format("15:04:05")
			return &v, nil
		}
	}

	// Fraction of a day, how Excel stores a bare time
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 && f < 1 {
		secs := int(math.Round(f * 86400))
		v := fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
		return &v, nil
	}

	return nil, fmt.Errorf("%w: time of day %q", attendance.ErrDataFormat, s)
}

// normalizeNIP strips the ".0" a numeric NIP cell picks up when read as a number.
func normalizeNIP(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimSuffix(s, ".0")
}
