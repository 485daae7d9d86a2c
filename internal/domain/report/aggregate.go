package report

import (
	"log/slog"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/clarification"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/lecturer"
)

type LecturerRow struct {
	NIP      string             `json:"nip"`
	FullName string             `json:"full_name"`
	Days     map[int]StatusCode `json:"days"`
	Counts   SummaryCounts      `json:"summary_counts"`
	Summary  string             `json:"summary"`
}

// Cell returns the code for day, blank when the lecturer has no row that day.
func (r LecturerRow) Cell(day int) string {
	return string(r.Days[day])
}

type DepartmentReport struct {
	Department string        `json:"department"`
	Name       string        `json:"department_name"`
	Lecturers  []LecturerRow `json:"lecturers"`
}

type MonthlyReport struct {
	Month       string             `json:"month"`
	DaysInMonth int                `json:"days_in_month"`
	Departments []DepartmentReport `json:"departments"`
	Skipped     int                `json:"skipped_rows"`
}

type slot struct{ dept, row int }

type dayKey struct {
	nip  string
	date string
}

// Aggregate builds the department-grouped grid for m. lecturers must already be ordered by
// department then name; that order is kept. Records of unknown lecturers are dropped and
// records that cannot be coded are skipped with a warning. The function has no side effects
// beyond logging, so equal inputs give equal reports.
func Aggregate(m attendance.Month, lecturers []lecturer.Lecturer, records []attendance.Record, approved []clarification.Clarification, logger *slog.Logger) MonthlyReport {
	if logger == nil {
		logger = slog.Default()
	}

	rep := MonthlyReport{Month: m.String(), DaysInMonth: m.Days()}

	deptIndex := make(map[string]int)
	slots := make(map[string]slot, len(lecturers))
	for _, l := range lecturers {
		if _, dup := slots[l.NIP]; dup {
			continue
		}
		di, ok := deptIndex[l.Department]
		if !ok {
			name := l.DepartmentDetail
			if name == "" {
				name = l.Department
			}
			rep.Departments = append(rep.Departments, DepartmentReport{Department: l.Department, Name: name})
			di = len(rep.Departments) - 1
			deptIndex[l.Department] = di
		}
		d := &rep.Departments[di]
		d.Lecturers = append(d.Lecturers, LecturerRow{
			NIP:      l.NIP,
			FullName: l.FullName,
			Days:     make(map[int]StatusCode),
			Counts:   SummaryCounts{},
		})
		slots[l.NIP] = slot{dept: di, row: len(d.Lecturers) - 1}
	}

	// Last approved clarification per lecturer and date wins
	excuses := make(map[dayKey]clarification.ExcuseKind, len(approved))
	for _, c := range approved {
		excuses[dayKey{c.NIP, c.Date.Format("2006-01-02")}] = c.Excuse()
	}

	for _, r := range records {
		s, ok := slots[r.NIP]
		if !ok {
			continue
		}
		if !m.Contains(r.Date) {
			logger.Warn("skipping attendance row outside report month",
				"nip", r.NIP, "date", r.Date.Format("2006-01-02"), "month", rep.Month)
			rep.Skipped++
			continue
		}

		var excuse *clarification.ExcuseKind
		if k, found := excuses[dayKey{r.NIP, r.Date.Format("2006-01-02")}]; found {
			excuse = &k
		}

		code, err := Code(r, excuse)
		if err != nil {
			logger.Warn("skipping unreadable attendance row",
				"nip", r.NIP, "date", r.Date.Format("2006-01-02"), "error", err)
			rep.Skipped++
			continue
		}

		row := &rep.Departments[s.dept].Lecturers[s.row]
		day := r.Date.Day()
		if prev, exists := row.Days[day]; exists {
			row.Counts.add(prev, -1)
		}
		row.Days[day] = code
		row.Counts.add(code, 1)
	}

	for di := range rep.Departments {
		for li := range rep.Departments[di].Lecturers {
			row := &rep.Departments[di].Lecturers[li]
			row.Summary = row.Counts.String()
		}
	}

	return rep
}
