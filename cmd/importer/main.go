package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/absensi-dosen/absensi-backend-go/internal/config"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/database"
	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/spreadsheet"
	"github.com/absensi-dosen/absensi-backend-go/internal/repository/postgresql"
	"github.com/absensi-dosen/absensi-backend-go/internal/service/importer"
	"github.com/absensi-dosen/absensi-backend-go/migrations"
)

func main() {
	file := flag.String("file", "", "attendance workbook (.xlsx)")
	usersSheet := flag.String("users-sheet", importer.DefaultUsersSheet, "sheet holding lecturer accounts")
	sheets := flag.String("sheets", strings.Join(importer.DefaultAttendanceSheets, ","), "comma separated attendance sheets")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file db_agustus.xlsx [-sheets BP,BT] [-users-sheet data_akses]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := run(context.Background(), cfg, *file, *usersSheet, splitSheets(*sheets)); err != nil {
		slog.Error("import failed, nothing was written", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, path, usersSheet string, sheets []string) error {
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(ctx, db.Pool); err != nil {
			return err
		}
	}

	wb, err := spreadsheet.OpenFile(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	imp := importer.NewImporter(
		postgresql.NewTransactor(db),
		postgresql.NewLecturerRepository(db),
		postgresql.NewAttendanceRepository(db),
		importer.Options{
			UsersSheet:        usersSheet,
			AttendanceSheets:  sheets,
			DefaultLeaveQuota: cfg.Policy.DefaultLeaveQuota,
		},
	)

	res, err := imp.Run(ctx, wb)
	if err != nil {
		return err
	}

	slog.Info("import finished",
		"file", path,
		"users_added", res.UsersAdded,
		"users_skipped", res.UsersSkipped,
		"attendance_added", res.AttendanceAdded,
		"attendance_skipped", res.AttendanceSkipped,
	)
	return nil
}

func splitSheets(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
