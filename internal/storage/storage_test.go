package storage

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/misterclayt0n/wendler/internal/config"
	"github.com/misterclayt0n/wendler/internal/models"
	"github.com/misterclayt0n/wendler/internal/wendler"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(context.Background(), config.DBConfig{ConnectionString: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile() *models.UserProfile {
	p := wendler.NewProfile("ana", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), models.Imperial, models.DisplayPlatesPerSide,
		[]models.ScheduleEntry{
			{Day: models.Weekday(time.Monday), Lift: models.Squat},
			{Day: models.Weekday(time.Wednesday), Lift: models.BenchPress},
		},
		map[models.Lift]float64{models.Squat: 300, models.BenchPress: 200, models.Deadlift: 400, models.OverheadPress: 130})
	return &p
}

func testLog(id, date string, lift models.Lift, reps int) models.WorkoutLogEntry {
	return models.WorkoutLogEntry{
		LogID:    id,
		Date:     date,
		Exercise: lift,
		CompletedSets: []models.CompletedSet{
			{PrescribedWeight: 175, PrescribedReps: "5", ActualReps: 5},
			{PrescribedWeight: 225, PrescribedReps: "5+", ActualReps: reps, IsAmrap: true},
		},
		TrainingMaxUsed: 270,
		LoggedAt:        time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC),
	}
}

func TestDriverFor(t *testing.T) {
	tests := []struct {
		cfg        config.DBConfig
		wantDriver string
		wantDSN    string
	}{
		{config.DBConfig{ConnectionString: "file:./wendler.db"}, "sqlite3", "file:./wendler.db"},
		{config.DBConfig{ConnectionString: "libsql://db.turso.io"}, "libsql", "libsql://db.turso.io"},
		{config.DBConfig{ConnectionString: "libsql://db.turso.io", AuthToken: "t k"}, "libsql", "libsql://db.turso.io?authToken=t+k"},
		{config.DBConfig{ConnectionString: "https://db.turso.io?tls=1", AuthToken: "x"}, "libsql", "https://db.turso.io?tls=1&authToken=x"},
	}
	for _, tt := range tests {
		driver, dsn := driverFor(tt.cfg)
		if driver != tt.wantDriver || dsn != tt.wantDSN {
			t.Errorf("driverFor(%+v) = %s %s, want %s %s", tt.cfg, driver, dsn, tt.wantDriver, tt.wantDSN)
		}
	}
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	if _, err := s.GetProfile(ctx); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("empty store: err = %v, want ErrNoProfile", err)
	}

	want := testProfile()
	if err := s.SaveProfile(ctx, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}

	// Saving again replaces, it never adds a second row.
	want.Name = "bea"
	want.TrainingMaxes[models.Squat] = 250
	if err := s.SaveProfile(ctx, want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err = s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Name != "bea" || got.TrainingMaxes[models.Squat] != 250 {
		t.Errorf("profile not replaced: %+v", got)
	}
}

func TestSaveProfile_RejectsInvalid(t *testing.T) {
	p := testProfile()
	p.Schedule = append(p.Schedule, models.ScheduleEntry{Day: models.Weekday(time.Monday), Lift: models.Deadlift})
	if err := newTestStorage(t).SaveProfile(context.Background(), p); !errors.Is(err, models.ErrDuplicateDay) {
		t.Errorf("err = %v, want ErrDuplicateDay", err)
	}
}

func TestGetProfile_CorruptRowIsDiscarded(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	if err := s.SaveProfile(ctx, testProfile()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.DB.ExecContext(ctx, `UPDATE profile SET schedule = '{not json'`); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetProfile(ctx); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("err = %v, want ErrNoProfile", err)
	}
	if ok, err := s.HasProfile(ctx); err != nil || ok {
		t.Errorf("corrupt profile still stored (ok=%v, err=%v)", ok, err)
	}
}

func TestResetProgress_CorruptRowIsDiscarded(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	if err := s.SaveProfile(ctx, testProfile()); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendLog(ctx, testLog("a", "2024-01-01", models.Squat, 8)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.DB.ExecContext(ctx, `UPDATE profile SET one_rep_maxes = 'oops'`); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ResetProgress(ctx, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("err = %v, want ErrNoProfile", err)
	}
	if ok, err := s.HasProfile(ctx); err != nil || ok {
		t.Errorf("corrupt profile survived the reset (ok=%v, err=%v)", ok, err)
	}
	logs, err := s.ListLogs(ctx)
	if err != nil || len(logs) != 1 {
		t.Errorf("logs = %v, %v; want the log kept", logs, err)
	}
}

func TestLogs(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	for _, entry := range []models.WorkoutLogEntry{
		testLog("a", "2024-01-08", models.Squat, 6),
		testLog("b", "2024-01-01", models.Squat, 8),
		testLog("c", "2024-01-03", models.BenchPress, 7),
		testLog("d", "2024-01-15", models.Squat, 3),
	} {
		if err := s.AppendLog(ctx, entry); err != nil {
			t.Fatalf("AppendLog: %v", err)
		}
	}
	if err := s.AppendLog(ctx, testLog("a", "2024-01-22", models.Squat, 1)); err == nil {
		t.Error("duplicate log id accepted")
	}

	ids := func(logs []models.WorkoutLogEntry) []string {
		var out []string
		for _, l := range logs {
			out = append(out, l.LogID)
		}
		return out
	}

	all, err := s.ListLogs(ctx)
	if err != nil {
		t.Fatalf("ListLogs: %v", err)
	}
	if diff := cmp.Diff([]string{"b", "c", "a", "d"}, ids(all)); diff != "" {
		t.Errorf("ListLogs order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testLog("b", "2024-01-01", models.Squat, 8), all[0]); diff != "" {
		t.Errorf("stored entry mismatch (-want +got):\n%s", diff)
	}

	recent, err := s.RecentLogs(ctx, models.Squat, 2)
	if err != nil {
		t.Fatalf("RecentLogs: %v", err)
	}
	if diff := cmp.Diff([]string{"d", "a"}, ids(recent)); diff != "" {
		t.Errorf("RecentLogs mismatch (-want +got):\n%s", diff)
	}
	if every, _ := s.RecentLogs(ctx, models.Squat, 0); len(every) != 3 {
		t.Errorf("RecentLogs(0) = %d entries, want 3", len(every))
	}

	between, err := s.LogsBetween(ctx, "2024-01-03", "2024-01-08")
	if err != nil {
		t.Fatalf("LogsBetween: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, ids(between)); diff != "" {
		t.Errorf("LogsBetween mismatch (-want +got):\n%s", diff)
	}

	stats, err := s.LiftStats(ctx)
	if err != nil {
		t.Fatalf("LiftStats: %v", err)
	}
	want := map[models.Lift]LiftStat{
		models.Squat:      {Sessions: 3, LastLogged: "2024-01-15"},
		models.BenchPress: {Sessions: 1, LastLogged: "2024-01-03"},
	}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("LiftStats mismatch (-want +got):\n%s", diff)
	}
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	if _, err := s.ResetProgress(ctx, time.Now()); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("reset without profile: err = %v, want ErrNoProfile", err)
	}

	if err := s.SaveProfile(ctx, testProfile()); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendLog(ctx, testLog("a", "2024-01-01", models.Squat, 8)); err != nil {
		t.Fatal(err)
	}

	reset, err := s.ResetProgress(ctx, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}

	stored, err := s.GetProfile(ctx)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if diff := cmp.Diff(reset, stored, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("stored profile mismatch (-want +got):\n%s", diff)
	}
	if stored.StartDate != "2024-05-06" || len(stored.Schedule) != 0 || stored.TrainingMaxes[models.Squat] != 0 {
		t.Errorf("profile not reset: %+v", stored)
	}
	if stored.Name != "ana" || stored.WeightDisplay != models.DisplayPlatesPerSide {
		t.Errorf("reset dropped preferences: %+v", stored)
	}

	if logs, _ := s.ListLogs(ctx); len(logs) != 0 {
		t.Errorf("log not wiped: %d entries", len(logs))
	}
}

func TestExportImport(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			src := newTestStorage(t)
			if err := src.SaveProfile(ctx, testProfile()); err != nil {
				t.Fatal(err)
			}
			for _, entry := range []models.WorkoutLogEntry{
				testLog("a", "2024-01-01", models.Squat, 8),
				testLog("b", "2024-01-03", models.BenchPress, 6),
			} {
				if err := src.AppendLog(ctx, entry); err != nil {
					t.Fatal(err)
				}
			}

			var buf bytes.Buffer
			if err := src.Export(ctx, &buf, format); err != nil {
				t.Fatalf("Export: %v", err)
			}
			dump := buf.Bytes()

			dst := newTestStorage(t)
			if err := dst.AppendLog(ctx, testLog("stale", "2023-12-01", models.Deadlift, 3)); err != nil {
				t.Fatal(err)
			}
			stats, err := dst.Import(ctx, bytes.NewReader(dump), format, false)
			if err != nil {
				t.Fatalf("Import: %v\n%s", err, dump)
			}
			if diff := cmp.Diff(ImportStats{Profile: true, Logs: 2}, stats); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}

			wantProfile, _ := src.GetProfile(ctx)
			gotProfile, err := dst.GetProfile(ctx)
			if err != nil {
				t.Fatalf("GetProfile: %v", err)
			}
			if diff := cmp.Diff(wantProfile, gotProfile); diff != "" {
				t.Errorf("profile mismatch (-want +got):\n%s", diff)
			}
			wantLogs, _ := src.ListLogs(ctx)
			gotLogs, _ := dst.ListLogs(ctx)
			if diff := cmp.Diff(wantLogs, gotLogs); diff != "" {
				t.Errorf("logs mismatch (-want +got):\n%s", diff)
			}

			// Merging the same dump again adds nothing.
			stats, err = dst.Import(ctx, bytes.NewReader(dump), format, true)
			if err != nil {
				t.Fatalf("merge Import: %v", err)
			}
			if stats.Logs != 0 || stats.Skipped != 2 {
				t.Errorf("merge stats = %+v, want everything skipped", stats)
			}
		})
	}
}

func TestImport_RejectsInvalidDump(t *testing.T) {
	dump := `
[profile]
id = "p"
start_date = "someday"
unit_system = "imperial"
weight_display = "total"
`
	s := newTestStorage(t)
	if _, err := s.Import(context.Background(), bytes.NewBufferString(dump), FormatTOML, false); !errors.Is(err, models.ErrInvalidStartDate) {
		t.Errorf("err = %v, want ErrInvalidStartDate", err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"toml": FormatTOML, "YAML": FormatYAML, "dump.yml": FormatYAML, "/tmp/x.toml": FormatTOML} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("dump.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("json accepted: %v", err)
	}
}
