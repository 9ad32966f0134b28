// Package remote is the sync adapter between the in-memory snapshot and the
// row-oriented hosted store. The state store only sees LoadAll and SaveAll;
// everything row-shaped stays in here.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

type Adapter struct {
	db *gorm.DB
}

func NewAdapter(db *gorm.DB) *Adapter {
	return &Adapter{db: db}
}

// Models returns the row types for AutoMigrate.
func (a *Adapter) Models() []interface{} {
	return []interface{}{
		&UserSettingsRow{},
		&TaskRow{},
		&HabitRow{},
		&DailyPrayersRow{},
		&DailyHabitsRow{},
		&TasbihEntryRow{},
		&QuranLogRow{},
		&ExamRow{},
		&StudySessionRow{},
		&ExerciseRow{},
		&WorkoutLogRow{},
		&SleepEntryRow{},
	}
}

// LoadAll fetches every collection for the user. Empty collections come back
// seeded with the defaults, so a first-time user has a usable snapshot
// without special-casing by the store. Seeded exercises are never read from
// rows: rows hold only custom entries, and the defaults are prepended here.
func (a *Adapter) LoadAll(ctx context.Context, userID string) (*domain.UserData, error) {
	db := a.db.WithContext(ctx)
	data := &domain.UserData{}

	var settingsRow UserSettingsRow
	err := db.Where("user_id = ?", userID).First(&settingsRow).Error
	switch {
	case err == nil:
		data.UserSettings = domain.UserSettings{
			Name:              settingsRow.Name,
			City:              settingsRow.City,
			Country:           settingsRow.Country,
			Latitude:          settingsRow.Latitude,
			Longitude:         settingsRow.Longitude,
			MainGoal:          settingsRow.MainGoal,
			SleepTarget:       settingsRow.SleepTarget,
			Theme:             domain.Theme(settingsRow.Theme),
			CalculationMethod: settingsRow.CalculationMethod,
		}
	case err == gorm.ErrRecordNotFound:
		data.UserSettings = domain.DefaultUserSettings()
	default:
		return nil, fmt.Errorf("load user settings: %w", err)
	}

	var taskRows []TaskRow
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&taskRows).Error; err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	data.Tasks = make([]domain.Task, 0, len(taskRows))
	for _, r := range taskRows {
		data.Tasks = append(data.Tasks, domain.Task{
			ID:          r.RecordID,
			Title:       r.Title,
			Description: r.Description,
			Status:      domain.TaskStatus(r.Status),
			Priority:    domain.TaskPriority(r.Priority),
			DueDate:     r.DueDate,
			CreatedAt:   r.CreatedAt,
		})
	}

	var habitRows []HabitRow
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").Find(&habitRows).Error; err != nil {
		return nil, fmt.Errorf("load habits: %w", err)
	}
	if len(habitRows) == 0 {
		data.Habits = domain.DefaultHabits()
	} else {
		data.Habits = make([]domain.Habit, 0, len(habitRows))
		for _, r := range habitRows {
			last := ""
			if r.LastCompletedAt != "" {
				last = timeutil.NormalizeDayKey(r.LastCompletedAt)
			}
			data.Habits = append(data.Habits, domain.Habit{
				ID:              r.RecordID,
				Name:            r.Name,
				Icon:            r.Icon,
				StreakCount:     r.StreakCount,
				LastCompletedAt: last,
				FrozenStreak:    r.FrozenStreak,
				// CompletedToday is recomputed on load, never stored.
			})
		}
	}

	var prayerRows []DailyPrayersRow
	if err := db.Where("user_id = ?", userID).Find(&prayerRows).Error; err != nil {
		return nil, fmt.Errorf("load daily prayers: %w", err)
	}
	data.DailyPrayers = make(map[string]domain.DailyPrayers, len(prayerRows))
	for _, r := range prayerRows {
		data.DailyPrayers[r.Date] = domain.DailyPrayers{
			Date:          r.Date,
			Fajr:          r.Fajr,
			FajrMasjid:    r.FajrMasjid,
			Dhuhr:         r.Dhuhr,
			DhuhrMasjid:   r.DhuhrMasjid,
			Asr:           r.Asr,
			AsrMasjid:     r.AsrMasjid,
			Maghrib:       r.Maghrib,
			MaghribMasjid: r.MaghribMasjid,
			Isha:          r.Isha,
			IshaMasjid:    r.IshaMasjid,
			QadaCount:     r.QadaCount,
		}
	}

	var habitDayRows []DailyHabitsRow
	if err := db.Where("user_id = ?", userID).Find(&habitDayRows).Error; err != nil {
		return nil, fmt.Errorf("load daily habits: %w", err)
	}
	data.DailyHabits = make(map[string]domain.DailyHabits, len(habitDayRows))
	for _, r := range habitDayRows {
		completions := map[string]domain.HabitCompletion{}
		if len(r.Completions) > 0 {
			if err := json.Unmarshal(r.Completions, &completions); err != nil {
				slog.Warn("skipping malformed habit completions row", "user_id", userID, "date", r.Date, "error", err)
				completions = map[string]domain.HabitCompletion{}
			}
		}
		data.DailyHabits[r.Date] = domain.DailyHabits{Date: r.Date, Completions: completions}
	}

	var tasbihRows []TasbihEntryRow
	if err := db.Where("user_id = ?", userID).Order("position ASC").Find(&tasbihRows).Error; err != nil {
		return nil, fmt.Errorf("load tasbih entries: %w", err)
	}
	if len(tasbihRows) == 0 {
		data.TasbihEntries = domain.DefaultTasbih()
	} else {
		data.TasbihEntries = make([]domain.TasbihEntry, 0, len(tasbihRows))
		for _, r := range tasbihRows {
			data.TasbihEntries = append(data.TasbihEntries, domain.TasbihEntry{
				Dhikr:  r.Dhikr,
				Count:  r.Count,
				Target: r.Target,
			})
		}
	}

	var quranRows []QuranLogRow
	if err := db.Where("user_id = ?", userID).Order("date DESC").Find(&quranRows).Error; err != nil {
		return nil, fmt.Errorf("load quran logs: %w", err)
	}
	data.QuranLogs = make([]domain.QuranLog, 0, len(quranRows))
	for _, r := range quranRows {
		data.QuranLogs = append(data.QuranLogs, domain.QuranLog{
			Date:      r.Date,
			PagesRead: r.PagesRead,
			Surah:     r.Surah,
			Notes:     r.Notes,
		})
	}

	var examRows []ExamRow
	if err := db.Where("user_id = ?", userID).Order("date ASC").Find(&examRows).Error; err != nil {
		return nil, fmt.Errorf("load exams: %w", err)
	}
	if len(examRows) == 0 {
		data.Exams = []domain.Exam{domain.DefaultExam()}
	} else {
		data.Exams = make([]domain.Exam, 0, len(examRows))
		for _, r := range examRows {
			var tags []string
			if len(r.Tags) > 0 {
				_ = json.Unmarshal(r.Tags, &tags)
			}
			data.Exams = append(data.Exams, domain.Exam{
				ID:      r.RecordID,
				Subject: r.Subject,
				Date:    r.Date,
				Time:    r.Time,
				Tags:    tags,
				Notes:   r.Notes,
			})
		}
	}

	var studyRows []StudySessionRow
	if err := db.Where("user_id = ?", userID).Order("timestamp DESC").Find(&studyRows).Error; err != nil {
		return nil, fmt.Errorf("load study sessions: %w", err)
	}
	data.StudySessions = make([]domain.StudySession, 0, len(studyRows))
	for _, r := range studyRows {
		data.StudySessions = append(data.StudySessions, domain.StudySession{
			ID:              r.RecordID,
			Subject:         r.Subject,
			DurationMinutes: r.DurationMinutes,
			Timestamp:       r.Timestamp,
			PomodoroCount:   r.PomodoroCount,
		})
	}

	var exerciseRows []ExerciseRow
	if err := db.Where("user_id = ?", userID).Find(&exerciseRows).Error; err != nil {
		return nil, fmt.Errorf("load exercises: %w", err)
	}
	data.Exercises = domain.DefaultExercises()
	for _, r := range exerciseRows {
		data.Exercises = append(data.Exercises, domain.Exercise{
			ID:          r.RecordID,
			Name:        r.Name,
			Type:        domain.ExerciseType(r.Type),
			DefaultSets: r.DefaultSets,
			DefaultReps: r.DefaultReps,
			IsCustom:    true,
			MuscleGroup: r.MuscleGroup,
		})
	}

	var workoutRows []WorkoutLogRow
	if err := db.Where("user_id = ?", userID).Order("date DESC").Find(&workoutRows).Error; err != nil {
		return nil, fmt.Errorf("load workout logs: %w", err)
	}
	data.WorkoutLogs = make([]domain.WorkoutLog, 0, len(workoutRows))
	for _, r := range workoutRows {
		var entries []domain.WorkoutLogEntry
		if len(r.Entries) > 0 {
			_ = json.Unmarshal(r.Entries, &entries)
		}
		data.WorkoutLogs = append(data.WorkoutLogs, domain.WorkoutLog{
			ID:              r.RecordID,
			Date:            r.Date,
			Name:            r.Name,
			Entries:         entries,
			DurationMinutes: r.DurationMinutes,
			Notes:           r.Notes,
		})
	}

	var sleepRows []SleepEntryRow
	if err := db.Where("user_id = ?", userID).Order("date DESC").Find(&sleepRows).Error; err != nil {
		return nil, fmt.Errorf("load sleep entries: %w", err)
	}
	data.SleepEntries = make([]domain.SleepEntry, 0, len(sleepRows))
	for _, r := range sleepRows {
		data.SleepEntries = append(data.SleepEntries, domain.SleepEntry{
			Date:     r.Date,
			Bedtime:  r.Bedtime,
			WakeTime: r.WakeTime,
			Duration: r.Duration,
			Quality:  r.Quality,
		})
	}

	return data, nil
}

// SaveAll idempotently replaces remote state for every collection with the
// supplied snapshot: delete-then-insert per collection, per-day upsert for
// the day-keyed records. seq identifies the save for tracing; completions
// are applied in arrival order regardless of it.
func (a *Adapter) SaveAll(ctx context.Context, userID string, data *domain.UserData, seq uint64) error {
	db := a.db.WithContext(ctx)
	slog.Debug("saving snapshot", "action", "save_all", "user_id", userID, "sync_seq", seq)

	settings := UserSettingsRow{
		UserID:            userID,
		Name:              data.UserSettings.Name,
		City:              data.UserSettings.City,
		Country:           data.UserSettings.Country,
		Latitude:          data.UserSettings.Latitude,
		Longitude:         data.UserSettings.Longitude,
		MainGoal:          data.UserSettings.MainGoal,
		SleepTarget:       data.UserSettings.SleepTarget,
		Theme:             string(data.UserSettings.Theme),
		CalculationMethod: data.UserSettings.CalculationMethod,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "city", "country", "latitude", "longitude",
			"main_goal", "sleep_target", "theme", "calculation_method", "updated_at",
		}),
	}).Create(&settings).Error
	if err != nil {
		return fmt.Errorf("save user settings: %w", err)
	}

	taskRows := make([]TaskRow, 0, len(data.Tasks))
	for _, t := range data.Tasks {
		taskRows = append(taskRows, TaskRow{
			UserID:      userID,
			RecordID:    t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			DueDate:     t.DueDate,
			CreatedAt:   t.CreatedAt,
		})
	}
	if err := replaceCollection(db, userID, &TaskRow{}, taskRows); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}

	habitRows := make([]HabitRow, 0, len(data.Habits))
	for _, h := range data.Habits {
		habitRows = append(habitRows, HabitRow{
			UserID:          userID,
			RecordID:        h.ID,
			Name:            h.Name,
			Icon:            h.Icon,
			StreakCount:     h.StreakCount,
			LastCompletedAt: h.LastCompletedAt,
			FrozenStreak:    h.FrozenStreak,
		})
	}
	if err := replaceCollection(db, userID, &HabitRow{}, habitRows); err != nil {
		return fmt.Errorf("save habits: %w", err)
	}

	for key, rec := range data.DailyPrayers {
		row := DailyPrayersRow{
			UserID:        userID,
			Date:          key,
			Fajr:          rec.Fajr,
			FajrMasjid:    rec.FajrMasjid,
			Dhuhr:         rec.Dhuhr,
			DhuhrMasjid:   rec.DhuhrMasjid,
			Asr:           rec.Asr,
			AsrMasjid:     rec.AsrMasjid,
			Maghrib:       rec.Maghrib,
			MaghribMasjid: rec.MaghribMasjid,
			Isha:          rec.Isha,
			IshaMasjid:    rec.IshaMasjid,
			QadaCount:     rec.QadaCount,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fajr", "fajr_masjid", "dhuhr", "dhuhr_masjid", "asr", "asr_masjid",
				"maghrib", "maghrib_masjid", "isha", "isha_masjid", "qada_count",
			}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("save daily prayers %q: %w", key, err)
		}
	}

	for key, day := range data.DailyHabits {
		raw, err := json.Marshal(day.Completions)
		if err != nil {
			return fmt.Errorf("encode habit completions %q: %w", key, err)
		}
		row := DailyHabitsRow{
			UserID:      userID,
			Date:        day.Date,
			Completions: datatypes.JSON(raw),
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"completions"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("save daily habits %q: %w", key, err)
		}
	}

	tasbihRows := make([]TasbihEntryRow, 0, len(data.TasbihEntries))
	for i, e := range data.TasbihEntries {
		tasbihRows = append(tasbihRows, TasbihEntryRow{
			UserID:   userID,
			Position: i,
			Dhikr:    e.Dhikr,
			Count:    e.Count,
			Target:   e.Target,
		})
	}
	if err := replaceCollection(db, userID, &TasbihEntryRow{}, tasbihRows); err != nil {
		return fmt.Errorf("save tasbih entries: %w", err)
	}

	quranRows := make([]QuranLogRow, 0, len(data.QuranLogs))
	for _, l := range data.QuranLogs {
		quranRows = append(quranRows, QuranLogRow{
			UserID:    userID,
			Date:      l.Date,
			PagesRead: l.PagesRead,
			Surah:     l.Surah,
			Notes:     l.Notes,
		})
	}
	if err := replaceCollection(db, userID, &QuranLogRow{}, quranRows); err != nil {
		return fmt.Errorf("save quran logs: %w", err)
	}

	examRows := make([]ExamRow, 0, len(data.Exams))
	for _, e := range data.Exams {
		tags, err := json.Marshal(e.Tags)
		if err != nil {
			return fmt.Errorf("encode exam tags: %w", err)
		}
		examRows = append(examRows, ExamRow{
			UserID:   userID,
			RecordID: e.ID,
			Subject:  e.Subject,
			Date:     e.Date,
			Time:     e.Time,
			Tags:     datatypes.JSON(tags),
			Notes:    e.Notes,
		})
	}
	if err := replaceCollection(db, userID, &ExamRow{}, examRows); err != nil {
		return fmt.Errorf("save exams: %w", err)
	}

	studyRows := make([]StudySessionRow, 0, len(data.StudySessions))
	for _, sess := range data.StudySessions {
		studyRows = append(studyRows, StudySessionRow{
			UserID:          userID,
			RecordID:        sess.ID,
			Subject:         sess.Subject,
			DurationMinutes: sess.DurationMinutes,
			Timestamp:       sess.Timestamp,
			PomodoroCount:   sess.PomodoroCount,
		})
	}
	if err := replaceCollection(db, userID, &StudySessionRow{}, studyRows); err != nil {
		return fmt.Errorf("save study sessions: %w", err)
	}

	// Seeded exercises stay in code; only custom entries are persisted.
	exerciseRows := make([]ExerciseRow, 0, len(data.Exercises))
	for _, e := range data.Exercises {
		if !e.IsCustom {
			continue
		}
		exerciseRows = append(exerciseRows, ExerciseRow{
			UserID:      userID,
			RecordID:    e.ID,
			Name:        e.Name,
			Type:        string(e.Type),
			DefaultSets: e.DefaultSets,
			DefaultReps: e.DefaultReps,
			IsCustom:    true,
			MuscleGroup: e.MuscleGroup,
		})
	}
	if err := replaceCollection(db, userID, &ExerciseRow{}, exerciseRows); err != nil {
		return fmt.Errorf("save exercises: %w", err)
	}

	workoutRows := make([]WorkoutLogRow, 0, len(data.WorkoutLogs))
	for _, l := range data.WorkoutLogs {
		entries, err := json.Marshal(l.Entries)
		if err != nil {
			return fmt.Errorf("encode workout entries: %w", err)
		}
		workoutRows = append(workoutRows, WorkoutLogRow{
			UserID:          userID,
			RecordID:        l.ID,
			Date:            l.Date,
			Name:            l.Name,
			Entries:         datatypes.JSON(entries),
			DurationMinutes: l.DurationMinutes,
			Notes:           l.Notes,
		})
	}
	if err := replaceCollection(db, userID, &WorkoutLogRow{}, workoutRows); err != nil {
		return fmt.Errorf("save workout logs: %w", err)
	}

	sleepRows := make([]SleepEntryRow, 0, len(data.SleepEntries))
	for _, e := range data.SleepEntries {
		sleepRows = append(sleepRows, SleepEntryRow{
			UserID:   userID,
			Date:     e.Date,
			Bedtime:  e.Bedtime,
			WakeTime: e.WakeTime,
			Duration: e.Duration,
			Quality:  e.Quality,
		})
	}
	if err := replaceCollection(db, userID, &SleepEntryRow{}, sleepRows); err != nil {
		return fmt.Errorf("save sleep entries: %w", err)
	}

	return nil
}

// replaceCollection swaps a user's row-set for the given model inside one
// transaction, so a reader never observes the emptied middle state.
func replaceCollection[R any](db *gorm.DB, userID string, model *R, rows []R) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
