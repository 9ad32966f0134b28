package remote

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Row types: one row-set per collection, keyed by user_id (and date where the
// record is day-scoped). Enumerations travel as their literal string tags.
// Row ids are server-side uuids; the domain record id, where one exists,
// rides in its own column.

type UserSettingsRow struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            string    `gorm:"size:36;not null;uniqueIndex"`
	Name              string    `gorm:"size:255"`
	City              string    `gorm:"size:255"`
	Country           string    `gorm:"size:255"`
	Latitude          float64
	Longitude         float64
	MainGoal          string `gorm:"type:text"`
	SleepTarget       float64
	Theme             string `gorm:"size:10"`
	CalculationMethod int
	UpdatedAt         time.Time
}

func (UserSettingsRow) TableName() string { return "user_settings" }

type TaskRow struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      string    `gorm:"size:36;not null;index"`
	RecordID    string    `gorm:"size:64;not null"`
	Title       string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"size:20"`
	Priority    string    `gorm:"size:20"`
	DueDate     string    `gorm:"size:30"`
	CreatedAt   string    `gorm:"size:40"`
}

func (TaskRow) TableName() string { return "tasks" }

type HabitRow struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          string    `gorm:"size:36;not null;index"`
	RecordID        string    `gorm:"size:64;not null"`
	Name            string    `gorm:"size:255"`
	Icon            string    `gorm:"size:16"`
	StreakCount     int       `gorm:"default:0"`
	LastCompletedAt string    `gorm:"size:40"`
	FrozenStreak    bool      `gorm:"default:false"`
	CreatedAt       time.Time
}

func (HabitRow) TableName() string { return "habits" }

type DailyPrayersRow struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID        string    `gorm:"size:36;not null;uniqueIndex:idx_daily_prayers_user_date"`
	Date          string    `gorm:"size:40;not null;uniqueIndex:idx_daily_prayers_user_date"`
	Fajr          bool
	FajrMasjid    bool
	Dhuhr         bool
	DhuhrMasjid   bool
	Asr           bool
	AsrMasjid     bool
	Maghrib       bool
	MaghribMasjid bool
	Isha          bool
	IshaMasjid    bool
	QadaCount     int `gorm:"default:0"`
}

func (DailyPrayersRow) TableName() string { return "daily_prayers" }

type DailyHabitsRow struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      string         `gorm:"size:36;not null;uniqueIndex:idx_daily_habits_user_date"`
	Date        string         `gorm:"size:40;not null;uniqueIndex:idx_daily_habits_user_date"`
	Completions datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

func (DailyHabitsRow) TableName() string { return "daily_habits" }

type TasbihEntryRow struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID   string    `gorm:"size:36;not null;index"`
	Position int       `gorm:"not null"`
	Dhikr    string    `gorm:"size:100"`
	Count    int       `gorm:"default:0"`
	Target   int       `gorm:"default:0"`
}

func (TasbihEntryRow) TableName() string { return "tasbih_entries" }

type QuranLogRow struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    string    `gorm:"size:36;not null;index"`
	Date      string    `gorm:"size:30"`
	PagesRead int       `gorm:"default:0"`
	Surah     string    `gorm:"size:100"`
	Notes     string    `gorm:"type:text"`
}

func (QuranLogRow) TableName() string { return "quran_logs" }

type ExamRow struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID   string         `gorm:"size:36;not null;index"`
	RecordID string         `gorm:"size:64;not null"`
	Subject  string         `gorm:"size:255"`
	Date     string         `gorm:"size:30"`
	Time     string         `gorm:"size:10"`
	Tags     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Notes    string         `gorm:"type:text"`
}

func (ExamRow) TableName() string { return "exams" }

type StudySessionRow struct {
	ID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          string    `gorm:"size:36;not null;index"`
	RecordID        string    `gorm:"size:64;not null"`
	Subject         string    `gorm:"size:255"`
	DurationMinutes int       `gorm:"default:0"`
	Timestamp       string    `gorm:"size:40;index"`
	PomodoroCount   int       `gorm:"default:0"`
}

func (StudySessionRow) TableName() string { return "study_sessions" }

type ExerciseRow struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      string    `gorm:"size:36;not null;index"`
	RecordID    string    `gorm:"size:64;not null"`
	Name        string    `gorm:"size:255"`
	Type        string    `gorm:"size:20"`
	DefaultSets int       `gorm:"default:0"`
	DefaultReps int       `gorm:"default:0"`
	IsCustom    bool      `gorm:"default:true"`
	MuscleGroup string    `gorm:"size:100"`
}

func (ExerciseRow) TableName() string { return "exercises" }

type WorkoutLogRow struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID          string         `gorm:"size:36;not null;index"`
	RecordID        string         `gorm:"size:64;not null"`
	Date            string         `gorm:"size:30;index"`
	Name            string         `gorm:"size:255"`
	Entries         datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	DurationMinutes int            `gorm:"default:0"`
	Notes           string         `gorm:"type:text"`
}

func (WorkoutLogRow) TableName() string { return "workout_logs" }

type SleepEntryRow struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID   string    `gorm:"size:36;not null;index"`
	Date     string    `gorm:"size:30;index"`
	Bedtime  string    `gorm:"size:10"`
	WakeTime string    `gorm:"size:10"`
	Duration float64
	Quality  int `gorm:"default:0"`
}

func (SleepEntryRow) TableName() string { return "sleep_entries" }
