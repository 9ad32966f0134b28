// Package domain defines the plain records the state store owns while a user
// is loaded. The remote sync adapter is their durable owner; nothing here
// carries persistence concerns.
package domain

// Theme and enum tags travel on the wire as their literal strings.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type UserSettings struct {
	Name              string  `json:"name"`
	City              string  `json:"city"`
	Country           string  `json:"country"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	MainGoal          string  `json:"mainGoal"`
	SleepTarget       float64 `json:"sleepTarget"`
	Theme             Theme   `json:"theme"`
	CalculationMethod int     `json:"calculationMethod"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityDeen   TaskPriority = "deen"
	PriorityDunya  TaskPriority = "dunya"
	PrioritySchool TaskPriority = "school"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     string       `json:"dueDate,omitempty"`
	CreatedAt   string       `json:"createdAt"`
}

type Habit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	StreakCount int    `json:"streakCount"`
	// LastCompletedAt is a canonical day key, or "" when never completed.
	LastCompletedAt string `json:"lastCompletedAt,omitempty"`
	FrozenStreak    bool   `json:"frozenStreak"`
	// CompletedToday is derived from the per-day completion ledger on every
	// load; it is never trusted from storage.
	CompletedToday bool `json:"completedToday"`
}

// HabitCompletion is one entry in a day's completion ledger.
type HabitCompletion struct {
	HabitID     string `json:"habitId"`
	HabitName   string `json:"habitName"`
	CompletedAt string `json:"completedAt"`
}

// DailyHabits is the per-day habit completion ledger, keyed by habit id.
type DailyHabits struct {
	Date        string                     `json:"date"` // ISO date, remote-facing
	Completions map[string]HabitCompletion `json:"completions"`
}

type DailyPrayers struct {
	Date          string `json:"date"`
	Fajr          bool   `json:"fajr"`
	FajrMasjid    bool   `json:"fajrMasjid"`
	Dhuhr         bool   `json:"dhuhr"`
	DhuhrMasjid   bool   `json:"dhuhrMasjid"`
	Asr           bool   `json:"asr"`
	AsrMasjid     bool   `json:"asrMasjid"`
	Maghrib       bool   `json:"maghrib"`
	MaghribMasjid bool   `json:"maghribMasjid"`
	Isha          bool   `json:"isha"`
	IshaMasjid    bool   `json:"ishaMasjid"`
	QadaCount     int    `json:"qadaCount"`
}

type Exam struct {
	ID      string   `json:"id"`
	Subject string   `json:"subject"`
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Tags    []string `json:"tags"`
	Notes   string   `json:"notes,omitempty"`
}

type StudySession struct {
	ID              string `json:"id"`
	Subject         string `json:"subject"`
	DurationMinutes int    `json:"durationMinutes"`
	Timestamp       string `json:"timestamp"` // RFC 3339
	PomodoroCount   int    `json:"pomodoroCount"`
}

type ExerciseType string

const (
	ExerciseStrength    ExerciseType = "strength"
	ExerciseCardio      ExerciseType = "cardio"
	ExerciseFlexibility ExerciseType = "flexibility"
	ExerciseSports      ExerciseType = "sports"
)

type Exercise struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        ExerciseType `json:"type"`
	DefaultSets int          `json:"defaultSets"`
	DefaultReps int          `json:"defaultReps"`
	IsCustom    bool         `json:"isCustom"`
	MuscleGroup string       `json:"muscleGroup,omitempty"`
}

type WorkoutSet struct {
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"` // "kg" or "lbs"
	Completed bool    `json:"completed"`
}

type WorkoutLogEntry struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	Sets         []WorkoutSet `json:"sets"`
}

type WorkoutLog struct {
	ID              string            `json:"id"`
	Date            string            `json:"date"` // ISO date
	Name            string            `json:"name"`
	Entries         []WorkoutLogEntry `json:"entries"`
	DurationMinutes int               `json:"durationMinutes"`
	Notes           string            `json:"notes,omitempty"`
}

// ActiveWorkoutSession is the ephemeral in-progress workout. It is never
// persisted remotely; finishing converts it into a WorkoutLog.
type ActiveWorkoutSession struct {
	IsActive         bool              `json:"isActive"`
	WorkoutName      string            `json:"workoutName"`
	Entries          []WorkoutLogEntry `json:"entries"`
	StartedAtEpochMs int64             `json:"startedAtEpochMs"`
}

// WorkoutSchedule assigns a named workout and its exercise IDs to a weekday,
// 0 being Sunday. Like the active session it is session-local and never
// persisted remotely.
type WorkoutSchedule struct {
	DayOfWeek int      `json:"dayOfWeek"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

type SleepEntry struct {
	Date     string  `json:"date"`
	Bedtime  string  `json:"bedtime"`
	WakeTime string  `json:"wakeTime"`
	Duration float64 `json:"duration"` // hours
	Quality  int     `json:"quality"`  // 1..5
}

type TasbihEntry struct {
	Dhikr  string `json:"dhikr"`
	Count  int    `json:"count"`
	Target int    `json:"target"`
}

type QuranLog struct {
	Date      string `json:"date"`
	PagesRead int    `json:"pagesRead"`
	Surah     string `json:"surah,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// DailyScore is the 0-100 composite for the current day.
type DailyScore struct {
	Prayer    int `json:"prayer"`
	Academics int `json:"academics"`
	Exercise  int `json:"exercise"`
	Habits    int `json:"habits"`
	Total     int `json:"total"`
}

// UserData is the load/save unit the remote adapter exchanges with the store:
// every collection, in memory shape.
type UserData struct {
	UserSettings  UserSettings            `json:"userSettings"`
	Tasks         []Task                  `json:"tasks"`
	Habits        []Habit                 `json:"habits"`
	DailyHabits   map[string]DailyHabits  `json:"dailyHabits"`
	DailyPrayers  map[string]DailyPrayers `json:"dailyPrayers"`
	SleepEntries  []SleepEntry            `json:"sleepEntries"`
	TasbihEntries []TasbihEntry           `json:"tasbihEntries"`
	QuranLogs     []QuranLog              `json:"quranLogs"`
	Exams         []Exam                  `json:"exams"`
	StudySessions []StudySession          `json:"studySessions"`
	Exercises     []Exercise              `json:"exercises"`
	WorkoutLogs   []WorkoutLog            `json:"workoutLogs"`
}
