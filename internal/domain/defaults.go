package domain

// Seeded defaults. The remote adapter substitutes these whenever the
// corresponding collection is empty, so a first-time user gets a populated
// snapshot without special-casing in the store. Exercise ids "1".."8" are
// reserved for the seeds; custom exercises must never reuse them.

func DefaultExercises() []Exercise {
	return []Exercise{
		{ID: "1", Name: "Push-ups", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 15, MuscleGroup: "Chest"},
		{ID: "2", Name: "Squats", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 20, MuscleGroup: "Legs"},
		{ID: "3", Name: "Pull-ups", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 8, MuscleGroup: "Back"},
		{ID: "4", Name: "Plank", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 60, MuscleGroup: "Core"},
		{ID: "5", Name: "Running", Type: ExerciseCardio, DefaultSets: 1, DefaultReps: 30},
		{ID: "6", Name: "Burpees", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 10, MuscleGroup: "Full Body"},
		{ID: "7", Name: "Lunges", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 12, MuscleGroup: "Legs"},
		{ID: "8", Name: "Dips", Type: ExerciseStrength, DefaultSets: 3, DefaultReps: 12, MuscleGroup: "Triceps"},
	}
}

func DefaultHabits() []Habit {
	return []Habit{
		{ID: "h1", Name: "Morning Walk", Icon: "🚶"},
		{ID: "h2", Name: "Read Quran", Icon: "📖"},
		{ID: "h3", Name: "Drink 8 Glasses", Icon: "💧"},
		{ID: "h4", Name: "No Social Media", Icon: "📵"},
	}
}

func DefaultTasbih() []TasbihEntry {
	return []TasbihEntry{
		{Dhikr: "SubhanAllah", Target: 33},
		{Dhikr: "Alhamdulillah", Target: 33},
		{Dhikr: "Allahu Akbar", Target: 34},
		{Dhikr: "Astaghfirullah", Target: 100},
	}
}

// SeedExamID identifies the one immutable seeded exam.
const SeedExamID = "ssc-main"

func DefaultExam() Exam {
	return Exam{
		ID:      SeedExamID,
		Subject: "SSC Exam",
		Date:    "2026-04-21",
		Time:    "09:00",
		Tags:    []string{"main", "high-priority"},
		Notes:   "Main SSC Examination",
	}
}

func DefaultUserSettings() UserSettings {
	return UserSettings{
		City:        "London",
		Country:     "UK",
		Latitude:    51.5074,
		Longitude:   -0.1278,
		SleepTarget: 8,
		Theme:       ThemeSystem,
	}
}

// DefaultUserData assembles a complete first-run snapshot.
func DefaultUserData() *UserData {
	return &UserData{
		UserSettings:  DefaultUserSettings(),
		Tasks:         []Task{},
		Habits:        DefaultHabits(),
		DailyHabits:   map[string]DailyHabits{},
		DailyPrayers:  map[string]DailyPrayers{},
		SleepEntries:  []SleepEntry{},
		TasbihEntries: DefaultTasbih(),
		QuranLogs:     []QuranLog{},
		Exams:         []Exam{DefaultExam()},
		StudySessions: []StudySession{},
		Exercises:     DefaultExercises(),
		WorkoutLogs:   []WorkoutLog{},
	}
}
