package state

import (
	"github.com/lifeos-app/lifeos-backend/internal/domain"
	"github.com/lifeos-app/lifeos-backend/internal/timeutil"
)

// Entity mutators. Each one rebuilds the touched collection under the lock,
// then triggers an asynchronous full-snapshot sync. Input is trusted: field
// validation happens at the call boundary, not here.

func (s *Store) AddTask(t domain.Task) {
	s.mu.Lock()
	data := *s.data
	data.Tasks = append(append([]domain.Task{}, s.data.Tasks...), t)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// TaskUpdate is a partial task mutation.
type TaskUpdate struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *domain.TaskStatus   `json:"status"`
	Priority    *domain.TaskPriority `json:"priority"`
	DueDate     *string              `json:"dueDate"`
}

func (s *Store) UpdateTask(id string, u TaskUpdate) bool {
	s.mu.Lock()
	found := false
	tasks := make([]domain.Task, len(s.data.Tasks))
	for i, t := range s.data.Tasks {
		if t.ID == id {
			found = true
			if u.Title != nil {
				t.Title = *u.Title
			}
			if u.Description != nil {
				t.Description = *u.Description
			}
			if u.Status != nil {
				t.Status = *u.Status
			}
			if u.Priority != nil {
				t.Priority = *u.Priority
			}
			if u.DueDate != nil {
				t.DueDate = *u.DueDate
			}
		}
		tasks[i] = t
	}
	data := *s.data
	data.Tasks = tasks
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return found
}

func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	tasks := make([]domain.Task, 0, len(s.data.Tasks))
	for _, t := range s.data.Tasks {
		if t.ID != id {
			tasks = append(tasks, t)
		}
	}
	data := *s.data
	data.Tasks = tasks
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddSleepEntry(e domain.SleepEntry) {
	s.mu.Lock()
	data := *s.data
	data.SleepEntries = append(append([]domain.SleepEntry{}, s.data.SleepEntries...), e)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// PrayersUpdate is a partial daily-prayers mutation; boolean flags are
// flipped in place on the day's record.
type PrayersUpdate struct {
	Fajr          *bool `json:"fajr"`
	FajrMasjid    *bool `json:"fajrMasjid"`
	Dhuhr         *bool `json:"dhuhr"`
	DhuhrMasjid   *bool `json:"dhuhrMasjid"`
	Asr           *bool `json:"asr"`
	AsrMasjid     *bool `json:"asrMasjid"`
	Maghrib       *bool `json:"maghrib"`
	MaghribMasjid *bool `json:"maghribMasjid"`
	Isha          *bool `json:"isha"`
	IshaMasjid    *bool `json:"ishaMasjid"`
	QadaCount     *int  `json:"qadaCount"`
}

// UpdatePrayers merges the update into the record for the given day,
// creating the record if the day has not been visited yet. The key is
// normalized before lookup so ISO-date input lands on the same record.
func (s *Store) UpdatePrayers(date string, u PrayersUpdate) domain.DailyPrayers {
	key := timeutil.NormalizeDayKey(date)

	s.mu.Lock()
	rec, ok := s.data.DailyPrayers[key]
	if !ok {
		rec = domain.DailyPrayers{Date: key}
	}
	if u.Fajr != nil {
		rec.Fajr = *u.Fajr
	}
	if u.FajrMasjid != nil {
		rec.FajrMasjid = *u.FajrMasjid
	}
	if u.Dhuhr != nil {
		rec.Dhuhr = *u.Dhuhr
	}
	if u.DhuhrMasjid != nil {
		rec.DhuhrMasjid = *u.DhuhrMasjid
	}
	if u.Asr != nil {
		rec.Asr = *u.Asr
	}
	if u.AsrMasjid != nil {
		rec.AsrMasjid = *u.AsrMasjid
	}
	if u.Maghrib != nil {
		rec.Maghrib = *u.Maghrib
	}
	if u.MaghribMasjid != nil {
		rec.MaghribMasjid = *u.MaghribMasjid
	}
	if u.Isha != nil {
		rec.Isha = *u.Isha
	}
	if u.IshaMasjid != nil {
		rec.IshaMasjid = *u.IshaMasjid
	}
	if u.QadaCount != nil {
		rec.QadaCount = *u.QadaCount
		if rec.QadaCount < 0 {
			rec.QadaCount = 0
		}
	}
	rec.Date = key

	prayers := make(map[string]domain.DailyPrayers, len(s.data.DailyPrayers)+1)
	for k, v := range s.data.DailyPrayers {
		prayers[k] = v
	}
	prayers[key] = rec

	data := *s.data
	data.DailyPrayers = prayers
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return rec
}

// IncrementTasbih bumps the counter at the given position of the fixed
// four-entry dhikr list. Out-of-range indexes are ignored.
func (s *Store) IncrementTasbih(index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.data.TasbihEntries) {
		s.mu.Unlock()
		return
	}
	entries := append([]domain.TasbihEntry{}, s.data.TasbihEntries...)
	entries[index].Count++
	data := *s.data
	data.TasbihEntries = entries
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) ResetTasbih(index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.data.TasbihEntries) {
		s.mu.Unlock()
		return
	}
	entries := append([]domain.TasbihEntry{}, s.data.TasbihEntries...)
	entries[index].Count = 0
	data := *s.data
	data.TasbihEntries = entries
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddQuranLog(l domain.QuranLog) {
	s.mu.Lock()
	data := *s.data
	data.QuranLogs = append(append([]domain.QuranLog{}, s.data.QuranLogs...), l)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddExam(e domain.Exam) {
	s.mu.Lock()
	data := *s.data
	data.Exams = append(append([]domain.Exam{}, s.data.Exams...), e)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// ExamUpdate is a partial exam mutation.
type ExamUpdate struct {
	Subject *string   `json:"subject"`
	Date    *string   `json:"date"`
	Time    *string   `json:"time"`
	Tags    *[]string `json:"tags"`
	Notes   *string   `json:"notes"`
}

func (s *Store) UpdateExam(id string, u ExamUpdate) bool {
	s.mu.Lock()
	found := false
	exams := make([]domain.Exam, len(s.data.Exams))
	for i, e := range s.data.Exams {
		if e.ID == id {
			found = true
			if u.Subject != nil {
				e.Subject = *u.Subject
			}
			if u.Date != nil {
				e.Date = *u.Date
			}
			if u.Time != nil {
				e.Time = *u.Time
			}
			if u.Tags != nil {
				e.Tags = *u.Tags
			}
			if u.Notes != nil {
				e.Notes = *u.Notes
			}
		}
		exams[i] = e
	}
	data := *s.data
	data.Exams = exams
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return found
}

func (s *Store) DeleteExam(id string) {
	s.mu.Lock()
	exams := make([]domain.Exam, 0, len(s.data.Exams))
	for _, e := range s.data.Exams {
		if e.ID != id {
			exams = append(exams, e)
		}
	}
	data := *s.data
	data.Exams = exams
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddStudySession(sess domain.StudySession) {
	s.mu.Lock()
	data := *s.data
	data.StudySessions = append(append([]domain.StudySession{}, s.data.StudySessions...), sess)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddExercise(e domain.Exercise) {
	s.mu.Lock()
	data := *s.data
	data.Exercises = append(append([]domain.Exercise{}, s.data.Exercises...), e)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// ExerciseUpdate is a partial exercise mutation.
type ExerciseUpdate struct {
	Name        *string              `json:"name"`
	Type        *domain.ExerciseType `json:"type"`
	DefaultSets *int                 `json:"defaultSets"`
	DefaultReps *int                 `json:"defaultReps"`
	MuscleGroup *string              `json:"muscleGroup"`
}

func (s *Store) UpdateExercise(id string, u ExerciseUpdate) bool {
	s.mu.Lock()
	found := false
	exercises := make([]domain.Exercise, len(s.data.Exercises))
	for i, e := range s.data.Exercises {
		if e.ID == id {
			found = true
			if u.Name != nil {
				e.Name = *u.Name
			}
			if u.Type != nil {
				e.Type = *u.Type
			}
			if u.DefaultSets != nil {
				e.DefaultSets = *u.DefaultSets
			}
			if u.DefaultReps != nil {
				e.DefaultReps = *u.DefaultReps
			}
			if u.MuscleGroup != nil {
				e.MuscleGroup = *u.MuscleGroup
			}
		}
		exercises[i] = e
	}
	data := *s.data
	data.Exercises = exercises
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return found
}

func (s *Store) DeleteExercise(id string) {
	s.mu.Lock()
	exercises := make([]domain.Exercise, 0, len(s.data.Exercises))
	for _, e := range s.data.Exercises {
		if e.ID != id {
			exercises = append(exercises, e)
		}
	}
	data := *s.data
	data.Exercises = exercises
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

func (s *Store) AddWorkoutLog(l domain.WorkoutLog) {
	s.mu.Lock()
	data := *s.data
	data.WorkoutLogs = append(append([]domain.WorkoutLog{}, s.data.WorkoutLogs...), l)
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}

// WorkoutLogUpdate is a partial workout-log mutation.
type WorkoutLogUpdate struct {
	Name            *string `json:"name"`
	DurationMinutes *int    `json:"durationMinutes"`
	Notes           *string `json:"notes"`
}

func (s *Store) UpdateWorkoutLog(id string, u WorkoutLogUpdate) bool {
	s.mu.Lock()
	found := false
	logs := make([]domain.WorkoutLog, len(s.data.WorkoutLogs))
	for i, l := range s.data.WorkoutLogs {
		if l.ID == id {
			found = true
			if u.Name != nil {
				l.Name = *u.Name
			}
			if u.DurationMinutes != nil {
				l.DurationMinutes = *u.DurationMinutes
			}
			if u.Notes != nil {
				l.Notes = *u.Notes
			}
		}
		logs[i] = l
	}
	data := *s.data
	data.WorkoutLogs = logs
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
	return found
}

func (s *Store) DeleteWorkoutLog(id string) {
	s.mu.Lock()
	logs := make([]domain.WorkoutLog, 0, len(s.data.WorkoutLogs))
	for _, l := range s.data.WorkoutLogs {
		if l.ID != id {
			logs = append(logs, l)
		}
	}
	data := *s.data
	data.WorkoutLogs = logs
	s.data = &data
	s.mu.Unlock()
	s.syncAsync()
}
