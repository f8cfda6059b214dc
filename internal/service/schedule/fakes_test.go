package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fichaje-hq/fichaje-backend-go/internal/domain/schedule"
)

// In-memory repositories for service tests.

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeFixedScheduleRepo struct {
	schedules map[string]schedule.FixedSchedule
}

func newFakeFixedScheduleRepo() *fakeFixedScheduleRepo {
	return &fakeFixedScheduleRepo{schedules: make(map[string]schedule.FixedSchedule)}
}

func (r *fakeFixedScheduleRepo) Create(_ context.Context, fs schedule.FixedSchedule) (schedule.FixedSchedule, error) {
	for _, existing := range r.schedules {
		if existing.EmployeeID == fs.EmployeeID && existing.DayOfWeek == fs.DayOfWeek {
			return schedule.FixedSchedule{}, schedule.ErrFixedScheduleExists
		}
	}
	fs.ID = uuid.NewString()
	fs.CreatedAt = time.Now()
	fs.UpdatedAt = fs.CreatedAt
	r.schedules[fs.ID] = fs
	return fs, nil
}

func (r *fakeFixedScheduleRepo) GetByID(_ context.Context, id string) (schedule.FixedSchedule, error) {
	fs, ok := r.schedules[id]
	if !ok {
		return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
	}
	return fs, nil
}

func (r *fakeFixedScheduleRepo) GetByEmployee(_ context.Context, employeeID string) ([]schedule.FixedSchedule, error) {
	var result []schedule.FixedSchedule
	for day := 0; day <= 6; day++ {
		for _, fs := range r.schedules {
			if fs.EmployeeID == employeeID && fs.DayOfWeek == day {
				result = append(result, fs)
			}
		}
	}
	return result, nil
}

func (r *fakeFixedScheduleRepo) GetByEmployeeAndDay(_ context.Context, employeeID string, dayOfWeek int) (schedule.FixedSchedule, error) {
	for _, fs := range r.schedules {
		if fs.EmployeeID == employeeID && fs.DayOfWeek == dayOfWeek {
			return fs, nil
		}
	}
	return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
}

func (r *fakeFixedScheduleRepo) Update(_ context.Context, fs schedule.FixedSchedule) (schedule.FixedSchedule, error) {
	if _, ok := r.schedules[fs.ID]; !ok {
		return schedule.FixedSchedule{}, schedule.ErrFixedScheduleNotFound
	}
	fs.UpdatedAt = time.Now()
	r.schedules[fs.ID] = fs
	return fs, nil
}

func (r *fakeFixedScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.schedules[id]; !ok {
		return schedule.ErrFixedScheduleNotFound
	}
	delete(r.schedules, id)
	return nil
}

type fakeTemplateRepo struct {
	templates map[string]schedule.Template
	days      *fakeTemplateDayRepo
}

func newFakeTemplateRepo(days *fakeTemplateDayRepo) *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[string]schedule.Template), days: days}
}

func (r *fakeTemplateRepo) Create(_ context.Context, t schedule.Template) (schedule.Template, error) {
	for _, existing := range r.templates {
		if existing.Name == t.Name {
			return schedule.Template{}, schedule.ErrTemplateNameExists
		}
	}
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.templates[t.ID] = t
	return t, nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id string) (schedule.Template, error) {
	t, ok := r.templates[id]
	if !ok {
		return schedule.Template{}, schedule.ErrTemplateNotFound
	}
	if r.days != nil {
		t.Days, _ = r.days.GetByTemplate(ctx, id)
	}
	return t, nil
}

func (r *fakeTemplateRepo) List(_ context.Context, activeOnly bool) ([]schedule.Template, error) {
	var result []schedule.Template
	for _, t := range r.templates {
		if activeOnly && !t.IsActive {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, t schedule.Template) (schedule.Template, error) {
	if _, ok := r.templates[t.ID]; !ok {
		return schedule.Template{}, schedule.ErrTemplateNotFound
	}
	t.UpdatedAt = time.Now()
	r.templates[t.ID] = t
	return t, nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.templates[id]; !ok {
		return schedule.ErrTemplateNotFound
	}
	delete(r.templates, id)
	return nil
}

type fakeTemplateDayRepo struct {
	days map[string]schedule.TemplateDay
}

func newFakeTemplateDayRepo() *fakeTemplateDayRepo {
	return &fakeTemplateDayRepo{days: make(map[string]schedule.TemplateDay)}
}

func (r *fakeTemplateDayRepo) Create(_ context.Context, td schedule.TemplateDay) (schedule.TemplateDay, error) {
	for _, existing := range r.days {
		if existing.TemplateID == td.TemplateID && existing.DayOfWeek == td.DayOfWeek {
			return schedule.TemplateDay{}, schedule.ErrTemplateDayExists
		}
	}
	td.ID = uuid.NewString()
	td.CreatedAt = time.Now()
	td.UpdatedAt = td.CreatedAt
	r.days[td.ID] = td
	return td, nil
}

func (r *fakeTemplateDayRepo) GetByID(_ context.Context, id string) (schedule.TemplateDay, error) {
	td, ok := r.days[id]
	if !ok {
		return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
	}
	return td, nil
}

func (r *fakeTemplateDayRepo) GetByTemplate(_ context.Context, templateID string) ([]schedule.TemplateDay, error) {
	var result []schedule.TemplateDay
	for day := 0; day <= 6; day++ {
		for _, td := range r.days {
			if td.TemplateID == templateID && td.DayOfWeek == day {
				result = append(result, td)
			}
		}
	}
	return result, nil
}

func (r *fakeTemplateDayRepo) GetByTemplateAndDay(_ context.Context, templateID string, dayOfWeek int) (schedule.TemplateDay, error) {
	for _, td := range r.days {
		if td.TemplateID == templateID && td.DayOfWeek == dayOfWeek {
			return td, nil
		}
	}
	return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
}

func (r *fakeTemplateDayRepo) Update(_ context.Context, td schedule.TemplateDay) (schedule.TemplateDay, error) {
	if _, ok := r.days[td.ID]; !ok {
		return schedule.TemplateDay{}, schedule.ErrTemplateDayNotFound
	}
	td.UpdatedAt = time.Now()
	r.days[td.ID] = td
	return td, nil
}

func (r *fakeTemplateDayRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.days[id]; !ok {
		return schedule.ErrTemplateDayNotFound
	}
	delete(r.days, id)
	return nil
}

type fakeWeeklyAssignmentRepo struct {
	assignments map[string]schedule.WeeklyAssignment
}

func newFakeWeeklyAssignmentRepo() *fakeWeeklyAssignmentRepo {
	return &fakeWeeklyAssignmentRepo{assignments: make(map[string]schedule.WeeklyAssignment)}
}

func (r *fakeWeeklyAssignmentRepo) Create(_ context.Context, wa schedule.WeeklyAssignment) (schedule.WeeklyAssignment, error) {
	for _, existing := range r.assignments {
		if existing.EmployeeID == wa.EmployeeID && existing.Year == wa.Year && existing.WeekNumber == wa.WeekNumber {
			return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentExists
		}
	}
	wa.ID = uuid.NewString()
	wa.CreatedAt = time.Now()
	wa.UpdatedAt = wa.CreatedAt
	r.assignments[wa.ID] = wa
	return wa, nil
}

func (r *fakeWeeklyAssignmentRepo) GetByID(_ context.Context, id string) (schedule.WeeklyAssignment, error) {
	wa, ok := r.assignments[id]
	if !ok {
		return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
	}
	return wa, nil
}

func (r *fakeWeeklyAssignmentRepo) GetByEmployeeWeek(_ context.Context, employeeID string, year, weekNumber int) (schedule.WeeklyAssignment, error) {
	for _, wa := range r.assignments {
		if wa.EmployeeID == employeeID && wa.Year == year && wa.WeekNumber == weekNumber {
			return wa, nil
		}
	}
	return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
}

func (r *fakeWeeklyAssignmentRepo) GetByEmployeeYear(_ context.Context, employeeID string, year int) ([]schedule.WeeklyAssignment, error) {
	var result []schedule.WeeklyAssignment
	for week := 1; week <= 53; week++ {
		for _, wa := range r.assignments {
			if wa.EmployeeID == employeeID && wa.Year == year && wa.WeekNumber == week {
				result = append(result, wa)
			}
		}
	}
	return result, nil
}

func (r *fakeWeeklyAssignmentRepo) Update(_ context.Context, wa schedule.WeeklyAssignment) (schedule.WeeklyAssignment, error) {
	if _, ok := r.assignments[wa.ID]; !ok {
		return schedule.WeeklyAssignment{}, schedule.ErrWeeklyAssignmentNotFound
	}
	wa.UpdatedAt = time.Now()
	r.assignments[wa.ID] = wa
	return wa, nil
}

func (r *fakeWeeklyAssignmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assignments[id]; !ok {
		return schedule.ErrWeeklyAssignmentNotFound
	}
	delete(r.assignments, id)
	return nil
}

func (r *fakeWeeklyAssignmentRepo) CountByEmployeeYear(_ context.Context, employeeID string, year int) (int, error) {
	count := 0
	for _, wa := range r.assignments {
		if wa.EmployeeID == employeeID && wa.Year == year {
			count++
		}
	}
	return count, nil
}

func (r *fakeWeeklyAssignmentRepo) CountByTemplate(_ context.Context, templateID string) (int, error) {
	count := 0
	for _, wa := range r.assignments {
		if wa.TemplateID != nil && *wa.TemplateID == templateID {
			count++
		}
	}
	return count, nil
}

func (r *fakeWeeklyAssignmentRepo) DistinctTemplates(_ context.Context, employeeID string, year int) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, wa := range r.assignments {
		if wa.EmployeeID != employeeID || wa.Year != year || wa.TemplateID == nil {
			continue
		}
		if !seen[*wa.TemplateID] {
			seen[*wa.TemplateID] = true
			result = append(result, *wa.TemplateID)
		}
	}
	return result, nil
}

type fakeDailyExceptionRepo struct {
	exceptions map[string]schedule.DailyException
}

func newFakeDailyExceptionRepo() *fakeDailyExceptionRepo {
	return &fakeDailyExceptionRepo{exceptions: make(map[string]schedule.DailyException)}
}

func (r *fakeDailyExceptionRepo) Create(_ context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	for _, existing := range r.exceptions {
		if existing.EmployeeID == de.EmployeeID && existing.Date.Equal(de.Date) && existing.DeletedAt == nil {
			return schedule.DailyException{}, schedule.ErrDailyExceptionExists
		}
	}
	de.ID = uuid.NewString()
	de.CreatedAt = time.Now()
	de.UpdatedAt = de.CreatedAt
	r.exceptions[de.ID] = de
	return de, nil
}

func (r *fakeDailyExceptionRepo) GetByID(_ context.Context, id string) (schedule.DailyException, error) {
	de, ok := r.exceptions[id]
	if !ok || de.DeletedAt != nil {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	return de, nil
}

func (r *fakeDailyExceptionRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (schedule.DailyException, error) {
	for _, de := range r.exceptions {
		if de.EmployeeID == employeeID && de.Date.Equal(date) && de.DeletedAt == nil {
			return de, nil
		}
	}
	return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
}

func (r *fakeDailyExceptionRepo) GetByEmployeeRange(_ context.Context, employeeID string, startDate, endDate time.Time) ([]schedule.DailyException, error) {
	var result []schedule.DailyException
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		for _, de := range r.exceptions {
			if de.EmployeeID == employeeID && de.Date.Equal(d) && de.DeletedAt == nil {
				result = append(result, de)
			}
		}
	}
	return result, nil
}

func (r *fakeDailyExceptionRepo) CountByEmployeeYear(_ context.Context, employeeID string, year int) (int, error) {
	count := 0
	for _, de := range r.exceptions {
		if de.EmployeeID == employeeID && de.Date.Year() == year && de.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeDailyExceptionRepo) Update(_ context.Context, de schedule.DailyException) (schedule.DailyException, error) {
	existing, ok := r.exceptions[de.ID]
	if !ok || existing.DeletedAt != nil {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	de.UpdatedAt = time.Now()
	r.exceptions[de.ID] = de
	return de, nil
}

func (r *fakeDailyExceptionRepo) Approve(_ context.Context, id, approvedBy string) (schedule.DailyException, error) {
	de, ok := r.exceptions[id]
	if !ok || de.DeletedAt != nil {
		return schedule.DailyException{}, schedule.ErrDailyExceptionNotFound
	}
	now := time.Now()
	de.ApprovedBy = &approvedBy
	de.ApprovedAt = &now
	de.UpdatedAt = now
	r.exceptions[id] = de
	return de, nil
}

func (r *fakeDailyExceptionRepo) SoftDelete(_ context.Context, id string) error {
	de, ok := r.exceptions[id]
	if !ok || de.DeletedAt != nil {
		return schedule.ErrDailyExceptionNotFound
	}
	now := time.Now()
	de.DeletedAt = &now
	r.exceptions[id] = de
	return nil
}

type fakeBreakRepo struct {
	breaks map[string]schedule.Break
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{breaks: make(map[string]schedule.Break)}
}

func (r *fakeBreakRepo) Create(_ context.Context, b schedule.Break) (schedule.Break, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.breaks[b.ID] = b
	return b, nil
}

func (r *fakeBreakRepo) GetByID(_ context.Context, id string) (schedule.Break, error) {
	b, ok := r.breaks[id]
	if !ok {
		return schedule.Break{}, schedule.ErrBreakNotFound
	}
	return b, nil
}

func (r *fakeBreakRepo) GetByParent(_ context.Context, parent schedule.ParentRef) ([]schedule.Break, error) {
	var result []schedule.Break
	for _, b := range r.breaks {
		if b.Parent == parent {
			result = append(result, b)
		}
	}
	// Sort order, then start time.
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].SortOrder < result[i].SortOrder ||
				(result[j].SortOrder == result[i].SortOrder && result[j].StartTime.Before(result[i].StartTime)) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (r *fakeBreakRepo) ReplaceForParent(ctx context.Context, parent schedule.ParentRef, breaks []schedule.Break) ([]schedule.Break, error) {
	for id, b := range r.breaks {
		if b.Parent == parent {
			delete(r.breaks, id)
		}
	}
	replaced := make([]schedule.Break, 0, len(breaks))
	for _, b := range breaks {
		b.Parent = parent
		created, err := r.Create(ctx, b)
		if err != nil {
			return nil, err
		}
		replaced = append(replaced, created)
	}
	return replaced, nil
}

func (r *fakeBreakRepo) Update(_ context.Context, b schedule.Break) (schedule.Break, error) {
	if _, ok := r.breaks[b.ID]; !ok {
		return schedule.Break{}, schedule.ErrBreakNotFound
	}
	b.UpdatedAt = time.Now()
	r.breaks[b.ID] = b
	return b, nil
}

func (r *fakeBreakRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.breaks[id]; !ok {
		return schedule.ErrBreakNotFound
	}
	delete(r.breaks, id)
	return nil
}

// testEnv bundles a service instance with its fakes.
type testEnv struct {
	service     schedule.ScheduleService
	fixed       *fakeFixedScheduleRepo
	templates   *fakeTemplateRepo
	days        *fakeTemplateDayRepo
	assignments *fakeWeeklyAssignmentRepo
	exceptions  *fakeDailyExceptionRepo
	breaks      *fakeBreakRepo
}

func newTestEnv() *testEnv {
	days := newFakeTemplateDayRepo()
	env := &testEnv{
		fixed:       newFakeFixedScheduleRepo(),
		templates:   newFakeTemplateRepo(days),
		days:        days,
		assignments: newFakeWeeklyAssignmentRepo(),
		exceptions:  newFakeDailyExceptionRepo(),
		breaks:      newFakeBreakRepo(),
	}
	env.service = NewScheduleService(
		fakeTxRunner{},
		env.fixed,
		env.templates,
		env.days,
		env.assignments,
		env.exceptions,
		env.breaks,
	)
	return env
}

func clock(hour, minute int) *time.Time {
	t := time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// seedFixedWeek gives the employee a Monday..Friday 09:00-17:00 pattern with
// weekend days off.
func seedFixedWeek(env *testEnv, employeeID string) {
	ctx := context.Background()
	for day := 0; day <= 6; day++ {
		fs := schedule.FixedSchedule{
			EmployeeID:   employeeID,
			DayOfWeek:    day,
			IsWorkingDay: day >= 1 && day <= 5,
		}
		if fs.IsWorkingDay {
			fs.StartTime = clock(9, 0)
			fs.EndTime = clock(17, 0)
		}
		_, _ = env.fixed.Create(ctx, fs)
	}
}
