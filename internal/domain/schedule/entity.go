package schedule

import "time"

// FixedSchedule is the baseline weekly pattern for an employee, one row per
// day of week. Lowest-priority resolution source.
type FixedSchedule struct {
	ID           string
	EmployeeID   string
	DayOfWeek    int // 0=Sunday .. 6=Saturday
	IsWorkingDay bool
	StartTime    *time.Time
	EndTime      *time.Time
	// Legacy single-break columns, superseded by Break rows but still
	// honored by resolution output.
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Template is a reusable named weekly pattern. It owns up to seven
// TemplateDay children, one per day of week.
type Template struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Days []TemplateDay
}

type TemplateDay struct {
	ID             string
	TemplateID     string
	DayOfWeek      int // 0=Sunday .. 6=Saturday
	IsWorkingDay   bool
	StartTime      *time.Time
	EndTime        *time.Time
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// WeeklyAssignment binds an employee to a template for one ISO week.
// TemplateID may be nil: the week exists but is unscheduled, which is not
// the same as an explicit day off.
type WeeklyAssignment struct {
	ID         string
	EmployeeID string
	TemplateID *string
	Year       int
	WeekNumber int
	// Denormalized Monday..Sunday bounds, computed at creation time.
	StartDate time.Time
	EndDate   time.Time
	Notes     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ExceptionType string

const (
	ExceptionCustomHours  ExceptionType = "custom_hours"
	ExceptionDayOff       ExceptionType = "day_off"
	ExceptionHoliday      ExceptionType = "holiday"
	ExceptionVacation     ExceptionType = "vacation"
	ExceptionSickLeave    ExceptionType = "sick_leave"
	ExceptionSpecialEvent ExceptionType = "special_event"
)

var ExceptionTypeValues = []string{
	string(ExceptionCustomHours),
	string(ExceptionDayOff),
	string(ExceptionHoliday),
	string(ExceptionVacation),
	string(ExceptionSickLeave),
	string(ExceptionSpecialEvent),
}

// RequiresTimes reports whether the exception type carries its own work
// window. The remaining types imply a non-working day.
func (t ExceptionType) RequiresTimes() bool {
	return t == ExceptionCustomHours || t == ExceptionSpecialEvent
}

// DailyException overrides the schedule for a single calendar date.
// Highest-priority resolution source.
type DailyException struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ExceptionType ExceptionType
	IsWorkingDay  bool
	StartTime     *time.Time
	EndTime       *time.Time
	Notes         string
	CreatedBy     string
	// Approval is monotonic: both fields stay nil until approved, never
	// revert afterwards.
	ApprovedBy *string
	ApprovedAt *time.Time
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e DailyException) IsApproved() bool {
	return e.ApprovedBy != nil && e.ApprovedAt != nil
}

type BreakType string

const (
	BreakTypePaid     BreakType = "paid"
	BreakTypeUnpaid   BreakType = "unpaid"
	BreakTypeMeal     BreakType = "meal"
	BreakTypeRest     BreakType = "rest"
	BreakTypePersonal BreakType = "personal"
	BreakTypeOther    BreakType = "other"
)

var BreakTypeValues = []string{
	string(BreakTypePaid),
	string(BreakTypeUnpaid),
	string(BreakTypeMeal),
	string(BreakTypeRest),
	string(BreakTypePersonal),
	string(BreakTypeOther),
}

// ParentKind tags which schedule source a break belongs to.
type ParentKind string

const (
	ParentFixedSchedule  ParentKind = "schedule"
	ParentTemplateDay    ParentKind = "template_day"
	ParentDailyException ParentKind = "daily_exception"
)

var ParentKindValues = []string{
	string(ParentFixedSchedule),
	string(ParentTemplateDay),
	string(ParentDailyException),
}

// ParentRef is the typed owner reference of a break. Keeping kind and id
// together prevents the tag and the row from drifting apart.
type ParentRef struct {
	Kind ParentKind
	ID   string
}

type Break struct {
	ID              string
	Parent          ParentRef
	Name            string
	StartTime       time.Time
	EndTime         time.Time
	BreakType       BreakType
	IsPaid          bool
	IsRequired      bool
	DurationMinutes *int // derived from the window when nil
	IsFlexible      bool
	// FlexibilityMinutes widens the window on both ends for overlap
	// checks when IsFlexible is set.
	FlexibilityMinutes int
	SortOrder          int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScheduleSource identifies which source won resolution for a date.
type ScheduleSource string

const (
	SourceDailyException ScheduleSource = "daily_exception"
	SourceWeeklyTemplate ScheduleSource = "weekly_template"
	SourceRegular        ScheduleSource = "regular_schedule"
	SourceNone           ScheduleSource = "no_schedule"
)

// NoScheduleNotes is returned when no source covers a date.
const NoScheduleNotes = "No hay horario definido para esta fecha"

// EffectiveSchedule is the one resolved work-time definition for an
// employee on a calendar date.
type EffectiveSchedule struct {
	EmployeeID     string
	Date           time.Time
	Type           ScheduleSource
	SourceID       string // id of the winning row, empty for no_schedule
	IsWorkingDay   bool
	StartTime      *time.Time
	EndTime        *time.Time
	BreakStartTime *time.Time
	BreakEndTime   *time.Time
	Notes          string
}

// ParentRef maps the winning source to the break parent it owns. Returns
// false when resolution produced no schedule.
func (e EffectiveSchedule) ParentRef() (ParentRef, bool) {
	switch e.Type {
	case SourceDailyException:
		return ParentRef{Kind: ParentDailyException, ID: e.SourceID}, true
	case SourceWeeklyTemplate:
		return ParentRef{Kind: ParentTemplateDay, ID: e.SourceID}, true
	case SourceRegular:
		return ParentRef{Kind: ParentFixedSchedule, ID: e.SourceID}, true
	}
	return ParentRef{}, false
}

// EffectiveBreaks is the break set attached to whichever source won
// resolution for a date.
type EffectiveBreaks struct {
	EmployeeID    string
	Date          time.Time
	Source        ScheduleSource
	SourceID      string
	IsWorkingDay  bool
	WorkStartTime *time.Time
	WorkEndTime   *time.Time
	Breaks        []Break
}

// WorkTimeSummary is the minute accounting of one resolved work day.
// EffectiveWorkMinutes = TotalWorkMinutes - UnpaidBreakMinutes; paid breaks
// stay inside effective time.
type WorkTimeSummary struct {
	TotalWorkMinutes     int `json:"total_work_minutes"`
	TotalBreakMinutes    int `json:"total_break_minutes"`
	PaidBreakMinutes     int `json:"paid_break_minutes"`
	UnpaidBreakMinutes   int `json:"unpaid_break_minutes"`
	EffectiveWorkMinutes int `json:"effective_work_minutes"`
	// IsAnomalous is set when unpaid break time exceeds the work window
	// and EffectiveWorkMinutes goes negative. The value is deliberately
	// not clamped so callers can surface the misconfiguration.
	IsAnomalous bool `json:"is_anomalous"`
}
