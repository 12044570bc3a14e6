package entities

import "time"

type VendorMode string

const (
	VendorOpen   VendorMode = "open"
	VendorBusy   VendorMode = "busy"
	VendorClosed VendorMode = "closed"
)

func (m VendorMode) String() string {
	return string(m)
}

// VendorAvailability — режим приёма заказов ("радар") плюс недельное расписание.
// Эффективная доступность = расписание говорит "открыто" И режим != closed.
type VendorAvailability struct {
	VendorID int64
	Mode     VendorMode
	// ModeSetAt — когда вендор в последний раз переключал режим руками.
	ModeSetAt time.Time
	Location  GeoPoint
	// AcceptanceWindow == 0 означает "использовать дефолт сервиса".
	AcceptanceWindow time.Duration
	Schedule         WeeklySchedule
	UpdatedAt        time.Time
}

// WeeklySchedule индексируется time.Weekday (воскресенье == 0).
type WeeklySchedule [7]ScheduleEntry

type ScheduleEntry struct {
	Closed bool
	// Минуты от полуночи локального времени вендора, [Open, Close).
	OpenMinute  int
	CloseMinute int
	// Перерыв опционален: обе границы либо nil, либо заданы.
	BreakStartMinute *int
	BreakEndMinute   *int
}

// IsOpenAt проверяет только расписание, режим не учитывается.
func (e ScheduleEntry) IsOpenAt(minuteOfDay int) bool {
	if e.Closed {
		return false
	}
	if minuteOfDay < e.OpenMinute || minuteOfDay >= e.CloseMinute {
		return false
	}
	if e.BreakStartMinute != nil && e.BreakEndMinute != nil &&
		minuteOfDay >= *e.BreakStartMinute && minuteOfDay < *e.BreakEndMinute {
		return false
	}
	return true
}

// VendorAcceptance — результат проверки гейта на момент подачи заказа.
type VendorAcceptance string

const (
	VendorAccepting    VendorAcceptance = "accepting"
	VendorBusyNow      VendorAcceptance = "busy"
	VendorNotAccepting VendorAcceptance = "closed"
)

func (a VendorAcceptance) String() string {
	return string(a)
}

type VendorAvailabilityModify struct {
	VendorID         *int64
	Mode             *VendorMode
	ModeSetAt        *time.Time
	AcceptanceWindow *time.Duration
}

// RadarStatus — ответ для вендорской панели: режим и счётчики активных заказов.
type RadarStatus struct {
	VendorID  int64
	Mode      VendorMode
	ModeSetAt time.Time
	Effective VendorAcceptance
	Pending   int64
	Preparing int64
	Ready     int64
}
