package application

import (
	"fmt"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/AzielCF/az-chatbox/pkg/timeutils"
)

// IsWithinSchedule reports whether now falls inside the window configured for
// now's weekday. Bounds are inclusive and compared at minute resolution. A
// disabled day or a malformed window never matches. now must already be in the
// site timezone.
func IsWithinSchedule(schedule domain.WeeklySchedule, now time.Time) bool {
	day := schedule.Day(now.Weekday())
	if !day.Enabled {
		return false
	}

	start, end, err := scheduleWindow(day)
	if err != nil {
		return false
	}

	minute := timeutils.MinuteOfDay(now)
	return start <= minute && minute <= end
}

func scheduleWindow(day domain.DaySchedule) (int, int, error) {
	start, err := timeutils.ParseClock(day.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start: %v", domain.ErrInvalidScheduleEntry, err)
	}
	end, err := timeutils.ParseClock(day.End)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end: %v", domain.ErrInvalidScheduleEntry, err)
	}
	return start, end, nil
}

// ValidateSchedule returns the first malformed enabled window, if any.
func ValidateSchedule(schedule domain.WeeklySchedule) error {
	for i, day := range schedule {
		if !day.Enabled {
			continue
		}
		if _, _, err := scheduleWindow(day); err != nil {
			return fmt.Errorf("%s: %w", time.Weekday(i), err)
		}
	}
	return nil
}
