package domain

// EmployeeIsFree reports whether an employee can take a new commitment in
// the given window. An employee is busy when an existing calendar entry is
// scheduled inside the window, or when approved time off blocks it.
// Entries belonging to excludeAppointmentID are ignored, so a reassignment
// does not conflict with the appointment being moved.
func EmployeeIsFree(employeeID int64, window Interval, entries []*CalendarEntry, timeOff []*TimeOffRequest, excludeAppointmentID *int64) bool {
	for _, e := range entries {
		if e.EmployeeID != employeeID {
			continue
		}
		if excludeAppointmentID != nil && e.AppointmentID == *excludeAppointmentID {
			continue
		}
		if !e.ScheduledTime.Before(window.Start) && e.ScheduledTime.Before(window.End) {
			return false
		}
	}

	for _, t := range timeOff {
		if t.EmployeeID != employeeID {
			continue
		}
		if t.Blocks(window) {
			return false
		}
	}

	return true
}

// FirstFreeEmployee returns the first employee from the list that is free
// for the window, stopping at the first match.
func FirstFreeEmployee(employeeIDs []int64, window Interval, entries []*CalendarEntry, timeOff []*TimeOffRequest) (int64, bool) {
	for _, id := range employeeIDs {
		if EmployeeIsFree(id, window, entries, timeOff, nil) {
			return id, true
		}
	}
	return 0, false
}
