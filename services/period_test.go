package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriodMonthly(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 3, 1), "monthly", date(2024, 3, 15), false)

	if !start.Equal(date(2024, 3, 1)) {
		t.Errorf("expected start 2024-03-01, got %s", start)
	}
	if !end.Equal(date(2024, 4, 1)) {
		t.Errorf("expected end 2024-04-01, got %s", end)
	}
}

func TestResolvePeriodMonthlyClampsShortMonth(t *testing.T) {
	// Jan 31 + 1 month lands on the last day of February, not March.
	_, end := ResolvePeriod(date(2024, 1, 31), "monthly", date(2024, 2, 10), false)
	if !end.Equal(date(2024, 2, 29)) {
		t.Errorf("expected end 2024-02-29 (leap year), got %s", end)
	}

	_, end = ResolvePeriod(date(2025, 1, 31), "monthly", date(2025, 2, 10), false)
	if !end.Equal(date(2025, 2, 28)) {
		t.Errorf("expected end 2025-02-28, got %s", end)
	}
}

func TestResolvePeriodWeekly(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 3, 4), "weekly", date(2024, 3, 6), false)

	if !start.Equal(date(2024, 3, 4)) {
		t.Errorf("expected start 2024-03-04, got %s", start)
	}
	if !end.Equal(date(2024, 3, 11)) {
		t.Errorf("expected end exactly 7 days later, got %s", end)
	}
}

// The default policy pins a budget to its first cycle: the window never
// advances no matter how far the reference has moved past the start date.
func TestResolvePeriodPinnedIgnoresReference(t *testing.T) {
	start, end := ResolvePeriod(date(2022, 1, 1), "monthly", date(2024, 6, 15), false)

	if !start.Equal(date(2022, 1, 1)) {
		t.Errorf("pinned window moved: start %s", start)
	}
	if !end.Equal(date(2022, 2, 1)) {
		t.Errorf("pinned window moved: end %s", end)
	}
}

func TestResolvePeriodRollingMonthly(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 1, 1), "monthly", date(2024, 3, 15), true)

	if !start.Equal(date(2024, 3, 1)) {
		t.Errorf("expected rolling start 2024-03-01, got %s", start)
	}
	if !end.Equal(date(2024, 4, 1)) {
		t.Errorf("expected rolling end 2024-04-01, got %s", end)
	}
}

func TestResolvePeriodRollingWeekly(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 1, 1), "weekly", date(2024, 1, 10), true)

	if !start.Equal(date(2024, 1, 8)) {
		t.Errorf("expected rolling start 2024-01-08, got %s", start)
	}
	if !end.Equal(date(2024, 1, 15)) {
		t.Errorf("expected rolling end 2024-01-15, got %s", end)
	}
}

// Rolling windows are derived from the original start date each time, so a
// month-end budget does not drift to the 28th after passing through
// February.
func TestResolvePeriodRollingNoClampDrift(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 1, 31), "monthly", date(2024, 3, 15), true)

	if !start.Equal(date(2024, 2, 29)) {
		t.Errorf("expected rolling start 2024-02-29, got %s", start)
	}
	if !end.Equal(date(2024, 3, 31)) {
		t.Errorf("expected rolling end 2024-03-31, got %s", end)
	}
}

func TestResolvePeriodRollingFutureStart(t *testing.T) {
	start, end := ResolvePeriod(date(2024, 6, 1), "monthly", date(2024, 3, 15), true)

	if !start.Equal(date(2024, 6, 1)) {
		t.Errorf("future budget should keep its first window, got start %s", start)
	}
	if !end.Equal(date(2024, 7, 1)) {
		t.Errorf("future budget should keep its first window, got end %s", end)
	}
}

// The window ends are matched inclusively against transaction dates, so a
// transaction dated exactly on a cycle boundary belongs to both adjacent
// cycles. This test documents that overlap rather than endorsing it.
func TestResolvePeriodBoundaryOverlap(t *testing.T) {
	_, firstEnd := ResolvePeriod(date(2024, 3, 1), "monthly", date(2024, 3, 15), false)
	secondStart, _ := ResolvePeriod(date(2024, 3, 1), "monthly", date(2024, 4, 15), true)

	if !firstEnd.Equal(secondStart) {
		t.Fatalf("adjacent cycles should share a boundary day: %s vs %s", firstEnd, secondStart)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Equal(date(2024, 3, 1)) {
		t.Errorf("expected 2024-03-01, got %s", d)
	}

	if _, err := ParseDate("03/01/2024"); err == nil {
		t.Error("expected error for non ISO date")
	}
}
