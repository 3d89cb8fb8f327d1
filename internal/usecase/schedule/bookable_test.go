package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frontandrew/cda/internal/domain"
)

// TestIsSlotBookable проверяет правила занятия слота техника
func TestIsSlotBookable(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	availabilities := []*domain.TechnicianAvailability{
		{ID: "1", TechnicianID: "1", Date: day, TimeSlots: []string{"08:00", "09:00"}},
	}

	tests := []struct {
		name         string
		date         time.Time
		slot         string
		technicianID string
		appointments []*domain.Appointment
		want         bool
	}{
		{
			name:         "Свободный предложенный слот",
			date:         day,
			slot:         "08:00",
			technicianID: "1",
			want:         true,
		},
		{
			name:         "Слот не входит в предложенный набор",
			date:         day,
			slot:         "10:00",
			technicianID: "1",
			want:         false,
		},
		{
			name:         "Нет доступности на этот день",
			date:         otherDay,
			slot:         "08:00",
			technicianID: "1",
			want:         false,
		},
		{
			name:         "Нет доступности у этого техника",
			date:         day,
			slot:         "08:00",
			technicianID: "2",
			want:         false,
		},
		{
			name:         "Слот занят активной записью",
			date:         day,
			slot:         "08:00",
			technicianID: "1",
			appointments: []*domain.Appointment{
				{ID: "10", TechnicianID: "1", Date: day, Time: "08:00", Status: domain.StatusScheduled},
			},
			want: false,
		},
		{
			name:         "Отмененная запись слот не занимает",
			date:         day,
			slot:         "08:00",
			technicianID: "1",
			appointments: []*domain.Appointment{
				{ID: "10", TechnicianID: "1", Date: day, Time: "08:00", Status: domain.StatusCancelled},
			},
			want: true,
		},
		{
			name:         "Запись другого техника слот не занимает",
			date:         day,
			slot:         "08:00",
			technicianID: "1",
			appointments: []*domain.Appointment{
				{ID: "10", TechnicianID: "2", Date: day, Time: "08:00", Status: domain.StatusScheduled},
			},
			want: true,
		},
		{
			name:         "Та же пара слот-техник в другой день не мешает",
			date:         day,
			slot:         "09:00",
			technicianID: "1",
			appointments: []*domain.Appointment{
				{ID: "10", TechnicianID: "1", Date: otherDay, Time: "09:00", Status: domain.StatusScheduled},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsSlotBookable(tt.date, tt.slot, tt.technicianID, availabilities, tt.appointments)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestIsSlotBookableSameDayDifferentClock проверяет сравнение по
// календарному дню, а не по полному timestamp
func TestIsSlotBookableSameDayDifferentClock(t *testing.T) {
	morning := time.Date(2026, 9, 10, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 9, 10, 19, 30, 0, 0, time.UTC)

	availabilities := []*domain.TechnicianAvailability{
		{ID: "1", TechnicianID: "1", Date: morning, TimeSlots: []string{"08:00"}},
	}
	appointments := []*domain.Appointment{
		{ID: "10", TechnicianID: "1", Date: evening, Time: "08:00", Status: domain.StatusScheduled},
	}

	assert.False(t, IsSlotBookable(morning, "08:00", "1", availabilities, appointments))
}
