package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// partitionSlots делит сгенерированные слоты на доступные и недоступные.
// Проверка занятости идёт раньше проверки прошедшего времени: занятый слот
// получает причину booked, даже если он уже в прошлом.
func partitionSlots(slots []string, booked []types.TimeString, date time.Time, now time.Time) domain.SlotPartition {
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		bookedSet[b] = struct{}{}
	}

	today := isSameDay(date, now)
	nowTime := types.NewTimeString(now)

	partition := domain.SlotPartition{
		Available:   make([]string, 0, len(slots)),
		Unavailable: make([]domain.UnavailableSlot, 0),
	}

	for _, slot := range slots {
		slot24, err := types.Parse12Hour(slot)
		if err != nil {
			// Слоты генерируются нами же, сюда попасть нельзя
			continue
		}

		if _, ok := bookedSet[slot24]; ok {
			partition.Unavailable = append(partition.Unavailable, domain.UnavailableSlot{
				Time:   slot,
				Reason: domain.ReasonBooked,
			})
			continue
		}

		// Прошедшее время блокирует слоты только на сегодняшнюю дату
		if today && !slot24.IsAfter(nowTime) {
			partition.Unavailable = append(partition.Unavailable, domain.UnavailableSlot{
				Time:   slot,
				Reason: domain.ReasonPast,
			})
			continue
		}

		partition.Available = append(partition.Available, slot)
	}

	return partition
}

func isSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
