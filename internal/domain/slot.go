package domain

// Unavailability reasons for a slot
const (
	ReasonBooked = "booked" // Слот занят активной записью
	ReasonPast   = "past"   // Время слота уже прошло (для сегодняшней даты)
)

// UnavailableSlot represents a slot that cannot be booked, with the reason
type UnavailableSlot struct {
	Time   string // 12-часовой отображаемый формат, как в списке доступных
	Reason string
}

// SlotPartition is the result of the availability computation:
// every generated candidate lands in exactly one of the two lists,
// both preserving generation order
type SlotPartition struct {
	Available   []string
	Unavailable []UnavailableSlot
}
