package domain

type BookingActionKind string

const (
	BookingActionTaxi       BookingActionKind = "taxi"
	BookingActionOrderFood  BookingActionKind = "order_food"
	BookingActionBookMovie  BookingActionKind = "book_movie"
	BookingActionBookFlight BookingActionKind = "book_flight"
	BookingActionBookTrain  BookingActionKind = "book_train"
	BookingActionBookBus    BookingActionKind = "book_bus"
)

type BookingAction struct {
	Kind               BookingActionKind `json:"kind"`
	TargetURL          string            `json:"target_url"`
	ConfirmationPrompt string            `json:"confirmation_prompt"`
}
