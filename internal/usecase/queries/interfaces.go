package queries

import "context"

type RoomQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]*BookingListItem, error)
	Recent(ctx context.Context, limit int32) ([]*RecentBooking, error)
	Cancelled(ctx context.Context) ([]*CancelledBooking, error)
	Upcoming(ctx context.Context) ([]*UpcomingStay, error)
}

type GuestQueries interface {
	List(ctx context.Context) ([]*GuestView, error)
}

type MessageQueries interface {
	Search(ctx context.Context, filter MessageSearchFilter) (*MessagesPage, error)
}

type PaymentQueries interface {
	List(ctx context.Context, filter PaymentListFilter) (*PaymentsPage, error)
}

type DashboardQueries interface {
	Metrics(ctx context.Context) (*DashboardMetrics, error)
	Revenue(ctx context.Context) (float64, error)
}

type ReportQueries interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

type AdminQueries interface {
	FindByEmail(ctx context.Context, email string) (*AdminView, error)
}
