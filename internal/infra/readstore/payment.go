package readstore

import (
	"context"
	"fmt"
	"strings"

	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
	"easystay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// Sort fields are whitelisted because ORDER BY cannot be parameterized.
var paymentSortFields = map[string]string{
	"payment_id":     "id",
	"booking_id":     "booking_id",
	"amount":         "amount",
	"payment_method": "method",
	"status":         "status",
	"transaction_id": "transaction_ref",
	"payment_date":   "paid_at",
}

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (r *PaymentReadStore) List(ctx context.Context, filter queries.PaymentListFilter) (*queries.PaymentsPage, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.BookingID != nil {
		args = append(args, *filter.BookingID)
		clauses = append(clauses, fmt.Sprintf("booking_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Method != "" {
		args = append(args, filter.Method)
		clauses = append(clauses, fmt.Sprintf("method = $%d", len(args)))
	}

	whereSQL := ""
	if len(clauses) > 0 {
		whereSQL = "WHERE " + strings.Join(clauses, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payments " + whereSQL
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, infra.WrapRepoErr("failed to count payments", err)
	}

	orderBy, ok := paymentSortFields[filter.SortField]
	if !ok {
		orderBy = "paid_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, (page-1)*limit)
	offsetPos := len(args)

	listQuery := fmt.Sprintf(`
		SELECT id, booking_id, amount, method, status, transaction_ref, paid_at
		FROM payments
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`, whereSQL, orderBy, direction, limitPos, offsetPos)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var payments []*queries.PaymentView
	for rows.Next() {
		var (
			view   queries.PaymentView
			paidAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.BookingID, &view.Amount,
			&view.Method, &view.Status, &view.TransactionRef, &paidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		view.PaidAt = pgconv.TimeFromPgtype(paidAt)
		payments = append(payments, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &queries.PaymentsPage{
		Payments:   payments,
		TotalPages: totalPages,
	}, nil
}
