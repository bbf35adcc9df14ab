package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "go-airline-tickets/pkg/app_errors"
)

// Ticket 機票庫存紀錄
type Ticket struct {
	TicketID    string  `json:"ticket_id" db:"ticket_id"`
	FlightNum   string  `json:"flight_num" db:"flight_num"`
	Origin      string  `json:"origin" db:"origin"`
	Destination string  `json:"destination" db:"destination"`
	Date        string  `json:"date" db:"date"`
	Price       float64 `json:"price" db:"price"`
	SeatsLeft   int     `json:"seats_left" db:"seats_left"`
}

// MatchesRoute 出發地與目的地皆不分大小寫完全相等
func (t *Ticket) MatchesRoute(origin, destination string) bool {
	return strings.ToLower(t.Origin) == strings.ToLower(origin) &&
		strings.ToLower(t.Destination) == strings.ToLower(destination)
}

// IsAvailable 檢查是否還有剩餘座位
func (t *Ticket) IsAvailable() bool {
	return t.SeatsLeft > 0
}

// CreateTicketInput 使用者輸入的原始欄位，price 與 seats_left 尚未轉型
type CreateTicketInput struct {
	TicketID    string
	FlightNum   string
	Origin      string
	Destination string
	Date        string
	Price       string
	SeatsLeft   string
}

// ToTicket 將 price 轉為 float64、seats_left 轉為 int
func (in CreateTicketInput) ToTicket() (Ticket, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil {
		return Ticket{}, fmt.Errorf("%w: price %q is not a number", apperrors.ErrInvalidInput, in.Price)
	}
	// NaN 與 Inf 無法寫成 JSON
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return Ticket{}, fmt.Errorf("%w: price %q is not a finite number", apperrors.ErrInvalidInput, in.Price)
	}

	seats, err := strconv.Atoi(strings.TrimSpace(in.SeatsLeft))
	if err != nil {
		return Ticket{}, fmt.Errorf("%w: seats_left %q is not an integer", apperrors.ErrInvalidInput, in.SeatsLeft)
	}

	return Ticket{
		TicketID:    in.TicketID,
		FlightNum:   in.FlightNum,
		Origin:      in.Origin,
		Destination: in.Destination,
		Date:        in.Date,
		Price:       price,
		SeatsLeft:   seats,
	}, nil
}

const (
	MsgTicketCreated  = "Ticket created successfully"
	MsgNoRouteTickets = "No tickets found for this route"
)

// BookStatus 訂票結果類型
type BookStatus string

const (
	BookStatusBooked   BookStatus = "booked"
	BookStatusSoldOut  BookStatus = "sold_out"
	BookStatusNotFound BookStatus = "not_found"
)

// BookResult 訂票結果，售完與找不到票都是正常結果而非錯誤
type BookResult struct {
	Status    BookStatus `json:"status"`
	TicketID  string     `json:"ticket_id"`
	SeatsLeft int        `json:"seats_left"`
}

func (r BookResult) Message() string {
	switch r.Status {
	case BookStatusBooked:
		return fmt.Sprintf("Ticket %s booked successfully. Remaining seats: %d", r.TicketID, r.SeatsLeft)
	case BookStatusSoldOut:
		return "No seats left for this ticket"
	default:
		return "Ticket not found"
	}
}
