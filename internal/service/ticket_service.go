package service

import (
	"context"
	"fmt"
	"sync"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/storage"
	"go-airline-tickets/pkg/logger"

	"go.uber.org/zap"
)

type TicketService interface {
	// 建立機票並寫回整份資料
	Create(ctx context.Context, input model.CreateTicketInput) (*model.Ticket, error)
	// 依出發地+目的地查詢，found 為 false 表示此航線沒有機票
	Search(ctx context.Context, origin, destination string) (tickets []model.Ticket, found bool)
	// 預訂機票(剩餘座位減一)
	Book(ctx context.Context, ticketID string) (model.BookResult, error)
	List(ctx context.Context) []model.Ticket
}

// TicketServiceImpl 所有讀取都由記憶體提供，每次異動後同步寫回 storage。
// mu 讓 HTTP 多個請求可以共用同一個 instance。
type TicketServiceImpl struct {
	mu      sync.Mutex
	storage storage.Storage
	tickets []model.Ticket
	log     *zap.Logger
}

func NewTicketService(ctx context.Context, store storage.Storage) (TicketService, error) {
	tickets, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tickets: %w", err)
	}

	log := logger.WithComponent("service")
	log.Info("tickets loaded", zap.Int("count", len(tickets)))

	return &TicketServiceImpl{
		storage: store,
		tickets: tickets,
		log:     log,
	}, nil
}

func (s *TicketServiceImpl) Create(ctx context.Context, input model.CreateTicketInput) (*model.Ticket, error) {
	ticket, err := input.ToTicket()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = append(s.tickets, ticket)
	if err := s.persist(ctx); err != nil {
		s.tickets = s.tickets[:len(s.tickets)-1]
		return nil, err
	}

	s.log.Info("ticket created",
		zap.String("ticket_id", ticket.TicketID),
		zap.String("flight_num", ticket.FlightNum),
	)

	return &ticket, nil
}

func (s *TicketServiceImpl) Search(ctx context.Context, origin, destination string) ([]model.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]model.Ticket, 0)
	for i := range s.tickets {
		if s.tickets[i].MatchesRoute(origin, destination) {
			results = append(results, s.tickets[i])
		}
	}

	return results, len(results) > 0
}

func (s *TicketServiceImpl) Book(ctx context.Context, ticketID string) (model.BookResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tickets {
		ticket := &s.tickets[i]
		if ticket.TicketID != ticketID {
			continue
		}

		// 只比對第一筆相同 ticket_id
		if !ticket.IsAvailable() {
			return model.BookResult{Status: model.BookStatusSoldOut, TicketID: ticketID}, nil
		}

		ticket.SeatsLeft--
		if err := s.persist(ctx); err != nil {
			ticket.SeatsLeft++
			return model.BookResult{}, err
		}

		s.log.Info("ticket booked",
			zap.String("ticket_id", ticketID),
			zap.Int("seats_left", ticket.SeatsLeft),
		)

		return model.BookResult{
			Status:    model.BookStatusBooked,
			TicketID:  ticketID,
			SeatsLeft: ticket.SeatsLeft,
		}, nil
	}

	return model.BookResult{Status: model.BookStatusNotFound, TicketID: ticketID}, nil
}

func (s *TicketServiceImpl) List(ctx context.Context) []model.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// persist 呼叫前需持有 mu。寫入失敗時由呼叫端還原記憶體中的異動
func (s *TicketServiceImpl) persist(ctx context.Context) error {
	if err := s.storage.Save(ctx, s.snapshot()); err != nil {
		s.log.Error("failed to save tickets", zap.Error(err))
		return fmt.Errorf("save tickets: %w", err)
	}
	return nil
}

func (s *TicketServiceImpl) snapshot() []model.Ticket {
	out := make([]model.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}
