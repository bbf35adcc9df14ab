package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-airline-tickets/internal/model"
	"go-airline-tickets/internal/service"
	"go-airline-tickets/pkg/logger"

	"go.uber.org/zap"
)

const (
	banner = "=== Airline Ticket Sales Information System ==="
	menu   = "\n1. Create Ticket\n2. Search Tickets\n3. Book Ticket\n4. Exit"
)

// Console 互動式文字介面，每個選項讀一行輸入
type Console struct {
	service service.TicketService
	in      *bufio.Reader
	out     io.Writer
	log     *zap.Logger
	readErr error
}

func NewConsole(service service.TicketService, in io.Reader, out io.Writer) *Console {
	return &Console{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		log:     logger.WithComponent("cli"),
	}
}

// Run 直到選擇 4 或輸入結束才返回；service 的錯誤只印出，不中斷迴圈
func (c *Console) Run(ctx context.Context) error {
	c.println(banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println(menu)
		choice, ok := c.prompt("Enter your choice (1-4): ")
		if !ok {
			return c.readErr
		}

		// 與輸入完全相同才算有效選項，" 1" 視為無效
		switch choice {
		case "1":
			if !c.createTicket(ctx) {
				return c.readErr
			}
		case "2":
			if !c.searchTickets(ctx) {
				return c.readErr
			}
		case "3":
			if !c.bookTicket(ctx) {
				return c.readErr
			}
		case "4":
			c.println("Exiting system...")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
		}
	}
}

func (c *Console) createTicket(ctx context.Context) bool {
	var input model.CreateTicketInput
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter ticket ID: ", &input.TicketID},
		{"Enter flight number: ", &input.FlightNum},
		{"Enter origin city: ", &input.Origin},
		{"Enter destination city: ", &input.Destination},
		{"Enter flight date (YYYY-MM-DD): ", &input.Date},
		{"Enter ticket price: ", &input.Price},
		{"Enter number of seats: ", &input.SeatsLeft},
	}
	for _, f := range fields {
		v, ok := c.prompt(f.label)
		if !ok {
			return false
		}
		*f.dst = v
	}

	if _, err := c.service.Create(ctx, input); err != nil {
		c.reportError("create", err)
		return true
	}
	c.println(model.MsgTicketCreated)
	return true
}

func (c *Console) searchTickets(ctx context.Context) bool {
	origin, ok := c.prompt("Enter origin city: ")
	if !ok {
		return false
	}
	destination, ok := c.prompt("Enter destination city: ")
	if !ok {
		return false
	}

	tickets, found := c.service.Search(ctx, origin, destination)
	if !found {
		c.println(model.MsgNoRouteTickets)
		return true
	}
	for _, t := range tickets {
		fmt.Fprintf(c.out, "\nID: %s | Flight: %s | Date: %s | Price: %s | Seats Left: %d\n",
			t.TicketID, t.FlightNum, t.Date, formatPrice(t.Price), t.SeatsLeft)
	}
	return true
}

func (c *Console) bookTicket(ctx context.Context) bool {
	ticketID, ok := c.prompt("Enter ticket ID to book: ")
	if !ok {
		return false
	}

	result, err := c.service.Book(ctx, ticketID)
	if err != nil {
		c.reportError("book", err)
		return true
	}
	c.println(result.Message())
	return true
}

// prompt 印出提示並讀一行，行長不設上限；輸入結束或讀取失敗時 ok 為 false
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		// 最後一行沒有換行符號
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), true
		}
		if err != io.EOF {
			c.readErr = err
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) reportError(operation string, err error) {
	c.log.Warn("operation failed", zap.String("operation", operation), zap.Error(err))
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// formatPrice 整數價格顯示一位小數，例如 800.0
func formatPrice(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
