package storage

import (
	"context"
	"fmt"
	"strconv"

	"go-airline-tickets/internal/model"
	apperrors "go-airline-tickets/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage 以 list 保存順序，每張票一個 hash
//
//	<prefix>:order       -> list of ticket keys
//	<prefix>:ticket:<n>  -> hash(ticket_id, flight_num, origin, destination, date, price, seats_left)
type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{
		client: client,
		prefix: prefix,
	}
}

// 順序 key
func (s *RedisStorage) getOrderKey() string {
	return fmt.Sprintf("%s:order", s.prefix)
}

// 單張票的 key，以位置編號而非 ticket_id，因為 ticket_id 可重複
func (s *RedisStorage) getTicketKey(position int) string {
	return fmt.Sprintf("%s:ticket:%d", s.prefix, position)
}

func (s *RedisStorage) Load(ctx context.Context) ([]model.Ticket, error) {
	keys, err := s.client.LRange(ctx, s.getOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	tickets := make([]model.Ticket, 0, len(keys))
	if len(keys) == 0 {
		return tickets, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(keys))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, key := range keys {
			cmds[i] = pipe.HGetAll(ctx, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, cmd := range cmds {
		fields := cmd.Val()
		// order list 指向不存在的 hash
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: missing hash %s", apperrors.ErrCorruptData, keys[i])
		}

		ticket, err := hydrateRedisTicket(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrCorruptData, keys[i], err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// Save 在 WATCH order key 後讀取舊 key，再於 MULTI/EXEC 內刪除舊資料並寫入新資料。
// 讀取與交易之間若有其他寫入者修改 order key，回傳 redis.TxFailedErr
func (s *RedisStorage) Save(ctx context.Context, tickets []model.Ticket) error {
	orderKey := s.getOrderKey()

	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		oldKeys, err := tx.LRange(ctx, orderKey, 0, -1).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, orderKey)
			if len(oldKeys) > 0 {
				pipe.Del(ctx, oldKeys...)
			}

			for i, t := range tickets {
				key := s.getTicketKey(i)
				pipe.HSet(ctx, key, map[string]interface{}{
					"ticket_id":   t.TicketID,
					"flight_num":  t.FlightNum,
					"origin":      t.Origin,
					"destination": t.Destination,
					"date":        t.Date,
					"price":       strconv.FormatFloat(t.Price, 'f', -1, 64),
					"seats_left":  t.SeatsLeft,
				})
				pipe.RPush(ctx, orderKey, key)
			}
			return nil
		})
		return err
	}, orderKey)
}

func hydrateRedisTicket(fields map[string]string) (model.Ticket, error) {
	price, err := strconv.ParseFloat(fields["price"], 64)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("invalid price: %v", err)
	}

	seats, err := strconv.Atoi(fields["seats_left"])
	if err != nil {
		return model.Ticket{}, fmt.Errorf("invalid seats_left: %v", err)
	}

	return model.Ticket{
		TicketID:    fields["ticket_id"],
		FlightNum:   fields["flight_num"],
		Origin:      fields["origin"],
		Destination: fields["destination"],
		Date:        fields["date"],
		Price:       price,
		SeatsLeft:   seats,
	}, nil
}
