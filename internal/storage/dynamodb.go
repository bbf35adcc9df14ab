package storage

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go-airline-tickets/internal/model"
	apperrors "go-airline-tickets/pkg/app_errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// BatchWriteItem 單次上限
const dynamoBatchSize = 25

// DynamoStorage 每張票一個 item，以 position 為 hash key
type DynamoStorage struct {
	client *dynamodb.DynamoDB
	table  string
}

func NewDynamoStorage(client *dynamodb.DynamoDB, table string) *DynamoStorage {
	return &DynamoStorage{
		client: client,
		table:  table,
	}
}

// EnsureTable 資料表不存在時建立並等待其可用
func (s *DynamoStorage) EnsureTable(ctx context.Context) error {
	_, err := s.client.DescribeTableWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err == nil {
		return nil
	}
	if !isResourceNotFound(err) {
		return err
	}

	_, err = s.client.CreateTableWithContext(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{
				AttributeName: aws.String("position"),
				AttributeType: aws.String("N"),
			},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{
				AttributeName: aws.String("position"),
				KeyType:       aws.String("HASH"),
			},
		},
		BillingMode: aws.String(dynamodb.BillingModePayPerRequest),
	})
	if err != nil {
		return err
	}

	return s.client.WaitUntilTableExistsWithContext(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
}

func (s *DynamoStorage) Load(ctx context.Context) ([]model.Ticket, error) {
	items, err := s.scan(ctx, nil)
	if err != nil {
		if isResourceNotFound(err) {
			return []model.Ticket{}, nil
		}
		return nil, err
	}

	type positioned struct {
		position int
		ticket   model.Ticket
	}

	rows := make([]positioned, 0, len(items))
	for _, item := range items {
		position, ticket, err := hydrateDynamoTicket(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrCorruptData, err)
		}
		rows = append(rows, positioned{position: position, ticket: ticket})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].position < rows[j].position
	})

	tickets := make([]model.Ticket, len(rows))
	for i, r := range rows {
		tickets[i] = r.ticket
	}

	return tickets, nil
}

// Save 先覆寫新資料的每個 position，再刪除超出新長度的舊 item
func (s *DynamoStorage) Save(ctx context.Context, tickets []model.Ticket) error {
	existing, err := s.scan(ctx, aws.String("#p"))
	if err != nil {
		return err
	}

	requests := make([]*dynamodb.WriteRequest, 0, len(tickets))
	for i, t := range tickets {
		requests = append(requests, &dynamodb.WriteRequest{
			PutRequest: &dynamodb.PutRequest{Item: dehydrateDynamoTicket(i, t)},
		})
	}

	for _, item := range existing {
		position, err := strconv.Atoi(aws.StringValue(item["position"].N))
		if err != nil {
			return fmt.Errorf("%w: invalid position: %v", apperrors.ErrCorruptData, err)
		}
		if position < len(tickets) {
			continue
		}
		requests = append(requests, &dynamodb.WriteRequest{
			DeleteRequest: &dynamodb.DeleteRequest{
				Key: map[string]*dynamodb.AttributeValue{
					"position": item["position"],
				},
			},
		})
	}

	for start := 0; start < len(requests); start += dynamoBatchSize {
		end := start + dynamoBatchSize
		if end > len(requests) {
			end = len(requests)
		}
		if err := s.batchWrite(ctx, requests[start:end]); err != nil {
			return err
		}
	}

	return nil
}

// batchWrite 重送 UnprocessedItems 直到全部寫入
func (s *DynamoStorage) batchWrite(ctx context.Context, requests []*dynamodb.WriteRequest) error {
	pending := map[string][]*dynamodb.WriteRequest{s.table: requests}

	for len(pending[s.table]) > 0 {
		out, err := s.client.BatchWriteItemWithContext(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: pending,
		})
		if err != nil {
			return err
		}
		pending = out.UnprocessedItems
		if pending == nil {
			return nil
		}
	}

	return nil
}

func (s *DynamoStorage) scan(ctx context.Context, projection *string) ([]map[string]*dynamodb.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	}
	if projection != nil {
		input.ProjectionExpression = projection
		input.ExpressionAttributeNames = map[string]*string{"#p": aws.String("position")}
	}

	items := make([]map[string]*dynamodb.AttributeValue, 0)
	err := s.client.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		items = append(items, page.Items...)
		return true
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

func isResourceNotFound(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == dynamodb.ErrCodeResourceNotFoundException
	}
	return false
}

func dehydrateDynamoTicket(position int, t model.Ticket) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"position": {
			N: aws.String(strconv.Itoa(position)),
		},
		"ticket_id": {
			S: aws.String(t.TicketID),
		},
		"flight_num": {
			S: aws.String(t.FlightNum),
		},
		"origin": {
			S: aws.String(t.Origin),
		},
		"destination": {
			S: aws.String(t.Destination),
		},
		"date": {
			S: aws.String(t.Date),
		},
		"price": {
			N: aws.String(strconv.FormatFloat(t.Price, 'f', -1, 64)),
		},
		"seats_left": {
			N: aws.String(strconv.Itoa(t.SeatsLeft)),
		},
	}
}

func hydrateDynamoTicket(item map[string]*dynamodb.AttributeValue) (int, model.Ticket, error) {
	str := func(name string) string {
		if v, ok := item[name]; ok {
			return aws.StringValue(v.S)
		}
		return ""
	}
	num := func(name string) string {
		if v, ok := item[name]; ok {
			return aws.StringValue(v.N)
		}
		return ""
	}

	position, err := strconv.Atoi(num("position"))
	if err != nil {
		return 0, model.Ticket{}, fmt.Errorf("invalid position: %v", err)
	}

	price, err := strconv.ParseFloat(num("price"), 64)
	if err != nil {
		return 0, model.Ticket{}, fmt.Errorf("invalid price: %v", err)
	}

	seats, err := strconv.Atoi(num("seats_left"))
	if err != nil {
		return 0, model.Ticket{}, fmt.Errorf("invalid seats_left: %v", err)
	}

	return position, model.Ticket{
		TicketID:    str("ticket_id"),
		FlightNum:   str("flight_num"),
		Origin:      str("origin"),
		Destination: str("destination"),
		Date:        str("date"),
		Price:       price,
		SeatsLeft:   seats,
	}, nil
}
