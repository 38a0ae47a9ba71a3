package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type LineItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	BuyerID       int64      `json:"buyer_id"`
	AddressID     int64      `json:"address_id"`
	PaymentMethod string     `json:"payment_method"`
	TotalAmount   float64    `json:"total_amount"`
	LineItems     []LineItem `json:"line_items"`
}

type Created struct {
	OrderNumber string `json:"order_number"`
}

type Tracking struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	UpdateTime  time.Time `json:"update_time"`
}

var steps = []Tracking{
	{Status: "Packed", Description: "Order packed at warehouse"},
	{Status: "In transit", Description: "Left Nairobi hub"},
	{Status: "Out for delivery", Description: "Courier is on the way"},
}

func generateRandomOrder() Order {
	n := rand.IntN(3) + 1
	items := make([]LineItem, 0, n)
	var total float64
	for i := 0; i < n; i++ {
		item := LineItem{
			ProductID: int64(rand.IntN(5) + 1),
			Quantity:  rand.IntN(3) + 1,
			Price:     float64(rand.IntN(2000)+100) / 2,
		}
		total += item.Price * float64(item.Quantity)
		items = append(items, item)
	}

	return Order{
		BuyerID:       int64(rand.IntN(10) + 1),
		AddressID:     int64(rand.IntN(3) + 1),
		PaymentMethod: "mpesa",
		TotalAmount:   total,
		LineItems:     items,
	}
}

func createOrder(ctx context.Context, client *http.Client, baseURL string, o Order) (string, error) {
	body, err := json.Marshal(o)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var created Created
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.OrderNumber, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	baseURL := env("STOREFRONT_URL", "http://localhost:8080")

	writer := &kafka.Writer{
		Addr:     kafka.TCP(env("KAFKA_BROKER", "localhost:9092")),
		Topic:    env("KAFKA_TRACKING_TOPIC", "order-tracking"),
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// номер заказа -> сколько шагов доставки уже отправлено
	progress := make(map[string]int)

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			number, err := createOrder(ctx, client, baseURL, generateRandomOrder())
			if err != nil {
				log.Println("failed to create order:", err)
			} else {
				progress[number] = 0
				log.Println("order created", number)
			}

			for number, sent := range progress {
				if sent == len(steps) {
					delete(progress, number)
					continue
				}
				step := steps[sent]
				step.OrderNumber = number
				step.UpdateTime = time.Now()

				data, _ := json.Marshal(step)
				if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(number), Value: data}); err != nil {
					log.Println("failed to write tracking:", err)
					continue
				}
				progress[number] = sent + 1
			}
		case <-ctx.Done():
			return
		}
	}
}
