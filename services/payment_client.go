package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

var ErrPaymentDeclined = errors.New("payment declined")

// ChargeItem mirrors one cart line in the collaborator payload.
type ChargeItem struct {
	Item     uint  `json:"item"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
}

type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ChargeRequest is the transaction payload handed to the external
// transaction-submission API.
type ChargeRequest struct {
	Items           []ChargeItem    `json:"items"`
	TotalAmount     int64           `json:"totalAmount"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	Status          string          `json:"status"`
}

type chargeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// PaymentClient talks to the external transaction API. The circuit breaker
// keeps a dead payment provider from hanging every checkout behind a timeout.
type PaymentClient struct {
	rc      *resty.Client
	breaker *gobreaker.CircuitBreaker
}

func NewPaymentClient(baseURL, apiKey string) *PaymentClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Second).
		SetRetryCount(0) // checkout retries are the cashier's call, not ours
	if apiKey != "" {
		rc.SetHeader("Authorization", "Bearer "+apiKey)
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "payment-api",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{
				"circuit": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("payment circuit state changed")
		},
	})

	return &PaymentClient{rc: rc, breaker: cb}
}

// Charge submits the transaction. Any error means the caller must leave the
// cart and order context untouched so the same submission can be retried.
func (p *PaymentClient) Charge(req *ChargeRequest) error {
	_, err := p.breaker.Execute(func() (any, error) {
		var out chargeResponse
		resp, err := p.rc.R().
			SetBody(req).
			SetResult(&out).
			Post("/transactions")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("payment api returned %d", resp.StatusCode())
		}
		if !out.Success {
			if out.Error != "" {
				return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, out.Error)
			}
			return nil, ErrPaymentDeclined
		}
		return nil, nil
	})
	return err
}
