package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
)

const (
	tokenPath    = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath  = "/mpesa/stkpush/v1/processrequest"
	timestampFmt = "20060102150405"

	// Токен обновляется заранее, чтобы не истечь посреди запроса
	tokenLeeway = time.Minute
)

// Daraja ждёт метку времени по Найроби
var eat = time.FixedZone("EAT", 3*60*60)

var ErrUnexpectedResponse = errors.New("unexpected daraja response")

type Client struct {
	httpClient *http.Client
	cfg        config.Mpesa
	now        func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(cfg config.Mpesa) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		now:        time.Now,
	}
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// STKPush отправляет запрос на оплату на телефон покупателя и возвращает
// CheckoutRequestID, по которому придёт callback.
func (c *Client) STKPush(ctx context.Context, phone string, amount int64) (string, error) {
	msisdn, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return "", err
	}

	ts := c.now().In(eat).Format(timestampFmt)
	req := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          Password(c.cfg.ShortCode, c.cfg.PassKey, ts),
		Timestamp:         ts,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  "Storefront",
		TransactionDesc:   "Order payment",
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal stk push request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build stk push request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	var res stkPushResponse
	status, err := c.do(httpReq, &res)
	if err != nil {
		return "", err
	}

	if status == http.StatusUnauthorized {
		c.resetToken()
	}
	if status != http.StatusOK || res.ResponseCode != "0" {
		return "", fmt.Errorf("%w: stk push status %d, code %q: %s%s",
			ErrUnexpectedResponse, status, res.ResponseCode+res.ErrorCode, res.ResponseDescription, res.ErrorMessage)
	}
	if res.CheckoutRequestID == "" {
		return "", fmt.Errorf("%w: empty CheckoutRequestID", ErrUnexpectedResponse)
	}
	return res.CheckoutRequestID, nil
}

// Password - base64(shortcode + passkey + timestamp).
func Password(shortCode, passKey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passKey + timestamp))
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	var res tokenResponse
	status, err := c.do(req, &res)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK || res.AccessToken == "" {
		return "", fmt.Errorf("%w: token status %d", ErrUnexpectedResponse, status)
	}

	ttl := time.Hour
	if sec, err := strconv.Atoi(res.ExpiresIn); err == nil && sec > 0 {
		ttl = time.Duration(sec) * time.Second
	}
	if ttl > tokenLeeway {
		ttl -= tokenLeeway
	}

	c.token = res.AccessToken
	c.tokenExpiry = c.now().Add(ttl)
	return c.token, nil
}

func (c *Client) resetToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *Client) do(req *http.Request, dest any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("daraja request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read daraja response: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, dest); err != nil {
			return resp.StatusCode, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
		}
	}
	return resp.StatusCode, nil
}
