package mpesa

import (
	"encoding/json"
	"fmt"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

// Callback - результат STK push, который Daraja присылает на CallbackURL.
type Callback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	// Заполняется только при успешной оплате
	ReceiptNumber string
	Amount        float64
	PhoneNumber   string
}

type callbackEnvelope struct {
	Body *struct {
		STKCallback *struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        *int   `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  *struct {
				Item []struct {
					Name  string          `json:"Name"`
					Value json.RawMessage `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

// ParseCallback требует Body.stkCallback с CheckoutRequestID и ResultCode,
// остальные поля необязательны.
func ParseCallback(payload []byte) (Callback, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Callback{}, fmt.Errorf("%w: %w", entities.ErrCallbackFormat, err)
	}
	if env.Body == nil || env.Body.STKCallback == nil {
		return Callback{}, fmt.Errorf("%w: missing Body.stkCallback", entities.ErrCallbackFormat)
	}

	stk := env.Body.STKCallback
	if stk.CheckoutRequestID == "" || stk.ResultCode == nil {
		return Callback{}, fmt.Errorf("%w: missing CheckoutRequestID or ResultCode", entities.ErrCallbackFormat)
	}

	cb := Callback{
		MerchantRequestID: stk.MerchantRequestID,
		CheckoutRequestID: stk.CheckoutRequestID,
		ResultCode:        *stk.ResultCode,
		ResultDesc:        stk.ResultDesc,
	}

	if stk.CallbackMetadata != nil {
		for _, it := range stk.CallbackMetadata.Item {
			switch it.Name {
			case "MpesaReceiptNumber":
				_ = json.Unmarshal(it.Value, &cb.ReceiptNumber)
			case "Amount":
				_ = json.Unmarshal(it.Value, &cb.Amount)
			case "PhoneNumber":
				var n json.Number
				if json.Unmarshal(it.Value, &n) == nil {
					cb.PhoneNumber = n.String()
				}
			}
		}
	}
	return cb, nil
}
