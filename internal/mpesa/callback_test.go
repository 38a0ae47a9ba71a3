package mpesa

import (
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	t.Run("success with metadata", func(t *testing.T) {
		payload := `{"Body":{"stkCallback":{
			"MerchantRequestID":"m-1","CheckoutRequestID":"ws_CO_1","ResultCode":0,
			"ResultDesc":"The service request is processed successfully.",
			"CallbackMetadata":{"Item":[
				{"Name":"Amount","Value":150.00},
				{"Name":"MpesaReceiptNumber","Value":"NLJ7RT61SV"},
				{"Name":"TransactionDate","Value":20191219102115},
				{"Name":"PhoneNumber","Value":254712345678}
			]}}}}`

		cb, err := ParseCallback([]byte(payload))
		require.NoError(t, err)
		assert.Equal(t, "ws_CO_1", cb.CheckoutRequestID)
		assert.Equal(t, 0, cb.ResultCode)
		assert.Equal(t, "NLJ7RT61SV", cb.ReceiptNumber)
		assert.Equal(t, 150.0, cb.Amount)
		assert.Equal(t, "254712345678", cb.PhoneNumber)
	})

	t.Run("cancelled without metadata", func(t *testing.T) {
		payload := `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_2","ResultCode":1032,"ResultDesc":"Request cancelled by user"}}}`

		cb, err := ParseCallback([]byte(payload))
		require.NoError(t, err)
		assert.Equal(t, 1032, cb.ResultCode)
		assert.Empty(t, cb.ReceiptNumber)
	})

	malformed := map[string]string{
		"not json":           `{"Body":`,
		"no body":            `{}`,
		"no stk callback":    `{"Body":{}}`,
		"no checkout id":     `{"Body":{"stkCallback":{"ResultCode":0}}}`,
		"no result code":     `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_3"}}}`,
		"result code string": `{"Body":{"stkCallback":{"CheckoutRequestID":"ws_CO_3","ResultCode":"zero"}}}`,
	}
	for name, payload := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCallback([]byte(payload))
			assert.ErrorIs(t, err, entities.ErrCallbackFormat)
		})
	}
}
