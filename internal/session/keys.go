package session

import "fmt"

func StatusKey(checkoutID string) string {
	return fmt.Sprintf("storefront:payment:status:%s", checkoutID)
}
