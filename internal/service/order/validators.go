package order

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidItem(item ItemDraft) bool {
	return strings.TrimSpace(item.Name) != "" &&
		item.Quantity > 0 &&
		item.UnitPrice >= 0
}
