package handler

import (
	"strings"
	"testing"
)

func TestNewOrderIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newOrderID()
		if !strings.HasPrefix(id, "order_") {
			t.Fatalf("missing prefix: %q", id)
		}
		if len(id) != len("order_")+8 {
			t.Fatalf("unexpected length: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate order id %q", id)
		}
		seen[id] = true
	}
}
