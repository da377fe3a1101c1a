package mapping_test

import (
	"fmt"

	"github.com/wiremaphq/wiremap/pkg/mapping"
)

// Example shows the full lifecycle of a drag-to-connect gesture: start on a
// source, commit on a target, and read the derived connection list.
func Example() {
	store := mapping.New("demo")

	store.AddConnection("sku", "product_code")

	// A drag gesture from "price" released over "unit_price".
	store.StartConnection("price")
	store.EndConnection("unit_price")

	for _, c := range store.Connections() {
		fmt.Println(c.ID)
	}

	// A canceled gesture leaves the mapping untouched.
	store.StartConnection("qty")
	store.CancelConnection()
	fmt.Println(store.Len(), store.IsDragging())

	// Output:
	// sku->product_code
	// price->unit_price
	// 2 false
}
