package domain

// ItemType distinguishes the two kinds of cart line items.
type ItemType string

const (
	ItemTypeCruise ItemType = "cruise"
	ItemTypeCabin  ItemType = "cabin"
)

// CartItem is one line in the session cart. Identity is the ID; adding an
// item with an existing ID merges into the existing line.
type CartItem struct {
	ID             string   `json:"id"`
	Type           ItemType `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	UnitPriceCents int64    `json:"unitPriceCents"`
	Quantity       int      `json:"quantity"`
	ImageURL       string   `json:"imageUrl,omitempty"`
}

// CartSnapshot is a consistent read of the cart: the items together with the
// totals derived from them at the same instant.
type CartSnapshot struct {
	Items      []CartItem `json:"items"`
	ItemCount  int        `json:"itemCount"`
	TotalCents int64      `json:"totalCents"`
}
