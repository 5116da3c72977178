package domain

// Goods is the managed resource record.
type Goods struct {
	ID   string
	Name string
}
