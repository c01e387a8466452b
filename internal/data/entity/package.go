package entity

type Package struct {
	BaseNoDelete
	Name          string   `db:"name"`
	Description   string   `db:"description"`
	StartingPrice int      `db:"starting_price"`
	Deliverables  []string `db:"deliverables"`
	IsPopular     bool     `db:"is_popular"`
	DisplayOrder  int      `db:"display_order"`
}
