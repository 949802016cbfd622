package models

type Venue struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	City      string `db:"city" json:"city"`
	Contact   string `db:"contact" json:"contact"`
	OwnerName string `db:"owner_name" json:"owner_name"`
}
