package models

import "time"

// Review is a user-submitted product review. The store keeps whatever
// it is handed; shape checks belong to the submitting boundary.
type Review struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
