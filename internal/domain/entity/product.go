package entity

import "time"

type Product struct {
	ID          string    `firestore:"id" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	Price       float64   `firestore:"price" json:"price"`
	Category    string    `firestore:"category" json:"category"`
	Stock       int       `firestore:"stock" json:"stock"`
	IsAvailable bool      `firestore:"isAvailable" json:"isAvailable"`
	SellerID    string    `firestore:"sellerId" json:"sellerId"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

var ProductCategories = []string{
	"Electronics",
	"Fashion",
	"Home & Kitchen",
	"Groceries",
	"Beauty",
	"Books",
	"Sports",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range ProductCategories {
		if c == category {
			return true
		}
	}
	return false
}
