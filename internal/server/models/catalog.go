package models

import "time"

// Car is a row of the car_stock table. Image and AdditionalImages hold
// object-storage keys, not URLs.
type Car struct {
	ID               int64   `json:"id"`
	Make             string  `json:"make"`
	Model            string  `json:"model"`
	Year             int     `json:"year"`
	Price            float64 `json:"price"`
	Image            string  `json:"image"`
	Color            string  `json:"color"`
	Engine           string  `json:"engine"`
	Kms              int64   `json:"kms"`
	Combustible      string  `json:"combustible"`
	Description      string  `json:"description"`
	AdditionalImages string  `json:"additional_images"`
}

// Product is a row of the product_stock table.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// Service is a row of the services table.
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Sale is a row of the sales table (promotions shown on the landing page).
type Sale struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// TeamMember is a row of the team table.
type TeamMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// AboutUs is a row of the about_us table. The site shows a single record,
// but the table is not constrained to one.
type AboutUs struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	FirstText  string `json:"first_text"`
	Subtitle   string `json:"subtitle"`
	SecondText string `json:"second_text"`
}

// Message is an inbound contact-form message. ReservationDate is the
// free-form date the visitor asked for on the form; it may be empty.
type Message struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Content         string    `json:"content"`
	ReservationDate string    `json:"reservation_date"`
	CreatedAt       time.Time `json:"created_at"`
}
