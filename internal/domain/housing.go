package domain

import (
	"errors"
	"time"
)

// ErrHousingOfferNotFound indicates that the housing offer is not found.
var ErrHousingOfferNotFound = errors.New("housing offer not found")

// HousingOffer is a static catalog entry describing a property for sale.
type HousingOffer struct {
	ID           int32     `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Location     string    `json:"location"`
	Price        string    `json:"price"`
	Bedrooms     int32     `json:"bedrooms"`
	Bathrooms    int32     `json:"bathrooms"`
	Sqft         int32     `json:"sqft"`
	PropertyType string    `json:"propertyType"`
	MortgageRate string    `json:"mortgageRate"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MortgageApplication is a customer's request to finance a housing offer.
type MortgageApplication struct {
	ID               int32     `json:"id"`
	Username         string    `json:"username"`
	HousingOfferID   int32     `json:"housingOfferId"`
	DownPayment      string    `json:"downPayment"`
	LoanAmount       string    `json:"loanAmount"`
	TermYears        int32     `json:"termYears"`
	EmploymentStatus string    `json:"employmentStatus"`
	AnnualIncome     string    `json:"annualIncome"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ApplyMortgageParams is the applicant-supplied part of a mortgage application.
type ApplyMortgageParams struct {
	DownPayment      string `json:"downPayment"`
	TermYears        int32  `json:"termYears"`
	EmploymentStatus string `json:"employmentStatus"`
	AnnualIncome     string `json:"annualIncome"`
}

// CreateMortgageApplicationParams is the input data to submit a mortgage application.
type CreateMortgageApplicationParams struct {
	Username         string `json:"username"`
	HousingOfferID   int32  `json:"housingOfferId"`
	DownPayment      string `json:"downPayment"`
	LoanAmount       string `json:"loanAmount"`
	TermYears        int32  `json:"termYears"`
	EmploymentStatus string `json:"employmentStatus"`
	AnnualIncome     string `json:"annualIncome"`
}
