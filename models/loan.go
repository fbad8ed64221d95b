package models

import (
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/vishwasvr/guhae-rental-property-app/utils"
)

// Loan is a loan sub-record of a property. Its partition key always equals
// the parent property's partition key; ownership is derived from the parent,
// never from the loan item itself.
type Loan struct {
	PK string `json:"-" dynamodbav:"pk"`
	SK string `json:"-" dynamodbav:"sk"`

	ID             string  `json:"id" dynamodbav:"id"`
	PropertyID     string  `json:"propertyId" dynamodbav:"property_id"`
	Lender         string  `json:"lender" dynamodbav:"lender"`
	LoanType       string  `json:"loanType" dynamodbav:"loan_type"`
	OriginalAmount float64 `json:"originalAmount" dynamodbav:"original_amount"`
	CurrentAmount  float64 `json:"currentAmount" dynamodbav:"current_amount"`
	InterestRate   float64 `json:"interestRate" dynamodbav:"interest_rate"`
	TermYears      int     `json:"termYears" dynamodbav:"term_years"`
	MonthlyPayment float64 `json:"monthlyPayment" dynamodbav:"monthly_payment"`
	StartDate      string  `json:"startDate" dynamodbav:"start_date"`
	MaturityDate   string  `json:"maturityDate" dynamodbav:"maturity_date"`
	IsActive       bool    `json:"isActive" dynamodbav:"is_active"`
	CreatedAt      string  `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt      string  `json:"updatedAt" dynamodbav:"updated_at"`
}

// LoanCreateRequest is the wire payload accepted by the loan create handler.
type LoanCreateRequest struct {
	Lender         string  `json:"lender"`
	LoanType       string  `json:"loanType"`
	OriginalAmount float64 `json:"originalAmount"`
	CurrentAmount  float64 `json:"currentAmount"`
	InterestRate   float64 `json:"interestRate"`
	TermYears      int     `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	StartDate      string  `json:"startDate"`
	MaturityDate   string  `json:"maturityDate"`
	IsActive       bool    `json:"isActive"`
}

var loanFieldMap = map[string]string{
	"lender":         "lender",
	"loanType":       "loan_type",
	"originalAmount": "original_amount",
	"currentAmount":  "current_amount",
	"interestRate":   "interest_rate",
	"termYears":      "term_years",
	"monthlyPayment": "monthly_payment",
	"startDate":      "start_date",
	"maturityDate":   "maturity_date",
	"isActive":       "is_active",
}

// LoanUpdateAttributes converts a wire loan payload into storage attribute
// changes.
func LoanUpdateAttributes(wire map[string]interface{}) map[string]interface{} {
	return translateFields(wire, loanFieldMap)
}

// FormatLoan converts a stored loan item into its wire representation.
func FormatLoan(item map[string]types.AttributeValue) Loan {
	var l Loan
	if err := attributevalue.UnmarshalMap(item, &l); err != nil {
		l = Loan{
			ID:         utils.ExtractString(item, "id"),
			PropertyID: utils.ExtractString(item, "property_id"),
		}
	}
	l.PK, l.SK = "", ""
	return l
}
