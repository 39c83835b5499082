package markets

import (
	"fmt"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/domain/pagination"
	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// Currencies accepted for a market
var Currencies = []string{"EUR", "CHF", "USD", "GBP", "CAD", "JPY"}

// Timezones accepted for a market
var Timezones = []string{
	"Europe/Paris", "Europe/Brussels", "Europe/Zurich", "Europe/Madrid",
	"Europe/Berlin", "Europe/London", "Europe/Rome", "Europe/Amsterdam",
	"America/New_York", "America/Los_Angeles", "America/Toronto", "America/Montreal",
	"UTC",
}

// Market entity
type Market struct {
	ID                 string   `validate:"required,uuid4"`
	Name               string   `validate:"required,min=1,max=100"`
	Code               string   `validate:"required,marketcode"`
	CurrencyCode       string   `validate:"required,oneof=EUR CHF USD GBP CAD JPY"`
	Timezone           string   `validate:"required,oneof=Europe/Paris Europe/Brussels Europe/Zurich Europe/Madrid Europe/Berlin Europe/London Europe/Rome Europe/Amsterdam America/New_York America/Los_Angeles America/Toronto America/Montreal UTC"`
	SupportedLanguages []string `validate:"required,min=1,unique,dive,lang"`
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate for validating Market struct
func (m *Market) Validate() error {
	return validators.ValidateStruct(m)
}

// Patch is a partial update of a market; nil fields are left untouched
type Patch struct {
	Name               *string  `validate:"omitempty,min=1,max=100"`
	Code               *string  `validate:"omitempty,marketcode"`
	CurrencyCode       *string  `validate:"omitempty,oneof=EUR CHF USD GBP CAD JPY"`
	Timezone           *string  `validate:"omitempty,oneof=Europe/Paris Europe/Brussels Europe/Zurich Europe/Madrid Europe/Berlin Europe/London Europe/Rome Europe/Amsterdam America/New_York America/Los_Angeles America/Toronto America/Montreal UTC"`
	SupportedLanguages []string `validate:"omitempty,min=1,unique,dive,lang"`
	IsActive           *bool
}

// Validate for validating Patch struct
func (p *Patch) Validate() error {
	if p.Empty() {
		return ErrEmptyPatch
	}
	return validators.ValidateStruct(p)
}

// Empty reports whether the patch changes nothing
func (p *Patch) Empty() bool {
	return p.Name == nil && p.Code == nil && p.CurrencyCode == nil &&
		p.Timezone == nil && p.SupportedLanguages == nil && p.IsActive == nil
}

// Apply copies the set fields of p onto m
func (p *Patch) Apply(m *Market) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Code != nil {
		m.Code = *p.Code
	}
	if p.CurrencyCode != nil {
		m.CurrencyCode = *p.CurrencyCode
	}
	if p.Timezone != nil {
		m.Timezone = *p.Timezone
	}
	if p.SupportedLanguages != nil {
		m.SupportedLanguages = p.SupportedLanguages
	}
	if p.IsActive != nil {
		m.IsActive = *p.IsActive
	}
}

var sortableColumns = map[string]bool{"id": true, "name": true, "code": true, "created_at": true}

// Query filters the market list
type Query struct {
	Page     int `validate:"min=1"`
	Limit    int `validate:"min=1,max=100"`
	IsActive *bool
	Search   string `validate:"omitempty,max=100"`
	Sort     string
	Order    string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery returns the default query: first page of 20 sorted by id
func NewQuery() *Query {
	return &Query{Page: 1, Limit: 20, Sort: "id", Order: "asc"}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	if err := validators.ValidateStruct(q); err != nil {
		return err
	}
	if q.Sort != "" && !sortableColumns[q.Sort] {
		return fmt.Errorf("%w: cannot sort by %q", validators.ErrValidation, q.Sort)
	}
	return nil
}

// MarketPage is one page of markets
type MarketPage struct {
	Data       []*Market
	Pagination pagination.Page
}

// Stats counts what a market holds
type Stats struct {
	TotalContractors  int64
	ActiveContractors int64
	TotalServices     int64
}
