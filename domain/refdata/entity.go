// Package refdata holds the fund reference-data entities shared by the
// domain packages. All five node types live here so that cross-entity
// inlining (a fund response carrying its share classes, a share class
// carrying its fund) never creates package cycles.
package refdata

import (
	"time"

	"github.com/uptrace/bun"
)

// LegalEntity represents a row in ref.legal_entities
type LegalEntity struct {
	bun.BaseModel `bun:"table:ref.legal_entities,alias:le"`

	LEID         string    `bun:"le_id,pk" json:"le_id"`
	LEI          string    `bun:"lei,notnull" json:"lei"`
	LegalName    string    `bun:"legal_name,notnull" json:"legal_name"`
	Jurisdiction string    `bun:"jurisdiction" json:"jurisdiction"`
	EntityType   string    `bun:"entity_type" json:"entity_type"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// ManagementEntity represents a row in ref.management_entities
type ManagementEntity struct {
	bun.BaseModel `bun:"table:ref.management_entities,alias:me"`

	MgmtID         string    `bun:"mgmt_id,pk" json:"mgmt_id"`
	LEID           string    `bun:"le_id,notnull" json:"le_id"`
	RegistrationNo string    `bun:"registration_no" json:"registration_no"`
	Domicile       string    `bun:"domicile" json:"domicile"`
	EntityType     string    `bun:"entity_type" json:"entity_type"`
	Status         string    `bun:"status,notnull,default:'ACTIVE'" json:"status"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt      time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Populated only when requested
	LegalEntity *LegalEntity `bun:"rel:belongs-to,join:le_id=le_id" json:"legal_entity,omitempty"`
	TotalFunds  *int         `bun:"total_funds,scanonly" json:"total_funds,omitempty"`
}

// Fund represents a row in ref.funds
type Fund struct {
	bun.BaseModel `bun:"table:ref.funds,alias:f"`

	FundID       string    `bun:"fund_id,pk" json:"fund_id"`
	FundCode     string    `bun:"fund_code,notnull" json:"fund_code"`
	FundName     string    `bun:"fund_name,notnull" json:"fund_name"`
	FundType     string    `bun:"fund_type,notnull" json:"fund_type"`
	BaseCurrency string    `bun:"base_currency" json:"base_currency"`
	Domicile     string    `bun:"domicile" json:"domicile"`
	ISINMaster   string    `bun:"isin_master" json:"isin_master"`
	Status       string    `bun:"status,notnull,default:'ACTIVE'" json:"status"`
	MgmtID       string    `bun:"mgmt_id,notnull" json:"mgmt_id"`
	LEID         string    `bun:"le_id,nullzero" json:"le_id,omitempty"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Populated only when requested
	ManagementEntity *ManagementEntity `bun:"rel:belongs-to,join:mgmt_id=mgmt_id" json:"management_entity,omitempty"`
	LegalEntity      *LegalEntity      `bun:"rel:belongs-to,join:le_id=le_id" json:"legal_entity,omitempty"`
	ShareClasses     []*ShareClass     `bun:"rel:has-many,join:fund_id=fund_id" json:"share_classes,omitempty"`
	SubFunds         []*SubFund        `bun:"rel:has-many,join:fund_id=parent_fund_id" json:"subfunds,omitempty"`
}

// SubFund represents a row in ref.subfunds.
// Exactly one of ParentFundID / ParentSubFundID is set (DB CHECK).
type SubFund struct {
	bun.BaseModel `bun:"table:ref.subfunds,alias:sf"`

	SubFundID       string    `bun:"subfund_id,pk" json:"subfund_id"`
	ParentFundID    *string   `bun:"parent_fund_id" json:"parent_fund_id,omitempty"`
	ParentSubFundID *string   `bun:"parent_subfund_id" json:"parent_subfund_id,omitempty"`
	MgmtID          string    `bun:"mgmt_id,nullzero" json:"mgmt_id,omitempty"`
	LEID            string    `bun:"le_id,nullzero" json:"le_id,omitempty"`
	ISINSub         string    `bun:"isin_sub" json:"isin_sub"`
	Currency        string    `bun:"currency" json:"currency"`
	Status          string    `bun:"status,notnull,default:'ACTIVE'" json:"status"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Populated only when requested
	ParentFund       *Fund             `bun:"rel:belongs-to,join:parent_fund_id=fund_id" json:"parent_fund,omitempty"`
	ManagementEntity *ManagementEntity `bun:"rel:belongs-to,join:mgmt_id=mgmt_id" json:"management_entity,omitempty"`
	LegalEntity      *LegalEntity      `bun:"rel:belongs-to,join:le_id=le_id" json:"legal_entity,omitempty"`
	ShareClasses     []*ShareClass     `bun:"rel:has-many,join:subfund_id=subfund_id" json:"share_classes,omitempty"`
}

// ShareClass represents a row in ref.share_classes.
// Exactly one of FundID / SubFundID is set (DB CHECK).
type ShareClass struct {
	bun.BaseModel `bun:"table:ref.share_classes,alias:sc"`

	SCID         string    `bun:"sc_id,pk" json:"sc_id"`
	FundID       *string   `bun:"fund_id" json:"fund_id,omitempty"`
	SubFundID    *string   `bun:"subfund_id" json:"subfund_id,omitempty"`
	ISINSC       string    `bun:"isin_sc" json:"isin_sc"`
	Currency     string    `bun:"currency" json:"currency"`
	Distribution string    `bun:"distribution" json:"distribution"`
	FeeMgmt      float64   `bun:"fee_mgmt" json:"fee_mgmt"`
	PerfFee      float64   `bun:"perf_fee" json:"perf_fee"`
	ExpenseRatio float64   `bun:"expense_ratio" json:"expense_ratio"`
	NAV          float64   `bun:"nav" json:"nav"`
	AUM          float64   `bun:"aum" json:"aum"`
	Status       string    `bun:"status,notnull,default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	// Populated only when requested
	Fund    *Fund    `bun:"rel:belongs-to,join:fund_id=fund_id" json:"fund,omitempty"`
	SubFund *SubFund `bun:"rel:belongs-to,join:subfund_id=subfund_id" json:"subfund,omitempty"`
}
