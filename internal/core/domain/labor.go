package domain

// UnitName identifies a unit of measure for labors.
type UnitName string

const (
	UnitDay      UnitName = "DIA"
	UnitPiece    UnitName = "UNIDAD"
	UnitHectare  UnitName = "HECTAREA"
	UnitLinearMt UnitName = "METRO"
)

// UnitOfMeasure is how a labor's quantity is counted.
type UnitOfMeasure struct {
	UnitID      string   `json:"unitID"`
	Name        UnitName `json:"name"`
	Description string   `json:"description"`
}

// Labor is a catalog entry for a piece of work that can be recorded and priced.
type Labor struct {
	LaborID      string   `json:"laborID"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	UnitID       string   `json:"unitID"`
	UnitName     UnitName `json:"unitName"`
	IsSpecial    bool     `json:"isSpecial"`    // holiday, sick leave, unjustified absence, sunday
	ContractOnly bool     `json:"contractOnly"` // only workers with contract may record it
	Active       bool     `json:"active"`
	AuditFields
}

// LaborFilter narrows labor listings.
type LaborFilter struct {
	Active    *bool
	UnitID    *string
	IsSpecial *bool
	Search    string
	Limit     int
	Offset    int
}
