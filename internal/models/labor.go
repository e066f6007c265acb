package models

// UnitOfMeasure is a row of the units_of_measure table.
type UnitOfMeasure struct {
	UnitID      string `db:"unit_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Labor is a row of the labors table joined with its unit name.
type Labor struct {
	LaborID      string  `db:"labor_id"`
	Code         string  `db:"code"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	UnitID       string  `db:"unit_id"`
	UnitName     string  `db:"unit_name"`
	IsSpecial    bool    `db:"is_special"`
	ContractOnly bool    `db:"contract_only"`
	Active       bool    `db:"active"`
	AuditFields
}
