// Package model defines the core domain entities for the DST service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrugReference is the read-only reference record for one
// anti-tuberculosis drug: the canonical molecular weight, default
// diluent and default critical concentration used when the request does
// not override them.
type DrugReference struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// DrugID is the stable identifier used in API requests, e.g. "inh".
	DrugID string `bson:"drug_id" json:"drug_id" example:"inh"`
	// Name is the display name, e.g. "Isoniazid (INH)".
	Name string `bson:"name" json:"name" example:"Isoniazid (INH)"`
	// MolecularWeight is the reference compound molecular weight in g/mol.
	MolecularWeight float64 `bson:"molecular_weight" json:"molecular_weight_g_mol" example:"137.14"`
	// Diluent is the default solvent, e.g. "Distilled water".
	Diluent string `bson:"diluent" json:"diluent" example:"Distilled water"`
	// CriticalConcentration is the default critical concentration in µg/mL.
	CriticalConcentration float64 `bson:"critical_concentration" json:"critical_concentration_ug_ml" example:"0.1"`
	// Available marks drugs the laboratory currently stocks.
	Available bool      `bson:"available" json:"available"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Valid reports whether the reference record satisfies its invariants:
// positive molecular weight and non-negative critical concentration.
func (d DrugReference) Valid() bool {
	return d.DrugID != "" && d.MolecularWeight > 0 && d.CriticalConcentration >= 0
}

// DefaultDrugPanel is the standard pDST drug panel seeded into an empty
// reference store. Molecular weights and critical concentrations follow
// the WHO technical manual.
var DefaultDrugPanel = []DrugReference{
	{DrugID: "inh", Name: "Isoniazid (INH)", MolecularWeight: 137.14, Diluent: "Distilled water", CriticalConcentration: 0.1, Available: true},
	{DrugID: "rif", Name: "Rifampicin (RIF)", MolecularWeight: 822.94, Diluent: "DMSO", CriticalConcentration: 1.0, Available: true},
	{DrugID: "emb", Name: "Ethambutol (EMB)", MolecularWeight: 277.23, Diluent: "Distilled water", CriticalConcentration: 5.0, Available: true},
	{DrugID: "pza", Name: "Pyrazinamide (PZA)", MolecularWeight: 123.11, Diluent: "Distilled water", CriticalConcentration: 100.0, Available: true},
	{DrugID: "lfx", Name: "Levofloxacin (LFX)", MolecularWeight: 361.37, Diluent: "Distilled water", CriticalConcentration: 1.0, Available: true},
	{DrugID: "mfx", Name: "Moxifloxacin (MFX)", MolecularWeight: 401.43, Diluent: "Distilled water", CriticalConcentration: 0.25, Available: true},
	{DrugID: "bdq", Name: "Bedaquiline (BDQ)", MolecularWeight: 555.50, Diluent: "DMSO", CriticalConcentration: 1.0, Available: true},
	{DrugID: "lzd", Name: "Linezolid (LZD)", MolecularWeight: 337.35, Diluent: "DMSO", CriticalConcentration: 1.0, Available: true},
	{DrugID: "cfz", Name: "Clofazimine (CFZ)", MolecularWeight: 473.40, Diluent: "DMSO", CriticalConcentration: 1.0, Available: true},
	{DrugID: "dlm", Name: "Delamanid (DLM)", MolecularWeight: 534.48, Diluent: "DMSO", CriticalConcentration: 0.06, Available: true},
	{DrugID: "ami", Name: "Amikacin (AMI)", MolecularWeight: 585.60, Diluent: "Distilled water", CriticalConcentration: 1.0, Available: true},
	{DrugID: "eto", Name: "Ethionamide (ETO)", MolecularWeight: 166.24, Diluent: "DMSO", CriticalConcentration: 5.0, Available: true},
}
