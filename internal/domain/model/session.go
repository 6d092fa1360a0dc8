package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionDrugEntry is the per-drug input snapshot stored in a protocol
// session so a technician can leave between the weighing step and the
// final dilution and resume with the same numbers.
type SessionDrugEntry struct {
	DrugID                string  `bson:"drug_id" json:"drug_id"`
	CriticalConcentration float64 `bson:"critical_concentration" json:"critical_concentration_ug_ml"`
	PurchasedMW           float64 `bson:"purchased_mw" json:"purchased_mw_g_mol"`
	PurityPercent         float64 `bson:"purity_percent,omitempty" json:"purity_percent,omitempty"`
	StockVolume           float64 `bson:"stock_volume" json:"stock_volume_ml"`
	MakeStock             bool    `bson:"make_stock" json:"make_stock"`
	// Potency and EstimatedWeight are filled after stage one.
	Potency         float64 `bson:"potency,omitempty" json:"potency,omitempty"`
	EstimatedWeight float64 `bson:"estimated_weight,omitempty" json:"estimated_weight_mg,omitempty"`
	// ActualWeight and Tubes are filled before stage two.
	ActualWeight float64 `bson:"actual_weight,omitempty" json:"actual_weight_mg,omitempty"`
	Tubes        int     `bson:"tubes,omitempty" json:"mgit_tubes,omitempty"`
}

// ProtocolSession groups the drug entries of one laboratory run.
type ProtocolSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	// Name is the technician-chosen label, used as the log name.
	Name      string             `bson:"name" json:"name"`
	UserID    string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Protocol  string             `bson:"protocol" json:"protocol"`
	Drugs     []SessionDrugEntry `bson:"drugs" json:"drugs"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// Entry returns the session entry for the given drug, or nil.
func (s *ProtocolSession) Entry(drugID string) *SessionDrugEntry {
	for i := range s.Drugs {
		if s.Drugs[i].DrugID == drugID {
			return &s.Drugs[i]
		}
	}
	return nil
}
