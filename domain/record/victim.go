package record

import (
	"github.com/nao1215/switrs/domain/lookup"
	"github.com/nao1215/switrs/domain/model"
)

// VictimTable is the destination table of victim records.
const VictimTable = "victims"

// Victim returns the schema of the VictimRecords file.
func Victim() *model.RecordSchema {
	return &model.RecordSchema{
		TableName: VictimTable,
		Columns: []model.Column{
			text("CASE_ID", "case_id"),
			integer("PARTY_NUMBER", "party_number"),
			coded("VICTIM_ROLE", "victim_role", lookup.Role),
			coded("VICTIM_SEX", "victim_sex", lookup.Sex),
			integer("VICTIM_AGE", "victim_age", nullsPlus("998")),
			coded("VICTIM_DEGREE_OF_INJURY", "victim_degree_of_injury", lookup.DegreeOfInjury),
			coded("VICTIM_SEATING_POSITION", "victim_seating_position", lookup.SeatingPosition),
			coded("VICTIM_SAFETY_EQUIP_1", "victim_safety_equipment_1", lookup.Safety),
			coded("VICTIM_SAFETY_EQUIP_2", "victim_safety_equipment_2", lookup.Safety),
			coded("VICTIM_EJECTED", "victim_ejected", lookup.Ejected),
		},
	}
}
