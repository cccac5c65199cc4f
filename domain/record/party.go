package record

import (
	"github.com/nao1215/switrs/domain/lookup"
	"github.com/nao1215/switrs/domain/model"
)

// PartyTable is the destination table of party records.
const PartyTable = "parties"

// Party returns the schema of the PartyRecords file.
func Party() *model.RecordSchema {
	return &model.RecordSchema{
		TableName: PartyTable,
		Columns: []model.Column{
			text("CASE_ID", "case_id"),
			integer("PARTY_NUMBER", "party_number"),
			coded("PARTY_TYPE", "party_type", lookup.PartyType),
			flag("AT_FAULT", "at_fault"),
			coded("PARTY_SEX", "party_sex", lookup.Sex),
			integer("PARTY_AGE", "party_age", nullsPlus("998")),
			coded("PARTY_SOBRIETY", "party_sobriety", lookup.Sobriety),
			coded("PARTY_DRUG_PHYSICAL", "party_drug_physical", lookup.Drug),
			coded("DIR_OF_TRAVEL", "direction_of_travel", lookup.Direction),
			coded("PARTY_SAFETY_EQUIP_1", "party_safety_equipment_1", lookup.Safety),
			coded("PARTY_SAFETY_EQUIP_2", "party_safety_equipment_2", lookup.Safety),
			coded("FINAN_RESPONS", "financial_responsibility", lookup.Financial),
			integer("SP_INFO_1", "hazardous_materials", model.WithConverter(model.NonStandardStringToBool)),
			integer("SP_INFO_2", "cellphone_in_use", model.WithConverter(model.CellphoneUseToBool)),
			coded("SP_INFO_2", "cellphone_use_type", lookup.CellphoneUseType),
			integer("SP_INFO_3", "school_bus_related", model.WithConverter(model.NonStandardStringToBool)),
			coded("OAF_VIOLATION_CODE", "oaf_violation_code", lookup.OAFViolationCode),
			coded("OAF_VIOL_CAT", "oaf_violation_category", lookup.OAFViolationCategory, nullsPlus("00")),
			text("OAF_VIOL_SECTION", "oaf_violation_section"),
			text("OAF_VIOLATION_SUFFIX", "oaf_violation_suffix"),
			coded("OAF_1", "other_associate_factor_1", lookup.OtherFactor),
			coded("OAF_2", "other_associate_factor_2", lookup.OtherFactor),
			integer("PARTY_NUMBER_KILLED", "party_number_killed"),
			integer("PARTY_NUMBER_INJURED", "party_number_injured"),
			coded("MOVE_PRE_ACC", "movement_preceding_collision", lookup.MovementPreceding),
			integer("VEHICLE_YEAR", "vehicle_year", nullsPlus("9999")),
			coded("VEHICLE_MAKE", "vehicle_make", lookup.Make),
			coded("STWD_VEHICLE_TYPE", "statewide_vehicle_type", lookup.StatewideVehicleType),
			coded("CHP_VEH_TYPE_TOWING", "chp_vehicle_type_towing", lookup.CHPVehicleType),
			coded("CHP_VEH_TYPE_TOWED", "chp_vehicle_type_towed", lookup.CHPVehicleType),
			coded("RACE", "party_race", lookup.Race),
		},
	}
}
