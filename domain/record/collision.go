package record

import (
	"github.com/nao1215/switrs/domain/lookup"
	"github.com/nao1215/switrs/domain/model"
)

// CollisionTable is the destination table of collision records.
const CollisionTable = "collisions"

// Collision returns the schema of the CollisionRecords file.
// case_id is the natural primary key.
func Collision() *model.RecordSchema {
	return &model.RecordSchema{
		TableName:        CollisionTable,
		HasPrimaryColumn: true,
		Columns: []model.Column{
			text("CASE_ID", "case_id"),
			integer("JURIS", "jurisdiction"),
			text("OFFICER_ID", "officer_id"),
			text("REPORTING_DISTRICT", "reporting_district"),
			text("CHP_SHIFT", "chp_shift"),
			text("POPULATION", "population"),
			text("CNTY_CITY_LOC", "county_city_location"),
			coded("CNTY_CITY_LOC", "county_location", lookup.Counties,
				model.WithConverter(model.CountyCityLocationToCounty)),
			text("SPECIAL_COND", "special_condition"),
			text("BEAT_TYPE", "beat_type"),
			coded("CHP_BEAT_TYPE", "chp_beat_type", lookup.CHPBeatType),
			text("CITY_DIVISION_LAPD", "city_division_lapd", nullsPlus("0")),
			coded("CHP_BEAT_CLASS", "chp_beat_class", lookup.CHPBeatClass),
			text("BEAT_NUMBER", "beat_number"),
			text("PRIMARY_RD", "primary_road"),
			text("SECONDARY_RD", "secondary_road"),
			float("DISTANCE", "distance"),
			coded("DIRECTION", "direction", lookup.Direction),
			flag("INTERSECTION", "intersection"),
			coded("WEATHER_1", "weather_1", lookup.Weather, nullsPlus("N", "Y")),
			coded("WEATHER_2", "weather_2", lookup.Weather, nullsPlus("N", "Y")),
			flag("STATE_HWY_IND", "state_highway_indicator"),
			text("CALTRANS_COUNTY", "caltrans_county"),
			integer("CALTRANS_DISTRICT", "caltrans_district"),
			integer("STATE_ROUTE", "state_route"),
			text("ROUTE_SUFFIX", "route_suffix"),
			text("POSTMILE_PREFIX", "postmile_prefix"),
			float("POSTMILE", "postmile"),
			coded("LOCATION_TYPE", "location_type", lookup.LocationType),
			integer("RAMP_INTERSECTION", "ramp_intersection"),
			coded("SIDE_OF_HWY", "side_of_highway", lookup.SideOfHighway),
			flag("TOW_AWAY", "tow_away"),
			coded("COLLISION_SEVERITY", "collision_severity", lookup.CollisionSeverity),
			integer("NUMBER_KILLED", "killed_victims"),
			integer("NUMBER_INJURED", "injured_victims"),
			integer("PARTY_COUNT", "party_count"),
			coded("PRIMARY_COLL_FACTOR", "primary_collision_factor", lookup.PrimaryCollisionFactor),
			coded("PCF_CODE_OF_VIOL", "pcf_violation_code", lookup.PCFViolationCode),
			coded("PCF_VIOL_CATEGORY", "pcf_violation_category", lookup.PCFViolationCategory),
			integer("PCF_VIOLATION", "pcf_violation"),
			text("PCF_VIOL_SUBSECTION", "pcf_violation_subsection"),
			coded("HIT_AND_RUN", "hit_and_run", lookup.HitAndRun),
			coded("TYPE_OF_COLLISION", "type_of_collision", lookup.CollisionType, nullsPlus("M")),
			coded("MVIW", "motor_vehicle_involved_with", lookup.InvolvedWith),
			coded("PED_ACTION", "pedestrian_action", lookup.PedestrianAction),
			coded("ROAD_SURFACE", "road_surface", lookup.RoadSurface),
			coded("ROAD_COND_1", "road_condition_1", lookup.RoadCondition),
			coded("ROAD_COND_2", "road_condition_2", lookup.RoadCondition),
			coded("LIGHTING", "lighting", lookup.Lighting),
			coded("CONTROL_DEVICE", "control_device", lookup.ControlDevice),
			text("CHP_ROAD_TYPE", "chp_road_type"),
			flag("PEDESTRIAN_ACCIDENT", "pedestrian_collision"),
			flag("BICYCLE_ACCIDENT", "bicycle_collision"),
			flag("MOTORCYCLE_ACCIDENT", "motorcycle_collision"),
			flag("TRUCK_ACCIDENT", "truck_collision"),
			flag("NOT_PRIVATE_PROPERTY", "not_private_property"),
			flag("ALCOHOL_INVOLVED", "alcohol_involved"),
			coded("STWD_VEHTYPE_AT_FAULT", "statewide_vehicle_type_at_fault", lookup.StatewideVehicleType),
			coded("CHP_VEHTYPE_AT_FAULT", "chp_vehicle_type_at_fault", lookup.CHPVehicleType, nullsPlus("99")),
			integer("COUNT_SEVERE_INJ", "severe_injury_count"),
			integer("COUNT_VISIBLE_INJ", "other_visible_injury_count"),
			integer("COUNT_COMPLAINT_PAIN", "complaint_of_pain_injury_count"),
			integer("COUNT_PED_KILLED", "pedestrian_killed_count"),
			integer("COUNT_PED_INJURED", "pedestrian_injured_count"),
			integer("COUNT_BICYCLIST_KILLED", "bicyclist_killed_count"),
			integer("COUNT_BICYCLIST_INJURED", "bicyclist_injured_count"),
			integer("COUNT_MC_KILLED", "motorcyclist_killed_count"),
			integer("COUNT_MC_INJURED", "motorcyclist_injured_count"),
			text("PRIMARY_RAMP", "primary_ramp"),
			text("SECONDARY_RAMP", "secondary_ramp"),
			float("LATITUDE", "latitude"),
			// The source stores longitude without its western sign.
			float("LONGITUDE", "longitude", model.WithConverter(model.Negative)),
		},
		DateFields: []model.DateField{
			model.NewDateField("COLLISION_DATE", "collision_date", model.DateKindDate),
			model.NewDateField("COLLISION_TIME", "collision_time", model.DateKindTime),
			model.NewDateField("PROC_DATE", "process_date", model.DateKindDate),
		},
	}
}
