package ais

// Enum tables map a field's raw integer value to the ITU-R M.1371 name for
// it, used only at the presentation boundary (Record.ToMap with
// EnumOpts{AsInt: false}); the decoded Record itself always stores the raw
// integer so the core decode/encode path never depends on naming.

var navigationStatusNames = []string{
	"UnderWayUsingEngine", "AtAnchor", "NotUnderCommand", "RestrictedManoeuvrability",
	"ConstrainedByDraught", "Moored", "Aground", "EngagedInFishing", "UnderWaySailing",
	"ReservedHSC", "ReservedWIG", "Reserved", "Reserved", "Reserved",
	"AisSartActive", "NotDefined",
}

var maneuverIndicatorNames = []string{"NotAvailable", "NoSpecialManeuver", "SpecialManeuver"}

var epfdTypeNames = []string{
	"Undefined", "GPS", "GLONASS", "CombinedGPSGLONASS", "LoranC", "Chayka",
	"IntegratedNavigationSystem", "Surveyed", "Galileo",
}

var shipTypeNames = map[int64]string{
	0: "NotAvailable",
	30: "Fishing", 31: "Towing", 32: "TowingLarge", 33: "Dredging",
	34: "DivingOps", 35: "MilitaryOps", 36: "Sailing", 37: "PleasureCraft",
	40: "HighSpeedCraft", 50: "PilotVessel", 51: "SearchAndRescue", 52: "Tug",
	53: "PortTender", 54: "AntiPollution", 55: "LawEnforcement", 58: "MedicalTransport",
	60: "Passenger", 70: "Cargo", 80: "Tanker", 90: "Other",
}

var navAidTypeNames = []string{
	"Default", "ReferencePoint", "Racon", "FixedStructure", "Reserved",
	"LightWithoutSectors", "LightWithSectors", "LeadingLightFront", "LeadingLightRear",
	"BeaconCardinalN", "BeaconCardinalE", "BeaconCardinalS", "BeaconCardinalW",
	"BeaconPortHand", "BeaconStarboardHand", "BeaconPreferredChannelPortHand",
	"BeaconPreferredChannelStarboardHand", "BeaconIsolatedDanger", "BeaconSafeWater",
	"BeaconSpecialMark", "CardinalMarkN", "CardinalMarkE", "CardinalMarkS",
	"CardinalMarkW", "PortHandMark", "StarboardHandMark", "PreferredChannelPortHandMark",
	"PreferredChannelStarboardHandMark", "IsolatedDanger", "SafeWater", "SpecialMark",
	"LightVessel",
}

var stationTypeNames = []string{
	"AllMobile", "ClassAMobile", "AllReserved", "ClassBShipborneMobile",
	"RegionalUse4", "RegionalUse5", "RegionalUse6", "RegionalUse7",
	"ClassBMobileCodec1", "ClassBSelfOrganizing", "Inland", "RegionalUse11",
	"RegionalUse12", "FutureUse13", "BaseStationCoverage", "FutureUse15",
}

var epfdTypeFallback = "Undefined"

func enumName(table string, v int64) string {
	switch table {
	case "nav_status":
		return nameAt(navigationStatusNames, v)
	case "maneuver":
		return nameAt(maneuverIndicatorNames, v)
	case "epfd":
		return nameAtOr(epfdTypeNames, v, epfdTypeFallback)
	case "ship_type":
		if n, ok := shipTypeNames[v]; ok {
			return n
		}
		return "Unknown"
	case "nav_aid":
		return nameAt(navAidTypeNames, v)
	case "station_type":
		return nameAt(stationTypeNames, v)
	default:
		return "Unknown"
	}
}

func nameAt(names []string, v int64) string {
	return nameAtOr(names, v, "Unknown")
}

func nameAtOr(names []string, v int64, fallback string) string {
	if v < 0 || int(v) >= len(names) {
		return fallback
	}
	return names[v]
}
