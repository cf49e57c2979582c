package ais

// Static field schemas for the message types whose layout doesn't branch
// on a runtime flag. Each slice picks up right after the common
// msg_type(6)+repeat(2)+mmsi(30) header that Decode/Encode handle directly.

var positionReportFields = []FieldSpec{
	{Name: "nav_status", Kind: KindEnum, Width: 4, EnumName: "nav_status"},
	{Name: "rot", Kind: KindInt, Width: 8},
	{Name: "sog", Kind: KindScaled, Width: 10, Scale: scaleTenth},
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "lon", Kind: KindScaled, Width: 28, Scale: scaleCoord, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 27, Scale: scaleCoord, Signed: true},
	{Name: "cog", Kind: KindScaled, Width: 12, Scale: scaleTenth},
	{Name: "true_heading", Kind: KindUint, Width: 9},
	{Name: "timestamp", Kind: KindUint, Width: 6},
	{Name: "maneuver", Kind: KindEnum, Width: 2, EnumName: "maneuver"},
	{Name: "spare", Kind: KindUint, Width: 3},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "radio", Kind: KindUint, Width: 19},
}

var baseStationFields = []FieldSpec{
	{Name: "year", Kind: KindUint, Width: 14},
	{Name: "month", Kind: KindUint, Width: 4},
	{Name: "day", Kind: KindUint, Width: 5},
	{Name: "hour", Kind: KindUint, Width: 5},
	{Name: "minute", Kind: KindUint, Width: 6},
	{Name: "second", Kind: KindUint, Width: 6},
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "lon", Kind: KindScaled, Width: 28, Scale: scaleCoord, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 27, Scale: scaleCoord, Signed: true},
	{Name: "epfd", Kind: KindEnum, Width: 4, EnumName: "epfd"},
	{Name: "spare", Kind: KindUint, Width: 10},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "radio", Kind: KindUint, Width: 19},
}

var staticVoyageFields = []FieldSpec{
	{Name: "ais_version", Kind: KindUint, Width: 2},
	{Name: "imo", Kind: KindUint, Width: 30},
	{Name: "callsign", Kind: KindText, Width: 42},
	{Name: "shipname", Kind: KindText, Width: 120},
	{Name: "ship_type", Kind: KindEnum, Width: 8, EnumName: "ship_type"},
	{Name: "to_bow", Kind: KindUint, Width: 9},
	{Name: "to_stern", Kind: KindUint, Width: 9},
	{Name: "to_port", Kind: KindUint, Width: 6},
	{Name: "to_starboard", Kind: KindUint, Width: 6},
	{Name: "epfd", Kind: KindEnum, Width: 4, EnumName: "epfd"},
	{Name: "month", Kind: KindUint, Width: 4},
	{Name: "day", Kind: KindUint, Width: 5},
	{Name: "hour", Kind: KindUint, Width: 5},
	{Name: "minute", Kind: KindUint, Width: 6},
	{Name: "draught", Kind: KindScaled, Width: 8, Scale: scaleTenth},
	{Name: "destination", Kind: KindText, Width: 120},
	{Name: "dte", Kind: KindBool, Width: 1},
	{Name: "spare", Kind: KindUint, Width: 1},
}

var binaryAddressedHeaderFields = []FieldSpec{
	{Name: "seqno", Kind: KindUint, Width: 2},
	{Name: "dest_mmsi", Kind: KindMMSI, Width: 30},
	{Name: "retransmit", Kind: KindBool, Width: 1},
	{Name: "spare", Kind: KindUint, Width: 1},
	{Name: "dac", Kind: KindUint, Width: 10},
	{Name: "fid", Kind: KindUint, Width: 6},
}

var binaryBroadcastHeaderFields = []FieldSpec{
	{Name: "spare", Kind: KindUint, Width: 2},
	{Name: "dac", Kind: KindUint, Width: 10},
	{Name: "fid", Kind: KindUint, Width: 6},
}

var sarAircraftFields = []FieldSpec{
	{Name: "alt", Kind: KindUint, Width: 12},
	{Name: "sog", Kind: KindUint, Width: 10},
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "lon", Kind: KindScaled, Width: 28, Scale: scaleCoord, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 27, Scale: scaleCoord, Signed: true},
	{Name: "cog", Kind: KindScaled, Width: 12, Scale: scaleTenth},
	{Name: "timestamp", Kind: KindUint, Width: 6},
	{Name: "reserved", Kind: KindUint, Width: 8},
	{Name: "dte", Kind: KindBool, Width: 1},
	{Name: "spare", Kind: KindUint, Width: 3},
	{Name: "assigned", Kind: KindBool, Width: 1},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "radio", Kind: KindUint, Width: 19},
}

var utcInquiryFields = []FieldSpec{
	{Name: "spare1", Kind: KindUint, Width: 2},
	{Name: "dest_mmsi", Kind: KindMMSI, Width: 30},
	{Name: "spare2", Kind: KindUint, Width: 2},
}

var classBPositionFields = []FieldSpec{
	{Name: "reserved", Kind: KindUint, Width: 8},
	{Name: "sog", Kind: KindScaled, Width: 10, Scale: scaleTenth},
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "lon", Kind: KindScaled, Width: 28, Scale: scaleCoord, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 27, Scale: scaleCoord, Signed: true},
	{Name: "cog", Kind: KindScaled, Width: 12, Scale: scaleTenth},
	{Name: "true_heading", Kind: KindUint, Width: 9},
	{Name: "timestamp", Kind: KindUint, Width: 6},
	{Name: "regional", Kind: KindUint, Width: 2},
	{Name: "cs_unit", Kind: KindBool, Width: 1},
	{Name: "display", Kind: KindBool, Width: 1},
	{Name: "dsc", Kind: KindBool, Width: 1},
	{Name: "band", Kind: KindBool, Width: 1},
	{Name: "msg22", Kind: KindBool, Width: 1},
	{Name: "assigned", Kind: KindBool, Width: 1},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "radio", Kind: KindUint, Width: 20},
}

var classBExtendedFields = []FieldSpec{
	{Name: "reserved", Kind: KindUint, Width: 8},
	{Name: "sog", Kind: KindScaled, Width: 10, Scale: scaleTenth},
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "lon", Kind: KindScaled, Width: 28, Scale: scaleCoord, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 27, Scale: scaleCoord, Signed: true},
	{Name: "cog", Kind: KindScaled, Width: 12, Scale: scaleTenth},
	{Name: "true_heading", Kind: KindUint, Width: 9},
	{Name: "timestamp", Kind: KindUint, Width: 6},
	{Name: "regional", Kind: KindUint, Width: 4},
	{Name: "shipname", Kind: KindText, Width: 120},
	{Name: "ship_type", Kind: KindEnum, Width: 8, EnumName: "ship_type"},
	{Name: "to_bow", Kind: KindUint, Width: 9},
	{Name: "to_stern", Kind: KindUint, Width: 9},
	{Name: "to_port", Kind: KindUint, Width: 6},
	{Name: "to_starboard", Kind: KindUint, Width: 6},
	{Name: "epfd", Kind: KindEnum, Width: 4, EnumName: "epfd"},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "dte", Kind: KindBool, Width: 1},
	{Name: "assigned", Kind: KindBool, Width: 1},
	{Name: "spare", Kind: KindUint, Width: 4},
}

// dataLinkMgmtFields covers all four reservation slots inline: they are
// always present and zero-padded when unused, not an optional tail.
var dataLinkMgmtFields = []FieldSpec{
	{Name: "offset1", Kind: KindUint, Width: 12},
	{Name: "number1", Kind: KindUint, Width: 4},
	{Name: "timeout1", Kind: KindUint, Width: 3},
	{Name: "increment1", Kind: KindUint, Width: 11},
	{Name: "offset2", Kind: KindUint, Width: 12},
	{Name: "number2", Kind: KindUint, Width: 4},
	{Name: "timeout2", Kind: KindUint, Width: 3},
	{Name: "increment2", Kind: KindUint, Width: 11},
	{Name: "offset3", Kind: KindUint, Width: 12},
	{Name: "number3", Kind: KindUint, Width: 4},
	{Name: "timeout3", Kind: KindUint, Width: 3},
	{Name: "increment3", Kind: KindUint, Width: 11},
	{Name: "offset4", Kind: KindUint, Width: 12},
	{Name: "number4", Kind: KindUint, Width: 4},
	{Name: "timeout4", Kind: KindUint, Width: 3},
	{Name: "increment4", Kind: KindUint, Width: 11},
}

var groupAssignmentFields = []FieldSpec{
	{Name: "spare1", Kind: KindUint, Width: 2},
	{Name: "ne_lon", Kind: KindScaled, Width: 18, Scale: scaleLowRes, Signed: true},
	{Name: "ne_lat", Kind: KindScaled, Width: 17, Scale: scaleLowRes, Signed: true},
	{Name: "sw_lon", Kind: KindScaled, Width: 18, Scale: scaleLowRes, Signed: true},
	{Name: "sw_lat", Kind: KindScaled, Width: 17, Scale: scaleLowRes, Signed: true},
	{Name: "station_type", Kind: KindEnum, Width: 4, EnumName: "station_type"},
	{Name: "ship_type", Kind: KindEnum, Width: 8, EnumName: "ship_type"},
	{Name: "spare2", Kind: KindUint, Width: 22},
	{Name: "txrx", Kind: KindUint, Width: 2},
	{Name: "interval", Kind: KindUint, Width: 4},
	{Name: "quiet", Kind: KindUint, Width: 4},
	{Name: "spare3", Kind: KindUint, Width: 6},
}

var dgnssFields = []FieldSpec{
	{Name: "spare1", Kind: KindUint, Width: 2},
	{Name: "lon", Kind: KindScaled, Width: 18, Scale: scaleLowRes, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 17, Scale: scaleLowRes, Signed: true},
	{Name: "spare2", Kind: KindUint, Width: 5},
}

var longRangeFields = []FieldSpec{
	{Name: "accuracy", Kind: KindBool, Width: 1},
	{Name: "raim", Kind: KindBool, Width: 1},
	{Name: "nav_status", Kind: KindEnum, Width: 4, EnumName: "nav_status"},
	{Name: "lon", Kind: KindScaled, Width: 18, Scale: scaleLowRes, Signed: true},
	{Name: "lat", Kind: KindScaled, Width: 17, Scale: scaleLowRes, Signed: true},
	{Name: "sog", Kind: KindUint, Width: 6},
	{Name: "cog", Kind: KindUint, Width: 9},
	{Name: "gnss", Kind: KindBool, Width: 1},
	{Name: "spare", Kind: KindUint, Width: 1},
}

func safetyTextHeaderFields(msgType uint8) []FieldSpec {
	if msgType == 12 {
		return []FieldSpec{
			{Name: "seqno", Kind: KindUint, Width: 2},
			{Name: "dest_mmsi", Kind: KindMMSI, Width: 30},
			{Name: "retransmit", Kind: KindBool, Width: 1},
			{Name: "spare", Kind: KindUint, Width: 1},
		}
	}
	return []FieldSpec{
		{Name: "spare", Kind: KindUint, Width: 2},
	}
}
