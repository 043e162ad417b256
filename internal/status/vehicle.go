package status

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleUnavailable VehicleStatus = "unavailable"
	VehicleMaintenance VehicleStatus = "maintenance"
)

var vehicleStatusRules = []keywordRule[VehicleStatus]{
	{keywords: []string{"maint", "repar", "garage"}, value: VehicleMaintenance},
	{keywords: []string{"indispo", "unavail", "inact", "desact", "retir", "archiv"}, value: VehicleUnavailable},
}

// ClassifyVehicleStatus defaults to available: listings without a status
// are shown in search.
func ClassifyVehicleStatus(raw string) VehicleStatus {
	return matchFirst(raw, vehicleStatusRules, VehicleAvailable)
}
