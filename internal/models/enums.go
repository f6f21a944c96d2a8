package models

// StationStatus is the on-air state of the station.
type StationStatus string

const (
	StatusOnline  StationStatus = "online"
	StatusOffline StationStatus = "offline"
)

// EquipmentType classifies an equipment item.
type EquipmentType string

const (
	EquipmentTransceiver EquipmentType = "transceiver"
	EquipmentAntenna     EquipmentType = "antenna"
	EquipmentAmplifier   EquipmentType = "amplifier"
	EquipmentOther       EquipmentType = "other"
)

// NewsCategory groups news posts.
type NewsCategory string

const (
	NewsEquipment NewsCategory = "equipment"
	NewsContests  NewsCategory = "contests"
	NewsGeneral   NewsCategory = "general"
)

// validator tags for the closed sets above
const (
	stationStatusTag = "oneof=online offline"
	equipmentTypeTag = "oneof=transceiver antenna amplifier other"
)
