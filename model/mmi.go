package model

// MaintenanceInformation is mmi:MD_MaintenanceInformation.
type MaintenanceInformation struct {
	Frequency MaintenanceFrequencyCode `json:"maintenanceAndUpdateFrequency,omitempty" iso:"codelist=mmi:MD_MaintenanceFrequencyCode"`
	Notes     []string                 `json:"maintenanceNote,omitempty"`
}

func (MaintenanceInformation) QName() string { return "mmi:MD_MaintenanceInformation" }
