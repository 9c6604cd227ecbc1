package models

import "time"

// Medical record types.
const (
	RecordDiagnosis    = "diagnosis"
	RecordPrescription = "prescription"
	RecordLabResult    = "lab-result"
	RecordProgressNote = "progress-note"
	RecordVaccination  = "vaccination"
)

// MedicalRecord is one entry in a patient's medical history.
type MedicalRecord struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patientId"`
	Type        string            `json:"type"`
	Date        time.Time         `json:"date"`
	Title       string            `json:"title"`
	Summary     string            `json:"summary"`
	DoctorName  string            `json:"doctorName,omitempty"`
	DocumentURL string            `json:"documentUrl,omitempty"`
	Details     map[string]string `json:"details,omitempty"`
}

// ActiveTreatment is an ongoing prescription or regimen.
type ActiveTreatment struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patientId"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	StartDate         time.Time `json:"startDate"`
	PrescribingDoctor string    `json:"prescribingDoctor,omitempty"`
	Dosage            string    `json:"dosage,omitempty"`
	Frequency         string    `json:"frequency,omitempty"`
}
