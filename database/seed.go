package database

import (
	"time"

	"healthhub/models"
)

// Seed loads the demo dataset the portal ships with. Slot times are
// generated relative to now so the booking flow always has future
// availability to work with. loc is the facility timezone.
func (s *MemoryStore) Seed(loc *time.Location) {
	now := time.Now().In(loc)
	slot := func(daysAhead, hour, minute int) time.Time {
		d := now.AddDate(0, 0, daysAhead)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
	}

	s.PutUser(models.User{
		ID:       "user-1",
		Name:     "Juan Perez",
		Role:     models.RolePatient,
		Email:    "juan.perez@example.com",
		Phone:    "555-1234",
		Location: "Rural Town, XYZ",
	})

	s.PutHospital(models.Hospital{
		ID:          "hospital-1",
		Name:        "Central Rural Hospital",
		Address:     "123 Main Street, Far Town",
		Geo:         &models.GeoPoint{Lat: 19.4326, Lng: -99.1332},
		Type:        "General",
		Services:    []string{"24h Emergency", "Radiology", "Clinical Laboratory", "General Consultation"},
		KeySupplies: []string{"Flu Vaccine", "Common Antibiotics", "Wound Care Material"},
	})
	s.PutHospital(models.Hospital{
		ID:          "hospital-2",
		Name:        "Esperanza Clinic",
		Address:     "45 Sun Avenue, Villa Serena",
		Geo:         &models.GeoPoint{Lat: 19.4000, Lng: -99.1000},
		Type:        "Rural Clinic",
		Services:    []string{"Pediatric Consultation", "Prenatal Care", "Vaccination"},
		KeySupplies: []string{"Pediatric Vaccines", "Vitamin Supplements"},
	})

	s.PutSpecialist(models.Specialist{
		ID:         "specialist-1",
		Name:       "Dr. Ana Garcia",
		Specialty:  "General Medicine",
		HospitalID: "hospital-1",
		Slots: []time.Time{
			slot(1, 9, 0), slot(1, 10, 0), slot(1, 11, 30),
			slot(2, 14, 0), slot(2, 15, 0),
			slot(3, 9, 0), slot(3, 10, 30),
			slot(4, 16, 0),
		},
		Bio: "General practitioner with 5 years of experience in primary care.",
	})
	s.PutSpecialist(models.Specialist{
		ID:         "specialist-2",
		Name:       "Dr. Carlos Lopez",
		Specialty:  "Pediatrics",
		HospitalID: "hospital-1",
		Slots: []time.Time{
			slot(1, 11, 0), slot(1, 12, 0),
			slot(2, 9, 0), slot(2, 10, 0),
			slot(3, 14, 30),
			slot(4, 10, 0),
		},
		Bio: "Pediatrician dedicated to children's health.",
	})
	s.PutSpecialist(models.Specialist{
		ID:         "specialist-3",
		Name:       "Dr. Laura Torres",
		Specialty:  "Gynecology",
		HospitalID: "hospital-2",
		Slots: []time.Time{
			slot(1, 15, 0), slot(1, 16, 0),
			slot(2, 10, 30), slot(2, 11, 30),
			slot(3, 16, 0),
			slot(4, 11, 0),
		},
		Bio: "Specialist in women's health and obstetrics.",
	})

	s.PutAppointment(models.Appointment{
		ID:           "apt-1",
		PatientID:    "user-1",
		SpecialistID: "specialist-1",
		HospitalID:   "hospital-1",
		Time:         slot(2, 10, 0),
		Status:       models.AppointmentScheduled,
		ReminderOn:   true,
		Reason:       "Annual general checkup.",
		CreatedAt:    now,
	})
	s.PutAppointment(models.Appointment{
		ID:           "apt-2",
		PatientID:    "user-1",
		SpecialistID: "specialist-2",
		HospitalID:   "hospital-1",
		Time:         slot(5, 11, 0),
		Status:       models.AppointmentScheduled,
		ReminderOn:   false,
		Reason:       "Child vaccination.",
		CreatedAt:    now,
	})
	s.PutAppointment(models.Appointment{
		ID:           "apt-3",
		PatientID:    "user-1",
		SpecialistID: "specialist-3",
		HospitalID:   "hospital-2",
		Time:         now.AddDate(0, 0, -7),
		Status:       models.AppointmentCompleted,
		Notes:        "Routine consultation, everything in order.",
		Reason:       "Gynecological checkup.",
		CreatedAt:    now.AddDate(0, 0, -14),
	})

	s.PutVaccine(models.Vaccine{
		ID:            "vaccine-1",
		Name:          "Seasonal Flu Vaccine",
		Description:   "Annual vaccine against seasonal influenza.",
		Stock:         25,
		HospitalID:    "hospital-1",
		Waitlist:      []string{},
		MinAge:        6,
		DosesRequired: 1,
		Manufacturer:  "Sanofi",
	})
	s.PutVaccine(models.Vaccine{
		ID:            "vaccine-2",
		Name:          "COVID-19 Booster",
		Description:   "Updated booster dose against COVID-19 variants.",
		Stock:         0,
		HospitalID:    "hospital-1",
		Waitlist:      []string{},
		MinAge:        12,
		DosesRequired: 1,
		Manufacturer:  "Pfizer",
	})
	s.PutVaccine(models.Vaccine{
		ID:            "vaccine-3",
		Name:          "Tetanus Toxoid",
		Description:   "Protection against tetanus, ten year coverage.",
		Stock:         0,
		HospitalID:    "hospital-2",
		Waitlist:      []string{},
		DosesRequired: 1,
	})

	s.PutSession(models.TelemedicineSession{
		ID:           "tele-1",
		PatientID:    "user-1",
		SpecialistID: "specialist-1",
		Time:         now.AddDate(0, 0, -1),
		VideoLink:    "https://meet.example.com/ruralhealthhub-session1",
		Notes:        "Patient reports mild cold symptoms. Rest and hydration recommended.",
		Status:       models.SessionFinished,
	})
	s.PutSession(models.TelemedicineSession{
		ID:           "tele-2",
		PatientID:    "user-1",
		SpecialistID: "specialist-2",
		Time:         slot(3, 17, 0),
		VideoLink:    "https://meet.example.com/ruralhealthhub-session2",
		Status:       models.SessionScheduled,
	})

	s.AddTreatment(models.ActiveTreatment{
		ID:                "treatment-1",
		PatientID:         "user-1",
		Name:              "Hypertension Treatment",
		Description:       "Daily medication to control blood pressure.",
		StartDate:         now.AddDate(0, 0, -30),
		PrescribingDoctor: "Dr. Ana Garcia",
		Dosage:            "1 tablet (10mg)",
		Frequency:         "Every 24 hours",
	})
	s.AddTreatment(models.ActiveTreatment{
		ID:                "treatment-2",
		PatientID:         "user-1",
		Name:              "Vitamin Supplement",
		Description:       "Vitamin complex for mild deficiency.",
		StartDate:         now.AddDate(0, 0, -7),
		PrescribingDoctor: "Dr. Carlos Lopez",
		Dosage:            "1 capsule",
		Frequency:         "With breakfast",
	})

	s.AddRecord(models.MedicalRecord{
		ID:         "record-1",
		PatientID:  "user-1",
		Type:       models.RecordDiagnosis,
		Date:       now.AddDate(0, 0, -90),
		Title:      "Mild Arterial Hypertension",
		Summary:    "Patient diagnosed with mild arterial hypertension, treatment and follow-up started.",
		DoctorName: "Dr. Ana Garcia",
	})
	s.AddRecord(models.MedicalRecord{
		ID:         "record-2",
		PatientID:  "user-1",
		Type:       models.RecordPrescription,
		Date:       now.AddDate(0, 0, -90),
		Title:      "Lisinopril 10mg",
		Summary:    "Lisinopril 10mg prescribed, one tablet a day.",
		DoctorName: "Dr. Ana Garcia",
		Details:    map[string]string{"medication": "Lisinopril", "dose": "10mg", "frequency": "once daily"},
	})
	s.AddRecord(models.MedicalRecord{
		ID:         "record-3",
		PatientID:  "user-1",
		Type:       models.RecordLabResult,
		Date:       now.AddDate(0, 0, -60),
		Title:      "Lipid Profile",
		Summary:    "Total cholesterol: 190 mg/dL, LDL: 110 mg/dL, HDL: 50 mg/dL. Within acceptable ranges.",
		DoctorName: "Central Laboratory",
	})
	s.AddRecord(models.MedicalRecord{
		ID:         "record-4",
		PatientID:  "user-1",
		Type:       models.RecordVaccination,
		Date:       now.AddDate(0, 0, -180),
		Title:      "Flu Vaccine",
		Summary:    "Seasonal influenza vaccine administered.",
		DoctorName: "Central Hospital Nursing",
	})
	s.AddRecord(models.MedicalRecord{
		ID:         "record-5",
		PatientID:  "user-1",
		Type:       models.RecordProgressNote,
		Date:       now.AddDate(0, 0, -7),
		Title:      "Common cold follow-up",
		Summary:    "Patient reports improvement of cold symptoms. Continues rest and hydration.",
		DoctorName: "Dr. Ana Garcia (Telemedicine)",
	})
}
