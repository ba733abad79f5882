package domain

// Doctor is reference data keyed by name. Admission.Doctor points at it
// by value equality only; nothing enforces the link, which is why the
// outer-join reports exist.
type Doctor struct {
	Name            string `db:"name" json:"name"`
	Specialty       string `db:"specialty" json:"specialty"`
	YearsExperience int    `db:"years_experience" json:"years_experience"`
}

// SeedDoctors is the fixed reference set loaded at bootstrap.
var SeedDoctors = []Doctor{
	{Name: "Dr. Sarah Johnson", Specialty: "Cardiology", YearsExperience: 15},
	{Name: "Dr. Michael Chen", Specialty: "Oncology", YearsExperience: 12},
	{Name: "Dr. Emily Davis", Specialty: "Neurology", YearsExperience: 10},
	{Name: "Dr. Robert Wilson", Specialty: "Orthopedics", YearsExperience: 18},
	{Name: "Dr. Lisa Anderson", Specialty: "General Medicine", YearsExperience: 8},
}
