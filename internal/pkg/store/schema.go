package store

import (
	"context"
	"fmt"

	"medstat/internal/domain"
	"medstat/internal/pkg/logger"
)

// Bootstrap is idempotent: tables and indexes are CREATE IF NOT EXISTS,
// views are CREATE OR REPLACE. There is no migration machinery; the
// schema is created once and never versioned.
func (s *store) Bootstrap(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			logger.Errorf(ctx, "bootstrap: %s", err.Error())
			return fmt.Errorf("bootstrap: %w", err)
		}
	}

	return nil
}

func (s *store) SeedDoctors(ctx context.Context) error {
	query := builder().Insert(tableDoctors).
		Columns(doctorsColumns...)

	for _, d := range domain.SeedDoctors {
		query = query.Values(d.Name, d.Specialty, d.YearsExperience)
	}

	query = query.Suffix(`
on conflict (name)
do update
set
	specialty = excluded.specialty,
	years_experience = excluded.years_experience`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "seed doctors: %s", err.Error())
		return fmt.Errorf("seed doctors: %w", err)
	}

	return nil
}

var schemaStatements = []string{
	`create table if not exists doctors (
	name text primary key,
	specialty text not null,
	years_experience int not null
)`,

	`create table if not exists admissions (
	id bigserial primary key,
	name text,
	age int,
	gender text,
	blood_type text,
	medical_condition text,
	date_of_admission date,
	doctor text,
	hospital text,
	insurance_provider text,
	billing_amount numeric(10,2),
	room_number int,
	admission_type text,
	discharge_date date,
	medication text,
	test_results text
)`,

	`create or replace view hospital_summary as
select
	hospital,
	count(*) as patients,
	avg(billing_amount) as avg_billing,
	sum(billing_amount) as total_revenue,
	avg(age)::float8 as avg_age
from admissions
group by hospital`,

	`create or replace view condition_analysis as
select
	medical_condition,
	count(*) as patients,
	avg(billing_amount) as avg_cost,
	min(billing_amount) as min_cost,
	max(billing_amount) as max_cost
from admissions
group by medical_condition`,

	`create or replace view doctor_performance as
select
	d.name as doctor,
	d.specialty,
	count(*) as patients_treated,
	avg(a.billing_amount) as avg_billing,
	sum(a.billing_amount) as total_billing
from admissions a
join doctors d on d.name = a.doctor
group by d.name, d.specialty`,

	`create index if not exists idx_admissions_condition on admissions (medical_condition)`,
	`create index if not exists idx_admissions_hospital on admissions (hospital)`,
	`create index if not exists idx_admissions_doctor on admissions (doctor)`,
	`create index if not exists idx_admissions_date on admissions (date_of_admission)`,
	`create index if not exists idx_admissions_billing on admissions (billing_amount)`,
}
