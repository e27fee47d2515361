package services

import (
	"net/http"
	"testing"

	"salonpro-web/apiclient"
	"salonpro-web/models"
)

func TestReportsAggregateBillableRevenue(t *testing.T) {
	fake, api := newFake(t)
	admin := seedUser(fake, "admin@test.com", models.RoleAdmin)
	staff := seedUser(fake, "prestador@test.com", models.RoleProvider)
	svc := fake.AddService(models.Service{Name: "Corte", Price: 20, Duration: 30, IsActive: true, ProviderID: staff.ID})
	for _, st := range []models.AppointmentStatus{models.StatusCompleted, models.StatusConfirmed, models.StatusCancelled} {
		fake.AddAppointment(models.Appointment{ServiceID: svc.ID, StaffID: staff.ID, Date: "2026-03-10", StartTime: "10:00", Status: st})
	}
	reports := NewReportService(api)
	ctx := authed(fake, admin)
	q := models.ReportQuery{Period: "month", Year: 2026}

	monthly, err := reports.Monthly(ctx, q)
	if err != nil {
		t.Fatalf("Monthly: %v", err)
	}
	if monthly.TotalAppointments != 3 || monthly.TotalRevenue != 40 {
		t.Errorf("monthly = %+v", monthly)
	}
	byService, err := reports.Services(ctx, q)
	if err != nil || len(byService.Services) != 1 || byService.Services[0].Revenue != 40 {
		t.Errorf("services report = %+v, %v", byService, err)
	}
	appts, err := reports.Appointments(ctx, q)
	if err != nil || len(appts.ByStaff) != 1 || appts.ByStaff[0].Appointments != 3 {
		t.Errorf("appointments report = %+v, %v", appts, err)
	}
}

func TestExport(t *testing.T) {
	fake, api := newFake(t)
	admin := seedUser(fake, "admin@test.com", models.RoleAdmin)
	reports := NewReportService(api)
	ctx := authed(fake, admin)

	blob, err := reports.Export(ctx, ExportExcel, models.ReportQuery{Period: "year"})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if blob.Filename != "reporte-year.xlsx" || len(blob.Body) == 0 {
		t.Errorf("blob = %q (%d bytes)", blob.Filename, len(blob.Body))
	}

	_, err = reports.Export(ctx, ExportFormat("csv"), models.ReportQuery{})
	if !apiclient.IsKind(err, apiclient.KindValidation) {
		t.Errorf("csv export err = %v, want validation", err)
	}
	if _, err := reports.Monthly(ctx, models.ReportQuery{Period: "decade"}); !apiclient.IsKind(err, apiclient.KindValidation) {
		t.Errorf("bad period err = %v, want validation", err)
	}
	if n := fake.Calls(http.MethodGet, "/reports/monthly"); n != 0 {
		t.Errorf("monthly calls = %d, want 0", n)
	}
}
