package examresult

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apdomain "github.com/VidaPediatria/clinic-api/internal/domain/appointment"
	domain "github.com/VidaPediatria/clinic-api/internal/domain/examresult"
	"github.com/VidaPediatria/clinic-api/internal/httperr"
	"github.com/VidaPediatria/clinic-api/internal/models"
	ucAppointment "github.com/VidaPediatria/clinic-api/internal/usecase/appointment"
)

// fakeClinic simula o repositório em memória para o fluxo completo:
// criar agendamento semeia linhas de serviço e resultados pendentes,
// como a transação real faz.
type fakeClinic struct {
	patients []models.Patient
	services []models.Service

	appointments []models.Appointment
	lines        []models.AppointmentService
	results      []models.ExamResult

	nextID uint
}

var _ apdomain.Repository = (*fakeClinic)(nil)
var _ domain.Repository = (*fakeClinic)(nil)

func newFakeClinic() *fakeClinic {
	return &fakeClinic{
		patients: []models.Patient{{ID: 1, Name: "Ana Clara", CPF: "52998224725"}},
		services: []models.Service{
			{ID: 10, Code: "HEM", Name: "Hemograma", BasePrice: 45.00, Active: true},
			{ID: 20, Code: "GLI", Name: "Glicemia", BasePrice: 25.00, Active: true},
		},
		nextID: 100,
	}
}

// -------- apdomain.Repository --------

func (f *fakeClinic) GetClinicSettings(ctx context.Context) (*models.ClinicSettings, error) {
	return &models.ClinicSettings{ID: 1, Timezone: "America/Sao_Paulo"}, nil
}

func (f *fakeClinic) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	for i := range f.patients {
		if f.patients[i].ID == id {
			return &f.patients[i], nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (f *fakeClinic) GetActiveServices(ctx context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		for _, s := range f.services {
			if s.ID == id && s.Active {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func (f *fakeClinic) CreateAppointmentWithServices(ctx context.Context, ap *models.Appointment, serviceIDs []uint) error {
	f.nextID++
	ap.ID = f.nextID
	ap.CreatedAt = time.Now()
	f.appointments = append(f.appointments, *ap)

	for _, svcID := range serviceIDs {
		f.nextID++
		f.lines = append(f.lines, models.AppointmentService{
			ID:            f.nextID,
			AppointmentID: ap.ID,
			ServiceID:     svcID,
		})

		f.nextID++
		f.results = append(f.results, models.ExamResult{
			ID:            f.nextID,
			AppointmentID: ap.ID,
			ServiceID:     svcID,
			PatientID:     ap.PatientID,
			Status:        string(domain.InitialStatus()),
		})
	}
	return nil
}

func (f *fakeClinic) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			return &f.appointments[i], nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (f *fakeClinic) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == ap.ID {
			f.appointments[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness("not_found")
}

func (f *fakeClinic) ListAppointmentsForPeriod(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeClinic) ListAppointmentsByStatus(ctx context.Context, statuses []apdomain.Status) ([]models.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeClinic) GetOperatingHours(ctx context.Context, weekday int) (*models.OperatingHours, error) {
	return nil, httperr.ErrBusiness("not_found")
}

func (f *fakeClinic) IsWithinOperatingHours(ctx context.Context, start time.Time) (bool, error) {
	return true, nil
}

func (f *fakeClinic) ListScheduledForDay(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	return nil, nil
}

// -------- domain.Repository (exam results) --------

func (f *fakeClinic) GetAppointmentServiceLine(ctx context.Context, apID, svcID uint) (*models.AppointmentService, error) {
	for i := range f.lines {
		if f.lines[i].AppointmentID == apID && f.lines[i].ServiceID == svcID {
			return &f.lines[i], nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (f *fakeClinic) GetResult(ctx context.Context, apID, svcID uint) (*models.ExamResult, error) {
	for i := range f.results {
		if f.results[i].AppointmentID == apID && f.results[i].ServiceID == svcID {
			return &f.results[i], nil
		}
	}
	return nil, nil
}

func (f *fakeClinic) GetAppointmentPatientID(ctx context.Context, apID uint) (uint, error) {
	ap, err := f.GetAppointment(ctx, apID)
	if err != nil {
		return 0, err
	}
	return ap.PatientID, nil
}

func (f *fakeClinic) SaveResult(ctx context.Context, line *models.AppointmentService, result *models.ExamResult) error {
	for i := range f.lines {
		if f.lines[i].ID == line.ID {
			f.lines[i] = *line
		}
	}
	for i := range f.results {
		if f.results[i].AppointmentID == result.AppointmentID && f.results[i].ServiceID == result.ServiceID {
			result.ID = f.results[i].ID
			f.results[i] = *result
			return nil
		}
	}
	f.nextID++
	result.ID = f.nextID
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeClinic) ListResultsForAppointment(ctx context.Context, apID uint) ([]models.ExamResult, error) {
	var out []models.ExamResult
	for _, r := range f.results {
		if r.AppointmentID == apID {
			out = append(out, r)
		}
	}
	return out, nil
}

// -------- Fluxo completo --------

func TestWorkflow_AppointmentToFinalResult(t *testing.T) {
	clinic := newFakeClinic()
	ctx := context.Background()

	createUC := ucAppointment.NewCreateAppointment(clinic, testDispatcher())
	upsertUC := NewUpsertResult(clinic, testDispatcher())
	listUC := NewListResults(clinic)

	// 1. agendamento com dois exames
	out, err := createUC.Execute(ctx, ucAppointment.CreateAppointmentInput{
		PatientID:     1,
		ServiceIDs:    []uint{10, 20},
		PaymentMethod: "pix",
		InsuranceType: "particular",
		Date:          "2026-09-10",
		Time:          "09:30",
		CreatedByID:   5,
	})
	assert.NoError(t, err)
	assert.Equal(t, 70.00, out.Total)

	apID := out.Appointment.ID

	// 2. criação semeou um resultado pendente por exame
	results, err := listUC.Execute(ctx, apID)
	assert.NoError(t, err)
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, string(domain.StatusPending), r.Status)
	}

	// 3. laudo final do hemograma
	res, err := upsertUC.Execute(ctx, UpsertResultInput{
		AppointmentID: apID,
		ServiceID:     10,
		ResultData:    "12.5 g/dL",
		UserID:        5,
	})
	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusFinal), res.Status)
	assert.Equal(t, uint(1), res.PatientID)

	// 4. um final, o outro segue pendente
	results, _ = listUC.Execute(ctx, apID)
	byService := make(map[uint]models.ExamResult)
	for _, r := range results {
		byService[r.ServiceID] = r
	}
	assert.Equal(t, string(domain.StatusFinal), byService[10].Status)
	assert.Equal(t, "12.5 g/dL", byService[10].ResultData)
	assert.Equal(t, string(domain.StatusPending), byService[20].Status)

	// 5. cópia desnormalizada acompanha a linha canônica
	line, err := clinic.GetAppointmentServiceLine(ctx, apID, 10)
	assert.NoError(t, err)
	assert.Equal(t, "12.5 g/dL", line.ResultData)
}
