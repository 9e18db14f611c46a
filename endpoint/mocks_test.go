package endpoint

import (
	"context"

	"github.com/ariebrainware/hospital-api/model"
	"github.com/stretchr/testify/mock"
)

type mockDoctorStore struct{ mock.Mock }

func (m *mockDoctorStore) FindByID(ctx context.Context, id uint) (*model.Doctor, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*model.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorStore) doctors(args mock.Arguments) ([]model.Doctor, error) {
	d, _ := args.Get(0).([]model.Doctor)
	return d, args.Error(1)
}

func (m *mockDoctorStore) List(ctx context.Context) ([]model.Doctor, error) {
	return m.doctors(m.Called(ctx))
}

func (m *mockDoctorStore) FilterByName(ctx context.Context, name string) ([]model.Doctor, error) {
	return m.doctors(m.Called(ctx, name))
}

func (m *mockDoctorStore) FilterBySpecialty(ctx context.Context, specialty string) ([]model.Doctor, error) {
	return m.doctors(m.Called(ctx, specialty))
}

func (m *mockDoctorStore) FilterByNameAndSpecialty(ctx context.Context, name, specialty string) ([]model.Doctor, error) {
	return m.doctors(m.Called(ctx, name, specialty))
}

func (m *mockDoctorStore) Save(ctx context.Context, d *model.Doctor) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDoctorStore) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDoctorStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockPatientStore struct{ mock.Mock }

func (m *mockPatientStore) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Patient)
	return p, args.Error(1)
}

func (m *mockPatientStore) patients(args mock.Arguments) ([]model.Patient, error) {
	p, _ := args.Get(0).([]model.Patient)
	return p, args.Error(1)
}

func (m *mockPatientStore) List(ctx context.Context) ([]model.Patient, error) {
	return m.patients(m.Called(ctx))
}

func (m *mockPatientStore) FilterBySeverity(ctx context.Context, severity string) ([]model.Patient, error) {
	return m.patients(m.Called(ctx, severity))
}

func (m *mockPatientStore) Save(ctx context.Context, p *model.Patient) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPatientStore) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockPatientStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockRoomStore struct{ mock.Mock }

func (m *mockRoomStore) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*model.Room)
	return r, args.Error(1)
}

func (m *mockRoomStore) List(ctx context.Context) ([]model.Room, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]model.Room)
	return r, args.Error(1)
}

func (m *mockRoomStore) Save(ctx context.Context, r *model.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoomStore) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRoomStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
