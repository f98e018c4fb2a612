package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorUsecaseForTest() DoctorUsecase {
	return NewDoctorUsecase(testDB(), quietLogger(), newStubDoctorRepository())
}

func TestCreateAndGetDoctor(t *testing.T) {
	uc := newDoctorUsecaseForTest()

	created, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name:      "Janet Fraiser",
		Specialty: "Internal Medicine",
		Email:     "j.fraiser@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := uc.GetDoctor(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestGetDoctorNotFound(t *testing.T) {
	uc := newDoctorUsecaseForTest()

	_, err := uc.GetDoctor(context.Background(), 42)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestUpdateDoctor(t *testing.T) {
	uc := newDoctorUsecaseForTest()

	created, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name: "Janet Fraiser",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateDoctor(context.Background(), created.ID, &dto.UpdateDoctorRequest{
		Name:      "Janet Fraiser",
		Specialty: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", updated.Specialty)
}

func TestDeleteDoctor(t *testing.T) {
	uc := newDoctorUsecaseForTest()

	created, err := uc.CreateDoctor(context.Background(), &dto.CreateDoctorRequest{
		Name: "Janet Fraiser",
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDoctor(context.Background(), created.ID))

	err = uc.DeleteDoctor(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
